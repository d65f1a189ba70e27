package ui

import (
	"os"
	"strings"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// DefaultUILanguage is used when the system language has no translation
const DefaultUILanguage = "ko"

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeySearchPlaceholder    = "search_placeholder"
	KeyAdd                  = "add"
	KeyDelete               = "delete"
	KeyName                 = "name"
	KeyCompany              = "company"
	KeyNoResults            = "no_results"
	KeyAddCustomerTitle     = "add_customer_title"
	KeyCancel               = "cancel"
	KeyExport               = "export"
	KeyExportDone           = "export_done"
	KeyExportFailed         = "export_failed"
	KeyOpenExport           = "open_export"
	KeySettings             = "settings"
	KeyFile                 = "file"
	KeyLanguage             = "language"
	KeySave                 = "save"
	KeySettingsSaved        = "settings_saved"
	KeyLoadSampleData       = "load_sample_data"
	KeyConfirmDelete        = "confirm_delete"
	KeyDeleteConfirmTitle   = "delete_confirm_title"
	KeyDeleteConfirmMessage = "delete_confirm_message"
	KeyCountFormat          = "count_format"
	KeyUnnamed              = "unnamed"
	KeyRestartNotice        = "restart_notice"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultUILanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the language from the
// environment locale when a translation exists.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"ko": "한국어",
		"en": "English",
	}
}

// systemLanguage extracts the language code from LC_ALL / LANG (e.g. "en_US.UTF-8")
func systemLanguage() string {
	for _, key := range []string{"LC_ALL", "LANG"} {
		value := os.Getenv(key)
		if len(value) >= 2 {
			return strings.ToLower(value[:2])
		}
	}
	return DefaultUILanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Korean texts
	l.texts["ko"] = map[string]string{
		KeyAppTitle:             "고객 목록",
		KeySearchPlaceholder:    "검색어를 입력해주세요",
		KeyAdd:                  "추가",
		KeyDelete:               "삭제",
		KeyName:                 "이름",
		KeyCompany:              "회사",
		KeyNoResults:            "아무 것도 찾지 못했어요",
		KeyAddCustomerTitle:     "새 고객 추가",
		KeyCancel:               "취소",
		KeyExport:               "PDF 내보내기",
		KeyExportDone:           "내보내기 완료: %s\n파일을 열까요?",
		KeyExportFailed:         "내보내기 실패",
		KeyOpenExport:           "열기",
		KeySettings:             "설정",
		KeyFile:                 "파일",
		KeyLanguage:             "언어",
		KeySave:                 "저장",
		KeySettingsSaved:        "설정이 저장되었습니다",
		KeyLoadSampleData:       "시작할 때 예시 고객 불러오기",
		KeyConfirmDelete:        "삭제하기 전에 확인",
		KeyDeleteConfirmTitle:   "고객 삭제",
		KeyDeleteConfirmMessage: "%s 고객을 삭제할까요?",
		KeyCountFormat:          "%d / %d명",
		KeyUnnamed:              "(이름 없음)",
		KeyRestartNotice:        "일부 설정은 다시 시작한 후 적용됩니다",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "Customer List",
		KeySearchPlaceholder:    "Search by name",
		KeyAdd:                  "Add",
		KeyDelete:               "Delete",
		KeyName:                 "Name",
		KeyCompany:              "Company",
		KeyNoResults:            "Nothing found",
		KeyAddCustomerTitle:     "Add New Customer",
		KeyCancel:               "Cancel",
		KeyExport:               "Export PDF",
		KeyExportDone:           "Exported to %s\nOpen the file?",
		KeyExportFailed:         "Export failed",
		KeyOpenExport:           "Open",
		KeySettings:             "Settings",
		KeyFile:                 "File",
		KeyLanguage:             "Language",
		KeySave:                 "Save",
		KeySettingsSaved:        "Settings saved successfully!",
		KeyLoadSampleData:       "Load sample customers on start",
		KeyConfirmDelete:        "Confirm before deleting",
		KeyDeleteConfirmTitle:   "Delete Customer",
		KeyDeleteConfirmMessage: "Delete %s?",
		KeyCountFormat:          "%d of %d",
		KeyUnnamed:              "(no name)",
		KeyRestartNotice:        "Some settings apply after restart",
	}
}
