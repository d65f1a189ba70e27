package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/customer-list/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeyLoadSampleData = "load_sample_data"
	KeyExportDir      = "export_directory"
	KeyConfirmDelete  = "confirm_delete"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultLoadSampleData = true
	DefaultConfirmDelete  = false
)

// Settings manages user preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"ko":     "한국어",
		"en":     "English",
	}
}

// GetLoadSampleData returns whether the starter list is loaded on launch
func (s *Settings) GetLoadSampleData() bool {
	return s.app.Preferences().BoolWithFallback(KeyLoadSampleData, DefaultLoadSampleData)
}

// SetLoadSampleData sets whether the starter list is loaded on launch
func (s *Settings) SetLoadSampleData(load bool) {
	s.app.Preferences().SetBool(KeyLoadSampleData, load)
}

// GetConfirmDelete returns whether deleting a row asks for confirmation first
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether deleting a row asks for confirmation first
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetExportDirectory returns the directory the export dialog opens in
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		// Use system default Documents directory
		defaultDir, err := platform.GetHomeDocumentsDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetExportDirectory remembers the directory of the last export
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}
