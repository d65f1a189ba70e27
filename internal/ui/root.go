package ui

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/customer-list/internal/config"
	"github.com/ytget/customer-list/internal/customers"
	"github.com/ytget/customer-list/internal/dnd"
	"github.com/ytget/customer-list/internal/model"
	"github.com/ytget/customer-list/internal/platform"
	"github.com/ytget/customer-list/internal/report"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	manager      customers.ListManager
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger
	pdfFontPath  string

	// Top bar
	searchEntry *widget.Entry
	addBtn      *widget.Button
	exportBtn   *widget.Button
	settingsBtn *widget.Button

	// Table
	nameHeader    *widget.Label
	companyHeader *widget.Label
	rowsBox       *fyne.Container
	emptyLabel    *widget.Label
	countLabel    *widget.Label

	// Rows are reused across refreshes so a row being dragged keeps its widget
	rows    map[int]*CustomerRow
	visible []*CustomerRow

	// Drag and drop
	dragCtx  *dnd.Context
	pointer  *dnd.PointerSensor
	keyboard *dnd.KeyboardSensor
	overlay  *DragOverlay

	addDialog *AddCustomerDialog
}

// NewRootUI creates and initializes the main UI
func NewRootUI(
	window fyne.Window,
	app fyne.App,
	manager customers.ListManager,
	settings *config.Settings,
	logger *zap.Logger,
	pdfFontPath string,
) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		manager:      manager,
		settings:     settings,
		localization: localization,
		logger:       logger,
		pdfFontPath:  pdfFontPath,
		rows:         make(map[int]*CustomerRow),
	}

	ui.dragCtx = dnd.NewContext(dnd.LayoutFunc(ui.droppables), dnd.ClosestCenter)
	ui.dragCtx.SetCallbacks(ui.onDragStart, ui.onDragOver, ui.onDragEnd)
	activation := dnd.DefaultActivationDistance
	if fyne.CurrentDevice().IsMobile() {
		activation = TouchActivationDistance
	}
	ui.pointer = dnd.NewPointerSensor(ui.dragCtx, activation)
	ui.keyboard = dnd.NewKeyboardSensor(ui.dragCtx)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	manager.SetUpdateCallback(ui.refresh)

	ui.setupUI()
	ui.refresh()

	logger.Info("UI initialized",
		zap.String("language", localization.GetCurrentLanguage()),
		zap.Int("customers", manager.Len()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.manager.SetSearchTerm

	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAdd), ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance

	ui.exportBtn = widget.NewButton(ui.localization.GetText(KeyExport), ui.onExportClick)

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil,
		ui.settingsBtn,
		container.NewHBox(ui.exportBtn, ui.addBtn),
		ui.searchEntry,
	)

	// Header row lines up with CustomerRow columns
	ui.nameHeader = widget.NewLabelWithStyle(ui.localization.GetText(KeyName), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.companyHeader = widget.NewLabelWithStyle(ui.localization.GetText(KeyCompany), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	headerBg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	handleSpace := canvas.NewRectangle(color.Transparent)
	handleSpace.SetMinSize(fyne.NewSize(HandleWidth, 0))
	deleteSpace := canvas.NewRectangle(color.Transparent)
	deleteSpace.SetMinSize(fyne.NewSize(DeleteButtonSize, 0))
	header := container.NewStack(headerBg, container.NewBorder(nil, nil, handleSpace, deleteSpace,
		container.NewGridWithColumns(2, ui.nameHeader, ui.companyHeader)))

	ui.emptyLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyNoResults), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	ui.rowsBox = container.NewVBox()

	ui.countLabel = widget.NewLabel("")
	ui.countLabel.Importance = widget.LowImportance

	table := container.NewBorder(header, nil, nil, nil, container.NewVScroll(ui.rowsBox))

	content := container.NewBorder(
		topPanel,      // top
		ui.countLabel, // bottom
		nil,           // left
		nil,           // right
		table,         // center
	)

	ui.window.SetContent(content)

	ui.overlay = NewDragOverlay(ui.window.Canvas())

	// Ctrl/Cmd+N opens the add dialog
	ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyN,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) { ui.onAddClick() })
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	exportItem := fyne.NewMenuItem(ui.localization.GetText(KeyExport), ui.onExportClick)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), exportItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.addBtn.SetText(ui.localization.GetText(KeyAdd))
	ui.exportBtn.SetText(ui.localization.GetText(KeyExport))
	ui.nameHeader.SetText(ui.localization.GetText(KeyName))
	ui.companyHeader.SetText(ui.localization.GetText(KeyCompany))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoResults))

	for _, row := range ui.rows {
		row.RefreshTexts()
	}

	// Form labels are fixed at creation
	ui.addDialog = nil

	ui.refresh()
}

// refresh rebuilds the table from the filtered view
func (ui *RootUI) refresh() {
	all := ui.manager.Customers()
	known := make(map[int]struct{}, len(all))
	for _, c := range all {
		known[c.ID] = struct{}{}
	}
	for id := range ui.rows {
		if _, ok := known[id]; !ok {
			delete(ui.rows, id)
		}
	}

	ui.visible = ui.visible[:0]
	for c := range ui.manager.FilteredView() {
		row, ok := ui.rows[c.ID]
		if !ok {
			row = ui.newRow(c)
			ui.rows[c.ID] = row
		} else {
			row.UpdateCustomer(c)
		}
		ui.visible = append(ui.visible, row)
	}

	objects := make([]fyne.CanvasObject, 0, len(ui.visible))
	for _, row := range ui.visible {
		objects = append(objects, row)
	}
	if len(objects) == 0 {
		objects = append(objects, ui.emptyLabel)
	}
	ui.rowsBox.Objects = objects
	ui.rowsBox.Refresh()

	ui.updateDragHighlights()

	ui.countLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyCountFormat), len(ui.visible), len(all)))
}

// newRow creates a row wired to the drag sensors
func (ui *RootUI) newRow(c model.Customer) *CustomerRow {
	row := NewCustomerRow(c, ui.localization, ui.logger)
	row.SetCallbacks(
		ui.onDeleteCustomer,
		ui.onRowDragged,
		ui.pointer.DragEnd,
		ui.onRowKeyDown,
	)
	return row
}

// updateDragHighlights marks the dragged row and the current drop target
func (ui *RootUI) updateDragHighlights() {
	activeID, dragging := ui.manager.ActiveID()
	overID, hasOver := ui.dragCtx.Over()

	for _, row := range ui.visible {
		id := row.Customer().ID
		row.SetDragState(
			dragging && id == activeID,
			hasOver && id == overID && id != activeID,
		)
	}
}

// droppables reports where the visible rows are on the canvas
func (ui *RootUI) droppables() []dnd.Droppable {
	driver := ui.app.Driver()
	out := make([]dnd.Droppable, 0, len(ui.visible))
	for _, row := range ui.visible {
		out = append(out, dnd.Droppable{
			ID: row.Customer().ID,
			Rect: dnd.Rect{
				Pos:  driver.AbsolutePositionForObject(row),
				Size: row.Size(),
			},
		})
	}
	return out
}

// onRowDragged feeds pointer movement into the drag context
func (ui *RootUI) onRowDragged(id int, delta fyne.Delta) {
	ui.pointer.Dragged(id, delta)
	ui.overlay.Move(ui.dragCtx.DragRect())
}

// onRowKeyDown feeds keys into the drag context
func (ui *RootUI) onRowKeyDown(id int, key fyne.KeyName) bool {
	consumed := ui.keyboard.KeyDown(id, key)
	ui.overlay.Move(ui.dragCtx.DragRect())
	return consumed
}

func (ui *RootUI) onDragStart(event dnd.DragStartEvent) {
	ui.manager.DragStart(event.Active)

	if row, ok := ui.rows[event.Active]; ok {
		ui.overlay.Show(row.Customer(), ui.localization.GetText(KeyUnnamed), ui.dragCtx.DragRect())
	}
}

func (ui *RootUI) onDragOver(dnd.DragOverEvent) {
	ui.updateDragHighlights()
}

func (ui *RootUI) onDragEnd(event dnd.DragEndEvent) {
	ui.overlay.Hide()
	ui.manager.DragEnd(event.Active, event.Over, event.HasOver)
}

// onDeleteCustomer removes a customer, asking first when the setting says so
func (ui *RootUI) onDeleteCustomer(id int) {
	remove := func() {
		if active, ok := ui.dragCtx.Active(); ok && active == id {
			ui.dragCtx.Cancel()
		}
		ui.manager.DeleteCustomer(id)
	}

	if !ui.settings.GetConfirmDelete() {
		remove()
		return
	}

	name := ui.localization.GetText(KeyUnnamed)
	if row, ok := ui.rows[id]; ok {
		name = row.Customer().GetDisplayName(name)
	}

	confirm := dialog.NewConfirm(
		ui.localization.GetText(KeyDeleteConfirmTitle),
		fmt.Sprintf(ui.localization.GetText(KeyDeleteConfirmMessage), name),
		func(ok bool) {
			if ok {
				remove()
			}
		},
		ui.window,
	)
	confirm.SetConfirmText(ui.localization.GetText(KeyDelete))
	confirm.SetDismissText(ui.localization.GetText(KeyCancel))
	confirm.Show()
}

// onAddClick opens the add dialog
func (ui *RootUI) onAddClick() {
	if ui.addDialog == nil {
		ui.addDialog = NewAddCustomerDialog(ui.manager, ui.localization, ui.window, ui.logger)
	}
	ui.addDialog.Show()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies stored settings that take effect immediately
func (ui *RootUI) onSettingsSaved() {
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}

	ui.logger.Info("settings saved",
		zap.String("language", ui.settings.GetLanguage()),
		zap.Bool("load_sample_data", ui.settings.GetLoadSampleData()),
		zap.Bool("confirm_delete", ui.settings.GetConfirmDelete()))

	dialog.ShowInformation(
		ui.localization.GetText(KeySettings),
		ui.localization.GetText(KeySettingsSaved)+"\n"+ui.localization.GetText(KeyRestartNotice),
		ui.window,
	)
}

// onExportClick asks where to save the PDF
func (ui *RootUI) onExportClick() {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.logger.Error("save dialog failed", zap.Error(err))
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			return // cancelled
		}

		path := writer.URI().Path()
		if err := ui.exportTo(writer); err != nil {
			ui.logger.Error("export failed", zap.String("path", path), zap.Error(err))
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyExportFailed), err), ui.window)
			return
		}

		ui.settings.SetExportDirectory(filepath.Dir(path))
		ui.offerOpenExport(path)
	}, ui.window)

	save.SetFileName(ExportFileName)
	save.SetFilter(storage.NewExtensionFileFilter([]string{ExportExtension}))

	dir := ui.settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.logger.Warn("export directory unavailable", zap.String("dir", dir), zap.Error(err))
	} else if location, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
		save.SetLocation(location)
	}

	save.Show()
}

// exportTo writes the filtered view as a PDF and closes w
func (ui *RootUI) exportTo(w io.WriteCloser) error {
	exporter := report.NewPDFExporter(ui.reportLabels(), ui.pdfFontPath)
	if err := exporter.Export(w, ui.manager.FilteredView()); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	ui.logger.Info("customers exported", zap.Int("count", ui.manager.FilteredCount()))
	return nil
}

// reportLabels returns report texts in the current language
func (ui *RootUI) reportLabels() report.Labels {
	return report.Labels{
		Title:     ui.localization.GetText(KeyAppTitle),
		Name:      ui.localization.GetText(KeyName),
		Company:   ui.localization.GetText(KeyCompany),
		NoResults: ui.localization.GetText(KeyNoResults),
	}
}

// offerOpenExport asks whether to open the exported file
func (ui *RootUI) offerOpenExport(path string) {
	confirm := dialog.NewConfirm(
		ui.localization.GetText(KeyExport),
		fmt.Sprintf(ui.localization.GetText(KeyExportDone), path),
		func(ok bool) {
			if ok {
				ui.openFile(path)
			}
		},
		ui.window,
	)
	confirm.SetConfirmText(ui.localization.GetText(KeyOpenExport))
	confirm.SetDismissText(ui.localization.GetText(KeyCancel))
	confirm.Show()
}

// openFile opens path with the system viewer without blocking the UI
func (ui *RootUI) openFile(path string) {
	go func() {
		if err := platform.OpenFileWithDefaultApp(path); err != nil {
			ui.logger.Error("failed to open exported file", zap.String("path", path), zap.Error(err))
			fyne.Do(func() {
				dialog.ShowError(err, ui.window)
			})
		}
	}()
}
