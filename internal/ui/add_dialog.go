package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/customer-list/internal/customers"
)

// AddCustomerDialog asks for the name and company of a new customer.
// Field contents live in the manager draft, so closing the dialog with Cancel
// and opening it again shows what was typed before.
type AddCustomerDialog struct {
	manager      customers.ListManager
	localization *Localization
	logger       *zap.Logger
	window       fyne.Window

	nameEntry    *widget.Entry
	companyEntry *widget.Entry
	dialog       dialog.Dialog
}

// NewAddCustomerDialog creates the dialog; call Show to display it
func NewAddCustomerDialog(manager customers.ListManager, localization *Localization, window fyne.Window, logger *zap.Logger) *AddCustomerDialog {
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &AddCustomerDialog{
		manager:      manager,
		localization: localization,
		logger:       logger,
		window:       window,
	}
	d.createUI()
	return d
}

// Show opens the dialog with the current draft
func (d *AddCustomerDialog) Show() {
	name, company := d.manager.Draft()
	d.nameEntry.SetText(name)
	d.companyEntry.SetText(company)

	d.manager.OpenAddDialog()
	d.dialog.Show()
	if c := d.window.Canvas(); c != nil {
		c.Focus(d.nameEntry)
	}
}

// createUI creates the form
func (d *AddCustomerDialog) createUI() {
	d.nameEntry = widget.NewEntry()
	d.nameEntry.SetPlaceHolder(d.localization.GetText(KeyName))
	d.nameEntry.OnChanged = d.manager.SetDraftName

	d.companyEntry = widget.NewEntry()
	d.companyEntry.SetPlaceHolder(d.localization.GetText(KeyCompany))
	d.companyEntry.OnChanged = d.manager.SetDraftCompany

	items := []*widget.FormItem{
		widget.NewFormItem(d.localization.GetText(KeyName), d.nameEntry),
		widget.NewFormItem(d.localization.GetText(KeyCompany), d.companyEntry),
	}

	d.dialog = dialog.NewForm(
		d.localization.GetText(KeyAddCustomerTitle),
		d.localization.GetText(KeyAdd),
		d.localization.GetText(KeyCancel),
		items,
		d.handleResult,
		d.window,
	)
	d.dialog.Resize(fyne.NewSize(AddDialogWidth, d.dialog.MinSize().Height))
}

// handleResult is called when the dialog closes
func (d *AddCustomerDialog) handleResult(confirmed bool) {
	if !confirmed {
		d.logger.Debug("add dialog cancelled")
		d.manager.CloseAddDialog()
		return
	}

	customer := d.manager.SubmitDraft()
	d.logger.Debug("customer submitted from dialog", zap.Int("id", customer.ID))
}
