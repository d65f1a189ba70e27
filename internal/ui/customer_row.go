package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/customer-list/internal/model"
)

// CustomerRow is one table row: drag handle, name, company and a delete button.
// The whole row is draggable with the pointer, and focusable for keyboard drags.
type CustomerRow struct {
	widget.BaseWidget

	customer     model.Customer
	localization *Localization
	logger       *zap.Logger

	// UI components
	background   *canvas.Rectangle
	focusBorder  *canvas.Rectangle
	handleLabel  *widget.Label
	nameLabel    *widget.Label
	companyLabel *widget.Label
	deleteBtn    *widget.Button

	// Drag state
	active  bool
	over    bool
	focused bool

	// Callbacks
	onDelete  func(id int)
	onDragged func(id int, delta fyne.Delta)
	onDragEnd func(id int)
	onKeyDown func(id int, key fyne.KeyName) bool
}

var (
	_ fyne.Draggable = (*CustomerRow)(nil)
	_ fyne.Focusable = (*CustomerRow)(nil)
	_ fyne.Tappable  = (*CustomerRow)(nil)
)

// NewCustomerRow creates a new row for customer
func NewCustomerRow(customer model.Customer, localization *Localization, logger *zap.Logger) *CustomerRow {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &CustomerRow{
		customer:     customer,
		localization: localization,
		logger:       logger,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	r.updateFromCustomer()
	return r
}

// SetCallbacks sets the action callbacks
func (r *CustomerRow) SetCallbacks(
	onDelete func(id int),
	onDragged func(id int, delta fyne.Delta),
	onDragEnd func(id int),
	onKeyDown func(id int, key fyne.KeyName) bool,
) {
	if onDelete == nil {
		r.logger.Warn("onDelete callback is nil", zap.Int("id", r.customer.ID))
	}

	r.onDelete = onDelete
	r.onDragged = onDragged
	r.onDragEnd = onDragEnd
	r.onKeyDown = onKeyDown
}

// Customer returns the customer shown in the row
func (r *CustomerRow) Customer() model.Customer {
	return r.customer
}

// UpdateCustomer shows new data for the same or another customer
func (r *CustomerRow) UpdateCustomer(customer model.Customer) {
	if customer == r.customer {
		return
	}
	r.customer = customer
	r.updateFromCustomer()
	r.Refresh()
}

// SetDragState marks the row as picked up and/or as the current drop target
func (r *CustomerRow) SetDragState(active, over bool) {
	if active == r.active && over == r.over {
		return
	}
	r.active = active
	r.over = over
	r.updateBackground()
}

// RefreshTexts re-reads localized texts
func (r *CustomerRow) RefreshTexts() {
	r.deleteBtn.SetText(r.localization.GetText(KeyDelete))
	r.updateFromCustomer()
}

// createUI creates the UI components
func (r *CustomerRow) createUI() {
	r.background = canvas.NewRectangle(color.Transparent)
	r.focusBorder = canvas.NewRectangle(color.Transparent)
	r.focusBorder.StrokeWidth = 1

	r.handleLabel = widget.NewLabel(IconDragHandle)
	r.handleLabel.Importance = widget.LowImportance

	r.nameLabel = widget.NewLabel("")
	r.nameLabel.Truncation = fyne.TextTruncateEllipsis
	r.companyLabel = widget.NewLabel("")
	r.companyLabel.Truncation = fyne.TextTruncateEllipsis

	r.deleteBtn = widget.NewButton(r.localization.GetText(KeyDelete), func() {
		// Read the id at tap time; rows are reused for other customers
		id := r.customer.ID
		r.logger.Debug("delete button clicked", zap.Int("id", id))
		if r.onDelete != nil {
			r.onDelete(id)
		}
	})
	r.deleteBtn.Importance = widget.DangerImportance
}

// updateFromCustomer updates labels from the customer
func (r *CustomerRow) updateFromCustomer() {
	r.nameLabel.SetText(r.customer.GetDisplayName(r.localization.GetText(KeyUnnamed)))

	company := r.customer.Company
	if company == "" {
		company = DashPlaceholder
	}
	r.companyLabel.SetText(company)
}

// updateBackground colors the row from its drag and focus state
func (r *CustomerRow) updateBackground() {
	th := fyne.CurrentApp().Settings().Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	switch {
	case r.active:
		r.background.FillColor = th.Color(theme.ColorNameSelection, variant)
	case r.over:
		r.background.FillColor = th.Color(theme.ColorNameHover, variant)
	default:
		r.background.FillColor = color.Transparent
	}
	r.background.Refresh()

	if r.focused {
		r.focusBorder.StrokeColor = th.Color(theme.ColorNameFocus, variant)
	} else {
		r.focusBorder.StrokeColor = color.Transparent
	}
	r.focusBorder.Refresh()
}

// Dragged forwards pointer movement to the drag sensor
func (r *CustomerRow) Dragged(event *fyne.DragEvent) {
	if r.onDragged != nil {
		r.onDragged(r.customer.ID, event.Dragged)
	}
}

// DragEnd forwards the pointer release to the drag sensor
func (r *CustomerRow) DragEnd() {
	if r.onDragEnd != nil {
		r.onDragEnd(r.customer.ID)
	}
}

// Tapped focuses the row so it can be dragged with the keyboard
func (r *CustomerRow) Tapped(*fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(r); c != nil {
		c.Focus(r)
	}
}

// FocusGained highlights the row
func (r *CustomerRow) FocusGained() {
	r.focused = true
	r.updateBackground()
}

// FocusLost removes the focus highlight
func (r *CustomerRow) FocusLost() {
	r.focused = false
	r.updateBackground()
}

// TypedRune is ignored; rows accept keys only
func (r *CustomerRow) TypedRune(rune) {}

// TypedKey forwards keys to the keyboard sensor
func (r *CustomerRow) TypedKey(event *fyne.KeyEvent) {
	if r.onKeyDown != nil {
		r.onKeyDown(r.customer.ID, event.Name)
	}
}

// MinSize keeps rows from collapsing in narrow windows
func (r *CustomerRow) MinSize() fyne.Size {
	size := r.BaseWidget.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

// CreateRenderer creates the widget renderer
func (r *CustomerRow) CreateRenderer() fyne.WidgetRenderer {
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	cells := container.NewGridWithColumns(2, r.nameLabel, r.companyLabel)
	content := container.NewBorder(nil, widget.NewSeparator(),
		fixedWidth(HandleWidth, r.handleLabel),
		fixedWidth(DeleteButtonSize, r.deleteBtn),
		cells,
	)

	return widget.NewSimpleRenderer(container.NewStack(r.background, r.focusBorder, content))
}
