package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/customer-list/internal/dnd"
	"github.com/ytget/customer-list/internal/model"
)

// DragOverlay is a floating copy of the dragged row that follows the pointer
type DragOverlay struct {
	canvas fyne.Canvas
	popup  *widget.PopUp
	label  *widget.Label
}

// NewDragOverlay creates a hidden overlay on c
func NewDragOverlay(c fyne.Canvas) *DragOverlay {
	label := widget.NewLabel("")
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Truncation = fyne.TextTruncateEllipsis

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameSelection))
	content := container.NewStack(bg, container.NewHBox(widget.NewLabel(IconDragHandle), label))

	popup := widget.NewPopUp(content, c)
	popup.Hide()

	return &DragOverlay{
		canvas: c,
		popup:  popup,
		label:  label,
	}
}

// Show displays the overlay for customer at rect
func (o *DragOverlay) Show(customer model.Customer, unnamed string, rect dnd.Rect) {
	text := customer.GetDisplayName(unnamed)
	if customer.Company != "" {
		text += "  ·  " + customer.Company
	}
	o.label.SetText(text)

	width := rect.Size.Width
	if width <= 0 {
		width = DragOverlayWidth
	}
	o.popup.Resize(fyne.NewSize(width, rect.Size.Height))
	o.popup.ShowAtPosition(rect.Pos)
}

// Move places the overlay at rect
func (o *DragOverlay) Move(rect dnd.Rect) {
	if !o.popup.Visible() {
		return
	}
	o.popup.Move(rect.Pos)
}

// Hide removes the overlay
func (o *DragOverlay) Hide() {
	o.popup.Hide()
}

// Visible reports whether the overlay is shown
func (o *DragOverlay) Visible() bool {
	return o.popup.Visible()
}
