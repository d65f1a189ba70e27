package customers

import (
	"iter"

	"github.com/ytget/customer-list/internal/model"
)

// ListManager defines the operations the UI drives on the customer list.
type ListManager interface {
	SetUpdateCallback(func())

	SetSearchTerm(term string)
	SearchTerm() string
	FilteredView() iter.Seq[model.Customer]
	FilteredCount() int

	AddCustomer(name, company string) model.Customer
	DeleteCustomer(id int)
	Reorder(draggedID, targetID int)
	Customers() []model.Customer
	Len() int

	// Add dialog state
	OpenAddDialog()
	CloseAddDialog()
	AddDialogOpen() bool
	SetDraftName(name string)
	SetDraftCompany(company string)
	Draft() (name, company string)
	SubmitDraft() model.Customer

	// Drag callbacks
	DragStart(id int)
	DragEnd(activeID, overID int, hasOver bool)
	ActiveID() (int, bool)
}

var _ ListManager = (*Manager)(nil)
