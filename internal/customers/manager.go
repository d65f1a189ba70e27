package customers

import (
	"iter"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/customer-list/internal/model"
)

// Manager holds the customer list state for one UI session.
//
// It is not safe for concurrent use: every method is expected to run on the UI
// event goroutine. Mutations replace the backing slice instead of editing it, so
// a FilteredView iteration that is in progress keeps seeing the state it started
// with.
type Manager struct {
	session string
	logger  *zap.Logger

	customers  []model.Customer
	searchTerm string

	// add dialog
	dialogOpen   bool
	draftName    string
	draftCompany string

	// drag
	activeID int
	dragging bool

	onUpdate func() // callback for UI updates
}

// NewManager creates a manager seeded with initial. The slice is copied; a
// customer whose id repeats an earlier one gets the next free id.
func NewManager(initial []model.Customer, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}

	session := uuid.NewString()
	m := &Manager{
		session: session,
		logger:  logger.With(zap.String("session", session)),
	}
	m.customers = m.uniqueIDs(initial)
	m.logger.Debug("customer list created", zap.Int("count", len(m.customers)))
	return m
}

// Session returns the id that tags this manager's log lines
func (m *Manager) Session() string {
	return m.session
}

// SetUpdateCallback sets the callback invoked after every state change
func (m *Manager) SetUpdateCallback(callback func()) {
	m.onUpdate = callback
}

// SetSearchTerm replaces the active filter
func (m *Manager) SetSearchTerm(term string) {
	if term == m.searchTerm {
		return
	}
	m.searchTerm = term
	m.notifyUpdate()
}

// SearchTerm returns the active filter
func (m *Manager) SearchTerm() string {
	return m.searchTerm
}

// FilteredView yields, in list order, the customers whose name contains the
// current search term. The sequence can be ranged over any number of times.
func (m *Manager) FilteredView() iter.Seq[model.Customer] {
	return func(yield func(model.Customer) bool) {
		items, term := m.customers, m.searchTerm
		for _, c := range items {
			if !c.MatchesName(term) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// FilteredCount returns the number of customers in the filtered view
func (m *Manager) FilteredCount() int {
	n := 0
	for range m.FilteredView() {
		n++
	}
	return n
}

// Customers returns a copy of the full list in display order
func (m *Manager) Customers() []model.Customer {
	out := make([]model.Customer, len(m.customers))
	copy(out, m.customers)
	return out
}

// Len returns the number of customers regardless of the filter
func (m *Manager) Len() int {
	return len(m.customers)
}

// AddCustomer appends a new customer and returns it. Empty fields are accepted.
// The add dialog is closed and its draft cleared.
func (m *Manager) AddCustomer(name, company string) model.Customer {
	customer := model.Customer{
		ID:      model.NextID(m.customers),
		Name:    name,
		Company: company,
	}

	next := make([]model.Customer, 0, len(m.customers)+1)
	next = append(next, m.customers...)
	m.customers = append(next, customer)

	m.dialogOpen = false
	m.draftName = ""
	m.draftCompany = ""

	m.logger.Info("customer added", zap.Int("id", customer.ID), zap.Int("count", len(m.customers)))
	m.notifyUpdate()
	return customer
}

// DeleteCustomer removes the customer with the given id. Unknown ids are ignored.
func (m *Manager) DeleteCustomer(id int) {
	idx := model.IndexOf(m.customers, id)
	if idx < 0 {
		m.logger.Debug("delete ignored, id not found", zap.Int("id", id))
		return
	}

	next := make([]model.Customer, 0, len(m.customers)-1)
	next = append(next, m.customers[:idx]...)
	m.customers = append(next, m.customers[idx+1:]...)

	if m.dragging && m.activeID == id {
		m.dragging = false
		m.activeID = 0
	}

	m.logger.Info("customer deleted", zap.Int("id", id), zap.Int("count", len(m.customers)))
	m.notifyUpdate()
}

// Reorder moves the customer draggedID into the position currently held by
// targetID. Customers between the two positions shift by one; everyone else
// keeps their place. Equal ids, or an id that is not in the list, leave the
// list unchanged.
func (m *Manager) Reorder(draggedID, targetID int) {
	if m.reorder(draggedID, targetID) {
		m.notifyUpdate()
	}
}

// reorder performs the move and reports whether anything changed
func (m *Manager) reorder(draggedID, targetID int) bool {
	if draggedID == targetID {
		return false
	}

	from := model.IndexOf(m.customers, draggedID)
	to := model.IndexOf(m.customers, targetID)
	if from < 0 || to < 0 {
		m.logger.Debug("reorder ignored, id not found",
			zap.Int("dragged", draggedID), zap.Int("target", targetID))
		return false
	}

	m.customers = moveItem(m.customers, from, to)

	m.logger.Info("customer moved",
		zap.Int("id", draggedID), zap.Int("from", from), zap.Int("to", to))
	return true
}

// OpenAddDialog marks the add dialog as shown
func (m *Manager) OpenAddDialog() {
	if m.dialogOpen {
		return
	}
	m.dialogOpen = true
	m.notifyUpdate()
}

// CloseAddDialog hides the add dialog without adding. The draft is kept so the
// next open shows what was typed.
func (m *Manager) CloseAddDialog() {
	if !m.dialogOpen {
		return
	}
	m.dialogOpen = false
	m.notifyUpdate()
}

// AddDialogOpen reports whether the add dialog is shown
func (m *Manager) AddDialogOpen() bool {
	return m.dialogOpen
}

// SetDraftName sets the name field of the add dialog
func (m *Manager) SetDraftName(name string) {
	m.draftName = name
}

// SetDraftCompany sets the company field of the add dialog
func (m *Manager) SetDraftCompany(company string) {
	m.draftCompany = company
}

// Draft returns the current add dialog fields
func (m *Manager) Draft() (name, company string) {
	return m.draftName, m.draftCompany
}

// SubmitDraft adds a customer from the add dialog fields
func (m *Manager) SubmitDraft() model.Customer {
	return m.AddCustomer(m.draftName, m.draftCompany)
}

// DragStart records the customer being dragged
func (m *Manager) DragStart(id int) {
	m.activeID = id
	m.dragging = true
	m.logger.Debug("drag started", zap.Int("id", id))
	m.notifyUpdate()
}

// DragEnd commits a drag. Without a drop target (released outside the list or
// cancelled) nothing moves.
func (m *Manager) DragEnd(activeID, overID int, hasOver bool) {
	m.dragging = false
	m.activeID = 0

	if hasOver {
		m.reorder(activeID, overID)
	} else {
		m.logger.Debug("drag ended without target", zap.Int("id", activeID))
	}
	m.notifyUpdate()
}

// ActiveID returns the customer being dragged, if any
func (m *Manager) ActiveID() (int, bool) {
	return m.activeID, m.dragging
}

// uniqueIDs copies initial, giving repeated ids a fresh one
func (m *Manager) uniqueIDs(initial []model.Customer) []model.Customer {
	out := make([]model.Customer, len(initial))
	copy(out, initial)

	seen := make(map[int]struct{}, len(out))
	for i := range out {
		if _, dup := seen[out[i].ID]; dup {
			id := model.NextID(out)
			m.logger.Warn("duplicate customer id renumbered",
				zap.Int("id", out[i].ID), zap.Int("new_id", id), zap.Int("position", i))
			out[i].ID = id
		}
		seen[out[i].ID] = struct{}{}
	}
	return out
}

// notifyUpdate calls the update callback if set
func (m *Manager) notifyUpdate() {
	if m.onUpdate != nil {
		m.onUpdate()
	}
}

// moveItem returns a new slice with the element at from moved to to
func moveItem(items []model.Customer, from, to int) []model.Customer {
	out := make([]model.Customer, 0, len(items))
	moved := items[from]
	for i, c := range items {
		if i == from {
			continue
		}
		if i == to && from > to {
			out = append(out, moved)
		}
		out = append(out, c)
		if i == to && from < to {
			out = append(out, moved)
		}
	}
	return out
}
