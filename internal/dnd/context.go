package dnd

import (
	"fyne.io/fyne/v2"
)

// DragStartEvent is sent when an item is picked up
type DragStartEvent struct {
	Active int
}

// DragOverEvent is sent when the item under the dragged one changes
type DragOverEvent struct {
	Active  int
	Over    int
	HasOver bool
}

// DragEndEvent is sent when the item is dropped or the drag is cancelled.
// HasOver is false when there was nothing to drop onto or the drag was cancelled.
type DragEndEvent struct {
	Active  int
	Over    int
	HasOver bool
}

// Context tracks a single drag at a time. It must be driven from one goroutine,
// normally the UI event goroutine.
type Context struct {
	layout Layout
	detect CollisionDetector

	// Callbacks
	onDragStart func(DragStartEvent)
	onDragOver  func(DragOverEvent)
	onDragEnd   func(DragEndEvent)

	dragging   bool
	active     int
	activeRect Rect
	delta      fyne.Delta
	over       int
	hasOver    bool
}

// NewContext creates a drag context over layout. A nil detector means ClosestCenter.
func NewContext(layout Layout, detect CollisionDetector) *Context {
	if detect == nil {
		detect = ClosestCenter
	}
	return &Context{
		layout: layout,
		detect: detect,
	}
}

// SetCallbacks sets the drag event callbacks. Any of them may be nil.
func (c *Context) SetCallbacks(
	onDragStart func(DragStartEvent),
	onDragOver func(DragOverEvent),
	onDragEnd func(DragEndEvent),
) {
	c.onDragStart = onDragStart
	c.onDragOver = onDragOver
	c.onDragEnd = onDragEnd
}

// Active returns the item being dragged, if any
func (c *Context) Active() (int, bool) {
	return c.active, c.dragging
}

// Over returns the item currently under the dragged one, if any
func (c *Context) Over() (int, bool) {
	if !c.dragging {
		return 0, false
	}
	return c.over, c.hasOver
}

// DragRect returns where the dragged item currently is
func (c *Context) DragRect() Rect {
	return c.activeRect.Translate(c.delta)
}

// Start picks up the item with the given id. It returns false when a drag is
// already running or the id is not in the layout.
func (c *Context) Start(id int) bool {
	if c.dragging {
		return false
	}

	rect, ok := c.rectOf(id)
	if !ok {
		return false
	}

	c.dragging = true
	c.active = id
	c.activeRect = rect
	c.delta = fyne.Delta{}
	c.over = id
	c.hasOver = true

	if c.onDragStart != nil {
		c.onDragStart(DragStartEvent{Active: id})
	}
	return true
}

// Move shifts the dragged item by delta and updates the item under it
func (c *Context) Move(delta fyne.Delta) {
	if !c.dragging {
		return
	}

	c.delta.DX += delta.DX
	c.delta.DY += delta.DY

	over, ok := c.detect(c.DragRect(), c.layout.Droppables())
	c.setOver(over, ok)
}

// Step moves the drop target by offset positions in display order. Used by
// keyboard dragging; the dragged item snaps onto the new target.
func (c *Context) Step(offset int) {
	if !c.dragging {
		return
	}

	droppables := c.layout.Droppables()
	if len(droppables) == 0 {
		c.setOver(0, false)
		return
	}

	current := c.active
	if c.hasOver {
		current = c.over
	}

	idx := 0
	for i, d := range droppables {
		if d.ID == current {
			idx = i
			break
		}
	}

	idx += offset
	if idx < 0 {
		idx = 0
	}
	if idx > len(droppables)-1 {
		idx = len(droppables) - 1
	}

	target := droppables[idx]
	c.delta = fyne.NewDelta(target.Rect.Pos.X-c.activeRect.Pos.X, target.Rect.Pos.Y-c.activeRect.Pos.Y)
	c.setOver(target.ID, true)
}

// End drops the dragged item onto the current target
func (c *Context) End() {
	if !c.dragging {
		return
	}
	event := DragEndEvent{Active: c.active, Over: c.over, HasOver: c.hasOver}
	c.reset()

	if c.onDragEnd != nil {
		c.onDragEnd(event)
	}
}

// Cancel ends the drag without a target
func (c *Context) Cancel() {
	if !c.dragging {
		return
	}
	event := DragEndEvent{Active: c.active}
	c.reset()

	if c.onDragEnd != nil {
		c.onDragEnd(event)
	}
}

func (c *Context) setOver(id int, ok bool) {
	if ok == c.hasOver && (!ok || id == c.over) {
		return
	}
	c.over = id
	c.hasOver = ok

	if c.onDragOver != nil {
		c.onDragOver(DragOverEvent{Active: c.active, Over: id, HasOver: ok})
	}
}

func (c *Context) rectOf(id int) (Rect, bool) {
	for _, d := range c.layout.Droppables() {
		if d.ID == id {
			return d.Rect, true
		}
	}
	return Rect{}, false
}

func (c *Context) reset() {
	c.dragging = false
	c.active = 0
	c.activeRect = Rect{}
	c.delta = fyne.Delta{}
	c.over = 0
	c.hasOver = false
}
