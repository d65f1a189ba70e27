package dnd

import (
	"fyne.io/fyne/v2"
)

// DefaultActivationDistance is how far the pointer must travel before a drag starts
const DefaultActivationDistance float32 = 5.0

// PointerSensor turns raw pointer drag events into a drag on the context.
// Small movements below the activation distance are ignored so that a click on
// a row is not taken for a drag.
type PointerSensor struct {
	ctx                *Context
	activationDistance float32

	// Pending movement before activation
	tracking  bool
	pendingID int
	pending   fyne.Delta
}

// NewPointerSensor creates a pointer sensor feeding ctx
func NewPointerSensor(ctx *Context, activationDistance float32) *PointerSensor {
	if activationDistance < 0 {
		activationDistance = 0
	}
	return &PointerSensor{
		ctx:                ctx,
		activationDistance: activationDistance,
	}
}

// Dragged handles a pointer move while the item id is held
func (s *PointerSensor) Dragged(id int, delta fyne.Delta) {
	if active, ok := s.ctx.Active(); ok {
		if active == id {
			s.ctx.Move(delta)
		}
		return
	}

	if !s.tracking || s.pendingID != id {
		s.tracking = true
		s.pendingID = id
		s.pending = fyne.Delta{}
	}
	s.pending.DX += delta.DX
	s.pending.DY += delta.DY

	dist := s.pending.DX*s.pending.DX + s.pending.DY*s.pending.DY
	if dist < s.activationDistance*s.activationDistance {
		return
	}

	pending := s.pending
	s.tracking = false
	s.pending = fyne.Delta{}
	if s.ctx.Start(id) {
		s.ctx.Move(pending)
	}
}

// DragEnd handles the pointer release for item id
func (s *PointerSensor) DragEnd(id int) {
	s.tracking = false
	s.pending = fyne.Delta{}

	if active, ok := s.ctx.Active(); ok && active == id {
		s.ctx.End()
	}
}

// KeyboardSensor drives a drag from the keyboard: Space or Enter picks the
// focused item up and drops it, Up and Down move the target, Escape cancels.
type KeyboardSensor struct {
	ctx *Context
}

// NewKeyboardSensor creates a keyboard sensor feeding ctx
func NewKeyboardSensor(ctx *Context) *KeyboardSensor {
	return &KeyboardSensor{ctx: ctx}
}

// KeyDown handles a key pressed while item id has focus. It reports whether
// the key was consumed.
func (s *KeyboardSensor) KeyDown(id int, key fyne.KeyName) bool {
	_, dragging := s.ctx.Active()

	switch key {
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
		if dragging {
			s.ctx.End()
			return true
		}
		return s.ctx.Start(id)
	case fyne.KeyUp:
		if dragging {
			s.ctx.Step(-1)
			return true
		}
	case fyne.KeyDown:
		if dragging {
			s.ctx.Step(1)
			return true
		}
	case fyne.KeyEscape:
		if dragging {
			s.ctx.Cancel()
			return true
		}
	}
	return false
}
