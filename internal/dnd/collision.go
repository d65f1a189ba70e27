package dnd

import (
	"fyne.io/fyne/v2"
)

// Rect is an item's area in absolute canvas coordinates
type Rect struct {
	Pos  fyne.Position
	Size fyne.Size
}

// Center returns the middle point of the rect
func (r Rect) Center() fyne.Position {
	return fyne.NewPos(r.Pos.X+r.Size.Width/2, r.Pos.Y+r.Size.Height/2)
}

// Translate returns the rect moved by delta
func (r Rect) Translate(delta fyne.Delta) Rect {
	return Rect{Pos: r.Pos.AddXY(delta.DX, delta.DY), Size: r.Size}
}

// Droppable is an item that can be dropped onto
type Droppable struct {
	ID   int
	Rect Rect
}

// Layout provides the current droppables in display order
type Layout interface {
	Droppables() []Droppable
}

// LayoutFunc adapts a function to the Layout interface
type LayoutFunc func() []Droppable

// Droppables calls f
func (f LayoutFunc) Droppables() []Droppable {
	return f()
}

// CollisionDetector picks the droppable the active rect is over
type CollisionDetector func(active Rect, droppables []Droppable) (int, bool)

// ClosestCenter picks the droppable whose center is nearest to the center of
// the active rect. Ties go to the earlier droppable.
func ClosestCenter(active Rect, droppables []Droppable) (int, bool) {
	if len(droppables) == 0 {
		return 0, false
	}

	center := active.Center()
	bestID := droppables[0].ID
	bestDist := squaredDistance(center, droppables[0].Rect.Center())
	for _, d := range droppables[1:] {
		dist := squaredDistance(center, d.Rect.Center())
		if dist < bestDist {
			bestID, bestDist = d.ID, dist
		}
	}
	return bestID, true
}

func squaredDistance(a, b fyne.Position) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
