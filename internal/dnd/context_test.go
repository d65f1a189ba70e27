package dnd

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	starts []DragStartEvent
	overs  []DragOverEvent
	ends   []DragEndEvent
}

func newRecordedContext(ids ...int) (*Context, *recorder) {
	droppables := column(40, ids...)
	ctx := NewContext(LayoutFunc(func() []Droppable { return droppables }), nil)
	rec := &recorder{}
	ctx.SetCallbacks(
		func(e DragStartEvent) { rec.starts = append(rec.starts, e) },
		func(e DragOverEvent) { rec.overs = append(rec.overs, e) },
		func(e DragEndEvent) { rec.ends = append(rec.ends, e) },
	)
	return ctx, rec
}

func TestContext_StartUnknownID(t *testing.T) {
	ctx, rec := newRecordedContext(1, 2, 3)

	assert.False(t, ctx.Start(9))
	_, active := ctx.Active()
	assert.False(t, active)
	assert.Empty(t, rec.starts)
}

func TestContext_StartTwice(t *testing.T) {
	ctx, rec := newRecordedContext(1, 2, 3)

	require.True(t, ctx.Start(1))
	assert.False(t, ctx.Start(2))

	id, active := ctx.Active()
	assert.True(t, active)
	assert.Equal(t, 1, id)
	assert.Len(t, rec.starts, 1)
}

func TestContext_StartIsOverItself(t *testing.T) {
	ctx, _ := newRecordedContext(1, 2, 3)

	ctx.Start(2)
	over, ok := ctx.Over()
	assert.True(t, ok)
	assert.Equal(t, 2, over)
}

func TestContext_PointerDragToLast(t *testing.T) {
	ctx, rec := newRecordedContext(1, 2, 3)

	ctx.Start(1)
	ctx.Move(fyne.NewDelta(0, 30))
	ctx.Move(fyne.NewDelta(0, 50))
	ctx.End()

	require.Len(t, rec.ends, 1)
	assert.Equal(t, DragEndEvent{Active: 1, Over: 3, HasOver: true}, rec.ends[0])
	assert.Equal(t, []DragOverEvent{
		{Active: 1, Over: 2, HasOver: true},
		{Active: 1, Over: 3, HasOver: true},
	}, rec.overs)

	_, active := ctx.Active()
	assert.False(t, active)
}

func TestContext_DragRectFollowsMoves(t *testing.T) {
	ctx, _ := newRecordedContext(1, 2)

	ctx.Start(2)
	ctx.Move(fyne.NewDelta(3, -10))
	ctx.Move(fyne.NewDelta(2, -5))

	assert.Equal(t, fyne.NewPos(5, 25), ctx.DragRect().Pos)
}

func TestContext_OverNotRepeated(t *testing.T) {
	ctx, rec := newRecordedContext(1, 2, 3)

	ctx.Start(1)
	ctx.Move(fyne.NewDelta(0, 1))
	ctx.Move(fyne.NewDelta(0, 1))

	assert.Empty(t, rec.overs, "still over the start item")
}

func TestContext_Cancel(t *testing.T) {
	ctx, rec := newRecordedContext(1, 2, 3)

	ctx.Start(1)
	ctx.Move(fyne.NewDelta(0, 80))
	ctx.Cancel()

	require.Len(t, rec.ends, 1)
	assert.Equal(t, DragEndEvent{Active: 1}, rec.ends[0])
	assert.False(t, rec.ends[0].HasOver)
}

func TestContext_EndWithoutDrag(t *testing.T) {
	ctx, rec := newRecordedContext(1)

	ctx.End()
	ctx.Cancel()
	ctx.Move(fyne.NewDelta(0, 10))
	ctx.Step(1)

	assert.Empty(t, rec.ends)
	assert.Empty(t, rec.overs)
}

func TestContext_EmptyLayoutHasNoTarget(t *testing.T) {
	var droppables []Droppable
	initial := column(40, 1)
	droppables = initial
	ctx := NewContext(LayoutFunc(func() []Droppable { return droppables }), ClosestCenter)

	var ended DragEndEvent
	ctx.SetCallbacks(nil, nil, func(e DragEndEvent) { ended = e })

	require.True(t, ctx.Start(1))
	droppables = nil // the row went away mid drag
	ctx.Move(fyne.NewDelta(0, 10))
	ctx.End()

	assert.Equal(t, DragEndEvent{Active: 1}, ended)
}

func TestContext_Step(t *testing.T) {
	ctx, rec := newRecordedContext(1, 2, 3, 4)

	ctx.Start(2)
	ctx.Step(1)
	ctx.Step(1)
	ctx.Step(1) // clamped at the end
	over, _ := ctx.Over()
	assert.Equal(t, 4, over)
	assert.Equal(t, fyne.NewPos(0, 120), ctx.DragRect().Pos)

	ctx.Step(-10) // clamped at the start
	over, _ = ctx.Over()
	assert.Equal(t, 1, over)

	ctx.End()
	assert.Equal(t, DragEndEvent{Active: 2, Over: 1, HasOver: true}, rec.ends[0])
}
