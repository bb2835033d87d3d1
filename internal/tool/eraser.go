package tool

import (
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

// eraserTool collects every shape swept over during the gesture and deletes
// them as one history entry on pointer up. Cancelling drops the collected
// set without deleting anything.
type eraserTool struct {
	active bool
	marked []string
	seen   map[string]struct{}
}

func newEraserTool() *eraserTool { return &eraserTool{} }

func (t *eraserTool) Type() Type { return TypeEraser }

func (t *eraserTool) PointerDown(ctx *Context, ev PointerEvent) {
	t.active = true
	t.seen = make(map[string]struct{})
	t.mark(ctx, ev)
}

func (t *eraserTool) PointerMove(ctx *Context, ev PointerEvent) {
	if !t.active {
		return
	}
	t.mark(ctx, ev)
}

func (t *eraserTool) mark(ctx *Context, ev PointerEvent) {
	hit := ctx.Store.HitShape(ev.Point, shape.DefaultHitTolerance)
	if hit == nil {
		return
	}
	if _, dup := t.seen[hit.ID]; dup {
		return
	}
	t.seen[hit.ID] = struct{}{}
	t.marked = append(t.marked, hit.ID)
}

func (t *eraserTool) PointerUp(ctx *Context, ev PointerEvent) {
	if !t.active {
		return
	}
	if len(t.marked) > 0 {
		ctx.Store.DeleteShapes(t.marked, true)
	}
	t.reset()
}

func (t *eraserTool) Cancel(ctx *Context) {
	t.reset()
}

func (t *eraserTool) reset() {
	t.active = false
	t.marked = nil
	t.seen = nil
}
