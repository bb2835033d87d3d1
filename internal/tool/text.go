package tool

import (
	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

// textTool places a text shape on click. Clicking a container shape creates
// bound text inside it instead of a free-standing shape. Content editing is
// the frontend's job; the engine creates the empty shape and records it.
type textTool struct {
	active bool
	start  geometry.Point
}

func newTextTool() *textTool { return &textTool{} }

func (t *textTool) Type() Type { return TypeText }

func (t *textTool) PointerDown(ctx *Context, ev PointerEvent) {
	t.start = ctx.snapPoint(ev.Point)
	t.active = true
}

func (t *textTool) PointerMove(ctx *Context, ev PointerEvent) {}

func (t *textTool) PointerUp(ctx *Context, ev PointerEvent) {
	if !t.active {
		return
	}
	t.active = false
	st := ctx.Store

	if hit := st.HitShape(t.start, 0); hit != nil && hit.IsContainer() {
		st.CreateBoundText(hit.ID, "", ctx.Defaults.FontSize, ctx.Defaults.FontFamily, true)
		st.Select(hit.ID)
		return
	}

	sh := newShapeFromDefaults(ctx, shape.TypeText)
	sh.X = t.start.X
	sh.Y = t.start.Y
	sh.FontSize = ctx.Defaults.FontSize
	sh.FontFamily = ctx.Defaults.FontFamily
	sh.Height = sh.FontSize * 1.25
	st.AddShape(sh, false)
	st.RecordCreate([]*shape.Shape{sh})
	st.Select(sh.ID)
}

func (t *textTool) Cancel(ctx *Context) {
	t.active = false
}
