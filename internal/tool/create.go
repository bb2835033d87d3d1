package tool

import (
	"math"

	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

// minCreateSize discards click-without-drag creations: a gesture that never
// grew past this produces no shape and no history entry.
const minCreateSize = 1.0

// newShapeFromDefaults stamps the manager's current defaults onto a fresh
// shape.
func newShapeFromDefaults(ctx *Context, t shape.Type) *shape.Shape {
	sh := shape.New(t)
	sh.Style = ctx.Defaults.Style
	sh.Opacity = ctx.Defaults.Opacity
	sh.Roughness = ctx.Defaults.Roughness
	return sh
}

// boxTool creates rectangles and ellipses by dragging out a frame. Shift
// constrains the frame to a square (rectangle) or circle (ellipse).
type boxTool struct {
	kind    shape.Type
	active  bool
	start   geometry.Point
	shapeID string
}

func newBoxTool(t Type) *boxTool {
	kind := shape.TypeRectangle
	if t == TypeEllipse {
		kind = shape.TypeEllipse
	}
	return &boxTool{kind: kind}
}

func (t *boxTool) Type() Type {
	if t.kind == shape.TypeEllipse {
		return TypeEllipse
	}
	return TypeRectangle
}

func (t *boxTool) PointerDown(ctx *Context, ev PointerEvent) {
	t.start = ctx.snapPoint(ev.Point)
	sh := newShapeFromDefaults(ctx, t.kind)
	sh.X = t.start.X
	sh.Y = t.start.Y
	ctx.Store.AddShape(sh, false)
	t.shapeID = sh.ID
	t.active = true
}

func (t *boxTool) PointerMove(ctx *Context, ev PointerEvent) {
	if !t.active {
		return
	}
	frame := t.frameTo(ctx, ev)
	ctx.Store.UpdateShape(t.shapeID, false, func(sh *shape.Shape) {
		sh.X = frame.X
		sh.Y = frame.Y
		sh.Width = frame.Width
		sh.Height = frame.Height
	})
}

func (t *boxTool) frameTo(ctx *Context, ev PointerEvent) geometry.Rect {
	p := ctx.snapPoint(ev.Point)
	dx := p.X - t.start.X
	dy := p.Y - t.start.Y
	if ev.Shift {
		side := max(math.Abs(dx), math.Abs(dy))
		dx = math.Copysign(side, dx)
		dy = math.Copysign(side, dy)
	}
	return geometry.FromPoints(t.start, geometry.Point{X: t.start.X + dx, Y: t.start.Y + dy})
}

func (t *boxTool) PointerUp(ctx *Context, ev PointerEvent) {
	if !t.active {
		return
	}
	st := ctx.Store
	sh, ok := st.Shape(t.shapeID)
	if !ok {
		t.reset()
		return
	}
	if sh.Width < minCreateSize && sh.Height < minCreateSize {
		st.DeleteShape(sh.ID, false)
		t.reset()
		return
	}
	st.RecordCreate([]*shape.Shape{sh})
	st.Select(sh.ID)
	t.reset()
}

func (t *boxTool) Cancel(ctx *Context) {
	if t.active {
		ctx.Store.DeleteShape(t.shapeID, false)
	}
	t.reset()
}

func (t *boxTool) reset() {
	t.active = false
	t.shapeID = ""
}
