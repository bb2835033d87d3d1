package tool

import (
	"math"

	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

// linearTool creates two-point lines and arrows. Shift constrains the
// segment direction to 45 degree increments.
type linearTool struct {
	kind    shape.Type
	active  bool
	start   geometry.Point
	shapeID string
}

func newLinearTool(t Type) *linearTool {
	kind := shape.TypeLine
	if t == TypeArrow {
		kind = shape.TypeArrow
	}
	return &linearTool{kind: kind}
}

func (t *linearTool) Type() Type {
	if t.kind == shape.TypeArrow {
		return TypeArrow
	}
	return TypeLine
}

func (t *linearTool) PointerDown(ctx *Context, ev PointerEvent) {
	t.start = ctx.snapPoint(ev.Point)
	sh := newShapeFromDefaults(ctx, t.kind)
	sh.X = t.start.X
	sh.Y = t.start.Y
	sh.Points = []geometry.Point{{}, {}}
	ctx.Store.AddShape(sh, false)
	t.shapeID = sh.ID
	t.active = true
}

func (t *linearTool) PointerMove(ctx *Context, ev PointerEvent) {
	if !t.active {
		return
	}
	p := ctx.snapPoint(ev.Point)
	end := geometry.Point{X: p.X - t.start.X, Y: p.Y - t.start.Y}
	if ev.Shift {
		end = constrainTo45(end)
	}
	ctx.Store.UpdateShape(t.shapeID, false, func(sh *shape.Shape) {
		sh.Points[1] = end
		b := geometry.BoundsOfPoints(sh.Points)
		sh.Width = b.Width
		sh.Height = b.Height
	})
}

// constrainTo45 snaps the segment direction to the nearest 45 degree
// increment, preserving its length.
func constrainTo45(p geometry.Point) geometry.Point {
	length := math.Hypot(p.X, p.Y)
	if length == 0 {
		return p
	}
	angle := geometry.SnapAngle(math.Atan2(p.Y, p.X), math.Pi/4)
	return geometry.Point{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

func (t *linearTool) PointerUp(ctx *Context, ev PointerEvent) {
	if !t.active {
		return
	}
	st := ctx.Store
	sh, ok := st.Shape(t.shapeID)
	if !ok {
		t.reset()
		return
	}
	if geometry.Distance(sh.Points[0], sh.Points[1]) < minCreateSize {
		st.DeleteShape(sh.ID, false)
		t.reset()
		return
	}
	st.RecordCreate([]*shape.Shape{sh})
	st.Select(sh.ID)
	t.reset()
}

func (t *linearTool) Cancel(ctx *Context) {
	if t.active {
		ctx.Store.DeleteShape(t.shapeID, false)
	}
	t.reset()
}

func (t *linearTool) reset() {
	t.active = false
	t.shapeID = ""
}

// drawTool creates freehand paths by accumulating pointer samples.
type drawTool struct {
	active  bool
	start   geometry.Point
	shapeID string
}

func newDrawTool() *drawTool { return &drawTool{} }

func (t *drawTool) Type() Type { return TypeDraw }

func (t *drawTool) PointerDown(ctx *Context, ev PointerEvent) {
	t.start = ev.Point
	sh := newShapeFromDefaults(ctx, shape.TypeDraw)
	sh.X = t.start.X
	sh.Y = t.start.Y
	sh.Points = []geometry.Point{{}}
	ctx.Store.AddShape(sh, false)
	t.shapeID = sh.ID
	t.active = true
}

func (t *drawTool) PointerMove(ctx *Context, ev PointerEvent) {
	if !t.active {
		return
	}
	next := geometry.Point{X: ev.Point.X - t.start.X, Y: ev.Point.Y - t.start.Y}
	ctx.Store.UpdateShape(t.shapeID, false, func(sh *shape.Shape) {
		last := sh.Points[len(sh.Points)-1]
		if geometry.Distance(last, next) < 0.5 {
			return
		}
		sh.Points = append(sh.Points, next)
		b := geometry.BoundsOfPoints(sh.Points)
		sh.Width = b.Width
		sh.Height = b.Height
	})
}

func (t *drawTool) PointerUp(ctx *Context, ev PointerEvent) {
	if !t.active {
		return
	}
	st := ctx.Store
	sh, ok := st.Shape(t.shapeID)
	if !ok {
		t.reset()
		return
	}
	if len(sh.Points) < 2 {
		st.DeleteShape(sh.ID, false)
		t.reset()
		return
	}
	st.RecordCreate([]*shape.Shape{sh})
	st.Select(sh.ID)
	t.reset()
}

func (t *drawTool) Cancel(ctx *Context) {
	if t.active {
		ctx.Store.DeleteShape(t.shapeID, false)
	}
	t.reset()
}

func (t *drawTool) reset() {
	t.active = false
	t.shapeID = ""
}
