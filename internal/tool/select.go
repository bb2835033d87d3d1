package tool

import (
	"github.com/sketchwell/sketchwell/engine-go/internal/document"
	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

type selectState int

const (
	selectIdle selectState = iota
	selectMoving
	selectResizing
	selectRotating
	selectPanning
	selectMarquee
)

// selectTool moves, resizes and rotates existing shapes, pans the viewport
// on empty canvas, and marquee-selects with Shift held. Pointer down decides
// the state from the hit target; every interim mutation is history-disabled
// and the net change is committed as one batch on pointer up.
type selectTool struct {
	state selectState
	start geometry.Point

	ids         []string
	before      []*shape.Shape            // pre-gesture snapshots, members and bound text included
	startShapes []*shape.Shape            // per-id frames at gesture start
	descStarts  map[string][]*shape.Shape // group members at gesture start, keyed by group id
	startBounds geometry.Rect
	handle      geometry.Handle

	startViewport document.Viewport
	guides        []geometry.GuideLine
}

func newSelectTool() *selectTool { return &selectTool{} }

func (t *selectTool) Type() Type { return TypeSelect }

// Guides returns the snap guide lines of the in-flight move, for the
// renderer.
func (t *selectTool) Guides() []geometry.GuideLine { return t.guides }

func (t *selectTool) PointerDown(ctx *Context, ev PointerEvent) {
	st := ctx.Store
	t.start = ev.Point

	// Handles first: they sit on top of everything.
	if ids := st.SelectedIDs(); len(ids) > 0 {
		bounds := st.SelectionBounds()
		switch h := geometry.HitHandle(ev.Point, bounds); {
		case h == geometry.HandleRotation:
			t.beginTransform(st, ids, selectRotating)
			t.startBounds = bounds
			return
		case h != geometry.HandleNone && len(ids) == 1:
			t.beginTransform(st, ids, selectResizing)
			t.startBounds = bounds
			t.handle = h
			return
		}
	}

	if hit := st.HitShape(ev.Point, shape.DefaultHitTolerance); hit != nil {
		if ev.Shift {
			st.ToggleSelection(hit.ID)
		} else if !st.IsSelected(hit.ID) {
			st.Select(hit.ID)
		}
		ids := st.SelectedIDs()
		if len(ids) == 0 {
			return
		}
		t.beginTransform(st, ids, selectMoving)
		return
	}

	// Empty canvas: Shift starts a marquee, anything else pans.
	if ev.Shift {
		t.state = selectMarquee
		return
	}
	t.state = selectPanning
	t.startViewport = st.Viewport()
}

func (t *selectTool) beginTransform(st *document.Store, ids []string, state selectState) {
	t.state = state
	t.ids = ids
	t.before = snapshotWithBoundText(st, ids)
	t.startShapes = make([]*shape.Shape, 0, len(ids))
	t.descStarts = make(map[string][]*shape.Shape)
	for _, id := range ids {
		if sh, ok := st.Shape(id); ok {
			t.startShapes = append(t.startShapes, sh.Clone())
		}
		for _, did := range st.Descendants(id) {
			if d, ok := st.Shape(did); ok {
				t.descStarts[id] = append(t.descStarts[id], d.Clone())
			}
		}
	}
}

func (t *selectTool) PointerMove(ctx *Context, ev PointerEvent) {
	switch t.state {
	case selectMoving:
		t.moveTo(ctx, ev)
	case selectResizing:
		t.resizeTo(ctx, ev)
	case selectRotating:
		t.rotateTo(ctx, ev)
	case selectPanning:
		v := t.startViewport
		v.X -= ev.Point.X - t.start.X
		v.Y -= ev.Point.Y - t.start.Y
		ctx.Store.SetViewport(v)
	case selectMarquee:
		ctx.Store.SelectMultiple(ctx.Store.ShapesInRect(geometry.FromPoints(t.start, ev.Point)))
	}
}

// moveTo places the selection at its gesture-start frame translated by the
// pointer delta, adjusted by grid or shape snapping.
func (t *selectTool) moveTo(ctx *Context, ev PointerEvent) {
	st := ctx.Store
	dx := ev.Point.X - t.start.X
	dy := ev.Point.Y - t.start.Y
	t.guides = nil

	startUnion := t.startShapes[0].Bounds()
	for _, sh := range t.startShapes[1:] {
		startUnion = startUnion.Union(sh.Bounds())
	}
	moved := startUnion
	moved.X += dx
	moved.Y += dy

	if ctx.GridSize > 0 {
		snapped := geometry.SnapToGrid(geometry.Point{X: moved.X, Y: moved.Y}, ctx.GridSize)
		dx += snapped.X - moved.X
		dy += snapped.Y - moved.Y
	} else if ctx.SnapEnabled {
		res := geometry.SnapBounds(moved, st.UnselectedBounds())
		dx += res.OffsetX
		dy += res.OffsetY
		t.guides = res.Guides
	}

	for i, id := range t.ids {
		start := t.startShapes[i]
		st.UpdateShape(id, false, func(sh *shape.Shape) {
			sh.X = start.X + dx
			sh.Y = start.Y + dy
		})
		st.SyncBoundText(id)
		for _, d := range t.descStarts[id] {
			st.UpdateShape(d.ID, false, func(sh *shape.Shape) {
				sh.X = d.X + dx
				sh.Y = d.Y + dy
			})
			st.SyncBoundText(d.ID)
		}
	}
}

func (t *selectTool) resizeTo(ctx *Context, ev PointerEvent) {
	st := ctx.Store
	dx := ev.Point.X - t.start.X
	dy := ev.Point.Y - t.start.Y
	frame := geometry.Resize(t.startBounds, t.handle, dx, dy)

	id := t.ids[0]
	start := t.startShapes[0]
	st.UpdateShape(id, false, func(sh *shape.Shape) {
		applyFrame(sh, start, t.startBounds, frame)
	})
	st.SyncBoundText(id)

	// Group members scale with the frame.
	sx, sy := 1.0, 1.0
	if t.startBounds.Width != 0 {
		sx = frame.Width / t.startBounds.Width
	}
	if t.startBounds.Height != 0 {
		sy = frame.Height / t.startBounds.Height
	}
	for _, d := range t.descStarts[id] {
		db := geometry.Rect{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height}
		df := geometry.Rect{
			X:      frame.X + (db.X-t.startBounds.X)*sx,
			Y:      frame.Y + (db.Y-t.startBounds.Y)*sy,
			Width:  db.Width * sx,
			Height: db.Height * sy,
		}
		st.UpdateShape(d.ID, false, func(sh *shape.Shape) {
			applyFrame(sh, d, db, df)
		})
		st.SyncBoundText(d.ID)
	}
}

func (t *selectTool) rotateTo(ctx *Context, ev PointerEvent) {
	st := ctx.Store
	cx, cy := t.startBounds.Center()
	delta := geometry.RotationDelta(geometry.Point{X: cx, Y: cy}, t.start, ev.Point, ev.Shift)
	for i, id := range t.ids {
		start := t.startShapes[i]
		st.UpdateShape(id, false, func(sh *shape.Shape) {
			sh.Angle = start.Angle + delta
		})
		st.SyncBoundText(id)

		// Group members orbit the group's own center so the contents stay
		// under the rotated frame.
		if len(t.descStarts[id]) > 0 {
			pcx, pcy := start.Bounds().Center()
			pivot := geometry.Point{X: pcx, Y: pcy}
			for _, d := range t.descStarts[id] {
				dc := d.Center()
				c := geometry.RotatePoint(dc, pivot, delta)
				st.UpdateShape(d.ID, false, func(sh *shape.Shape) {
					sh.X = d.X + c.X - dc.X
					sh.Y = d.Y + c.Y - dc.Y
					sh.Angle = d.Angle + delta
				})
				st.SyncBoundText(d.ID)
			}
		}
	}
}

// applyFrame maps a shape's gesture-start geometry into the new frame.
// Point-based shapes scale their point list so endpoints track the frame.
func applyFrame(sh, start *shape.Shape, startFrame, frame geometry.Rect) {
	sh.X = frame.X
	sh.Y = frame.Y
	if len(start.Points) > 0 {
		sx, sy := 1.0, 1.0
		if startFrame.Width != 0 {
			sx = frame.Width / startFrame.Width
		}
		if startFrame.Height != 0 {
			sy = frame.Height / startFrame.Height
		}
		sh.Points = make([]geometry.Point, len(start.Points))
		for i, p := range start.Points {
			sh.Points[i] = geometry.Point{X: p.X * sx, Y: p.Y * sy}
		}
	}
	sh.Width = frame.Width
	sh.Height = frame.Height
}

func (t *selectTool) PointerUp(ctx *Context, ev PointerEvent) {
	st := ctx.Store
	switch t.state {
	case selectMoving, selectResizing, selectRotating:
		after := snapshotWithBoundText(st, t.ids)
		if changed(t.before, after) {
			st.RecordBatchUpdate(t.before, after)
		}
	}
	t.reset()
}

// Cancel reverts the in-flight gesture to the exact pre-gesture snapshots
// without recording history.
func (t *selectTool) Cancel(ctx *Context) {
	st := ctx.Store
	switch t.state {
	case selectMoving, selectResizing, selectRotating:
		st.RestoreShapes(t.before)
	case selectPanning:
		st.SetViewport(t.startViewport)
	}
	t.reset()
}

func (t *selectTool) reset() {
	*t = selectTool{}
}

// changed reports whether any snapshot pair differs in geometry, so a
// zero-pixel gesture records nothing.
func changed(before, after []*shape.Shape) bool {
	if len(before) != len(after) {
		return true
	}
	for i := range before {
		b, a := before[i], after[i]
		if b.X != a.X || b.Y != a.Y || b.Width != a.Width || b.Height != a.Height || b.Angle != a.Angle {
			return true
		}
		if len(b.Points) != len(a.Points) {
			return true
		}
		for j := range b.Points {
			if b.Points[j] != a.Points[j] {
				return true
			}
		}
	}
	return false
}
