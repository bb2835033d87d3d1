// Package tool routes pointer and keyboard input to per-tool state
// machines. Tools compute candidate mutations through the geometry helpers
// and apply them to the document store with history disabled; one batched
// history entry is recorded at gesture end, or nothing on cancel.
package tool

import (
	"github.com/sketchwell/sketchwell/engine-go/internal/document"
	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

type Type string

const (
	TypeSelect    Type = "select"
	TypeRectangle Type = "rectangle"
	TypeEllipse   Type = "ellipse"
	TypeLine      Type = "line"
	TypeArrow     Type = "arrow"
	TypeDraw      Type = "draw"
	TypeText      Type = "text"
	TypeEraser    Type = "eraser"
)

// PointerEvent is one pointer sample in canvas coordinates.
type PointerEvent struct {
	Point geometry.Point
	Shift bool
	Alt   bool
	Ctrl  bool
}

// KeyEvent is a key press relevant to the engine (arrows, delete, escape).
type KeyEvent struct {
	Key   string
	Shift bool
}

const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyEscape     = "Escape"
	KeyDelete     = "Delete"
	KeyBackspace  = "Backspace"
)

// keyboardMoveStep is how far arrow keys nudge the selection; Shift scales
// it by ten.
const keyboardMoveStep = 1.0

// Defaults are the current style-panel values stamped onto new shapes.
type Defaults struct {
	Style      shape.Style
	Opacity    float64
	FontSize   float64
	FontFamily string
	Roughness  int
}

// Context is passed to every tool callback. Store is re-read from the
// manager's accessor per event so tools never hold a stale document.
type Context struct {
	Store       *document.Store
	Defaults    Defaults
	GridSize    float64
	SnapEnabled bool
}

// snapPoint applies grid snapping to a raw pointer position when a grid is
// configured.
func (c *Context) snapPoint(p geometry.Point) geometry.Point {
	return geometry.SnapToGrid(p, c.GridSize)
}

// Tool is one pointer-gesture state machine. Exactly one gesture is in
// flight per tool; Cancel aborts it restoring pre-gesture state.
type Tool interface {
	Type() Type
	PointerDown(ctx *Context, ev PointerEvent)
	PointerMove(ctx *Context, ev PointerEvent)
	PointerUp(ctx *Context, ev PointerEvent)
	Cancel(ctx *Context)
}

// Manager owns the tool instances and routes events to the active one.
type Manager struct {
	store       func() *document.Store
	tools       map[Type]Tool
	active      Type
	defaults    Defaults
	gridSize    float64
	snapEnabled bool
}

// NewManager creates a manager over a store accessor. The accessor is
// invoked per event, so callers that swap documents never leave the tools
// pointing at a stale store.
func NewManager(store func() *document.Store) *Manager {
	m := &Manager{
		store:  store,
		tools:  make(map[Type]Tool),
		active: TypeSelect,
		defaults: Defaults{
			Style:    shape.Style{StrokeColor: "#1e1e1e", StrokeWidth: 2},
			Opacity:  1,
			FontSize: 16,
		},
		snapEnabled: true,
	}
	for _, t := range []Tool{
		newSelectTool(),
		newBoxTool(TypeRectangle),
		newBoxTool(TypeEllipse),
		newLinearTool(TypeLine),
		newLinearTool(TypeArrow),
		newDrawTool(),
		newTextTool(),
		newEraserTool(),
	} {
		m.tools[t.Type()] = t
	}
	return m
}

func (m *Manager) context() *Context {
	return &Context{
		Store:       m.store(),
		Defaults:    m.defaults,
		GridSize:    m.gridSize,
		SnapEnabled: m.snapEnabled,
	}
}

// SetActiveTool switches tools, aborting any in-flight gesture first.
func (m *Manager) SetActiveTool(t Type) {
	if _, ok := m.tools[t]; !ok || t == m.active {
		return
	}
	m.tools[m.active].Cancel(m.context())
	m.active = t
}

func (m *Manager) ActiveTool() Type { return m.active }

// Tool returns the instance for a tool type.
func (m *Manager) Tool(t Type) Tool { return m.tools[t] }

func (m *Manager) Defaults() Defaults       { return m.defaults }
func (m *Manager) SetDefaults(d Defaults)   { m.defaults = d }
func (m *Manager) SetGridSize(size float64) { m.gridSize = size }
func (m *Manager) SetSnapEnabled(on bool)   { m.snapEnabled = on }

func (m *Manager) PointerDown(ev PointerEvent) {
	m.tools[m.active].PointerDown(m.context(), ev)
}

func (m *Manager) PointerMove(ev PointerEvent) {
	m.tools[m.active].PointerMove(m.context(), ev)
}

func (m *Manager) PointerUp(ev PointerEvent) {
	m.tools[m.active].PointerUp(m.context(), ev)
}

// CancelGesture aborts the active tool's in-flight gesture, if any.
func (m *Manager) CancelGesture() {
	m.tools[m.active].Cancel(m.context())
}

// KeyDown handles engine-level keys: Escape cancels the gesture, Delete
// removes the selection, arrow keys nudge it with the same
// snapshot-then-batch pattern pointer gestures use.
func (m *Manager) KeyDown(ev KeyEvent) {
	ctx := m.context()
	switch ev.Key {
	case KeyEscape:
		m.tools[m.active].Cancel(ctx)
	case KeyDelete, KeyBackspace:
		ctx.Store.DeleteShapes(ctx.Store.SelectedIDs(), true)
	case KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown:
		m.moveSelection(ctx, ev)
	}
}

func (m *Manager) moveSelection(ctx *Context, ev KeyEvent) {
	ids := ctx.Store.SelectedIDs()
	if len(ids) == 0 {
		return
	}
	step := keyboardMoveStep
	if ev.Shift {
		step *= 10
	}
	var dx, dy float64
	switch ev.Key {
	case KeyArrowLeft:
		dx = -step
	case KeyArrowRight:
		dx = step
	case KeyArrowUp:
		dy = -step
	case KeyArrowDown:
		dy = step
	}

	before := snapshotWithBoundText(ctx.Store, ids)
	ctx.Store.TranslateShapes(ids, dx, dy)
	after := snapshotWithBoundText(ctx.Store, ids)
	ctx.Store.RecordBatchUpdate(before, after)
}

// snapshotWithBoundText deep-copies the shapes, the members of any groups
// among them, and all bound text children, the unit a move gesture must
// capture for undo.
func snapshotWithBoundText(st *document.Store, ids []string) []*shape.Shape {
	var out []*shape.Shape
	add := func(id string) {
		sh, ok := st.Shape(id)
		if !ok {
			return
		}
		out = append(out, sh.Clone())
		if t, ok := st.BoundText(id); ok {
			out = append(out, t.Clone())
		}
	}
	for _, id := range ids {
		add(id)
		for _, did := range st.Descendants(id) {
			add(did)
		}
	}
	return out
}
