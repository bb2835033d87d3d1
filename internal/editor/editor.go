// Package editor binds the document store, tool manager and clipboard into
// one caller-owned editing engine. There is deliberately no process-wide
// default instance: every frontend constructs, owns and disposes its own
// Editor, so independent editors can coexist.
package editor

import (
	"github.com/sketchwell/sketchwell/engine-go/internal/clipboard"
	"github.com/sketchwell/sketchwell/engine-go/internal/document"
	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
	"github.com/sketchwell/sketchwell/engine-go/internal/tool"
	"github.com/sketchwell/sketchwell/engine-go/internal/typeid"
)

// Options configure a new Editor.
type Options struct {
	// HistoryLimit overrides the default history bound when positive.
	HistoryLimit int
	// GridSize enables grid snapping when positive.
	GridSize float64
	// SystemClipboard mirrors copy/paste through the OS clipboard.
	SystemClipboard bool
}

// Editor is the engine facade a frontend drives. All methods are
// single-threaded: callers serialize access the way an event loop does.
type Editor struct {
	id    string
	store *document.Store
	tools *tool.Manager
	clip  *clipboard.Clipboard
	anim  *zoomAnimation
}

func New(opts Options) *Editor {
	e := &Editor{
		id:    typeid.NewDocumentID(),
		store: document.NewStore(),
		clip:  clipboard.New(opts.SystemClipboard),
	}
	if opts.HistoryLimit > 0 {
		e.store.SetHistoryLimit(opts.HistoryLimit)
	}
	e.tools = tool.NewManager(func() *document.Store { return e.store })
	if opts.GridSize > 0 {
		e.tools.SetGridSize(opts.GridSize)
	}
	return e
}

func (e *Editor) ID() string                      { return e.id }
func (e *Editor) Store() *document.Store          { return e.store }
func (e *Editor) Tools() *tool.Manager            { return e.tools }
func (e *Editor) Clipboard() *clipboard.Clipboard { return e.clip }

// --- Selector queries ---

func (e *Editor) CanUndo() bool                  { return e.store.CanUndo() }
func (e *Editor) CanRedo() bool                  { return e.store.CanRedo() }
func (e *Editor) ActiveTool() tool.Type          { return e.tools.ActiveTool() }
func (e *Editor) SelectionBounds() geometry.Rect { return e.store.SelectionBounds() }
func (e *Editor) Viewport() document.Viewport    { return e.store.Viewport() }

// --- Command surface ---

func (e *Editor) SetTool(t tool.Type) { e.tools.SetActiveTool(t) }
func (e *Editor) Undo() bool          { return e.store.Undo() }
func (e *Editor) Redo() bool          { return e.store.Redo() }

func (e *Editor) PointerDown(ev tool.PointerEvent) { e.tools.PointerDown(ev) }
func (e *Editor) PointerMove(ev tool.PointerEvent) { e.tools.PointerMove(ev) }
func (e *Editor) PointerUp(ev tool.PointerEvent)   { e.tools.PointerUp(ev) }
func (e *Editor) KeyDown(ev tool.KeyEvent)         { e.tools.KeyDown(ev) }

func (e *Editor) GroupSelectedShapes() *shape.Shape { return e.store.GroupSelected() }
func (e *Editor) UngroupSelectedShapes()            { e.store.UngroupSelected() }

func (e *Editor) AlignLeft()    { e.store.AlignSelected(geometry.AlignLeft) }
func (e *Editor) AlignRight()   { e.store.AlignSelected(geometry.AlignRight) }
func (e *Editor) AlignTop()     { e.store.AlignSelected(geometry.AlignTop) }
func (e *Editor) AlignBottom()  { e.store.AlignSelected(geometry.AlignBottom) }
func (e *Editor) AlignCenterH() { e.store.AlignSelected(geometry.AlignCenterH) }
func (e *Editor) AlignCenterV() { e.store.AlignSelected(geometry.AlignCenterV) }

func (e *Editor) DistributeHorizontally() { e.store.DistributeSelected(geometry.AxisHorizontal) }
func (e *Editor) DistributeVertically()   { e.store.DistributeSelected(geometry.AxisVertical) }

func (e *Editor) BringToFront() { e.store.BringToFront() }
func (e *Editor) SendToBack()   { e.store.SendToBack() }
func (e *Editor) BringForward() { e.store.BringForward() }
func (e *Editor) SendBackward() { e.store.SendBackward() }

func (e *Editor) CopySelectedShapes() int   { return e.clip.Copy(e.store) }
func (e *Editor) CutSelectedShapes() int    { return e.clip.Cut(e.store) }
func (e *Editor) PasteShapes() []string     { return e.clip.Paste(e.store) }
func (e *Editor) DuplicateShapes() []string { return e.clip.Duplicate(e.store) }

func (e *Editor) DeleteSelectedShapes() {
	e.store.DeleteShapes(e.store.SelectedIDs(), true)
}

func (e *Editor) SelectAll() { e.store.SelectAll() }

// LoadDocument replaces the document from serialized JSON. History resets;
// a validation failure leaves the current document untouched.
func (e *Editor) LoadDocument(data []byte) error {
	e.tools.CancelGesture()
	return e.store.ImportJSON(data)
}

// SaveDocument serializes the current document.
func (e *Editor) SaveDocument() ([]byte, error) {
	return e.store.ExportJSON()
}
