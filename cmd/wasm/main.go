//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/sketchwell/sketchwell/engine-go/internal/editor"
	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/tool"
)

var ed *editor.Editor

func main() {
	ed = editor.New(editor.Options{})

	api := js.Global().Get("Object").New()

	// --- Commands (frontend → engine) ---
	api.Set("setTool", js.FuncOf(setTool))
	api.Set("pointerDown", js.FuncOf(pointerHandler(ed.PointerDown)))
	api.Set("pointerMove", js.FuncOf(pointerHandler(ed.PointerMove)))
	api.Set("pointerUp", js.FuncOf(pointerHandler(ed.PointerUp)))
	api.Set("keyDown", js.FuncOf(keyDown))
	api.Set("command", js.FuncOf(command))
	api.Set("setZoom", js.FuncOf(setZoom))
	api.Set("animateZoom", js.FuncOf(animateZoom))
	api.Set("pan", js.FuncOf(pan))
	api.Set("zoomToFit", js.FuncOf(zoomToFit))
	api.Set("loadDocument", js.FuncOf(loadDocument))

	// --- Queries (frontend ← engine) ---
	api.Set("saveDocument", js.FuncOf(saveDocument))
	api.Set("getShapes", js.FuncOf(getShapes))
	api.Set("getSelection", js.FuncOf(getSelection))
	api.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	api.Set("getViewport", js.FuncOf(getViewport))
	api.Set("getActiveTool", js.FuncOf(getActiveTool))
	api.Set("canUndo", js.FuncOf(canUndo))
	api.Set("canRedo", js.FuncOf(canRedo))

	js.Global().Set("sketchwellEngine", api)
	js.Global().Set("sketchwellWasmReady", js.ValueOf(true))

	// Keep the Go runtime alive
	select {}
}

// --- Command handlers ---

func setTool(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	ed.SetTool(tool.Type(args[0].String()))
	return nil
}

// pointerHandler adapts one of the editor's pointer methods to a JS
// callback taking (x, y, shift?, alt?, ctrl?).
func pointerHandler(fn func(tool.PointerEvent)) func(js.Value, []js.Value) interface{} {
	return func(this js.Value, args []js.Value) interface{} {
		if len(args) < 2 {
			return nil
		}
		ev := tool.PointerEvent{
			Point: geometry.Point{X: args[0].Float(), Y: args[1].Float()},
		}
		if len(args) > 2 {
			ev.Shift = args[2].Truthy()
		}
		if len(args) > 3 {
			ev.Alt = args[3].Truthy()
		}
		if len(args) > 4 {
			ev.Ctrl = args[4].Truthy()
		}
		fn(ev)
		return nil
	}
}

func keyDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	ev := tool.KeyEvent{Key: args[0].String()}
	if len(args) > 1 {
		ev.Shift = args[1].Truthy()
	}
	ed.KeyDown(ev)
	return nil
}

func command(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	switch args[0].String() {
	case "undo":
		ed.Undo()
	case "redo":
		ed.Redo()
	case "copy":
		ed.CopySelectedShapes()
	case "cut":
		ed.CutSelectedShapes()
	case "paste":
		ed.PasteShapes()
	case "duplicate":
		ed.DuplicateShapes()
	case "delete":
		ed.DeleteSelectedShapes()
	case "selectAll":
		ed.SelectAll()
	case "group":
		ed.GroupSelectedShapes()
	case "ungroup":
		ed.UngroupSelectedShapes()
	case "alignLeft":
		ed.AlignLeft()
	case "alignRight":
		ed.AlignRight()
	case "alignTop":
		ed.AlignTop()
	case "alignBottom":
		ed.AlignBottom()
	case "alignCenterH":
		ed.AlignCenterH()
	case "alignCenterV":
		ed.AlignCenterV()
	case "distributeH":
		ed.DistributeHorizontally()
	case "distributeV":
		ed.DistributeVertically()
	case "bringToFront":
		ed.BringToFront()
	case "sendToBack":
		ed.SendToBack()
	case "bringForward":
		ed.BringForward()
	case "sendBackward":
		ed.SendBackward()
	}
	return nil
}

func setZoom(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	ed.SetZoom(args[0].Float(), geometry.Point{X: args[1].Float(), Y: args[2].Float()})
	return nil
}

func animateZoom(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	raf := js.Global().Get("requestAnimationFrame")
	schedule := func(step func()) {
		var cb js.Func
		cb = js.FuncOf(func(js.Value, []js.Value) interface{} {
			cb.Release()
			step()
			return nil
		})
		raf.Invoke(cb)
	}
	ed.AnimateZoom(
		args[0].Float(),
		geometry.Point{X: args[1].Float(), Y: args[2].Float()},
		editor.DefaultZoomDuration,
		schedule,
	)
	return nil
}

func pan(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	ed.Pan(args[0].Float(), args[1].Float())
	return nil
}

func zoomToFit(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	ed.ZoomToFit(args[0].Float(), args[1].Float())
	return nil
}

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing document JSON"})
	}
	if err := ed.LoadDocument([]byte(args[0].String())); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// --- Query handlers ---

func saveDocument(this js.Value, args []js.Value) interface{} {
	data, err := ed.SaveDocument()
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(string(data))
}

func getShapes(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(ed.Store().OrderedShapes())
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(string(data))
}

func getSelection(this js.Value, args []js.Value) interface{} {
	ids := ed.Store().SelectedIDs()
	out := make([]interface{}, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return js.ValueOf(out)
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	b := ed.SelectionBounds()
	return js.ValueOf(map[string]interface{}{
		"x": b.X, "y": b.Y, "width": b.Width, "height": b.Height,
	})
}

func getViewport(this js.Value, args []js.Value) interface{} {
	v := ed.Viewport()
	return js.ValueOf(map[string]interface{}{"x": v.X, "y": v.Y, "zoom": v.Zoom})
}

func getActiveTool(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(string(ed.ActiveTool()))
}

func canUndo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.CanUndo())
}

func canRedo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.CanRedo())
}
