//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/inamate/whiteboard/internal/editor"
	"github.com/inamate/whiteboard/internal/gesture"
	"github.com/inamate/whiteboard/internal/tool"
)

var ed *editor.Editor

func main() {
	var opts gesture.Options
	if cfg := js.Global().Get("whiteboardConfig"); cfg.Type() == js.TypeObject {
		opts.ReturnToHand = cfg.Get("returnToHand").Truthy()
	}
	ed = editor.New(editor.WithGestureOptions(opts))

	// Create the editor API object
	whiteboardEditor := js.Global().Get("Object").New()

	// --- Commands (frontend → editor) ---
	whiteboardEditor.Set("pointerDown", js.FuncOf(pointerDown))
	whiteboardEditor.Set("pointerMove", js.FuncOf(pointerMove))
	whiteboardEditor.Set("pointerUp", js.FuncOf(pointerUp))
	whiteboardEditor.Set("setTool", js.FuncOf(setTool))
	whiteboardEditor.Set("selectAll", js.FuncOf(selectAll))
	whiteboardEditor.Set("unselectAll", js.FuncOf(unselectAll))
	whiteboardEditor.Set("deleteSelected", js.FuncOf(deleteSelected))
	whiteboardEditor.Set("deletePrevious", js.FuncOf(deletePrevious))
	whiteboardEditor.Set("loadSample", js.FuncOf(loadSample))

	// --- Queries (frontend ← editor) ---
	whiteboardEditor.Set("render", js.FuncOf(render))
	whiteboardEditor.Set("getTool", js.FuncOf(getTool))
	whiteboardEditor.Set("hitTest", js.FuncOf(hitTest))
	whiteboardEditor.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	whiteboardEditor.Set("getVersion", js.FuncOf(getVersion))

	// Register on global scope
	js.Global().Set("whiteboardEditor", whiteboardEditor)

	// Signal that WASM is ready
	js.Global().Set("whiteboardWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Command Handlers ---

func pointer(args []js.Value, fn func(x, y float32)) interface{} {
	if len(args) < 2 {
		return nil
	}
	fn(float32(args[0].Float()), float32(args[1].Float()))
	return nil
}

func pointerDown(this js.Value, args []js.Value) interface{} {
	return pointer(args, ed.PointerDown)
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	return pointer(args, ed.PointerMove)
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	return pointer(args, ed.PointerUp)
}

func setTool(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing tool name"})
	}

	t, err := tool.Parse(args[0].String())
	if err == nil {
		err = ed.SetTool(t)
	}
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	return js.ValueOf(map[string]interface{}{"ok": true})
}

func selectAll(this js.Value, args []js.Value) interface{} {
	ed.SelectAll()
	return nil
}

func unselectAll(this js.Value, args []js.Value) interface{} {
	ed.UnselectAll()
	return nil
}

func deleteSelected(this js.Value, args []js.Value) interface{} {
	ed.DeleteSelected()
	return nil
}

func deletePrevious(this js.Value, args []js.Value) interface{} {
	ed.DeletePrevious()
	return nil
}

func loadSample(this js.Value, args []js.Value) interface{} {
	ed.LoadSample()
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Render())
}

func getTool(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Tool().String())
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.Null()
	}
	id, ok := ed.HitTest(float32(args[0].Float()), float32(args[1].Float()))
	if !ok {
		return js.Null()
	}
	return js.ValueOf(float64(id))
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	box, ok := ed.SelectionBounds()
	if !ok {
		return js.Null()
	}
	data, err := json.Marshal(box)
	if err != nil {
		return js.Null()
	}
	return js.ValueOf(string(data))
}

func getVersion(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(float64(ed.Version()))
}
