package editor

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/inamate/whiteboard/internal/camera"
	"github.com/inamate/whiteboard/internal/gesture"
	"github.com/inamate/whiteboard/internal/guid"
	"github.com/inamate/whiteboard/internal/shape"
	"github.com/inamate/whiteboard/internal/tool"
	"github.com/inamate/whiteboard/internal/vecmath"
)

func drawRect(e *Editor, x1, y1, x2, y2 float32) {
	e.PointerDown(x1, y1)
	e.PointerMove(x2, y2)
	e.PointerUp(x2, y2)
}

func TestDrawAndSelect(t *testing.T) {
	e := New(WithTool(tool.Rect))

	drawRect(e, 10, 10, 50, 40)
	drawRect(e, 100, 100, 120, 120)

	cat := e.Catalog()
	if cat.Len() != 2 {
		t.Fatalf("catalog has %d shapes", cat.Len())
	}
	sh, _ := cat.Get(0)
	r := sh.(shape.Rectangle)
	if !r.Position.Eq(vecmath.Vec2(10, 10)) || !r.Size.Eq(vecmath.Vec2(40, 30)) {
		t.Errorf("rect = %+v", r)
	}

	if err := e.SetTool(tool.Select); err != nil {
		t.Fatal(err)
	}
	e.PointerDown(20, 20)
	e.PointerUp(20, 20)

	if sel := e.Catalog().Selected(); len(sel) != 1 || sel[0] != 0 {
		t.Errorf("selected = %v", sel)
	}

	e.DeleteSelected()
	if ids := e.Catalog().IDs(); len(ids) != 1 || ids[0] != 1 {
		t.Errorf("ids after delete = %v", ids)
	}
}

func TestCommands(t *testing.T) {
	e := New()
	e.LoadSample()

	e.SelectAll()
	if n := len(e.Catalog().Selected()); n != 3 {
		t.Fatalf("selected %d after SelectAll", n)
	}
	if _, ok := e.SelectionBounds(); !ok {
		t.Error("no selection bounds with everything selected")
	}

	e.DeletePrevious()
	if e.Catalog().Len() != 3 {
		t.Error("DeletePrevious changed the catalog")
	}

	e.UnselectAll()
	if e.Catalog().HasSelection() {
		t.Error("selection left after UnselectAll")
	}
}

func TestSetToolRejectsUnknown(t *testing.T) {
	e := New()
	if err := e.SetTool(tool.Tool(42)); !errors.Is(err, tool.ErrUnknown) {
		t.Errorf("err = %v", err)
	}
	if e.Tool() != tool.Hand {
		t.Errorf("tool = %v", e.Tool())
	}
}

func TestHandPansCamera(t *testing.T) {
	e := New(WithCamera(camera.New(vecmath.Zero2, 2)))

	e.PointerDown(100, 100)
	e.PointerMove(120, 140)
	e.PointerUp(120, 140)

	if pan := e.Camera().Pan; !pan.Eq(vecmath.Vec2(10, 20)) {
		t.Errorf("pan = %v, want (10,20)", pan)
	}
}

func TestHitTestUsesCamera(t *testing.T) {
	e := New(WithTool(tool.Rect))
	drawRect(e, 0, 0, 10, 10)

	e.DispatchCamera(camera.Move{Base: vecmath.Zero2, Offset: vecmath.Vec2(100, 0)})

	if _, ok := e.HitTest(5, 5); ok {
		t.Error("hit at old viewport position")
	}
	if id, ok := e.HitTest(105, 5); !ok || id != 0 {
		t.Errorf("HitTest(105,5) = %d, %v", id, ok)
	}
}

func TestReturnToHandOption(t *testing.T) {
	e := New(WithTool(tool.Circle), WithGestureOptions(gesture.Options{ReturnToHand: true}))

	drawRect(e, 0, 0, 3, 4)

	if e.Tool() != tool.Hand {
		t.Errorf("tool = %v, want hand", e.Tool())
	}
}

func TestSharedGenerator(t *testing.T) {
	ids := guid.New()
	ids.Next()
	e := New(WithGenerator(ids), WithTool(tool.Freehand))

	e.PointerDown(0, 0)
	e.PointerUp(0, 0)

	if got := e.Catalog().IDs(); len(got) != 1 || got[0] != 1 {
		t.Errorf("ids = %v", got)
	}
}

func TestSnapshot(t *testing.T) {
	e := New(WithTool(tool.Select))
	e.LoadSample()

	e.PointerDown(-50, -50)
	e.PointerMove(-10, -10)

	snap := e.Snapshot()
	if snap.Selection == nil {
		t.Fatal("open marquee missing from snapshot")
	}
	if snap.Cursor == nil || !snap.Cursor.Eq(vecmath.Vec2(-10, -10)) {
		t.Errorf("cursor = %v", snap.Cursor)
	}
	if len(snap.Shapes) != 3 || snap.Version != e.Version() {
		t.Errorf("snapshot = %+v", snap)
	}

	e.PointerUp(-10, -10)
	if e.Snapshot().Selection != nil {
		t.Error("marquee still shown after release")
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(e.Render()), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["tool"] != "select" {
		t.Errorf("tool = %v", decoded["tool"])
	}
}

func TestSubscribe(t *testing.T) {
	e := New(WithTool(tool.Rect))
	ch, cancel := e.Subscribe()

	e.PointerDown(0, 0)
	e.PointerMove(5, 5)

	select {
	case snap := <-ch:
		if snap.Version != e.Version() {
			t.Errorf("got version %d, want latest %d", snap.Version, e.Version())
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}

	cancel()
	cancel()
	if _, ok := <-ch; ok {
		t.Error("channel open after cancel")
	}

	e.PointerUp(5, 5)
}

func TestConcurrentUse(t *testing.T) {
	e := New(WithTool(tool.Freehand))
	var wg sync.WaitGroup

	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				e.PointerMove(float32(i), float32(j))
				_ = e.Snapshot()
			}
		}()
	}
	wg.Wait()

	if v := e.Version(); v != 200 {
		t.Errorf("version = %d, want 200", v)
	}
}

func TestPointerWithoutKindIsDropped(t *testing.T) {
	e := New(WithTool(tool.Rect))
	before := e.Version()

	e.Pointer(gesture.Sample{X: 10, Y: 10})

	if e.Version() != before || e.Dragging() || e.Catalog().Len() != 0 {
		t.Errorf("sample without kind changed the editor: version %d, dragging %v", e.Version(), e.Dragging())
	}
}
