// Package editor owns one whiteboard: its camera, its shape catalog and the
// pointer state machine that edits them. Hosts (the wasm bridge and the
// session server) talk to an Editor and read back snapshots to render.
package editor

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/inamate/whiteboard/internal/camera"
	"github.com/inamate/whiteboard/internal/catalog"
	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/gesture"
	"github.com/inamate/whiteboard/internal/guid"
	"github.com/inamate/whiteboard/internal/shape"
	"github.com/inamate/whiteboard/internal/tool"
	"github.com/inamate/whiteboard/internal/vecmath"
)

// Editor serializes all edits to a single board. It is safe for concurrent
// use.
type Editor struct {
	mu sync.RWMutex

	camera  camera.Camera
	catalog catalog.State
	ids     *guid.Generator
	ctrl    *gesture.Controller
	tool    tool.Tool

	// Version increments after every event that may have changed state.
	version uint64

	logger *slog.Logger

	subs    map[int]chan document.Snapshot
	nextSub int
}

// Option configures an Editor.
type Option func(*config)

type config struct {
	camera  camera.Camera
	ids     *guid.Generator
	logger  *slog.Logger
	gesture gesture.Options
	tool    tool.Tool
}

// WithCamera sets the initial camera.
func WithCamera(c camera.Camera) Option {
	return func(cfg *config) { cfg.camera = c }
}

// WithGenerator shares an ID generator with the editor.
func WithGenerator(g *guid.Generator) Option {
	return func(cfg *config) { cfg.ids = g }
}

func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) { cfg.logger = l }
}

func WithGestureOptions(o gesture.Options) Option {
	return func(cfg *config) { cfg.gesture = o }
}

// WithTool sets the initial tool. The default is the hand tool.
func WithTool(t tool.Tool) Option {
	return func(cfg *config) { cfg.tool = t }
}

// New creates an editor with an empty catalog.
func New(opts ...Option) *Editor {
	cfg := config{camera: camera.Default(), tool: tool.Hand}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ids == nil {
		cfg.ids = guid.New()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return &Editor{
		camera: cfg.camera,
		ids:    cfg.ids,
		ctrl:   gesture.New(cfg.gesture, cfg.logger),
		tool:   cfg.tool,
		logger: cfg.logger,
		subs:   make(map[int]chan document.Snapshot),
	}
}

// --- Commands (host → editor) ---

// PointerDown starts a gesture at viewport position (x, y).
func (e *Editor) PointerDown(x, y float32) {
	e.Pointer(gesture.Sample{X: x, Y: y, Kind: gesture.Down})
}

// PointerMove reports a pointer position.
func (e *Editor) PointerMove(x, y float32) {
	e.Pointer(gesture.Sample{X: x, Y: y, Kind: gesture.Move})
}

// PointerUp ends the current gesture.
func (e *Editor) PointerUp(x, y float32) {
	e.Pointer(gesture.Sample{X: x, Y: y, Kind: gesture.Up})
}

// Pointer feeds one raw pointer sample through the gesture controller.
// Samples without a valid kind are dropped.
func (e *Editor) Pointer(s gesture.Sample) {
	if !s.Kind.Valid() {
		e.logger.Warn("dropping pointer sample", "kind", s.Kind)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.ctrl.Handle(store{e}, e.tool, s)
	if next != e.tool {
		e.logger.Debug("tool changed by gesture", "from", e.tool, "to", next)
		e.tool = next
	}
	e.changed()
}

// SetTool selects the tool used by the next gesture. A gesture already in
// progress keeps the tool it started with.
func (e *Editor) SetTool(t tool.Tool) error {
	if !t.Valid() {
		return fmt.Errorf("set tool: %w", tool.ErrUnknown)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.tool = t
	e.changed()
	return nil
}

// SelectAll selects every shape.
func (e *Editor) SelectAll() {
	e.Dispatch(catalog.SelectAll{})
}

// UnselectAll clears the selection.
func (e *Editor) UnselectAll() {
	e.Dispatch(catalog.UnselectAll{})
}

// DeleteSelected removes the selected shapes.
func (e *Editor) DeleteSelected() {
	e.Dispatch(catalog.DeleteSelected{})
}

// DeletePrevious is reserved for undo and currently leaves the board as is.
func (e *Editor) DeletePrevious() {
	e.Dispatch(catalog.DeletePrevious{})
}

// Dispatch applies catalog actions in order.
func (e *Editor) Dispatch(actions ...catalog.Action) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, a := range actions {
		e.catalog = catalog.Reduce(e.catalog, a)
		e.logger.Debug("catalog action", "action", a.Name())
	}
	e.changed()
}

// DispatchCamera applies a camera action.
func (e *Editor) DispatchCamera(a camera.Action) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.camera = camera.Reduce(e.camera, a)
	e.changed()
}

// LoadSample adds the demo scene to the board.
func (e *Editor) LoadSample() {
	e.Dispatch(document.SampleActions(e.ids)...)
}

// --- Queries (host ← editor) ---

func (e *Editor) Camera() camera.Camera {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.camera
}

// Catalog returns the current catalog. The value is never modified by later
// edits.
func (e *Editor) Catalog() catalog.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog
}

func (e *Editor) Tool() tool.Tool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tool
}

func (e *Editor) Version() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.version
}

// Dragging reports whether a gesture is in progress.
func (e *Editor) Dragging() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ctrl.Dragging()
}

// HitTest returns the topmost shape under viewport position (x, y).
func (e *Editor) HitTest(x, y float32) (guid.ID, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.HitTest(e.camera.ViewportToGlobal(vecmath.Vec2(x, y)))
}

// SelectionBounds returns the global bounding box of the selection.
func (e *Editor) SelectionBounds() (shape.Box, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.SelectionBounds()
}

// Snapshot returns everything a renderer needs for the current state.
func (e *Editor) Snapshot() document.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot()
}

// Render returns the snapshot as JSON.
func (e *Editor) Render() string {
	result, err := e.Snapshot().ToJSON()
	if err != nil {
		e.logger.Error("render snapshot", "error", err)
	}
	return result
}

// Subscribe returns a channel that receives the latest snapshot after each
// change. Slow readers only see the most recent one. The returned func
// unsubscribes and closes the channel.
func (e *Editor) Subscribe() (<-chan document.Snapshot, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextSub
	e.nextSub++
	ch := make(chan document.Snapshot, 1)
	e.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			delete(e.subs, id)
			close(ch)
		})
	}
}

func (e *Editor) snapshot() document.Snapshot {
	snap := document.Snapshot{
		Version: e.version,
		Tool:    e.tool,
		Camera:  document.NewCamera(e.camera),
		Shapes:  document.NewShapes(e.catalog),
	}
	if box, ok := e.ctrl.Selection(); ok {
		snap.Selection = &box
	}
	if box, ok := e.catalog.SelectionBounds(); ok {
		snap.SelectionBounds = &box
	}
	if p, ok := e.ctrl.Cursor(); ok {
		snap.Cursor = &p
	}
	return snap
}

// changed bumps the version and notifies subscribers. Must hold mu.
func (e *Editor) changed() {
	e.version++
	if len(e.subs) == 0 {
		return
	}

	snap := e.snapshot()
	for _, ch := range e.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

// store exposes the editor state to the gesture controller. Its methods run
// with mu already held.
type store struct {
	e *Editor
}

func (s store) Camera() camera.Camera  { return s.e.camera }
func (s store) Catalog() catalog.State { return s.e.catalog }
func (s store) NextID() guid.ID        { return s.e.ids.Next() }

func (s store) ApplyCamera(a camera.Action) {
	s.e.camera = camera.Reduce(s.e.camera, a)
}

func (s store) Apply(a catalog.Action) {
	s.e.catalog = catalog.Reduce(s.e.catalog, a)
}
