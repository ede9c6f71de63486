// Package gesture turns raw pointer events into camera and catalog actions.
//
// A Controller is either idle or dragging. The transient state of a drag
// lives in a Drag value that exists only between pointer-down and
// pointer-up, so nothing from one gesture can leak into the next.
package gesture

import (
	"log/slog"

	"github.com/inamate/whiteboard/internal/camera"
	"github.com/inamate/whiteboard/internal/catalog"
	"github.com/inamate/whiteboard/internal/guid"
	"github.com/inamate/whiteboard/internal/shape"
	"github.com/inamate/whiteboard/internal/tool"
	"github.com/inamate/whiteboard/internal/vecmath"
)

// Store is the state a controller reads and mutates. Apply and ApplyCamera
// must make the new state visible before they return.
type Store interface {
	Camera() camera.Camera
	Catalog() catalog.State
	ApplyCamera(a camera.Action)
	Apply(a catalog.Action)
	NextID() guid.ID
}

// Drag is the transient state of an in-progress gesture.
type Drag struct {
	// Tool is the tool the gesture started with.
	Tool tool.Tool
	// Start is the pointer-down position in viewport space.
	Start vecmath.Vector2
	// ActiveShape is the shape being drawn by Rect, Circle and Freehand.
	ActiveShape *guid.ID
	// SelectionBox is the open marquee in global space, if any.
	SelectionBox *shape.Box
}

// Options tune UX policy.
type Options struct {
	// ReturnToHand asks the host to switch back to the hand tool once a
	// shape has been drawn.
	ReturnToHand bool
}

// Controller is the pointer state machine. It is not safe for concurrent
// use; the owner serializes events.
type Controller struct {
	opts      Options
	logger    *slog.Logger
	drag      *Drag
	anchorPan vecmath.Vector2
	cursor    *vecmath.Vector2
}

// New returns an idle controller. A nil logger uses slog.Default.
func New(opts Options, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{opts: opts, logger: logger}
}

// Handle dispatches a sample to PointerDown, PointerMove or PointerUp and
// returns the tool the host should use afterwards.
func (c *Controller) Handle(st Store, current tool.Tool, s Sample) tool.Tool {
	switch s.Kind {
	case Down:
		c.PointerDown(st, current, s.Point())
	case Move:
		c.PointerMove(st, s.Point())
	case Up:
		if next, ok := c.PointerUp(st, s.Point()); ok {
			return next
		}
	}
	return current
}

// PointerDown starts a gesture with the given tool at viewport point p.
func (c *Controller) PointerDown(st Store, t tool.Tool, p vecmath.Vector2) {
	c.setCursor(p)

	if c.drag != nil {
		c.logger.Warn("pointer down while dragging, finishing previous gesture", "tool", c.drag.Tool)
		c.PointerUp(st, p)
	}

	cam := st.Camera()
	global := cam.ViewportToGlobal(p)
	d := &Drag{Tool: t, Start: p}

	switch t {
	case tool.Hand:
		c.anchorPan = cam.Pan
	case tool.Rect, tool.Circle, tool.Freehand:
		st.Apply(catalog.UnselectAll{})
		id := st.NextID()
		st.Apply(catalog.UpsertShape{
			ID:       id,
			Position: global,
			Size:     vecmath.Zero2,
			Selected: false,
			Tool:     t,
		})
		d.ActiveShape = &id
	case tool.Select:
		st.Apply(catalog.SelectAtPoint{Point: global})
		if st.Catalog().HasSelection() {
			st.Apply(catalog.CommitSelectedAnchors{})
		} else {
			box := shape.NormalizeBox(global, global)
			d.SelectionBox = &box
		}
	case tool.Text:
		st.Apply(catalog.UnselectAll{})
	default:
		panic("gesture: unknown tool " + t.String())
	}

	c.drag = d
	c.logger.Debug("gesture started", "tool", t, "x", global.X, "y", global.Y)
}

// PointerMove records p as the last known pointer position and, while
// dragging, updates the camera or catalog.
func (c *Controller) PointerMove(st Store, p vecmath.Vector2) {
	c.setCursor(p)

	d := c.drag
	if d == nil {
		return
	}

	cam := st.Camera()
	p1 := cam.ViewportToGlobal(d.Start)
	p2 := cam.ViewportToGlobal(p)
	offset := p2.Sub(p1)
	box := shape.NormalizeBox(p1, p2)

	switch d.Tool {
	case tool.Hand:
		st.ApplyCamera(camera.Move{Base: c.anchorPan, Offset: offset})
	case tool.Rect:
		st.Apply(catalog.UpsertShape{
			ID:       d.active(),
			Position: box.Origin,
			Size:     box.Extent,
			Tool:     tool.Rect,
		})
	case tool.Circle:
		st.Apply(catalog.UpsertShape{
			ID:       d.active(),
			Position: p1,
			Size:     p2,
			Tool:     tool.Circle,
		})
	case tool.Freehand:
		st.Apply(catalog.UpsertShape{
			ID:       d.active(),
			Position: p2,
			Size:     vecmath.Zero2,
			Tool:     tool.Freehand,
		})
	case tool.Select:
		if d.SelectionBox != nil {
			d.SelectionBox = &box
			st.Apply(catalog.SelectIntersecting{Box: box})
		} else {
			st.Apply(catalog.UpsertSelectedShapes{Offset: offset})
		}
	case tool.Text:
	}
}

// PointerUp finishes the current gesture. When the controller's policy asks
// for a tool change it returns the new tool and true.
func (c *Controller) PointerUp(st Store, p vecmath.Vector2) (tool.Tool, bool) {
	c.setCursor(p)

	d := c.drag
	if d == nil {
		return 0, false
	}
	c.drag = nil

	switch d.Tool {
	case tool.Hand:
		c.anchorPan = st.Camera().Pan
	case tool.Rect, tool.Circle, tool.Freehand:
		id := d.active()
		st.Apply(catalog.CommitSelectedAnchors{})
		c.logger.Debug("shape finished", "tool", d.Tool, "id", id)
		if c.opts.ReturnToHand {
			return tool.Hand, true
		}
	case tool.Select:
		st.Apply(catalog.CommitSelectedAnchors{})
	case tool.Text:
	}

	c.logger.Debug("gesture ended", "tool", d.Tool)
	return 0, false
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.drag != nil
}

// Drag returns a copy of the in-progress gesture state.
func (c *Controller) Drag() (Drag, bool) {
	if c.drag == nil {
		return Drag{}, false
	}
	return *c.drag, true
}

// ActiveShape returns the shape being drawn, if any.
func (c *Controller) ActiveShape() (guid.ID, bool) {
	if c.drag == nil || c.drag.ActiveShape == nil {
		return 0, false
	}
	return *c.drag.ActiveShape, true
}

// Selection returns the open marquee in global space.
func (c *Controller) Selection() (shape.Box, bool) {
	if c.drag == nil || c.drag.SelectionBox == nil {
		return shape.Box{}, false
	}
	return *c.drag.SelectionBox, true
}

// AnchorPan returns the camera pan captured for hand dragging.
func (c *Controller) AnchorPan() vecmath.Vector2 {
	return c.anchorPan
}

// Cursor returns the last known pointer position in viewport space.
func (c *Controller) Cursor() (vecmath.Vector2, bool) {
	if c.cursor == nil {
		return vecmath.Zero2, false
	}
	return *c.cursor, true
}

func (c *Controller) setCursor(p vecmath.Vector2) {
	c.cursor = &p
}

// active returns the shape being drawn. Drawing without one means the
// controller's own bookkeeping is broken.
func (d *Drag) active() guid.ID {
	if d.ActiveShape == nil {
		panic("gesture: no active shape for " + d.Tool.String() + " gesture")
	}
	return *d.ActiveShape
}
