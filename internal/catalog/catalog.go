// Package catalog is the ordered collection of shapes being edited and the
// reducer that changes it.
//
// State is immutable from the caller's point of view: Reduce always builds a
// new State and never writes to the one it was given, so a snapshot handed to
// a renderer stays valid while editing continues.
package catalog

import (
	"fmt"
	"slices"

	"github.com/inamate/whiteboard/internal/guid"
	"github.com/inamate/whiteboard/internal/shape"
	"github.com/inamate/whiteboard/internal/tool"
)

// State maps shape IDs to shapes in insertion (draw) order.
// The zero value is an empty catalog.
type State struct {
	order  []guid.ID
	shapes map[guid.ID]shape.Shape
}

// Reduce applies a to s and returns the resulting catalog.
// Invalid actions (an unknown tool for a new shape) panic.
func Reduce(s State, a Action) State {
	next := s.clone()

	switch a := a.(type) {
	case UpsertShape:
		next.upsert(a)
	case SelectAtPoint:
		next.selectAtPoint(a)
	case SelectIntersecting:
		next.each(func(sh shape.Shape) shape.Shape {
			return sh.WithSelected(sh.Intersects(a.Box))
		})
	case SelectAll:
		next.setAllSelected(true)
	case UnselectAll:
		next.setAllSelected(false)
	case UpsertSelectedShapes:
		next.eachSelected(func(sh shape.Shape) shape.Shape {
			return sh.Translated(a.Offset)
		})
	case CommitSelectedAnchors:
		next.eachSelected(shape.Shape.Committed)
	case DeleteSelected:
		next.deleteSelected()
	case DeletePrevious:
		// reserved
	default:
		panic(fmt.Sprintf("catalog: unknown action %T", a))
	}

	return next
}

func (s State) clone() State {
	shapes := make(map[guid.ID]shape.Shape, len(s.shapes))
	for id, sh := range s.shapes {
		shapes[id] = sh
	}
	return State{order: slices.Clone(s.order), shapes: shapes}
}

func (s *State) upsert(a UpsertShape) {
	existing, ok := s.shapes[a.ID]
	if !ok {
		s.order = append(s.order, a.ID)
		s.shapes[a.ID] = newShape(a)
		return
	}

	switch sh := existing.(type) {
	case shape.Rectangle:
		s.shapes[a.ID] = sh.Resized(a.Position, a.Size, a.Selected)
	case shape.Circle:
		s.shapes[a.ID] = sh.Reshaped(a.Position, a.Size, a.Selected)
	case shape.Freehand:
		s.shapes[a.ID] = sh.Appended(a.Position, a.Selected)
	}
}

// newShape builds the variant for a. A circle starts with a zero radius; its
// edge is set by the first update.
func newShape(a UpsertShape) shape.Shape {
	switch a.Tool {
	case tool.Rect:
		return shape.NewRectangle(a.Position, a.Size, a.Selected)
	case tool.Circle:
		return shape.NewCircle(a.Position, 0, a.Selected)
	case tool.Freehand:
		return shape.NewFreehand(a.Position, a.Selected)
	default:
		panic(fmt.Sprintf("catalog: tool %v cannot create shapes", a.Tool))
	}
}

// selectAtPoint implements click selection. Shapes under the point that were
// not selected become the whole selection. If the point only hits shapes
// that are already selected the selection is kept, and if it hits nothing
// everything is unselected.
func (s *State) selectAtPoint(a SelectAtPoint) {
	var fresh []guid.ID
	hit := false

	for _, id := range s.order {
		sh := s.shapes[id]
		if !sh.Contains(a.Point) {
			continue
		}
		hit = true
		if !sh.IsSelected() {
			s.shapes[id] = sh.WithSelected(true)
			fresh = append(fresh, id)
		}
	}

	switch {
	case !hit:
		s.setAllSelected(false)
	case len(fresh) > 0:
		for _, id := range s.order {
			s.shapes[id] = s.shapes[id].WithSelected(slices.Contains(fresh, id))
		}
	}
}

func (s *State) setAllSelected(selected bool) {
	s.each(func(sh shape.Shape) shape.Shape {
		return sh.WithSelected(selected)
	})
}

func (s *State) each(fn func(shape.Shape) shape.Shape) {
	for _, id := range s.order {
		s.shapes[id] = fn(s.shapes[id])
	}
}

func (s *State) eachSelected(fn func(shape.Shape) shape.Shape) {
	s.each(func(sh shape.Shape) shape.Shape {
		if !sh.IsSelected() {
			return sh
		}
		return fn(sh)
	})
}

func (s *State) deleteSelected() {
	s.order = slices.DeleteFunc(s.order, func(id guid.ID) bool {
		if s.shapes[id].IsSelected() {
			delete(s.shapes, id)
			return true
		}
		return false
	})
}
