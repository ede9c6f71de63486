package catalog

import (
	"iter"
	"slices"

	"github.com/inamate/whiteboard/internal/guid"
	"github.com/inamate/whiteboard/internal/shape"
	"github.com/inamate/whiteboard/internal/vecmath"
)

// New returns a catalog holding the given shapes in order.
func New(entries ...Entry) State {
	s := State{shapes: make(map[guid.ID]shape.Shape, len(entries))}
	for _, e := range entries {
		if _, ok := s.shapes[e.ID]; !ok {
			s.order = append(s.order, e.ID)
		}
		s.shapes[e.ID] = e.Shape
	}
	return s
}

// Entry pairs a shape with its ID.
type Entry struct {
	ID    guid.ID
	Shape shape.Shape
}

// Len returns the number of shapes.
func (s State) Len() int {
	return len(s.order)
}

// Get returns the shape with the given ID.
func (s State) Get(id guid.ID) (shape.Shape, bool) {
	sh, ok := s.shapes[id]
	return sh, ok
}

// IDs returns the shape IDs in draw order.
func (s State) IDs() []guid.ID {
	return slices.Clone(s.order)
}

// All iterates shapes in draw order.
func (s State) All() iter.Seq2[guid.ID, shape.Shape] {
	return func(yield func(guid.ID, shape.Shape) bool) {
		for _, id := range s.order {
			if !yield(id, s.shapes[id]) {
				return
			}
		}
	}
}

// Selected returns the IDs of selected shapes in draw order.
func (s State) Selected() []guid.ID {
	var ids []guid.ID
	for id, sh := range s.All() {
		if sh.IsSelected() {
			ids = append(ids, id)
		}
	}
	return ids
}

// HasSelection reports whether any shape is selected.
func (s State) HasSelection() bool {
	for _, sh := range s.All() {
		if sh.IsSelected() {
			return true
		}
	}
	return false
}

// HitTest returns the ID of the topmost (last drawn) shape containing p.
func (s State) HitTest(p vecmath.Vector2) (guid.ID, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		id := s.order[i]
		if s.shapes[id].Contains(p) {
			return id, true
		}
	}
	return 0, false
}

// SelectionBounds returns the combined bounding box of the selected shapes.
func (s State) SelectionBounds() (shape.Box, bool) {
	var result shape.Box
	first := true

	for _, sh := range s.All() {
		if !sh.IsSelected() {
			continue
		}
		if first {
			result = sh.Bounds()
			first = false
		} else {
			result = result.Union(sh.Bounds())
		}
	}

	return result, !first
}
