// Package shape holds the geometric shapes that live in a catalog.
//
// Shape is a closed sum type: Rectangle, Circle and Freehand are the only
// implementations, and callers dispatch on them with a type switch. Shapes
// are plain values. Every update produces a new value, and slices or
// pointers held by a shape are never written through once the shape exists.
package shape

import "github.com/inamate/whiteboard/internal/vecmath"

// Kind names a shape variant.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindFreehand  Kind = "freehand"
)

// Shape is the capability set shared by every variant.
type Shape interface {
	Kind() Kind
	// Contains reports whether the global point p hits the shape.
	Contains(p vecmath.Vector2) bool
	// Intersects reports whether the shape overlaps the normalized box.
	Intersects(b Box) bool
	IsSelected() bool
	// Bounds is the axis-aligned bounding box in global space.
	Bounds() Box

	// WithSelected returns a copy with the selection flag set to selected.
	WithSelected(selected bool) Shape
	// Translated returns a copy moved to anchor + offset, where the anchor is
	// the staged position if one was committed and the live one otherwise.
	// The staged anchor itself is kept.
	Translated(offset vecmath.Vector2) Shape
	// Committed returns a copy whose staged anchor is its live position.
	Committed() Shape

	sealed()
}

func anchor(staged *vecmath.Vector2, live vecmath.Vector2) vecmath.Vector2 {
	if staged != nil {
		return *staged
	}
	return live
}

func stage(v vecmath.Vector2) *vecmath.Vector2 {
	return &v
}
