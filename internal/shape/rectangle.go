package shape

import "github.com/inamate/whiteboard/internal/vecmath"

// Rectangle is an axis-aligned rectangle. Size may be negative while a
// drawing gesture is in progress; geometric predicates expect it normalized.
type Rectangle struct {
	Position vecmath.Vector2  `json:"position"`
	Size     vecmath.Vector2  `json:"size"`
	Selected bool             `json:"selected"`
	Staged   *vecmath.Vector2 `json:"staged,omitempty"`
}

// NewRectangle returns an unstaged rectangle.
func NewRectangle(position, size vecmath.Vector2, selected bool) Rectangle {
	return Rectangle{Position: position, Size: size, Selected: selected}
}

func (Rectangle) Kind() Kind { return KindRectangle }

func (r Rectangle) IsSelected() bool { return r.Selected }

// Contains reports whether p lies within [position, position+size], edges
// included.
func (r Rectangle) Contains(p vecmath.Vector2) bool {
	return p.Ge(r.Position) && p.Le(r.Position.Add(r.Size))
}

// Intersects is the separating-axis test: the boxes are disjoint when one
// far corner is <= the other's near corner on any axis.
func (r Rectangle) Intersects(b Box) bool {
	disjoint := r.Position.Add(r.Size).LeAny(b.Origin) ||
		b.Origin.Add(b.Extent).LeAny(r.Position)
	return !disjoint
}

func (r Rectangle) Bounds() Box {
	return NormalizeBox(r.Position, r.Position.Add(r.Size))
}

func (r Rectangle) WithSelected(selected bool) Shape {
	r.Selected = selected
	return r
}

func (r Rectangle) Translated(offset vecmath.Vector2) Shape {
	r.Position = anchor(r.Staged, r.Position).Add(offset)
	return r
}

func (r Rectangle) Committed() Shape {
	r.Staged = stage(r.Position)
	return r
}

// Resized returns the rectangle with a new position, size and selection.
func (r Rectangle) Resized(position, size vecmath.Vector2, selected bool) Rectangle {
	r.Position = position
	r.Size = size
	r.Selected = selected
	return r
}

func (Rectangle) sealed() {}
