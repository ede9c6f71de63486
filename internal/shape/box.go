package shape

import "github.com/inamate/whiteboard/internal/vecmath"

// Box is an axis-aligned rectangle given by its near corner and its extent.
// Boxes built by NormalizeBox always have a non-negative extent.
type Box struct {
	Origin vecmath.Vector2 `json:"origin"`
	Extent vecmath.Vector2 `json:"extent"`
}

// NormalizeBox turns two drag corners into a box: origin = min(p1, p2),
// extent = |p2 - p1|.
func NormalizeBox(p1, p2 vecmath.Vector2) Box {
	return Box{Origin: p1.Min(p2), Extent: p2.Sub(p1).Abs()}
}

// Max returns the far corner.
func (b Box) Max() vecmath.Vector2 {
	return b.Origin.Add(b.Extent)
}

// Contains checks if a point is inside the box, edges included.
func (b Box) Contains(p vecmath.Vector2) bool {
	return p.Ge(b.Origin) && p.Le(b.Max())
}

// IsEmpty checks if the box has zero or negative area.
func (b Box) IsEmpty() bool {
	return b.Extent.X <= 0 || b.Extent.Y <= 0
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(other Box) Box {
	lo := b.Origin.Min(other.Origin)
	hi := b.Max().Max(other.Max())
	return Box{Origin: lo, Extent: hi.Sub(lo)}
}

// Center returns the center point of the box.
func (b Box) Center() vecmath.Vector2 {
	return b.Origin.Midpoint(b.Max())
}
