package shape

import "github.com/inamate/whiteboard/internal/vecmath"

// Circle is a disc around Center.
type Circle struct {
	Center   vecmath.Vector2  `json:"center"`
	Radius   float32          `json:"radius"`
	Selected bool             `json:"selected"`
	Staged   *vecmath.Vector2 `json:"staged,omitempty"`
}

// NewCircle returns an unstaged circle.
func NewCircle(center vecmath.Vector2, radius float32, selected bool) Circle {
	return Circle{Center: center, Radius: radius, Selected: selected}
}

// CircleThrough returns a circle centered on center whose edge passes
// through far.
func CircleThrough(center, far vecmath.Vector2, selected bool) Circle {
	return NewCircle(center, center.Dist(far), selected)
}

func (Circle) Kind() Kind { return KindCircle }

func (c Circle) IsSelected() bool { return c.Selected }

func (c Circle) Contains(p vecmath.Vector2) bool {
	return c.Center.Dist(p) <= c.Radius
}

// Intersects compares the radius with the distance from the center to the
// closest point of the box.
func (c Circle) Intersects(b Box) bool {
	closest := c.Center.Clamp(b.Origin, b.Max())
	return closest.Dist(c.Center) <= c.Radius
}

func (c Circle) Bounds() Box {
	r := vecmath.Splat2(c.Radius)
	return Box{Origin: c.Center.Sub(r), Extent: r.Scale(2)}
}

func (c Circle) WithSelected(selected bool) Shape {
	c.Selected = selected
	return c
}

func (c Circle) Translated(offset vecmath.Vector2) Shape {
	c.Center = anchor(c.Staged, c.Center).Add(offset)
	return c
}

func (c Circle) Committed() Shape {
	c.Staged = stage(c.Center)
	return c
}

// Reshaped returns the circle re-centered on center with its edge through far.
func (c Circle) Reshaped(center, far vecmath.Vector2, selected bool) Circle {
	c.Center = center
	c.Radius = center.Dist(far)
	c.Selected = selected
	return c
}

func (Circle) sealed() {}
