package shape

import (
	"slices"

	"github.com/inamate/whiteboard/internal/vecmath"
)

// HitTolerance is how far, in global units, a point may be from a stroke and
// still count as touching it.
const HitTolerance = 4

// Freehand is a polyline stroke. Points only grow while it is being drawn.
type Freehand struct {
	Points   []vecmath.Vector2 `json:"points"`
	Selected bool              `json:"selected"`
	Staged   []vecmath.Vector2 `json:"staged,omitempty"`
}

// NewFreehand starts a stroke at p.
func NewFreehand(p vecmath.Vector2, selected bool) Freehand {
	return Freehand{Points: []vecmath.Vector2{p}, Selected: selected}
}

func (Freehand) Kind() Kind { return KindFreehand }

func (f Freehand) IsSelected() bool { return f.Selected }

// Appended returns the stroke extended by p. The receiver's points are left
// untouched.
func (f Freehand) Appended(p vecmath.Vector2, selected bool) Freehand {
	f.Points = append(slices.Clip(f.Points), p)
	f.Selected = selected
	return f
}

// Contains reports whether p is within HitTolerance of the stroke.
func (f Freehand) Contains(p vecmath.Vector2) bool {
	switch len(f.Points) {
	case 0:
		return false
	case 1:
		return f.Points[0].Dist(p) <= HitTolerance
	}
	for i := 0; i < len(f.Points)-1; i++ {
		if distanceToSegment(p, f.Points[i], f.Points[i+1]) <= HitTolerance {
			return true
		}
	}
	return false
}

// Intersects reports whether any point of the stroke lies in b or any of its
// segments crosses b.
func (f Freehand) Intersects(b Box) bool {
	for i, p := range f.Points {
		if b.Contains(p) {
			return true
		}
		if i > 0 && segmentIntersectsBox(f.Points[i-1], p, b) {
			return true
		}
	}
	return false
}

func (f Freehand) Bounds() Box {
	if len(f.Points) == 0 {
		return Box{}
	}
	lo, hi := f.Points[0], f.Points[0]
	for _, p := range f.Points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return Box{Origin: lo, Extent: hi.Sub(lo)}
}

func (f Freehand) WithSelected(selected bool) Shape {
	f.Selected = selected
	return f
}

func (f Freehand) Translated(offset vecmath.Vector2) Shape {
	base := f.Points
	if f.Staged != nil {
		base = f.Staged
	}
	moved := make([]vecmath.Vector2, len(base))
	for i, p := range base {
		moved[i] = p.Add(offset)
	}
	f.Points = moved
	return f
}

func (f Freehand) Committed() Shape {
	f.Staged = slices.Clone(f.Points)
	return f
}

func (Freehand) sealed() {}

func distanceToSegment(p, a, b vecmath.Vector2) float32 {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 == 0 {
		return p.Dist(a)
	}
	t := p.Sub(a).Dot(ab) / abLen2
	t = min(max(t, 0), 1)
	return p.Dist(a.Add(ab.Scale(t)))
}

// segmentIntersectsBox clips the segment a-b against b (Liang-Barsky).
func segmentIntersectsBox(a, c vecmath.Vector2, b Box) bool {
	lo, hi := b.Origin, b.Max()
	d := c.Sub(a)
	t0, t1 := float32(0), float32(1)

	edges := [4][2]float32{
		{-d.X, a.X - lo.X},
		{d.X, hi.X - a.X},
		{-d.Y, a.Y - lo.Y},
		{d.Y, hi.Y - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = min(t1, r)
		}
	}
	return t0 <= t1
}
