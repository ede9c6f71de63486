package vecmath

import "math"

// Epsilon is the per-component tolerance used by Eq.
const Epsilon = 1e-6

// Ordering is the result of a partial-order comparison between vectors.
type Ordering int

const (
	Incomparable Ordering = iota
	Less
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "incomparable"
	}
}

// Vector2 is an immutable 2D vector or point.
// Eq is approximate, so Vector2 must not be used as a map key.
type Vector2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Zero2 is the origin.
var Zero2 = Vector2{}

// Vec2 is a convenience constructor.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Splat2 returns a vector with both components set to v.
func Splat2(v float32) Vector2 {
	return Vector2{X: v, Y: v}
}

// Coord returns the components.
func (v Vector2) Coord() (float32, float32) {
	return v.X, v.Y
}

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }
func (v Vector2) Div(o Vector2) Vector2 { return Vector2{v.X / o.X, v.Y / o.Y} }

// Scale multiplies both components by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Abs returns the componentwise absolute value.
func (v Vector2) Abs() Vector2 {
	return Vector2{abs32(v.X), abs32(v.Y)}
}

// Sqrt returns the componentwise square root.
func (v Vector2) Sqrt() Vector2 {
	return Vector2{sqrt32(v.X), sqrt32(v.Y)}
}

// Sum returns X + Y.
func (v Vector2) Sum() float32 {
	return v.X + v.Y
}

func (v Vector2) Min(o Vector2) Vector2 { return Vector2{min(v.X, o.X), min(v.Y, o.Y)} }
func (v Vector2) Max(o Vector2) Vector2 { return Vector2{max(v.X, o.X), max(v.Y, o.Y)} }

// Clamp limits every component of v to [lo, hi].
func (v Vector2) Clamp(lo, hi Vector2) Vector2 {
	return v.Max(lo).Min(hi)
}

// Midpoint returns the point halfway between v and o.
func (v Vector2) Midpoint(o Vector2) Vector2 {
	return v.Add(o).Scale(0.5)
}

// Dist returns the Euclidean distance between v and o.
func (v Vector2) Dist(o Vector2) float32 {
	d := v.Sub(o)
	return sqrt32(d.Mul(d).Sum())
}

// Dot returns the dot product.
func (v Vector2) Dot(o Vector2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Eq reports whether every component differs by less than Epsilon.
func (v Vector2) Eq(o Vector2) bool {
	d := v.Sub(o).Abs()
	return d.X < Epsilon && d.Y < Epsilon
}

// Lt reports whether every component of v is less than o's.
func (v Vector2) Lt(o Vector2) bool { return v.X < o.X && v.Y < o.Y }
func (v Vector2) Le(o Vector2) bool { return v.X <= o.X && v.Y <= o.Y }
func (v Vector2) Gt(o Vector2) bool { return v.X > o.X && v.Y > o.Y }
func (v Vector2) Ge(o Vector2) bool { return v.X >= o.X && v.Y >= o.Y }

// LeAny reports whether at least one component of v is <= o's.
func (v Vector2) LeAny(o Vector2) bool {
	return v.X <= o.X || v.Y <= o.Y
}

// Compare returns the partial order of v relative to o.
func (v Vector2) Compare(o Vector2) Ordering {
	switch {
	case v.Lt(o):
		return Less
	case v.Gt(o):
		return Greater
	case v.Eq(o):
		return Equal
	default:
		return Incomparable
	}
}

// IsFinite reports whether both components are finite numbers.
func (v Vector2) IsFinite() bool {
	return finite32(v.X) && finite32(v.Y)
}

func abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

func sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}

func finite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
