package vecmath

import "fmt"

// Vector3 is an immutable 3D vector. When used as a camera, Z is the zoom
// and must satisfy ValidZoom.
type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Vec3 is a convenience constructor.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Coord returns the components.
func (v Vector3) Coord() (float32, float32, float32) {
	return v.X, v.Y, v.Z
}

// XY drops the third component.
func (v Vector3) XY() Vector2 {
	return Vector2{v.X, v.Y}
}

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Mul(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vector3) Div(o Vector3) Vector3 { return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// AddVector2 offsets X and Y, leaving Z untouched.
func (v Vector3) AddVector2(o Vector2) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z}
}

func (v Vector3) Abs() Vector3 {
	return Vector3{abs32(v.X), abs32(v.Y), abs32(v.Z)}
}

func (v Vector3) Sqrt() Vector3 {
	return Vector3{sqrt32(v.X), sqrt32(v.Y), sqrt32(v.Z)}
}

func (v Vector3) Sum() float32 {
	return v.X + v.Y + v.Z
}

func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

func (v Vector3) Clamp(lo, hi Vector3) Vector3 {
	return v.Max(lo).Min(hi)
}

// Dist returns the Euclidean distance between v and o.
func (v Vector3) Dist(o Vector3) float32 {
	d := v.Sub(o)
	return sqrt32(d.Mul(d).Sum())
}

// Eq reports whether every component differs by less than Epsilon.
func (v Vector3) Eq(o Vector3) bool {
	d := v.Sub(o).Abs()
	return d.X < Epsilon && d.Y < Epsilon && d.Z < Epsilon
}

func (v Vector3) Lt(o Vector3) bool { return v.X < o.X && v.Y < o.Y && v.Z < o.Z }
func (v Vector3) Le(o Vector3) bool { return v.X <= o.X && v.Y <= o.Y && v.Z <= o.Z }
func (v Vector3) Gt(o Vector3) bool { return v.X > o.X && v.Y > o.Y && v.Z > o.Z }
func (v Vector3) Ge(o Vector3) bool { return v.X >= o.X && v.Y >= o.Y && v.Z >= o.Z }

// Compare returns the partial order of v relative to o.
func (v Vector3) Compare(o Vector3) Ordering {
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

// ValidZoom reports whether z can be used as a divisor.
func ValidZoom(z float32) bool {
	return z != 0 && finite32(z)
}

// ValidZoom reports whether the Z component is usable as a zoom factor.
func (v Vector3) ValidZoom() bool {
	return ValidZoom(v.Z)
}

// MustValidZoom panics when z is zero, NaN or infinite.
func MustValidZoom(z float32) float32 {
	if !ValidZoom(z) {
		panic(fmt.Sprintf("vecmath: invalid zoom %v", z))
	}
	return z
}
