package camera

import (
	"fmt"

	"github.com/inamate/whiteboard/internal/vecmath"
)

// Camera maps between viewport (pointer/client) space and global (canvas)
// space. Zoom is always a valid divisor; every constructor and operation
// enforces it.
type Camera struct {
	Pan  vecmath.Vector2 `json:"pan"`
	Zoom float32         `json:"zoom"`
}

// Default returns the camera every session starts with.
func Default() Camera {
	return Camera{Pan: vecmath.Zero2, Zoom: 1}
}

// New returns a camera with the given pan and zoom. It panics when zoom is
// zero, NaN or infinite.
func New(pan vecmath.Vector2, zoom float32) Camera {
	vecmath.MustValidZoom(zoom)
	return Camera{Pan: pan, Zoom: zoom}
}

// Vector3 packs the camera as (pan.x, pan.y, zoom).
func (c Camera) Vector3() vecmath.Vector3 {
	return vecmath.Vec3(c.Pan.X, c.Pan.Y, c.Zoom)
}

// Valid reports whether the zoom satisfies the validity invariant.
func (c Camera) Valid() bool {
	return vecmath.ValidZoom(c.Zoom)
}

func (c Camera) zoom() vecmath.Vector2 {
	if !c.Valid() {
		panic(fmt.Sprintf("camera: zoom is in an invalid state (%v)", c.Zoom))
	}
	return vecmath.Splat2(c.Zoom)
}

// ViewportToGlobal converts a pointer position to canvas coordinates:
// p / zoom - pan.
func (c Camera) ViewportToGlobal(p vecmath.Vector2) vecmath.Vector2 {
	return p.Div(c.zoom()).Sub(c.Pan)
}

// GlobalToViewport is the inverse of ViewportToGlobal: (p + pan) * zoom.
func (c Camera) GlobalToViewport(p vecmath.Vector2) vecmath.Vector2 {
	return p.Add(c.Pan).Mul(c.zoom())
}

// PanBy returns the camera panned to base + offset. Zoom is unchanged.
// Callers pass the pan captured at gesture start as base.
func (c Camera) PanBy(base, offset vecmath.Vector2) Camera {
	return Camera{Pan: base.Add(offset), Zoom: c.Zoom}
}

// Refresh returns an identical snapshot of the camera.
func (c Camera) Refresh() Camera {
	return Camera{Pan: c.Pan, Zoom: c.Zoom}
}

// Matrix returns the global-to-viewport transform, i.e. scale(zoom) applied
// after translate(pan).
func (c Camera) Matrix() Matrix2D {
	z := float64(c.zoom().X)
	return Scale(z, z).Multiply(Translate(float64(c.Pan.X), float64(c.Pan.Y)))
}

// InverseMatrix returns the viewport-to-global transform, the matrix form of
// ViewportToGlobal.
func (c Camera) InverseMatrix() Matrix2D {
	return c.Matrix().Invert()
}
