package camera

import (
	"math"
	"testing"

	"github.com/inamate/whiteboard/internal/vecmath"
)

func TestDefault(t *testing.T) {
	c := Default()
	if !c.Pan.Eq(vecmath.Zero2) || c.Zoom != 1 {
		t.Fatalf("Default() = %+v", c)
	}
}

func TestViewportToGlobal(t *testing.T) {
	tests := []struct {
		name string
		cam  Camera
		in   vecmath.Vector2
		want vecmath.Vector2
	}{
		{"identity", Default(), vecmath.Vec2(10, 10), vecmath.Vec2(10, 10)},
		{"zoom 2", New(vecmath.Zero2, 2), vecmath.Vec2(20, 20), vecmath.Vec2(10, 10)},
		{"panned", New(vecmath.Vec2(5, -5), 1), vecmath.Vec2(20, 20), vecmath.Vec2(15, 25)},
		{"zoom and pan", New(vecmath.Vec2(1.5, 2), 3), vecmath.Vec2(30, 60), vecmath.Vec2(8.5, 18)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cam.ViewportToGlobal(tt.in); !got.Eq(tt.want) {
				t.Errorf("ViewportToGlobal(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	cams := []Camera{
		Default(),
		New(vecmath.Vec2(12.5, -3.25), 2),
		New(vecmath.Vec2(-100, 40), 0.5),
		New(vecmath.Vec2(0.75, 0.125), 4),
		New(vecmath.Vec2(1.5, 2), 3),
	}
	points := []vecmath.Vector2{
		vecmath.Vec2(0, 0),
		vecmath.Vec2(10, 10),
		vecmath.Vec2(-7.5, 3),
		vecmath.Vec2(30, 60),
	}
	for _, c := range cams {
		for _, p := range points {
			got := c.GlobalToViewport(c.ViewportToGlobal(p))
			if !got.Eq(p) {
				t.Errorf("camera %+v: round trip of %v = %v", c, p, got)
			}
		}
	}
}

func TestPanBy(t *testing.T) {
	c := New(vecmath.Vec2(100, 100), 2)
	base := vecmath.Vec2(3, 4)

	// repeated moves with the same offset land on the same pan
	first := c.PanBy(base, vecmath.Vec2(10, 20))
	second := first.PanBy(base, vecmath.Vec2(10, 20))

	want := vecmath.Vec2(13, 24)
	if !first.Pan.Eq(want) || !second.Pan.Eq(want) {
		t.Errorf("PanBy pans = %v, %v, want %v", first.Pan, second.Pan, want)
	}
	if second.Zoom != 2 {
		t.Errorf("PanBy changed zoom to %v", second.Zoom)
	}
}

func TestReduce(t *testing.T) {
	c := Default()
	c = Reduce(c, Move{Base: vecmath.Vec2(1, 1), Offset: vecmath.Vec2(2, 3)})
	if !c.Pan.Eq(vecmath.Vec2(3, 4)) {
		t.Errorf("Move: pan = %v", c.Pan)
	}
	if r := Reduce(c, Refresh{}); r != c {
		t.Errorf("Refresh changed camera: %+v -> %+v", c, r)
	}
}

func TestInvalidZoomPanics(t *testing.T) {
	tests := []struct {
		name string
		zoom float32
	}{
		{"zero", 0},
		{"nan", float32(math.NaN())},
		{"inf", float32(math.Inf(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			c := Camera{Zoom: tt.zoom}
			c.ViewportToGlobal(vecmath.Vec2(1, 1))
		})
	}
}

func TestNewRejectsInvalidZoom(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(vecmath.Zero2, 0)
}

func apply(m Matrix2D, p vecmath.Vector2) vecmath.Vector2 {
	x, y := float64(p.X), float64(p.Y)
	return vecmath.Vec2(float32(m[0]*x+m[2]*y+m[4]), float32(m[1]*x+m[3]*y+m[5]))
}

func TestMatrixMatchesGlobalToViewport(t *testing.T) {
	c := New(vecmath.Vec2(12.5, -3.25), 2)
	p := vecmath.Vec2(7, 9)

	if got, want := apply(c.Matrix(), p), c.GlobalToViewport(p); !got.Eq(want) {
		t.Errorf("Matrix applied to %v = %v, want %v", p, got, want)
	}

	v := vecmath.Vec2(40, 8)
	if got, want := apply(c.InverseMatrix(), v), c.ViewportToGlobal(v); !got.Eq(want) {
		t.Errorf("InverseMatrix applied to %v = %v, want %v", v, got, want)
	}
}

func TestMatrixIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix2D
	}{
		{"default camera", Default().Matrix()},
		{"default camera inverse", Default().InverseMatrix()},
		{"scale then inverse scale", Scale(2, 2).Multiply(Scale(0.5, 0.5))},
		{"translate inverse", Translate(3, 4).Invert().Multiply(Translate(3, 4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.m != Identity() {
				t.Errorf("got %v, want identity", tt.m)
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	if got := Scale(0, 1).Invert(); got != Identity() {
		t.Errorf("Invert of singular matrix = %v, want identity", got)
	}
}
