package document

import (
	"encoding/json"

	"github.com/inamate/whiteboard/internal/camera"
	"github.com/inamate/whiteboard/internal/catalog"
	"github.com/inamate/whiteboard/internal/guid"
	"github.com/inamate/whiteboard/internal/shape"
	"github.com/inamate/whiteboard/internal/tool"
	"github.com/inamate/whiteboard/internal/vecmath"
)

// Snapshot is the complete, immutable view a renderer needs after an action.
type Snapshot struct {
	Version         uint64           `json:"version"`
	Tool            tool.Tool        `json:"tool"`
	Camera          Camera           `json:"camera"`
	Shapes          []Shape          `json:"shapes"`
	Selection       *shape.Box       `json:"selection,omitempty"`       // open marquee, global space
	SelectionBounds *shape.Box       `json:"selectionBounds,omitempty"` // union of selected shapes
	Cursor          *vecmath.Vector2 `json:"cursor,omitempty"`          // last pointer position, viewport space
}

type Camera struct {
	Pan       vecmath.Vector2 `json:"pan"`
	Zoom      float32         `json:"zoom"`
	Transform []float64       `json:"transform"` // [a, b, c, d, e, f] global -> viewport
	Inverse   []float64       `json:"inverse"`   // viewport -> global
}

// Shape is the wire form of a catalog entry. Only the fields of its Type are
// set.
type Shape struct {
	ID       guid.ID           `json:"id"`
	Type     shape.Kind        `json:"type"`
	Selected bool              `json:"selected"`
	Position *vecmath.Vector2  `json:"position,omitempty"`
	Size     *vecmath.Vector2  `json:"size,omitempty"`
	Center   *vecmath.Vector2  `json:"center,omitempty"`
	Radius   float32           `json:"radius,omitempty"`
	Points   []vecmath.Vector2 `json:"points,omitempty"`
}

// NewCamera converts a camera.
func NewCamera(c camera.Camera) Camera {
	return Camera{
		Pan:       c.Pan,
		Zoom:      c.Zoom,
		Transform: c.Matrix().ToSlice(),
		Inverse:   c.InverseMatrix().ToSlice(),
	}
}

// NewShapes converts a catalog, preserving draw order.
func NewShapes(s catalog.State) []Shape {
	out := make([]Shape, 0, s.Len())
	for id, sh := range s.All() {
		out = append(out, NewShape(id, sh))
	}
	return out
}

// NewShape converts a single shape.
func NewShape(id guid.ID, sh shape.Shape) Shape {
	out := Shape{ID: id, Type: sh.Kind(), Selected: sh.IsSelected()}
	switch sh := sh.(type) {
	case shape.Rectangle:
		out.Position = ptr(sh.Position)
		out.Size = ptr(sh.Size)
	case shape.Circle:
		out.Center = ptr(sh.Center)
		out.Radius = sh.Radius
	case shape.Freehand:
		out.Points = append([]vecmath.Vector2(nil), sh.Points...)
	}
	return out
}

// ToJSON serializes the snapshot.
func (s Snapshot) ToJSON() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "{}", err
	}
	return string(data), nil
}

func ptr[T any](v T) *T {
	return &v
}
