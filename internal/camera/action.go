package camera

import "github.com/inamate/whiteboard/internal/vecmath"

// Action is one of the camera mutations. The set is closed.
type Action interface {
	cameraAction()
}

// Move pans the camera to Base + Offset.
type Move struct {
	Base   vecmath.Vector2
	Offset vecmath.Vector2
}

// Refresh re-snapshots the camera without changing it.
type Refresh struct{}

func (Move) cameraAction()    {}
func (Refresh) cameraAction() {}

// Reduce applies a to c and returns the resulting camera.
func Reduce(c Camera, a Action) Camera {
	switch a := a.(type) {
	case Move:
		return c.PanBy(a.Base, a.Offset)
	case Refresh:
		return c.Refresh()
	default:
		panic("camera: unknown action")
	}
}
