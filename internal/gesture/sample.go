package gesture

import (
	"fmt"

	"github.com/inamate/whiteboard/internal/vecmath"
)

// EventKind is the phase of a pointer sample. The zero value is not a valid
// phase.
type EventKind int

const (
	Down EventKind = iota + 1
	Move
	Up
)

// Valid reports whether k is one of Down, Move or Up.
func (k EventKind) Valid() bool {
	return k >= Down && k <= Up
}

func (k EventKind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

func (k EventKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown pointer event %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *EventKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "down":
		*k = Down
	case "move":
		*k = Move
	case "up":
		*k = Up
	default:
		return fmt.Errorf("unknown pointer event %q", b)
	}
	return nil
}

// Sample is one raw pointer event in client (viewport) coordinates.
type Sample struct {
	X    float32   `json:"x"`
	Y    float32   `json:"y"`
	Kind EventKind `json:"kind"`
}

// Point returns the sample position.
func (s Sample) Point() vecmath.Vector2 {
	return vecmath.Vec2(s.X, s.Y)
}
