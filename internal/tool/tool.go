package tool

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned for tool names and values outside the toolbar.
var ErrUnknown = errors.New("unknown tool")

// Tool is the pointer mode the user has picked on the toolbar.
type Tool int

const (
	Hand Tool = iota
	Rect
	Circle
	Freehand
	Select
	Text
)

var names = [...]string{
	Hand:     "hand",
	Rect:     "rect",
	Circle:   "circle",
	Freehand: "freehand",
	Select:   "select",
	Text:     "text",
}

// All lists every tool in toolbar order.
func All() []Tool {
	return []Tool{Hand, Rect, Circle, Freehand, Select, Text}
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("tool(%d)", int(t))
	}
	return names[t]
}

// Valid reports whether t is one of the declared tools.
func (t Tool) Valid() bool {
	return t >= Hand && t <= Text
}

// Draws reports whether the tool creates shapes.
func (t Tool) Draws() bool {
	return t == Rect || t == Circle || t == Freehand
}

// Parse returns the tool with the given name.
func Parse(s string) (Tool, error) {
	for i, n := range names {
		if n == s {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknown, s)
}

func (t Tool) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknown, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tool) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
