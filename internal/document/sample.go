package document

import (
	"github.com/inamate/whiteboard/internal/catalog"
	"github.com/inamate/whiteboard/internal/guid"
	"github.com/inamate/whiteboard/internal/tool"
	"github.com/inamate/whiteboard/internal/vecmath"
)

// SampleActions returns the catalog actions that build the demo scene used by
// playground sessions: a rectangle, a circle and a short stroke.
func SampleActions(ids *guid.Generator) []catalog.Action {
	v := vecmath.Vec2

	rectID := ids.Next()
	circleID := ids.Next()
	strokeID := ids.Next()

	actions := []catalog.Action{
		catalog.UpsertShape{ID: rectID, Position: v(200, 200), Size: v(200, 150), Tool: tool.Rect},
		catalog.UpsertShape{ID: circleID, Position: v(640, 360), Tool: tool.Circle},
		catalog.UpsertShape{ID: circleID, Position: v(640, 360), Size: v(720, 360), Tool: tool.Circle},
	}

	stroke := []vecmath.Vector2{
		v(900, 350), v(950, 200), v(1000, 350), v(1050, 200), v(1100, 350),
	}
	for _, p := range stroke {
		actions = append(actions, catalog.UpsertShape{ID: strokeID, Position: p, Tool: tool.Freehand})
	}

	return actions
}
