package catalog

import (
	"github.com/inamate/whiteboard/internal/guid"
	"github.com/inamate/whiteboard/internal/shape"
	"github.com/inamate/whiteboard/internal/tool"
	"github.com/inamate/whiteboard/internal/vecmath"
)

// Action is one of the catalog mutations understood by Reduce. The set is
// closed.
type Action interface {
	catalogAction()
	// Name is a short label used in logs.
	Name() string
}

// UpsertShape updates shape ID in place or, if it does not exist yet,
// creates it with the variant chosen by Tool.
//
// Position and Size are read per variant: a rectangle takes them as is, a
// circle uses Position as its center and Size as a point on its edge, and a
// freehand stroke appends Position.
type UpsertShape struct {
	ID       guid.ID
	Position vecmath.Vector2
	Size     vecmath.Vector2
	Selected bool
	Tool     tool.Tool
}

// SelectAtPoint applies click selection at a global point.
type SelectAtPoint struct {
	Point vecmath.Vector2
}

// SelectIntersecting selects exactly the shapes overlapping Box.
type SelectIntersecting struct {
	Box shape.Box
}

type SelectAll struct{}

type UnselectAll struct{}

// UpsertSelectedShapes moves every selected shape to its anchor + Offset.
type UpsertSelectedShapes struct {
	Offset vecmath.Vector2
}

// CommitSelectedAnchors records the live position of every selected shape as
// its staged anchor.
type CommitSelectedAnchors struct{}

type DeleteSelected struct{}

// DeletePrevious is reserved and currently has no effect.
type DeletePrevious struct{}

func (UpsertShape) catalogAction()           {}
func (SelectAtPoint) catalogAction()         {}
func (SelectIntersecting) catalogAction()    {}
func (SelectAll) catalogAction()             {}
func (UnselectAll) catalogAction()           {}
func (UpsertSelectedShapes) catalogAction()  {}
func (CommitSelectedAnchors) catalogAction() {}
func (DeleteSelected) catalogAction()        {}
func (DeletePrevious) catalogAction()        {}

func (UpsertShape) Name() string           { return "upsertShape" }
func (SelectAtPoint) Name() string         { return "selectAtPoint" }
func (SelectIntersecting) Name() string    { return "selectIntersecting" }
func (SelectAll) Name() string             { return "selectAll" }
func (UnselectAll) Name() string           { return "unselectAll" }
func (UpsertSelectedShapes) Name() string  { return "upsertSelectedShapes" }
func (CommitSelectedAnchors) Name() string { return "commitSelectedAnchors" }
func (DeleteSelected) Name() string        { return "deleteSelected" }
func (DeletePrevious) Name() string        { return "deletePrevious" }
