package domain

import (
	"time"

	"github.com/google/uuid"
)

// TopicNode is a node in the subject-matter classification graph.
// Nodes form a DAG via TopicEdge: a node may have multiple parents,
// but never itself.
type TopicNode struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TopicEdge is a directed parent→child edge between two topic nodes.
type TopicEdge struct {
	ParentID    uuid.UUID
	ChildID     uuid.UUID
	Description *string
	CreatedAt   time.Time
}

// DescendantNode is a topic node reached by descendant traversal,
// annotated with its depth below the traversal root and the path of
// node ids from the root down to (and including) itself.
type DescendantNode struct {
	TopicNode
	Level int
	Path  []uuid.UUID
}
