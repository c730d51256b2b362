// Package topicgraph implements the topic hierarchy business logic: node and
// edge management plus the traversal queries (descendants, root/leaf tests,
// ancestry) that the access and search layers build on.
//
// The hierarchy is a directed graph intended to be acyclic. Traversals keep a
// visited set, so they terminate and yield correct results even if a cycle is
// introduced by mistake.
package topicgraph

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/adapter/postgres/topic"
	"github.com/listforge/listforge-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type topicRepo interface {
	CreateNode(ctx context.Context, node *domain.TopicNode) (*domain.TopicNode, error)
	GetNode(ctx context.Context, id uuid.UUID) (*domain.TopicNode, error)
	ListNodes(ctx context.Context) ([]*domain.TopicNode, error)
	FindNodeByName(ctx context.Context, name string) (*domain.TopicNode, error)
	DeleteNode(ctx context.Context, id uuid.UUID) error
	CreateEdge(ctx context.Context, edge *domain.TopicEdge) (*domain.TopicEdge, error)
	DeleteEdge(ctx context.Context, parentID, childID uuid.UUID) error
	HasParents(ctx context.Context, id uuid.UUID) (bool, error)
	HasChildren(ctx context.Context, id uuid.UUID) (bool, error)
	ChildIDsOfMany(ctx context.Context, parentIDs []uuid.UUID) ([]domain.TopicEdge, error)
	ChildrenOfMany(ctx context.Context, parentIDs []uuid.UUID) ([]topic.ChildRow, error)
}

type searchNotifier interface {
	TopicChanged(node *domain.TopicNode)
	TopicDeleted(id uuid.UUID)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the topic graph business logic.
type Service struct {
	log    *slog.Logger
	topics topicRepo
	search searchNotifier
}

// NewService creates a new topic graph service.
func NewService(logger *slog.Logger, topics topicRepo, search searchNotifier) *Service {
	return &Service{
		log:    logger.With("service", "topicgraph"),
		topics: topics,
		search: search,
	}
}
