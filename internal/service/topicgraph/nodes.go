package topicgraph

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
)

// CreateNode creates a new topic node. A node starts detached; it joins the
// hierarchy when edges are added.
func (s *Service) CreateNode(ctx context.Context, input CreateNodeInput) (*domain.TopicNode, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	node := &domain.TopicNode{
		Name:        input.Name,
		Description: input.Description,
	}

	created, err := s.topics.CreateNode(ctx, node)
	if err != nil {
		return nil, fmt.Errorf("create topic node: %w", err)
	}

	s.log.Info("topic node created", "topic_id", created.ID, "name", created.Name)

	s.search.TopicChanged(created)

	return created, nil
}

// GetNode returns a topic node by id.
func (s *Service) GetNode(ctx context.Context, id uuid.UUID) (*domain.TopicNode, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}
	return s.topics.GetNode(ctx, id)
}

// ListNodes returns all topic nodes.
func (s *Service) ListNodes(ctx context.Context) ([]*domain.TopicNode, error) {
	return s.topics.ListNodes(ctx)
}

// FindNodeByName returns the first topic whose name contains the given
// substring, case-insensitively.
func (s *Service) FindNodeByName(ctx context.Context, name string) (*domain.TopicNode, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	return s.topics.FindNodeByName(ctx, name)
}

// DeleteNode removes a topic node. Its edges are removed with it; lists
// filed under the node survive with their topic reference cleared.
func (s *Service) DeleteNode(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}

	if err := s.topics.DeleteNode(ctx, id); err != nil {
		return fmt.Errorf("delete topic node: %w", err)
	}

	s.log.Info("topic node deleted", "topic_id", id)

	s.search.TopicDeleted(id)

	return nil
}
