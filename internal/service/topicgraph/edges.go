package topicgraph

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
)

// CreateEdge links a child topic under a parent topic. Self-loops are
// rejected; duplicate edges surface as domain.ErrAlreadyExists.
func (s *Service) CreateEdge(ctx context.Context, input CreateEdgeInput) (*domain.TopicEdge, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	edge := &domain.TopicEdge{
		ParentID:    input.ParentID,
		ChildID:     input.ChildID,
		Description: input.Description,
	}

	created, err := s.topics.CreateEdge(ctx, edge)
	if err != nil {
		return nil, fmt.Errorf("create topic edge: %w", err)
	}

	s.log.Info("topic edge created", "parent_id", created.ParentID, "child_id", created.ChildID)

	return created, nil
}

// DeleteEdge removes the link between a parent and child topic. The nodes
// themselves are untouched.
func (s *Service) DeleteEdge(ctx context.Context, parentID, childID uuid.UUID) error {
	if parentID == uuid.Nil || childID == uuid.Nil {
		return domain.NewValidationError("edge", "parent_id and child_id required")
	}

	if err := s.topics.DeleteEdge(ctx, parentID, childID); err != nil {
		return fmt.Errorf("delete topic edge: %w", err)
	}

	s.log.Info("topic edge deleted", "parent_id", parentID, "child_id", childID)

	return nil
}

// IsRoot reports whether the topic has children but no parents.
// A detached node (no edges at all) is neither root nor leaf.
func (s *Service) IsRoot(ctx context.Context, id uuid.UUID) (bool, error) {
	hasParents, hasChildren, err := s.degree(ctx, id)
	if err != nil {
		return false, err
	}
	return hasChildren && !hasParents, nil
}

// IsLeaf reports whether the topic has parents but no children.
func (s *Service) IsLeaf(ctx context.Context, id uuid.UUID) (bool, error) {
	hasParents, hasChildren, err := s.degree(ctx, id)
	if err != nil {
		return false, err
	}
	return hasParents && !hasChildren, nil
}

func (s *Service) degree(ctx context.Context, id uuid.UUID) (hasParents, hasChildren bool, err error) {
	if id == uuid.Nil {
		return false, false, domain.NewValidationError("topic_id", "required")
	}

	// Existence check first, so a missing node is ErrNotFound and not a
	// silently degree-less answer.
	if _, err := s.topics.GetNode(ctx, id); err != nil {
		return false, false, err
	}

	hasParents, err = s.topics.HasParents(ctx, id)
	if err != nil {
		return false, false, fmt.Errorf("has parents: %w", err)
	}
	hasChildren, err = s.topics.HasChildren(ctx, id)
	if err != nil {
		return false, false, fmt.Errorf("has children: %w", err)
	}

	return hasParents, hasChildren, nil
}
