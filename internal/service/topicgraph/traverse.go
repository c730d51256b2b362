package topicgraph

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
)

// Descendants walks the subtree under the given topic breadth-first and
// returns every reachable node with its depth and the id chain it was first
// reached through. A node reachable along several branches (a diamond) is
// reported once, at its shallowest depth. The visited set guarantees
// termination even on a graph with an accidental cycle.
func (s *Service) Descendants(ctx context.Context, id uuid.UUID) ([]*domain.DescendantNode, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	if _, err := s.topics.GetNode(ctx, id); err != nil {
		return nil, err
	}

	visited := map[uuid.UUID]struct{}{id: {}}
	paths := map[uuid.UUID][]uuid.UUID{id: {id}}

	var result []*domain.DescendantNode

	frontier := []uuid.UUID{id}
	for level := 1; len(frontier) > 0; level++ {
		children, err := s.topics.ChildrenOfMany(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("descendants of %s: %w", id, err)
		}

		var next []uuid.UUID
		for _, child := range children {
			if _, seen := visited[child.Node.ID]; seen {
				continue
			}
			visited[child.Node.ID] = struct{}{}

			parentPath := paths[child.ParentID]
			path := make([]uuid.UUID, len(parentPath), len(parentPath)+1)
			copy(path, parentPath)
			path = append(path, child.Node.ID)
			paths[child.Node.ID] = path

			node := child.Node
			result = append(result, &domain.DescendantNode{
				TopicNode: node,
				Level:     level,
				Path:      path,
			})
			next = append(next, node.ID)
		}
		frontier = next
	}

	if result == nil {
		result = []*domain.DescendantNode{}
	}

	return result, nil
}

// DescendantIDs returns the ids of every topic strictly below the given
// one. The topic itself is never part of the result; callers that want the
// whole subtree (a grant or filter on a topic covers the topic and
// everything under it) add the root id themselves.
func (s *Service) DescendantIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	visited := map[uuid.UUID]struct{}{id: {}}
	result := []uuid.UUID{}

	frontier := []uuid.UUID{id}
	for len(frontier) > 0 {
		edges, err := s.topics.ChildIDsOfMany(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("descendant ids of %s: %w", id, err)
		}

		var next []uuid.UUID
		for _, e := range edges {
			if _, seen := visited[e.ChildID]; seen {
				continue
			}
			visited[e.ChildID] = struct{}{}
			result = append(result, e.ChildID)
			next = append(next, e.ChildID)
		}
		frontier = next
	}

	return result, nil
}

// IsAncestorOf reports whether target is reachable from ancestor along
// child edges. A topic is not its own ancestor; callers that treat equal
// ids as covered check equality themselves. The walk stops as soon as the
// target is found.
func (s *Service) IsAncestorOf(ctx context.Context, ancestor, target uuid.UUID) (bool, error) {
	if ancestor == uuid.Nil || target == uuid.Nil {
		return false, domain.NewValidationError("topic_id", "required")
	}
	if ancestor == target {
		return false, nil
	}

	visited := map[uuid.UUID]struct{}{ancestor: {}}

	frontier := []uuid.UUID{ancestor}
	for len(frontier) > 0 {
		edges, err := s.topics.ChildIDsOfMany(ctx, frontier)
		if err != nil {
			return false, fmt.Errorf("is ancestor: %w", err)
		}

		var next []uuid.UUID
		for _, e := range edges {
			if e.ChildID == target {
				return true, nil
			}
			if _, seen := visited[e.ChildID]; seen {
				continue
			}
			visited[e.ChildID] = struct{}{}
			next = append(next, e.ChildID)
		}
		frontier = next
	}

	return false, nil
}
