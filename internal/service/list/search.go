package list

import (
	"context"
	"errors"
	"fmt"

	listrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/list"
	"github.com/listforge/listforge-backend/internal/domain"
)

// Search runs the public list search: PUBLISHED, active lists only, newest
// first. A topic name narrows the result to the matched topic's whole
// subtree; a topic name that matches nothing yields an empty result rather
// than an error.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]*domain.List, error) {
	filter := listrepo.SearchFilter{
		TitleSubstring: input.TitleSubstring,
		Limit:          input.Limit,
	}
	if filter.Limit <= 0 || filter.Limit > s.cfg.SearchResultLimit {
		filter.Limit = s.cfg.SearchResultLimit
	}

	if input.TopicName != "" {
		node, err := s.topics.FindNodeByName(ctx, input.TopicName)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return []*domain.List{}, nil
			}
			return nil, fmt.Errorf("resolve topic filter: %w", err)
		}

		ids, err := s.topics.DescendantIDs(ctx, node.ID)
		if err != nil {
			return nil, fmt.Errorf("expand topic filter: %w", err)
		}
		// The filter covers the matched topic itself, not just what is
		// below it.
		filter.TopicIDs = append(ids, node.ID)
	}

	return s.lists.Search(ctx, filter)
}
