package list

import (
	"context"
	"fmt"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// UpdateContent rewrites the title, description and topic of a DRAFT list.
// Only the creator may edit, and only while the list is a draft; published
// content changes by cloning instead.
func (s *Service) UpdateContent(ctx context.Context, input UpdateContentInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.lists.GetByID(ctx, input.ListID)
	if err != nil {
		return nil, err
	}
	if !l.IsCreator(userID) {
		return nil, domain.ErrForbidden
	}
	if l.Status != domain.ListStatusDraft {
		return nil, domain.ErrInvalidTransition
	}

	affected, err := s.lists.UpdateContent(ctx, input.ListID, input.Title, input.Description, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("update list content: %w", err)
	}
	if affected == 0 {
		// Left DRAFT between our read and the write.
		return nil, domain.ErrInvalidTransition
	}

	return s.lists.GetByID(ctx, input.ListID)
}
