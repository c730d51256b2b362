package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// AddComment appends a comment to a list's review trail. Anyone who can see
// the list may comment on it.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.ListComment, error) {
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
	if err := s.authorizeView(ctx, l); err != nil {
		return nil, err
	}

	created, err := s.comments.Add(ctx, &domain.ListComment{
		ListID:   input.ListID,
		AuthorID: userID,
		Message:  input.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	return created, nil
}

// Comments returns a visible list's comments, oldest first.
func (s *Service) Comments(ctx context.Context, listID uuid.UUID) ([]*domain.ListComment, error) {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeView(ctx, l); err != nil {
		return nil, err
	}

	return s.comments.ListByListID(ctx, listID)
}
