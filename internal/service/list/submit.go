package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// Submit moves the caller's DRAFT list into review.
func (s *Service) Submit(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if listID == uuid.Nil {
		return nil, domain.NewValidationError("list_id", "required")
	}

	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if !l.IsCreator(userID) {
		return nil, domain.ErrForbidden
	}
	if l.Status != domain.ListStatusDraft {
		return nil, domain.ErrInvalidTransition
	}

	affected, err := s.lists.SetStatus(ctx, listID, domain.ListStatusDraft, domain.ListStatusSubmitted)
	if err != nil {
		return nil, fmt.Errorf("submit list: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrInvalidTransition
	}

	s.log.Info("list submitted", "list_id", listID, "creator_id", userID)

	return s.lists.GetByID(ctx, listID)
}
