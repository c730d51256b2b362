package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// Release gives up the review lock the calling editor holds, leaving the
// list SUBMITTED and claimable by others.
func (s *Service) Release(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
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
	if l.Status != domain.ListStatusSubmitted {
		return nil, domain.ErrInvalidTransition
	}
	if !l.IsLockedBy(userID) {
		return nil, domain.ErrForbidden
	}

	affected, err := s.lists.Release(ctx, listID, userID)
	if err != nil {
		return nil, fmt.Errorf("release review lock: %w", err)
	}
	if affected == 0 {
		return nil, s.classifyLockLoss(ctx, listID, userID)
	}

	s.log.Info("review lock released", "list_id", listID, "editor_id", userID)

	return s.lists.GetByID(ctx, listID)
}

// classifyLockLoss re-reads a list after an UPDATE guarded on "locked by
// this editor" matched nothing.
func (s *Service) classifyLockLoss(ctx context.Context, listID, userID uuid.UUID) error {
	current, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	if current.Status != domain.ListStatusSubmitted {
		return domain.ErrInvalidTransition
	}
	if !current.IsLockedBy(userID) {
		return domain.ErrForbidden
	}
	return domain.ErrConflict
}
