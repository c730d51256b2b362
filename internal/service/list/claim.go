package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// Claim takes the exclusive review lock on a SUBMITTED list for the calling
// editor. The lock is granted by a conditional UPDATE, so of any number of
// concurrent claimers exactly one wins; the rest get domain.ErrConflict.
func (s *Service) Claim(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
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
	if err := s.authorizeEditor(ctx, userID, l); err != nil {
		return nil, err
	}
	if l.Status != domain.ListStatusSubmitted {
		return nil, domain.ErrInvalidTransition
	}

	affected, err := s.lists.Claim(ctx, listID, userID)
	if err != nil {
		return nil, fmt.Errorf("claim list: %w", err)
	}
	if affected == 0 {
		return nil, s.classifyLockFailure(ctx, listID, userID)
	}

	s.log.Info("review lock claimed", "list_id", listID, "editor_id", userID)

	return s.lists.GetByID(ctx, listID)
}

// classifyLockFailure re-reads a list after a lock-guarded UPDATE matched
// nothing and names the reason.
func (s *Service) classifyLockFailure(ctx context.Context, listID, userID uuid.UUID) error {
	current, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	if current.Status != domain.ListStatusSubmitted {
		return domain.ErrInvalidTransition
	}
	// Still SUBMITTED, so another editor holds (or just took) the lock.
	return domain.ErrConflict
}
