package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// Publish releases a SUBMITTED list to the public. Only the editor holding
// the review lock may publish; the transition clears the lock and records a
// contribution for the list's creator in the same transaction. The search
// index is notified after commit, fire-and-forget.
func (s *Service) Publish(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
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

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		affected, err := s.lists.Publish(txCtx, listID, userID)
		if err != nil {
			return fmt.Errorf("publish list: %w", err)
		}
		if affected == 0 {
			return s.classifyLockLoss(txCtx, listID, userID)
		}

		if l.CreatorID != nil {
			note := "published list " + l.Title
			_, err = s.contributions.Log(txCtx, &domain.Contribution{
				UserID: *l.CreatorID,
				Target: domain.EntityRef{Kind: domain.EntityKindList, ID: listID},
				Note:   &note,
			})
			if err != nil {
				return fmt.Errorf("log contribution: %w", err)
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	published, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	s.search.ListChanged(published)
	s.log.Info("list published", "list_id", listID, "editor_id", userID)

	return published, nil
}

// SetActive flips a published list's visibility without deleting anything.
// Only an editor under the list's topic may deactivate or reactivate.
func (s *Service) SetActive(ctx context.Context, listID uuid.UUID, active bool) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeEditor(ctx, userID, l); err != nil {
		return nil, err
	}

	if err := s.lists.SetActive(ctx, listID, active); err != nil {
		return nil, fmt.Errorf("set list active: %w", err)
	}

	updated, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	s.search.ListChanged(updated)
	s.log.Info("list active flag changed", "list_id", listID, "active", active)

	return updated, nil
}
