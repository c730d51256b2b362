package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// ReturnToDraft lets the creator withdraw their SUBMITTED list back to DRAFT
// for rework. The list must be unlocked: while an editor holds the review
// lock the submission stays in their hands. An optional comment explains the
// withdrawal on the list's review trail, written in the same transaction.
func (s *Service) ReturnToDraft(ctx context.Context, listID uuid.UUID, comment string) (*domain.List, error) {
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
	if !l.IsCreator(userID) {
		return nil, domain.ErrForbidden
	}
	if l.IsLocked() {
		return nil, domain.ErrConflict
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		affected, err := s.lists.ReturnToDraft(txCtx, listID, userID)
		if err != nil {
			return fmt.Errorf("return list to draft: %w", err)
		}
		if affected == 0 {
			return s.classifyWithdrawalLoss(txCtx, listID, userID)
		}

		if comment != "" {
			_, err = s.comments.Add(txCtx, &domain.ListComment{
				ListID:   listID,
				AuthorID: userID,
				Message:  comment,
			})
			if err != nil {
				return fmt.Errorf("add review comment: %w", err)
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("list returned to draft", "list_id", listID, "creator_id", userID)

	return s.lists.GetByID(ctx, listID)
}

// classifyWithdrawalLoss re-reads a list after an UPDATE guarded on
// "unlocked SUBMITTED, owned by this creator" matched nothing.
func (s *Service) classifyWithdrawalLoss(ctx context.Context, listID, userID uuid.UUID) error {
	current, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	if current.Status != domain.ListStatusSubmitted {
		return domain.ErrInvalidTransition
	}
	if !current.IsCreator(userID) {
		return domain.ErrForbidden
	}
	// An editor claimed it between our read and the write.
	return domain.ErrConflict
}
