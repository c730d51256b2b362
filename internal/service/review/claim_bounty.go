package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// ClaimBounty assigns an open bounty to the calling user. The claim is a
// single conditional UPDATE, so concurrent claimers race on the row and
// exactly one wins. Claiming also records a contribution in the same
// transaction.
func (s *Service) ClaimBounty(ctx context.Context, bountyID uuid.UUID) (*domain.Bounty, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if bountyID == uuid.Nil {
		return nil, domain.NewValidationError("bounty_id", "required")
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		affected, err := s.bounties.Claim(txCtx, bountyID, userID)
		if err != nil {
			return fmt.Errorf("claim bounty: %w", err)
		}
		if affected == 0 {
			return s.classifyClaimFailure(txCtx, bountyID)
		}

		note := "claimed bounty " + bountyID.String()
		b, err := s.bounties.GetByID(txCtx, bountyID)
		if err != nil {
			return err
		}
		_, err = s.contributions.Log(txCtx, &domain.Contribution{
			UserID: userID,
			Target: b.Target,
			Note:   &note,
		})
		if err != nil {
			return fmt.Errorf("log contribution: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	claimed, err := s.bounties.GetByID(ctx, bountyID)
	if err != nil {
		return nil, err
	}

	s.log.Info("bounty claimed", "bounty_id", bountyID, "claimer_id", userID)

	return claimed, nil
}

// classifyClaimFailure re-reads a bounty after the claim UPDATE matched
// nothing and names the reason.
func (s *Service) classifyClaimFailure(ctx context.Context, bountyID uuid.UUID) error {
	b, err := s.bounties.GetByID(ctx, bountyID)
	if err != nil {
		return err
	}
	if b.IsClaimed() {
		return domain.ErrConflict
	}
	if b.IsExpired(s.now()) {
		return domain.ErrExpired
	}
	// Unclaimed, unexpired, yet unclaimable: deactivated.
	return domain.ErrConflict
}

// DeactivateBounty retires an open bounty. The caller must hold editorial
// power over the target's topic scope. A claimed bounty is part of the
// contribution record and cannot be deactivated.
func (s *Service) DeactivateBounty(ctx context.Context, bountyID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if bountyID == uuid.Nil {
		return domain.NewValidationError("bounty_id", "required")
	}

	b, err := s.bounties.GetByID(ctx, bountyID)
	if err != nil {
		return err
	}
	if err := s.authorizeEditor(ctx, userID, b.Target); err != nil {
		return err
	}
	if b.IsClaimed() {
		return domain.ErrConflict
	}

	affected, err := s.bounties.Deactivate(ctx, bountyID)
	if err != nil {
		return fmt.Errorf("deactivate bounty: %w", err)
	}
	if affected == 0 {
		// Claimed between our read and the write.
		return domain.ErrConflict
	}

	s.log.Info("bounty deactivated", "bounty_id", bountyID, "editor_id", userID)

	return nil
}
