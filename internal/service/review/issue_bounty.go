package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// IssueBounty issues a standalone bounty on a target, outside any proposal.
// The caller must hold editorial power over the target's topic scope. A
// missing deadline defaults to the configured bounty TTL from now.
func (s *Service) IssueBounty(ctx context.Context, input IssueBountyInput) (*domain.Bounty, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkBountyType(ctx, input.TypeID); err != nil {
		return nil, err
	}
	if err := s.authorizeEditor(ctx, userID, input.Target); err != nil {
		return nil, err
	}

	created, err := s.bounties.Create(ctx, s.buildBounty(input, &userID))
	if err != nil {
		return nil, fmt.Errorf("create bounty: %w", err)
	}

	s.log.Info("bounty issued", "bounty_id", created.ID, "target", created.Target.String(), "issuer_id", userID)

	return created, nil
}

// IssueSystemBounty issues a bounty on behalf of the system itself, with no
// issuing user. Meant for internal automation (seeding, scheduled curation),
// so it performs no caller authorization.
func (s *Service) IssueSystemBounty(ctx context.Context, input IssueBountyInput) (*domain.Bounty, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkBountyType(ctx, input.TypeID); err != nil {
		return nil, err
	}
	if _, err := s.topicScopeOf(ctx, input.Target); err != nil {
		return nil, err
	}

	created, err := s.bounties.Create(ctx, s.buildBounty(input, nil))
	if err != nil {
		return nil, fmt.Errorf("create system bounty: %w", err)
	}

	s.log.Info("system bounty issued", "bounty_id", created.ID, "target", created.Target.String())

	return created, nil
}

// IssueBountyForProposal fulfills a proposal by issuing a bounty on the
// proposal's target and linking it, both in one transaction. Fulfillment is
// monotonic: a proposal that already has a bounty yields domain.ErrConflict.
func (s *Service) IssueBountyForProposal(ctx context.Context, input IssueForProposalInput) (*domain.Bounty, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkBountyType(ctx, input.TypeID); err != nil {
		return nil, err
	}

	p, err := s.proposals.GetByID(ctx, input.ProposalID)
	if err != nil {
		return nil, err
	}
	if p.IsFulfilled() {
		return nil, domain.ErrConflict
	}
	if err := s.authorizeEditor(ctx, userID, p.Target); err != nil {
		return nil, err
	}

	var created *domain.Bounty
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.bounties.Create(txCtx, s.buildBounty(IssueBountyInput{
			Target:     p.Target,
			TypeID:     input.TypeID,
			Reward:     input.Reward,
			DateExpire: input.DateExpire,
		}, &userID))
		if createErr != nil {
			return fmt.Errorf("create bounty: %w", createErr)
		}

		affected, err := s.proposals.SetBounty(txCtx, p.ID, created.ID)
		if err != nil {
			return fmt.Errorf("link bounty to proposal: %w", err)
		}
		if affected == 0 {
			// Another editor fulfilled it first; roll back our bounty.
			return domain.ErrConflict
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("proposal fulfilled", "proposal_id", p.ID, "bounty_id", created.ID, "issuer_id", userID)

	return created, nil
}

// OpenBounties returns the unclaimed active bounties on a target.
func (s *Service) OpenBounties(ctx context.Context, target domain.EntityRef) ([]*domain.Bounty, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	return s.bounties.ListOpenByTarget(ctx, target)
}

func (s *Service) buildBounty(input IssueBountyInput, issuerID *uuid.UUID) *domain.Bounty {
	expire := input.DateExpire
	if expire == nil {
		e := s.now().Add(s.cfg.DefaultBountyTTL)
		expire = &e
	}
	return &domain.Bounty{
		TypeID:     input.TypeID,
		Target:     input.Target,
		IssuerID:   issuerID,
		Reward:     input.Reward,
		Active:     true,
		DateExpire: expire,
	}
}
