package review

import (
	"context"
	"fmt"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// Propose files a proposal for work on a target entity. Any authenticated
// user may propose; the target must exist.
func (s *Service) Propose(ctx context.Context, input ProposeInput) (*domain.Proposal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Existence check doubles as kind dispatch.
	if _, err := s.topicScopeOf(ctx, input.Target); err != nil {
		return nil, err
	}

	created, err := s.proposals.Create(ctx, &domain.Proposal{
		Target:          input.Target,
		AuthorID:        userID,
		Message:         input.Message,
		SuggestedReward: input.SuggestedReward,
	})
	if err != nil {
		return nil, fmt.Errorf("create proposal: %w", err)
	}

	s.log.Info("proposal filed", "proposal_id", created.ID, "target", created.Target.String())

	return created, nil
}

// OpenProposals returns all proposals not yet fulfilled by a bounty,
// oldest first.
func (s *Service) OpenProposals(ctx context.Context) ([]*domain.Proposal, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.proposals.ListOpen(ctx)
}
