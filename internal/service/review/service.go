// Package review implements the proposal and bounty workflow: users propose
// work on an entity, editors turn proposals into bounties, contributors
// claim bounties.
//
// A bounty target is a polymorphic reference; editor authorization is
// resolved by mapping the target to its topic scope (a list's topic, an
// item's list's topic, or the topic itself).
package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/config"
	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/internal/service/access"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type proposalRepo interface {
	Create(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	ListOpen(ctx context.Context) ([]*domain.Proposal, error)
	SetBounty(ctx context.Context, id, bountyID uuid.UUID) (int64, error)
}

type bountyRepo interface {
	Create(ctx context.Context, b *domain.Bounty) (*domain.Bounty, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bounty, error)
	ListOpenByTarget(ctx context.Context, target domain.EntityRef) ([]*domain.Bounty, error)
	Claim(ctx context.Context, id, claimerID uuid.UUID) (int64, error)
	Deactivate(ctx context.Context, id uuid.UUID) (int64, error)
	CreateType(ctx context.Context, name string, description *string) (*domain.BountyType, error)
	GetType(ctx context.Context, id uuid.UUID) (*domain.BountyType, error)
}

type contributionRepo interface {
	Log(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error)
}

type listGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error)
}

type itemGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ListItem, error)
}

type topicGetter interface {
	GetNode(ctx context.Context, id uuid.UUID) (*domain.TopicNode, error)
}

type accessResolver interface {
	Resolve(ctx context.Context, userID, topicID uuid.UUID) (access.Grant, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the proposal and bounty workflow.
type Service struct {
	log           *slog.Logger
	proposals     proposalRepo
	bounties      bountyRepo
	contributions contributionRepo
	lists         listGetter
	items         itemGetter
	topics        topicGetter
	access        accessResolver
	tx            txManager
	cfg           config.CurationConfig
	now           func() time.Time
}

// NewService creates a new review service.
func NewService(
	logger *slog.Logger,
	proposals proposalRepo,
	bounties bountyRepo,
	contributions contributionRepo,
	lists listGetter,
	items itemGetter,
	topics topicGetter,
	accessSvc accessResolver,
	tx txManager,
	cfg config.CurationConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "review"),
		proposals:     proposals,
		bounties:      bounties,
		contributions: contributions,
		lists:         lists,
		items:         items,
		topics:        topics,
		access:        accessSvc,
		tx:            tx,
		cfg:           cfg,
		now:           time.Now,
	}
}

// topicScopeOf resolves the topic a target entity falls under. A nil result
// means the target exists but hangs under no topic; nobody holds editorial
// power over such a target.
func (s *Service) topicScopeOf(ctx context.Context, target domain.EntityRef) (*uuid.UUID, error) {
	switch target.Kind {
	case domain.EntityKindTopic:
		node, err := s.topics.GetNode(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		return &node.ID, nil

	case domain.EntityKindList:
		l, err := s.lists.GetByID(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		return l.TopicID, nil

	case domain.EntityKindListItem:
		item, err := s.items.GetByID(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		l, err := s.lists.GetByID(ctx, item.ListID)
		if err != nil {
			return nil, err
		}
		return l.TopicID, nil

	default:
		return nil, domain.NewValidationError("target.kind", "invalid value")
	}
}

// authorizeEditor verifies the user holds editorial power over the target's
// topic scope.
func (s *Service) authorizeEditor(ctx context.Context, userID uuid.UUID, target domain.EntityRef) error {
	scope, err := s.topicScopeOf(ctx, target)
	if err != nil {
		return err
	}
	if scope == nil {
		return domain.ErrForbidden
	}

	grant, err := s.access.Resolve(ctx, userID, *scope)
	if err != nil {
		return fmt.Errorf("resolve access: %w", err)
	}
	if !grant.CanEdit {
		return domain.ErrForbidden
	}

	return nil
}
