// Package access resolves what a user may do with content under a topic.
// Grants come from subscriptions held by the user's subscriber groups; a
// subscription on a topic covers the topic's whole subtree.
package access

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type subscriptionRepo interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error)
	ActiveByGroupIDs(ctx context.Context, groupIDs []uuid.UUID) ([]*domain.Subscription, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type groupResolver interface {
	GroupIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type ancestryChecker interface {
	IsAncestorOf(ctx context.Context, ancestor, target uuid.UUID) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service resolves subscription-based access to topics.
type Service struct {
	log           *slog.Logger
	subscriptions subscriptionRepo
	groups        groupResolver
	topics        ancestryChecker
	now           func() time.Time
}

// NewService creates a new access service.
func NewService(logger *slog.Logger, subscriptions subscriptionRepo, groups groupResolver, topics ancestryChecker) *Service {
	return &Service{
		log:           logger.With("service", "access"),
		subscriptions: subscriptions,
		groups:        groups,
		topics:        topics,
		now:           time.Now,
	}
}

// Grant is the resolved access a user holds on a topic.
type Grant struct {
	CanRead bool
	CanEdit bool
}

// Resolve computes the user's grant on a topic: the union over all usable
// subscriptions of the user's groups whose topic is the target or one of
// its ancestors. Expiry is evaluated against the current clock; the stored
// rows are never modified.
func (s *Service) Resolve(ctx context.Context, userID, topicID uuid.UUID) (Grant, error) {
	if topicID == uuid.Nil {
		return Grant{}, domain.NewValidationError("topic_id", "required")
	}

	groupIDs, err := s.groups.GroupIDsByUserID(ctx, userID)
	if err != nil {
		return Grant{}, fmt.Errorf("resolve groups: %w", err)
	}
	if len(groupIDs) == 0 {
		return Grant{}, nil
	}

	subs, err := s.subscriptions.ActiveByGroupIDs(ctx, groupIDs)
	if err != nil {
		return Grant{}, fmt.Errorf("resolve subscriptions: %w", err)
	}

	now := s.now()
	var grant Grant
	for _, sub := range subs {
		if !sub.IsUsable(now) {
			continue
		}

		covers := sub.TopicID == topicID
		if !covers {
			covers, err = s.topics.IsAncestorOf(ctx, sub.TopicID, topicID)
			if err != nil {
				return Grant{}, fmt.Errorf("resolve ancestry: %w", err)
			}
		}
		if !covers {
			continue
		}

		grant.CanRead = true
		if sub.EditPower {
			grant.CanEdit = true
			// Nothing stronger to find.
			break
		}
	}

	return grant, nil
}

// CanRead reports whether the user may read content under the topic.
func (s *Service) CanRead(ctx context.Context, userID, topicID uuid.UUID) (bool, error) {
	g, err := s.Resolve(ctx, userID, topicID)
	if err != nil {
		return false, err
	}
	return g.CanRead, nil
}

// CanEdit reports whether the user holds editorial power under the topic.
func (s *Service) CanEdit(ctx context.Context, userID, topicID uuid.UUID) (bool, error) {
	g, err := s.Resolve(ctx, userID, topicID)
	if err != nil {
		return false, err
	}
	return g.CanEdit, nil
}
