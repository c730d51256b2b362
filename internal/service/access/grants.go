package access

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// GrantSubscriptionInput holds the parameters for granting a subscription.
type GrantSubscriptionInput struct {
	GroupID    uuid.UUID
	TopicID    uuid.UUID
	EditPower  bool
	Price      float64
	DateExpire *time.Time
}

// Validate checks all fields and collects all errors.
func (i *GrantSubscriptionInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.Price < 0 {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	if i.DateExpire != nil && !i.DateExpire.After(time.Now()) {
		errs = append(errs, domain.FieldError{Field: "date_expire", Message: "must be in the future"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GrantSubscription creates an active subscription for a group on a topic.
// Subscription management is an operator surface; billing is recorded but
// never processed here.
func (s *Service) GrantSubscription(ctx context.Context, input GrantSubscriptionInput) (*domain.Subscription, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sub := &domain.Subscription{
		GroupID:    input.GroupID,
		TopicID:    input.TopicID,
		Active:     true,
		EditPower:  input.EditPower,
		Price:      input.Price,
		DateExpire: input.DateExpire,
	}

	created, err := s.subscriptions.Create(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	s.log.Info("subscription granted",
		"subscription_id", created.ID, "group_id", created.GroupID,
		"topic_id", created.TopicID, "edit_power", created.EditPower)

	return created, nil
}

// RevokeSubscription deactivates a subscription. The row is kept; access
// resolution simply stops considering it.
func (s *Service) RevokeSubscription(ctx context.Context, id uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("subscription_id", "required")
	}

	if _, err := s.subscriptions.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.subscriptions.SetActive(ctx, id, false); err != nil {
		return fmt.Errorf("deactivate subscription: %w", err)
	}

	s.log.Info("subscription revoked", "subscription_id", id)

	return nil
}
