package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subscription grants a subscriber group access to a topic and, through the
// topic graph, to all of its descendants, optionally for a bounded period.
// Price is recorded only; payment processing happens elsewhere.
type Subscription struct {
	ID         uuid.UUID
	GroupID    uuid.UUID
	TopicID    uuid.UUID
	Active     bool
	EditPower  bool
	Price      float64
	DateExpire *time.Time
	CreatedAt  time.Time
}

// IsExpired reports whether the subscription is past its expiration at the
// given instant. Expiration is computed at query time; the stored Active
// flag is never eagerly rewritten.
func (s *Subscription) IsExpired(now time.Time) bool {
	return s.DateExpire != nil && !now.Before(*s.DateExpire)
}

// IsUsable reports whether the subscription grants anything at the given
// instant: it must be active and not expired.
func (s *Subscription) IsUsable(now time.Time) bool {
	return s.Active && !s.IsExpired(now)
}
