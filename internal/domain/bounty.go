package domain

import (
	"time"

	"github.com/google/uuid"
)

// BountyType categorizes bounties (e.g. list creation, fact checking).
type BountyType struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}

// Bounty is a reward offered for contributing to a target entity.
// A nil IssuerID means the bounty was issued by the system. A bounty is
// claimable exactly once, before its expiration.
//
// Invariant: DateCompleted is non-nil iff ClaimerID is non-nil; both are
// set together, atomically, when the bounty is claimed.
type Bounty struct {
	ID            uuid.UUID
	TypeID        *uuid.UUID
	Target        EntityRef
	IssuerID      *uuid.UUID
	ClaimerID     *uuid.UUID
	Reward        float64
	Active        bool
	DateExpire    *time.Time
	DateCompleted *time.Time
	CreatedAt     time.Time
}

// IsClaimed reports whether the bounty has already been claimed.
func (b *Bounty) IsClaimed() bool { return b.ClaimerID != nil }

// IsExpired reports whether the bounty is past its deadline at the given
// instant.
func (b *Bounty) IsExpired(now time.Time) bool {
	return b.DateExpire != nil && !now.Before(*b.DateExpire)
}
