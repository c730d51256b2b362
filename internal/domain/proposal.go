package domain

import (
	"time"

	"github.com/google/uuid"
)

// Proposal is a request, tied to a target entity, for a bounty to be issued.
//
// Invariant: BountyID starts nil and is set at most once, when an editor
// issues the fulfilling bounty. Fulfillment is monotonic: a set BountyID
// is never cleared.
type Proposal struct {
	ID              uuid.UUID
	Target          EntityRef
	AuthorID        uuid.UUID
	Message         string
	SuggestedReward float64
	BountyID        *uuid.UUID
	CreatedAt       time.Time
}

// IsFulfilled reports whether a bounty has been issued for the proposal.
func (p *Proposal) IsFulfilled() bool { return p.BountyID != nil }
