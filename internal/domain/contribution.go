package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contribution records that a user contributed to an arbitrary target
// entity. The ledger is append-only: rows are written inside the same
// transaction as the contribution they record and never mutated.
type Contribution struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Target    EntityRef
	Note      *string
	CreatedAt time.Time
}
