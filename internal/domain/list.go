package domain

import (
	"time"

	"github.com/google/uuid"
)

// List is a ranked collection of items curated under a topic, subject to
// editorial review before publication.
//
// Invariants: LockUserID may be non-nil only while Status is SUBMITTED;
// once PUBLISHED the title/description/topic/items are immutable; further
// change happens by cloning into a new row with Version incremented and
// ParentListID pointing at the source.
type List struct {
	ID           uuid.UUID
	Title        string
	Description  *string
	TopicID      *uuid.UUID // nil when the topic was deleted
	Active       bool
	Status       ListStatus
	CreatorID    *uuid.UUID
	LockUserID   *uuid.UUID // reviewer holding the exclusive review lock
	ParentListID *uuid.UUID // set when cloned
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLocked reports whether a reviewer currently holds the review lock.
func (l *List) IsLocked() bool { return l.LockUserID != nil }

// IsLockedBy reports whether the given user holds the review lock.
func (l *List) IsLockedBy(userID uuid.UUID) bool {
	return l.LockUserID != nil && *l.LockUserID == userID
}

// IsCreator reports whether the given user created the list.
func (l *List) IsCreator(userID uuid.UUID) bool {
	return l.CreatorID != nil && *l.CreatorID == userID
}

// ListItem is a single item in a list. Items are exclusively owned by their
// list (cascade-deleted with it) and carry an explicit order among siblings.
type ListItem struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	Title       string
	Description *string
	DeepDive    *string
	Active      bool
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListComment is a free-text message on a list's review trail. Comments are
// append-only: never mutated after creation except the modified timestamp.
type ListComment struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	AuthorID  uuid.UUID
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
