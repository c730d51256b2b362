package domain

import (
	"time"

	"github.com/google/uuid"
)

// Person extends the externally supplied user identity with profile data
// and social relations. UserID is the opaque identity from the auth
// collaborator; there is exactly one Person per identity.
type Person struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Degrees             *string
	JobTitle            *string
	PersonalDescription *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SubscriberGroup is a group of subscribers; a singleton group for an
// individual, or an organization holding a bulk subscription.
type SubscriberGroup struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// FavoriteList links a person to a list they favorited. The join row carries
// its own creation timestamp and dies with either side.
type FavoriteList struct {
	PersonID  uuid.UUID
	ListID    uuid.UUID
	CreatedAt time.Time
}

// GroupMember links a person to a subscriber group.
type GroupMember struct {
	PersonID  uuid.UUID
	GroupID   uuid.UUID
	CreatedAt time.Time
}
