// Package person implements the profile and social surface: profiles over
// external user identities, friendships, favorite lists and subscriber
// group membership.
package person

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type personRepo interface {
	Create(ctx context.Context, p *domain.Person) (*domain.Person, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Person, error)
	Update(ctx context.Context, p *domain.Person) (*domain.Person, error)
	AddFriend(ctx context.Context, personID, friendID uuid.UUID) error
	RemoveFriend(ctx context.Context, personID, friendID uuid.UUID) error
	FriendIDs(ctx context.Context, personID uuid.UUID) ([]uuid.UUID, error)
	AddFavorite(ctx context.Context, personID, listID uuid.UUID) error
	RemoveFavorite(ctx context.Context, personID, listID uuid.UUID) error
	FavoriteListIDs(ctx context.Context, personID uuid.UUID) ([]uuid.UUID, error)
	CreateGroup(ctx context.Context, name string) (*domain.SubscriberGroup, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*domain.SubscriberGroup, error)
	AddGroupMember(ctx context.Context, personID, groupID uuid.UUID) error
	RemoveGroupMember(ctx context.Context, personID, groupID uuid.UUID) error
}

type contributionReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Contribution, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the person business logic.
type Service struct {
	log           *slog.Logger
	persons       personRepo
	contributions contributionReader
}

// NewService creates a new person service.
func NewService(logger *slog.Logger, persons personRepo, contributions contributionReader) *Service {
	return &Service{
		log:           logger.With("service", "person"),
		persons:       persons,
		contributions: contributions,
	}
}
