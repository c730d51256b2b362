package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
)

// AddFriend records a mutual friendship between the caller and another
// person. Re-adding an existing friend is a no-op.
func (s *Service) AddFriend(ctx context.Context, friendID uuid.UUID) error {
	me, err := s.MyProfile(ctx)
	if err != nil {
		return err
	}
	if friendID == uuid.Nil || friendID == me.ID {
		return domain.NewValidationError("friend_id", "must reference another person")
	}

	if _, err := s.persons.GetByID(ctx, friendID); err != nil {
		return err
	}

	if err := s.persons.AddFriend(ctx, me.ID, friendID); err != nil {
		return fmt.Errorf("add friend: %w", err)
	}

	return nil
}

// RemoveFriend ends a friendship in both directions.
func (s *Service) RemoveFriend(ctx context.Context, friendID uuid.UUID) error {
	me, err := s.MyProfile(ctx)
	if err != nil {
		return err
	}

	if err := s.persons.RemoveFriend(ctx, me.ID, friendID); err != nil {
		return fmt.Errorf("remove friend: %w", err)
	}

	return nil
}

// Friends returns the caller's friends' person ids.
func (s *Service) Friends(ctx context.Context) ([]uuid.UUID, error) {
	me, err := s.MyProfile(ctx)
	if err != nil {
		return nil, err
	}
	return s.persons.FriendIDs(ctx, me.ID)
}

// AddFavorite marks a list as one of the caller's favorites. Idempotent.
func (s *Service) AddFavorite(ctx context.Context, listID uuid.UUID) error {
	me, err := s.MyProfile(ctx)
	if err != nil {
		return err
	}
	if listID == uuid.Nil {
		return domain.NewValidationError("list_id", "required")
	}

	if err := s.persons.AddFavorite(ctx, me.ID, listID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	return nil
}

// RemoveFavorite unmarks a favorite list.
func (s *Service) RemoveFavorite(ctx context.Context, listID uuid.UUID) error {
	me, err := s.MyProfile(ctx)
	if err != nil {
		return err
	}

	if err := s.persons.RemoveFavorite(ctx, me.ID, listID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	return nil
}

// Favorites returns the caller's favorite list ids, newest first.
func (s *Service) Favorites(ctx context.Context) ([]uuid.UUID, error) {
	me, err := s.MyProfile(ctx)
	if err != nil {
		return nil, err
	}
	return s.persons.FavoriteListIDs(ctx, me.ID)
}

// CreateGroup creates a subscriber group and adds the caller as its first
// member.
func (s *Service) CreateGroup(ctx context.Context, name string) (*domain.SubscriberGroup, error) {
	me, err := s.MyProfile(ctx)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	group, err := s.persons.CreateGroup(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	if err := s.persons.AddGroupMember(ctx, me.ID, group.ID); err != nil {
		return nil, fmt.Errorf("join own group: %w", err)
	}

	s.log.Info("subscriber group created", "group_id", group.ID, "person_id", me.ID)

	return group, nil
}

// JoinGroup adds the caller to a subscriber group. Idempotent.
func (s *Service) JoinGroup(ctx context.Context, groupID uuid.UUID) error {
	me, err := s.MyProfile(ctx)
	if err != nil {
		return err
	}
	if _, err := s.persons.GetGroup(ctx, groupID); err != nil {
		return err
	}

	if err := s.persons.AddGroupMember(ctx, me.ID, groupID); err != nil {
		return fmt.Errorf("join group: %w", err)
	}

	return nil
}

// LeaveGroup removes the caller from a subscriber group.
func (s *Service) LeaveGroup(ctx context.Context, groupID uuid.UUID) error {
	me, err := s.MyProfile(ctx)
	if err != nil {
		return err
	}

	if err := s.persons.RemoveGroupMember(ctx, me.ID, groupID); err != nil {
		return fmt.Errorf("leave group: %w", err)
	}

	return nil
}
