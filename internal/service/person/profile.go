package person

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// MyProfile returns the calling user's profile, creating an empty one on
// first access. The identity itself lives with the auth collaborator; only
// profile data is stored here.
func (s *Service) MyProfile(ctx context.Context) (*domain.Person, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.persons.GetByUserID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	created, err := s.persons.Create(ctx, &domain.Person{UserID: userID})
	if err != nil {
		// A concurrent first access may have created it already.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return s.persons.GetByUserID(ctx, userID)
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.log.Info("profile created", "person_id", created.ID, "user_id", userID)

	return created, nil
}

// GetProfile returns a person's public profile by person id.
func (s *Service) GetProfile(ctx context.Context, personID uuid.UUID) (*domain.Person, error) {
	if personID == uuid.Nil {
		return nil, domain.NewValidationError("person_id", "required")
	}
	return s.persons.GetByID(ctx, personID)
}

// UpdateProfile rewrites the calling user's profile fields.
func (s *Service) UpdateProfile(ctx context.Context, input ProfileInput) (*domain.Person, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.MyProfile(ctx)
	if err != nil {
		return nil, err
	}

	p.Degrees = input.Degrees
	p.JobTitle = input.JobTitle
	p.PersonalDescription = input.PersonalDescription

	updated, err := s.persons.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return updated, nil
}

// MyContributions returns the calling user's contribution history, newest
// first.
func (s *Service) MyContributions(ctx context.Context) ([]*domain.Contribution, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.contributions.ListByUser(ctx, userID)
}
