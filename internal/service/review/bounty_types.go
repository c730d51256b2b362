package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// CreateBountyType registers a bounty category (e.g. list creation, fact
// checking) that issued bounties may reference.
func (s *Service) CreateBountyType(ctx context.Context, name string, description *string) (*domain.BountyType, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	bt, err := s.bounties.CreateType(ctx, name, description)
	if err != nil {
		return nil, fmt.Errorf("create bounty type: %w", err)
	}

	s.log.Info("bounty type created", "type_id", bt.ID, "name", bt.Name)

	return bt, nil
}

// GetBountyType returns a bounty category by id.
func (s *Service) GetBountyType(ctx context.Context, id uuid.UUID) (*domain.BountyType, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("type_id", "required")
	}
	return s.bounties.GetType(ctx, id)
}

// checkBountyType verifies that a referenced bounty type exists. A nil id is
// fine; bounty types are optional.
func (s *Service) checkBountyType(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.bounties.GetType(ctx, *id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("type_id", "unknown bounty type")
		}
		return fmt.Errorf("check bounty type: %w", err)
	}
	return nil
}
