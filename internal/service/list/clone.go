package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// Clone derives a new DRAFT from a PUBLISHED list. The clone is owned by
// the caller, carries the source's content and items, points back at the
// source through its parent reference and bumps the version. The published
// source is never touched.
func (s *Service) Clone(ctx context.Context, sourceID uuid.UUID) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if sourceID == uuid.Nil {
		return nil, domain.NewValidationError("list_id", "required")
	}

	source, err := s.lists.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if source.Status != domain.ListStatusPublished {
		return nil, domain.ErrInvalidTransition
	}
	if err := s.authorizeView(ctx, source); err != nil {
		return nil, err
	}

	items, err := s.items.ListByListID(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("load source items: %w", err)
	}

	var clone *domain.List
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		draft := &domain.List{
			Title:        source.Title,
			Description:  source.Description,
			TopicID:      source.TopicID,
			Active:       true,
			Status:       domain.ListStatusDraft,
			CreatorID:    &userID,
			ParentListID: &sourceID,
			Version:      source.Version + 1,
		}

		var createErr error
		clone, createErr = s.lists.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create clone: %w", createErr)
		}

		copies := make([]*domain.ListItem, 0, len(items))
		for _, item := range items {
			copies = append(copies, &domain.ListItem{
				ListID:      clone.ID,
				Title:       item.Title,
				Description: item.Description,
				DeepDive:    item.DeepDive,
				Active:      item.Active,
				Position:    item.Position,
			})
		}
		if err := s.items.CreateMany(txCtx, copies); err != nil {
			return fmt.Errorf("copy items: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("list cloned", "source_id", sourceID, "clone_id", clone.ID, "version", clone.Version)

	return clone, nil
}
