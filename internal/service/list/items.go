package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// AddItem appends an item to the end of a DRAFT list owned by the caller.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.ListItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.editableDraft(ctx, input.ListID); err != nil {
		return nil, err
	}

	count, err := s.items.CountByListID(ctx, input.ListID)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}
	if count >= s.cfg.MaxItemsPerList {
		return nil, domain.NewValidationError("items", "limit reached")
	}

	item := &domain.ListItem{
		ListID:      input.ListID,
		Title:       input.Title,
		Description: input.Description,
		DeepDive:    input.DeepDive,
		Active:      true,
		Position:    count,
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	return created, nil
}

// UpdateItem rewrites an item of a DRAFT list owned by the caller.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.ListItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.editableDraft(ctx, item.ListID); err != nil {
		return nil, err
	}

	item.Title = input.Title
	item.Description = input.Description
	item.DeepDive = input.DeepDive
	item.Active = input.Active

	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	return updated, nil
}

// DeleteItem removes an item from a DRAFT list owned by the caller.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if itemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if _, err := s.editableDraft(ctx, item.ListID); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	return nil
}

// ReorderItems applies a full new ordering to a DRAFT list's items. The
// given ids must be exactly the list's items; positions are assigned from
// the order of the slice.
func (s *Service) ReorderItems(ctx context.Context, input ReorderItemsInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.editableDraft(ctx, input.ListID); err != nil {
		return err
	}

	current, err := s.items.ListByListID(ctx, input.ListID)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	if len(current) != len(input.ItemIDs) {
		return domain.NewValidationError("item_ids", "must cover all items of the list")
	}
	known := make(map[uuid.UUID]struct{}, len(current))
	for _, item := range current {
		known[item.ID] = struct{}{}
	}
	for _, id := range input.ItemIDs {
		if _, ok := known[id]; !ok {
			return domain.NewValidationError("item_ids", "unknown item "+id.String())
		}
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for pos, id := range input.ItemIDs {
			affected, err := s.items.SetPosition(txCtx, id, input.ListID, pos)
			if err != nil {
				return fmt.Errorf("set position: %w", err)
			}
			if affected == 0 {
				return domain.ErrConflict
			}
		}
		return nil
	})
}

// editableDraft loads a list and verifies the caller may edit its content:
// the caller is the creator and the list is still a DRAFT.
func (s *Service) editableDraft(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if !l.IsCreator(userID) {
		return nil, domain.ErrForbidden
	}
	if l.Status != domain.ListStatusDraft {
		return nil, domain.ErrInvalidTransition
	}

	return l, nil
}
