package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// Create creates a new DRAFT list owned by the calling user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	l := &domain.List{
		Title:       input.Title,
		Description: input.Description,
		TopicID:     input.TopicID,
		Active:      true,
		Status:      domain.ListStatusDraft,
		CreatorID:   &userID,
		Version:     1,
	}

	created, err := s.lists.Create(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}

	s.log.Info("list created", "list_id", created.ID, "creator_id", userID)

	return created, nil
}

// Delete removes a DRAFT list owned by the caller. Published material is
// never deleted, only deactivated.
func (s *Service) Delete(ctx context.Context, listID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	if !l.IsCreator(userID) {
		return domain.ErrForbidden
	}
	if l.Status != domain.ListStatusDraft {
		return domain.ErrInvalidTransition
	}

	if err := s.lists.Delete(ctx, listID); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}

	s.search.ListDeleted(listID)
	s.log.Info("list deleted", "list_id", listID)

	return nil
}
