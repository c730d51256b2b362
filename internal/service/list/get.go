package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// Get returns a list the caller is allowed to see.
//
// Visibility by status:
//   - DRAFT: creator only.
//   - SUBMITTED: creator, or an editor under the list's topic.
//   - PUBLISHED: anyone while active; once deactivated, creator and topic
//     editors only.
func (s *Service) Get(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeView(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

// GetItems returns the items of a visible list, in display order.
func (s *Service) GetItems(ctx context.Context, listID uuid.UUID) ([]*domain.ListItem, error) {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeView(ctx, l); err != nil {
		return nil, err
	}

	return s.items.ListByListID(ctx, listID)
}

// authorizeView returns nil when the caller may see the list, otherwise
// domain.ErrForbidden. An anonymous caller may only see active published
// lists.
func (s *Service) authorizeView(ctx context.Context, l *domain.List) error {
	if l.Status == domain.ListStatusPublished && l.Active {
		return nil
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrForbidden
	}
	if l.IsCreator(userID) {
		return nil
	}
	if l.Status == domain.ListStatusDraft {
		// Drafts are private to the creator, editors included.
		return domain.ErrForbidden
	}

	return s.authorizeEditor(ctx, userID, l)
}

// authorizeEditor returns nil when the user holds editorial power over the
// list's topic. A list without a topic has no editor scope, so nobody but
// the creator passes.
func (s *Service) authorizeEditor(ctx context.Context, userID uuid.UUID, l *domain.List) error {
	if l.TopicID == nil {
		return domain.ErrForbidden
	}

	grant, err := s.access.Resolve(ctx, userID, *l.TopicID)
	if err != nil {
		return fmt.Errorf("resolve access: %w", err)
	}
	if !grant.CanEdit {
		return domain.ErrForbidden
	}

	return nil
}
