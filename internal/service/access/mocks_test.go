package access

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
)

var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	CreateFunc           func(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Subscription, error)
	ActiveByGroupIDsFunc func(ctx context.Context, groupIDs []uuid.UUID) ([]*domain.Subscription, error)
	SetActiveFunc        func(ctx context.Context, id uuid.UUID, active bool) error

	mu    sync.Mutex
	calls [][]uuid.UUID
}

func (m *subscriptionRepoMock) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	if m.CreateFunc == nil {
		panic("subscriptionRepoMock.CreateFunc: method is nil but subscriptionRepo.Create was just called")
	}
	return m.CreateFunc(ctx, sub)
}

func (m *subscriptionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	if m.GetByIDFunc == nil {
		panic("subscriptionRepoMock.GetByIDFunc: method is nil but subscriptionRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *subscriptionRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if m.SetActiveFunc == nil {
		panic("subscriptionRepoMock.SetActiveFunc: method is nil but subscriptionRepo.SetActive was just called")
	}
	return m.SetActiveFunc(ctx, id, active)
}

func (m *subscriptionRepoMock) ActiveByGroupIDs(ctx context.Context, groupIDs []uuid.UUID) ([]*domain.Subscription, error) {
	if m.ActiveByGroupIDsFunc == nil {
		panic("subscriptionRepoMock.ActiveByGroupIDsFunc: method is nil but subscriptionRepo.ActiveByGroupIDs was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, groupIDs)
	m.mu.Unlock()
	return m.ActiveByGroupIDsFunc(ctx, groupIDs)
}

func (m *subscriptionRepoMock) ActiveByGroupIDsCalls() [][]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ groupResolver = &groupResolverMock{}

type groupResolverMock struct {
	GroupIDsByUserIDFunc func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	mu    sync.Mutex
	calls []uuid.UUID
}

func (m *groupResolverMock) GroupIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if m.GroupIDsByUserIDFunc == nil {
		panic("groupResolverMock.GroupIDsByUserIDFunc: method is nil but groupResolver.GroupIDsByUserID was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, userID)
	m.mu.Unlock()
	return m.GroupIDsByUserIDFunc(ctx, userID)
}

var _ ancestryChecker = &ancestryCheckerMock{}

type ancestryCheckerMock struct {
	IsAncestorOfFunc func(ctx context.Context, ancestor, target uuid.UUID) (bool, error)

	mu    sync.Mutex
	calls [][2]uuid.UUID
}

func (m *ancestryCheckerMock) IsAncestorOf(ctx context.Context, ancestor, target uuid.UUID) (bool, error) {
	if m.IsAncestorOfFunc == nil {
		panic("ancestryCheckerMock.IsAncestorOfFunc: method is nil but ancestryChecker.IsAncestorOf was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, [2]uuid.UUID{ancestor, target})
	m.mu.Unlock()
	return m.IsAncestorOfFunc(ctx, ancestor, target)
}

func (m *ancestryCheckerMock) IsAncestorOfCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
