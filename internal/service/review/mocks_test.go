package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/internal/service/access"
)

var _ proposalRepo = &proposalRepoMock{}

type proposalRepoMock struct {
	CreateFunc    func(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	ListOpenFunc  func(ctx context.Context) ([]*domain.Proposal, error)
	SetBountyFunc func(ctx context.Context, id, bountyID uuid.UUID) (int64, error)

	mu    sync.Mutex
	calls struct {
		Create    []*domain.Proposal
		SetBounty [][2]uuid.UUID
	}
}

func (m *proposalRepoMock) Create(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error) {
	if m.CreateFunc == nil {
		panic("proposalRepoMock.CreateFunc: method is nil but proposalRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, p)
	m.mu.Unlock()
	return m.CreateFunc(ctx, p)
}

func (m *proposalRepoMock) CreateCalls() []*domain.Proposal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *proposalRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	if m.GetByIDFunc == nil {
		panic("proposalRepoMock.GetByIDFunc: method is nil but proposalRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *proposalRepoMock) ListOpen(ctx context.Context) ([]*domain.Proposal, error) {
	if m.ListOpenFunc == nil {
		panic("proposalRepoMock.ListOpenFunc: method is nil but proposalRepo.ListOpen was just called")
	}
	return m.ListOpenFunc(ctx)
}

func (m *proposalRepoMock) SetBounty(ctx context.Context, id, bountyID uuid.UUID) (int64, error) {
	if m.SetBountyFunc == nil {
		panic("proposalRepoMock.SetBountyFunc: method is nil but proposalRepo.SetBounty was just called")
	}
	m.mu.Lock()
	m.calls.SetBounty = append(m.calls.SetBounty, [2]uuid.UUID{id, bountyID})
	m.mu.Unlock()
	return m.SetBountyFunc(ctx, id, bountyID)
}

func (m *proposalRepoMock) SetBountyCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetBounty
}

var _ bountyRepo = &bountyRepoMock{}

type bountyRepoMock struct {
	CreateFunc           func(ctx context.Context, b *domain.Bounty) (*domain.Bounty, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Bounty, error)
	ListOpenByTargetFunc func(ctx context.Context, target domain.EntityRef) ([]*domain.Bounty, error)
	ClaimFunc            func(ctx context.Context, id, claimerID uuid.UUID) (int64, error)
	DeactivateFunc       func(ctx context.Context, id uuid.UUID) (int64, error)
	CreateTypeFunc       func(ctx context.Context, name string, description *string) (*domain.BountyType, error)
	GetTypeFunc          func(ctx context.Context, id uuid.UUID) (*domain.BountyType, error)

	mu    sync.Mutex
	calls struct {
		Create     []*domain.Bounty
		Claim      [][2]uuid.UUID
		Deactivate []uuid.UUID
	}
}

func (m *bountyRepoMock) Create(ctx context.Context, b *domain.Bounty) (*domain.Bounty, error) {
	if m.CreateFunc == nil {
		panic("bountyRepoMock.CreateFunc: method is nil but bountyRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, b)
	m.mu.Unlock()
	return m.CreateFunc(ctx, b)
}

func (m *bountyRepoMock) CreateCalls() []*domain.Bounty {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *bountyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bounty, error) {
	if m.GetByIDFunc == nil {
		panic("bountyRepoMock.GetByIDFunc: method is nil but bountyRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *bountyRepoMock) ListOpenByTarget(ctx context.Context, target domain.EntityRef) ([]*domain.Bounty, error) {
	if m.ListOpenByTargetFunc == nil {
		panic("bountyRepoMock.ListOpenByTargetFunc: method is nil but bountyRepo.ListOpenByTarget was just called")
	}
	return m.ListOpenByTargetFunc(ctx, target)
}

func (m *bountyRepoMock) Claim(ctx context.Context, id, claimerID uuid.UUID) (int64, error) {
	if m.ClaimFunc == nil {
		panic("bountyRepoMock.ClaimFunc: method is nil but bountyRepo.Claim was just called")
	}
	m.mu.Lock()
	m.calls.Claim = append(m.calls.Claim, [2]uuid.UUID{id, claimerID})
	m.mu.Unlock()
	return m.ClaimFunc(ctx, id, claimerID)
}

func (m *bountyRepoMock) ClaimCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Claim
}

func (m *bountyRepoMock) Deactivate(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeactivateFunc == nil {
		panic("bountyRepoMock.DeactivateFunc: method is nil but bountyRepo.Deactivate was just called")
	}
	m.mu.Lock()
	m.calls.Deactivate = append(m.calls.Deactivate, id)
	m.mu.Unlock()
	return m.DeactivateFunc(ctx, id)
}

func (m *bountyRepoMock) CreateType(ctx context.Context, name string, description *string) (*domain.BountyType, error) {
	if m.CreateTypeFunc == nil {
		panic("bountyRepoMock.CreateTypeFunc: method is nil but bountyRepo.CreateType was just called")
	}
	return m.CreateTypeFunc(ctx, name, description)
}

func (m *bountyRepoMock) GetType(ctx context.Context, id uuid.UUID) (*domain.BountyType, error) {
	if m.GetTypeFunc == nil {
		panic("bountyRepoMock.GetTypeFunc: method is nil but bountyRepo.GetType was just called")
	}
	return m.GetTypeFunc(ctx, id)
}

var _ contributionRepo = &contributionRepoMock{}

type contributionRepoMock struct {
	LogFunc func(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error)

	mu    sync.Mutex
	calls []*domain.Contribution
}

func (m *contributionRepoMock) Log(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error) {
	if m.LogFunc == nil {
		panic("contributionRepoMock.LogFunc: method is nil but contributionRepo.Log was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, c)
	m.mu.Unlock()
	return m.LogFunc(ctx, c)
}

func (m *contributionRepoMock) LogCalls() []*domain.Contribution {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ listGetter = &listGetterMock{}

type listGetterMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.List, error)
}

func (m *listGetterMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	if m.GetByIDFunc == nil {
		panic("listGetterMock.GetByIDFunc: method is nil but listGetter.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

var _ itemGetter = &itemGetterMock{}

type itemGetterMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.ListItem, error)
}

func (m *itemGetterMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ListItem, error) {
	if m.GetByIDFunc == nil {
		panic("itemGetterMock.GetByIDFunc: method is nil but itemGetter.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

var _ topicGetter = &topicGetterMock{}

type topicGetterMock struct {
	GetNodeFunc func(ctx context.Context, id uuid.UUID) (*domain.TopicNode, error)
}

func (m *topicGetterMock) GetNode(ctx context.Context, id uuid.UUID) (*domain.TopicNode, error) {
	if m.GetNodeFunc == nil {
		panic("topicGetterMock.GetNodeFunc: method is nil but topicGetter.GetNode was just called")
	}
	return m.GetNodeFunc(ctx, id)
}

var _ accessResolver = &accessResolverMock{}

type accessResolverMock struct {
	ResolveFunc func(ctx context.Context, userID, topicID uuid.UUID) (access.Grant, error)
}

func (m *accessResolverMock) Resolve(ctx context.Context, userID, topicID uuid.UUID) (access.Grant, error) {
	if m.ResolveFunc == nil {
		panic("accessResolverMock.ResolveFunc: method is nil but accessResolver.Resolve was just called")
	}
	return m.ResolveFunc(ctx, userID, topicID)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return m.RunInTxFunc(ctx, fn)
}
