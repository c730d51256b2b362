package list

import (
	"context"
	"sync"

	"github.com/google/uuid"

	listrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/list"
	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/internal/service/access"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	CreateFunc        func(ctx context.Context, l *domain.List) (*domain.List, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.List, error)
	UpdateContentFunc func(ctx context.Context, id uuid.UUID, title string, description *string, topicID *uuid.UUID) (int64, error)
	SetStatusFunc     func(ctx context.Context, id uuid.UUID, from, to domain.ListStatus) (int64, error)
	ClaimFunc         func(ctx context.Context, id, editorID uuid.UUID) (int64, error)
	ReleaseFunc       func(ctx context.Context, id, editorID uuid.UUID) (int64, error)
	PublishFunc       func(ctx context.Context, id, editorID uuid.UUID) (int64, error)
	ReturnToDraftFunc func(ctx context.Context, id, creatorID uuid.UUID) (int64, error)
	SetActiveFunc     func(ctx context.Context, id uuid.UUID, active bool) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	SearchFunc        func(ctx context.Context, filter listrepo.SearchFilter) ([]*domain.List, error)

	mu    sync.Mutex
	calls struct {
		Create        []*domain.List
		GetByID       []uuid.UUID
		SetStatus     []uuid.UUID
		Claim         [][2]uuid.UUID
		Release       [][2]uuid.UUID
		Publish       [][2]uuid.UUID
		ReturnToDraft [][2]uuid.UUID
		Delete        []uuid.UUID
		Search        []listrepo.SearchFilter
	}
}

func (m *listRepoMock) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	if m.CreateFunc == nil {
		panic("listRepoMock.CreateFunc: method is nil but listRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, l)
	m.mu.Unlock()
	return m.CreateFunc(ctx, l)
}

func (m *listRepoMock) CreateCalls() []*domain.List {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *listRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	if m.GetByIDFunc == nil {
		panic("listRepoMock.GetByIDFunc: method is nil but listRepo.GetByID was just called")
	}
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *listRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *listRepoMock) UpdateContent(ctx context.Context, id uuid.UUID, title string, description *string, topicID *uuid.UUID) (int64, error) {
	if m.UpdateContentFunc == nil {
		panic("listRepoMock.UpdateContentFunc: method is nil but listRepo.UpdateContent was just called")
	}
	return m.UpdateContentFunc(ctx, id, title, description, topicID)
}

func (m *listRepoMock) SetStatus(ctx context.Context, id uuid.UUID, from, to domain.ListStatus) (int64, error) {
	if m.SetStatusFunc == nil {
		panic("listRepoMock.SetStatusFunc: method is nil but listRepo.SetStatus was just called")
	}
	m.mu.Lock()
	m.calls.SetStatus = append(m.calls.SetStatus, id)
	m.mu.Unlock()
	return m.SetStatusFunc(ctx, id, from, to)
}

func (m *listRepoMock) SetStatusCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetStatus
}

func (m *listRepoMock) Claim(ctx context.Context, id, editorID uuid.UUID) (int64, error) {
	if m.ClaimFunc == nil {
		panic("listRepoMock.ClaimFunc: method is nil but listRepo.Claim was just called")
	}
	m.mu.Lock()
	m.calls.Claim = append(m.calls.Claim, [2]uuid.UUID{id, editorID})
	m.mu.Unlock()
	return m.ClaimFunc(ctx, id, editorID)
}

func (m *listRepoMock) ClaimCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Claim
}

func (m *listRepoMock) Release(ctx context.Context, id, editorID uuid.UUID) (int64, error) {
	if m.ReleaseFunc == nil {
		panic("listRepoMock.ReleaseFunc: method is nil but listRepo.Release was just called")
	}
	m.mu.Lock()
	m.calls.Release = append(m.calls.Release, [2]uuid.UUID{id, editorID})
	m.mu.Unlock()
	return m.ReleaseFunc(ctx, id, editorID)
}

func (m *listRepoMock) Publish(ctx context.Context, id, editorID uuid.UUID) (int64, error) {
	if m.PublishFunc == nil {
		panic("listRepoMock.PublishFunc: method is nil but listRepo.Publish was just called")
	}
	m.mu.Lock()
	m.calls.Publish = append(m.calls.Publish, [2]uuid.UUID{id, editorID})
	m.mu.Unlock()
	return m.PublishFunc(ctx, id, editorID)
}

func (m *listRepoMock) PublishCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Publish
}

func (m *listRepoMock) ReturnToDraft(ctx context.Context, id, creatorID uuid.UUID) (int64, error) {
	if m.ReturnToDraftFunc == nil {
		panic("listRepoMock.ReturnToDraftFunc: method is nil but listRepo.ReturnToDraft was just called")
	}
	m.mu.Lock()
	m.calls.ReturnToDraft = append(m.calls.ReturnToDraft, [2]uuid.UUID{id, creatorID})
	m.mu.Unlock()
	return m.ReturnToDraftFunc(ctx, id, creatorID)
}

func (m *listRepoMock) ReturnToDraftCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ReturnToDraft
}

func (m *listRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if m.SetActiveFunc == nil {
		panic("listRepoMock.SetActiveFunc: method is nil but listRepo.SetActive was just called")
	}
	return m.SetActiveFunc(ctx, id, active)
}

func (m *listRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("listRepoMock.DeleteFunc: method is nil but listRepo.Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *listRepoMock) Search(ctx context.Context, filter listrepo.SearchFilter) ([]*domain.List, error) {
	if m.SearchFunc == nil {
		panic("listRepoMock.SearchFunc: method is nil but listRepo.Search was just called")
	}
	m.mu.Lock()
	m.calls.Search = append(m.calls.Search, filter)
	m.mu.Unlock()
	return m.SearchFunc(ctx, filter)
}

func (m *listRepoMock) SearchCalls() []listrepo.SearchFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Search
}

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc        func(ctx context.Context, item *domain.ListItem) (*domain.ListItem, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.ListItem, error)
	ListByListIDFunc  func(ctx context.Context, listID uuid.UUID) ([]*domain.ListItem, error)
	UpdateFunc        func(ctx context.Context, item *domain.ListItem) (*domain.ListItem, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	SetPositionFunc   func(ctx context.Context, id, listID uuid.UUID, position int) (int64, error)
	CountByListIDFunc func(ctx context.Context, listID uuid.UUID) (int, error)
	CreateManyFunc    func(ctx context.Context, items []*domain.ListItem) error

	mu    sync.Mutex
	calls struct {
		Create      []*domain.ListItem
		SetPosition []struct {
			ID       uuid.UUID
			Position int
		}
		CreateMany [][]*domain.ListItem
	}
}

func (m *itemRepoMock) Create(ctx context.Context, item *domain.ListItem) (*domain.ListItem, error) {
	if m.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, item)
	m.mu.Unlock()
	return m.CreateFunc(ctx, item)
}

func (m *itemRepoMock) CreateCalls() []*domain.ListItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ListItem, error) {
	if m.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *itemRepoMock) ListByListID(ctx context.Context, listID uuid.UUID) ([]*domain.ListItem, error) {
	if m.ListByListIDFunc == nil {
		panic("itemRepoMock.ListByListIDFunc: method is nil but itemRepo.ListByListID was just called")
	}
	return m.ListByListIDFunc(ctx, listID)
}

func (m *itemRepoMock) Update(ctx context.Context, item *domain.ListItem) (*domain.ListItem, error) {
	if m.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, item)
}

func (m *itemRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *itemRepoMock) SetPosition(ctx context.Context, id, listID uuid.UUID, position int) (int64, error) {
	if m.SetPositionFunc == nil {
		panic("itemRepoMock.SetPositionFunc: method is nil but itemRepo.SetPosition was just called")
	}
	m.mu.Lock()
	m.calls.SetPosition = append(m.calls.SetPosition, struct {
		ID       uuid.UUID
		Position int
	}{ID: id, Position: position})
	m.mu.Unlock()
	return m.SetPositionFunc(ctx, id, listID, position)
}

func (m *itemRepoMock) SetPositionCalls() []struct {
	ID       uuid.UUID
	Position int
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetPosition
}

func (m *itemRepoMock) CountByListID(ctx context.Context, listID uuid.UUID) (int, error) {
	if m.CountByListIDFunc == nil {
		panic("itemRepoMock.CountByListIDFunc: method is nil but itemRepo.CountByListID was just called")
	}
	return m.CountByListIDFunc(ctx, listID)
}

func (m *itemRepoMock) CreateMany(ctx context.Context, items []*domain.ListItem) error {
	if m.CreateManyFunc == nil {
		panic("itemRepoMock.CreateManyFunc: method is nil but itemRepo.CreateMany was just called")
	}
	m.mu.Lock()
	m.calls.CreateMany = append(m.calls.CreateMany, items)
	m.mu.Unlock()
	return m.CreateManyFunc(ctx, items)
}

func (m *itemRepoMock) CreateManyCalls() [][]*domain.ListItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.CreateMany
}

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	AddFunc          func(ctx context.Context, c *domain.ListComment) (*domain.ListComment, error)
	ListByListIDFunc func(ctx context.Context, listID uuid.UUID) ([]*domain.ListComment, error)

	mu    sync.Mutex
	calls struct {
		Add []*domain.ListComment
	}
}

func (m *commentRepoMock) Add(ctx context.Context, c *domain.ListComment) (*domain.ListComment, error) {
	if m.AddFunc == nil {
		panic("commentRepoMock.AddFunc: method is nil but commentRepo.Add was just called")
	}
	m.mu.Lock()
	m.calls.Add = append(m.calls.Add, c)
	m.mu.Unlock()
	return m.AddFunc(ctx, c)
}

func (m *commentRepoMock) AddCalls() []*domain.ListComment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Add
}

func (m *commentRepoMock) ListByListID(ctx context.Context, listID uuid.UUID) ([]*domain.ListComment, error) {
	if m.ListByListIDFunc == nil {
		panic("commentRepoMock.ListByListIDFunc: method is nil but commentRepo.ListByListID was just called")
	}
	return m.ListByListIDFunc(ctx, listID)
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

var _ topicResolver = &topicResolverMock{}

type topicResolverMock struct {
	FindNodeByNameFunc func(ctx context.Context, name string) (*domain.TopicNode, error)
	DescendantIDsFunc  func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
}

func (m *topicResolverMock) FindNodeByName(ctx context.Context, name string) (*domain.TopicNode, error) {
	if m.FindNodeByNameFunc == nil {
		panic("topicResolverMock.FindNodeByNameFunc: method is nil but topicResolver.FindNodeByName was just called")
	}
	return m.FindNodeByNameFunc(ctx, name)
}

func (m *topicResolverMock) DescendantIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	if m.DescendantIDsFunc == nil {
		panic("topicResolverMock.DescendantIDsFunc: method is nil but topicResolver.DescendantIDs was just called")
	}
	return m.DescendantIDsFunc(ctx, id)
}

var _ searchNotifier = &searchNotifierMock{}

type searchNotifierMock struct {
	mu      sync.Mutex
	changed []*domain.List
	deleted []uuid.UUID
}

func (m *searchNotifierMock) ListChanged(l *domain.List) {
	m.mu.Lock()
	m.changed = append(m.changed, l)
	m.mu.Unlock()
}

func (m *searchNotifierMock) ListDeleted(id uuid.UUID) {
	m.mu.Lock()
	m.deleted = append(m.deleted, id)
	m.mu.Unlock()
}

func (m *searchNotifierMock) ChangedCalls() []*domain.List {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.changed
}

func (m *searchNotifierMock) DeletedCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleted
}
