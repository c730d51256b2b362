package topicgraph

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/adapter/postgres/topic"
	"github.com/listforge/listforge-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CreateNodeFunc     func(ctx context.Context, node *domain.TopicNode) (*domain.TopicNode, error)
	GetNodeFunc        func(ctx context.Context, id uuid.UUID) (*domain.TopicNode, error)
	ListNodesFunc      func(ctx context.Context) ([]*domain.TopicNode, error)
	FindNodeByNameFunc func(ctx context.Context, name string) (*domain.TopicNode, error)
	DeleteNodeFunc     func(ctx context.Context, id uuid.UUID) error
	CreateEdgeFunc     func(ctx context.Context, edge *domain.TopicEdge) (*domain.TopicEdge, error)
	DeleteEdgeFunc     func(ctx context.Context, parentID, childID uuid.UUID) error
	HasParentsFunc     func(ctx context.Context, id uuid.UUID) (bool, error)
	HasChildrenFunc    func(ctx context.Context, id uuid.UUID) (bool, error)
	ChildIDsOfManyFunc func(ctx context.Context, parentIDs []uuid.UUID) ([]domain.TopicEdge, error)
	ChildrenOfManyFunc func(ctx context.Context, parentIDs []uuid.UUID) ([]topic.ChildRow, error)

	mu    sync.Mutex
	calls struct {
		CreateNode     []*domain.TopicNode
		GetNode        []uuid.UUID
		ListNodes      int
		FindNodeByName []string
		DeleteNode     []uuid.UUID
		CreateEdge     []*domain.TopicEdge
		DeleteEdge     [][2]uuid.UUID
		HasParents     []uuid.UUID
		HasChildren    []uuid.UUID
		ChildIDsOfMany [][]uuid.UUID
		ChildrenOfMany [][]uuid.UUID
	}
}

func (m *topicRepoMock) CreateNode(ctx context.Context, node *domain.TopicNode) (*domain.TopicNode, error) {
	if m.CreateNodeFunc == nil {
		panic("topicRepoMock.CreateNodeFunc: method is nil but topicRepo.CreateNode was just called")
	}
	m.mu.Lock()
	m.calls.CreateNode = append(m.calls.CreateNode, node)
	m.mu.Unlock()
	return m.CreateNodeFunc(ctx, node)
}

func (m *topicRepoMock) CreateNodeCalls() []*domain.TopicNode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.CreateNode
}

func (m *topicRepoMock) GetNode(ctx context.Context, id uuid.UUID) (*domain.TopicNode, error) {
	if m.GetNodeFunc == nil {
		panic("topicRepoMock.GetNodeFunc: method is nil but topicRepo.GetNode was just called")
	}
	m.mu.Lock()
	m.calls.GetNode = append(m.calls.GetNode, id)
	m.mu.Unlock()
	return m.GetNodeFunc(ctx, id)
}

func (m *topicRepoMock) GetNodeCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetNode
}

func (m *topicRepoMock) ListNodes(ctx context.Context) ([]*domain.TopicNode, error) {
	if m.ListNodesFunc == nil {
		panic("topicRepoMock.ListNodesFunc: method is nil but topicRepo.ListNodes was just called")
	}
	m.mu.Lock()
	m.calls.ListNodes++
	m.mu.Unlock()
	return m.ListNodesFunc(ctx)
}

func (m *topicRepoMock) FindNodeByName(ctx context.Context, name string) (*domain.TopicNode, error) {
	if m.FindNodeByNameFunc == nil {
		panic("topicRepoMock.FindNodeByNameFunc: method is nil but topicRepo.FindNodeByName was just called")
	}
	m.mu.Lock()
	m.calls.FindNodeByName = append(m.calls.FindNodeByName, name)
	m.mu.Unlock()
	return m.FindNodeByNameFunc(ctx, name)
}

func (m *topicRepoMock) DeleteNode(ctx context.Context, id uuid.UUID) error {
	if m.DeleteNodeFunc == nil {
		panic("topicRepoMock.DeleteNodeFunc: method is nil but topicRepo.DeleteNode was just called")
	}
	m.mu.Lock()
	m.calls.DeleteNode = append(m.calls.DeleteNode, id)
	m.mu.Unlock()
	return m.DeleteNodeFunc(ctx, id)
}

func (m *topicRepoMock) DeleteNodeCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.DeleteNode
}

func (m *topicRepoMock) CreateEdge(ctx context.Context, edge *domain.TopicEdge) (*domain.TopicEdge, error) {
	if m.CreateEdgeFunc == nil {
		panic("topicRepoMock.CreateEdgeFunc: method is nil but topicRepo.CreateEdge was just called")
	}
	m.mu.Lock()
	m.calls.CreateEdge = append(m.calls.CreateEdge, edge)
	m.mu.Unlock()
	return m.CreateEdgeFunc(ctx, edge)
}

func (m *topicRepoMock) CreateEdgeCalls() []*domain.TopicEdge {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.CreateEdge
}

func (m *topicRepoMock) DeleteEdge(ctx context.Context, parentID, childID uuid.UUID) error {
	if m.DeleteEdgeFunc == nil {
		panic("topicRepoMock.DeleteEdgeFunc: method is nil but topicRepo.DeleteEdge was just called")
	}
	m.mu.Lock()
	m.calls.DeleteEdge = append(m.calls.DeleteEdge, [2]uuid.UUID{parentID, childID})
	m.mu.Unlock()
	return m.DeleteEdgeFunc(ctx, parentID, childID)
}

func (m *topicRepoMock) HasParents(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.HasParentsFunc == nil {
		panic("topicRepoMock.HasParentsFunc: method is nil but topicRepo.HasParents was just called")
	}
	m.mu.Lock()
	m.calls.HasParents = append(m.calls.HasParents, id)
	m.mu.Unlock()
	return m.HasParentsFunc(ctx, id)
}

func (m *topicRepoMock) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.HasChildrenFunc == nil {
		panic("topicRepoMock.HasChildrenFunc: method is nil but topicRepo.HasChildren was just called")
	}
	m.mu.Lock()
	m.calls.HasChildren = append(m.calls.HasChildren, id)
	m.mu.Unlock()
	return m.HasChildrenFunc(ctx, id)
}

func (m *topicRepoMock) ChildIDsOfMany(ctx context.Context, parentIDs []uuid.UUID) ([]domain.TopicEdge, error) {
	if m.ChildIDsOfManyFunc == nil {
		panic("topicRepoMock.ChildIDsOfManyFunc: method is nil but topicRepo.ChildIDsOfMany was just called")
	}
	m.mu.Lock()
	m.calls.ChildIDsOfMany = append(m.calls.ChildIDsOfMany, parentIDs)
	m.mu.Unlock()
	return m.ChildIDsOfManyFunc(ctx, parentIDs)
}

func (m *topicRepoMock) ChildIDsOfManyCalls() [][]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ChildIDsOfMany
}

func (m *topicRepoMock) ChildrenOfMany(ctx context.Context, parentIDs []uuid.UUID) ([]topic.ChildRow, error) {
	if m.ChildrenOfManyFunc == nil {
		panic("topicRepoMock.ChildrenOfManyFunc: method is nil but topicRepo.ChildrenOfMany was just called")
	}
	m.mu.Lock()
	m.calls.ChildrenOfMany = append(m.calls.ChildrenOfMany, parentIDs)
	m.mu.Unlock()
	return m.ChildrenOfManyFunc(ctx, parentIDs)
}

func (m *topicRepoMock) ChildrenOfManyCalls() [][]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ChildrenOfMany
}
