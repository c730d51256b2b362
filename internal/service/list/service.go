// Package list implements the editorial workflow around lists: drafting,
// submission, review locking, publication, cloning, items and comments.
//
// Lifecycle transitions are enforced twice: the service checks authorization
// against a fresh read, and the repository applies the transition as a
// conditional UPDATE. When the UPDATE matches no row the service re-reads
// the list to report the precise reason (gone, wrong status, or lost race).
package list

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	listrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/list"
	"github.com/listforge/listforge-backend/internal/config"
	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/internal/service/access"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type listRepo interface {
	Create(ctx context.Context, l *domain.List) (*domain.List, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error)
	UpdateContent(ctx context.Context, id uuid.UUID, title string, description *string, topicID *uuid.UUID) (int64, error)
	SetStatus(ctx context.Context, id uuid.UUID, from, to domain.ListStatus) (int64, error)
	Claim(ctx context.Context, id, editorID uuid.UUID) (int64, error)
	Release(ctx context.Context, id, editorID uuid.UUID) (int64, error)
	Publish(ctx context.Context, id, editorID uuid.UUID) (int64, error)
	ReturnToDraft(ctx context.Context, id, creatorID uuid.UUID) (int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, filter listrepo.SearchFilter) ([]*domain.List, error)
}

type itemRepo interface {
	Create(ctx context.Context, item *domain.ListItem) (*domain.ListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ListItem, error)
	ListByListID(ctx context.Context, listID uuid.UUID) ([]*domain.ListItem, error)
	Update(ctx context.Context, item *domain.ListItem) (*domain.ListItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetPosition(ctx context.Context, id, listID uuid.UUID, position int) (int64, error)
	CountByListID(ctx context.Context, listID uuid.UUID) (int, error)
	CreateMany(ctx context.Context, items []*domain.ListItem) error
}

type commentRepo interface {
	Add(ctx context.Context, c *domain.ListComment) (*domain.ListComment, error)
	ListByListID(ctx context.Context, listID uuid.UUID) ([]*domain.ListComment, error)
}

type contributionRepo interface {
	Log(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type accessResolver interface {
	Resolve(ctx context.Context, userID, topicID uuid.UUID) (access.Grant, error)
}

type topicResolver interface {
	FindNodeByName(ctx context.Context, name string) (*domain.TopicNode, error)
	DescendantIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
}

// searchNotifier receives change notifications for the search projection.
// Implementations must return immediately; indexing is never awaited.
type searchNotifier interface {
	ListChanged(l *domain.List)
	ListDeleted(id uuid.UUID)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the list editorial workflow.
type Service struct {
	log           *slog.Logger
	lists         listRepo
	items         itemRepo
	comments      commentRepo
	contributions contributionRepo
	tx            txManager
	access        accessResolver
	topics        topicResolver
	search        searchNotifier
	cfg           config.CurationConfig
	now           func() time.Time
}

// NewService creates a new list service.
func NewService(
	logger *slog.Logger,
	lists listRepo,
	items itemRepo,
	comments commentRepo,
	contributions contributionRepo,
	tx txManager,
	accessSvc accessResolver,
	topics topicResolver,
	search searchNotifier,
	cfg config.CurationConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "list"),
		lists:         lists,
		items:         items,
		comments:      comments,
		contributions: contributions,
		tx:            tx,
		access:        accessSvc,
		topics:        topics,
		search:        search,
		cfg:           cfg,
		now:           time.Now,
	}
}
