package search

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/config"
	"github.com/listforge/listforge-backend/internal/domain"
)

// Indexer is the transport that carries documents to the search index.
type Indexer interface {
	Upsert(ctx context.Context, collection string, doc Document) error
	Delete(ctx context.Context, collection, id string) error
}

// Notifier forwards entity changes to the search index. Every notification
// is fire-and-forget: the projection is computed synchronously, the network
// call happens on its own goroutine with its own deadline, and failures are
// logged, never returned. With Enabled=false nothing is shipped.
type Notifier struct {
	log     *slog.Logger
	indexer Indexer
	cfg     config.SearchConfig
}

// NewNotifier creates a search notifier.
func NewNotifier(logger *slog.Logger, indexer Indexer, cfg config.SearchConfig) *Notifier {
	return &Notifier{
		log:     logger.With("component", "search-notifier"),
		indexer: indexer,
		cfg:     cfg,
	}
}

// ListChanged reindexes a list after create, update or a status change.
func (n *Notifier) ListChanged(l *domain.List) {
	if !n.cfg.Enabled {
		return
	}
	doc := ProjectList(l)
	go n.run("upsert list", func(ctx context.Context) error {
		return n.indexer.Upsert(ctx, n.cfg.ListsCollection, doc)
	})
}

// ListDeleted removes a list's document from the index.
func (n *Notifier) ListDeleted(id uuid.UUID) {
	if !n.cfg.Enabled {
		return
	}
	go n.run("delete list", func(ctx context.Context) error {
		return n.indexer.Delete(ctx, n.cfg.ListsCollection, id.String())
	})
}

// TopicChanged reindexes a topic node.
func (n *Notifier) TopicChanged(node *domain.TopicNode) {
	if !n.cfg.Enabled {
		return
	}
	doc := ProjectTopic(node)
	go n.run("upsert topic", func(ctx context.Context) error {
		return n.indexer.Upsert(ctx, n.cfg.TopicsCollection, doc)
	})
}

// TopicDeleted removes a topic's document from the index.
func (n *Notifier) TopicDeleted(id uuid.UUID) {
	if !n.cfg.Enabled {
		return
	}
	go n.run("delete topic", func(ctx context.Context) error {
		return n.indexer.Delete(ctx, n.cfg.TopicsCollection, id.String())
	})
}

func (n *Notifier) run(op string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), n.cfg.Timeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		n.log.Error("search index update failed", "op", op, "error", err)
	}
}
