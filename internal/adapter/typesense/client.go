// Package typesense adapts the Typesense HTTP API to the search.Indexer
// contract.
package typesense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/typesense/typesense-go/v4/typesense"
	"github.com/typesense/typesense-go/v4/typesense/api"
	"github.com/typesense/typesense-go/v4/typesense/api/pointer"

	"github.com/listforge/listforge-backend/internal/config"
	"github.com/listforge/listforge-backend/internal/search"
)

// Client wraps a Typesense connection for document upserts and deletions.
type Client struct {
	log *slog.Logger
	ts  *typesense.Client
	cfg config.SearchConfig
}

// New creates a Typesense client from search configuration. No connection is
// made until the first call.
func New(logger *slog.Logger, cfg config.SearchConfig) *Client {
	ts := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(cfg.Timeout),
	)

	return &Client{
		log: logger.With("component", "typesense"),
		ts:  ts,
		cfg: cfg,
	}
}

// EnsureCollections creates the per-entity collections, tolerating ones that
// already exist.
func (c *Client) EnsureCollections(ctx context.Context) error {
	schemas := []*api.CollectionSchema{
		{
			Name: c.cfg.ListsCollection,
			Fields: []api.Field{
				{Name: "title", Type: "string"},
				{Name: "description", Type: "string", Optional: pointer.True()},
				{Name: "topic_id", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
				{Name: "status", Type: "string", Facet: pointer.True()},
				{Name: "active", Type: "bool", Facet: pointer.True()},
				{Name: "version", Type: "int32"},
				{Name: "created_at", Type: "int64"},
				{Name: "suggest", Type: "string", Infix: pointer.True()},
			},
			DefaultSortingField: pointer.String("created_at"),
		},
		{
			Name: c.cfg.TopicsCollection,
			Fields: []api.Field{
				{Name: "name", Type: "string"},
				{Name: "description", Type: "string", Optional: pointer.True()},
				{Name: "created_at", Type: "int64"},
				{Name: "suggest", Type: "string", Infix: pointer.True()},
			},
			DefaultSortingField: pointer.String("created_at"),
		},
	}

	for _, schema := range schemas {
		if _, err := c.ts.Collections().Create(ctx, schema); err != nil {
			if isConflict(err) {
				continue
			}
			return fmt.Errorf("create collection %q: %w", schema.Name, err)
		}
		c.log.Info("search collection created", "collection", schema.Name)
	}

	return nil
}

// Upsert creates or replaces a document in a collection.
func (c *Client) Upsert(ctx context.Context, collection string, doc search.Document) error {
	if _, err := c.ts.Collection(collection).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
		return fmt.Errorf("upsert document into %q: %w", collection, err)
	}
	return nil
}

// Delete removes a document by id. A missing document is not an error: the
// notifier may race a reindex.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	if _, err := c.ts.Collection(collection).Document(id).Delete(ctx); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("delete document %s from %q: %w", id, collection, err)
	}
	return nil
}

func isConflict(err error) bool {
	var httpErr *typesense.HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusConflict
}

func isNotFound(err error) bool {
	var httpErr *typesense.HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound
}
