// Command reindex rebuilds the search index from the database. It recreates
// the collections if needed and re-upserts every list and topic projection.
// Intended for recovery after index loss or schema changes, not for routine
// operation: live writes keep the index current on their own.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/listforge/listforge-backend/internal/adapter/postgres"
	listrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/list"
	topicrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/topic"
	"github.com/listforge/listforge-backend/internal/adapter/typesense"
	"github.com/listforge/listforge-backend/internal/app"
	"github.com/listforge/listforge-backend/internal/config"
	"github.com/listforge/listforge-backend/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Search.Enabled {
		logger.Error("search is disabled in config; nothing to reindex")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	client := typesense.New(logger, cfg.Search)
	if err := client.EnsureCollections(ctx); err != nil {
		logger.Error("ensure collections", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lists, err := listrepo.New(pool).ListAll(ctx)
	if err != nil {
		logger.Error("load lists", slog.String("error", err.Error()))
		os.Exit(1)
	}

	indexed := 0
	for _, l := range lists {
		if err := client.Upsert(ctx, cfg.Search.ListsCollection, search.ProjectList(l)); err != nil {
			logger.Error("upsert list",
				slog.String("list_id", l.ID.String()),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		indexed++
	}

	topics, err := topicrepo.New(pool).ListNodes(ctx)
	if err != nil {
		logger.Error("load topics", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, n := range topics {
		if err := client.Upsert(ctx, cfg.Search.TopicsCollection, search.ProjectTopic(n)); err != nil {
			logger.Error("upsert topic",
				slog.String("topic_id", n.ID.String()),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		indexed++
	}

	logger.Info("reindex completed",
		slog.Int("documents", indexed),
		slog.Int("lists", len(lists)),
		slog.Int("topics", len(topics)),
	)
}
