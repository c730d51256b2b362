package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/listforge/listforge-backend/internal/adapter/postgres"
	bountyrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/bounty"
	commentrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/comment"
	contributionrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/contribution"
	listrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/list"
	listitemrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/listitem"
	personrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/person"
	proposalrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/proposal"
	subscriptionrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/subscription"
	topicrepo "github.com/listforge/listforge-backend/internal/adapter/postgres/topic"
	"github.com/listforge/listforge-backend/internal/adapter/typesense"
	"github.com/listforge/listforge-backend/internal/auth"
	"github.com/listforge/listforge-backend/internal/config"
	"github.com/listforge/listforge-backend/internal/search"
	"github.com/listforge/listforge-backend/internal/service/access"
	"github.com/listforge/listforge-backend/internal/service/list"
	"github.com/listforge/listforge-backend/internal/service/person"
	"github.com/listforge/listforge-backend/internal/service/review"
	"github.com/listforge/listforge-backend/internal/service/topicgraph"
	"github.com/listforge/listforge-backend/internal/transport/middleware"
	"github.com/listforge/listforge-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and handlers, and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)

	lists := listrepo.New(pool)
	items := listitemrepo.New(pool)
	comments := commentrepo.New(pool)
	contributions := contributionrepo.New(pool)
	persons := personrepo.New(pool)
	proposals := proposalrepo.New(pool)
	bounties := bountyrepo.New(pool)
	subscriptions := subscriptionrepo.New(pool)
	topics := topicrepo.New(pool)

	// The search index is an optional collaborator. With search disabled the
	// notifier drops every projection, so no indexer is needed at all.
	var indexer search.Indexer
	if cfg.Search.Enabled {
		tsClient := typesense.New(logger, cfg.Search)
		if err := tsClient.EnsureCollections(ctx); err != nil {
			return fmt.Errorf("ensure search collections: %w", err)
		}
		indexer = tsClient
	}
	notifier := search.NewNotifier(logger, indexer, cfg.Search)

	topicSvc := topicgraph.NewService(logger, topics, notifier)
	accessSvc := access.NewService(logger, subscriptions, persons, topicSvc)
	listSvc := list.NewService(logger, lists, items, comments, contributions, tx, accessSvc, topicSvc, notifier, cfg.Curation)
	reviewSvc := review.NewService(logger, proposals, bounties, contributions, lists, items, topicSvc, accessSvc, tx, cfg.Curation)
	personSvc := person.NewService(logger, persons, contributions)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, BuildVersion()),
		Lists:  rest.NewListHandler(listSvc, logger),
		Topics: rest.NewTopicHandler(topicSvc, logger),
		Review: rest.NewReviewHandler(reviewSvc, logger),
		Person: rest.NewPersonHandler(personSvc, logger),
		Access: rest.NewAccessHandler(accessSvc, logger),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
