// Package testhelper starts a shared PostgreSQL container for integration
// tests and seeds common fixtures.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/listforge/listforge-backend/internal/domain"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB starts a shared PostgreSQL container (once for the entire test run),
// applies goose migrations, and returns a new pgxpool.Pool connected to it.
// The pool is closed via t.Cleanup; the container lives until the process exits.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	// Apply goose migrations using database/sql (goose requires *sql.DB).
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return "", fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return "", fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(migrationsPath()))
	if err != nil {
		return "", fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return "", fmt.Errorf("goose up: %w", err)
	}

	return dsn, nil
}

// migrationsPath resolves the absolute path to migrations/ relative to the
// current source file using runtime.Caller.
func migrationsPath() string {
	_, currentFile, _, _ := runtime.Caller(0)
	// currentFile is .../internal/adapter/postgres/testhelper/db.go
	return filepath.Join(filepath.Dir(currentFile), "..", "..", "..", "..", "migrations")
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

// SeedPerson inserts a person with a fresh user identity and returns it.
func SeedPerson(t *testing.T, pool *pgxpool.Pool) *domain.Person {
	t.Helper()
	ctx := context.Background()

	var p domain.Person
	err := pool.QueryRow(ctx, `
		INSERT INTO persons (user_id)
		VALUES ($1)
		RETURNING id, user_id, created_at, updated_at`,
		uuid.New(),
	).Scan(&p.ID, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed person: %v", err)
	}

	return &p
}

// SeedTopic inserts a topic node with a unique name and returns it.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, name string) *domain.TopicNode {
	t.Helper()
	ctx := context.Background()

	var n domain.TopicNode
	err := pool.QueryRow(ctx, `
		INSERT INTO topic_nodes (name)
		VALUES ($1)
		RETURNING id, name, created_at`,
		name+"-"+uuid.New().String()[:8],
	).Scan(&n.ID, &n.Name, &n.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed topic: %v", err)
	}

	return &n
}

// SeedEdge links two seeded topic nodes.
func SeedEdge(t *testing.T, pool *pgxpool.Pool, parentID, childID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `
		INSERT INTO topic_edges (parent_id, child_id)
		VALUES ($1, $2)`,
		parentID, childID,
	)
	if err != nil {
		t.Fatalf("testhelper: seed edge: %v", err)
	}
}

// SeedList inserts a list in the given status and returns it.
func SeedList(t *testing.T, pool *pgxpool.Pool, status domain.ListStatus) *domain.List {
	t.Helper()
	ctx := context.Background()

	var l domain.List
	err := pool.QueryRow(ctx, `
		INSERT INTO lists (title, status, creator_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, active, status, creator_id, version, created_at, updated_at`,
		"seed-list-"+uuid.New().String()[:8], status, uuid.New(),
	).Scan(&l.ID, &l.Title, &l.Active, &l.Status, &l.CreatorID, &l.Version, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed list: %v", err)
	}

	return &l
}

// SeedGroup inserts a subscriber group with a unique name and returns it.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) *domain.SubscriberGroup {
	t.Helper()
	ctx := context.Background()

	var g domain.SubscriberGroup
	err := pool.QueryRow(ctx, `
		INSERT INTO subscriber_groups (name)
		VALUES ($1)
		RETURNING id, name, created_at`,
		"seed-group-"+uuid.New().String()[:8],
	).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed group: %v", err)
	}

	return &g
}
