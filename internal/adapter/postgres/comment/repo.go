// Package comment implements the list-comment repository using PostgreSQL.
// Comments are append-only; there is no update or delete path.
package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/listforge/listforge-backend/internal/adapter/postgres"
	"github.com/listforge/listforge-backend/internal/domain"
)

// Repo provides list-comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const addSQL = `
INSERT INTO list_comments (list_id, author_id, message)
VALUES ($1, $2, $3)
RETURNING id, list_id, author_id, message, created_at, updated_at`

const listByListIDSQL = `
SELECT id, list_id, author_id, message, created_at, updated_at
FROM list_comments
WHERE list_id = $1
ORDER BY created_at`

// Add appends a comment to a list's review trail.
// Returns domain.ErrNotFound when the list does not exist.
func (r *Repo) Add(ctx context.Context, c *domain.ListComment) (*domain.ListComment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.ListComment
	err := q.QueryRow(ctx, addSQL, c.ListID, c.AuthorID, c.Message).Scan(
		&created.ID, &created.ListID, &created.AuthorID, &created.Message,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "list_comment", uuid.Nil)
	}

	return &created, nil
}

// ListByListID returns a list's comments oldest first.
func (r *Repo) ListByListID(ctx context.Context, listID uuid.UUID) ([]*domain.ListComment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByListIDSQL, listID)
	if err != nil {
		return nil, fmt.Errorf("list comments of %s: %w", listID, err)
	}
	defer rows.Close()

	result := []*domain.ListComment{}
	for rows.Next() {
		var c domain.ListComment
		if err := rows.Scan(&c.ID, &c.ListID, &c.AuthorID, &c.Message,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
