// Package list implements the list repository using PostgreSQL.
// Lifecycle transitions are conditional UPDATEs guarded on the current
// status and lock holder, so that under concurrent competing claims the
// database arbitrates exactly one winner.
package list

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/listforge/listforge-backend/internal/adapter/postgres"
	"github.com/listforge/listforge-backend/internal/domain"
)

// Repo provides list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listColumns = `id, title, description, topic_id, active, status, creator_id,
	lock_user_id, parent_list_id, version, created_at, updated_at`

const createSQL = `
INSERT INTO lists (title, description, topic_id, active, status, creator_id, parent_list_id, version)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + listColumns

const getByIDSQL = `
SELECT ` + listColumns + `
FROM lists
WHERE id = $1`

const updateContentSQL = `
UPDATE lists
SET title = $2, description = $3, topic_id = $4, updated_at = now()
WHERE id = $1 AND status = 'DRAFT'`

const setStatusSQL = `
UPDATE lists
SET status = $3, updated_at = now()
WHERE id = $1 AND status = $2 AND lock_user_id IS NULL`

const claimSQL = `
UPDATE lists
SET lock_user_id = $2, updated_at = now()
WHERE id = $1 AND status = 'SUBMITTED' AND lock_user_id IS NULL`

const releaseSQL = `
UPDATE lists
SET lock_user_id = NULL, updated_at = now()
WHERE id = $1 AND status = 'SUBMITTED' AND lock_user_id = $2`

const publishSQL = `
UPDATE lists
SET status = 'PUBLISHED', lock_user_id = NULL, updated_at = now()
WHERE id = $1 AND status = 'SUBMITTED' AND lock_user_id = $2`

const returnToDraftSQL = `
UPDATE lists
SET status = 'DRAFT', updated_at = now()
WHERE id = $1 AND status = 'SUBMITTED' AND lock_user_id IS NULL AND creator_id = $2`

const setActiveSQL = `
UPDATE lists
SET active = $2, updated_at = now()
WHERE id = $1`

const deleteSQL = `DELETE FROM lists WHERE id = $1`

// Create inserts a new list row and returns the persisted domain.List.
func (r *Repo) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		l.Title,
		ptrStringToPgText(l.Description),
		l.TopicID,
		l.Active,
		l.Status,
		l.CreatorID,
		l.ParentListID,
		l.Version,
	)

	created, err := scanList(row)
	if err != nil {
		return nil, postgres.MapError(err, "list", uuid.Nil)
	}

	return created, nil
}

// GetByID returns a list by primary key.
// Returns domain.ErrNotFound if the list does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanList(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "list", id)
	}

	return l, nil
}

// UpdateContent rewrites the mutable content fields of a DRAFT list.
// The status guard is part of the statement: a list that left DRAFT between
// the service's read and this write is not touched (0 rows affected).
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, title string, description *string, topicID *uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateContentSQL, id, title, ptrStringToPgText(description), topicID)
	if err != nil {
		return 0, postgres.MapError(err, "list", id)
	}

	return tag.RowsAffected(), nil
}

// SetStatus moves a list from one status to another, guarded on the current
// status and an empty lock. Returns the number of rows affected: 0 means the
// guard failed and the caller decides which error that is.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, from, to domain.ListStatus) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setStatusSQL, id, from, to)
	if err != nil {
		return 0, postgres.MapError(err, "list", id)
	}

	return tag.RowsAffected(), nil
}

// Claim sets the review lock on a SUBMITTED, unlocked list. At most one of
// any number of concurrent claims can match the lock_user_id IS NULL guard.
func (r *Repo) Claim(ctx context.Context, id, editorID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, claimSQL, id, editorID)
	if err != nil {
		return 0, postgres.MapError(err, "list", id)
	}

	return tag.RowsAffected(), nil
}

// Release clears the review lock held by editorID.
func (r *Repo) Release(ctx context.Context, id, editorID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, releaseSQL, id, editorID)
	if err != nil {
		return 0, postgres.MapError(err, "list", id)
	}

	return tag.RowsAffected(), nil
}

// Publish moves a SUBMITTED list locked by editorID to PUBLISHED and clears
// the lock in the same statement.
func (r *Repo) Publish(ctx context.Context, id, editorID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, publishSQL, id, editorID)
	if err != nil {
		return 0, postgres.MapError(err, "list", id)
	}

	return tag.RowsAffected(), nil
}

// ReturnToDraft withdraws an unlocked SUBMITTED list back to DRAFT on behalf
// of its creator. A list currently claimed by an editor is not touched.
func (r *Repo) ReturnToDraft(ctx context.Context, id, creatorID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, returnToDraftSQL, id, creatorID)
	if err != nil {
		return 0, postgres.MapError(err, "list", id)
	}

	return tag.RowsAffected(), nil
}

// SetActive flips the active flag.
// Returns domain.ErrNotFound if the list does not exist.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setActiveSQL, id, active)
	if err != nil {
		return postgres.MapError(err, "list", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("list %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a list. Items and comments die with it (CASCADE); a list
// that has been cloned cannot be deleted (RESTRICT on parent_list_id).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "list", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("list %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// SearchFilter narrows the public search query. Zero values mean "no filter".
type SearchFilter struct {
	TitleSubstring string
	TopicIDs       []uuid.UUID
	Limit          int
}

// Search returns PUBLISHED, active lists matching the filter, newest first.
// The query is composed dynamically, so it is built with squirrel rather
// than a fixed statement.
func (r *Repo) Search(ctx context.Context, filter SearchFilter) ([]*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select("id", "title", "description", "topic_id", "active", "status",
		"creator_id", "lock_user_id", "parent_list_id", "version", "created_at", "updated_at").
		From("lists").
		Where(sq.Eq{"status": domain.ListStatusPublished, "active": true}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.TitleSubstring != "" {
		builder = builder.Where(sq.ILike{"title": "%" + filter.TitleSubstring + "%"})
	}
	if len(filter.TopicIDs) > 0 {
		builder = builder.Where(sq.Eq{"topic_id": filter.TopicIDs})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search lists: %w", err)
	}
	defer rows.Close()

	return scanLists(rows)
}

// ListAll returns every list row. Used by the reindex utility.
func (r *Repo) ListAll(ctx context.Context) ([]*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+listColumns+` FROM lists ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list all lists: %w", err)
	}
	defer rows.Close()

	return scanLists(rows)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanList(row pgx.Row) (*domain.List, error) {
	var (
		l    domain.List
		desc pgtype.Text
	)
	if err := row.Scan(&l.ID, &l.Title, &desc, &l.TopicID, &l.Active, &l.Status,
		&l.CreatorID, &l.LockUserID, &l.ParentListID, &l.Version,
		&l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	if desc.Valid {
		l.Description = &desc.String
	}
	return &l, nil
}

func scanLists(rows pgx.Rows) ([]*domain.List, error) {
	var result []*domain.List
	for rows.Next() {
		var (
			l    domain.List
			desc pgtype.Text
		)
		if err := rows.Scan(&l.ID, &l.Title, &desc, &l.TopicID, &l.Active, &l.Status,
			&l.CreatorID, &l.LockUserID, &l.ParentListID, &l.Version,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		if desc.Valid {
			l.Description = &desc.String
		}
		result = append(result, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.List{}
	}

	return result, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
