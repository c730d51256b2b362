// Package listitem implements the list-item repository using PostgreSQL.
package listitem

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/listforge/listforge-backend/internal/adapter/postgres"
	"github.com/listforge/listforge-backend/internal/domain"
)

// Repo provides list-item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new list-item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = `id, list_id, title, description, deep_dive, active, position, created_at, updated_at`

const createSQL = `
INSERT INTO list_items (list_id, title, description, deep_dive, active, position)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + itemColumns

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM list_items
WHERE id = $1`

const listByListIDSQL = `
SELECT ` + itemColumns + `
FROM list_items
WHERE list_id = $1
ORDER BY position, created_at`

const updateSQL = `
UPDATE list_items
SET title = $2, description = $3, deep_dive = $4, active = $5, updated_at = now()
WHERE id = $1
RETURNING ` + itemColumns

const deleteSQL = `DELETE FROM list_items WHERE id = $1`

const setPositionSQL = `
UPDATE list_items
SET position = $3, updated_at = now()
WHERE id = $1 AND list_id = $2`

const countByListIDSQL = `SELECT count(*) FROM list_items WHERE list_id = $1`

// Create inserts a new item and returns the persisted row.
// Returns domain.ErrNotFound when the parent list does not exist.
func (r *Repo) Create(ctx context.Context, item *domain.ListItem) (*domain.ListItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		item.ListID,
		item.Title,
		ptrStringToPgText(item.Description),
		ptrStringToPgText(item.DeepDive),
		item.Active,
		item.Position,
	)

	created, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "list_item", uuid.Nil)
	}

	return created, nil
}

// GetByID returns an item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ListItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "list_item", id)
	}

	return item, nil
}

// ListByListID returns the items of a list in display order.
func (r *Repo) ListByListID(ctx context.Context, listID uuid.UUID) ([]*domain.ListItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByListIDSQL, listID)
	if err != nil {
		return nil, fmt.Errorf("list items of %s: %w", listID, err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// Update rewrites the mutable fields of an item.
func (r *Repo) Update(ctx context.Context, item *domain.ListItem) (*domain.ListItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL,
		item.ID,
		item.Title,
		ptrStringToPgText(item.Description),
		ptrStringToPgText(item.DeepDive),
		item.Active,
	)

	updated, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "list_item", item.ID)
	}

	return updated, nil
}

// Delete removes an item.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "list_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("list_item %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// SetPosition moves one item to a new position within its list. The list_id
// guard keeps the statement from touching an item of another list.
func (r *Repo) SetPosition(ctx context.Context, id, listID uuid.UUID, position int) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setPositionSQL, id, listID, position)
	if err != nil {
		return 0, postgres.MapError(err, "list_item", id)
	}

	return tag.RowsAffected(), nil
}

// CountByListID returns the number of items in a list.
func (r *Repo) CountByListID(ctx context.Context, listID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByListIDSQL, listID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items of %s: %w", listID, err)
	}

	return count, nil
}

// CreateMany bulk-inserts items, preserving each item's position. Used when
// cloning a published list into a new draft.
func (r *Repo) CreateMany(ctx context.Context, items []*domain.ListItem) error {
	if len(items) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(createSQL,
			item.ListID,
			item.Title,
			ptrStringToPgText(item.Description),
			ptrStringToPgText(item.DeepDive),
			item.Active,
			item.Position,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "list_item", uuid.Nil)
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.ListItem, error) {
	var (
		item     domain.ListItem
		desc     pgtype.Text
		deepDive pgtype.Text
	)
	if err := row.Scan(&item.ID, &item.ListID, &item.Title, &desc, &deepDive,
		&item.Active, &item.Position, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	if desc.Valid {
		item.Description = &desc.String
	}
	if deepDive.Valid {
		item.DeepDive = &deepDive.String
	}
	return &item, nil
}

func scanItems(rows pgx.Rows) ([]*domain.ListItem, error) {
	var result []*domain.ListItem
	for rows.Next() {
		var (
			item     domain.ListItem
			desc     pgtype.Text
			deepDive pgtype.Text
		)
		if err := rows.Scan(&item.ID, &item.ListID, &item.Title, &desc, &deepDive,
			&item.Active, &item.Position, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		if desc.Valid {
			item.Description = &desc.String
		}
		if deepDive.Valid {
			item.DeepDive = &deepDive.String
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.ListItem{}
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
