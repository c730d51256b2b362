// Package contribution implements the append-only contribution ledger
// using PostgreSQL.
package contribution

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

// Repo provides contribution-ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contribution repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const contributionColumns = `id, user_id, target_kind, target_id, note, created_at`

const logSQL = `
INSERT INTO contributions (user_id, target_kind, target_id, note)
VALUES ($1, $2, $3, $4)
RETURNING ` + contributionColumns

const listByTargetSQL = `
SELECT ` + contributionColumns + `
FROM contributions
WHERE target_kind = $1 AND target_id = $2
ORDER BY created_at`

const listByUserSQL = `
SELECT ` + contributionColumns + `
FROM contributions
WHERE user_id = $1
ORDER BY created_at DESC`

// Log appends a contribution record. Called inside the transaction of the
// operation it records so the ledger and the state change commit together.
func (r *Repo) Log(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, logSQL, c.UserID, c.Target.Kind, c.Target.ID, ptrStringToPgText(c.Note))

	logged, err := scanContribution(row)
	if err != nil {
		return nil, postgres.MapError(err, "contribution", uuid.Nil)
	}

	return logged, nil
}

// ListByTarget returns the contributions recorded against a target,
// oldest first.
func (r *Repo) ListByTarget(ctx context.Context, target domain.EntityRef) ([]*domain.Contribution, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByTargetSQL, target.Kind, target.ID)
	if err != nil {
		return nil, fmt.Errorf("contributions on %s: %w", target, err)
	}
	defer rows.Close()

	return scanContributions(rows)
}

// ListByUser returns a user's contributions, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Contribution, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("contributions of user %s: %w", userID, err)
	}
	defer rows.Close()

	return scanContributions(rows)
}

func scanContribution(row pgx.Row) (*domain.Contribution, error) {
	var (
		c    domain.Contribution
		note pgtype.Text
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.Target.Kind, &c.Target.ID,
		&note, &c.CreatedAt); err != nil {
		return nil, err
	}
	if note.Valid {
		c.Note = &note.String
	}
	return &c, nil
}

func scanContributions(rows pgx.Rows) ([]*domain.Contribution, error) {
	result := []*domain.Contribution{}
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
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
