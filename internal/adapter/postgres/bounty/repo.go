// Package bounty implements the bounty and bounty-type repositories using
// PostgreSQL. Claiming is a single conditional UPDATE so that concurrent
// claimers race on the database row, not in application code.
package bounty

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

// Repo provides bounty persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bounty repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const bountyColumns = `id, type_id, target_kind, target_id, issuer_id, claimer_id,
	reward, active, date_expire, date_completed, created_at`

const createSQL = `
INSERT INTO bounties (type_id, target_kind, target_id, issuer_id, reward, active, date_expire)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + bountyColumns

const getByIDSQL = `
SELECT ` + bountyColumns + `
FROM bounties
WHERE id = $1`

const listOpenByTargetSQL = `
SELECT ` + bountyColumns + `
FROM bounties
WHERE target_kind = $1 AND target_id = $2 AND active AND claimer_id IS NULL
ORDER BY created_at`

// The claim guard encodes the whole claimability rule: unclaimed, active,
// and not past its deadline. Claimer and completion timestamp are set in
// the same statement, keeping the completed-iff-claimed invariant.
const claimSQL = `
UPDATE bounties
SET claimer_id = $2, date_completed = now()
WHERE id = $1
  AND claimer_id IS NULL
  AND active
  AND (date_expire IS NULL OR date_expire > now())`

// A claimed bounty is part of the permanent contribution record and cannot
// be deactivated.
const deactivateSQL = `
UPDATE bounties
SET active = FALSE
WHERE id = $1 AND claimer_id IS NULL`

const createTypeSQL = `
INSERT INTO bounty_types (name, description)
VALUES ($1, $2)
RETURNING id, name, description, created_at`

const getTypeSQL = `
SELECT id, name, description, created_at
FROM bounty_types
WHERE id = $1`

// Create inserts a new bounty.
func (r *Repo) Create(ctx context.Context, b *domain.Bounty) (*domain.Bounty, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var expire pgtype.Timestamptz
	if b.DateExpire != nil {
		expire = pgtype.Timestamptz{Time: *b.DateExpire, Valid: true}
	}

	row := q.QueryRow(ctx, createSQL,
		b.TypeID, b.Target.Kind, b.Target.ID, b.IssuerID, b.Reward, b.Active, expire)

	created, err := scanBounty(row)
	if err != nil {
		return nil, postgres.MapError(err, "bounty", uuid.Nil)
	}

	return created, nil
}

// GetByID returns a bounty by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bounty, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBounty(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "bounty", id)
	}

	return b, nil
}

// ListOpenByTarget returns the unclaimed active bounties on a target.
func (r *Repo) ListOpenByTarget(ctx context.Context, target domain.EntityRef) ([]*domain.Bounty, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listOpenByTargetSQL, target.Kind, target.ID)
	if err != nil {
		return nil, fmt.Errorf("open bounties on %s: %w", target, err)
	}
	defer rows.Close()

	result := []*domain.Bounty{}
	for rows.Next() {
		b, err := scanBounty(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Claim atomically assigns the bounty to the claimer and stamps completion.
// Returns the number of rows affected: 0 means the bounty was missing,
// already claimed, inactive or expired; the service re-reads to tell which.
func (r *Repo) Claim(ctx context.Context, id, claimerID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, claimSQL, id, claimerID)
	if err != nil {
		return 0, postgres.MapError(err, "bounty", id)
	}

	return tag.RowsAffected(), nil
}

// Deactivate retires an unclaimed bounty. Returns rows affected; 0 means
// the bounty was missing or already claimed.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deactivateSQL, id)
	if err != nil {
		return 0, postgres.MapError(err, "bounty", id)
	}

	return tag.RowsAffected(), nil
}

// CreateType inserts a new bounty type.
// Returns domain.ErrAlreadyExists on a duplicate name.
func (r *Repo) CreateType(ctx context.Context, name string, description *string) (*domain.BountyType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		t    domain.BountyType
		desc pgtype.Text
	)
	err := q.QueryRow(ctx, createTypeSQL, name, ptrStringToPgText(description)).Scan(
		&t.ID, &t.Name, &desc, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "bounty_type", uuid.Nil)
	}
	if desc.Valid {
		t.Description = &desc.String
	}

	return &t, nil
}

// GetType returns a bounty type by primary key.
func (r *Repo) GetType(ctx context.Context, id uuid.UUID) (*domain.BountyType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		t    domain.BountyType
		desc pgtype.Text
	)
	if err := q.QueryRow(ctx, getTypeSQL, id).Scan(&t.ID, &t.Name, &desc, &t.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "bounty_type", id)
	}
	if desc.Valid {
		t.Description = &desc.String
	}

	return &t, nil
}

func scanBounty(row pgx.Row) (*domain.Bounty, error) {
	var (
		b         domain.Bounty
		expire    pgtype.Timestamptz
		completed pgtype.Timestamptz
	)
	if err := row.Scan(&b.ID, &b.TypeID, &b.Target.Kind, &b.Target.ID,
		&b.IssuerID, &b.ClaimerID, &b.Reward, &b.Active,
		&expire, &completed, &b.CreatedAt); err != nil {
		return nil, err
	}
	if expire.Valid {
		b.DateExpire = &expire.Time
	}
	if completed.Valid {
		b.DateCompleted = &completed.Time
	}
	return &b, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
