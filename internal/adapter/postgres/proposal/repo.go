// Package proposal implements the proposal repository using PostgreSQL.
// Fulfillment is monotonic: bounty_id is set by a conditional UPDATE that
// only matches while it is still NULL.
package proposal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/listforge/listforge-backend/internal/adapter/postgres"
	"github.com/listforge/listforge-backend/internal/domain"
)

// Repo provides proposal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new proposal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const proposalColumns = `id, target_kind, target_id, author_id, message, suggested_reward, bounty_id, created_at`

const createSQL = `
INSERT INTO proposals (target_kind, target_id, author_id, message, suggested_reward)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + proposalColumns

const getByIDSQL = `
SELECT ` + proposalColumns + `
FROM proposals
WHERE id = $1`

const listOpenSQL = `
SELECT ` + proposalColumns + `
FROM proposals
WHERE bounty_id IS NULL
ORDER BY created_at`

const setBountySQL = `
UPDATE proposals
SET bounty_id = $2
WHERE id = $1 AND bounty_id IS NULL`

// Create inserts a new proposal.
func (r *Repo) Create(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		p.Target.Kind, p.Target.ID, p.AuthorID, p.Message, p.SuggestedReward)

	created, err := scanProposal(row)
	if err != nil {
		return nil, postgres.MapError(err, "proposal", uuid.Nil)
	}

	return created, nil
}

// GetByID returns a proposal by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProposal(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "proposal", id)
	}

	return p, nil
}

// ListOpen returns all unfulfilled proposals, oldest first.
func (r *Repo) ListOpen(ctx context.Context) ([]*domain.Proposal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listOpenSQL)
	if err != nil {
		return nil, fmt.Errorf("list open proposals: %w", err)
	}
	defer rows.Close()

	result := []*domain.Proposal{}
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// SetBounty marks the proposal fulfilled by the given bounty. Returns rows
// affected: 0 means the proposal was missing or already fulfilled.
func (r *Repo) SetBounty(ctx context.Context, id, bountyID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setBountySQL, id, bountyID)
	if err != nil {
		return 0, postgres.MapError(err, "proposal", id)
	}

	return tag.RowsAffected(), nil
}

func scanProposal(row pgx.Row) (*domain.Proposal, error) {
	var p domain.Proposal
	if err := row.Scan(&p.ID, &p.Target.Kind, &p.Target.ID, &p.AuthorID,
		&p.Message, &p.SuggestedReward, &p.BountyID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
