// Package subscription implements the subscription repository using
// PostgreSQL. Expiry is never applied to stored rows; callers filter
// expired subscriptions at read time.
package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/listforge/listforge-backend/internal/adapter/postgres"
	"github.com/listforge/listforge-backend/internal/domain"
)

// Repo provides subscription persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subscription repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const subscriptionColumns = `id, group_id, topic_id, active, edit_power, price, date_expire, created_at`

const createSQL = `
INSERT INTO subscriptions (group_id, topic_id, active, edit_power, price, date_expire)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + subscriptionColumns

const getByIDSQL = `
SELECT ` + subscriptionColumns + `
FROM subscriptions
WHERE id = $1`

const activeByGroupIDsSQL = `
SELECT ` + subscriptionColumns + `
FROM subscriptions
WHERE group_id = ANY($1::uuid[]) AND active`

const setActiveSQL = `
UPDATE subscriptions
SET active = $2
WHERE id = $1`

// Create inserts a new subscription.
// Returns domain.ErrNotFound when the group or topic does not exist.
func (r *Repo) Create(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var expire pgtype.Timestamptz
	if s.DateExpire != nil {
		expire = pgtype.Timestamptz{Time: *s.DateExpire, Valid: true}
	}

	row := q.QueryRow(ctx, createSQL, s.GroupID, s.TopicID, s.Active, s.EditPower, s.Price, expire)

	created := domain.Subscription{}
	var createdExpire pgtype.Timestamptz
	if err := row.Scan(&created.ID, &created.GroupID, &created.TopicID, &created.Active,
		&created.EditPower, &created.Price, &createdExpire, &created.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "subscription", uuid.Nil)
	}
	if createdExpire.Valid {
		created.DateExpire = &createdExpire.Time
	}

	return &created, nil
}

// GetByID returns a subscription by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		s      domain.Subscription
		expire pgtype.Timestamptz
	)
	if err := q.QueryRow(ctx, getByIDSQL, id).Scan(&s.ID, &s.GroupID, &s.TopicID,
		&s.Active, &s.EditPower, &s.Price, &expire, &s.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "subscription", id)
	}
	if expire.Valid {
		s.DateExpire = &expire.Time
	}

	return &s, nil
}

// ActiveByGroupIDs returns the active subscriptions of any of the given
// groups. Expired rows are still returned; the access service filters them
// against the current clock.
func (r *Repo) ActiveByGroupIDs(ctx context.Context, groupIDs []uuid.UUID) ([]*domain.Subscription, error) {
	if len(groupIDs) == 0 {
		return []*domain.Subscription{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, activeByGroupIDsSQL, groupIDs)
	if err != nil {
		return nil, fmt.Errorf("active subscriptions of groups: %w", err)
	}
	defer rows.Close()

	result := []*domain.Subscription{}
	for rows.Next() {
		var (
			s      domain.Subscription
			expire pgtype.Timestamptz
		)
		if err := rows.Scan(&s.ID, &s.GroupID, &s.TopicID, &s.Active,
			&s.EditPower, &s.Price, &expire, &s.CreatedAt); err != nil {
			return nil, err
		}
		if expire.Valid {
			s.DateExpire = &expire.Time
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// SetActive flips the active flag.
// Returns domain.ErrNotFound if the subscription does not exist.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setActiveSQL, id, active)
	if err != nil {
		return postgres.MapError(err, "subscription", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subscription %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
