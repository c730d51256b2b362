// Package person implements the person, friendship, favorite and
// subscriber-group repositories using PostgreSQL.
package person

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

// Repo provides person persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new person repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const personColumns = `id, user_id, degrees, job_title, personal_description, created_at, updated_at`

const createSQL = `
INSERT INTO persons (user_id, degrees, job_title, personal_description)
VALUES ($1, $2, $3, $4)
RETURNING ` + personColumns

const getByIDSQL = `
SELECT ` + personColumns + `
FROM persons
WHERE id = $1`

const getByUserIDSQL = `
SELECT ` + personColumns + `
FROM persons
WHERE user_id = $1`

const updateSQL = `
UPDATE persons
SET degrees = $2, job_title = $3, personal_description = $4, updated_at = now()
WHERE id = $1
RETURNING ` + personColumns

// Friendship is stored as two symmetric rows so that "friends of X" is a
// single-column lookup in either direction.
const addFriendSQL = `
INSERT INTO person_friends (person_id, friend_id)
VALUES ($1, $2), ($2, $1)
ON CONFLICT DO NOTHING`

const removeFriendSQL = `
DELETE FROM person_friends
WHERE (person_id = $1 AND friend_id = $2) OR (person_id = $2 AND friend_id = $1)`

const friendIDsSQL = `
SELECT friend_id
FROM person_friends
WHERE person_id = $1
ORDER BY friend_id`

const addFavoriteSQL = `
INSERT INTO favorite_lists (person_id, list_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const removeFavoriteSQL = `
DELETE FROM favorite_lists
WHERE person_id = $1 AND list_id = $2`

const favoriteListIDsSQL = `
SELECT list_id
FROM favorite_lists
WHERE person_id = $1
ORDER BY created_at DESC`

const createGroupSQL = `
INSERT INTO subscriber_groups (name)
VALUES ($1)
RETURNING id, name, created_at`

const getGroupSQL = `
SELECT id, name, created_at
FROM subscriber_groups
WHERE id = $1`

const addGroupMemberSQL = `
INSERT INTO group_members (person_id, group_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const removeGroupMemberSQL = `
DELETE FROM group_members
WHERE person_id = $1 AND group_id = $2`

const groupIDsByUserIDSQL = `
SELECT gm.group_id
FROM group_members gm
JOIN persons p ON p.id = gm.person_id
WHERE p.user_id = $1`

// Create inserts a new person profile for a user identity.
// Returns domain.ErrAlreadyExists if the identity already has a profile.
func (r *Repo) Create(ctx context.Context, p *domain.Person) (*domain.Person, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		p.UserID,
		ptrStringToPgText(p.Degrees),
		ptrStringToPgText(p.JobTitle),
		ptrStringToPgText(p.PersonalDescription),
	)

	created, err := scanPerson(row)
	if err != nil {
		return nil, postgres.MapError(err, "person", uuid.Nil)
	}

	return created, nil
}

// GetByID returns a person by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPerson(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "person", id)
	}

	return p, nil
}

// GetByUserID returns the person attached to a user identity.
// Returns domain.ErrNotFound when no profile exists yet.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Person, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPerson(q.QueryRow(ctx, getByUserIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "person", userID)
	}

	return p, nil
}

// Update rewrites the profile fields of a person.
func (r *Repo) Update(ctx context.Context, p *domain.Person) (*domain.Person, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL,
		p.ID,
		ptrStringToPgText(p.Degrees),
		ptrStringToPgText(p.JobTitle),
		ptrStringToPgText(p.PersonalDescription),
	)

	updated, err := scanPerson(row)
	if err != nil {
		return nil, postgres.MapError(err, "person", p.ID)
	}

	return updated, nil
}

// AddFriend records a symmetric friendship between two persons.
// Adding an existing friendship is a no-op.
func (r *Repo) AddFriend(ctx context.Context, personID, friendID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, addFriendSQL, personID, friendID); err != nil {
		return postgres.MapError(err, "person_friend", friendID)
	}

	return nil
}

// RemoveFriend removes a friendship in both directions.
func (r *Repo) RemoveFriend(ctx context.Context, personID, friendID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, removeFriendSQL, personID, friendID); err != nil {
		return postgres.MapError(err, "person_friend", friendID)
	}

	return nil
}

// FriendIDs returns the ids of a person's friends.
func (r *Repo) FriendIDs(ctx context.Context, personID uuid.UUID) ([]uuid.UUID, error) {
	return r.queryIDs(ctx, friendIDsSQL, personID)
}

// AddFavorite marks a list as a person's favorite. Idempotent.
// Returns domain.ErrNotFound when either side is missing.
func (r *Repo) AddFavorite(ctx context.Context, personID, listID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, addFavoriteSQL, personID, listID); err != nil {
		return postgres.MapError(err, "favorite_list", listID)
	}

	return nil
}

// RemoveFavorite removes a favorite mark.
func (r *Repo) RemoveFavorite(ctx context.Context, personID, listID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, removeFavoriteSQL, personID, listID); err != nil {
		return postgres.MapError(err, "favorite_list", listID)
	}

	return nil
}

// FavoriteListIDs returns the ids of a person's favorite lists, newest first.
func (r *Repo) FavoriteListIDs(ctx context.Context, personID uuid.UUID) ([]uuid.UUID, error) {
	return r.queryIDs(ctx, favoriteListIDsSQL, personID)
}

// CreateGroup inserts a new subscriber group.
func (r *Repo) CreateGroup(ctx context.Context, name string) (*domain.SubscriberGroup, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var g domain.SubscriberGroup
	if err := q.QueryRow(ctx, createGroupSQL, name).Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "subscriber_group", uuid.Nil)
	}

	return &g, nil
}

// GetGroup returns a subscriber group by primary key.
func (r *Repo) GetGroup(ctx context.Context, id uuid.UUID) (*domain.SubscriberGroup, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var g domain.SubscriberGroup
	if err := q.QueryRow(ctx, getGroupSQL, id).Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "subscriber_group", id)
	}

	return &g, nil
}

// AddGroupMember adds a person to a subscriber group. Idempotent.
func (r *Repo) AddGroupMember(ctx context.Context, personID, groupID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, addGroupMemberSQL, personID, groupID); err != nil {
		return postgres.MapError(err, "group_member", groupID)
	}

	return nil
}

// RemoveGroupMember removes a person from a subscriber group.
func (r *Repo) RemoveGroupMember(ctx context.Context, personID, groupID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, removeGroupMemberSQL, personID, groupID); err != nil {
		return postgres.MapError(err, "group_member", groupID)
	}

	return nil
}

// GroupIDsByUserID returns the ids of the subscriber groups the given user
// identity belongs to. A user with no profile belongs to no groups.
func (r *Repo) GroupIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.queryIDs(ctx, groupIDsByUserIDSQL, userID)
}

func (r *Repo) queryIDs(ctx context.Context, sql string, arg any) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("query ids: %w", err)
	}
	defer rows.Close()

	result := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func scanPerson(row pgx.Row) (*domain.Person, error) {
	var (
		p        domain.Person
		degrees  pgtype.Text
		jobTitle pgtype.Text
		desc     pgtype.Text
	)
	if err := row.Scan(&p.ID, &p.UserID, &degrees, &jobTitle, &desc,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if degrees.Valid {
		p.Degrees = &degrees.String
	}
	if jobTitle.Valid {
		p.JobTitle = &jobTitle.String
	}
	if desc.Valid {
		p.PersonalDescription = &desc.String
	}
	return &p, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
