// Package topic implements the topic-graph repository using PostgreSQL.
// It stores topic nodes and the directed parent→child edges between them
// and serves the per-level queries the graph traversal service runs.
package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/listforge/listforge-backend/internal/adapter/postgres"
	"github.com/listforge/listforge-backend/internal/domain"
)

// ChildRow pairs a child node with the parent it was reached from.
// It is the row shape of the per-level traversal query.
type ChildRow struct {
	ParentID uuid.UUID
	Node     domain.TopicNode
}

// Repo provides topic node and edge persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createNodeSQL = `
INSERT INTO topic_nodes (name, description)
VALUES ($1, $2)
RETURNING id, name, description, created_at, updated_at`

const getNodeSQL = `
SELECT id, name, description, created_at, updated_at
FROM topic_nodes
WHERE id = $1`

const listNodesSQL = `
SELECT id, name, description, created_at, updated_at
FROM topic_nodes
ORDER BY name`

const findNodeByNameSQL = `
SELECT id, name, description, created_at, updated_at
FROM topic_nodes
WHERE name ILIKE '%' || $1 || '%'
ORDER BY name
LIMIT 1`

const deleteNodeSQL = `DELETE FROM topic_nodes WHERE id = $1`

const createEdgeSQL = `
INSERT INTO topic_edges (parent_id, child_id, description)
VALUES ($1, $2, $3)
RETURNING parent_id, child_id, description, created_at`

const deleteEdgeSQL = `DELETE FROM topic_edges WHERE parent_id = $1 AND child_id = $2`

const hasParentsSQL = `SELECT EXISTS (SELECT 1 FROM topic_edges WHERE child_id = $1)`

const hasChildrenSQL = `SELECT EXISTS (SELECT 1 FROM topic_edges WHERE parent_id = $1)`

const childIDsOfManySQL = `
SELECT parent_id, child_id
FROM topic_edges
WHERE parent_id = ANY($1::uuid[])`

const childrenOfManySQL = `
SELECT e.parent_id, n.id, n.name, n.description, n.created_at, n.updated_at
FROM topic_edges e
JOIN topic_nodes n ON n.id = e.child_id
WHERE e.parent_id = ANY($1::uuid[])
ORDER BY e.parent_id, n.name`

// CreateNode inserts a new topic node and returns the persisted row.
func (r *Repo) CreateNode(ctx context.Context, node *domain.TopicNode) (*domain.TopicNode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createNodeSQL, node.Name, ptrStringToPgText(node.Description))
	created, err := scanNode(row)
	if err != nil {
		return nil, postgres.MapError(err, "topic_node", uuid.Nil)
	}

	return created, nil
}

// GetNode returns a topic node by primary key.
// Returns domain.ErrNotFound if the node does not exist.
func (r *Repo) GetNode(ctx context.Context, id uuid.UUID) (*domain.TopicNode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	node, err := scanNode(q.QueryRow(ctx, getNodeSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "topic_node", id)
	}

	return node, nil
}

// ListNodes returns all topic nodes ordered by name.
func (r *Repo) ListNodes(ctx context.Context) ([]*domain.TopicNode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listNodesSQL)
	if err != nil {
		return nil, fmt.Errorf("list topic_nodes: %w", err)
	}
	defer rows.Close()

	return scanNodes(rows)
}

// FindNodeByName returns the first node whose name contains the given
// substring (case-insensitive), the way the public search surface resolves
// a topic filter. Returns domain.ErrNotFound when nothing matches.
func (r *Repo) FindNodeByName(ctx context.Context, name string) (*domain.TopicNode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	node, err := scanNode(q.QueryRow(ctx, findNodeByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "topic_node", uuid.Nil)
	}

	return node, nil
}

// DeleteNode removes a topic node. Edges die with the node (CASCADE);
// lists under the node are orphaned, not deleted (SET NULL).
// Returns domain.ErrNotFound if the node does not exist.
func (r *Repo) DeleteNode(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteNodeSQL, id)
	if err != nil {
		return postgres.MapError(err, "topic_node", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic_node %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CreateEdge inserts a parent→child edge. The self-loop guard runs in the
// service before this is reached; the table's CHECK constraint backstops it.
// Returns domain.ErrAlreadyExists for a duplicate edge and domain.ErrNotFound
// when either endpoint is missing.
func (r *Repo) CreateEdge(ctx context.Context, edge *domain.TopicEdge) (*domain.TopicEdge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createEdgeSQL, edge.ParentID, edge.ChildID, ptrStringToPgText(edge.Description))

	var (
		created domain.TopicEdge
		desc    pgtype.Text
	)
	if err := row.Scan(&created.ParentID, &created.ChildID, &desc, &created.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "topic_edge", edge.ChildID)
	}
	if desc.Valid {
		created.Description = &desc.String
	}

	return &created, nil
}

// DeleteEdge removes a parent→child edge.
// Returns domain.ErrNotFound if the edge does not exist.
func (r *Repo) DeleteEdge(ctx context.Context, parentID, childID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteEdgeSQL, parentID, childID)
	if err != nil {
		return postgres.MapError(err, "topic_edge", childID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic_edge %s->%s: %w", parentID, childID, domain.ErrNotFound)
	}

	return nil
}

// HasParents reports whether any edge points at the node.
func (r *Repo) HasParents(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, hasParentsSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("has parents %s: %w", id, err)
	}

	return exists, nil
}

// HasChildren reports whether any edge leaves the node.
func (r *Repo) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, hasChildrenSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("has children %s: %w", id, err)
	}

	return exists, nil
}

// ChildIDsOfMany returns the edges leaving any of the given nodes.
// One call serves one traversal level.
func (r *Repo) ChildIDsOfMany(ctx context.Context, parentIDs []uuid.UUID) ([]domain.TopicEdge, error) {
	if len(parentIDs) == 0 {
		return []domain.TopicEdge{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, childIDsOfManySQL, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("child ids of many: %w", err)
	}
	defer rows.Close()

	var result []domain.TopicEdge
	for rows.Next() {
		var e domain.TopicEdge
		if err := rows.Scan(&e.ParentID, &e.ChildID); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.TopicEdge{}
	}

	return result, nil
}

// ChildrenOfMany returns the child nodes of any of the given nodes,
// each paired with the parent it hangs under. One call serves one
// traversal level of the materializing descendant walk.
func (r *Repo) ChildrenOfMany(ctx context.Context, parentIDs []uuid.UUID) ([]ChildRow, error) {
	if len(parentIDs) == 0 {
		return []ChildRow{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, childrenOfManySQL, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("children of many: %w", err)
	}
	defer rows.Close()

	var result []ChildRow
	for rows.Next() {
		var (
			cr   ChildRow
			desc pgtype.Text
		)
		if err := rows.Scan(&cr.ParentID, &cr.Node.ID, &cr.Node.Name, &desc,
			&cr.Node.CreatedAt, &cr.Node.UpdatedAt); err != nil {
			return nil, err
		}
		if desc.Valid {
			cr.Node.Description = &desc.String
		}
		result = append(result, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []ChildRow{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanNode(row pgx.Row) (*domain.TopicNode, error) {
	var (
		n    domain.TopicNode
		desc pgtype.Text
	)
	if err := row.Scan(&n.ID, &n.Name, &desc, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	if desc.Valid {
		n.Description = &desc.String
	}
	return &n, nil
}

func scanNodes(rows pgx.Rows) ([]*domain.TopicNode, error) {
	var result []*domain.TopicNode
	for rows.Next() {
		var (
			n         domain.TopicNode
			desc      pgtype.Text
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&n.ID, &n.Name, &desc, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		n.CreatedAt = createdAt
		n.UpdatedAt = updatedAt
		if desc.Valid {
			n.Description = &desc.String
		}
		result = append(result, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.TopicNode{}
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
