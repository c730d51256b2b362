package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/internal/service/topicgraph"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	CreateNode(ctx context.Context, input topicgraph.CreateNodeInput) (*domain.TopicNode, error)
	GetNode(ctx context.Context, id uuid.UUID) (*domain.TopicNode, error)
	ListNodes(ctx context.Context) ([]*domain.TopicNode, error)
	DeleteNode(ctx context.Context, id uuid.UUID) error
	CreateEdge(ctx context.Context, input topicgraph.CreateEdgeInput) (*domain.TopicEdge, error)
	DeleteEdge(ctx context.Context, parentID, childID uuid.UUID) error
	Descendants(ctx context.Context, id uuid.UUID) ([]*domain.DescendantNode, error)
	IsRoot(ctx context.Context, id uuid.UUID) (bool, error)
	IsLeaf(ctx context.Context, id uuid.UUID) (bool, error)
}

// TopicHandler serves topic hierarchy REST endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

type topicRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type topicResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type edgeRequest struct {
	ParentID    string  `json:"parentId"`
	ChildID     string  `json:"childId"`
	Description *string `json:"description,omitempty"`
}

type descendantResponse struct {
	topicResponse
	Level int      `json:"level"`
	Path  []string `json:"path"`
}

// Create handles POST /api/v1/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	node, err := h.svc.CreateNode(r.Context(), topicgraph.CreateNodeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(node))
}

// Get handles GET /api/v1/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	node, err := h.svc.GetNode(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(node))
}

// List handles GET /api/v1/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.svc.ListNodes(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]topicResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toTopicResponse(n))
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /api/v1/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteNode(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateEdge handles POST /api/v1/topics/edges.
func (h *TopicHandler) CreateEdge(w http.ResponseWriter, r *http.Request) {
	var req edgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	parentID, err := uuid.Parse(req.ParentID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid parentId")
		return
	}
	childID, err := uuid.Parse(req.ChildID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid childId")
		return
	}

	edge, err := h.svc.CreateEdge(r.Context(), topicgraph.CreateEdgeInput{
		ParentID:    parentID,
		ChildID:     childID,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"parentId": edge.ParentID.String(),
		"childId":  edge.ChildID.String(),
	})
}

// DeleteEdge handles DELETE /api/v1/topics/{id}/edges/{childId}.
func (h *TopicHandler) DeleteEdge(w http.ResponseWriter, r *http.Request) {
	parentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	childID, ok := pathID(w, r, "childId")
	if !ok {
		return
	}

	if err := h.svc.DeleteEdge(r.Context(), parentID, childID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Descendants handles GET /api/v1/topics/{id}/descendants.
func (h *TopicHandler) Descendants(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	nodes, err := h.svc.Descendants(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]descendantResponse, 0, len(nodes))
	for _, n := range nodes {
		path := make([]string, 0, len(n.Path))
		for _, p := range n.Path {
			path = append(path, p.String())
		}
		out = append(out, descendantResponse{
			topicResponse: toTopicResponse(&n.TopicNode),
			Level:         n.Level,
			Path:          path,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Position handles GET /api/v1/topics/{id}/position.
func (h *TopicHandler) Position(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	isRoot, err := h.svc.IsRoot(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	isLeaf, err := h.svc.IsLeaf(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{
		"isRoot": isRoot,
		"isLeaf": isLeaf,
	})
}

func toTopicResponse(n *domain.TopicNode) topicResponse {
	return topicResponse{
		ID:          n.ID.String(),
		Name:        n.Name,
		Description: n.Description,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}
