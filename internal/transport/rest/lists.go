package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/internal/service/list"
)

// listService defines the minimal interface needed by ListHandler.
type listService interface {
	Create(ctx context.Context, input list.CreateInput) (*domain.List, error)
	Get(ctx context.Context, listID uuid.UUID) (*domain.List, error)
	Delete(ctx context.Context, listID uuid.UUID) error
	UpdateContent(ctx context.Context, input list.UpdateContentInput) (*domain.List, error)
	Submit(ctx context.Context, listID uuid.UUID) (*domain.List, error)
	Claim(ctx context.Context, listID uuid.UUID) (*domain.List, error)
	Release(ctx context.Context, listID uuid.UUID) (*domain.List, error)
	Publish(ctx context.Context, listID uuid.UUID) (*domain.List, error)
	ReturnToDraft(ctx context.Context, listID uuid.UUID, comment string) (*domain.List, error)
	Clone(ctx context.Context, sourceID uuid.UUID) (*domain.List, error)
	SetActive(ctx context.Context, listID uuid.UUID, active bool) (*domain.List, error)
	Search(ctx context.Context, input list.SearchInput) ([]*domain.List, error)
	GetItems(ctx context.Context, listID uuid.UUID) ([]*domain.ListItem, error)
	AddItem(ctx context.Context, input list.AddItemInput) (*domain.ListItem, error)
	UpdateItem(ctx context.Context, input list.UpdateItemInput) (*domain.ListItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	ReorderItems(ctx context.Context, input list.ReorderItemsInput) error
	AddComment(ctx context.Context, input list.AddCommentInput) (*domain.ListComment, error)
	Comments(ctx context.Context, listID uuid.UUID) ([]*domain.ListComment, error)
}

// ListHandler serves list REST endpoints.
type ListHandler struct {
	svc listService
	log *slog.Logger
}

// NewListHandler creates a ListHandler.
func NewListHandler(svc listService, logger *slog.Logger) *ListHandler {
	return &ListHandler{svc: svc, log: logger.With("handler", "list")}
}

type listRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	TopicID     *string `json:"topicId,omitempty"`
}

type listResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	TopicID      *string   `json:"topicId,omitempty"`
	Active       bool      `json:"active"`
	Status       string    `json:"status"`
	CreatorID    *string   `json:"creatorId,omitempty"`
	LockUserID   *string   `json:"lockUserId,omitempty"`
	ParentListID *string   `json:"parentListId,omitempty"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type itemRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DeepDive    *string `json:"deepDive,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type itemResponse struct {
	ID          string    `json:"id"`
	ListID      string    `json:"listId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	DeepDive    *string   `json:"deepDive,omitempty"`
	Active      bool      `json:"active"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	ListID    string    `json:"listId"`
	AuthorID  string    `json:"authorId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create handles POST /api/v1/lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, ok := optionalID(w, req.TopicID, "topicId")
	if !ok {
		return
	}

	created, err := h.svc.Create(r.Context(), list.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		TopicID:     topicID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListResponse(created))
}

// Get handles GET /api/v1/lists/{id}.
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(l))
}

// Delete handles DELETE /api/v1/lists/{id}.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Update handles PUT /api/v1/lists/{id}.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req listRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, ok := optionalID(w, req.TopicID, "topicId")
	if !ok {
		return
	}

	updated, err := h.svc.UpdateContent(r.Context(), list.UpdateContentInput{
		ListID:      id,
		Title:       req.Title,
		Description: req.Description,
		TopicID:     topicID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(updated))
}

// Search handles GET /api/v1/lists.
func (h *ListHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	results, err := h.svc.Search(r.Context(), list.SearchInput{
		TitleSubstring: q.Get("title"),
		TopicName:      q.Get("topic"),
		Limit:          limit,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]listResponse, 0, len(results))
	for _, l := range results {
		out = append(out, toListResponse(l))
	}
	writeJSON(w, http.StatusOK, out)
}

// lifecycle transitions: POST /api/v1/lists/{id}/{action}

func (h *ListHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Submit)
}

func (h *ListHandler) Claim(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Claim)
}

func (h *ListHandler) Release(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Release)
}

func (h *ListHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Publish)
}

func (h *ListHandler) Clone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	clone, err := h.svc.Clone(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListResponse(clone))
}

// ReturnToDraft handles POST /api/v1/lists/{id}/return. The creator pulls
// an unclaimed submission back; an optional comment explains why on the
// review trail.
func (h *ListHandler) ReturnToDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	l, err := h.svc.ReturnToDraft(r.Context(), id, req.Comment)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(l))
}

// SetActive handles PUT /api/v1/lists/{id}/active.
func (h *ListHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.svc.SetActive(r.Context(), id, req.Active)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(l))
}

func (h *ListHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.List, error)) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	l, err := op(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(l))
}

// Items handles GET /api/v1/lists/{id}/items.
func (h *ListHandler) Items(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	items, err := h.svc.GetItems(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	writeJSON(w, http.StatusOK, out)
}

// AddItem handles POST /api/v1/lists/{id}/items.
func (h *ListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.AddItem(r.Context(), list.AddItemInput{
		ListID:      id,
		Title:       req.Title,
		Description: req.Description,
		DeepDive:    req.DeepDive,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// UpdateItem handles PUT /api/v1/items/{id}.
func (h *ListHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	item, err := h.svc.UpdateItem(r.Context(), list.UpdateItemInput{
		ItemID:      id,
		Title:       req.Title,
		Description: req.Description,
		DeepDive:    req.DeepDive,
		Active:      active,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// DeleteItem handles DELETE /api/v1/items/{id}.
func (h *ListHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderItems handles PUT /api/v1/lists/{id}/items/order.
func (h *ListHandler) ReorderItems(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		ItemIDs []uuid.UUID `json:"itemIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.ReorderItems(r.Context(), list.ReorderItemsInput{
		ListID:  id,
		ItemIDs: req.ItemIDs,
	}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Comments handles GET /api/v1/lists/{id}/comments.
func (h *ListHandler) Comments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.svc.Comments(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// AddComment handles POST /api/v1/lists/{id}/comments.
func (h *ListHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.AddComment(r.Context(), list.AddCommentInput{
		ListID:  id,
		Message: req.Message,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

func toListResponse(l *domain.List) listResponse {
	return listResponse{
		ID:           l.ID.String(),
		Title:        l.Title,
		Description:  l.Description,
		TopicID:      uuidString(l.TopicID),
		Active:       l.Active,
		Status:       l.Status.String(),
		CreatorID:    uuidString(l.CreatorID),
		LockUserID:   uuidString(l.LockUserID),
		ParentListID: uuidString(l.ParentListID),
		Version:      l.Version,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func toItemResponse(item *domain.ListItem) itemResponse {
	return itemResponse{
		ID:          item.ID.String(),
		ListID:      item.ListID.String(),
		Title:       item.Title,
		Description: item.Description,
		DeepDive:    item.DeepDive,
		Active:      item.Active,
		Position:    item.Position,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toCommentResponse(c *domain.ListComment) commentResponse {
	return commentResponse{
		ID:        c.ID.String(),
		ListID:    c.ListID.String(),
		AuthorID:  c.AuthorID.String(),
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// optionalID parses an optional UUID from a request body. A malformed value
// reports false after writing a 400.
func optionalID(w http.ResponseWriter, raw *string, field string) (*uuid.UUID, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+field)
		return nil, false
	}
	return &id, true
}
