package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/internal/service/access"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

// accessService defines the minimal interface needed by AccessHandler.
type accessService interface {
	Resolve(ctx context.Context, userID, topicID uuid.UUID) (access.Grant, error)
	GrantSubscription(ctx context.Context, input access.GrantSubscriptionInput) (*domain.Subscription, error)
	RevokeSubscription(ctx context.Context, id uuid.UUID) error
}

// AccessHandler serves subscription and access resolution REST endpoints.
type AccessHandler struct {
	svc accessService
	log *slog.Logger
}

// NewAccessHandler creates an AccessHandler.
func NewAccessHandler(svc accessService, logger *slog.Logger) *AccessHandler {
	return &AccessHandler{svc: svc, log: logger.With("handler", "access")}
}

type subscriptionRequest struct {
	GroupID    string     `json:"groupId"`
	TopicID    string     `json:"topicId"`
	EditPower  bool       `json:"editPower"`
	Price      float64    `json:"price"`
	DateExpire *time.Time `json:"dateExpire,omitempty"`
}

type subscriptionResponse struct {
	ID         string     `json:"id"`
	GroupID    string     `json:"groupId"`
	TopicID    string     `json:"topicId"`
	Active     bool       `json:"active"`
	EditPower  bool       `json:"editPower"`
	Price      float64    `json:"price"`
	DateExpire *time.Time `json:"dateExpire,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type grantResponse struct {
	CanRead bool `json:"canRead"`
	CanEdit bool `json:"canEdit"`
}

// Grant handles POST /api/v1/subscriptions.
func (h *AccessHandler) Grant(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid groupId")
		return
	}
	topicID, err := uuid.Parse(req.TopicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topicId")
		return
	}

	sub, err := h.svc.GrantSubscription(r.Context(), access.GrantSubscriptionInput{
		GroupID:    groupID,
		TopicID:    topicID,
		EditPower:  req.EditPower,
		Price:      req.Price,
		DateExpire: req.DateExpire,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, subscriptionResponse{
		ID:         sub.ID.String(),
		GroupID:    sub.GroupID.String(),
		TopicID:    sub.TopicID.String(),
		Active:     sub.Active,
		EditPower:  sub.EditPower,
		Price:      sub.Price,
		DateExpire: sub.DateExpire,
		CreatedAt:  sub.CreatedAt,
	})
}

// Revoke handles DELETE /api/v1/subscriptions/{id}.
func (h *AccessHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.RevokeSubscription(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Resolve handles GET /api/v1/access/{topicId}. It reports the caller's
// effective grant on the topic.
func (h *AccessHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathID(w, r, "topicId")
	if !ok {
		return
	}

	userID, authenticated := ctxutil.UserIDFromCtx(r.Context())
	if !authenticated {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	grant, err := h.svc.Resolve(r.Context(), userID, topicID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, grantResponse{
		CanRead: grant.CanRead,
		CanEdit: grant.CanEdit,
	})
}
