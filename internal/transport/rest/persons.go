package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/internal/service/person"
)

// personService defines the minimal interface needed by PersonHandler.
type personService interface {
	MyProfile(ctx context.Context) (*domain.Person, error)
	GetProfile(ctx context.Context, personID uuid.UUID) (*domain.Person, error)
	UpdateProfile(ctx context.Context, input person.ProfileInput) (*domain.Person, error)
	MyContributions(ctx context.Context) ([]*domain.Contribution, error)
	AddFriend(ctx context.Context, friendID uuid.UUID) error
	RemoveFriend(ctx context.Context, friendID uuid.UUID) error
	Friends(ctx context.Context) ([]uuid.UUID, error)
	AddFavorite(ctx context.Context, listID uuid.UUID) error
	RemoveFavorite(ctx context.Context, listID uuid.UUID) error
	Favorites(ctx context.Context) ([]uuid.UUID, error)
	CreateGroup(ctx context.Context, name string) (*domain.SubscriberGroup, error)
	JoinGroup(ctx context.Context, groupID uuid.UUID) error
	LeaveGroup(ctx context.Context, groupID uuid.UUID) error
}

// PersonHandler serves profile and social REST endpoints.
type PersonHandler struct {
	svc personService
	log *slog.Logger
}

// NewPersonHandler creates a PersonHandler.
func NewPersonHandler(svc personService, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{svc: svc, log: logger.With("handler", "person")}
}

type profileRequest struct {
	Degrees             *string `json:"degrees,omitempty"`
	JobTitle            *string `json:"jobTitle,omitempty"`
	PersonalDescription *string `json:"personalDescription,omitempty"`
}

type profileResponse struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	Degrees             *string   `json:"degrees,omitempty"`
	JobTitle            *string   `json:"jobTitle,omitempty"`
	PersonalDescription *string   `json:"personalDescription,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type contributionResponse struct {
	ID        string         `json:"id"`
	Target    targetResponse `json:"target"`
	Note      *string        `json:"note,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

type groupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Me handles GET /api/v1/me. Creates the profile on first access.
func (h *PersonHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.MyProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// UpdateMe handles PUT /api/v1/me.
func (h *PersonHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.UpdateProfile(r.Context(), person.ProfileInput{
		Degrees:             req.Degrees,
		JobTitle:            req.JobTitle,
		PersonalDescription: req.PersonalDescription,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Get handles GET /api/v1/persons/{id}.
func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Contributions handles GET /api/v1/me/contributions.
func (h *PersonHandler) Contributions(w http.ResponseWriter, r *http.Request) {
	contributions, err := h.svc.MyContributions(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]contributionResponse, 0, len(contributions))
	for _, c := range contributions {
		out = append(out, contributionResponse{
			ID:        c.ID.String(),
			Target:    targetResponse{Kind: c.Target.Kind.String(), ID: c.Target.ID.String()},
			Note:      c.Note,
			CreatedAt: c.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// AddFriend handles PUT /api/v1/me/friends/{id}.
func (h *PersonHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.AddFriend(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveFriend handles DELETE /api/v1/me/friends/{id}.
func (h *PersonHandler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveFriend(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Friends handles GET /api/v1/me/friends.
func (h *PersonHandler) Friends(w http.ResponseWriter, r *http.Request) {
	ids, err := h.svc.Friends(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, uuidStrings(ids))
}

// AddFavorite handles PUT /api/v1/me/favorites/{id}.
func (h *PersonHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.AddFavorite(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /api/v1/me/favorites/{id}.
func (h *PersonHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveFavorite(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Favorites handles GET /api/v1/me/favorites.
func (h *PersonHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	ids, err := h.svc.Favorites(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, uuidStrings(ids))
}

// CreateGroup handles POST /api/v1/groups.
func (h *PersonHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := h.svc.CreateGroup(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, groupResponse{
		ID:        g.ID.String(),
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	})
}

// JoinGroup handles PUT /api/v1/groups/{id}/members.
func (h *PersonHandler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.JoinGroup(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// LeaveGroup handles DELETE /api/v1/groups/{id}/members.
func (h *PersonHandler) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.LeaveGroup(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toProfileResponse(p *domain.Person) profileResponse {
	return profileResponse{
		ID:                  p.ID.String(),
		UserID:              p.UserID.String(),
		Degrees:             p.Degrees,
		JobTitle:            p.JobTitle,
		PersonalDescription: p.PersonalDescription,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
