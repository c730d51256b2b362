package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/internal/service/review"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	Propose(ctx context.Context, input review.ProposeInput) (*domain.Proposal, error)
	OpenProposals(ctx context.Context) ([]*domain.Proposal, error)
	IssueBounty(ctx context.Context, input review.IssueBountyInput) (*domain.Bounty, error)
	IssueBountyForProposal(ctx context.Context, input review.IssueForProposalInput) (*domain.Bounty, error)
	OpenBounties(ctx context.Context, target domain.EntityRef) ([]*domain.Bounty, error)
	ClaimBounty(ctx context.Context, bountyID uuid.UUID) (*domain.Bounty, error)
	DeactivateBounty(ctx context.Context, bountyID uuid.UUID) error
	CreateBountyType(ctx context.Context, name string, description *string) (*domain.BountyType, error)
}

// ReviewHandler serves proposal and bounty REST endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type targetRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type proposalRequest struct {
	Target          targetRequest `json:"target"`
	Message         string        `json:"message"`
	SuggestedReward float64       `json:"suggestedReward"`
}

type proposalResponse struct {
	ID              string         `json:"id"`
	Target          targetResponse `json:"target"`
	AuthorID        string         `json:"authorId"`
	Message         string         `json:"message"`
	SuggestedReward float64        `json:"suggestedReward"`
	BountyID        *string        `json:"bountyId,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

type targetResponse struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type bountyRequest struct {
	Target     targetRequest `json:"target"`
	TypeID     *string       `json:"typeId,omitempty"`
	Reward     float64       `json:"reward"`
	DateExpire *time.Time    `json:"dateExpire,omitempty"`
}

type bountyForProposalRequest struct {
	TypeID     *string    `json:"typeId,omitempty"`
	Reward     float64    `json:"reward"`
	DateExpire *time.Time `json:"dateExpire,omitempty"`
}

type bountyResponse struct {
	ID            string         `json:"id"`
	TypeID        *string        `json:"typeId,omitempty"`
	Target        targetResponse `json:"target"`
	IssuerID      *string        `json:"issuerId,omitempty"`
	ClaimerID     *string        `json:"claimerId,omitempty"`
	Reward        float64        `json:"reward"`
	Active        bool           `json:"active"`
	DateExpire    *time.Time     `json:"dateExpire,omitempty"`
	DateCompleted *time.Time     `json:"dateCompleted,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// Propose handles POST /api/v1/proposals.
func (h *ReviewHandler) Propose(w http.ResponseWriter, r *http.Request) {
	var req proposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	target, ok := parseTarget(w, req.Target)
	if !ok {
		return
	}

	p, err := h.svc.Propose(r.Context(), review.ProposeInput{
		Target:          target,
		Message:         req.Message,
		SuggestedReward: req.SuggestedReward,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProposalResponse(p))
}

// OpenProposals handles GET /api/v1/proposals.
func (h *ReviewHandler) OpenProposals(w http.ResponseWriter, r *http.Request) {
	proposals, err := h.svc.OpenProposals(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]proposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, toProposalResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// IssueBounty handles POST /api/v1/bounties.
func (h *ReviewHandler) IssueBounty(w http.ResponseWriter, r *http.Request) {
	var req bountyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	target, ok := parseTarget(w, req.Target)
	if !ok {
		return
	}
	typeID, ok := optionalID(w, req.TypeID, "typeId")
	if !ok {
		return
	}

	b, err := h.svc.IssueBounty(r.Context(), review.IssueBountyInput{
		Target:     target,
		TypeID:     typeID,
		Reward:     req.Reward,
		DateExpire: req.DateExpire,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBountyResponse(b))
}

// IssueForProposal handles POST /api/v1/proposals/{id}/bounty.
func (h *ReviewHandler) IssueForProposal(w http.ResponseWriter, r *http.Request) {
	proposalID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req bountyForProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	typeID, ok := optionalID(w, req.TypeID, "typeId")
	if !ok {
		return
	}

	b, err := h.svc.IssueBountyForProposal(r.Context(), review.IssueForProposalInput{
		ProposalID: proposalID,
		TypeID:     typeID,
		Reward:     req.Reward,
		DateExpire: req.DateExpire,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBountyResponse(b))
}

// OpenBounties handles GET /api/v1/bounties?kind=LIST&id={uuid}.
func (h *ReviewHandler) OpenBounties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	target, ok := parseTarget(w, targetRequest{Kind: q.Get("kind"), ID: q.Get("id")})
	if !ok {
		return
	}

	bounties, err := h.svc.OpenBounties(r.Context(), target)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]bountyResponse, 0, len(bounties))
	for _, b := range bounties {
		out = append(out, toBountyResponse(b))
	}
	writeJSON(w, http.StatusOK, out)
}

// Claim handles POST /api/v1/bounties/{id}/claim.
func (h *ReviewHandler) Claim(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	b, err := h.svc.ClaimBounty(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBountyResponse(b))
}

// Deactivate handles DELETE /api/v1/bounties/{id}.
func (h *ReviewHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeactivateBounty(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateBountyType handles POST /api/v1/bounty-types.
func (h *ReviewHandler) CreateBountyType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bt, err := h.svc.CreateBountyType(r.Context(), req.Name, req.Description)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":   bt.ID.String(),
		"name": bt.Name,
	})
}

func parseTarget(w http.ResponseWriter, req targetRequest) (domain.EntityRef, bool) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid target id")
		return domain.EntityRef{}, false
	}
	return domain.EntityRef{Kind: domain.EntityKind(req.Kind), ID: id}, true
}

func toProposalResponse(p *domain.Proposal) proposalResponse {
	return proposalResponse{
		ID:              p.ID.String(),
		Target:          targetResponse{Kind: p.Target.Kind.String(), ID: p.Target.ID.String()},
		AuthorID:        p.AuthorID.String(),
		Message:         p.Message,
		SuggestedReward: p.SuggestedReward,
		BountyID:        uuidString(p.BountyID),
		CreatedAt:       p.CreatedAt,
	}
}

func toBountyResponse(b *domain.Bounty) bountyResponse {
	return bountyResponse{
		ID:            b.ID.String(),
		TypeID:        uuidString(b.TypeID),
		Target:        targetResponse{Kind: b.Target.Kind.String(), ID: b.Target.ID.String()},
		IssuerID:      uuidString(b.IssuerID),
		ClaimerID:     uuidString(b.ClaimerID),
		Reward:        b.Reward,
		Active:        b.Active,
		DateExpire:    b.DateExpire,
		DateCompleted: b.DateCompleted,
		CreatedAt:     b.CreatedAt,
	}
}
