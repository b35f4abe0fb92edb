package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/pena-betica-escocesa/api/internal/middleware"
	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/service"
)

// VotingHandler handles shirt design voting HTTP requests
type VotingHandler struct {
	svc *service.VotingService
}

// NewVotingHandler creates a new voting handler
func NewVotingHandler(svc *service.VotingService) *VotingHandler {
	return &VotingHandler{svc: svc}
}

// Public Endpoints

// View handles GET /api/voting
func (h *VotingHandler) View(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Voter identity for the userVote echo: session first, else email param
	voterID := middleware.GetUserID(ctx)
	if voterID == "" {
		voterID = strings.ToLower(strings.TrimSpace(r.URL.Query().Get("email")))
	}

	view, err := h.svc.View(ctx, voterID)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, view, nil)
}

// CastVote handles POST /api/voting/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CastVoteRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	var userID *string
	if id := middleware.GetUserID(ctx); id != "" {
		userID = &id
	}

	vote, err := h.svc.CastVote(ctx, userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, vote, nil)
}

// CreatePreOrder handles POST /api/voting/preorders
func (h *VotingHandler) CreatePreOrder(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePreOrderRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	preOrder, err := h.svc.CreatePreOrder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, preOrder, nil)
}

// Board Endpoints

// AddDesign handles POST /api/board/voting/designs
func (h *VotingHandler) AddDesign(w http.ResponseWriter, r *http.Request) {
	var req model.AddDesignRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	design, err := h.svc.AddDesign(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, design, nil)
}

// setRoundRequest is the body of PATCH /api/board/voting/round
type setRoundRequest struct {
	Open     bool       `json:"open"`
	ClosesAt *time.Time `json:"closesAt,omitempty"`
}

// SetRound handles PATCH /api/board/voting/round
func (h *VotingHandler) SetRound(w http.ResponseWriter, r *http.Request) {
	var req setRoundRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.svc.SetRound(r.Context(), req.Open, req.ClosesAt); err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]bool{"open": req.Open}, nil)
}
