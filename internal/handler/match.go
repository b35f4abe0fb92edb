package handler

import (
	"net/http"
	"strconv"

	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/service"
)

// MatchHandler handles match HTTP requests
type MatchHandler struct {
	svc *service.MatchService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(svc *service.MatchService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

// Public Endpoints

// List handles GET /api/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	upcomingOnly := r.URL.Query().Get("upcoming") == "true"

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			WriteError(w, model.NewBadRequestError("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	matches, err := h.svc.List(r.Context(), upcomingOnly, limit)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, matches, nil)
}

// Next handles GET /api/matches/next
func (h *MatchHandler) Next(w http.ResponseWriter, r *http.Request) {
	match, err := h.svc.Next(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, match, nil)
}

// GetByID handles GET /api/matches/{matchId}
func (h *MatchHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	match, err := h.svc.Get(r.Context(), r.PathValue("matchId"))
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, match, nil)
}

// Board Endpoints

// Create handles POST /api/board/matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMatchRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	match, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, match, nil)
}

// Update handles PATCH /api/board/matches/{matchId}
func (h *MatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateMatchRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	match, err := h.svc.Update(r.Context(), r.PathValue("matchId"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, match, nil)
}

// Delete handles DELETE /api/board/matches/{matchId}
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("matchId")); err != nil {
		handleError(w, err)
		return
	}

	WriteNoContent(w)
}
