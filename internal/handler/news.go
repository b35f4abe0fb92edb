package handler

import (
	"net/http"
	"strconv"

	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/service"
)

// NewsHandler handles transfer news HTTP requests
type NewsHandler struct {
	svc *service.NewsService
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(svc *service.NewsService) *NewsHandler {
	return &NewsHandler{svc: svc}
}

// Public Endpoints

// List handles GET /api/news
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	var category *string
	if v := r.URL.Query().Get("category"); v != "" {
		category = &v
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			WriteError(w, model.NewBadRequestError("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	items, err := h.svc.List(r.Context(), category, limit)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, items, nil)
}

// GetByID handles GET /api/news/{newsId}
func (h *NewsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), r.PathValue("newsId"))
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, item, nil)
}

// Board Endpoints

// Create handles POST /api/board/news
func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateNewsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	item, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, item, nil)
}

// Update handles PATCH /api/board/news/{newsId}
func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateNewsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	item, err := h.svc.Update(r.Context(), r.PathValue("newsId"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, item, nil)
}

// Delete handles DELETE /api/board/news/{newsId}
func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("newsId")); err != nil {
		handleError(w, err)
		return
	}

	WriteNoContent(w)
}
