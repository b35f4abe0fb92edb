package handler

import (
	"net/http"

	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/service"
)

// ContactHandler handles contact form HTTP requests
type ContactHandler struct {
	svc *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.CreateContactRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	submission, err := h.svc.Submit(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, submission, nil)
}

// Board Endpoints

// List handles GET /api/board/contacts
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	var status *string
	if v := r.URL.Query().Get("status"); v != "" {
		status = &v
	}

	submissions, err := h.svc.List(r.Context(), status)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, submissions, nil)
}

// UpdateStatus handles PATCH /api/board/contacts/{contactId}
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateContactStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	submission, err := h.svc.UpdateStatus(r.Context(), r.PathValue("contactId"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, submission, nil)
}
