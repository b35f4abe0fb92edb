package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/pena-betica-escocesa/api/internal/middleware"
	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/service"
)

// RSVPHandler handles RSVP HTTP requests.
//
// The public endpoints keep the wire format of the original site so the
// embedded web client and pkg/rsvpclient keep working: flat JSON bodies,
// and rejections as {"error": "..."} instead of problem details. Board
// endpoints use the standard envelope.
type RSVPHandler struct {
	svc *service.RSVPService
}

// NewRSVPHandler creates a new RSVP handler
func NewRSVPHandler(svc *service.RSVPService) *RSVPHandler {
	return &RSVPHandler{svc: svc}
}

// writeRSVPError writes a legacy-format error body
func writeRSVPError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

// queryMatchID reads the optional match query parameter
func queryMatchID(r *http.Request) *string {
	if v := r.URL.Query().Get("match"); v != "" {
		return &v
	}
	return nil
}

// Public Endpoints

// Submit handles POST /api/rsvp
func (h *RSVPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SubmitRSVPRequest
	if err := DecodeJSON(r, &req); err != nil {
		writeRSVPError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}

	// The form may scope the submission by query parameter alone
	if req.MatchID == nil {
		req.MatchID = queryMatchID(r)
	}

	// An authenticated session overrides whatever the form carried
	if userID := middleware.GetUserID(ctx); userID != "" {
		req.UserID = &userID
	}

	resp, err := h.svc.Submit(ctx, &req)
	if err != nil {
		var problem *model.ProblemDetails
		switch {
		case errors.As(err, &problem):
			detail := problem.Detail
			if len(problem.Errors) > 0 {
				detail = problem.Errors[0].Message
			}
			writeRSVPError(w, problem.Status, detail)
		case errors.Is(err, service.ErrMatchNotFound):
			writeRSVPError(w, http.StatusNotFound, "partido no encontrado")
		case errors.Is(err, service.ErrRSVPClosed):
			writeRSVPError(w, http.StatusBadRequest, "las confirmaciones están cerradas")
		default:
			writeRSVPError(w, http.StatusInternalServerError, "error interno")
		}
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

// Attendees handles GET /api/rsvp/attendees
func (h *RSVPHandler) Attendees(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.AttendeeCount(r.Context(), queryMatchID(r))
	if err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			writeRSVPError(w, http.StatusNotFound, "partido no encontrado")
			return
		}
		writeRSVPError(w, http.StatusInternalServerError, "error interno")
		return
	}

	WriteJSON(w, http.StatusOK, model.AttendeeCountResponse{Count: count})
}

// Status handles GET /api/rsvp/status
func (h *RSVPHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var userID, email *string
	if id := middleware.GetUserID(ctx); id != "" {
		userID = &id
	} else if e := r.URL.Query().Get("email"); e != "" {
		email = &e
	} else {
		writeRSVPError(w, http.StatusBadRequest, "se requiere email o sesión iniciada")
		return
	}

	rsvp, err := h.svc.Status(ctx, queryMatchID(r), userID, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRSVPNotFound):
			writeRSVPError(w, http.StatusNotFound, "no se encontró confirmación")
		case errors.Is(err, service.ErrMatchNotFound):
			writeRSVPError(w, http.StatusNotFound, "partido no encontrado")
		default:
			writeRSVPError(w, http.StatusInternalServerError, "error interno")
		}
		return
	}

	resp := model.RSVPStatusResponse{
		Success:   true,
		Status:    rsvp.Status,
		Attendees: rsvp.Attendees,
		Message:   rsvp.Message,
		CreatedAt: rsvp.CreatedOn.Format(time.RFC3339),
	}
	if !rsvp.UpdatedOn.IsZero() && !rsvp.UpdatedOn.Equal(rsvp.CreatedOn) {
		updated := rsvp.UpdatedOn.Format(time.RFC3339)
		resp.UpdatedAt = &updated
	}

	WriteJSON(w, http.StatusOK, resp)
}

// Board Endpoints

// List handles GET /api/board/rsvps
func (h *RSVPHandler) List(w http.ResponseWriter, r *http.Request) {
	rsvps, err := h.svc.List(r.Context(), queryMatchID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, rsvps, nil)
}

// Delete handles DELETE /api/board/rsvps/{rsvpId}
func (h *RSVPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("rsvpId")); err != nil {
		handleError(w, err)
		return
	}

	WriteNoContent(w)
}
