package handler

import (
	"errors"
	"net/http"

	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrMatchNotFound):
		return model.NewNotFoundError("match")
	case errors.Is(err, service.ErrNoUpcomingMatch):
		return model.NewNotFoundError("upcoming match")
	case errors.Is(err, service.ErrRSVPNotFound):
		return model.NewNotFoundError("RSVP")
	case errors.Is(err, service.ErrContactNotFound):
		return model.NewNotFoundError("contact submission")
	case errors.Is(err, service.ErrDesignNotFound):
		return model.NewNotFoundError("design")
	case errors.Is(err, service.ErrProductNotFound):
		return model.NewNotFoundError("product")
	case errors.Is(err, service.ErrOrderNotFound):
		return model.NewNotFoundError("order")
	case errors.Is(err, service.ErrQuestionNotFound):
		return model.NewNotFoundError("question")
	case errors.Is(err, service.ErrNewsNotFound):
		return model.NewNotFoundError("news item")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrAlreadyVoted),
		errors.Is(err, service.ErrScoreAlreadyRecorded):
		return model.NewConflictError(err.Error())

	// ===== Domain State Errors → 400 =====
	case errors.Is(err, service.ErrVotingClosed),
		errors.Is(err, service.ErrVoterIDRequired),
		errors.Is(err, service.ErrRSVPClosed),
		errors.Is(err, service.ErrProductOutOfStock),
		errors.Is(err, service.ErrNoQuestionsAvailable):
		return model.NewBadRequestError(err.Error())

	// ===== Disabled Features → 404 =====
	case errors.Is(err, service.ErrFeatureDisabled):
		return model.NewNotFoundError("feature")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// handleError writes the appropriate problem response for a service error.
// Validation and bad-request problems pass through unchanged.
func handleError(w http.ResponseWriter, err error) {
	var pd *model.ProblemDetails
	if errors.As(err, &pd) {
		WriteError(w, pd)
		return
	}
	WriteError(w, MapServiceError(err))
}
