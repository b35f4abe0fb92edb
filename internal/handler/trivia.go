package handler

import (
	"net/http"
	"strconv"

	"github.com/pena-betica-escocesa/api/internal/middleware"
	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/service"
)

// TriviaHandler handles daily trivia HTTP requests
type TriviaHandler struct {
	svc *service.TriviaService
}

// NewTriviaHandler creates a new trivia handler
func NewTriviaHandler(svc *service.TriviaService) *TriviaHandler {
	return &TriviaHandler{svc: svc}
}

// Public Endpoints

// DailyQuestions handles GET /api/trivia/questions
func (h *TriviaHandler) DailyQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.DailyQuestions(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]any{
		"date":      h.svc.GameDate(),
		"questions": questions,
	}, nil)
}

// checkAnswersRequest is the body of POST /api/trivia/check
type checkAnswersRequest struct {
	Picks map[string]int `json:"picks"`
}

// CheckAnswers handles POST /api/trivia/check
func (h *TriviaHandler) CheckAnswers(w http.ResponseWriter, r *http.Request) {
	var req checkAnswersRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	correct, err := h.svc.CheckAnswers(r.Context(), req.Picks)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]int{"correct": correct}, nil)
}

// Leaderboard handles GET /api/trivia/leaderboard
func (h *TriviaHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			WriteError(w, model.NewBadRequestError("limit must be a positive integer"))
			return
		}
		limit = n
	}

	entries, err := h.svc.Leaderboard(r.Context(), limit)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, entries, nil)
}

// Member Endpoints

// SubmitScore handles POST /api/trivia/scores
func (h *TriviaHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.SubmitScoreRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	score, err := h.svc.SubmitScore(ctx, userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, score, nil)
}

// MyScore handles GET /api/trivia/scores/me
func (h *TriviaHandler) MyScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	score, err := h.svc.MyScore(ctx, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, score, nil)
}

// Board Endpoints

// CreateQuestion handles POST /api/board/trivia/questions
func (h *TriviaHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req model.CreateQuestionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	question, err := h.svc.CreateQuestion(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, question, nil)
}

// ListQuestions handles GET /api/board/trivia/questions
func (h *TriviaHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.ListQuestions(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, questions, nil)
}

// setActiveRequest is the body of PATCH /api/board/trivia/questions/{questionId}
type setActiveRequest struct {
	Active bool `json:"active"`
}

// SetQuestionActive handles PATCH /api/board/trivia/questions/{questionId}
func (h *TriviaHandler) SetQuestionActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	question, err := h.svc.SetQuestionActive(r.Context(), r.PathValue("questionId"), req.Active)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, question, nil)
}

// DeleteQuestion handles DELETE /api/board/trivia/questions/{questionId}
func (h *TriviaHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteQuestion(r.Context(), r.PathValue("questionId")); err != nil {
		handleError(w, err)
		return
	}

	WriteNoContent(w)
}
