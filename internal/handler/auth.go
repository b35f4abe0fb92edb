package handler

import (
	"net/http"

	"github.com/pena-betica-escocesa/api/internal/middleware"
	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/service"
	"github.com/pena-betica-escocesa/api/pkg/jwt"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	svc *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	resp, err := h.svc.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, resp, nil)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	user, err := h.svc.GetUser(ctx, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, user, nil)
}

// createUserRequest is the body of POST /api/board/users
type createUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// CreateUser handles POST /api/board/users
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if req.Role != "" && req.Role != jwt.RoleMember && req.Role != jwt.RoleBoard {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "role", Message: "role must be 'member' or 'board'"},
		}))
		return
	}

	user, err := h.svc.CreateUser(r.Context(), req.Email, req.Name, req.Password, req.Role)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, user, nil)
}
