package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pena-betica-escocesa/api/internal/database"
	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/pkg/jwt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	minPasswordLength = 8
	maxPasswordLength = 128
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService handles login and account creation
type AuthService struct {
	repo UserRepository
	jwt  *jwt.Service
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo   UserRepository
	JWTService *jwt.Service
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		repo: cfg.UserRepo,
		jwt:  cfg.JWTService,
	}
}

// Login verifies credentials and issues a signed token
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		// Burn a hash comparison anyway so response timing does not
		// reveal whether the email exists.
		_ = bcrypt.CompareHashAndPassword(
			[]byte("$2a$12$000000000000000000000uGZLKQyDiPUTAMOtCnGGaDNCBG1LfPG6"),
			[]byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Sign(jwt.Claims{
		Subject: user.ID,
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Role:    user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &model.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.jwt.GetExpiration()),
		User:      *user,
	}, nil
}

// CreateUser registers a new account. Role defaults to member; only the
// admin-token tool and seeding paths mint board accounts.
func (s *AuthService) CreateUser(ctx context.Context, email, name, password, role string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if !model.ValidEmail(email) {
		return nil, model.NewBadRequestError("invalid email format")
	}
	if len(password) < minPasswordLength {
		return nil, model.NewBadRequestError("password must be at least 8 characters")
	}
	if len(password) > maxPasswordLength {
		return nil, model.NewBadRequestError("password must be at most 128 characters")
	}
	if role == "" {
		role = jwt.RoleMember
	}
	if role != jwt.RoleMember && role != jwt.RoleBoard {
		return nil, model.NewBadRequestError("invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves an account by ID
func (s *AuthService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
