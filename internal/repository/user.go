package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/pena-betica-escocesa/api/internal/database"
	"github.com/pena-betica-escocesa/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. Emails are stored lowercased and must be
// unique.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			email: $email,
			name: $name,
			role: $role,
			password_hash: $password_hash,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"email":         strings.ToLower(user.Email),
		"name":          user.Name,
		"role":          user.Role,
		"password_hash": user.PasswordHash,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return database.ErrDuplicate
		}
		return err
	}

	rows := extractQueryRows(result)
	if len(rows) == 0 {
		return errors.New("no result returned")
	}
	created := rows[0]
	user.ID = convertSurrealID(created["id"])
	user.Email = strings.ToLower(user.Email)
	if t := getTime(created, "created_on"); t != nil {
		user.CreatedAt = *t
	}
	if t := getTime(created, "updated_on"); t != nil {
		user.UpdatedAt = *t
	}
	return nil
}

// Get retrieves a user by ID, nil when absent
func (r *UserRepository) Get(ctx context.Context, userID string) (*model.User, error) {
	query := `SELECT * FROM type::record($user_id)`
	vars := map[string]interface{}{"user_id": userID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseUserResult(result)
}

// GetByEmail retrieves a user by email, nil when absent
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": strings.ToLower(email)}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseUserResult(result)
}

func (r *UserRepository) parseUserResult(result interface{}) (*model.User, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	user := &model.User{
		ID:           convertSurrealID(data["id"]),
		Email:        getString(data, "email"),
		Name:         getString(data, "name"),
		Role:         getString(data, "role"),
		PasswordHash: getString(data, "password_hash"),
	}

	if t := getTime(data, "created_on"); t != nil {
		user.CreatedAt = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		user.UpdatedAt = *t
	}

	return user, nil
}
