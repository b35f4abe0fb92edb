package repository

import (
	"context"
	"errors"

	"github.com/pena-betica-escocesa/api/internal/database"
	"github.com/pena-betica-escocesa/api/internal/model"
)

// ContactRepository handles contact form data access
type ContactRepository struct {
	db database.Database
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db database.Database) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new contact submission
func (r *ContactRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	query := `
		CREATE contact CONTENT {
			name: $name,
			email: $email,
			phone: $phone,
			type: $type,
			subject: $subject,
			message: $message,
			status: $status,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"name":    sub.Name,
		"email":   sub.Email,
		"phone":   sub.Phone,
		"type":    sub.Type,
		"subject": sub.Subject,
		"message": sub.Message,
		"status":  model.ContactStatusNew,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	rows := extractQueryRows(result)
	if len(rows) == 0 {
		return errors.New("no result returned")
	}
	created := rows[0]
	sub.ID = convertSurrealID(created["id"])
	sub.Status = model.ContactStatusNew
	if t := getTime(created, "created_on"); t != nil {
		sub.CreatedOn = *t
	}
	if t := getTime(created, "updated_on"); t != nil {
		sub.UpdatedOn = *t
	}
	return nil
}

// Get retrieves a contact submission by ID
func (r *ContactRepository) Get(ctx context.Context, contactID string) (*model.ContactSubmission, error) {
	query := `SELECT * FROM type::record($contact_id)`
	vars := map[string]interface{}{"contact_id": contactID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseContactResult(result)
}

// List retrieves contact submissions, newest first, optionally filtered
// by status.
func (r *ContactRepository) List(ctx context.Context, status *string) ([]*model.ContactSubmission, error) {
	query := `SELECT * FROM contact`
	vars := map[string]interface{}{}

	if status != nil {
		query += ` WHERE status = $status`
		vars["status"] = *status
	}

	query += ` ORDER BY created_on DESC`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	subs := make([]*model.ContactSubmission, 0)
	for _, row := range extractQueryRows(result) {
		sub, err := r.parseContactResult(row)
		if err != nil {
			continue
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// UpdateStatus moves a submission through its triage lifecycle
func (r *ContactRepository) UpdateStatus(ctx context.Context, contactID, status string) (*model.ContactSubmission, error) {
	query := `
		UPDATE contact SET status = $status, updated_on = time::now()
		WHERE id = type::record($contact_id) RETURN AFTER
	`
	vars := map[string]interface{}{
		"contact_id": contactID,
		"status":     status,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseContactResult(result)
}

func (r *ContactRepository) parseContactResult(result interface{}) (*model.ContactSubmission, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	sub := &model.ContactSubmission{
		ID:      convertSurrealID(data["id"]),
		Name:    getString(data, "name"),
		Email:   getString(data, "email"),
		Phone:   getStringPtr(data, "phone"),
		Type:    getString(data, "type"),
		Subject: getString(data, "subject"),
		Message: getString(data, "message"),
		Status:  getString(data, "status"),
	}

	if t := getTime(data, "created_on"); t != nil {
		sub.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		sub.UpdatedOn = *t
	}

	return sub, nil
}
