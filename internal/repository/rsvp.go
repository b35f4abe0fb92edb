package repository

import (
	"context"
	"errors"

	"github.com/pena-betica-escocesa/api/internal/database"
	"github.com/pena-betica-escocesa/api/internal/model"
)

// RSVPRepository handles match RSVP data access
type RSVPRepository struct {
	db database.Database
}

// NewRSVPRepository creates a new RSVP repository
func NewRSVPRepository(db database.Database) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// matchScope appends the match filter to a query. A nil matchID selects
// the unscoped records used when the site runs without match listings.
func matchScope(query string, vars map[string]interface{}, matchID *string) string {
	if matchID != nil {
		vars["match_id"] = *matchID
		return query + ` AND match_id = $match_id`
	}
	return query + ` AND match_id IS NONE`
}

// Create creates a new RSVP
func (r *RSVPRepository) Create(ctx context.Context, rsvp *model.RSVP) error {
	query := `
		CREATE rsvp CONTENT {
			match_id: $match_id,
			user_id: $user_id,
			name: $name,
			email: $email,
			attendees: $attendees,
			message: $message,
			whatsapp_interest: $whatsapp_interest,
			status: $status,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	status := rsvp.Status
	if status == "" {
		status = model.RSVPStatusConfirmed
	}

	vars := map[string]interface{}{
		"match_id":          rsvp.MatchID,
		"user_id":           rsvp.UserID,
		"name":              rsvp.Name,
		"email":             rsvp.Email,
		"attendees":         rsvp.Attendees,
		"message":           rsvp.Message,
		"whatsapp_interest": rsvp.WhatsappInterest,
		"status":            status,
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
	rsvp.ID = convertSurrealID(created["id"])
	rsvp.Status = status
	if t := getTime(created, "created_on"); t != nil {
		rsvp.CreatedOn = *t
	}
	if t := getTime(created, "updated_on"); t != nil {
		rsvp.UpdatedOn = *t
	}
	return nil
}

// Update rewrites the mutable fields of an existing RSVP
func (r *RSVPRepository) Update(ctx context.Context, rsvpID string, updates map[string]interface{}) (*model.RSVP, error) {
	query := `UPDATE rsvp SET updated_on = time::now()`
	vars := map[string]interface{}{"rsvp_id": rsvpID}

	for key, value := range updates {
		query += ", " + key + " = $" + key
		vars[key] = value
	}

	query += ` WHERE id = type::record($rsvp_id) RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseRSVPResult(result)
}

// GetByUser retrieves a user's RSVP for a match, nil when absent
func (r *RSVPRepository) GetByUser(ctx context.Context, matchID *string, userID string) (*model.RSVP, error) {
	query := `SELECT * FROM rsvp WHERE user_id = $user_id`
	vars := map[string]interface{}{"user_id": userID}
	query = matchScope(query, vars, matchID) + ` LIMIT 1`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseRSVPResult(result)
}

// GetByEmail retrieves an anonymous RSVP for a match by email, nil when absent
func (r *RSVPRepository) GetByEmail(ctx context.Context, matchID *string, email string) (*model.RSVP, error) {
	query := `SELECT * FROM rsvp WHERE user_id IS NONE AND email = $email`
	vars := map[string]interface{}{"email": email}
	query = matchScope(query, vars, matchID) + ` LIMIT 1`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseRSVPResult(result)
}

// ListByMatch retrieves all RSVPs for a match, oldest first
func (r *RSVPRepository) ListByMatch(ctx context.Context, matchID *string) ([]*model.RSVP, error) {
	query := `SELECT * FROM rsvp WHERE status = $status`
	vars := map[string]interface{}{"status": model.RSVPStatusConfirmed}
	query = matchScope(query, vars, matchID) + ` ORDER BY created_on ASC`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rsvps := make([]*model.RSVP, 0)
	for _, row := range extractQueryRows(result) {
		rsvp, err := r.parseRSVPResult(row)
		if err != nil {
			continue
		}
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, nil
}

// CountAttendees sums the attendees field across confirmed RSVPs for a match
func (r *RSVPRepository) CountAttendees(ctx context.Context, matchID *string) (int, error) {
	query := `SELECT math::sum(attendees) as count FROM rsvp WHERE status = $status`
	vars := map[string]interface{}{"status": model.RSVPStatusConfirmed}
	query = matchScope(query, vars, matchID) + ` GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if data, ok := result.(map[string]interface{}); ok {
		return getInt(data, "count"), nil
	}
	return 0, nil
}

// CountConfirmed counts confirmed RSVP records for a match
func (r *RSVPRepository) CountConfirmed(ctx context.Context, matchID *string) (int, error) {
	query := `SELECT count() as count FROM rsvp WHERE status = $status`
	vars := map[string]interface{}{"status": model.RSVPStatusConfirmed}
	query = matchScope(query, vars, matchID) + ` GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if data, ok := result.(map[string]interface{}); ok {
		return getInt(data, "count"), nil
	}
	return 0, nil
}

// Delete deletes an RSVP
func (r *RSVPRepository) Delete(ctx context.Context, rsvpID string) error {
	query := `DELETE rsvp WHERE id = type::record($rsvp_id)`
	vars := map[string]interface{}{"rsvp_id": rsvpID}

	return r.db.Execute(ctx, query, vars)
}

func (r *RSVPRepository) parseRSVPResult(result interface{}) (*model.RSVP, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	rsvp := &model.RSVP{
		ID:               convertSurrealID(data["id"]),
		MatchID:          getStringPtr(data, "match_id"),
		UserID:           getStringPtr(data, "user_id"),
		Name:             getString(data, "name"),
		Email:            getString(data, "email"),
		Attendees:        getInt(data, "attendees"),
		Message:          getStringPtr(data, "message"),
		WhatsappInterest: getBool(data, "whatsapp_interest"),
		Status:           getString(data, "status"),
	}

	if t := getTime(data, "created_on"); t != nil {
		rsvp.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		rsvp.UpdatedOn = *t
	}

	return rsvp, nil
}
