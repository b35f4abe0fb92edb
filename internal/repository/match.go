package repository

import (
	"context"
	"errors"

	"github.com/pena-betica-escocesa/api/internal/database"
	"github.com/pena-betica-escocesa/api/internal/model"
)

// MatchRepository handles match data access
type MatchRepository struct {
	db database.Database
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db database.Database) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create creates a new match
func (r *MatchRepository) Create(ctx context.Context, match *model.Match) error {
	query := `
		CREATE match CONTENT {
			opponent: $opponent,
			competition: $competition,
			kickoff_at: <datetime>$kickoff_at,
			home_away: $home_away,
			venue: $venue,
			tv_channel: $tv_channel,
			stream_url: $stream_url,
			description: $description,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"opponent":    match.Opponent,
		"competition": match.Competition,
		"kickoff_at":  match.KickoffAt.UTC().Format("2006-01-02T15:04:05Z"),
		"home_away":   match.HomeAway,
		"venue":       match.Venue,
		"tv_channel":  match.TVChannel,
		"stream_url":  match.StreamURL,
		"description": match.Description,
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
	match.ID = convertSurrealID(created["id"])
	if t := getTime(created, "created_on"); t != nil {
		match.CreatedOn = *t
	}
	if t := getTime(created, "updated_on"); t != nil {
		match.UpdatedOn = *t
	}
	return nil
}

// Get retrieves a match by ID
func (r *MatchRepository) Get(ctx context.Context, matchID string) (*model.Match, error) {
	query := `SELECT * FROM type::record($match_id)`
	vars := map[string]interface{}{"match_id": matchID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseMatchResult(result)
}

// GetNextUpcoming retrieves the next match that has not kicked off yet.
// Returns nil when no future match is scheduled.
func (r *MatchRepository) GetNextUpcoming(ctx context.Context) (*model.Match, error) {
	query := `
		SELECT * FROM match
		WHERE kickoff_at > time::now()
		ORDER BY kickoff_at ASC
		LIMIT 1
	`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseMatchResult(result)
}

// List retrieves matches ordered by kickoff. When upcomingOnly is set,
// past matches are excluded.
func (r *MatchRepository) List(ctx context.Context, upcomingOnly bool, limit int) ([]*model.Match, error) {
	query := `SELECT * FROM match`
	if upcomingOnly {
		query += ` WHERE kickoff_at > time::now()`
	}
	query += ` ORDER BY kickoff_at ASC`

	vars := map[string]interface{}{}
	if limit > 0 {
		query += ` LIMIT $limit`
		vars["limit"] = limit
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseMatchesResult(result)
}

// Update updates a match
func (r *MatchRepository) Update(ctx context.Context, matchID string, updates map[string]interface{}) (*model.Match, error) {
	query := `UPDATE match SET updated_on = time::now()`
	vars := map[string]interface{}{"match_id": matchID}

	for key, value := range updates {
		query += ", " + key + " = $" + key
		vars[key] = value
	}

	query += ` WHERE id = type::record($match_id) RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseMatchResult(result)
}

// Delete deletes a match
func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	// The match and its confirmations go together or not at all, so a
	// crashed delete never leaves orphan RSVPs behind.
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE rsvp WHERE match_id = $match_id`,
		map[string]interface{}{"match_id": matchID})
	batch.Add(`DELETE match WHERE id = type::record($match_id)`,
		map[string]interface{}{"match_id": matchID})

	return batch.Execute(ctx, r.db)
}

func (r *MatchRepository) parseMatchResult(result interface{}) (*model.Match, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	match := &model.Match{
		ID:          convertSurrealID(data["id"]),
		Opponent:    getString(data, "opponent"),
		Competition: getString(data, "competition"),
		HomeAway:    getString(data, "home_away"),
		Venue:       getString(data, "venue"),
		TVChannel:   getStringPtr(data, "tv_channel"),
		StreamURL:   getStringPtr(data, "stream_url"),
		Description: getStringPtr(data, "description"),
	}

	if t := getTime(data, "kickoff_at"); t != nil {
		match.KickoffAt = *t
	}
	if t := getTime(data, "created_on"); t != nil {
		match.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		match.UpdatedOn = *t
	}

	return match, nil
}

func (r *MatchRepository) parseMatchesResult(result []interface{}) ([]*model.Match, error) {
	matches := make([]*model.Match, 0)
	for _, row := range extractQueryRows(result) {
		match, err := r.parseMatchResult(row)
		if err != nil {
			continue
		}
		matches = append(matches, match)
	}
	return matches, nil
}
