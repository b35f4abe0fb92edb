package model

import (
	"net/url"
	"strings"
	"time"
)

// Match represents a Betis fixture shown on the site. Kickoff times are
// stored in UTC; the watch party venue is the peña's pub unless overridden.
type Match struct {
	ID          string    `json:"id"`
	Opponent    string    `json:"opponent"`
	Competition string    `json:"competition"` // laliga, copa, europa, friendly
	KickoffAt   time.Time `json:"kickoff_at"`
	HomeAway    string    `json:"home_away"` // home, away
	Venue       string    `json:"venue"`
	TVChannel   *string   `json:"tv_channel,omitempty"`
	StreamURL   *string   `json:"stream_url,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Competition constants
const (
	CompetitionLaLiga   = "laliga"
	CompetitionCopa     = "copa"
	CompetitionEuropa   = "europa"
	CompetitionFriendly = "friendly"
)

// Home/away constants
const (
	MatchHome = "home"
	MatchAway = "away"
)

// IsUpcoming reports whether the match kicks off after now.
func (m *Match) IsUpcoming(now time.Time) bool {
	return m.KickoffAt.After(now)
}

// Constraints
const (
	MaxOpponentLength    = 100
	MaxVenueLength       = 200
	MaxDescriptionLength = 1000
)

// CreateMatchRequest represents a board request to create a match
type CreateMatchRequest struct {
	Opponent    string  `json:"opponent"`
	Competition string  `json:"competition"`
	KickoffAt   string  `json:"kickoff_at"` // RFC 3339
	HomeAway    string  `json:"home_away"`
	Venue       string  `json:"venue"`
	TVChannel   *string `json:"tv_channel,omitempty"`
	StreamURL   *string `json:"stream_url,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateMatchRequest represents a board request to update a match
type UpdateMatchRequest struct {
	Opponent    *string `json:"opponent,omitempty"`
	Competition *string `json:"competition,omitempty"`
	KickoffAt   *string `json:"kickoff_at,omitempty"`
	HomeAway    *string `json:"home_away,omitempty"`
	Venue       *string `json:"venue,omitempty"`
	TVChannel   *string `json:"tv_channel,omitempty"`
	StreamURL   *string `json:"stream_url,omitempty"`
	Description *string `json:"description,omitempty"`
}

func validCompetition(c string) bool {
	switch c {
	case CompetitionLaLiga, CompetitionCopa, CompetitionEuropa, CompetitionFriendly:
		return true
	}
	return false
}

func validHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate validates a CreateMatchRequest
func (r *CreateMatchRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Opponent) == "" {
		errors = append(errors, FieldError{Field: "opponent", Message: "opponent is required"})
	} else if len(r.Opponent) > MaxOpponentLength {
		errors = append(errors, FieldError{Field: "opponent", Message: "opponent too long"})
	}

	if !validCompetition(r.Competition) {
		errors = append(errors, FieldError{Field: "competition", Message: "must be laliga, copa, europa, or friendly"})
	}

	if r.KickoffAt == "" {
		errors = append(errors, FieldError{Field: "kickoff_at", Message: "kickoff_at is required"})
	} else if _, err := time.Parse(time.RFC3339, r.KickoffAt); err != nil {
		errors = append(errors, FieldError{Field: "kickoff_at", Message: "must be an RFC 3339 timestamp"})
	}

	if r.HomeAway != MatchHome && r.HomeAway != MatchAway {
		errors = append(errors, FieldError{Field: "home_away", Message: "must be home or away"})
	}

	if len(r.Venue) > MaxVenueLength {
		errors = append(errors, FieldError{Field: "venue", Message: "venue too long"})
	}

	if r.StreamURL != nil && !validHTTPURL(*r.StreamURL) {
		errors = append(errors, FieldError{Field: "stream_url", Message: "must be a valid http(s) URL"})
	}

	if r.Description != nil && len(*r.Description) > MaxDescriptionLength {
		errors = append(errors, FieldError{Field: "description", Message: "description too long"})
	}

	return errors
}

// Validate validates an UpdateMatchRequest
func (r *UpdateMatchRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Opponent != nil {
		if strings.TrimSpace(*r.Opponent) == "" {
			errors = append(errors, FieldError{Field: "opponent", Message: "opponent cannot be empty"})
		} else if len(*r.Opponent) > MaxOpponentLength {
			errors = append(errors, FieldError{Field: "opponent", Message: "opponent too long"})
		}
	}

	if r.Competition != nil && !validCompetition(*r.Competition) {
		errors = append(errors, FieldError{Field: "competition", Message: "must be laliga, copa, europa, or friendly"})
	}

	if r.KickoffAt != nil {
		if _, err := time.Parse(time.RFC3339, *r.KickoffAt); err != nil {
			errors = append(errors, FieldError{Field: "kickoff_at", Message: "must be an RFC 3339 timestamp"})
		}
	}

	if r.HomeAway != nil && *r.HomeAway != MatchHome && *r.HomeAway != MatchAway {
		errors = append(errors, FieldError{Field: "home_away", Message: "must be home or away"})
	}

	if r.Venue != nil && len(*r.Venue) > MaxVenueLength {
		errors = append(errors, FieldError{Field: "venue", Message: "venue too long"})
	}

	if r.StreamURL != nil && !validHTTPURL(*r.StreamURL) {
		errors = append(errors, FieldError{Field: "stream_url", Message: "must be a valid http(s) URL"})
	}

	if r.Description != nil && len(*r.Description) > MaxDescriptionLength {
		errors = append(errors, FieldError{Field: "description", Message: "description too long"})
	}

	return errors
}
