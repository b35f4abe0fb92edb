package model

import (
	"regexp"
	"strings"
	"time"
)

// RSVP represents one supporter's confirmation for a match watch party.
// The store enforces at most one record per (user, match) pair; anonymous
// submissions are keyed by email instead.
type RSVP struct {
	ID               string    `json:"id"`
	MatchID          *string   `json:"match_id,omitempty"` // nil for the unscoped mode
	UserID           *string   `json:"user_id,omitempty"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Attendees        int       `json:"attendees"`
	Message          *string   `json:"message,omitempty"`
	WhatsappInterest bool      `json:"whatsapp_interest"`
	Status           string    `json:"status"` // confirmed
	CreatedOn        time.Time `json:"created_on"`
	UpdatedOn        time.Time `json:"updated_on"`
}

// RSVPStatusConfirmed is the only persisted status; an absent record means
// the supporter has not confirmed.
const RSVPStatusConfirmed = "confirmed"

// MsgRSVPReceived is the success message returned on accepted submissions.
const MsgRSVPReceived = "Confirmación recibida correctamente"

// Constraints
const (
	MaxRSVPNameLength    = 100
	MaxRSVPMessageLength = 500
	MaxRSVPAttendees     = 10
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// SubmitRSVPRequest is the body of POST /api/rsvp. Field names follow the
// public site's form payload.
type SubmitRSVPRequest struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Attendees        int     `json:"attendees"`
	Message          *string `json:"message,omitempty"`
	WhatsappInterest bool    `json:"whatsappInterest"`
	MatchID          *string `json:"matchId,omitempty"`
	UserID           *string `json:"userId,omitempty"`
}

// Validate validates a SubmitRSVPRequest
func (r *SubmitRSVPRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxRSVPNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name too long"})
	}

	if r.Email == "" {
		errors = append(errors, FieldError{Field: "email", Message: "email is required"})
	} else if !ValidEmail(r.Email) {
		errors = append(errors, FieldError{Field: "email", Message: "invalid email format"})
	}

	if r.Attendees < 1 {
		errors = append(errors, FieldError{Field: "attendees", Message: "attendees must be at least 1"})
	} else if r.Attendees > MaxRSVPAttendees {
		errors = append(errors, FieldError{Field: "attendees", Message: "maximum 10 attendees per confirmation"})
	}

	if r.Message != nil && len(*r.Message) > MaxRSVPMessageLength {
		errors = append(errors, FieldError{Field: "message", Message: "message too long"})
	}

	return errors
}

// AttendeeCountResponse is the body of GET /api/rsvp/attendees.
type AttendeeCountResponse struct {
	Count int `json:"count"`
}

// RSVPStatusResponse is the body of GET /api/rsvp/status for an existing
// record. Timestamps are RFC 3339 strings on the wire.
type RSVPStatusResponse struct {
	Success   bool    `json:"success"`
	Status    string  `json:"status"`
	Attendees int     `json:"attendees"`
	Message   *string `json:"message,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

// SubmitRSVPResponse is the body of an accepted POST /api/rsvp.
type SubmitRSVPResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	TotalAttendees int    `json:"totalAttendees"`
	ConfirmedCount int    `json:"confirmedCount"`
}
