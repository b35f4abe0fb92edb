package model

import (
	"strings"
	"time"
)

// ContactSubmission represents a message sent through the contact form.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Type      string    `json:"type"`   // general, rsvp, feedback
	Status    string    `json:"status"` // new, in_progress, resolved
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Contact type constants
const (
	ContactTypeGeneral  = "general"
	ContactTypeRSVP     = "rsvp"
	ContactTypeFeedback = "feedback"
)

// Contact status constants
const (
	ContactStatusNew        = "new"
	ContactStatusInProgress = "in_progress"
	ContactStatusResolved   = "resolved"
)

// Constraints
const (
	MaxContactNameLength    = 100
	MaxContactSubjectLength = 200
	MaxContactMessageLength = 2000
	MaxContactPhoneLength   = 30
)

// CreateContactRequest is the body of POST /api/contact.
type CreateContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Type    string  `json:"type"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
}

// Validate validates a CreateContactRequest
func (r *CreateContactRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxContactNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name too long"})
	}

	if r.Email == "" {
		errors = append(errors, FieldError{Field: "email", Message: "email is required"})
	} else if !ValidEmail(r.Email) {
		errors = append(errors, FieldError{Field: "email", Message: "invalid email format"})
	}

	if r.Phone != nil && len(*r.Phone) > MaxContactPhoneLength {
		errors = append(errors, FieldError{Field: "phone", Message: "phone too long"})
	}

	switch r.Type {
	case ContactTypeGeneral, ContactTypeRSVP, ContactTypeFeedback:
	default:
		errors = append(errors, FieldError{Field: "type", Message: "must be general, rsvp, or feedback"})
	}

	if strings.TrimSpace(r.Subject) == "" {
		errors = append(errors, FieldError{Field: "subject", Message: "subject is required"})
	} else if len(r.Subject) > MaxContactSubjectLength {
		errors = append(errors, FieldError{Field: "subject", Message: "subject too long"})
	}

	if strings.TrimSpace(r.Message) == "" {
		errors = append(errors, FieldError{Field: "message", Message: "message is required"})
	} else if len(r.Message) > MaxContactMessageLength {
		errors = append(errors, FieldError{Field: "message", Message: "message too long"})
	}

	return errors
}

// UpdateContactStatusRequest is the body of the board status transition endpoint.
type UpdateContactStatusRequest struct {
	Status string `json:"status"`
}

// Validate validates an UpdateContactStatusRequest
func (r *UpdateContactStatusRequest) Validate() []FieldError {
	switch r.Status {
	case ContactStatusNew, ContactStatusInProgress, ContactStatusResolved:
		return nil
	}
	return []FieldError{{Field: "status", Message: "must be new, in_progress, or resolved"}}
}
