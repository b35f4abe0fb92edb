package model

import (
	"strings"
	"time"
)

// The shirt-design vote is persisted as a single JSON document
// (filestore.VotingDocument wraps these types). Key names follow the
// document format used by the public site, hence the camelCase tags.

// Design represents one candidate shirt design.
type Design struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ImageURL    string  `json:"imageUrl"`
	Description *string `json:"description,omitempty"`
	Active      bool    `json:"active"`
}

// DesignVote represents one voter's choice. One vote per voter per round;
// voters are identified by user id when authenticated, email otherwise.
type DesignVote struct {
	ID        string    `json:"id"`
	DesignID  string    `json:"designId"`
	VoterID   string    `json:"voterId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PreOrder represents a shirt pre-order interest.
type PreOrder struct {
	ID        string    `json:"id"`
	DesignID  string    `json:"designId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// Shirt sizes
var ShirtSizes = []string{"S", "M", "L", "XL", "XXL"}

// ValidShirtSize reports whether s is an offered size.
func ValidShirtSize(s string) bool {
	for _, size := range ShirtSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Voting constraints
const (
	MaxPreOrderQuantity = 10
	MaxDesignNameLength = 100
)

// CastVoteRequest is the body of POST /api/camiseta/voting/vote.
type CastVoteRequest struct {
	DesignID string  `json:"designId"`
	Email    *string `json:"email,omitempty"` // required when unauthenticated
}

// Validate validates a CastVoteRequest
func (r *CastVoteRequest) Validate() []FieldError {
	var errors []FieldError

	if r.DesignID == "" {
		errors = append(errors, FieldError{Field: "designId", Message: "designId is required"})
	}
	if r.Email != nil && !ValidEmail(*r.Email) {
		errors = append(errors, FieldError{Field: "email", Message: "invalid email format"})
	}

	return errors
}

// CreatePreOrderRequest is the body of POST /api/camiseta/voting/preorder.
type CreatePreOrderRequest struct {
	DesignID string `json:"designId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// Validate validates a CreatePreOrderRequest
func (r *CreatePreOrderRequest) Validate() []FieldError {
	var errors []FieldError

	if r.DesignID == "" {
		errors = append(errors, FieldError{Field: "designId", Message: "designId is required"})
	}

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

	if !ValidShirtSize(r.Size) {
		errors = append(errors, FieldError{Field: "size", Message: "must be one of S, M, L, XL, XXL"})
	}

	if r.Quantity < 1 {
		errors = append(errors, FieldError{Field: "quantity", Message: "quantity must be at least 1"})
	} else if r.Quantity > MaxPreOrderQuantity {
		errors = append(errors, FieldError{Field: "quantity", Message: "maximum 10 shirts per pre-order"})
	}

	return errors
}

// AddDesignRequest is the body of the board endpoint that adds a candidate design.
type AddDesignRequest struct {
	Name        string  `json:"name"`
	ImageURL    string  `json:"imageUrl"`
	Description *string `json:"description,omitempty"`
}

// Validate validates an AddDesignRequest
func (r *AddDesignRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxDesignNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name too long"})
	}

	if r.ImageURL == "" {
		errors = append(errors, FieldError{Field: "imageUrl", Message: "imageUrl is required"})
	} else if !validHTTPURL(r.ImageURL) {
		errors = append(errors, FieldError{Field: "imageUrl", Message: "must be a valid http(s) URL"})
	}

	if r.Description != nil && len(*r.Description) > MaxDescriptionLength {
		errors = append(errors, FieldError{Field: "description", Message: "description too long"})
	}

	return errors
}

// DesignTally pairs a design with its vote count for the public voting view.
type DesignTally struct {
	Design Design `json:"design"`
	Votes  int    `json:"votes"`
}

// VotingView is the body of GET /api/camiseta/voting.
type VotingView struct {
	Open      bool          `json:"open"`
	ClosesAt  *time.Time    `json:"closesAt,omitempty"`
	Designs   []DesignTally `json:"designs"`
	UserVote  *DesignVote   `json:"userVote,omitempty"`
	PreOrders int           `json:"preOrders"`
}
