package model

import (
	"strings"
	"time"
)

// NewsItem is one entry in the transfer news and rumours feed.
type NewsItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Category    string     `json:"category"`
	Reliability int        `json:"reliability"` // 1 (pub talk) to 5 (official)
	SourceName  *string    `json:"source_name,omitempty"`
	SourceURL   *string    `json:"source_url,omitempty"`
	PublishedAt time.Time  `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// News categories
const (
	NewsCategoryFichaje = "fichaje"
	NewsCategoryRumor   = "rumor"
	NewsCategoryNoticia = "noticia"
)

// ValidNewsCategory reports whether c is a known news category.
func ValidNewsCategory(c string) bool {
	switch c {
	case NewsCategoryFichaje, NewsCategoryRumor, NewsCategoryNoticia:
		return true
	}
	return false
}

// News constraints
const (
	MaxNewsTitleLength = 200
	MaxNewsBodyLength  = 5000
	MinReliability     = 1
	MaxReliability     = 5
)

// CreateNewsRequest is the board request to publish a feed item.
type CreateNewsRequest struct {
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Category    string     `json:"category"`
	Reliability int        `json:"reliability"`
	SourceName  *string    `json:"source_name,omitempty"`
	SourceURL   *string    `json:"source_url,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// Validate validates a CreateNewsRequest
func (r *CreateNewsRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Title) == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > MaxNewsTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: "title too long"})
	}

	if strings.TrimSpace(r.Body) == "" {
		errors = append(errors, FieldError{Field: "body", Message: "body is required"})
	} else if len(r.Body) > MaxNewsBodyLength {
		errors = append(errors, FieldError{Field: "body", Message: "body too long"})
	}

	if !ValidNewsCategory(r.Category) {
		errors = append(errors, FieldError{Field: "category", Message: "must be one of: fichaje, rumor, noticia"})
	}

	if r.Reliability < MinReliability || r.Reliability > MaxReliability {
		errors = append(errors, FieldError{Field: "reliability", Message: "reliability must be between 1 and 5"})
	}

	if r.SourceURL != nil && !validHTTPURL(*r.SourceURL) {
		errors = append(errors, FieldError{Field: "source_url", Message: "must be a valid http(s) URL"})
	}

	return errors
}

// UpdateNewsRequest is the board request to edit a feed item. All fields
// optional; only provided fields change.
type UpdateNewsRequest struct {
	Title       *string    `json:"title,omitempty"`
	Body        *string    `json:"body,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Reliability *int       `json:"reliability,omitempty"`
	SourceName  *string    `json:"source_name,omitempty"`
	SourceURL   *string    `json:"source_url,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// Validate validates an UpdateNewsRequest
func (r *UpdateNewsRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			errors = append(errors, FieldError{Field: "title", Message: "title cannot be empty"})
		} else if len(*r.Title) > MaxNewsTitleLength {
			errors = append(errors, FieldError{Field: "title", Message: "title too long"})
		}
	}

	if r.Body != nil {
		if strings.TrimSpace(*r.Body) == "" {
			errors = append(errors, FieldError{Field: "body", Message: "body cannot be empty"})
		} else if len(*r.Body) > MaxNewsBodyLength {
			errors = append(errors, FieldError{Field: "body", Message: "body too long"})
		}
	}

	if r.Category != nil && !ValidNewsCategory(*r.Category) {
		errors = append(errors, FieldError{Field: "category", Message: "must be one of: fichaje, rumor, noticia"})
	}

	if r.Reliability != nil && (*r.Reliability < MinReliability || *r.Reliability > MaxReliability) {
		errors = append(errors, FieldError{Field: "reliability", Message: "reliability must be between 1 and 5"})
	}

	if r.SourceURL != nil && !validHTTPURL(*r.SourceURL) {
		errors = append(errors, FieldError{Field: "source_url", Message: "must be a valid http(s) URL"})
	}

	return errors
}
