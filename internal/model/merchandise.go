package model

import (
	"strings"
	"time"
)

// Merchandise lives in its own flat JSON document, same format rules as
// the voting document.

// Product represents a catalog item. Prices are stored in cents to
// avoid floating-point money.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PriceCents  int       `json:"priceCents"`
	Currency    string    `json:"currency"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Sizes       []string  `json:"sizes,omitempty"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Order represents a merchandise order collected through the site. Payment
// happens offline at the peña, so an order is a reservation, not a charge.
type Order struct {
	ID         string      `json:"id"`
	Reference  string      `json:"reference"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Items      []OrderItem `json:"items"`
	TotalCents int         `json:"totalCents"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// OrderItem is one product line within an order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Size      *string `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Merchandise constraints
const (
	MaxProductNameLength = 150
	MaxOrderItems        = 20
	MaxOrderItemQuantity = 10
)

// CreateProductRequest is the board request to add a catalog item.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	PriceCents  int      `json:"priceCents"`
	Currency    string   `json:"currency"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	InStock     bool     `json:"inStock"`
}

// Validate validates a CreateProductRequest
func (r *CreateProductRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxProductNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name too long"})
	}

	if r.Description != nil && len(*r.Description) > MaxDescriptionLength {
		errors = append(errors, FieldError{Field: "description", Message: "description too long"})
	}

	if r.PriceCents <= 0 {
		errors = append(errors, FieldError{Field: "priceCents", Message: "price must be positive"})
	}

	if r.Currency != "EUR" && r.Currency != "GBP" {
		errors = append(errors, FieldError{Field: "currency", Message: "currency must be EUR or GBP"})
	}

	if r.ImageURL != nil && !validHTTPURL(*r.ImageURL) {
		errors = append(errors, FieldError{Field: "imageUrl", Message: "must be a valid http(s) URL"})
	}

	for _, s := range r.Sizes {
		if !ValidShirtSize(s) {
			errors = append(errors, FieldError{Field: "sizes", Message: "must be one of S, M, L, XL, XXL"})
			break
		}
	}

	return errors
}

// UpdateProductRequest is the board request to edit a catalog item. All
// fields optional; only provided fields change.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	PriceCents  *int     `json:"priceCents,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
}

// Validate validates an UpdateProductRequest
func (r *UpdateProductRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			errors = append(errors, FieldError{Field: "name", Message: "name cannot be empty"})
		} else if len(*r.Name) > MaxProductNameLength {
			errors = append(errors, FieldError{Field: "name", Message: "name too long"})
		}
	}

	if r.Description != nil && len(*r.Description) > MaxDescriptionLength {
		errors = append(errors, FieldError{Field: "description", Message: "description too long"})
	}

	if r.PriceCents != nil && *r.PriceCents <= 0 {
		errors = append(errors, FieldError{Field: "priceCents", Message: "price must be positive"})
	}

	if r.Currency != nil && *r.Currency != "EUR" && *r.Currency != "GBP" {
		errors = append(errors, FieldError{Field: "currency", Message: "currency must be EUR or GBP"})
	}

	if r.ImageURL != nil && !validHTTPURL(*r.ImageURL) {
		errors = append(errors, FieldError{Field: "imageUrl", Message: "must be a valid http(s) URL"})
	}

	for _, s := range r.Sizes {
		if !ValidShirtSize(s) {
			errors = append(errors, FieldError{Field: "sizes", Message: "must be one of S, M, L, XL, XXL"})
			break
		}
	}

	return errors
}

// CreateOrderRequest is the body of POST /api/merchandise/orders.
type CreateOrderRequest struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Items []OrderItem `json:"items"`
}

// Validate validates a CreateOrderRequest
func (r *CreateOrderRequest) Validate() []FieldError {
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

	if len(r.Items) == 0 {
		errors = append(errors, FieldError{Field: "items", Message: "at least one item is required"})
	} else if len(r.Items) > MaxOrderItems {
		errors = append(errors, FieldError{Field: "items", Message: "too many items"})
	}

	for _, item := range r.Items {
		if item.ProductID == "" {
			errors = append(errors, FieldError{Field: "items", Message: "productId is required on every item"})
			break
		}
		if item.Quantity < 1 || item.Quantity > MaxOrderItemQuantity {
			errors = append(errors, FieldError{Field: "items", Message: "item quantity must be between 1 and 10"})
			break
		}
		if item.Size != nil && !ValidShirtSize(*item.Size) {
			errors = append(errors, FieldError{Field: "items", Message: "size must be one of S, M, L, XL, XXL"})
			break
		}
	}

	return errors
}

// UpdateOrderStatusRequest is the board request to move an order through
// its lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Validate validates an UpdateOrderStatusRequest
func (r *UpdateOrderStatusRequest) Validate() []FieldError {
	var errors []FieldError

	if !ValidOrderStatus(r.Status) {
		errors = append(errors, FieldError{Field: "status", Message: "must be one of: pending, confirmed, delivered, cancelled"})
	}

	return errors
}
