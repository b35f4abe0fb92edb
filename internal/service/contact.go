package service

import (
	"context"
	"fmt"

	"github.com/pena-betica-escocesa/api/internal/model"
)

// ContactRepository defines the interface for contact form storage
type ContactRepository interface {
	Create(ctx context.Context, sub *model.ContactSubmission) error
	Get(ctx context.Context, contactID string) (*model.ContactSubmission, error)
	List(ctx context.Context, status *string) ([]*model.ContactSubmission, error)
	UpdateStatus(ctx context.Context, contactID, status string) (*model.ContactSubmission, error)
}

// ContactNotifier receives a notification when a submission arrives.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, sub *model.ContactSubmission)
}

// ContactService handles contact form business logic
type ContactService struct {
	repo     ContactRepository
	notifier ContactNotifier
}

// ContactServiceConfig holds configuration for the contact service
type ContactServiceConfig struct {
	ContactRepo ContactRepository
	Notifier    ContactNotifier
}

// NewContactService creates a new contact service
func NewContactService(cfg ContactServiceConfig) *ContactService {
	return &ContactService{
		repo:     cfg.ContactRepo,
		notifier: cfg.Notifier,
	}
}

// Submit records a contact form submission
func (s *ContactService) Submit(ctx context.Context, req *model.CreateContactRequest) (*model.ContactSubmission, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	sub := &model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Type:    req.Type,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyContact(ctx, sub)
	}

	return sub, nil
}

// List retrieves submissions for the board view, optionally by status
func (s *ContactService) List(ctx context.Context, status *string) ([]*model.ContactSubmission, error) {
	if status != nil {
		switch *status {
		case model.ContactStatusNew, model.ContactStatusInProgress, model.ContactStatusResolved:
		default:
			return nil, model.NewBadRequestError("invalid status filter")
		}
	}

	subs, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	return subs, nil
}

// UpdateStatus moves a submission through its triage lifecycle
func (s *ContactService) UpdateStatus(ctx context.Context, contactID string, req *model.UpdateContactStatusRequest) (*model.ContactSubmission, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	existing, err := s.repo.Get(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact submission: %w", err)
	}
	if existing == nil {
		return nil, ErrContactNotFound
	}

	sub, err := s.repo.UpdateStatus(ctx, contactID, req.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}
	return sub, nil
}
