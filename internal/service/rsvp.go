package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pena-betica-escocesa/api/internal/model"
)

// RSVPRepository defines the interface for RSVP storage
type RSVPRepository interface {
	Create(ctx context.Context, rsvp *model.RSVP) error
	Update(ctx context.Context, rsvpID string, updates map[string]interface{}) (*model.RSVP, error)
	GetByUser(ctx context.Context, matchID *string, userID string) (*model.RSVP, error)
	GetByEmail(ctx context.Context, matchID *string, email string) (*model.RSVP, error)
	ListByMatch(ctx context.Context, matchID *string) ([]*model.RSVP, error)
	CountAttendees(ctx context.Context, matchID *string) (int, error)
	CountConfirmed(ctx context.Context, matchID *string) (int, error)
	Delete(ctx context.Context, rsvpID string) error
}

// RSVPMatchRepository is the subset of match storage the RSVP service needs
// to resolve the active match.
type RSVPMatchRepository interface {
	Get(ctx context.Context, matchID string) (*model.Match, error)
	GetNextUpcoming(ctx context.Context) (*model.Match, error)
}

// RSVPNotifier receives a notification when a new confirmation arrives.
type RSVPNotifier interface {
	NotifyRSVP(ctx context.Context, rsvp *model.RSVP, totalAttendees int)
}

// RSVPService handles match confirmation business logic
type RSVPService struct {
	repo      RSVPRepository
	matchRepo RSVPMatchRepository
	notifier  RSVPNotifier
}

// RSVPServiceConfig holds configuration for the RSVP service
type RSVPServiceConfig struct {
	RSVPRepo  RSVPRepository
	MatchRepo RSVPMatchRepository
	Notifier  RSVPNotifier
}

// NewRSVPService creates a new RSVP service
func NewRSVPService(cfg RSVPServiceConfig) *RSVPService {
	return &RSVPService{
		repo:      cfg.RSVPRepo,
		matchRepo: cfg.MatchRepo,
		notifier:  cfg.Notifier,
	}
}

// resolveMatch maps an optional explicit match id to the scope RSVPs are
// stored under. With no explicit id the next upcoming match is used; when
// no match is scheduled the nil scope keeps the form working as a plain
// "next gathering" list.
func (s *RSVPService) resolveMatch(ctx context.Context, explicit *string) (*string, error) {
	if explicit != nil && *explicit != "" {
		match, err := s.matchRepo.Get(ctx, *explicit)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve match: %w", err)
		}
		if match == nil {
			return nil, ErrMatchNotFound
		}
		id := match.ID
		return &id, nil
	}

	match, err := s.matchRepo.GetNextUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve next match: %w", err)
	}
	if match == nil {
		return nil, nil
	}
	id := match.ID
	return &id, nil
}

// Submit records or replaces a supporter's confirmation. Resubmitting with
// the same identity updates the existing record rather than duplicating it.
func (s *RSVPService) Submit(ctx context.Context, req *model.SubmitRSVPRequest) (*model.SubmitRSVPResponse, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	matchID, err := s.resolveMatch(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}

	existing, err := s.findExisting(ctx, matchID, req.UserID, req.Email)
	if err != nil {
		return nil, err
	}

	var rsvp *model.RSVP
	isNew := existing == nil
	if isNew {
		rsvp = &model.RSVP{
			MatchID:          matchID,
			UserID:           req.UserID,
			Name:             req.Name,
			Email:            req.Email,
			Attendees:        req.Attendees,
			Message:          req.Message,
			WhatsappInterest: req.WhatsappInterest,
			Status:           model.RSVPStatusConfirmed,
		}
		if err := s.repo.Create(ctx, rsvp); err != nil {
			return nil, fmt.Errorf("failed to create RSVP: %w", err)
		}
	} else {
		updates := map[string]interface{}{
			"name":              req.Name,
			"attendees":         req.Attendees,
			"message":           req.Message,
			"whatsapp_interest": req.WhatsappInterest,
			"status":            model.RSVPStatusConfirmed,
		}
		rsvp, err = s.repo.Update(ctx, existing.ID, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to update RSVP: %w", err)
		}
	}

	totalAttendees, err := s.repo.CountAttendees(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendees: %w", err)
	}
	confirmedCount, err := s.repo.CountConfirmed(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to count confirmations: %w", err)
	}

	if isNew && s.notifier != nil {
		s.notifier.NotifyRSVP(ctx, rsvp, totalAttendees)
	}

	slog.Info("rsvp recorded",
		slog.String("rsvp_id", rsvp.ID),
		slog.Bool("new", isNew),
		slog.Int("attendees", rsvp.Attendees),
		slog.Int("total_attendees", totalAttendees))

	return &model.SubmitRSVPResponse{
		Success:        true,
		Message:        model.MsgRSVPReceived,
		TotalAttendees: totalAttendees,
		ConfirmedCount: confirmedCount,
	}, nil
}

// Status retrieves a supporter's confirmation for a match. userID takes
// precedence over email as the lookup identity.
func (s *RSVPService) Status(ctx context.Context, explicitMatch *string, userID, email *string) (*model.RSVP, error) {
	matchID, err := s.resolveMatch(ctx, explicitMatch)
	if err != nil {
		return nil, err
	}

	rsvp, err := s.findExisting(ctx, matchID, userID, valueOrEmpty(email))
	if err != nil {
		return nil, err
	}
	if rsvp == nil {
		return nil, ErrRSVPNotFound
	}
	return rsvp, nil
}

// AttendeeCount returns the confirmed headcount for a match
func (s *RSVPService) AttendeeCount(ctx context.Context, explicitMatch *string) (int, error) {
	matchID, err := s.resolveMatch(ctx, explicitMatch)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.CountAttendees(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendees: %w", err)
	}
	return count, nil
}

// List retrieves all confirmations for a match, for the board view
func (s *RSVPService) List(ctx context.Context, explicitMatch *string) ([]*model.RSVP, error) {
	matchID, err := s.resolveMatch(ctx, explicitMatch)
	if err != nil {
		return nil, err
	}

	rsvps, err := s.repo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list RSVPs: %w", err)
	}
	return rsvps, nil
}

// Delete removes a confirmation, for the board view
func (s *RSVPService) Delete(ctx context.Context, rsvpID string) error {
	if err := s.repo.Delete(ctx, rsvpID); err != nil {
		return fmt.Errorf("failed to delete RSVP: %w", err)
	}
	return nil
}

func (s *RSVPService) findExisting(ctx context.Context, matchID *string, userID *string, email string) (*model.RSVP, error) {
	if userID != nil && *userID != "" {
		rsvp, err := s.repo.GetByUser(ctx, matchID, *userID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up RSVP: %w", err)
		}
		if rsvp != nil {
			return rsvp, nil
		}
	}
	if email != "" {
		rsvp, err := s.repo.GetByEmail(ctx, matchID, email)
		if err != nil {
			return nil, fmt.Errorf("failed to look up RSVP: %w", err)
		}
		return rsvp, nil
	}
	return nil, nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
