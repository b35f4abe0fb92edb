package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pena-betica-escocesa/api/internal/model"
)

// MatchRepository defines the interface for match storage
type MatchRepository interface {
	Create(ctx context.Context, match *model.Match) error
	Get(ctx context.Context, matchID string) (*model.Match, error)
	GetNextUpcoming(ctx context.Context) (*model.Match, error)
	List(ctx context.Context, upcomingOnly bool, limit int) ([]*model.Match, error)
	Update(ctx context.Context, matchID string, updates map[string]interface{}) (*model.Match, error)
	Delete(ctx context.Context, matchID string) error
}

// MatchService handles match business logic
type MatchService struct {
	repo MatchRepository
}

// MatchServiceConfig holds configuration for the match service
type MatchServiceConfig struct {
	MatchRepo MatchRepository
}

// NewMatchService creates a new match service
func NewMatchService(cfg MatchServiceConfig) *MatchService {
	return &MatchService{repo: cfg.MatchRepo}
}

// Create creates a new match
func (s *MatchService) Create(ctx context.Context, req *model.CreateMatchRequest) (*model.Match, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	kickoff, err := time.Parse(time.RFC3339, req.KickoffAt)
	if err != nil {
		return nil, model.NewBadRequestError("invalid kickoff_at format")
	}

	match := &model.Match{
		Opponent:    req.Opponent,
		Competition: req.Competition,
		KickoffAt:   kickoff,
		HomeAway:    req.HomeAway,
		Venue:       req.Venue,
		TVChannel:   req.TVChannel,
		StreamURL:   req.StreamURL,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

// Get retrieves a match by ID
func (s *MatchService) Get(ctx context.Context, matchID string) (*model.Match, error) {
	match, err := s.repo.Get(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	return match, nil
}

// Next retrieves the next upcoming match
func (s *MatchService) Next(ctx context.Context) (*model.Match, error) {
	match, err := s.repo.GetNextUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get next match: %w", err)
	}
	if match == nil {
		return nil, ErrNoUpcomingMatch
	}
	return match, nil
}

// List retrieves matches, optionally only upcoming ones
func (s *MatchService) List(ctx context.Context, upcomingOnly bool, limit int) ([]*model.Match, error) {
	matches, err := s.repo.List(ctx, upcomingOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// Update updates a match
func (s *MatchService) Update(ctx context.Context, matchID string, req *model.UpdateMatchRequest) (*model.Match, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	existing, err := s.repo.Get(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if existing == nil {
		return nil, ErrMatchNotFound
	}

	updates := map[string]interface{}{}
	if req.Opponent != nil {
		updates["opponent"] = *req.Opponent
	}
	if req.Competition != nil {
		updates["competition"] = *req.Competition
	}
	if req.KickoffAt != nil {
		kickoff, err := time.Parse(time.RFC3339, *req.KickoffAt)
		if err != nil {
			return nil, model.NewBadRequestError("invalid kickoff_at format")
		}
		updates["kickoff_at"] = kickoff.UTC().Format("2006-01-02T15:04:05Z")
	}
	if req.HomeAway != nil {
		updates["home_away"] = *req.HomeAway
	}
	if req.Venue != nil {
		updates["venue"] = *req.Venue
	}
	if req.TVChannel != nil {
		updates["tv_channel"] = *req.TVChannel
	}
	if req.StreamURL != nil {
		updates["stream_url"] = *req.StreamURL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) == 0 {
		return existing, nil
	}

	match, err := s.repo.Update(ctx, matchID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	return match, nil
}

// Delete deletes a match
func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	existing, err := s.repo.Get(ctx, matchID)
	if err != nil {
		return fmt.Errorf("failed to get match: %w", err)
	}
	if existing == nil {
		return ErrMatchNotFound
	}

	if err := s.repo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}
