package service

import (
	"context"
	"fmt"

	"github.com/pena-betica-escocesa/api/internal/model"
)

// NewsRepository defines the interface for news feed storage
type NewsRepository interface {
	Create(ctx context.Context, item *model.NewsItem) error
	Get(ctx context.Context, newsID string) (*model.NewsItem, error)
	List(ctx context.Context, category *string, limit int) ([]*model.NewsItem, error)
	Update(ctx context.Context, newsID string, updates map[string]interface{}) (*model.NewsItem, error)
	Delete(ctx context.Context, newsID string) error
	DeleteExpired(ctx context.Context) (int, error)
}

// NewsService handles the transfer news feed business logic
type NewsService struct {
	repo NewsRepository
}

// NewsServiceConfig holds configuration for the news service
type NewsServiceConfig struct {
	NewsRepo NewsRepository
}

// NewNewsService creates a new news service
func NewNewsService(cfg NewsServiceConfig) *NewsService {
	return &NewsService{repo: cfg.NewsRepo}
}

// List retrieves unexpired feed items, newest first
func (s *NewsService) List(ctx context.Context, category *string, limit int) ([]*model.NewsItem, error) {
	if category != nil && !model.ValidNewsCategory(*category) {
		return nil, model.NewBadRequestError("invalid category filter")
	}

	items, err := s.repo.List(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return items, nil
}

// Get retrieves one feed item
func (s *NewsService) Get(ctx context.Context, newsID string) (*model.NewsItem, error) {
	item, err := s.repo.Get(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("failed to get news item: %w", err)
	}
	if item == nil {
		return nil, ErrNewsNotFound
	}
	return item, nil
}

// Create publishes a feed item, for the board view
func (s *NewsService) Create(ctx context.Context, req *model.CreateNewsRequest) (*model.NewsItem, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	item := &model.NewsItem{
		Title:       req.Title,
		Body:        req.Body,
		Category:    req.Category,
		Reliability: req.Reliability,
		SourceName:  req.SourceName,
		SourceURL:   req.SourceURL,
		ExpiresAt:   req.ExpiresAt,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create news item: %w", err)
	}
	return item, nil
}

// Update edits a feed item, for the board view
func (s *NewsService) Update(ctx context.Context, newsID string, req *model.UpdateNewsRequest) (*model.NewsItem, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	existing, err := s.repo.Get(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("failed to get news item: %w", err)
	}
	if existing == nil {
		return nil, ErrNewsNotFound
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Reliability != nil {
		updates["reliability"] = *req.Reliability
	}
	if req.SourceName != nil {
		updates["source_name"] = *req.SourceName
	}
	if req.SourceURL != nil {
		updates["source_url"] = *req.SourceURL
	}
	if req.ExpiresAt != nil {
		updates["expires_at"] = *req.ExpiresAt
	}

	if len(updates) == 0 {
		return existing, nil
	}

	item, err := s.repo.Update(ctx, newsID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update news item: %w", err)
	}
	return item, nil
}

// Delete removes a feed item, for the board view
func (s *NewsService) Delete(ctx context.Context, newsID string) error {
	existing, err := s.repo.Get(ctx, newsID)
	if err != nil {
		return fmt.Errorf("failed to get news item: %w", err)
	}
	if existing == nil {
		return ErrNewsNotFound
	}

	if err := s.repo.Delete(ctx, newsID); err != nil {
		return fmt.Errorf("failed to delete news item: %w", err)
	}
	return nil
}

// PurgeExpired removes rumours past their expiry, used by the feed
// refresh job. Returns the number removed.
func (s *NewsService) PurgeExpired(ctx context.Context) (int, error) {
	count, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired news: %w", err)
	}
	return count, nil
}
