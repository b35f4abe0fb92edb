package repository

import (
	"context"
	"errors"

	"github.com/pena-betica-escocesa/api/internal/database"
	"github.com/pena-betica-escocesa/api/internal/model"
)

// NewsRepository handles news feed data access
type NewsRepository struct {
	db database.Database
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db database.Database) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create creates a news item
func (r *NewsRepository) Create(ctx context.Context, item *model.NewsItem) error {
	query := `
		CREATE news CONTENT {
			title: $title,
			body: $body,
			category: $category,
			reliability: $reliability,
			source_name: $source_name,
			source_url: $source_url,
			published_at: time::now(),
			expires_at: $expires_at,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"title":       item.Title,
		"body":        item.Body,
		"category":    item.Category,
		"reliability": item.Reliability,
		"source_name": item.SourceName,
		"source_url":  item.SourceURL,
		"expires_at":  item.ExpiresAt,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	rows := extractQueryRows(result)
	if len(rows) == 0 {
		return errors.New("no result returned")
	}
	created := rows[0]
	item.ID = convertSurrealID(created["id"])
	if t := getTime(created, "published_at"); t != nil {
		item.PublishedAt = *t
	}
	if t := getTime(created, "created_on"); t != nil {
		item.CreatedAt = *t
	}
	if t := getTime(created, "updated_on"); t != nil {
		item.UpdatedAt = *t
	}
	return nil
}

// Get retrieves a news item by ID
func (r *NewsRepository) Get(ctx context.Context, newsID string) (*model.NewsItem, error) {
	query := `SELECT * FROM type::record($news_id)`
	vars := map[string]interface{}{"news_id": newsID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseNewsResult(result)
}

// List retrieves unexpired news items, newest first, optionally filtered
// by category.
func (r *NewsRepository) List(ctx context.Context, category *string, limit int) ([]*model.NewsItem, error) {
	query := `
		SELECT * FROM news
		WHERE expires_at IS NONE OR expires_at > time::now()
	`
	vars := map[string]interface{}{}

	if category != nil {
		query += ` AND category = $category`
		vars["category"] = *category
	}

	query += ` ORDER BY published_at DESC`
	if limit > 0 {
		query += ` LIMIT $limit`
		vars["limit"] = limit
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	items := make([]*model.NewsItem, 0)
	for _, row := range extractQueryRows(result) {
		item, err := r.parseNewsResult(row)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// Update updates a news item
func (r *NewsRepository) Update(ctx context.Context, newsID string, updates map[string]interface{}) (*model.NewsItem, error) {
	query := `UPDATE news SET updated_on = time::now()`
	vars := map[string]interface{}{"news_id": newsID}

	for key, value := range updates {
		query += ", " + key + " = $" + key
		vars[key] = value
	}

	query += ` WHERE id = type::record($news_id) RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseNewsResult(result)
}

// Delete deletes a news item
func (r *NewsRepository) Delete(ctx context.Context, newsID string) error {
	query := `DELETE news WHERE id = type::record($news_id)`
	vars := map[string]interface{}{"news_id": newsID}

	return r.db.Execute(ctx, query, vars)
}

// DeleteExpired removes rumours whose expiry has passed. Returns the
// number of items removed.
func (r *NewsRepository) DeleteExpired(ctx context.Context) (int, error) {
	countQuery := `
		SELECT count() as count FROM news
		WHERE expires_at IS NOT NONE AND expires_at <= time::now()
		GROUP ALL
	`
	result, err := r.db.QueryOne(ctx, countQuery, nil)
	count := 0
	if err == nil {
		if data, ok := result.(map[string]interface{}); ok {
			count = getInt(data, "count")
		}
	} else if !errors.Is(err, database.ErrNotFound) {
		return 0, err
	}

	if count == 0 {
		return 0, nil
	}

	deleteQuery := `DELETE news WHERE expires_at IS NOT NONE AND expires_at <= time::now()`
	if err := r.db.Execute(ctx, deleteQuery, nil); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *NewsRepository) parseNewsResult(result interface{}) (*model.NewsItem, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	item := &model.NewsItem{
		ID:          convertSurrealID(data["id"]),
		Title:       getString(data, "title"),
		Body:        getString(data, "body"),
		Category:    getString(data, "category"),
		Reliability: getInt(data, "reliability"),
		SourceName:  getStringPtr(data, "source_name"),
		SourceURL:   getStringPtr(data, "source_url"),
		ExpiresAt:   getTime(data, "expires_at"),
	}

	if t := getTime(data, "published_at"); t != nil {
		item.PublishedAt = *t
	}
	if t := getTime(data, "created_on"); t != nil {
		item.CreatedAt = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		item.UpdatedAt = *t
	}

	return item, nil
}
