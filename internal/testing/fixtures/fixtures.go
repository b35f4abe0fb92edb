// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	user := f.CreateUser(t)
//	match := f.CreateMatch(t)
//	rsvp := f.CreateRSVP(t, match)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/pena-betica-escocesa/api/internal/database"
	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

// Factory creates test entities in the database
type Factory struct {
	db database.Database
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{db: db}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Email    string
	Name     string
	Password string
	Role     string
}

// CreateUser creates a member user with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Email:    fmt.Sprintf("socio_%s@test.local", randomID()),
		Name:     fmt.Sprintf("Socio %s", randomID()),
		Password: "testpass123",
		Role:     jwt.RoleMember,
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	query := `
		CREATE user CONTENT {
			email: $email,
			name: $name,
			role: $role,
			password_hash: $hash,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"email": o.Email,
		"name":  o.Name,
		"role":  o.Role,
		"hash":  string(hash),
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}

	row := firstRow(t, results, "user")
	return &model.User{
		ID:    getString(row, "id"),
		Email: getString(row, "email"),
		Name:  getString(row, "name"),
		Role:  getString(row, "role"),
	}
}

// CreateBoardUser creates a user with the board role
func (f *Factory) CreateBoardUser(t *testing.T) *model.User {
	return f.CreateUser(t, func(o *UserOpts) {
		o.Role = jwt.RoleBoard
	})
}

// ============================================================================
// Match Fixtures
// ============================================================================

// MatchOpts customizes match creation
type MatchOpts struct {
	Opponent    string
	Competition string
	KickoffAt   time.Time
	HomeAway    string
	Venue       string
}

// CreateMatch creates an upcoming fixture
func (f *Factory) CreateMatch(t *testing.T, opts ...func(*MatchOpts)) *model.Match {
	t.Helper()

	o := &MatchOpts{
		Opponent:    "Sevilla FC",
		Competition: model.CompetitionLaLiga,
		KickoffAt:   time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second),
		HomeAway:    model.MatchHome,
		Venue:       "Malone's, Edinburgh",
	}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		CREATE match CONTENT {
			opponent: $opponent,
			competition: $competition,
			kickoff_at: <datetime>$kickoff_at,
			home_away: $home_away,
			venue: $venue,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"opponent":    o.Opponent,
		"competition": o.Competition,
		"kickoff_at":  o.KickoffAt.Format("2006-01-02T15:04:05Z"),
		"home_away":   o.HomeAway,
		"venue":       o.Venue,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create match: %v", err)
	}

	row := firstRow(t, results, "match")
	return &model.Match{
		ID:          getString(row, "id"),
		Opponent:    getString(row, "opponent"),
		Competition: getString(row, "competition"),
		KickoffAt:   o.KickoffAt,
		HomeAway:    getString(row, "home_away"),
		Venue:       getString(row, "venue"),
	}
}

// CreatePastMatch creates a fixture that already kicked off
func (f *Factory) CreatePastMatch(t *testing.T) *model.Match {
	return f.CreateMatch(t, func(o *MatchOpts) {
		o.KickoffAt = time.Now().Add(-72 * time.Hour).UTC().Truncate(time.Second)
	})
}

// ============================================================================
// RSVP Fixtures
// ============================================================================

// RSVPOpts customizes RSVP creation
type RSVPOpts struct {
	MatchID          *string
	UserID           *string
	Name             string
	Email            string
	Attendees        int
	WhatsappInterest bool
}

// CreateRSVP creates a confirmed RSVP for the given match. Pass nil for an
// unscoped confirmation.
func (f *Factory) CreateRSVP(t *testing.T, match *model.Match, opts ...func(*RSVPOpts)) *model.RSVP {
	t.Helper()

	o := &RSVPOpts{
		Name:      fmt.Sprintf("Bético %s", randomID()),
		Email:     fmt.Sprintf("betico_%s@test.local", randomID()),
		Attendees: 2,
	}
	if match != nil {
		o.MatchID = &match.ID
	}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		CREATE rsvp CONTENT {
			match_id: $match_id,
			user_id: $user_id,
			name: $name,
			email: $email,
			attendees: $attendees,
			whatsapp_interest: $whatsapp_interest,
			status: $status,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"match_id":          o.MatchID,
		"user_id":           o.UserID,
		"name":              o.Name,
		"email":             o.Email,
		"attendees":         o.Attendees,
		"whatsapp_interest": o.WhatsappInterest,
		"status":            model.RSVPStatusConfirmed,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create rsvp: %v", err)
	}

	row := firstRow(t, results, "rsvp")
	return &model.RSVP{
		ID:               getString(row, "id"),
		MatchID:          o.MatchID,
		UserID:           o.UserID,
		Name:             getString(row, "name"),
		Email:            getString(row, "email"),
		Attendees:        o.Attendees,
		WhatsappInterest: o.WhatsappInterest,
		Status:           model.RSVPStatusConfirmed,
	}
}

// ============================================================================
// Contact Fixtures
// ============================================================================

// ContactOpts customizes contact submission creation
type ContactOpts struct {
	Name    string
	Email   string
	Type    string
	Subject string
	Message string
	Status  string
}

// CreateContact creates a contact form submission
func (f *Factory) CreateContact(t *testing.T, opts ...func(*ContactOpts)) *model.ContactSubmission {
	t.Helper()

	o := &ContactOpts{
		Name:    fmt.Sprintf("Visitante %s", randomID()),
		Email:   fmt.Sprintf("contact_%s@test.local", randomID()),
		Type:    model.ContactTypeGeneral,
		Subject: "Visita a Edimburgo",
		Message: "Estaré en Edimburgo el fin de semana del derbi.",
		Status:  model.ContactStatusNew,
	}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		CREATE contact CONTENT {
			name: $name,
			email: $email,
			type: $type,
			subject: $subject,
			message: $message,
			status: $status,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"name":    o.Name,
		"email":   o.Email,
		"type":    o.Type,
		"subject": o.Subject,
		"message": o.Message,
		"status":  o.Status,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create contact: %v", err)
	}

	row := firstRow(t, results, "contact")
	return &model.ContactSubmission{
		ID:      getString(row, "id"),
		Name:    o.Name,
		Email:   o.Email,
		Type:    o.Type,
		Subject: o.Subject,
		Message: o.Message,
		Status:  o.Status,
	}
}

// ============================================================================
// News Fixtures
// ============================================================================

// NewsOpts customizes news item creation
type NewsOpts struct {
	Title       string
	Body        string
	Category    string
	Reliability int
	ExpiresAt   *time.Time
}

// CreateNews creates a transfer news item
func (f *Factory) CreateNews(t *testing.T, opts ...func(*NewsOpts)) *model.NewsItem {
	t.Helper()

	o := &NewsOpts{
		Title:       fmt.Sprintf("Rumor %s", randomID()),
		Body:        "El Betis sigue de cerca al delantero.",
		Category:    model.NewsCategoryRumor,
		Reliability: 2,
	}
	for _, fn := range opts {
		fn(o)
	}

	var expires interface{}
	if o.ExpiresAt != nil {
		expires = o.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z")
	}

	query := `
		CREATE news CONTENT {
			title: $title,
			body: $body,
			category: $category,
			reliability: $reliability,
			published_at: time::now(),
			expires_at: $expires_at,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"title":       o.Title,
		"body":        o.Body,
		"category":    o.Category,
		"reliability": o.Reliability,
		"expires_at":  expires,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create news: %v", err)
	}

	row := firstRow(t, results, "news")
	return &model.NewsItem{
		ID:          getString(row, "id"),
		Title:       o.Title,
		Body:        o.Body,
		Category:    o.Category,
		Reliability: o.Reliability,
		ExpiresAt:   o.ExpiresAt,
	}
}

// ============================================================================
// Trivia Fixtures
// ============================================================================

// QuestionOpts customizes trivia question creation
type QuestionOpts struct {
	Category     string
	Question     string
	Answers      []string
	CorrectIndex int
	Active       bool
}

// CreateQuestion creates an active trivia question
func (f *Factory) CreateQuestion(t *testing.T, opts ...func(*QuestionOpts)) *model.TriviaQuestion {
	t.Helper()

	o := &QuestionOpts{
		Category:     model.TriviaCategoryBetis,
		Question:     fmt.Sprintf("¿Pregunta %s?", randomID()),
		Answers:      []string{"Joaquín", "Rubén Castro", "Alfonso", "Denílson"},
		CorrectIndex: 0,
		Active:       true,
	}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		CREATE trivia_question CONTENT {
			category: $category,
			question: $question,
			answers: $answers,
			correct_index: $correct_index,
			active: $active,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"category":      o.Category,
		"question":      o.Question,
		"answers":       o.Answers,
		"correct_index": o.CorrectIndex,
		"active":        o.Active,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create trivia question: %v", err)
	}

	row := firstRow(t, results, "trivia_question")
	return &model.TriviaQuestion{
		ID:           getString(row, "id"),
		Category:     o.Category,
		Question:     o.Question,
		Answers:      o.Answers,
		CorrectIndex: o.CorrectIndex,
		Active:       o.Active,
	}
}

// CreateScore records a daily trivia score for a user
func (f *Factory) CreateScore(t *testing.T, user *model.User, date string, score, total int) *model.DailyScore {
	t.Helper()

	query := `
		CREATE trivia_score CONTENT {
			user_id: $user_id,
			date: $date,
			score: $score,
			total: $total,
			duration_s: $duration_s,
			created_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"user_id":    user.ID,
		"date":       date,
		"score":      score,
		"total":      total,
		"duration_s": 45,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create trivia score: %v", err)
	}

	row := firstRow(t, results, "trivia_score")
	return &model.DailyScore{
		ID:        getString(row, "id"),
		UserID:    user.ID,
		Date:      date,
		Score:     score,
		Total:     total,
		DurationS: 45,
	}
}

// ============================================================================
// Result Parsing
// ============================================================================

// firstRow extracts the first record from a SurrealDB CREATE/SELECT response
func firstRow(t *testing.T, results []interface{}, entity string) map[string]interface{} {
	t.Helper()

	for _, res := range results {
		resp, ok := res.(map[string]interface{})
		if !ok {
			continue
		}
		if rows, ok := resp["result"].([]interface{}); ok && len(rows) > 0 {
			if row, ok := rows[0].(map[string]interface{}); ok {
				return row
			}
		}
		if _, ok := resp["result"]; !ok {
			return resp
		}
	}

	t.Fatalf("fixtures: no %s record in query result", entity)
	return nil
}

// getString extracts a string from a result row, normalizing record IDs
func getString(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case map[string]interface{}:
		// SurrealDB record IDs decode as {tb, id} maps in some drivers
		tb, _ := v["tb"].(string)
		if id, ok := v["id"]; ok && tb != "" {
			return fmt.Sprintf("%s:%v", tb, id)
		}
	case fmt.Stringer:
		return v.String()
	}
	return ""
}
