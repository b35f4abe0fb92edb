package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/pena-betica-escocesa/api/internal/database"
	"github.com/pena-betica-escocesa/api/internal/model"
)

// TriviaRepository defines the interface for trivia storage
type TriviaRepository interface {
	CreateQuestion(ctx context.Context, q *model.TriviaQuestion) error
	GetQuestion(ctx context.Context, questionID string) (*model.TriviaQuestion, error)
	ListActiveQuestions(ctx context.Context) ([]*model.TriviaQuestion, error)
	ListQuestions(ctx context.Context) ([]*model.TriviaQuestion, error)
	UpdateQuestion(ctx context.Context, questionID string, updates map[string]interface{}) (*model.TriviaQuestion, error)
	DeleteQuestion(ctx context.Context, questionID string) error
	CreateScore(ctx context.Context, score *model.DailyScore) error
	GetScoreByUserAndDate(ctx context.Context, userID, date string) (*model.DailyScore, error)
	Leaderboard(ctx context.Context, date string, limit int) ([]*model.LeaderboardEntry, error)
}

// TriviaService handles the daily trivia game business logic
type TriviaService struct {
	repo TriviaRepository
	loc  *time.Location
	now  func() time.Time
}

// TriviaServiceConfig holds configuration for the trivia service
type TriviaServiceConfig struct {
	TriviaRepo TriviaRepository
	Now        func() time.Time // defaults to time.Now
}

// NewTriviaService creates a new trivia service. Game days roll over at
// midnight Madrid time, matching the peña's home crowd.
func NewTriviaService(cfg TriviaServiceConfig) *TriviaService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		loc = time.UTC
	}
	return &TriviaService{repo: cfg.TriviaRepo, loc: loc, now: now}
}

// GameDate returns the current game day as YYYY-MM-DD
func (s *TriviaService) GameDate() string {
	return s.now().In(s.loc).Format("2006-01-02")
}

// DailyQuestions returns today's question set without answer keys. The
// selection is a deterministic shuffle seeded by the date, so every
// player sees the same questions all day.
func (s *TriviaService) DailyQuestions(ctx context.Context) ([]model.PublicQuestion, error) {
	questions, err := s.repo.ListActiveQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	h := fnv.New64a()
	h.Write([]byte(s.GameDate()))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	shuffled := make([]*model.TriviaQuestion, len(questions))
	copy(shuffled, questions)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	count := model.TriviaQuestionsPerDay
	if count > len(shuffled) {
		count = len(shuffled)
	}

	public := make([]model.PublicQuestion, 0, count)
	for _, q := range shuffled[:count] {
		public = append(public, q.Public())
	}
	return public, nil
}

// CheckAnswers grades a player's picks against the answer keys
func (s *TriviaService) CheckAnswers(ctx context.Context, picks map[string]int) (int, error) {
	score := 0
	for questionID, pick := range picks {
		q, err := s.repo.GetQuestion(ctx, questionID)
		if err != nil {
			return 0, fmt.Errorf("failed to get question: %w", err)
		}
		if q == nil {
			return 0, ErrQuestionNotFound
		}
		if q.CorrectIndex == pick {
			score++
		}
	}
	return score, nil
}

// SubmitScore records a player's daily result. One score per player per
// game day; repeats are rejected.
func (s *TriviaService) SubmitScore(ctx context.Context, userID string, req *model.SubmitScoreRequest) (*model.DailyScore, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	date := s.GameDate()
	existing, err := s.repo.GetScoreByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing score: %w", err)
	}
	if existing != nil {
		return nil, ErrScoreAlreadyRecorded
	}

	score := &model.DailyScore{
		UserID:    userID,
		Date:      date,
		Score:     req.Score,
		Total:     req.Total,
		DurationS: req.DurationS,
	}
	if err := s.repo.CreateScore(ctx, score); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrScoreAlreadyRecorded
		}
		return nil, fmt.Errorf("failed to record score: %w", err)
	}
	return score, nil
}

// MyScore retrieves the player's score for today, nil when not yet played
func (s *TriviaService) MyScore(ctx context.Context, userID string) (*model.DailyScore, error) {
	score, err := s.repo.GetScoreByUserAndDate(ctx, userID, s.GameDate())
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}
	return score, nil
}

// Leaderboard retrieves today's ranking
func (s *TriviaService) Leaderboard(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error) {
	entries, err := s.repo.Leaderboard(ctx, s.GameDate(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return entries, nil
}

// CreateQuestion adds a question to the pool, for the board view
func (s *TriviaService) CreateQuestion(ctx context.Context, req *model.CreateQuestionRequest) (*model.TriviaQuestion, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	q := &model.TriviaQuestion{
		Category:     req.Category,
		Question:     req.Question,
		Answers:      req.Answers,
		CorrectIndex: req.CorrectIndex,
		Active:       true,
	}
	if err := s.repo.CreateQuestion(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return q, nil
}

// ListQuestions retrieves the full pool, for the board view
func (s *TriviaService) ListQuestions(ctx context.Context) ([]*model.TriviaQuestion, error) {
	questions, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// SetQuestionActive flips a question in or out of rotation, for the board view
func (s *TriviaService) SetQuestionActive(ctx context.Context, questionID string, active bool) (*model.TriviaQuestion, error) {
	existing, err := s.repo.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	if existing == nil {
		return nil, ErrQuestionNotFound
	}

	q, err := s.repo.UpdateQuestion(ctx, questionID, map[string]interface{}{"active": active})
	if err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	return q, nil
}

// DeleteQuestion removes a question from the pool, for the board view
func (s *TriviaService) DeleteQuestion(ctx context.Context, questionID string) error {
	existing, err := s.repo.GetQuestion(ctx, questionID)
	if err != nil {
		return fmt.Errorf("failed to get question: %w", err)
	}
	if existing == nil {
		return ErrQuestionNotFound
	}

	if err := s.repo.DeleteQuestion(ctx, questionID); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}
