package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pena-betica-escocesa/api/internal/model"
)

// ============================================================================
// Mock Repository
// ============================================================================

type mockTriviaRepo struct {
	createQuestionFunc        func(ctx context.Context, q *model.TriviaQuestion) error
	getQuestionFunc           func(ctx context.Context, questionID string) (*model.TriviaQuestion, error)
	listActiveQuestionsFunc   func(ctx context.Context) ([]*model.TriviaQuestion, error)
	listQuestionsFunc         func(ctx context.Context) ([]*model.TriviaQuestion, error)
	updateQuestionFunc        func(ctx context.Context, questionID string, updates map[string]interface{}) (*model.TriviaQuestion, error)
	deleteQuestionFunc        func(ctx context.Context, questionID string) error
	createScoreFunc           func(ctx context.Context, score *model.DailyScore) error
	getScoreByUserAndDateFunc func(ctx context.Context, userID, date string) (*model.DailyScore, error)
	leaderboardFunc           func(ctx context.Context, date string, limit int) ([]*model.LeaderboardEntry, error)
}

func (m *mockTriviaRepo) CreateQuestion(ctx context.Context, q *model.TriviaQuestion) error {
	if m.createQuestionFunc != nil {
		return m.createQuestionFunc(ctx, q)
	}
	return nil
}

func (m *mockTriviaRepo) GetQuestion(ctx context.Context, questionID string) (*model.TriviaQuestion, error) {
	if m.getQuestionFunc != nil {
		return m.getQuestionFunc(ctx, questionID)
	}
	return nil, nil
}

func (m *mockTriviaRepo) ListActiveQuestions(ctx context.Context) ([]*model.TriviaQuestion, error) {
	if m.listActiveQuestionsFunc != nil {
		return m.listActiveQuestionsFunc(ctx)
	}
	return nil, nil
}

func (m *mockTriviaRepo) ListQuestions(ctx context.Context) ([]*model.TriviaQuestion, error) {
	if m.listQuestionsFunc != nil {
		return m.listQuestionsFunc(ctx)
	}
	return nil, nil
}

func (m *mockTriviaRepo) UpdateQuestion(ctx context.Context, questionID string, updates map[string]interface{}) (*model.TriviaQuestion, error) {
	if m.updateQuestionFunc != nil {
		return m.updateQuestionFunc(ctx, questionID, updates)
	}
	return nil, nil
}

func (m *mockTriviaRepo) DeleteQuestion(ctx context.Context, questionID string) error {
	if m.deleteQuestionFunc != nil {
		return m.deleteQuestionFunc(ctx, questionID)
	}
	return nil
}

func (m *mockTriviaRepo) CreateScore(ctx context.Context, score *model.DailyScore) error {
	if m.createScoreFunc != nil {
		return m.createScoreFunc(ctx, score)
	}
	return nil
}

func (m *mockTriviaRepo) GetScoreByUserAndDate(ctx context.Context, userID, date string) (*model.DailyScore, error) {
	if m.getScoreByUserAndDateFunc != nil {
		return m.getScoreByUserAndDateFunc(ctx, userID, date)
	}
	return nil, nil
}

func (m *mockTriviaRepo) Leaderboard(ctx context.Context, date string, limit int) ([]*model.LeaderboardEntry, error) {
	if m.leaderboardFunc != nil {
		return m.leaderboardFunc(ctx, date, limit)
	}
	return nil, nil
}

func questionPool(n int) []*model.TriviaQuestion {
	pool := make([]*model.TriviaQuestion, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, &model.TriviaQuestion{
			ID:           fmt.Sprintf("question:%d", i),
			Category:     model.TriviaCategoryBetis,
			Question:     fmt.Sprintf("Question %d", i),
			Answers:      []string{"a", "b", "c"},
			CorrectIndex: i % 3,
			Active:       true,
		})
	}
	return pool
}

// ============================================================================
// DailyQuestions Tests
// ============================================================================

func TestTriviaService_DailyQuestions_DeterministicForDay(t *testing.T) {
	t.Parallel()

	repo := &mockTriviaRepo{
		listActiveQuestionsFunc: func(ctx context.Context) ([]*model.TriviaQuestion, error) {
			return questionPool(30), nil
		},
	}
	fixed := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	svc := NewTriviaService(TriviaServiceConfig{
		TriviaRepo: repo,
		Now:        func() time.Time { return fixed },
	})

	first, err := svc.DailyQuestions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.DailyQuestions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != model.TriviaQuestionsPerDay {
		t.Fatalf("expected %d questions, got %d", model.TriviaQuestionsPerDay, len(first))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("selection not deterministic at %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestTriviaService_DailyQuestions_StripsAnswerKey(t *testing.T) {
	t.Parallel()

	repo := &mockTriviaRepo{
		listActiveQuestionsFunc: func(ctx context.Context) ([]*model.TriviaQuestion, error) {
			return questionPool(5), nil
		},
	}
	svc := NewTriviaService(TriviaServiceConfig{TriviaRepo: repo})

	questions, err := svc.DailyQuestions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Fewer questions than the daily count: serve what exists.
	if len(questions) != 5 {
		t.Errorf("expected 5 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if len(q.Answers) == 0 || q.Question == "" {
			t.Errorf("truncated question in public view: %+v", q)
		}
	}
}

func TestTriviaService_DailyQuestions_EmptyPool(t *testing.T) {
	t.Parallel()

	svc := NewTriviaService(TriviaServiceConfig{TriviaRepo: &mockTriviaRepo{}})

	_, err := svc.DailyQuestions(context.Background())
	if !errors.Is(err, ErrNoQuestionsAvailable) {
		t.Errorf("expected ErrNoQuestionsAvailable, got %v", err)
	}
}

// ============================================================================
// SubmitScore Tests
// ============================================================================

func TestTriviaService_SubmitScore_OncePerDay(t *testing.T) {
	t.Parallel()

	recorded := false
	repo := &mockTriviaRepo{
		createScoreFunc: func(ctx context.Context, score *model.DailyScore) error {
			recorded = true
			if score.Date == "" {
				t.Error("expected game date to be set")
			}
			score.ID = "score:1"
			return nil
		},
	}
	svc := NewTriviaService(TriviaServiceConfig{TriviaRepo: repo})

	score, err := svc.SubmitScore(context.Background(), "user:juan", &model.SubmitScoreRequest{
		Score: 8, Total: 10, DurationS: 120,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !recorded || score.ID != "score:1" {
		t.Errorf("expected recorded score, got %+v", score)
	}
}

func TestTriviaService_SubmitScore_SecondSubmissionRejected(t *testing.T) {
	t.Parallel()

	repo := &mockTriviaRepo{
		getScoreByUserAndDateFunc: func(ctx context.Context, userID, date string) (*model.DailyScore, error) {
			return &model.DailyScore{ID: "score:1", UserID: userID, Date: date}, nil
		},
	}
	svc := NewTriviaService(TriviaServiceConfig{TriviaRepo: repo})

	_, err := svc.SubmitScore(context.Background(), "user:juan", &model.SubmitScoreRequest{
		Score: 5, Total: 10,
	})
	if !errors.Is(err, ErrScoreAlreadyRecorded) {
		t.Errorf("expected ErrScoreAlreadyRecorded, got %v", err)
	}
}

func TestTriviaService_SubmitScore_InvalidRequest(t *testing.T) {
	t.Parallel()

	svc := NewTriviaService(TriviaServiceConfig{TriviaRepo: &mockTriviaRepo{}})

	_, err := svc.SubmitScore(context.Background(), "user:juan", &model.SubmitScoreRequest{
		Score: 12, Total: 10,
	})
	var problem *model.ProblemDetails
	if !errors.As(err, &problem) {
		t.Fatalf("expected validation problem, got %v", err)
	}
}

func TestTriviaService_GameDate_MadridRollover(t *testing.T) {
	t.Parallel()

	// 23:30 UTC on the 27th is already the 28th in Madrid (CEST, UTC+2).
	fixed := time.Date(2026, 8, 27, 23, 30, 0, 0, time.UTC)
	svc := NewTriviaService(TriviaServiceConfig{
		TriviaRepo: &mockTriviaRepo{},
		Now:        func() time.Time { return fixed },
	})

	if got := svc.GameDate(); got != "2026-08-28" {
		t.Errorf("expected Madrid game date 2026-08-28, got %s", got)
	}
}

// ============================================================================
// CheckAnswers Tests
// ============================================================================

func TestTriviaService_CheckAnswers(t *testing.T) {
	t.Parallel()

	pool := map[string]*model.TriviaQuestion{
		"question:1": {ID: "question:1", CorrectIndex: 0},
		"question:2": {ID: "question:2", CorrectIndex: 2},
	}
	repo := &mockTriviaRepo{
		getQuestionFunc: func(ctx context.Context, questionID string) (*model.TriviaQuestion, error) {
			return pool[questionID], nil
		},
	}
	svc := NewTriviaService(TriviaServiceConfig{TriviaRepo: repo})

	score, err := svc.CheckAnswers(context.Background(), map[string]int{
		"question:1": 0,
		"question:2": 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 1 {
		t.Errorf("expected score 1, got %d", score)
	}
}

func TestTriviaService_CheckAnswers_UnknownQuestion(t *testing.T) {
	t.Parallel()

	svc := NewTriviaService(TriviaServiceConfig{TriviaRepo: &mockTriviaRepo{}})

	_, err := svc.CheckAnswers(context.Background(), map[string]int{"question:ghost": 0})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("expected ErrQuestionNotFound, got %v", err)
	}
}
