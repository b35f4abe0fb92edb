package model

import (
	"strings"
	"time"
)

// TriviaQuestion is a multiple-choice question. CorrectIndex is never
// serialized to the public API; the daily endpoint strips it.
type TriviaQuestion struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	Question     string    `json:"question"`
	Answers      []string  `json:"answers"`
	CorrectIndex int       `json:"correct_index"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicQuestion is TriviaQuestion without the answer key.
type PublicQuestion struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

// Public strips the answer key for client delivery.
func (q *TriviaQuestion) Public() PublicQuestion {
	return PublicQuestion{
		ID:       q.ID,
		Category: q.Category,
		Question: q.Question,
		Answers:  q.Answers,
	}
}

// Trivia categories
const (
	TriviaCategoryBetis    = "betis"
	TriviaCategoryScotland = "scotland"
	TriviaCategoryWhisky   = "whisky"
)

// ValidTriviaCategory reports whether c is a known trivia category.
func ValidTriviaCategory(c string) bool {
	switch c {
	case TriviaCategoryBetis, TriviaCategoryScotland, TriviaCategoryWhisky:
		return true
	}
	return false
}

// Trivia constraints
const (
	TriviaQuestionsPerDay = 10
	MaxTriviaQuestionLen  = 500
	MaxTriviaAnswers      = 6
)

// DailyScore records one player's result for one day. A player gets a
// single score per calendar day; subsequent submissions are rejected.
type DailyScore struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"` // YYYY-MM-DD, Europe/Madrid
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	DurationS int       `json:"duration_s"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitScoreRequest is the body of POST /api/trivia/score.
type SubmitScoreRequest struct {
	Score     int `json:"score"`
	Total     int `json:"total"`
	DurationS int `json:"duration_s"`
}

// Validate validates a SubmitScoreRequest
func (r *SubmitScoreRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Total < 1 || r.Total > TriviaQuestionsPerDay {
		errors = append(errors, FieldError{Field: "total", Message: "total out of range"})
	}

	if r.Score < 0 || r.Score > r.Total {
		errors = append(errors, FieldError{Field: "score", Message: "score must be between 0 and total"})
	}

	if r.DurationS < 0 {
		errors = append(errors, FieldError{Field: "duration_s", Message: "duration cannot be negative"})
	}

	return errors
}

// CreateQuestionRequest is the board request to add a trivia question.
type CreateQuestionRequest struct {
	Category     string   `json:"category"`
	Question     string   `json:"question"`
	Answers      []string `json:"answers"`
	CorrectIndex int      `json:"correct_index"`
}

// Validate validates a CreateQuestionRequest
func (r *CreateQuestionRequest) Validate() []FieldError {
	var errors []FieldError

	if !ValidTriviaCategory(r.Category) {
		errors = append(errors, FieldError{Field: "category", Message: "must be one of: betis, scotland, whisky"})
	}

	if strings.TrimSpace(r.Question) == "" {
		errors = append(errors, FieldError{Field: "question", Message: "question is required"})
	} else if len(r.Question) > MaxTriviaQuestionLen {
		errors = append(errors, FieldError{Field: "question", Message: "question too long"})
	}

	if len(r.Answers) < 2 || len(r.Answers) > MaxTriviaAnswers {
		errors = append(errors, FieldError{Field: "answers", Message: "between 2 and 6 answers required"})
	} else {
		for _, a := range r.Answers {
			if strings.TrimSpace(a) == "" {
				errors = append(errors, FieldError{Field: "answers", Message: "answers cannot be empty"})
				break
			}
		}
		if r.CorrectIndex < 0 || r.CorrectIndex >= len(r.Answers) {
			errors = append(errors, FieldError{Field: "correct_index", Message: "correct_index out of range"})
		}
	}

	return errors
}

// LeaderboardEntry is one row of the trivia leaderboard.
type LeaderboardEntry struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	DurationS int    `json:"duration_s"`
}
