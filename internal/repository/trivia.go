package repository

import (
	"context"
	"errors"

	"github.com/pena-betica-escocesa/api/internal/database"
	"github.com/pena-betica-escocesa/api/internal/model"
)

// TriviaRepository handles trivia question and score data access
type TriviaRepository struct {
	db database.Database
}

// NewTriviaRepository creates a new trivia repository
func NewTriviaRepository(db database.Database) *TriviaRepository {
	return &TriviaRepository{db: db}
}

// CreateQuestion creates a trivia question
func (r *TriviaRepository) CreateQuestion(ctx context.Context, q *model.TriviaQuestion) error {
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
		"category":      q.Category,
		"question":      q.Question,
		"answers":       q.Answers,
		"correct_index": q.CorrectIndex,
		"active":        q.Active,
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
	q.ID = convertSurrealID(created["id"])
	if t := getTime(created, "created_on"); t != nil {
		q.CreatedAt = *t
	}
	if t := getTime(created, "updated_on"); t != nil {
		q.UpdatedAt = *t
	}
	return nil
}

// GetQuestion retrieves a question by ID
func (r *TriviaRepository) GetQuestion(ctx context.Context, questionID string) (*model.TriviaQuestion, error) {
	query := `SELECT * FROM type::record($question_id)`
	vars := map[string]interface{}{"question_id": questionID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseQuestionResult(result)
}

// ListActiveQuestions retrieves all active questions
func (r *TriviaRepository) ListActiveQuestions(ctx context.Context) ([]*model.TriviaQuestion, error) {
	query := `SELECT * FROM trivia_question WHERE active = true ORDER BY created_on ASC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	return r.parseQuestionsResult(result)
}

// ListQuestions retrieves all questions regardless of state
func (r *TriviaRepository) ListQuestions(ctx context.Context) ([]*model.TriviaQuestion, error) {
	query := `SELECT * FROM trivia_question ORDER BY created_on ASC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	return r.parseQuestionsResult(result)
}

// UpdateQuestion updates a question
func (r *TriviaRepository) UpdateQuestion(ctx context.Context, questionID string, updates map[string]interface{}) (*model.TriviaQuestion, error) {
	query := `UPDATE trivia_question SET updated_on = time::now()`
	vars := map[string]interface{}{"question_id": questionID}

	for key, value := range updates {
		query += ", " + key + " = $" + key
		vars[key] = value
	}

	query += ` WHERE id = type::record($question_id) RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseQuestionResult(result)
}

// DeleteQuestion deletes a question
func (r *TriviaRepository) DeleteQuestion(ctx context.Context, questionID string) error {
	query := `DELETE trivia_question WHERE id = type::record($question_id)`
	vars := map[string]interface{}{"question_id": questionID}

	return r.db.Execute(ctx, query, vars)
}

// CreateScore records a daily score. The (user_id, date) pair is unique;
// a second submission for the same day returns database.ErrDuplicate.
func (r *TriviaRepository) CreateScore(ctx context.Context, score *model.DailyScore) error {
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
		"user_id":    score.UserID,
		"date":       score.Date,
		"score":      score.Score,
		"total":      score.Total,
		"duration_s": score.DurationS,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return database.ErrDuplicate
		}
		return err
	}

	rows := extractQueryRows(result)
	if len(rows) == 0 {
		return errors.New("no result returned")
	}
	created := rows[0]
	score.ID = convertSurrealID(created["id"])
	if t := getTime(created, "created_on"); t != nil {
		score.CreatedAt = *t
	}
	return nil
}

// GetScoreByUserAndDate retrieves a user's score for a day, nil when absent
func (r *TriviaRepository) GetScoreByUserAndDate(ctx context.Context, userID, date string) (*model.DailyScore, error) {
	query := `
		SELECT * FROM trivia_score
		WHERE user_id = $user_id AND date = $date
		LIMIT 1
	`
	vars := map[string]interface{}{
		"user_id": userID,
		"date":    date,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseScoreResult(result)
}

// Leaderboard retrieves the day's scores ranked by score desc then
// duration asc, joined with the player names.
func (r *TriviaRepository) Leaderboard(ctx context.Context, date string, limit int) ([]*model.LeaderboardEntry, error) {
	query := `
		SELECT user_id, score, total, duration_s,
			(SELECT VALUE name FROM type::record($parent.user_id))[0] as name
		FROM trivia_score
		WHERE date = $date
		ORDER BY score DESC, duration_s ASC
	`
	vars := map[string]interface{}{"date": date}
	if limit > 0 {
		query += ` LIMIT $limit`
		vars["limit"] = limit
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	entries := make([]*model.LeaderboardEntry, 0)
	for _, row := range extractQueryRows(result) {
		entries = append(entries, &model.LeaderboardEntry{
			UserID:    convertSurrealID(row["user_id"]),
			Name:      getString(row, "name"),
			Score:     getInt(row, "score"),
			Total:     getInt(row, "total"),
			DurationS: getInt(row, "duration_s"),
		})
	}
	return entries, nil
}

func (r *TriviaRepository) parseQuestionResult(result interface{}) (*model.TriviaQuestion, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	q := &model.TriviaQuestion{
		ID:           convertSurrealID(data["id"]),
		Category:     getString(data, "category"),
		Question:     getString(data, "question"),
		Answers:      getStringSlice(data, "answers"),
		CorrectIndex: getInt(data, "correct_index"),
		Active:       getBool(data, "active"),
	}

	if t := getTime(data, "created_on"); t != nil {
		q.CreatedAt = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		q.UpdatedAt = *t
	}

	return q, nil
}

func (r *TriviaRepository) parseQuestionsResult(result []interface{}) ([]*model.TriviaQuestion, error) {
	questions := make([]*model.TriviaQuestion, 0)
	for _, row := range extractQueryRows(result) {
		q, err := r.parseQuestionResult(row)
		if err != nil {
			continue
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *TriviaRepository) parseScoreResult(result interface{}) (*model.DailyScore, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	score := &model.DailyScore{
		ID:        convertSurrealID(data["id"]),
		UserID:    convertSurrealID(data["user_id"]),
		Date:      getString(data, "date"),
		Score:     getInt(data, "score"),
		Total:     getInt(data, "total"),
		DurationS: getInt(data, "duration_s"),
	}

	if t := getTime(data, "created_on"); t != nil {
		score.CreatedAt = *t
	}

	return score, nil
}
