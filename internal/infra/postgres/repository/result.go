package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/infra/postgres"
)

// ResultRepository stores finished quiz results.
type ResultRepository struct {
	db postgres.DBTX
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(db postgres.DBTX) *ResultRepository {
	return &ResultRepository{db: db}
}

// Create inserts the result header. Use within a transaction together with SaveAnswers.
func (r *ResultRepository) Create(ctx context.Context, res *entities.QuizResult) error {
	query := `
		INSERT INTO quiz_results (id, user_id, session_id, quiz_mode, score, total, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		res.ID,
		res.UserID,
		res.SessionID,
		string(res.Mode),
		res.Score,
		res.Total,
		res.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("create quiz result: %w", err)
	}

	return nil
}

// SaveAnswers inserts the per-question breakdown of a result.
func (r *ResultRepository) SaveAnswers(ctx context.Context, res *entities.QuizResult) error {
	query := `
		INSERT INTO quiz_result_answers (
			result_id, position, category, country_id, prompt,
			user_answer, correct_answer, is_correct
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	batch := &pgx.Batch{}
	for i, a := range res.Breakdown {
		batch.Queue(query,
			res.ID,
			i,
			string(a.Question.Category),
			a.Question.CountryID,
			a.Question.Prompt,
			a.UserAnswer,
			a.Question.CorrectAnswer,
			a.Correct,
		)
	}

	if batch.Len() == 0 {
		return nil
	}

	if err := sendBatch(ctx, r.db, batch); err != nil {
		return fmt.Errorf("save quiz answers: %w", err)
	}

	return nil
}

// ListByUserID returns the most recent results of a user without breakdowns.
func (r *ResultRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]*entities.QuizResult, error) {
	query := `
		SELECT id, user_id, session_id, quiz_mode, score, total, completed_at
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY completed_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entities.QuizResult, error) {
		var (
			res  entities.QuizResult
			mode string
		)
		err := row.Scan(&res.ID, &res.UserID, &res.SessionID, &mode, &res.Score, &res.Total, &res.CompletedAt)
		res.Mode = entities.QuizMode(mode)
		return &res, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan quiz results: %w", err)
	}

	return results, nil
}

// Summary aggregates all results of a user.
func (r *ResultRepository) Summary(ctx context.Context, userID int64) (*entities.ResultSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(AVG(score * 100.0 / NULLIF(total, 0)), 0),
			COALESCE(MAX(score), 0)
		FROM quiz_results
		WHERE user_id = $1
	`

	var s entities.ResultSummary
	if err := r.db.QueryRow(ctx, query, userID).Scan(&s.QuizzesTaken, &s.AveragePercentage, &s.BestScore); err != nil {
		return nil, fmt.Errorf("quiz results summary: %w", err)
	}

	if s.QuizzesTaken > 0 {
		best := `
			SELECT total FROM quiz_results
			WHERE user_id = $1 AND score = $2
			ORDER BY completed_at DESC
			LIMIT 1
		`
		if err := r.db.QueryRow(ctx, best, userID, s.BestScore).Scan(&s.BestTotal); err != nil {
			return nil, fmt.Errorf("best quiz result: %w", err)
		}
	}

	return &s, nil
}

type batchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// sendBatch sends b if db supports batching and falls back to row by row execution.
func sendBatch(ctx context.Context, db postgres.DBTX, b *pgx.Batch) error {
	if s, ok := db.(batchSender); ok {
		return s.SendBatch(ctx, b).Close()
	}

	for _, q := range b.QueuedQueries {
		if _, err := db.Exec(ctx, q.SQL, q.Arguments...); err != nil {
			return err
		}
	}
	return nil
}
