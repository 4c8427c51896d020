package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/infra/postgres"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository provides access to user settings data in the database.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository with the provided database pool.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create creates default settings for a user.
func (r *SettingsRepository) Create(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO user_settings (user_id, quiz_length, quiz_mode, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, userID, entities.DefaultQuizLength, string(entities.ModeMixed))
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByUserID retrieves settings for a user.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
		SELECT user_id, quiz_length, quiz_mode, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var (
		settings entities.UserSettings
		mode     string
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.QuizLength,
		&mode,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	settings.QuizMode = entities.QuizMode(mode)

	return &settings, nil
}

// UpdateQuizLength updates the number of questions per quiz.
func (r *SettingsRepository) UpdateQuizLength(ctx context.Context, userID int64, quizLength int) error {
	query := `
		UPDATE user_settings
		SET quiz_length = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, quizLength, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update quiz length: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// UpdateQuizMode updates the quiz mode setting.
func (r *SettingsRepository) UpdateQuizMode(ctx context.Context, userID int64, quizMode entities.QuizMode) error {
	query := `
		UPDATE user_settings
		SET quiz_mode = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, string(quizMode), time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update quiz mode: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// Delete removes the settings of a user.
func (r *SettingsRepository) Delete(ctx context.Context, userID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM user_settings WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}
