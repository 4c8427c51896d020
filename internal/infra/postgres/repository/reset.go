package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/cultural-explorer-bot/internal/infra/postgres"
)

type ResetRepository struct {
	db postgres.DBTX
}

func NewResetRepository(db postgres.DBTX) *ResetRepository {
	return &ResetRepository{db: db}
}

// ResetUser removes quiz history and bookmarks of a user.
func (s *ResetRepository) ResetUser(ctx context.Context, userID int64) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM quiz_results WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete quiz_results: %w", err)
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM bookmarks WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete bookmarks: %w", err)
	}

	return nil
}
