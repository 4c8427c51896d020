package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/cultural-explorer-bot/internal/infra/postgres/repository"
)

type ResetService struct {
	tr Transactor
}

func NewResetService(tr Transactor) *ResetService {
	return &ResetService{tr: tr}
}

// ResetUser wipes the user's bookmarks and quiz history and restores default settings.
func (s *ResetService) ResetUser(ctx context.Context, userID int64) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		resetRepo := repository.NewResetRepository(tx)
		settingsRepo := repository.NewSettingsRepository(tx)

		if err := resetRepo.ResetUser(ctx, userID); err != nil {
			return err
		}

		if err := settingsRepo.Delete(ctx, userID); err != nil {
			return err
		}

		return settingsRepo.Create(ctx, userID)
	})
}
