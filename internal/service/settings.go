package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/infra/postgres/repository"
)

var ErrInvalidQuizLength = errors.New("invalid quiz length")

type SettingsService struct {
	repository SettingsRepository
}

func NewSettingsService(repository SettingsRepository) *SettingsService {
	return &SettingsService{repository: repository}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			// Create default settings.
			if err := s.repository.Create(ctx, userID); err != nil {
				return nil, err
			}
			// Retrieve newly created settings.
			return s.repository.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	return settings, nil
}

func (s *SettingsService) UpdateQuizLength(ctx context.Context, userID int64, quizLength int) error {
	if !entities.IsValidQuizLength(quizLength) {
		return fmt.Errorf("%w: %d", ErrInvalidQuizLength, quizLength)
	}
	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return err
	}
	return s.repository.UpdateQuizLength(ctx, userID, quizLength)
}

func (s *SettingsService) UpdateQuizMode(ctx context.Context, userID int64, quizMode entities.QuizMode) error {
	if _, ok := entities.ParseQuizMode(string(quizMode)); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, quizMode)
	}
	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return err
	}
	return s.repository.UpdateQuizMode(ctx, userID, quizMode)
}
