package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/infra/postgres/repository"
)

func TestSettingsService_GetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("existing", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		stored := &entities.UserSettings{UserID: 1, QuizLength: 15, QuizMode: entities.ModeMixed}
		repo.On("GetByUserID", ctx, int64(1)).Return(stored, nil)

		got, err := NewSettingsService(repo).GetOrCreate(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, stored, got)
		repo.AssertNotCalled(t, "Create", ctx, int64(1))
	})

	t.Run("missing creates defaults", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		defaults := entities.NewUserSettings(1)
		repo.On("GetByUserID", ctx, int64(1)).Return(nil, repository.ErrSettingsNotFound).Once()
		repo.On("Create", ctx, int64(1)).Return(nil).Once()
		repo.On("GetByUserID", ctx, int64(1)).Return(defaults, nil).Once()

		got, err := NewSettingsService(repo).GetOrCreate(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, entities.DefaultQuizLength, got.QuizLength)
		assert.Equal(t, entities.ModeMixed, got.QuizMode)
		repo.AssertExpectations(t)
	})

	t.Run("other errors are returned", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("GetByUserID", ctx, int64(1)).Return(nil, errors.New("db down"))

		_, err := NewSettingsService(repo).GetOrCreate(ctx, 1)

		assert.EqualError(t, err, "db down")
	})
}

func TestSettingsService_UpdateQuizLength(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("GetByUserID", ctx, int64(1)).Return(entities.NewUserSettings(1), nil)
		repo.On("UpdateQuizLength", ctx, int64(1), 20).Return(nil)

		require.NoError(t, NewSettingsService(repo).UpdateQuizLength(ctx, 1, 20))
		repo.AssertExpectations(t)
	})

	for _, n := range []int{0, 7, 25} {
		repo := new(MockSettingsRepository)

		err := NewSettingsService(repo).UpdateQuizLength(ctx, 1, n)

		assert.ErrorIs(t, err, ErrInvalidQuizLength)
		repo.AssertNotCalled(t, "UpdateQuizLength", ctx, int64(1), n)
	}
}

func TestSettingsService_UpdateQuizMode(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		mode := entities.QuizMode(entities.CategoryFood)
		repo.On("GetByUserID", ctx, int64(1)).Return(entities.NewUserSettings(1), nil)
		repo.On("UpdateQuizMode", ctx, int64(1), mode).Return(nil)

		require.NoError(t, NewSettingsService(repo).UpdateQuizMode(ctx, 1, mode))
		repo.AssertExpectations(t)
	})

	t.Run("unknown", func(t *testing.T) {
		repo := new(MockSettingsRepository)

		err := NewSettingsService(repo).UpdateQuizMode(ctx, 1, "weather")

		assert.ErrorIs(t, err, ErrUnknownMode)
	})
}
