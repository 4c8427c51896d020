package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
}

type SettingsRepository interface {
	Create(ctx context.Context, userID int64) error
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdateQuizLength(ctx context.Context, userID int64, quizLength int) error
	UpdateQuizMode(ctx context.Context, userID int64, quizMode entities.QuizMode) error
}

type BookmarkRepository interface {
	Add(ctx context.Context, b *entities.Bookmark) (bool, error)
	Remove(ctx context.Context, userID int64, countryID string) (bool, error)
	Exists(ctx context.Context, userID int64, countryID string) (bool, error)
	ListByUserID(ctx context.Context, userID int64) ([]*entities.Bookmark, error)
	Clear(ctx context.Context, userID int64) (int64, error)
}

type ResultRepository interface {
	ListByUserID(ctx context.Context, userID int64, limit int) ([]*entities.QuizResult, error)
	Summary(ctx context.Context, userID int64) (*entities.ResultSummary, error)
}

// Transactor runs fn inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// CatalogLoader loads the reference catalog from its source.
type CatalogLoader interface {
	Load(ctx context.Context) error
	Loaded() bool
}
