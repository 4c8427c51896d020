package telegram

import (
	"context"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64, firstName, username, languageCode string) error
}

type CountryService interface {
	Get(id string) (*entities.Country, error)
	All() ([]*entities.Country, error)
	Regions() ([]string, error)
	Random() (*entities.Country, error)
	Search(query string) ([]*entities.Country, error)
	FilterByRegion(region string) ([]*entities.Country, error)
}

type BookmarkService interface {
	Toggle(ctx context.Context, userID int64, country *entities.Country) (bool, error)
	IsBookmarked(ctx context.Context, userID int64, countryID string) (bool, error)
	List(ctx context.Context, userID int64) ([]*entities.Bookmark, error)
	ListByRegion(ctx context.Context, userID int64, region string) ([]*entities.Bookmark, error)
	Clear(ctx context.Context, userID int64) (int64, error)
	Export(ctx context.Context, userID int64) ([]byte, error)
	Import(ctx context.Context, userID int64, data []byte) (int, error)
}

type QuizService interface {
	Start(ctx context.Context, userID int64, mode string) (entities.QuizSnapshot, error)
	Snapshot(userID int64) (entities.QuizSnapshot, error)
	Answer(userID int64, sessionID string, index int) (entities.QuizSnapshot, error)
	Next(userID int64, sessionID string) (entities.QuizSnapshot, error)
	Prev(userID int64, sessionID string) (entities.QuizSnapshot, error)
	Finish(ctx context.Context, userID int64, sessionID string) (*entities.QuizResult, error)
	PlayAgain(ctx context.Context, userID int64, sessionID string) (entities.QuizSnapshot, error)
	Close(userID int64, sessionID string) error
	Forget(userID int64)
	History(ctx context.Context, userID int64) ([]*entities.QuizResult, error)
	Summary(ctx context.Context, userID int64) (*entities.ResultSummary, error)
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdateQuizLength(ctx context.Context, userID int64, quizLength int) error
	UpdateQuizMode(ctx context.Context, userID int64, quizMode entities.QuizMode) error
}

type ResetService interface {
	ResetUser(ctx context.Context, userID int64) error
}
