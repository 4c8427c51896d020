package telegram

import (
	"context"
	"errors"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/mock"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

// fakeSender records everything the handler sends to Telegram.
type fakeSender struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	files    map[string]string // file id to download url
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return make(chan tgbotapi.Update)
}

func (f *fakeSender) GetFileDirectURL(fileID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	url, ok := f.files[fileID]
	if !ok {
		return "", errors.New("file not found")
	}
	return url, nil
}

// --- MockQuizService ---
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) Start(ctx context.Context, userID int64, mode string) (entities.QuizSnapshot, error) {
	args := m.Called(ctx, userID, mode)
	return args.Get(0).(entities.QuizSnapshot), args.Error(1)
}

func (m *MockQuizService) Snapshot(userID int64) (entities.QuizSnapshot, error) {
	args := m.Called(userID)
	return args.Get(0).(entities.QuizSnapshot), args.Error(1)
}

func (m *MockQuizService) Answer(userID int64, sessionID string, index int) (entities.QuizSnapshot, error) {
	args := m.Called(userID, sessionID, index)
	return args.Get(0).(entities.QuizSnapshot), args.Error(1)
}

func (m *MockQuizService) Next(userID int64, sessionID string) (entities.QuizSnapshot, error) {
	args := m.Called(userID, sessionID)
	return args.Get(0).(entities.QuizSnapshot), args.Error(1)
}

func (m *MockQuizService) Prev(userID int64, sessionID string) (entities.QuizSnapshot, error) {
	args := m.Called(userID, sessionID)
	return args.Get(0).(entities.QuizSnapshot), args.Error(1)
}

func (m *MockQuizService) Finish(ctx context.Context, userID int64, sessionID string) (*entities.QuizResult, error) {
	args := m.Called(ctx, userID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.QuizResult), args.Error(1)
}

func (m *MockQuizService) PlayAgain(ctx context.Context, userID int64, sessionID string) (entities.QuizSnapshot, error) {
	args := m.Called(ctx, userID, sessionID)
	return args.Get(0).(entities.QuizSnapshot), args.Error(1)
}

func (m *MockQuizService) Close(userID int64, sessionID string) error {
	args := m.Called(userID, sessionID)
	return args.Error(0)
}

func (m *MockQuizService) Forget(userID int64) {
	m.Called(userID)
}

func (m *MockQuizService) History(ctx context.Context, userID int64) ([]*entities.QuizResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.QuizResult), args.Error(1)
}

func (m *MockQuizService) Summary(ctx context.Context, userID int64) (*entities.ResultSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ResultSummary), args.Error(1)
}

// --- MockBookmarkService ---
type MockBookmarkService struct {
	mock.Mock
}

func (m *MockBookmarkService) Toggle(ctx context.Context, userID int64, country *entities.Country) (bool, error) {
	args := m.Called(ctx, userID, country)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkService) IsBookmarked(ctx context.Context, userID int64, countryID string) (bool, error) {
	args := m.Called(ctx, userID, countryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkService) List(ctx context.Context, userID int64) ([]*entities.Bookmark, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bookmark), args.Error(1)
}

func (m *MockBookmarkService) ListByRegion(ctx context.Context, userID int64, region string) ([]*entities.Bookmark, error) {
	args := m.Called(ctx, userID, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bookmark), args.Error(1)
}

func (m *MockBookmarkService) Clear(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookmarkService) Export(ctx context.Context, userID int64) ([]byte, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBookmarkService) Import(ctx context.Context, userID int64, data []byte) (int, error) {
	args := m.Called(ctx, userID, data)
	return args.Int(0), args.Error(1)
}

// --- MockSettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserSettings), args.Error(1)
}

func (m *MockSettingsService) UpdateQuizLength(ctx context.Context, userID int64, quizLength int) error {
	return m.Called(ctx, userID, quizLength).Error(0)
}

func (m *MockSettingsService) UpdateQuizMode(ctx context.Context, userID int64, quizMode entities.QuizMode) error {
	return m.Called(ctx, userID, quizMode).Error(0)
}

// --- MockUserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) EnsureUser(ctx context.Context, userID, chatID int64, firstName, username, languageCode string) error {
	return m.Called(ctx, userID, chatID, firstName, username, languageCode).Error(0)
}

// --- MockResetService ---
type MockResetService struct {
	mock.Mock
}

func (m *MockResetService) ResetUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}
