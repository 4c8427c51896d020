package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/repository"
)

// --- MockBookmarkRepository ---
type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) Add(ctx context.Context, b *entities.Bookmark) (bool, error) {
	args := m.Called(ctx, b)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkRepository) Remove(ctx context.Context, userID int64, countryID string) (bool, error) {
	args := m.Called(ctx, userID, countryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkRepository) Exists(ctx context.Context, userID int64, countryID string) (bool, error) {
	args := m.Called(ctx, userID, countryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkRepository) ListByUserID(ctx context.Context, userID int64) ([]*entities.Bookmark, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) Clear(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockSettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Create(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockSettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateQuizLength(ctx context.Context, userID int64, quizLength int) error {
	return m.Called(ctx, userID, quizLength).Error(0)
}

func (m *MockSettingsRepository) UpdateQuizMode(ctx context.Context, userID int64, quizMode entities.QuizMode) error {
	return m.Called(ctx, userID, quizMode).Error(0)
}

// --- MockResultRepository ---
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]*entities.QuizResult, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.QuizResult), args.Error(1)
}

func (m *MockResultRepository) Summary(ctx context.Context, userID int64) (*entities.ResultSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ResultSummary), args.Error(1)
}

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user *entities.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

// failingTransactor never opens a transaction and fails with err.
type failingTransactor struct {
	err   error
	calls int
}

func (t *failingTransactor) WithinTx(context.Context, func(ctx context.Context, tx pgx.Tx) error) error {
	t.calls++
	return t.err
}

// staticSettings returns the same settings for every user.
type staticSettings struct {
	settings *entities.UserSettings
	err      error
}

func (s staticSettings) GetOrCreate(_ context.Context, userID int64) (*entities.UserSettings, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := *s.settings
	out.UserID = userID
	return &out, nil
}

// memStorage is an in-memory QuizStorage.
type memStorage struct {
	mu    sync.Mutex
	items map[int64]*QuizManager
}

func newMemStorage() *memStorage {
	return &memStorage{items: make(map[int64]*QuizManager)}
}

func (s *memStorage) Get(userID int64) (*QuizManager, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.items[userID]
	return m, ok
}

func (s *memStorage) Store(userID int64, m *QuizManager) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[userID] = m
}

func (s *memStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, userID)
}

// stubCatalog serves a fixed catalog, or ErrCatalogNotReady while nil.
type stubCatalog struct {
	mu      sync.Mutex
	catalog *entities.Catalog
}

func (s *stubCatalog) Catalog() (*entities.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog == nil {
		return nil, repository.ErrCatalogNotReady
	}
	return s.catalog, nil
}

func (s *stubCatalog) set(c *entities.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = c
}
