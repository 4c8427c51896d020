package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/infra/postgres/repository"
)

var (
	ErrNoActiveQuiz      = errors.New("no active quiz")
	ErrStaleSession      = errors.New("quiz session is no longer active")
	ErrInvalidTransition = errors.New("quiz action is not allowed right now")
)

const maxHistory = 10

// QuizStorage keeps the quiz context of every user in memory.
type QuizStorage interface {
	Get(userID int64) (*QuizManager, bool)
	Store(userID int64, m *QuizManager)
	Delete(userID int64)
}

// SettingsProvider returns the quiz preferences of a user.
type SettingsProvider interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
}

// QuizService runs quizzes for many users, one QuizManager each, and
// records finished quizzes.
type QuizService struct {
	catalog  CatalogProvider
	settings SettingsProvider
	results  ResultRepository
	tr       Transactor
	storage  QuizStorage
	newRand  func() Rand
	logger   *zap.Logger

	mu sync.Mutex
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	catalog CatalogProvider,
	settings SettingsProvider,
	results ResultRepository,
	tr Transactor,
	storage QuizStorage,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		catalog:  catalog,
		settings: settings,
		results:  results,
		tr:       tr,
		storage:  storage,
		newRand:  func() Rand { return NewRand() },
		logger:   logger,
	}
}

// manager returns the user's quiz manager, creating it on first use.
// The caller must hold s.mu.
func (s *QuizService) manager(userID int64) *QuizManager {
	m, ok := s.storage.Get(userID)
	if !ok {
		m = NewQuizManager(s.catalog, s.newRand())
		s.storage.Store(userID, m)
	}
	return m
}

// active returns the manager whose running session matches sessionID.
// An empty sessionID matches any session. The caller must hold s.mu.
func (s *QuizService) active(userID int64, sessionID string) (*QuizManager, error) {
	m, ok := s.storage.Get(userID)
	if !ok || m.SessionID() == "" {
		return nil, ErrNoActiveQuiz
	}
	if sessionID != "" && m.SessionID() != sessionID {
		return nil, ErrStaleSession
	}
	return m, nil
}

// Start generates questions for mode and starts a quiz with the user's
// preferred length. An empty mode uses the user's default mode.
// A running quiz of the user is replaced.
func (s *QuizService) Start(ctx context.Context, userID int64, mode string) (entities.QuizSnapshot, error) {
	settings := s.loadSettings(ctx, userID)

	quizMode := settings.QuizMode
	if mode != "" {
		parsed, ok := entities.ParseQuizMode(mode)
		if !ok {
			return entities.QuizSnapshot{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
		}
		quizMode = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.startLocked(userID, s.manager(userID), quizMode, settings.QuizLength)
}

func (s *QuizService) loadSettings(ctx context.Context, userID int64) *entities.UserSettings {
	settings, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to load settings, using defaults",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return entities.NewUserSettings(userID)
	}
	return settings
}

// startLocked regenerates the pool of m and starts a new session.
// The caller must hold s.mu.
func (s *QuizService) startLocked(userID int64, m *QuizManager, mode entities.QuizMode, length int) (entities.QuizSnapshot, error) {
	if err := m.GenerateQuestions(mode); err != nil {
		return entities.QuizSnapshot{}, err
	}
	if err := m.StartQuiz(length); err != nil {
		return entities.QuizSnapshot{}, err
	}

	s.logger.Debug("quiz started",
		zap.Int64("user_id", userID),
		zap.String("session_id", m.SessionID()),
		zap.String("quiz_mode", string(mode)),
		zap.Int("pool_size", m.PoolSize()),
	)

	return m.Snapshot(), nil
}

// Snapshot returns the current quiz state of the user.
func (s *QuizService) Snapshot(userID int64) (entities.QuizSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.active(userID, "")
	if err != nil {
		return entities.QuizSnapshot{}, err
	}
	return m.Snapshot(), nil
}

// Answer selects the option at index of the current question.
func (s *QuizService) Answer(userID int64, sessionID string, index int) (entities.QuizSnapshot, error) {
	return s.transition(userID, sessionID, func(m *QuizManager) bool {
		return m.SelectOption(index)
	})
}

// Next moves to the next question.
func (s *QuizService) Next(userID int64, sessionID string) (entities.QuizSnapshot, error) {
	return s.transition(userID, sessionID, (*QuizManager).Advance)
}

// Prev moves to the previous question.
func (s *QuizService) Prev(userID int64, sessionID string) (entities.QuizSnapshot, error) {
	return s.transition(userID, sessionID, (*QuizManager).Retreat)
}

// transition applies fn and returns ErrInvalidTransition if it was rejected.
// The snapshot is returned either way so the caller can re-render.
func (s *QuizService) transition(userID int64, sessionID string, fn func(m *QuizManager) bool) (entities.QuizSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.active(userID, sessionID)
	if err != nil {
		return entities.QuizSnapshot{}, err
	}
	if !fn(m) {
		return m.Snapshot(), ErrInvalidTransition
	}
	return m.Snapshot(), nil
}

// Finish completes the quiz, stores the result and returns it.
// A failure to store the result is logged and does not hide the result.
func (s *QuizService) Finish(ctx context.Context, userID int64, sessionID string) (*entities.QuizResult, error) {
	s.mu.Lock()
	m, err := s.active(userID, sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if !m.Finish() {
		s.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	res := m.Result()
	s.mu.Unlock()

	res.ID = uuid.NewString()
	res.UserID = userID

	if err := s.save(ctx, &res); err != nil {
		s.logger.Error("failed to save quiz result",
			zap.Int64("user_id", userID),
			zap.String("session_id", res.SessionID),
			zap.Error(err),
		)
	}

	s.logger.Info("quiz finished",
		zap.Int64("user_id", userID),
		zap.String("session_id", res.SessionID),
		zap.Int("score", res.Score),
		zap.Int("total", res.Total),
	)

	return &res, nil
}

func (s *QuizService) save(ctx context.Context, res *entities.QuizResult) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := repository.NewResultRepository(tx)
		if err := repo.Create(ctx, res); err != nil {
			return err
		}
		return repo.SaveAnswers(ctx, res)
	})
}

// Result returns the result of the user's completed quiz.
func (s *QuizService) Result(userID int64) (entities.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.active(userID, "")
	if err != nil {
		return entities.QuizResult{}, err
	}
	if m.Snapshot().State != entities.QuizCompleted {
		return entities.QuizResult{}, ErrInvalidTransition
	}
	return m.Result(), nil
}

// PlayAgain starts a new quiz in the same mode after the completed quiz
// sessionID. Any other state is rejected with ErrInvalidTransition so an
// old result message cannot replace a running quiz.
func (s *QuizService) PlayAgain(ctx context.Context, userID int64, sessionID string) (entities.QuizSnapshot, error) {
	if sessionID == "" {
		return entities.QuizSnapshot{}, ErrStaleSession
	}
	settings := s.loadSettings(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.active(userID, sessionID)
	if err != nil {
		return entities.QuizSnapshot{}, err
	}
	if m.Snapshot().State != entities.QuizCompleted {
		return entities.QuizSnapshot{}, ErrInvalidTransition
	}

	return s.startLocked(userID, m, m.Mode(), settings.QuizLength)
}

// Close drops the quiz sessionID and forgets the user's quiz context.
func (s *QuizService) Close(userID int64, sessionID string) error {
	if sessionID == "" {
		return ErrStaleSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.active(userID, sessionID); err != nil {
		return err
	}
	s.storage.Delete(userID)
	return nil
}

// Forget drops whatever quiz context the user has.
func (s *QuizService) Forget(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.storage.Delete(userID)
}

// History returns the user's most recent results.
func (s *QuizService) History(ctx context.Context, userID int64) ([]*entities.QuizResult, error) {
	return s.results.ListByUserID(ctx, userID, maxHistory)
}

// Summary aggregates all finished quizzes of the user.
func (s *QuizService) Summary(ctx context.Context, userID int64) (*entities.ResultSummary, error) {
	return s.results.Summary(ctx, userID)
}

// PerformanceMessage returns the feedback line shown with a result.
func PerformanceMessage(percentage int) string {
	switch {
	case percentage >= 90:
		return "🌟 Outstanding! You're a true cultural expert!"
	case percentage >= 70:
		return "👏 Great job! You have solid cultural knowledge!"
	case percentage >= 50:
		return "👍 Good effort! Keep exploring to learn more!"
	default:
		return "🤔 Keep learning! There's so much culture to discover!"
	}
}
