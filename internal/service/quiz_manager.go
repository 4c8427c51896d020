package service

import (
	"errors"
	"fmt"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

var (
	// ErrNotReady means the reference catalog has not been loaded yet.
	// Callers should ask the user to wait and try again.
	ErrNotReady    = errors.New("quiz questions are not ready yet")
	ErrUnknownMode = errors.New("unknown quiz mode")
)

// CatalogProvider gives access to the currently published catalog.
type CatalogProvider interface {
	Catalog() (*entities.Catalog, error)
}

// QuizManager is the quiz context of a single user: the generated
// question pool, the selected mode and the active session.
// It is not safe for concurrent use.
type QuizManager struct {
	catalog CatalogProvider
	builder *QuestionBuilder
	rng     Rand

	mode      entities.QuizMode
	questions []entities.Question
	session   *entities.QuizSession
	lastSize  int
}

// NewQuizManager creates a manager in mixed mode with an empty pool.
func NewQuizManager(catalog CatalogProvider, rng Rand) *QuizManager {
	return &QuizManager{
		catalog: catalog,
		builder: NewQuestionBuilder(rng),
		rng:     rng,
		mode:    entities.ModeMixed,
		session: entities.NewQuizSession(entities.ModeMixed),
	}
}

// GenerateQuestions rebuilds the question pool for mode.
// Running sessions are unaffected since they own their bank.
func (m *QuizManager) GenerateQuestions(mode entities.QuizMode) error {
	if _, ok := entities.ParseQuizMode(string(mode)); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	if mode == "" {
		mode = entities.ModeMixed
	}

	m.mode = mode
	m.questions = nil

	catalog, err := m.catalog.Catalog()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	}

	m.questions = m.builder.BuildForMode(catalog.Countries, mode)
	return nil
}

// Mode returns the mode of the current question pool.
func (m *QuizManager) Mode() entities.QuizMode {
	return m.mode
}

// PoolSize returns the number of generated questions.
func (m *QuizManager) PoolSize() int {
	return len(m.questions)
}

// StartQuiz starts a new session with up to size questions drawn from a
// freshly shuffled copy of the pool. An empty pool is regenerated first;
// if it is still empty ErrNotReady is returned and nothing changes.
func (m *QuizManager) StartQuiz(size int) error {
	if len(m.questions) == 0 {
		if err := m.GenerateQuestions(m.mode); err != nil {
			return err
		}
		if len(m.questions) == 0 {
			return ErrNotReady
		}
	}

	session := entities.NewQuizSession(m.mode)
	if !session.Start(Shuffled(m.rng, m.questions), size) {
		return ErrNotReady
	}

	m.session = session
	m.lastSize = size
	return nil
}

// CurrentQuestion returns the question the user is looking at.
func (m *QuizManager) CurrentQuestion() (entities.Question, bool) {
	return m.session.Current()
}

// SelectAnswer records an answer for the current question.
func (m *QuizManager) SelectAnswer(option string) bool {
	return m.session.SelectAnswer(option)
}

// SelectOption records the option at index of the current question.
func (m *QuizManager) SelectOption(index int) bool {
	q, ok := m.session.Current()
	if !ok || index < 0 || index >= len(q.Options) {
		return false
	}
	return m.session.SelectAnswer(q.Options[index])
}

func (m *QuizManager) Advance() bool { return m.session.Advance() }

func (m *QuizManager) Retreat() bool { return m.session.Retreat() }

// Finish completes the session when the last question is answered.
func (m *QuizManager) Finish() bool {
	return m.session.Finish()
}

// Restart discards a completed session.
func (m *QuizManager) Restart() bool {
	return m.session.Restart()
}

// PlayAgain restarts a completed session and immediately starts a new quiz
// of the same size.
func (m *QuizManager) PlayAgain() error {
	if !m.session.Restart() {
		return nil
	}
	return m.StartQuiz(m.lastSize)
}

// Close drops the active session.
func (m *QuizManager) Close() {
	m.session.Close()
}

// SessionID returns the ID of the active session, empty when not started.
func (m *QuizManager) SessionID() string {
	return m.session.ID
}

// Result scores the active session.
func (m *QuizManager) Result() entities.QuizResult {
	return m.session.Result()
}

// Snapshot returns the render state of the active session.
func (m *QuizManager) Snapshot() entities.QuizSnapshot {
	return m.session.Snapshot()
}
