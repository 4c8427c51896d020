package quiz

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/service"
)

// RetryInterval is how often the model retries starting a quiz while the
// catalog is not ready.
const RetryInterval = 500 * time.Millisecond

// Engine drives a single quiz. *service.QuizManager implements it.
type Engine interface {
	StartQuiz(size int) error
	SelectOption(index int) bool
	Advance() bool
	Retreat() bool
	Finish() bool
	PlayAgain() error
	Result() entities.QuizResult
	Snapshot() entities.QuizSnapshot
}

// Options configures the quiz model.
type Options struct {
	Size    int // questions per quiz, <= 0 means the whole pool
	NoColor bool
}

// Model is a Bubble Tea model for taking a quiz in the terminal.
type Model struct {
	engine  Engine
	size    int
	noColor bool

	waiting bool   // catalog not ready yet
	notice  string // feedback for the last rejected key
	err     error
}

// NewModel creates a quiz model; the quiz starts on Init.
func NewModel(engine Engine, opts Options) Model {
	return Model{
		engine:  engine,
		size:    opts.Size,
		noColor: opts.NoColor,
		waiting: true,
	}
}

// startMsg asks the model to (re)try starting a quiz.
type startMsg struct{}

func startQuiz() tea.Msg { return startMsg{} }

func retryStart() tea.Cmd {
	return tea.Tick(RetryInterval, func(time.Time) tea.Msg { return startMsg{} })
}

// Init starts the first quiz.
func (m Model) Init() tea.Cmd {
	return startQuiz
}

// Update handles key presses and start retries.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case startMsg:
		return m.start()
	case tea.KeyMsg:
		return m.handleKey(typed.String())
	}
	return m, nil
}

func (m Model) start() (tea.Model, tea.Cmd) {
	err := m.engine.StartQuiz(m.size)
	if errors.Is(err, service.ErrNotReady) {
		m.waiting = true
		return m, retryStart()
	}
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.waiting = false
	m.notice = ""
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}
	if m.waiting {
		return m, nil
	}

	snap := m.engine.Snapshot()
	m.notice = ""

	switch key {
	case "1", "2", "3", "4":
		if !m.engine.SelectOption(int(key[0] - '1')) {
			m.notice = "No such option."
		}
	case "n", "right":
		if !m.engine.Advance() {
			m.notice = noticeFor(snap)
		}
	case "p", "left":
		if !m.engine.Retreat() {
			m.notice = "Already at the first question."
		}
	case "f", "enter":
		if !m.engine.Finish() {
			m.notice = noticeFor(snap)
		}
	case "r":
		if snap.State != entities.QuizCompleted {
			m.notice = "Finish the quiz first."
			return m, nil
		}
		if err := m.engine.PlayAgain(); err != nil {
			if errors.Is(err, service.ErrNotReady) {
				m.waiting = true
				return m, retryStart()
			}
			m.err = err
			return m, tea.Quit
		}
	}

	return m, nil
}

// noticeFor explains why next or finish was rejected.
func noticeFor(s entities.QuizSnapshot) string {
	switch {
	case s.State != entities.QuizInProgress:
		return "The quiz is over. Press r for another one."
	case !s.HasAnswer:
		return "Select an answer first."
	case s.IsLast:
		return "This is the last question. Press f to finish."
	default:
		return "Press n for the next question."
	}
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current screen.
func (m Model) View() string {
	if m.waiting {
		return renderWaiting(m.noColor)
	}

	snap := m.engine.Snapshot()
	if snap.State == entities.QuizCompleted {
		return renderResult(m.engine.Result(), m.noColor)
	}
	return renderQuestion(snap, m.notice, m.noColor)
}
