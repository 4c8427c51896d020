package entities

import (
	"time"

	"github.com/google/uuid"
)

// QuizState is the lifecycle state of a quiz session.
type QuizState string

const (
	QuizNotStarted QuizState = "not_started"
	QuizInProgress QuizState = "in_progress"
	QuizCompleted  QuizState = "completed"
)

// QuizSession is a single run through a fixed bank of questions.
// The session owns its bank: it copies the questions it is started with,
// so regenerating the shared pool never changes a running quiz.
//
// Every transition that is not valid in the current state returns false
// and leaves the session untouched.
type QuizSession struct {
	ID          string     // unique session ID, set on start
	Mode        QuizMode   // mode the bank was generated for
	State       QuizState  // current lifecycle state
	StartedAt   time.Time  // timestamp when the quiz started
	CompletedAt *time.Time // timestamp when the quiz was finished (nullable)

	bank     []Question
	position int
	answers  map[int]string
}

// NewQuizSession creates a session in the NotStarted state.
func NewQuizSession(mode QuizMode) *QuizSession {
	return &QuizSession{
		Mode:    mode,
		State:   QuizNotStarted,
		answers: make(map[int]string),
	}
}

// Start takes the first size questions of an already shuffled bank.
// A size <= 0 or larger than the bank takes the whole bank.
func (qs *QuizSession) Start(shuffled []Question, size int) bool {
	if qs.State != QuizNotStarted || len(shuffled) == 0 {
		return false
	}
	if size <= 0 || size > len(shuffled) {
		size = len(shuffled)
	}

	qs.bank = make([]Question, size)
	copy(qs.bank, shuffled[:size])
	for i := range qs.bank {
		qs.bank[i].Options = append([]string(nil), qs.bank[i].Options...)
	}

	qs.ID = uuid.NewString()
	qs.position = 0
	qs.answers = make(map[int]string, size)
	qs.State = QuizInProgress
	qs.StartedAt = time.Now()
	qs.CompletedAt = nil
	return true
}

// SelectAnswer records option for the current question. It never advances.
func (qs *QuizSession) SelectAnswer(option string) bool {
	if qs.State != QuizInProgress {
		return false
	}
	if !qs.bank[qs.position].HasOption(option) {
		return false
	}
	qs.answers[qs.position] = option
	return true
}

// Advance moves to the next question once the current one is answered.
func (qs *QuizSession) Advance() bool {
	if qs.State != QuizInProgress || qs.IsLast() || !qs.currentAnswered() {
		return false
	}
	qs.position++
	return true
}

// Retreat moves to the previous question.
func (qs *QuizSession) Retreat() bool {
	if qs.State != QuizInProgress || qs.position == 0 {
		return false
	}
	qs.position--
	return true
}

// Finish completes the quiz. Only valid on the answered last question.
func (qs *QuizSession) Finish() bool {
	if qs.State != QuizInProgress || !qs.IsLast() || !qs.currentAnswered() {
		return false
	}
	qs.State = QuizCompleted
	now := time.Now()
	qs.CompletedAt = &now
	return true
}

// Restart discards a completed session so a fresh one can be started.
func (qs *QuizSession) Restart() bool {
	if qs.State != QuizCompleted {
		return false
	}
	qs.reset()
	return true
}

// Close discards the session regardless of its state.
func (qs *QuizSession) Close() {
	qs.reset()
}

func (qs *QuizSession) reset() {
	qs.ID = ""
	qs.State = QuizNotStarted
	qs.bank = nil
	qs.position = 0
	qs.answers = make(map[int]string)
	qs.StartedAt = time.Time{}
	qs.CompletedAt = nil
}

// Current returns the question at the current position.
func (qs *QuizSession) Current() (Question, bool) {
	if qs.State == QuizNotStarted || len(qs.bank) == 0 {
		return Question{}, false
	}
	return qs.bank[qs.position], true
}

// Position returns the zero-based index of the current question.
func (qs *QuizSession) Position() int {
	return qs.position
}

// Total returns the number of questions in the session bank.
func (qs *QuizSession) Total() int {
	return len(qs.bank)
}

// Answer returns the recorded answer at position p.
func (qs *QuizSession) Answer(p int) (string, bool) {
	a, ok := qs.answers[p]
	return a, ok
}

// IsLast reports whether the current question is the final one.
func (qs *QuizSession) IsLast() bool {
	return len(qs.bank) > 0 && qs.position == len(qs.bank)-1
}

func (qs *QuizSession) currentAnswered() bool {
	_, ok := qs.answers[qs.position]
	return ok
}

// Result scores the session against the recorded answers.
func (qs *QuizSession) Result() QuizResult {
	res := QuizResult{
		SessionID: qs.ID,
		Mode:      qs.Mode,
		Total:     len(qs.bank),
		Breakdown: make([]AnswerReview, 0, len(qs.bank)),
	}
	if qs.CompletedAt != nil {
		res.CompletedAt = *qs.CompletedAt
	}

	for p, q := range qs.bank {
		answer, answered := qs.answers[p]
		correct := answered && q.IsCorrect(answer)
		if correct {
			res.Score++
		}
		res.Breakdown = append(res.Breakdown, AnswerReview{
			Question:   q,
			UserAnswer: answer,
			Answered:   answered,
			Correct:    correct,
		})
	}

	return res
}

// QuizSnapshot is a read-only view of a session for renderers.
type QuizSnapshot struct {
	SessionID  string
	Mode       QuizMode
	State      QuizState
	Position   int      // zero-based
	Total      int      // questions in the bank
	Question   Question // current question, zero value when not started
	Selected   string   // recorded answer for the current question
	HasAnswer  bool
	IsFirst    bool
	IsLast     bool
	CanAdvance bool
	CanFinish  bool
}

// Progress returns the share of the quiz reached, in percent.
func (s QuizSnapshot) Progress() int {
	if s.Total == 0 {
		return 0
	}
	return (s.Position + 1) * 100 / s.Total
}

// Snapshot captures the current session state.
func (qs *QuizSession) Snapshot() QuizSnapshot {
	snap := QuizSnapshot{
		SessionID: qs.ID,
		Mode:      qs.Mode,
		State:     qs.State,
		Position:  qs.position,
		Total:     len(qs.bank),
	}
	if qs.State == QuizNotStarted {
		return snap
	}

	snap.Question = qs.bank[qs.position]
	snap.Selected, snap.HasAnswer = qs.answers[qs.position]
	snap.IsFirst = qs.position == 0
	snap.IsLast = qs.IsLast()
	if qs.State == QuizInProgress {
		snap.CanAdvance = snap.HasAnswer && !snap.IsLast
		snap.CanFinish = snap.HasAnswer && snap.IsLast
	}

	return snap
}
