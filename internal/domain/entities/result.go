package entities

import "time"

// AnswerReview is one line of a quiz result breakdown.
type AnswerReview struct {
	Question   Question
	UserAnswer string // empty when unanswered
	Answered   bool
	Correct    bool
}

// QuizResult is the scored outcome of a quiz session.
type QuizResult struct {
	ID          string    // result ID, set when persisted
	UserID      int64     // user who took the quiz
	SessionID   string    // session the result belongs to
	Mode        QuizMode  // quiz mode
	Score       int       // number of correct answers
	Total       int       // number of questions
	CompletedAt time.Time // when the quiz was finished
	Breakdown   []AnswerReview
}

// Percentage returns the score rounded to the nearest percent.
func (r QuizResult) Percentage() int {
	if r.Total == 0 {
		return 0
	}
	return (r.Score*200 + r.Total) / (r.Total * 2)
}

// ResultSummary aggregates a user's finished quizzes.
type ResultSummary struct {
	QuizzesTaken      int
	AveragePercentage float64
	BestScore         int
	BestTotal         int
}
