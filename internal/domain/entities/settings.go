package entities

import (
	"slices"
	"time"
)

// DefaultQuizLength is the number of questions in a quiz unless the user changes it.
const DefaultQuizLength = 10

// QuizLengths lists the quiz lengths a user can choose from.
var QuizLengths = []int{5, 10, 15, 20}

// UserSettings stores user-specific quiz preferences.
type UserSettings struct {
	UserID     int64
	QuizLength int      // number of questions per quiz
	QuizMode   QuizMode // default quiz mode
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUserSettings creates a new UserSettings instance with default values.
func NewUserSettings(userID int64) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:     userID,
		QuizLength: DefaultQuizLength,
		QuizMode:   ModeMixed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsValidQuizLength reports whether n is one of QuizLengths.
func IsValidQuizLength(n int) bool {
	return slices.Contains(QuizLengths, n)
}
