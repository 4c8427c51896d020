package entities

import "slices"

// Category tags what kind of knowledge a question checks.
type Category string

const (
	CategoryGeography Category = "geography"
	CategoryLanguage  Category = "language"
	CategoryFood      Category = "food"
	CategoryHolidays  Category = "holidays"
	CategoryClothing  Category = "clothing"
)

// Categories lists all question categories in generation order.
var Categories = []Category{
	CategoryGeography,
	CategoryLanguage,
	CategoryFood,
	CategoryHolidays,
	CategoryClothing,
}

// QuizMode selects which categories a question pool contains.
type QuizMode string

// ModeMixed includes every category.
const ModeMixed QuizMode = "mixed"

// ParseQuizMode validates a mode string. An empty string means mixed.
func ParseQuizMode(s string) (QuizMode, bool) {
	if s == "" || s == string(ModeMixed) {
		return ModeMixed, true
	}
	if slices.Contains(Categories, Category(s)) {
		return QuizMode(s), true
	}
	return "", false
}

// Includes reports whether questions of category c belong to the mode.
func (m QuizMode) Includes(c Category) bool {
	return m == ModeMixed || Category(m) == c
}

// Icon returns the emoji shown next to a category or mode.
func Icon(tag string) string {
	switch tag {
	case string(CategoryGeography):
		return "🌍"
	case string(CategoryLanguage):
		return "💬"
	case string(CategoryFood):
		return "🍽️"
	case string(CategoryHolidays):
		return "🎉"
	case string(CategoryClothing):
		return "👘"
	case string(ModeMixed):
		return "🌟"
	default:
		return "❓"
	}
}

// Question is a single multiple choice quiz question.
type Question struct {
	Prompt        string   // question text
	Options       []string // distinct options, at most 4
	CorrectAnswer string   // always one of Options
	Category      Category // question category
	CountryID     string   // source country id
	CountryName   string   // source country name
}

// HasOption reports whether option is one of the question's options.
func (q Question) HasOption(option string) bool {
	return slices.Contains(q.Options, option)
}

// IsCorrect reports whether answer matches the correct answer exactly.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}

// CorrectIndex returns the index of the correct answer in Options or -1.
func (q Question) CorrectIndex() int {
	return slices.Index(q.Options, q.CorrectAnswer)
}
