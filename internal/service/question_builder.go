package service

import (
	"fmt"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

// QuestionBuilder turns catalog countries into quiz questions.
type QuestionBuilder struct {
	options *OptionGenerator
	rng     Rand
}

// NewQuestionBuilder creates a builder that samples options with rng.
func NewQuestionBuilder(rng Rand) *QuestionBuilder {
	return &QuestionBuilder{
		options: NewOptionGenerator(rng),
		rng:     rng,
	}
}

// attribute extracts a category's answer from a country.
type attribute func(c *entities.Country) string

// Build emits one question per category a country has data for.
// Countries lacking an attribute simply get no question for it.
func (b *QuestionBuilder) Build(countries []*entities.Country) []entities.Question {
	questions := make([]entities.Question, 0, len(countries)*len(entities.Categories))

	for _, country := range countries {
		if q, ok := b.capitalQuestion(country, countries); ok {
			questions = append(questions, q)
		}
		if q, ok := b.languageQuestion(country, countries); ok {
			questions = append(questions, q)
		}
		if q, ok := b.foodQuestion(country, countries); ok {
			questions = append(questions, q)
		}
		if q, ok := b.holidayQuestion(country, countries); ok {
			questions = append(questions, q)
		}
		if q, ok := b.clothingQuestion(country, countries); ok {
			questions = append(questions, q)
		}
	}

	return questions
}

// BuildForMode builds questions, keeps those matching mode and shuffles them.
func (b *QuestionBuilder) BuildForMode(countries []*entities.Country, mode entities.QuizMode) []entities.Question {
	all := b.Build(countries)

	filtered := all[:0]
	for _, q := range all {
		if mode.Includes(q.Category) {
			filtered = append(filtered, q)
		}
	}

	Shuffle(b.rng, filtered)
	return filtered
}

func (b *QuestionBuilder) capitalQuestion(target *entities.Country, all []*entities.Country) (entities.Question, bool) {
	get := func(c *entities.Country) string { return c.Capital }
	return b.newQuestion(target, all, entities.CategoryGeography, get(target), get,
		fmt.Sprintf("What is the capital of %s?", target.Name))
}

func (b *QuestionBuilder) languageQuestion(target *entities.Country, all []*entities.Country) (entities.Question, bool) {
	get := func(c *entities.Country) string { return c.Language }
	return b.newQuestion(target, all, entities.CategoryLanguage, get(target), get,
		fmt.Sprintf("What is the primary language spoken in %s?", target.Name))
}

func (b *QuestionBuilder) foodQuestion(target *entities.Country, all []*entities.Country) (entities.Question, bool) {
	food, ok := target.SignatureFood()
	if !ok {
		return entities.Question{}, false
	}
	return b.newQuestion(target, all, entities.CategoryFood, target.Name, countryName,
		fmt.Sprintf("Which country is famous for %s?", food))
}

func (b *QuestionBuilder) holidayQuestion(target *entities.Country, all []*entities.Country) (entities.Question, bool) {
	holiday, ok := target.SignatureHoliday()
	if !ok {
		return entities.Question{}, false
	}
	return b.newQuestion(target, all, entities.CategoryHolidays, target.Name, countryName,
		fmt.Sprintf("In which country is %s celebrated?", holiday.Name))
}

func (b *QuestionBuilder) clothingQuestion(target *entities.Country, all []*entities.Country) (entities.Question, bool) {
	get := func(c *entities.Country) string { return c.Clothing.Traditional }
	return b.newQuestion(target, all, entities.CategoryClothing, get(target), get,
		fmt.Sprintf("What is the traditional clothing of %s?", target.Name))
}

func countryName(c *entities.Country) string { return c.Name }

// newQuestion assembles a question whose distractors come from the same
// attribute of every other country.
func (b *QuestionBuilder) newQuestion(
	target *entities.Country,
	all []*entities.Country,
	category entities.Category,
	correct string,
	peerValue attribute,
	prompt string,
) (entities.Question, bool) {
	if correct == "" {
		return entities.Question{}, false
	}

	return entities.Question{
		Prompt:        prompt,
		Options:       b.options.Options(correct, peerValues(target, all, peerValue)),
		CorrectAnswer: correct,
		Category:      category,
		CountryID:     target.ID,
		CountryName:   target.Name,
	}, true
}

// peerValues collects an attribute from every country other than target.
func peerValues(target *entities.Country, all []*entities.Country, get attribute) []string {
	values := make([]string, 0, len(all))
	for _, c := range all {
		if c.ID == target.ID {
			continue
		}
		values = append(values, get(c))
	}
	return values
}
