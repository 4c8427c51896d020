package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

func TestBuild_OneQuestionPerCategoryInOrder(t *testing.T) {
	b := NewQuestionBuilder(seeded(1))

	questions := b.Build(testCountries())

	require.Len(t, questions, 4*len(entities.Categories))
	for i, c := range entities.Categories {
		assert.Equal(t, c, questions[i].Category)
		assert.Equal(t, "japan", questions[i].CountryID)
	}
}

func TestBuild_Prompts(t *testing.T) {
	b := NewQuestionBuilder(seeded(1))

	questions := b.Build(testCountries()[:1])

	require.Len(t, questions, 5)
	assert.Equal(t, "What is the capital of Japan?", questions[0].Prompt)
	assert.Equal(t, "What is the primary language spoken in Japan?", questions[1].Prompt)
	assert.Equal(t, "Which country is famous for Sushi?", questions[2].Prompt)
	assert.Equal(t, "In which country is Golden Week celebrated?", questions[3].Prompt)
	assert.Equal(t, "What is the traditional clothing of Japan?", questions[4].Prompt)
}

func TestBuild_AnswersAndOptions(t *testing.T) {
	b := NewQuestionBuilder(seeded(3))

	for _, q := range b.Build(testCountries()) {
		assert.Len(t, q.Options, OptionsPerQuestion, q.Prompt)
		assert.True(t, q.HasOption(q.CorrectAnswer), q.Prompt)
		assertDistinctNonEmpty(t, q.Options)

		switch q.Category {
		case entities.CategoryFood, entities.CategoryHolidays:
			assert.Equal(t, q.CountryName, q.CorrectAnswer)
		}
	}
}

func TestBuild_SkipsMissingAttributes(t *testing.T) {
	countries := []*entities.Country{
		{ID: "a", Name: "Aland", Capital: "Alpha"},
		{ID: "b", Name: "Boland", Language: "Bolish", TraditionalFood: []string{""}},
		{ID: "c", Name: "Coland", Holidays: []entities.Holiday{{Name: "Harvest"}}},
	}
	b := NewQuestionBuilder(seeded(1))

	questions := b.Build(countries)

	require.Len(t, questions, 3)
	assert.Equal(t, entities.CategoryGeography, questions[0].Category)
	assert.Equal(t, []string{"Alpha"}, questions[0].Options)
	assert.Equal(t, entities.CategoryLanguage, questions[1].Category)
	assert.Equal(t, entities.CategoryHolidays, questions[2].Category)
	assert.Equal(t, "Coland", questions[2].CorrectAnswer)
	assert.ElementsMatch(t, []string{"Aland", "Boland", "Coland"}, questions[2].Options)
}

func TestBuild_EmptyCatalog(t *testing.T) {
	b := NewQuestionBuilder(seeded(1))

	assert.Empty(t, b.Build(nil))
}

func TestBuildForMode(t *testing.T) {
	tests := []struct {
		mode entities.QuizMode
		want int
	}{
		{entities.ModeMixed, 20},
		{entities.QuizMode(entities.CategoryGeography), 4},
		{entities.QuizMode(entities.CategoryLanguage), 4},
		{entities.QuizMode(entities.CategoryFood), 4},
		{entities.QuizMode(entities.CategoryHolidays), 4},
		{entities.QuizMode(entities.CategoryClothing), 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			b := NewQuestionBuilder(seeded(1))

			questions := b.BuildForMode(testCountries(), tt.mode)

			require.Len(t, questions, tt.want)
			for _, q := range questions {
				assert.True(t, tt.mode.Includes(q.Category))
			}
		})
	}
}
