package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

// renderQuiz renders a running quiz from its snapshot.
func renderQuiz(s entities.QuizSnapshot) (string, tgbotapi.InlineKeyboardMarkup) {
	return formatQuizQuestion(s), buildQuizQuestionKeyboard(s)
}

// renderResult renders a finished quiz.
func renderResult(res *entities.QuizResult) (string, tgbotapi.InlineKeyboardMarkup) {
	return formatQuizResult(res), buildQuizResultKeyboard(res.SessionID)
}

// renderCountry renders a country profile with the user's bookmark state.
func (h *Handler) renderCountry(ctx context.Context, userID int64, c *entities.Country) (string, tgbotapi.InlineKeyboardMarkup, error) {
	bookmarked, err := h.bookmarkService.IsBookmarked(ctx, userID, c.ID)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}
	return formatCountryMessage(c), buildCountryKeyboard(c.ID, bookmarked), nil
}

// renderCountryPage renders a page of countries, optionally limited to region.
// ok is false when the page does not exist.
func (h *Handler) renderCountryPage(region string, page int) (text string, kb tgbotapi.InlineKeyboardMarkup, ok bool, err error) {
	var countries []*entities.Country
	title := "🌍 All countries"
	if region == "" {
		countries, err = h.countryService.All()
	} else {
		countries, err = h.countryService.FilterByRegion(region)
		title = "🗺️ " + region
	}
	if err != nil {
		return "", kb, false, err
	}

	text, totalPages := buildCountriesPage(title, countries, page)
	if text == "" {
		return "", kb, false, nil
	}

	return text, buildCountryListKeyboard(countries, page, totalPages, region), true, nil
}

// renderSettings renders settings message with keyboard.
func (h *Handler) renderSettings(ctx context.Context, userID int64) (string, tgbotapi.InlineKeyboardMarkup, error) {
	settings, err := h.settingsService.GetOrCreate(ctx, userID)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}
	return formatSettings(settings), buildSettingsKeyboard(), nil
}
