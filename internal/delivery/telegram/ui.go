package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

// buildCountryListKeyboard builds one button per country on the page plus
// pagination controls.
func buildCountryListKeyboard(countries []*entities.Country, page, totalPages int, region string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, c := range paginateCountries(countries, page, countriesPerPage) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(c.Flag+" "+c.Name, buildCountryCallback(c.ID)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", buildPageCallback(page-1, region)))
	}
	if page < totalPages-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildPageCallback(page+1, region)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildRegionKeyboard builds one button per region.
func buildRegionKeyboard(regions []string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, r := range regions {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗺️ "+r, buildRegionCallback(r)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildCountryKeyboard builds keyboard for a country profile.
func buildCountryKeyboard(countryID string, bookmarked bool) tgbotapi.InlineKeyboardMarkup {
	label := "⭐ Bookmark"
	if bookmarked {
		label = "✖️ Remove bookmark"
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildBookmarkCallback(countryID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Take a quiz", buildQuizStartCallback(string(entities.ModeMixed))),
		),
	)
}

// buildQuizModeStartKeyboard lets the user pick a mode for a new quiz.
func buildQuizModeStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return buildModeKeyboard(func(mode string) string {
		return buildQuizStartCallback(mode)
	}, nil)
}

// buildQuizQuestionKeyboard builds option buttons and navigation for the
// current question. The recorded answer is marked.
func buildQuizQuestionKeyboard(s entities.QuizSnapshot) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, option := range s.Question.Options {
		label := option
		if s.HasAnswer && option == s.Selected {
			label = "👉 " + option
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizAnswerCallback(s.SessionID, i)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if !s.IsFirst {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", buildQuizNavCallback(quizPrev, s.SessionID)))
	}
	if s.CanAdvance {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildQuizNavCallback(quizNext, s.SessionID)))
	}
	if s.CanFinish {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("🏁 Finish", buildQuizNavCallback(quizFinish, s.SessionID)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✖️ Close", buildQuizCloseCallback(s.SessionID)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard(sessionID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Take Another Quiz", buildQuizRestartCallback(sessionID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Choose mode", buildQuizStartCallback("")),
			tgbotapi.NewInlineKeyboardButtonData("✖️ Close", buildQuizCloseCallback(sessionID)),
		),
	)
}

// buildSettingsKeyboard builds main settings keyboard.
func buildSettingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Quiz length", buildSettingsCallback(settingsQuizLength)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Default mode", buildSettingsCallback(settingsQuizMode)),
		),
	)
}

// buildQuizLengthKeyboard builds keyboard for quiz length setting.
func buildQuizLengthKeyboard(current int) tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, n := range entities.QuizLengths {
		label := strconv.Itoa(n)
		if n == current {
			label = "✅ " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildSettingsCallback(settingsQuizLength, strconv.Itoa(n))))
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

// buildQuizModeKeyboard builds keyboard for the default quiz mode setting.
func buildQuizModeKeyboard(current entities.QuizMode) tgbotapi.InlineKeyboardMarkup {
	back := tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
	)
	return buildModeKeyboard(func(mode string) string {
		return buildSettingsCallback(settingsQuizMode, mode)
	}, &current, back)
}

// buildModeKeyboard lists mixed and every category, two per row.
func buildModeKeyboard(callback func(mode string) string, current *entities.QuizMode, extra ...[]tgbotapi.InlineKeyboardButton) tgbotapi.InlineKeyboardMarkup {
	modes := []entities.QuizMode{entities.ModeMixed}
	for _, c := range entities.Categories {
		modes = append(modes, entities.QuizMode(c))
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, m := range modes {
		label := formatQuizMode(m)
		if current != nil && *current == m {
			label = "✅ " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, callback(string(m))))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, extra...)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildResetKeyboard asks the user to confirm a reset.
func buildResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Yes, reset", buildResetConfirmCallback()),
			tgbotapi.NewInlineKeyboardButtonData("Cancel", buildResetCancelCallback()),
		),
	)
}
