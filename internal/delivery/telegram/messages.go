// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/service"
)

// Error messages.
const (
	msgCatalogNotReady     = "⏳ The cultural catalog is still loading. Please try again in a few seconds."
	msgCountryNotFound     = "Country not found. Try /search or /all."
	msgUseCountry          = "Use: /country japan"
	msgNothingFound        = "Nothing found. Try a country name, region or language."
	msgNoBookmarks         = "You have no bookmarks yet. Open a country and tap ⭐ to save it."
	msgBookmarksCleared    = "🗑 Removed %d bookmarks."
	msgBookmarksImported   = "📥 Imported %d new bookmarks."
	msgBookmarksExported   = "Your bookmarks. Send this file back to me to restore them."
	msgInvalidBookmarkFile = "Invalid bookmark format. Send a file created by /bookmarks export."
	msgBookmarkFileTooBig  = "This file is too large to be a bookmark export."
	msgNoHistory           = "You haven't finished any quizzes yet. Start one with /quiz."
	msgUnknownMode         = "Unknown quiz mode. Choose one of: mixed, geography, language, food, holidays, clothing."
	msgNoActiveQuiz        = "This quiz is no longer active. Start a new one with /quiz."
	msgSelectAnswerFirst   = "Select an answer first."
	msgActionUnavailable   = "This action is not available right now."
	msgSettingsSaved       = "Saved ✅"
	msgResetDone           = "🧹 Your bookmarks, quiz history and settings have been reset."
	msgResetCancelled      = "Reset cancelled."
	msgResetConfirm        = "⚠️ This removes all your bookmarks, quiz history and settings. Continue?"
	msgInternalError       = "Something went wrong. Please try again later."
	msgSettingsUnavailable = "Could not load settings. Please try again later."
	msgUnknownCommand      = "Unknown command. See /help for the list of commands."
)

const (
	countriesPerPage = 5
	progressBarWidth = 10
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// welcomeMessage builds the /start text.
func welcomeMessage() string {
	var sb strings.Builder

	sb.WriteString(bold("🌍 Cultural Explorer"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Discover the food, holidays, clothing and languages of countries around the world, then test yourself with a quiz."))
	sb.WriteString("\n\n")
	sb.WriteString(helpMessage())

	return sb.String()
}

// helpMessage lists the bot commands.
func helpMessage() string {
	lines := []string{
		"/all - browse every country",
		"/country <id> - open a country profile",
		"/search <text> - search by name, region or language",
		"/region [name] - browse a region",
		"/random - a random country",
		"/bookmarks [region|clear|export] - your saved countries",
		"send an exported bookmarks file to import it",
		"/quiz [mode] - start a quiz (mixed, geography, language, food, holidays, clothing)",
		"/history - your recent quiz results",
		"/settings - quiz length and default mode",
		"/reset - delete your data",
	}

	var sb strings.Builder
	sb.WriteString(bold("Commands"))
	sb.WriteString("\n")
	for _, l := range lines {
		sb.WriteString(md(l))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatCountryMessage formats a full country profile (MarkdownV2 safe).
func formatCountryMessage(c *entities.Country) string {
	var sb strings.Builder

	sb.WriteString(md(c.Flag + " "))
	sb.WriteString(bold(c.Name))
	sb.WriteString("\n")
	sb.WriteString(italic(c.Region))
	sb.WriteString("\n\n")

	if c.Description != "" {
		sb.WriteString(md(c.Description))
		sb.WriteString("\n\n")
	}

	writeField(&sb, "Capital", c.Capital)
	writeField(&sb, "Language", c.Language)
	writeField(&sb, "Currency", c.Currency)
	writeField(&sb, "Population", c.Population)
	writeField(&sb, "Greeting", c.Greeting)

	writeList(&sb, entities.Icon(string(entities.CategoryFood))+" Traditional food", c.TraditionalFood)

	if len(c.Holidays) > 0 {
		holidays := make([]string, 0, len(c.Holidays))
		for _, hd := range c.Holidays {
			line := hd.Name
			if hd.Date != "" {
				line += " (" + hd.Date + ")"
			}
			if hd.Description != "" {
				line += ": " + hd.Description
			}
			holidays = append(holidays, line)
		}
		writeList(&sb, entities.Icon(string(entities.CategoryHolidays))+" Holidays", holidays)
	}

	if c.Clothing.Traditional != "" {
		line := c.Clothing.Traditional
		if c.Clothing.Description != "" {
			line += ": " + c.Clothing.Description
		}
		writeList(&sb, entities.Icon(string(entities.CategoryClothing))+" Traditional clothing", []string{line})
	}

	if len(c.Phrases) > 0 {
		phrases := make([]string, 0, len(c.Phrases))
		for _, p := range c.Phrases {
			phrases = append(phrases, p.Phrase+" - "+p.Translation)
		}
		writeList(&sb, entities.Icon(string(entities.CategoryLanguage))+" Phrases", phrases)
	}

	writeList(&sb, "🤝 Customs", c.Customs)
	writeList(&sb, "💡 Fun facts", c.FunFacts)

	return strings.TrimRight(sb.String(), "\n")
}

func writeField(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	sb.WriteString(bold(name + ":"))
	sb.WriteString(" ")
	sb.WriteString(md(value))
	sb.WriteString("\n")
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(bold(title))
	sb.WriteString("\n")
	for _, item := range items {
		sb.WriteString(md("• " + item))
		sb.WriteString("\n")
	}
}

// formatCountryLine formats a country as a single list line.
func formatCountryLine(c *entities.Country) string {
	return md(fmt.Sprintf("%s %s · %s · %s", c.Flag, c.Name, c.Region, c.Language))
}

// buildCountriesPage builds one page of a country list and reports the page count.
func buildCountriesPage(title string, countries []*entities.Country, page int) (text string, totalPages int) {
	totalPages = (len(countries) + countriesPerPage - 1) / countriesPerPage
	if totalPages == 0 || page < 0 || page >= totalPages {
		return "", totalPages
	}

	pageCountries := paginateCountries(countries, page, countriesPerPage)

	var sb strings.Builder
	sb.WriteString(bold(title))
	if totalPages > 1 {
		sb.WriteString(md(fmt.Sprintf(" (%d/%d)", page+1, totalPages)))
	}
	sb.WriteString("\n\n")
	for _, c := range pageCountries {
		sb.WriteString(formatCountryLine(c))
		sb.WriteString("\n")
	}
	return sb.String(), totalPages
}

func paginateCountries(countries []*entities.Country, page, perPage int) []*entities.Country {
	start := page * perPage
	if start >= len(countries) {
		return nil
	}
	end := min(start+perPage, len(countries))
	return countries[start:end]
}

// formatBookmarks formats the user's bookmark list.
func formatBookmarks(bookmarks []*entities.Bookmark) string {
	var sb strings.Builder
	sb.WriteString(bold(fmt.Sprintf("⭐ Bookmarks (%d)", len(bookmarks))))
	sb.WriteString("\n\n")
	for _, b := range bookmarks {
		sb.WriteString(md(fmt.Sprintf("%s %s · %s", b.Flag, b.Name, b.Region)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := min(current*length/total, length)
	empty := length - filled
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", empty) + "]"
}

// formatQuizMode returns a human readable mode with its icon.
func formatQuizMode(mode entities.QuizMode) string {
	return entities.Icon(string(mode)) + " " + capitalize(string(mode))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatQuizQuestion renders the current question of a running quiz.
func formatQuizQuestion(s entities.QuizSnapshot) string {
	q := s.Question

	var sb strings.Builder
	sb.WriteString(md(fmt.Sprintf("%s Question %d of %d", formatQuizMode(s.Mode), s.Position+1, s.Total)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("%s %d%%", buildProgressBar(s.Position+1, s.Total, progressBarWidth), s.Progress())))
	sb.WriteString("\n\n")
	sb.WriteString(md(entities.Icon(string(q.Category)) + " "))
	sb.WriteString(bold(q.Prompt))

	if s.HasAnswer {
		sb.WriteString("\n\n")
		sb.WriteString(md("Your answer: "))
		sb.WriteString(italic(s.Selected))
	}

	return sb.String()
}

// formatQuizResult renders the score and the answer breakdown.
func formatQuizResult(res *entities.QuizResult) string {
	pct := res.Percentage()

	var sb strings.Builder
	sb.WriteString(bold("🏁 Quiz complete!"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Score: "))
	sb.WriteString(bold(fmt.Sprintf("%d/%d (%d%%)", res.Score, res.Total, pct)))
	sb.WriteString("\n")
	sb.WriteString(md(buildProgressBar(res.Score, res.Total, progressBarWidth)))
	sb.WriteString("\n")
	sb.WriteString(md(service.PerformanceMessage(pct)))
	sb.WriteString("\n\n")
	sb.WriteString(bold("Review"))
	sb.WriteString("\n")

	for i, r := range res.Breakdown {
		mark := "❌"
		if r.Correct {
			mark = "✅"
		}
		sb.WriteString(md(fmt.Sprintf("%s %d. %s", mark, i+1, r.Question.Prompt)))
		sb.WriteString("\n")
		if !r.Correct {
			answer := r.UserAnswer
			if !r.Answered {
				answer = "no answer"
			}
			sb.WriteString(md(fmt.Sprintf("    Your answer: %s, correct: %s", answer, r.Question.CorrectAnswer)))
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// formatHistory renders recent quiz results together with the overall summary.
func formatHistory(results []*entities.QuizResult, summary *entities.ResultSummary) string {
	var sb strings.Builder
	sb.WriteString(bold("📊 Your quiz history"))
	sb.WriteString("\n\n")

	if summary != nil {
		sb.WriteString(md(fmt.Sprintf("Quizzes taken: %d", summary.QuizzesTaken)))
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("Average: %.0f%%", summary.AveragePercentage)))
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("Best: %d/%d", summary.BestScore, summary.BestTotal)))
		sb.WriteString("\n\n")
	}

	for _, r := range results {
		sb.WriteString(md(fmt.Sprintf("%s %s  %d/%d (%d%%)",
			r.CompletedAt.Format("2006-01-02 15:04"),
			formatQuizMode(r.Mode),
			r.Score, r.Total, r.Percentage(),
		)))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// formatSettings renders the settings screen.
func formatSettings(settings *entities.UserSettings) string {
	return fmt.Sprintf(
		"%s\n\n%s %s\n%s %s",
		bold("⚙️ Settings"),
		md("📝 Quiz length:"),
		bold(fmt.Sprintf("%d questions", settings.QuizLength)),
		md("🎲 Default mode:"),
		bold(formatQuizMode(settings.QuizMode)),
	)
}
