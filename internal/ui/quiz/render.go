package quiz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/service"
)

const barWidth = 20

var (
	colorTitle    = lipgloss.Color("33")
	colorMuted    = lipgloss.Color("242")
	colorSelected = lipgloss.Color("212")
	colorCorrect  = lipgloss.Color("42")
	colorWrong    = lipgloss.Color("196")
	colorNotice   = lipgloss.Color("214")
)

func renderWaiting(noColor bool) string {
	return stylize("⏳ Loading questions, please wait...", noColor, colorMuted) + "\n"
}

// renderQuestion renders the current question from a snapshot.
func renderQuestion(s entities.QuizSnapshot, notice string, noColor bool) string {
	q := s.Question

	header := stylize(fmt.Sprintf("%s %s quiz · Question %d of %d",
		entities.Icon(string(s.Mode)), s.Mode, s.Position+1, s.Total), noColor, colorTitle)
	progress := stylize(fmt.Sprintf("%s %d%%", progressBar(s.Position+1, s.Total), s.Progress()), noColor, colorMuted)
	prompt := entities.Icon(string(q.Category)) + " " + bold(q.Prompt, noColor)

	options := make([]string, 0, len(q.Options))
	for i, opt := range q.Options {
		line := fmt.Sprintf("  [%d] %s", i+1, opt)
		if s.HasAnswer && opt == s.Selected {
			line = stylize(fmt.Sprintf("> [%d] %s", i+1, opt), noColor, colorSelected)
		}
		options = append(options, line)
	}

	parts := []string{header, progress, "", prompt, "", strings.Join(options, "\n"), "", renderHelp(s, noColor)}
	if notice != "" {
		parts = append(parts, stylize(notice, noColor, colorNotice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func renderHelp(s entities.QuizSnapshot, noColor bool) string {
	keys := []string{fmt.Sprintf("1-%d select", len(s.Question.Options))}
	if !s.IsFirst {
		keys = append(keys, "p/← previous")
	}
	if s.CanAdvance {
		keys = append(keys, "n/→ next")
	}
	if s.CanFinish {
		keys = append(keys, "f finish")
	}
	keys = append(keys, "q quit")
	return stylize(strings.Join(keys, " · "), noColor, colorMuted)
}

// renderResult renders the score and the answer review.
func renderResult(res entities.QuizResult, noColor bool) string {
	pct := res.Percentage()

	lines := []string{
		stylize("🏁 Quiz complete!", noColor, colorTitle),
		"",
		bold(fmt.Sprintf("Score: %d/%d (%d%%)", res.Score, res.Total, pct), noColor),
		progressBar(res.Score, res.Total),
		service.PerformanceMessage(pct),
		"",
	}

	for i, r := range res.Breakdown {
		if r.Correct {
			lines = append(lines, stylize(fmt.Sprintf("✓ %d. %s", i+1, r.Question.Prompt), noColor, colorCorrect))
			continue
		}
		answer := r.UserAnswer
		if !r.Answered {
			answer = "no answer"
		}
		lines = append(lines,
			stylize(fmt.Sprintf("✗ %d. %s", i+1, r.Question.Prompt), noColor, colorWrong),
			fmt.Sprintf("     your answer: %s, correct: %s", answer, r.Question.CorrectAnswer),
		)
	}

	lines = append(lines, "", stylize("r take another quiz · q quit", noColor, colorMuted))
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func progressBar(current, total int) string {
	if total <= 0 {
		return "[" + strings.Repeat("░", barWidth) + "]"
	}
	filled := min(current*barWidth/total, barWidth)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

func bold(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
