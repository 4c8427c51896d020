package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/repository"
	"github.com/aliskhannn/cultural-explorer-bot/internal/service"
)

// handleStart sends the welcome message.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, welcomeMessage()))
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, helpMessage()))
	}
}

func (h *Handler) handleUnknown() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

// handleCountry shows a country profile by id.
func (h *Handler) handleCountry(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		id := strings.ToLower(strings.TrimSpace(args))
		if id == "" {
			return h.send(newPlainMessage(chatID, msgUseCountry))
		}

		country, err := h.countryService.Get(id)
		if err != nil {
			if handled, sendErr := h.sendCatalogError(chatID, err); handled {
				return sendErr
			}
			return err
		}

		text, kb, err := h.renderCountry(ctx, userID, country)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

// handleRandom shows a random country.
func (h *Handler) handleRandom(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		country, err := h.countryService.Random()
		if err != nil {
			if handled, sendErr := h.sendCatalogError(chatID, err); handled {
				return sendErr
			}
			return err
		}

		text, kb, err := h.renderCountry(ctx, userID, country)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

// handleAll shows the first page of the whole catalog.
func (h *Handler) handleAll() HandlerFunc {
	return h.countryPage("")
}

// handleRegion shows the region picker, or the first page of a region.
func (h *Handler) handleRegion(args string) HandlerFunc {
	region := strings.TrimSpace(args)
	if region != "" && region != service.RegionAll {
		return h.countryPage(h.canonicalRegion(region))
	}

	return func(ctx context.Context, chatID int64) error {
		regions, err := h.countryService.Regions()
		if err != nil {
			if handled, sendErr := h.sendCatalogError(chatID, err); handled {
				return sendErr
			}
			return err
		}

		msg := newMessage(chatID, bold("🗺️ Choose a region"))
		msg.ReplyMarkup = buildRegionKeyboard(regions)
		return h.send(msg)
	}
}

// canonicalRegion maps user input to the catalog spelling of a region.
func (h *Handler) canonicalRegion(input string) string {
	regions, err := h.countryService.Regions()
	if err != nil {
		return input
	}
	for _, r := range regions {
		if strings.EqualFold(r, input) {
			return r
		}
	}
	return input
}

func (h *Handler) countryPage(region string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb, ok, err := h.renderCountryPage(region, 0)
		if err != nil {
			if handled, sendErr := h.sendCatalogError(chatID, err); handled {
				return sendErr
			}
			return err
		}
		if !ok {
			return h.send(newPlainMessage(chatID, msgNothingFound))
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

// handleSearch searches by name, region or language. Plain text messages
// are treated as search queries too.
func (h *Handler) handleSearch(query string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		countries, err := h.countryService.Search(query)
		if err != nil {
			if handled, sendErr := h.sendCatalogError(chatID, err); handled {
				return sendErr
			}
			return err
		}
		if len(countries) == 0 {
			return h.send(newPlainMessage(chatID, msgNothingFound))
		}

		title := "🔎 Featured countries"
		if q := strings.TrimSpace(query); q != "" {
			title = "🔎 Results for “" + q + "”"
		}

		var sb strings.Builder
		sb.WriteString(bold(title))
		sb.WriteString("\n\n")
		for _, c := range countries {
			sb.WriteString(formatCountryLine(c))
			sb.WriteString("\n")
		}

		msg := newMessage(chatID, sb.String())
		// Buttons only for the first page of matches; the text lists all of them.
		msg.ReplyMarkup = buildCountryListKeyboard(countries, 0, 1, "")
		return h.send(msg)
	}
}

// handleBookmarks lists the user's bookmarks. "/bookmarks <region>" filters
// them, "/bookmarks clear" removes them all and "/bookmarks export" sends
// them as a JSON file.
func (h *Handler) handleBookmarks(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		arg := strings.TrimSpace(args)

		if strings.EqualFold(arg, "export") {
			return h.exportBookmarks(ctx, userID, chatID)
		}

		if strings.EqualFold(arg, "clear") {
			n, err := h.bookmarkService.Clear(ctx, userID)
			if err != nil {
				return err
			}
			return h.send(newPlainMessage(chatID, fmt.Sprintf(msgBookmarksCleared, n)))
		}

		var (
			bookmarks []*entities.Bookmark
			err       error
		)
		if arg == "" {
			bookmarks, err = h.bookmarkService.List(ctx, userID)
		} else {
			bookmarks, err = h.bookmarkService.ListByRegion(ctx, userID, arg)
		}
		if err != nil {
			return err
		}
		if len(bookmarks) == 0 {
			return h.send(newPlainMessage(chatID, msgNoBookmarks))
		}
		return h.send(newMessage(chatID, formatBookmarks(bookmarks)))
	}
}

// handleQuiz starts a quiz. Without arguments the user's default mode is used.
func (h *Handler) handleQuiz(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		mode := strings.ToLower(strings.TrimSpace(args))

		snap, err := h.quizService.Start(ctx, userID, mode)
		if err != nil {
			return h.sendQuizError(chatID, err)
		}

		h.logger.Debug("quiz command",
			zap.Int64("user_id", userID),
			zap.String("session_id", snap.SessionID),
		)

		text, kb := renderQuiz(snap)
		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

// handleHistory shows recent results and the overall summary.
func (h *Handler) handleHistory(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		results, err := h.quizService.History(ctx, userID)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return h.send(newPlainMessage(chatID, msgNoHistory))
		}

		summary, err := h.quizService.Summary(ctx, userID)
		if err != nil {
			h.logger.Warn("failed to load quiz summary",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			summary = nil
		}

		return h.send(newMessage(chatID, formatHistory(results, summary)))
	}
}

func (h *Handler) handleSettings(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb, err := h.renderSettings(ctx, userID)
		if err != nil {
			h.logger.Error("failed to load settings",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return h.send(newPlainMessage(chatID, msgSettingsUnavailable))
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

// handleReset asks for confirmation before wiping the user's data.
func (h *Handler) handleReset() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newPlainMessage(chatID, msgResetConfirm)
		msg.ReplyMarkup = buildResetKeyboard()
		return h.send(msg)
	}
}

// sendCatalogError answers known catalog errors with a user message.
// handled is false for unexpected errors.
func (h *Handler) sendCatalogError(chatID int64, err error) (handled bool, sendErr error) {
	switch {
	case errors.Is(err, repository.ErrCatalogNotReady):
		return true, h.send(newPlainMessage(chatID, msgCatalogNotReady))
	case errors.Is(err, repository.ErrCountryNotFound):
		return true, h.send(newPlainMessage(chatID, msgCountryNotFound))
	default:
		return false, nil
	}
}

// sendQuizError answers quiz errors with a user message.
func (h *Handler) sendQuizError(chatID int64, err error) error {
	switch {
	case errors.Is(err, service.ErrNotReady):
		return h.send(newPlainMessage(chatID, msgCatalogNotReady))
	case errors.Is(err, service.ErrUnknownMode):
		msg := newPlainMessage(chatID, msgUnknownMode)
		msg.ReplyMarkup = buildQuizModeStartKeyboard()
		return h.send(msg)
	case errors.Is(err, service.ErrNoActiveQuiz), errors.Is(err, service.ErrStaleSession):
		return h.send(newPlainMessage(chatID, msgNoActiveQuiz))
	default:
		return err
	}
}
