package telegram

import (
	"context"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the part of tgbotapi.BotAPI the handler needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	GetFileDirectURL(fileID string) (string, error)
}

const fileDownloadTimeout = 30 * time.Second

type Handler struct {
	bot             Sender
	httpClient      *http.Client
	logger          *zap.Logger
	countryService  CountryService
	bookmarkService BookmarkService
	quizService     QuizService
	settingsService SettingsService
	userService     UserService
	resetService    ResetService
}

func NewHandler(
	bot Sender,
	logger *zap.Logger,
	countryService CountryService,
	bookmarkService BookmarkService,
	quizService QuizService,
	settingsService SettingsService,
	userService UserService,
	resetService ResetService,
) *Handler {
	return &Handler{
		bot:             bot,
		httpClient:      &http.Client{Timeout: fileDownloadTimeout},
		logger:          logger,
		countryService:  countryService,
		bookmarkService: bookmarkService,
		quizService:     quizService,
		settingsService: settingsService,
		userService:     userService,
		resetService:    resetService,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	err := h.userService.EnsureUser(ctx, from.ID, chatID, from.FirstName, from.UserName, from.LanguageCode)
	if err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.Document != nil {
		_ = h.withErrorHandling(h.handleBookmarkImport(from.ID, update.Message.Document))(ctx, chatID)
		return
	}

	if !update.Message.IsCommand() {
		if strings.TrimSpace(update.Message.Text) == "" {
			return
		}
		_ = h.withErrorHandling(h.handleSearch(update.Message.Text))(ctx, chatID)
		return
	}

	args := update.Message.CommandArguments()

	var fn HandlerFunc
	switch update.Message.Command() {
	case "start":
		fn = h.handleStart()
	case "help":
		fn = h.handleHelp()
	case "country":
		fn = h.handleCountry(from.ID, args)
	case "all":
		fn = h.handleAll()
	case "search":
		fn = h.handleSearch(args)
	case "region":
		fn = h.handleRegion(args)
	case "random":
		fn = h.handleRandom(from.ID)
	case "bookmarks":
		fn = h.handleBookmarks(from.ID, args)
	case "quiz":
		fn = h.handleQuiz(from.ID, args)
	case "history":
		fn = h.handleHistory(from.ID)
	case "settings":
		fn = h.handleSettings(from.ID)
	case "reset":
		fn = h.handleReset()
	default:
		fn = h.handleUnknown()
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
