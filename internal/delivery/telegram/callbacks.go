package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/repository"
	"github.com/aliskhannn/cultural-explorer-bot/internal/service"
)

// callbackResponse describes how to update the message a button belongs to.
// An empty text leaves the message as is; notice is shown as a toast.
type callbackResponse struct {
	text   string
	kb     *tgbotapi.InlineKeyboardMarkup
	notice string
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	data := decodeCallback(cb.Data)
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID

	var (
		resp callbackResponse
		err  error
	)

	switch data.Action {
	case actionCountry:
		resp, err = h.handleCountryCallback(ctx, userID, chatID, data)
	case actionBookmark:
		resp, err = h.handleBookmarkCallback(ctx, userID, cb.Message, data)
	case actionPage:
		resp, err = h.handlePageCallback(data)
	case actionRegion:
		resp, err = h.handleRegionCallback(data)
	case actionQuiz:
		resp, err = h.handleQuizCallback(ctx, userID, data)
	case actionSettings:
		resp, err = h.handleSettingsCallback(ctx, userID, data)
	case actionReset:
		resp, err = h.handleResetCallback(ctx, userID, data)
	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
	}

	if err != nil {
		resp = h.callbackError(userID, cb.Data, err)
	}

	if resp.text != "" {
		edit := newEdit(chatID, cb.Message.MessageID, resp.text)
		edit.ReplyMarkup = resp.kb
		_ = h.send(edit)
	}

	h.answerCallback(cb.ID, resp.notice)
}

// answerCallback removes the user's "clock" and optionally shows a toast.
func (h *Handler) answerCallback(callbackID, notice string) {
	answer := tgbotapi.NewCallback(callbackID, notice)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

// callbackError turns known errors into a toast and logs the rest.
func (h *Handler) callbackError(userID int64, data string, err error) callbackResponse {
	switch {
	case errors.Is(err, repository.ErrCatalogNotReady), errors.Is(err, service.ErrNotReady):
		return callbackResponse{notice: msgCatalogNotReady}
	case errors.Is(err, repository.ErrCountryNotFound):
		return callbackResponse{notice: msgCountryNotFound}
	case errors.Is(err, service.ErrNoActiveQuiz), errors.Is(err, service.ErrStaleSession):
		return callbackResponse{notice: msgNoActiveQuiz}
	case errors.Is(err, service.ErrUnknownMode):
		return callbackResponse{notice: msgUnknownMode}
	case errors.Is(err, service.ErrInvalidTransition):
		return callbackResponse{notice: msgActionUnavailable}
	default:
		h.logger.Error("callback error",
			zap.Int64("user_id", userID),
			zap.String("data", data),
			zap.Error(err),
		)
		return callbackResponse{notice: msgInternalError}
	}
}

// handleCountryCallback opens a country profile as a new message so the
// list it was picked from stays in place.
func (h *Handler) handleCountryCallback(ctx context.Context, userID, chatID int64, data callbackData) (callbackResponse, error) {
	country, err := h.countryService.Get(data.param(0))
	if err != nil {
		return callbackResponse{}, err
	}

	text, kb, err := h.renderCountry(ctx, userID, country)
	if err != nil {
		return callbackResponse{}, err
	}

	msg := newMessage(chatID, text)
	msg.ReplyMarkup = kb
	return callbackResponse{}, h.send(msg)
}

// handleBookmarkCallback toggles a bookmark and refreshes only the keyboard.
func (h *Handler) handleBookmarkCallback(ctx context.Context, userID int64, message *tgbotapi.Message, data callbackData) (callbackResponse, error) {
	country, err := h.countryService.Get(data.param(0))
	if err != nil {
		return callbackResponse{}, err
	}

	bookmarked, err := h.bookmarkService.Toggle(ctx, userID, country)
	if err != nil {
		return callbackResponse{}, err
	}

	edit := tgbotapi.NewEditMessageReplyMarkup(message.Chat.ID, message.MessageID, buildCountryKeyboard(country.ID, bookmarked))
	_ = h.send(edit)

	notice := "Bookmark removed"
	if bookmarked {
		notice = "Bookmarked ⭐"
	}
	return callbackResponse{notice: notice}, nil
}

func (h *Handler) handlePageCallback(data callbackData) (callbackResponse, error) {
	page, ok := data.intParam(0)
	if !ok || page < 0 {
		h.logger.Debug("invalid page in callback", zap.String("data", data.Raw))
		return callbackResponse{}, nil
	}
	return h.countryPageResponse(data.param(1), page)
}

func (h *Handler) handleRegionCallback(data callbackData) (callbackResponse, error) {
	return h.countryPageResponse(data.param(0), 0)
}

func (h *Handler) countryPageResponse(region string, page int) (callbackResponse, error) {
	text, kb, ok, err := h.renderCountryPage(region, page)
	if err != nil {
		return callbackResponse{}, err
	}
	if !ok {
		return callbackResponse{notice: msgNothingFound}, nil
	}
	return callbackResponse{text: text, kb: &kb}, nil
}

// handleQuizCallback drives the quiz screen. Rejected transitions keep the
// message unchanged and explain why with a toast.
func (h *Handler) handleQuizCallback(ctx context.Context, userID int64, data callbackData) (callbackResponse, error) {
	sessionID := data.param(1)

	switch data.param(0) {
	case quizAnswer:
		index, ok := data.intParam(2)
		if !ok {
			return callbackResponse{}, nil
		}
		return quizResponse(h.quizService.Answer(userID, sessionID, index))

	case quizNext:
		resp, err := quizResponse(h.quizService.Next(userID, sessionID))
		if errors.Is(err, service.ErrInvalidTransition) {
			return callbackResponse{notice: msgSelectAnswerFirst}, nil
		}
		return resp, err

	case quizPrev:
		return quizResponse(h.quizService.Prev(userID, sessionID))

	case quizFinish:
		res, err := h.quizService.Finish(ctx, userID, sessionID)
		if errors.Is(err, service.ErrInvalidTransition) {
			return callbackResponse{notice: msgSelectAnswerFirst}, nil
		}
		if err != nil {
			return callbackResponse{}, err
		}
		text, kb := renderResult(res)
		return callbackResponse{text: text, kb: &kb}, nil

	case quizRestart:
		return quizResponse(h.quizService.PlayAgain(ctx, userID, sessionID))

	case quizClose:
		if err := h.quizService.Close(userID, sessionID); err != nil {
			return callbackResponse{}, err
		}
		return callbackResponse{text: md("Quiz closed. Start a new one with /quiz.")}, nil

	case quizStart:
		mode := data.param(1)
		if mode == "" {
			kb := buildQuizModeStartKeyboard()
			return callbackResponse{text: bold("🎲 Choose a quiz mode"), kb: &kb}, nil
		}
		return quizResponse(h.quizService.Start(ctx, userID, mode))
	}

	return callbackResponse{}, nil
}

func quizResponse(snap entities.QuizSnapshot, err error) (callbackResponse, error) {
	if err != nil {
		return callbackResponse{}, err
	}
	text, kb := renderQuiz(snap)
	return callbackResponse{text: text, kb: &kb}, nil
}

func (h *Handler) handleSettingsCallback(ctx context.Context, userID int64, data callbackData) (callbackResponse, error) {
	settings, err := h.settingsService.GetOrCreate(ctx, userID)
	if err != nil {
		return callbackResponse{}, err
	}

	switch data.param(0) {
	case settingsQuizLength:
		if value, ok := data.intParam(1); ok {
			if err := h.settingsService.UpdateQuizLength(ctx, userID, value); err != nil {
				if errors.Is(err, service.ErrInvalidQuizLength) {
					return callbackResponse{notice: err.Error()}, nil
				}
				return callbackResponse{}, err
			}
			return h.settingsMenuResponse(ctx, userID, msgSettingsSaved)
		}
		kb := buildQuizLengthKeyboard(settings.QuizLength)
		return callbackResponse{text: bold("📝 Questions per quiz"), kb: &kb}, nil

	case settingsQuizMode:
		if value := data.param(1); value != "" {
			mode, ok := entities.ParseQuizMode(value)
			if !ok {
				return callbackResponse{notice: msgUnknownMode}, nil
			}
			if err := h.settingsService.UpdateQuizMode(ctx, userID, mode); err != nil {
				return callbackResponse{}, err
			}
			return h.settingsMenuResponse(ctx, userID, msgSettingsSaved)
		}
		kb := buildQuizModeKeyboard(settings.QuizMode)
		return callbackResponse{text: bold("🎲 Default quiz mode"), kb: &kb}, nil
	}

	return h.settingsMenuResponse(ctx, userID, "")
}

func (h *Handler) settingsMenuResponse(ctx context.Context, userID int64, notice string) (callbackResponse, error) {
	text, kb, err := h.renderSettings(ctx, userID)
	if err != nil {
		return callbackResponse{}, err
	}
	return callbackResponse{text: text, kb: &kb, notice: notice}, nil
}

func (h *Handler) handleResetCallback(ctx context.Context, userID int64, data callbackData) (callbackResponse, error) {
	if data.param(0) != resetConfirm {
		return callbackResponse{text: md(msgResetCancelled)}, nil
	}

	if err := h.resetService.ResetUser(ctx, userID); err != nil {
		return callbackResponse{}, err
	}
	h.quizService.Forget(userID)

	h.logger.Info("user data reset", zap.Int64("user_id", userID))
	return callbackResponse{text: md(msgResetDone)}, nil
}
