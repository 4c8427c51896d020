package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/cultural-explorer-bot/internal/service"
)

// maxBookmarkFileSize caps downloaded bookmark files.
const maxBookmarkFileSize = 256 << 10

// exportBookmarks sends the user's bookmarks as a JSON document.
func (h *Handler) exportBookmarks(ctx context.Context, userID, chatID int64) error {
	data, err := h.bookmarkService.Export(ctx, userID)
	if err != nil {
		return err
	}
	if string(data) == "[]" {
		return h.send(newPlainMessage(chatID, msgNoBookmarks))
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  service.BookmarkExportFile,
		Bytes: data,
	})
	doc.Caption = msgBookmarksExported
	return h.send(doc)
}

// handleBookmarkImport merges bookmarks from an uploaded export file.
func (h *Handler) handleBookmarkImport(userID int64, doc *tgbotapi.Document) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if doc.FileSize > maxBookmarkFileSize {
			return h.send(newPlainMessage(chatID, msgBookmarkFileTooBig))
		}

		data, err := h.downloadFile(ctx, doc.FileID)
		if errors.Is(err, errFileTooLarge) {
			return h.send(newPlainMessage(chatID, msgBookmarkFileTooBig))
		}
		if err != nil {
			return err
		}

		added, err := h.bookmarkService.Import(ctx, userID, data)
		if errors.Is(err, service.ErrInvalidBookmarkFile) {
			h.logger.Debug("rejected bookmark file",
				zap.Int64("user_id", userID),
				zap.String("file_name", doc.FileName),
				zap.Error(err),
			)
			return h.send(newPlainMessage(chatID, msgInvalidBookmarkFile))
		}
		if err != nil {
			return err
		}

		h.logger.Info("bookmarks imported",
			zap.Int64("user_id", userID),
			zap.Int("added", added),
		)
		return h.send(newPlainMessage(chatID, fmt.Sprintf(msgBookmarksImported, added)))
	}
}

var errFileTooLarge = errors.New("file too large")

// downloadFile fetches a file the user sent to the bot.
func (h *Handler) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	url, err := h.bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("get file url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBookmarkFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(data) > maxBookmarkFileSize {
		return nil, errFileTooLarge
	}
	return data, nil
}
