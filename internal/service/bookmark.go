package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

// BookmarkExportFile is the file name used for exported bookmarks.
const BookmarkExportFile = "cultural-explorer-bookmarks.json"

var ErrInvalidBookmarkFile = errors.New("invalid bookmark format")

// BookmarkService manages the countries a user has saved.
type BookmarkService struct {
	repository BookmarkRepository
	catalog    CatalogProvider
}

// NewBookmarkService creates a new BookmarkService. Imported bookmarks
// are resolved against catalog.
func NewBookmarkService(repository BookmarkRepository, catalog CatalogProvider) *BookmarkService {
	return &BookmarkService{repository: repository, catalog: catalog}
}

// bookmarkRecord is the exported form of a bookmark.
type bookmarkRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Region       string    `json:"region"`
	Flag         string    `json:"flag,omitempty"`
	BookmarkedAt time.Time `json:"bookmarkedAt"`
}

// Add bookmarks country. It returns false if it was already bookmarked.
func (s *BookmarkService) Add(ctx context.Context, userID int64, country *entities.Country) (bool, error) {
	return s.repository.Add(ctx, entities.NewBookmark(userID, country))
}

// Remove deletes a bookmark. It returns false if there was nothing to remove.
func (s *BookmarkService) Remove(ctx context.Context, userID int64, countryID string) (bool, error) {
	return s.repository.Remove(ctx, userID, countryID)
}

// Toggle adds or removes the bookmark and returns the new bookmarked state.
func (s *BookmarkService) Toggle(ctx context.Context, userID int64, country *entities.Country) (bool, error) {
	bookmarked, err := s.repository.Exists(ctx, userID, country.ID)
	if err != nil {
		return false, err
	}

	if bookmarked {
		_, err = s.repository.Remove(ctx, userID, country.ID)
		return false, err
	}

	_, err = s.repository.Add(ctx, entities.NewBookmark(userID, country))
	return true, err
}

// IsBookmarked reports whether the user saved countryID.
func (s *BookmarkService) IsBookmarked(ctx context.Context, userID int64, countryID string) (bool, error) {
	return s.repository.Exists(ctx, userID, countryID)
}

// List returns the user's bookmarks sorted by country name.
func (s *BookmarkService) List(ctx context.Context, userID int64) ([]*entities.Bookmark, error) {
	return s.repository.ListByUserID(ctx, userID)
}

// ListByRegion returns bookmarks whose region matches case-insensitively.
func (s *BookmarkService) ListByRegion(ctx context.Context, userID int64, region string) ([]*entities.Bookmark, error) {
	all, err := s.repository.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.Bookmark, 0, len(all))
	for _, b := range all {
		if strings.EqualFold(b.Region, region) {
			out = append(out, b)
		}
	}
	return out, nil
}

// Clear removes every bookmark of the user.
func (s *BookmarkService) Clear(ctx context.Context, userID int64) (int64, error) {
	return s.repository.Clear(ctx, userID)
}

// Export returns the user's bookmarks as a JSON array.
func (s *BookmarkService) Export(ctx context.Context, userID int64) ([]byte, error) {
	bookmarks, err := s.repository.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records := make([]bookmarkRecord, 0, len(bookmarks))
	for _, b := range bookmarks {
		records = append(records, bookmarkRecord{
			ID:           b.CountryID,
			Name:         b.Name,
			Region:       b.Region,
			Flag:         b.Flag,
			BookmarkedAt: b.CreatedAt,
		})
	}

	return json.MarshalIndent(records, "", "  ")
}

// Import merges bookmarks exported by Export into the user's bookmarks.
// Entries are deduplicated by country id and ids missing from the
// catalog are skipped. It returns the number of bookmarks added.
func (s *BookmarkService) Import(ctx context.Context, userID int64, data []byte) (int, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return 0, ErrInvalidBookmarkFile
	}

	var records []bookmarkRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBookmarkFile, err)
	}

	catalog, err := s.catalog.Catalog()
	if err != nil {
		return 0, err
	}

	added := 0
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}

		country, ok := catalog.FindByID(r.ID)
		if !ok {
			continue
		}

		b := entities.NewBookmark(userID, country)
		if !r.BookmarkedAt.IsZero() {
			b.CreatedAt = r.BookmarkedAt
		}

		ok, err = s.repository.Add(ctx, b)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}

	return added, nil
}
