package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/infra/postgres"
)

// BookmarkRepository stores bookmarked countries per user.
type BookmarkRepository struct {
	db postgres.DBTX
}

// NewBookmarkRepository creates a new BookmarkRepository.
func NewBookmarkRepository(db postgres.DBTX) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Add inserts a bookmark and reports whether it was new.
func (r *BookmarkRepository) Add(ctx context.Context, b *entities.Bookmark) (bool, error) {
	query := `
		INSERT INTO bookmarks (user_id, country_id, name, region, flag, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, country_id) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, query, b.UserID, b.CountryID, b.Name, b.Region, b.Flag, b.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("add bookmark: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// Remove deletes a bookmark and reports whether it existed.
func (r *BookmarkRepository) Remove(ctx context.Context, userID int64, countryID string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND country_id = $2`,
		userID, countryID,
	)
	if err != nil {
		return false, fmt.Errorf("remove bookmark: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// Exists checks whether a country is bookmarked by the user.
func (r *BookmarkRepository) Exists(ctx context.Context, userID int64, countryID string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND country_id = $2)"

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, countryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check bookmark existence: %w", err)
	}

	return exists, nil
}

// ListByUserID returns the user's bookmarks ordered by country name.
func (r *BookmarkRepository) ListByUserID(ctx context.Context, userID int64) ([]*entities.Bookmark, error) {
	query := `
		SELECT user_id, country_id, name, region, flag, created_at
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	bookmarks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entities.Bookmark, error) {
		var b entities.Bookmark
		err := row.Scan(&b.UserID, &b.CountryID, &b.Name, &b.Region, &b.Flag, &b.CreatedAt)
		return &b, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan bookmarks: %w", err)
	}

	return bookmarks, nil
}

// Clear removes all bookmarks of a user and returns how many were removed.
func (r *BookmarkRepository) Clear(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookmarks WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("clear bookmarks: %w", err)
	}
	return tag.RowsAffected(), nil
}
