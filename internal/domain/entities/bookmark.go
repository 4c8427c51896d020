package entities

import "time"

// Bookmark is a country saved by a user.
type Bookmark struct {
	UserID    int64
	CountryID string
	Name      string
	Region    string
	Flag      string
	CreatedAt time.Time
}

// NewBookmark creates a bookmark of country for a user.
func NewBookmark(userID int64, country *Country) *Bookmark {
	return &Bookmark{
		UserID:    userID,
		CountryID: country.ID,
		Name:      country.Name,
		Region:    country.Region,
		Flag:      country.Flag,
		CreatedAt: time.Now(),
	}
}
