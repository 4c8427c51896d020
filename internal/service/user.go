package service

import (
	"context"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// EnsureUser creates the user on first contact and refreshes the profile afterwards.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64, firstName, username, languageCode string) error {
	user := entities.NewUser(userID, chatID)
	user.FirstName = firstName
	user.Username = username
	user.LanguageCode = languageCode

	_, err := s.repository.Save(ctx, user)
	return err
}
