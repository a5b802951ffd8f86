package service

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/store"
	"github.com/jovanamartatilova/librareads/models"
)

// profileService is the concrete implementation of ProfileService over the
// user repository.
type profileService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewProfileService constructs a ProfileService wired to the given
// UserRepository.
func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetProfile returns the account behind userID.
func (s *profileService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateProfile applies a partial update of username, email, and profile
// picture. Set fields are validated the same way registration validates
// them; unset fields are untouched.
func (s *profileService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username != nil && *req.Username == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if req.Email != nil {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return models.User{}, ErrInvalidEmail
		}
	}

	updatedUser, err := s.userRepository.UpdateProfile(ctx, req)
	if err != nil {
		log.Err(err).Int64("id", req.UserID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updatedUser, nil
}
