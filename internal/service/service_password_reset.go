package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jovanamartatilova/librareads/internal/config"
	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/mail"
	"github.com/jovanamartatilova/librareads/internal/store"
	"github.com/jovanamartatilova/librareads/internal/utils"
	"github.com/jovanamartatilova/librareads/models"
)

// passwordResetService is the concrete implementation of PasswordResetService.
// It coordinates the user repository, the reset-token repository, and the
// outbound mailer to run the two-step forgot/reset flow.
type passwordResetService struct {
	userRepository       store.UserRepository
	resetTokenRepository store.ResetTokenRepository
	mailer               mail.Mailer

	// resetCodeTTL bounds how long an issued code stays consumable.
	resetCodeTTL time.Duration

	logger *logger.Logger
}

// NewPasswordResetService constructs a PasswordResetService wired to the
// given repositories and mailer.
func NewPasswordResetService(
	userRepository store.UserRepository,
	resetTokenRepository store.ResetTokenRepository,
	mailer mail.Mailer,
	cfg config.App,
	logger *logger.Logger,
) PasswordResetService {
	return &passwordResetService{
		userRepository:       userRepository,
		resetTokenRepository: resetTokenRepository,
		mailer:               mailer,
		resetCodeTTL:         cfg.ResetCodeTTL,
		logger:               logger,
	}
}

// RequestReset issues a fresh 6-digit code for the account behind email,
// stores it as the account's single live code, and mails it.
//
// An unknown address returns nil so the HTTP layer can answer with the same
// acknowledgement it gives for a known one. A storage failure or a mail
// delivery failure is reported; the latter as ErrMailDeliveryFailed. The
// stored code is kept even when delivery fails, so a retried request simply
// replaces it.
func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	foundUser, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Msg("reset requested for unknown email")
			return nil
		}

		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		log.Err(err).Msg("reset code generation failed")
		return fmt.Errorf("reset code generation failed: %w", err)
	}

	saved, err := s.resetTokenRepository.Replace(ctx, models.ResetToken{
		UserID:    foundUser.UserID,
		Token:     code,
		ExpiresAt: time.Now().Add(s.resetCodeTTL),
	})
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("storing reset code failed")
		return fmt.Errorf("storing reset code failed: %w", err)
	}

	if err := s.mailer.SendResetCode(ctx, foundUser.Email, foundUser.Username, saved.Token, s.resetCodeTTL); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("reset code mail delivery failed")
		return fmt.Errorf("%w: %w", ErrMailDeliveryFailed, err)
	}

	return nil
}

// ConsumeReset exchanges a live reset code for a password change.
//
// An unknown code maps to ErrResetTokenInvalid. An expired code is deleted
// on sight and maps to ErrResetTokenExpired. A failed hash write maps to
// ErrPasswordUpdateFailed. The code is removed only after the new password
// hash is persisted, so a failed update leaves the code usable for another
// attempt.
func (s *passwordResetService) ConsumeReset(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.Token == "" || req.Password == "" {
		return ErrInvalidDataProvided
	}
	if len(req.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	token, err := s.resetTokenRepository.FindByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return ErrResetTokenInvalid
		}

		log.Err(err).Msg("reset code lookup failed")
		return fmt.Errorf("reset code lookup failed: %w", err)
	}

	if token.Expired(time.Now()) {
		if err := s.resetTokenRepository.DeleteByToken(ctx, token.Token); err != nil {
			log.Err(err).Int64("id", token.UserID).Msg("purging expired reset code failed")
		}
		return ErrResetTokenExpired
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.userRepository.UpdatePasswordHash(ctx, token.UserID, passwordHash); err != nil {
		log.Err(err).Int64("id", token.UserID).Msg("password update failed")
		return fmt.Errorf("%w: %w", ErrPasswordUpdateFailed, err)
	}

	if err := s.resetTokenRepository.DeleteByToken(ctx, token.Token); err != nil {
		// the password is already rotated, the leftover code is expired junk
		log.Err(err).Int64("id", token.UserID).Msg("deleting consumed reset code failed")
	}

	return nil
}
