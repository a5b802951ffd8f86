package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jovanamartatilova/librareads/internal/config"
	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/store"
	"github.com/jovanamartatilova/librareads/internal/utils"
	"github.com/jovanamartatilova/librareads/models"
)

// minPasswordLength is the minimum accepted password length, applied at
// registration, password change, and reset consumption alike.
const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles reader registration, credential verification, password change,
// and JWT token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new reader account.
//
// It validates that username, email, and password are present, that the email
// parses as an address, and that the password meets the minimum length. The
// password is bcrypt-hashed before it ever reaches the repository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username, email, or password is empty.
//   - ErrInvalidEmail if the email does not parse.
//   - ErrPasswordTooShort if the password is shorter than six characters.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return models.User{}, ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing reader and issues a bearer token.
//
// An unknown username and a wrong password both collapse into
// ErrInvalidCredentials so the response does not leak which accounts exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid login data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.UserID).Msg("login with wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, which verifies the HMAC
// signature before evaluating any claim, so a tampered token is reported as
// ErrTokenSignatureInvalid even when its expiry has also passed. Remaining
// failures map to ErrTokenExpired, ErrTokenMalformed, or ErrTokenInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return models.Token{}, ErrTokenMalformed
		default:
			return models.Token{}, ErrTokenInvalid
		}
	}

	return token, nil
}

// ChangePassword rotates the password of an authenticated reader.
//
// The current password must verify against the stored hash before the new
// one is accepted. Returns ErrWrongPassword when it does not, and the same
// length policy errors as RegisterUser for the new password.
func (a *authService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.OldPassword == "" || req.NewPassword == "" {
		return ErrInvalidDataProvided
	}
	if len(req.NewPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !utils.VerifyPassword(req.OldPassword, foundUser.PasswordHash) {
		log.Warn().Int64("id", userID).Msg("password change with wrong current password")
		return ErrWrongPassword
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		log.Err(err).Int64("id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}
