package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jovanamartatilova/librareads/internal/config"
	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/store"
	"github.com/jovanamartatilova/librareads/internal/utils"
	"github.com/jovanamartatilova/librareads/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(repo *mockUserRepository) AuthService {
	return NewAuthService(repo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "librareads",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success hashes password before persisting", func(t *testing.T) {
		var persisted models.User
		repo := &mockUserRepository{
			createFn: func(ctx context.Context, user models.User) (models.User, error) {
				persisted = user
				user.UserID = 1
				return user, nil
			},
		}
		svc := newTestAuthService(repo)

		created, err := svc.RegisterUser(ctx, models.RegisterRequest{
			Username: "alice",
			Email:    "alice@x.com",
			Password: "secret-password",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), created.UserID)
		assert.NotEqual(t, "secret-password", persisted.PasswordHash)
		assert.True(t, utils.VerifyPassword("secret-password", persisted.PasswordHash))
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := newTestAuthService(&mockUserRepository{})

		_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "alice"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("bad email format", func(t *testing.T) {
		svc := newTestAuthService(&mockUserRepository{})

		_, err := svc.RegisterUser(ctx, models.RegisterRequest{
			Username: "alice",
			Email:    "not-an-email",
			Password: "secret-password",
		})
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("short password", func(t *testing.T) {
		svc := newTestAuthService(&mockUserRepository{})

		_, err := svc.RegisterUser(ctx, models.RegisterRequest{
			Username: "alice",
			Email:    "alice@x.com",
			Password: "abc",
		})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("duplicate email propagates", func(t *testing.T) {
		repo := &mockUserRepository{
			createFn: func(ctx context.Context, user models.User) (models.User, error) {
				return models.User{}, store.ErrEmailAlreadyExists
			},
		}
		svc := newTestAuthService(repo)

		_, err := svc.RegisterUser(ctx, models.RegisterRequest{
			Username: "alice",
			Email:    "alice@x.com",
			Password: "secret-password",
		})
		assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := utils.HashPassword("secret-password")
	require.NoError(t, err)

	stored := models.User{UserID: 7, Username: "alice", Email: "alice@x.com", PasswordHash: hash}

	t.Run("success issues a parseable token", func(t *testing.T) {
		repo := &mockUserRepository{
			findByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
				assert.Equal(t, "alice", username)
				return stored, nil
			},
		}
		svc := newTestAuthService(repo)

		user, token, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "secret-password"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.UserID)
		require.NotEmpty(t, token.SignedString)

		parsed, err := svc.ParseToken(ctx, token.SignedString)
		require.NoError(t, err)
		assert.Equal(t, int64(7), parsed.UserID)
		assert.Equal(t, "alice", parsed.Username)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		unknownRepo := &mockUserRepository{
			findByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
				return models.User{}, store.ErrNoUserWasFound
			},
		}
		knownRepo := &mockUserRepository{
			findByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
				return stored, nil
			},
		}

		_, _, errUnknown := newTestAuthService(unknownRepo).Login(ctx, models.LoginRequest{Username: "ghost", Password: "whatever-pass"})
		_, _, errWrong := newTestAuthService(knownRepo).Login(ctx, models.LoginRequest{Username: "alice", Password: "wrong-password"})

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("storage failure is not invalid credentials", func(t *testing.T) {
		repo := &mockUserRepository{
			findByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
				return models.User{}, store.ErrStoreUnavailable
			},
		}
		svc := newTestAuthService(repo)

		_, _, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "secret-password"})
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := newTestAuthService(&mockUserRepository{})

		_, _, err := svc.Login(ctx, models.LoginRequest{Username: "alice"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestAuthService_ParseToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&mockUserRepository{})

	user := models.User{UserID: 7, Username: "alice"}

	t.Run("tampered token reports invalid signature even when expired", func(t *testing.T) {
		expired := NewAuthService(&mockUserRepository{}, config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "librareads",
			TokenDuration: -time.Hour,
		}, logger.Nop())

		token, err := expired.CreateToken(ctx, user)
		require.NoError(t, err)

		tampered := []byte(token.SignedString)
		dot := 0
		for i := len(tampered) - 1; i >= 0; i-- {
			if tampered[i] == '.' {
				dot = i
				break
			}
		}
		if tampered[dot+1] == 'A' {
			tampered[dot+1] = 'B'
		} else {
			tampered[dot+1] = 'A'
		}

		_, err = svc.ParseToken(ctx, string(tampered))
		assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
	})

	t.Run("expired token with valid signature", func(t *testing.T) {
		expired := NewAuthService(&mockUserRepository{}, config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "librareads",
			TokenDuration: -time.Hour,
		}, logger.Nop())

		token, err := expired.CreateToken(ctx, user)
		require.NoError(t, err)

		_, err = svc.ParseToken(ctx, token.SignedString)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ParseToken(ctx, "not.a.jwt")
		assert.Error(t, err)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	hash, err := utils.HashPassword("old-password")
	require.NoError(t, err)

	stored := models.User{UserID: 7, Username: "alice", PasswordHash: hash}

	t.Run("success rotates the stored hash", func(t *testing.T) {
		var newHash string
		repo := &mockUserRepository{
			findByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
				return stored, nil
			},
			updatePasswordHashFn: func(ctx context.Context, userID int64, passwordHash string) error {
				newHash = passwordHash
				return nil
			},
		}
		svc := newTestAuthService(repo)

		err := svc.ChangePassword(ctx, 7, models.ChangePasswordRequest{
			OldPassword: "old-password",
			NewPassword: "new-password",
		})
		require.NoError(t, err)
		assert.True(t, utils.VerifyPassword("new-password", newHash))
	})

	t.Run("wrong current password", func(t *testing.T) {
		repo := &mockUserRepository{
			findByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
				return stored, nil
			},
			updatePasswordHashFn: func(ctx context.Context, userID int64, passwordHash string) error {
				t.Fatal("password must not be updated")
				return nil
			},
		}
		svc := newTestAuthService(repo)

		err := svc.ChangePassword(ctx, 7, models.ChangePasswordRequest{
			OldPassword: "not-the-old-one",
			NewPassword: "new-password",
		})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("short new password rejected before lookup", func(t *testing.T) {
		repo := &mockUserRepository{
			findByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
				t.Fatal("lookup must not run")
				return models.User{}, nil
			},
		}
		svc := newTestAuthService(repo)

		err := svc.ChangePassword(ctx, 7, models.ChangePasswordRequest{
			OldPassword: "old-password",
			NewPassword: "abc",
		})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("update failure propagates", func(t *testing.T) {
		repo := &mockUserRepository{
			findByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
				return stored, nil
			},
			updatePasswordHashFn: func(ctx context.Context, userID int64, passwordHash string) error {
				return errors.New("write failed")
			},
		}
		svc := newTestAuthService(repo)

		err := svc.ChangePassword(ctx, 7, models.ChangePasswordRequest{
			OldPassword: "old-password",
			NewPassword: "new-password",
		})
		assert.Error(t, err)
	})
}
