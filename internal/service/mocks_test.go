package service

import (
	"context"
	"time"

	"github.com/jovanamartatilova/librareads/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn             func(ctx context.Context, user models.User) (models.User, error)
	findByUsernameFn     func(ctx context.Context, username string) (models.User, error)
	findByEmailFn        func(ctx context.Context, email string) (models.User, error)
	findByIDFn           func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn      func(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)
	updatePasswordHashFn func(ctx context.Context, userID int64, passwordHash string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	if m.updatePasswordHashFn != nil {
		return m.updatePasswordHashFn(ctx, userID, passwordHash)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ResetTokenRepository
// ─────────────────────────────────────────────

type mockResetTokenRepository struct {
	replaceFn       func(ctx context.Context, token models.ResetToken) (models.ResetToken, error)
	findByTokenFn   func(ctx context.Context, token string) (models.ResetToken, error)
	deleteByTokenFn func(ctx context.Context, token string) error
}

func (m *mockResetTokenRepository) Replace(ctx context.Context, token models.ResetToken) (models.ResetToken, error) {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, token)
	}
	return token, nil
}

func (m *mockResetTokenRepository) FindByToken(ctx context.Context, token string) (models.ResetToken, error) {
	if m.findByTokenFn != nil {
		return m.findByTokenFn(ctx, token)
	}
	return models.ResetToken{}, nil
}

func (m *mockResetTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	if m.deleteByTokenFn != nil {
		return m.deleteByTokenFn(ctx, token)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.BookRepository
// ─────────────────────────────────────────────

type mockBookRepository struct {
	listBooksFn    func(ctx context.Context) ([]models.Book, error)
	findContentFn  func(ctx context.Context, bookID int64, chunkNumber int) (models.BookContent, error)
	listContentsFn func(ctx context.Context, bookID int64) ([]models.BookContent, error)
}

func (m *mockBookRepository) ListBooks(ctx context.Context) ([]models.Book, error) {
	if m.listBooksFn != nil {
		return m.listBooksFn(ctx)
	}
	return nil, nil
}

func (m *mockBookRepository) FindContent(ctx context.Context, bookID int64, chunkNumber int) (models.BookContent, error) {
	if m.findContentFn != nil {
		return m.findContentFn(ctx, bookID, chunkNumber)
	}
	return models.BookContent{}, nil
}

func (m *mockBookRepository) ListContents(ctx context.Context, bookID int64) ([]models.BookContent, error) {
	if m.listContentsFn != nil {
		return m.listContentsFn(ctx, bookID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: mail.Mailer
// ─────────────────────────────────────────────

type mockMailer struct {
	sendResetCodeFn func(ctx context.Context, to string, username string, code string, ttl time.Duration) error
}

func (m *mockMailer) SendResetCode(ctx context.Context, to string, username string, code string, ttl time.Duration) error {
	if m.sendResetCodeFn != nil {
		return m.sendResetCodeFn(ctx, to, username, code, ttl)
	}
	return nil
}
