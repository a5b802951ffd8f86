package service

import (
	"context"

	"github.com/jovanamartatilova/librareads/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
}

type PasswordResetService interface {
	// RequestReset issues a fresh reset code for the account behind email
	// and mails it. An unknown address is not an error: the caller always
	// receives the same acknowledgement regardless.
	RequestReset(ctx context.Context, email string) error

	// ConsumeReset exchanges a live reset code for a password change.
	// The code is single-use; it is destroyed only after the new password
	// is persisted.
	ConsumeReset(ctx context.Context, req models.ResetPasswordRequest) error
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)
}

type LibraryService interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBookContent(ctx context.Context, bookID int64, chunkNumber int) (models.BookContent, error)
	GetBookContents(ctx context.Context, bookID int64) ([]models.BookContent, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
