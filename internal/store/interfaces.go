package store

import (
	"context"

	"github.com/jovanamartatilova/librareads/models"
)

// UserRepository is the data-access contract for reader accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, update models.UpdateProfileRequest) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

// ResetTokenRepository is the data-access contract for password-reset codes.
//
// Replace atomically removes any live code for the user and installs a new
// one, so at most one live code per user can exist at any time.
type ResetTokenRepository interface {
	Replace(ctx context.Context, token models.ResetToken) (models.ResetToken, error)
	FindByToken(ctx context.Context, token string) (models.ResetToken, error)
	DeleteByToken(ctx context.Context, token string) error
}

// BookRepository is the data-access contract for the book catalogue and its
// chunked text content.
type BookRepository interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	FindContent(ctx context.Context, bookID int64, chunkNumber int) (models.BookContent, error)
	ListContents(ctx context.Context, bookID int64) ([]models.BookContent, error)
}
