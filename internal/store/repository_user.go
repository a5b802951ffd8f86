package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles reader account creation, lookup, and mutation against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique_violation (23505) on the email index → [ErrEmailAlreadyExists].
//   - unique_violation (23505) on the username index → [ErrUsernameAlreadyExists].
//   - Transient driver errors → wrapped [ErrStoreUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.ProfilePicture)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Username, &created.Email, &created.PasswordHash, &created.ProfilePicture, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")
		return models.User{}, r.classifyUserWriteError(err)
	}

	return created, nil
}

// FindUserByUsername retrieves the account whose username matches exactly.
// Returns [ErrNoUserWasFound] on an empty result set.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByEmail retrieves the account whose email matches exactly.
// Returns [ErrNoUserWasFound] on an empty result set.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the account by its server-assigned identifier.
// Returns [ErrNoUserWasFound] on an empty result set.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&found.UserID, &found.Username, &found.Email, &found.PasswordHash, &found.ProfilePicture, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: user lookup failed")
		if r.db.Retryable(err) {
			return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateProfile applies a partial update of username, email, and profile
// picture reference. Only non-nil fields of update are written; the UPDATE
// statement is built dynamically with squirrel.
//
// Returns the post-update account row, [ErrNothingToUpdate] when no field
// is set, [ErrNoUserWasFound] when the target row does not exist, and the
// same uniqueness sentinels as [CreateUser] on conflicts.
func (r *userRepository) UpdateProfile(ctx context.Context, update models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("users").PlaceholderFormat(sq.Dollar)

	touched := false
	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
		touched = true
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
		touched = true
	}
	if update.ProfilePicture != nil {
		builder = builder.Set("profile_picture", *update.ProfilePicture)
		touched = true
	}

	if !touched {
		return models.User{}, ErrNothingToUpdate
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.UserID}).
		Suffix("RETURNING id, username, email, password_hash, profile_picture, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.UserID, &updated.Username, &updated.Email, &updated.PasswordHash, &updated.ProfilePicture, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: profile update failed")
		return models.User{}, r.classifyUserWriteError(err)
	}

	return updated, nil
}

// UpdatePasswordHash rotates the stored bcrypt hash for the given account.
// Returns [ErrNoUserWasFound] when the target row does not exist.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPasswordHash, passwordHash, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePasswordHash").Msg("error: password update failed")
		if r.db.Retryable(err) {
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// classifyUserWriteError maps a failed users-table write to a sentinel.
// Unique violations are split by constraint name so the caller can tell a
// taken email apart from a taken username.
func (r *userRepository) classifyUserWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		constraint := postgresConstraint(err)
		if strings.Contains(constraint, "email") {
			return ErrEmailAlreadyExists
		}
		return ErrUsernameAlreadyExists
	default:
		if r.db.Retryable(err) {
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
