package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/models"
)

// resetTokenRepository is the PostgreSQL-backed implementation of
// [ResetTokenRepository] over the "reset_tokens" table.
//
// The table carries a unique index on user_id, so even outside of
// [resetTokenRepository.Replace] the database itself refuses a second live
// code for the same account.
type resetTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResetTokenRepository constructs a [ResetTokenRepository] backed by the
// provided database connection and logger.
func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{
		db:     db,
		logger: logger,
	}
}

// Replace installs token as the single live reset code for its user.
//
// Delete-then-insert runs inside one transaction so a concurrent duplicate
// request cannot leave two live codes: the loser of the race either sees
// the winner's delete or trips the unique index on user_id and rolls back.
func (r *resetTokenRepository) Replace(ctx context.Context, token models.ResetToken) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Replace").Msg("error: begin transaction failed")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteResetTokensForUser, token.UserID); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Replace").Msg("error: deleting prior tokens failed")
		if r.db.Retryable(err) {
			return models.ResetToken{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return models.ResetToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var saved models.ResetToken
	row := tx.QueryRowContext(ctx, insertResetToken, token.UserID, token.Token, token.ExpiresAt)
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.Token, &saved.ExpiresAt, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Replace").Msg("error: inserting token failed")
		if r.db.Retryable(err) {
			return models.ResetToken{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return models.ResetToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Replace").Msg("error: commit failed")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// FindByToken retrieves a live or expired reset code by exact value.
// Returns [ErrResetTokenNotFound] on an empty result set.
func (r *resetTokenRepository) FindByToken(ctx context.Context, token string) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	var found models.ResetToken
	row := r.db.QueryRowContext(ctx, findResetTokenByToken, token)

	if err := row.Scan(&found.ID, &found.UserID, &found.Token, &found.ExpiresAt, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ResetToken{}, ErrResetTokenNotFound
		}

		log.Err(err).Str("func", "*resetTokenRepository.FindByToken").Msg("error: token lookup failed")
		if r.db.Retryable(err) {
			return models.ResetToken{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return models.ResetToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteByToken removes the reset code with the exact given value. Deleting
// a code that is already gone is not an error; single-use enforcement lives
// in the consume flow, which looks the code up first.
func (r *resetTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteResetTokenByToken, token); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.DeleteByToken").Msg("error: token delete failed")
		if r.db.Retryable(err) {
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
