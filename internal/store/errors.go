package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering or updating a user
	// fails because another account already owns the email address.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when registering or updating a
	// user fails because another account already owns the username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrResetTokenNotFound is returned when no reset-token row matches the
	// presented code. A consumed or replaced code reports the same error as
	// one that never existed.
	ErrResetTokenNotFound = errors.New("reset token was not found")

	// ErrBookContentNotFound is returned when a content query targets a
	// book or chunk that does not exist.
	ErrBookContentNotFound = errors.New("book content was not found")

	// ErrNothingToUpdate is returned by UpdateProfile when the request
	// carries no fields to change.
	ErrNothingToUpdate = errors.New("no fields to update")

	// ErrStoreUnavailable is returned (wrapped) when the database reports a
	// transient condition (lost connection, deadlock rollback) that the
	// client may retry. It never wraps constraint or syntax errors.
	ErrStoreUnavailable = errors.New("store is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
