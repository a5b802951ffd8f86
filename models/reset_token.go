package models

import "time"

// ResetToken is a short-lived, single-use code that authorizes exactly one
// password change for one user.
//
// At most one live ResetToken exists per user: issuing a new one replaces
// any prior token for the same account.
type ResetToken struct {
	// ID is the internal unique identifier of the row.
	ID int64 `json:"-"`

	// UserID identifies the account the code was issued for.
	UserID int64 `json:"user_id"`

	// Token is the 6-digit verification code mailed to the user.
	// Unguessable only in combination with its short lifetime.
	Token string `json:"-"`

	// ExpiresAt is the absolute expiry timestamp. A token found past this
	// instant is deleted on sight and reported as expired.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is the issuance timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the code is past its expiry at the given instant.
func (t ResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the ResetToken model.
func (t ResetToken) TableName() string {
	return "reset_tokens"
}
