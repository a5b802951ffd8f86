package models

import "time"

// User represents a reader account used for authentication and profile
// management. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Username is the unique display login of the user. Mutable via
	// profile update.
	Username string `json:"username"`

	// Email is the unique contact address of the user. Used for the
	// password-reset flow.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized to clients.
	PasswordHash string `json:"-"`

	// ProfilePicture is the opaque stored reference to the user's avatar
	// (a filename under the asset base URL). May be empty. Presentation
	// URL construction happens at the HTTP boundary only.
	ProfilePicture string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
