package models

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	// Username is the desired unique login name. Required.
	Username string `json:"username"`

	// Email is the unique contact address. Required, format-validated.
	Email string `json:"email"`

	// Password is the plaintext password. Required; hashed immediately,
	// never stored or logged.
	Password string `json:"password"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the payload of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the payload of POST /api/auth/reset-password.
// Token is the 6-digit code delivered by mail.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the payload of PUT /api/profile.
// Only non-nil fields are updated (partial update support).
type UpdateProfileRequest struct {
	// UserID is the target account. Must match the authenticated identity.
	UserID int64 `json:"user_id"`

	// Username replaces the login name when non-nil.
	Username *string `json:"username,omitempty"`

	// Email replaces the contact address when non-nil.
	Email *string `json:"email,omitempty"`

	// ProfilePicture replaces the stored avatar reference when non-nil.
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// ChangePasswordRequest is the payload of PUT /api/profile/password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
