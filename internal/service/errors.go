package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenInvalid          = errors.New("token is invalid")

	ErrResetTokenInvalid    = errors.New("reset code is invalid")
	ErrResetTokenExpired    = errors.New("reset code is expired")
	ErrMailDeliveryFailed   = errors.New("reset mail delivery failed")
	ErrPasswordUpdateFailed = errors.New("password update failed")

	ErrUnauthorizedAccessToForeignProfile = errors.New("cannot modify another user's profile")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
