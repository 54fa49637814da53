package errors

import (
	"errors"
)

var (
	ErrUsernameAlreadyInUse = errors.New("username already in use")
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidToken         = errors.New("invalid token")
	ErrWeakSigningKey       = errors.New("jwt signing key must be at least 32 bytes")
)
