package auth

import "errors"

// Sentinel errors for authentication and authorization.
var (
	// Authentication errors
	ErrMissingCredentials = errors.New("auth: missing credentials")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrUserNotFound       = errors.New("auth: user not found")

	// Token verification errors
	ErrTokenMalformed   = errors.New("auth: token malformed")
	ErrInvalidSignature = errors.New("auth: token signature invalid")
	ErrTokenExpired     = errors.New("auth: token expired")

	// Authorization errors
	ErrForbidden = errors.New("auth: access denied")
)
