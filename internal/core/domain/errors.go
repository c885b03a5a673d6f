package domain

import "errors"

// Core error taxonomy. Every service operation fails with one of these;
// the HTTP layer maps them to status codes in one place.
var (
	// ErrInvalidCredentials covers unknown email, inactive account and wrong
	// password alike, so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidRole        = errors.New("invalid role")
	ErrForbidden          = errors.New("access forbidden")
)
