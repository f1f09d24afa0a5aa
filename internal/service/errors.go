package service

import "errors"

// Domain errors for auth flows. Handlers map each one to a fixed status code.
var (
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound is returned when logging in with an unknown email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidInput is returned for input the hasher cannot accept.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal wraps storage and hashing failures.
	ErrInternal = errors.New("internal error")
)
