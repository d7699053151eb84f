package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSignupRejected     = errors.New("signup rejected")
	ErrMalformedEvent     = errors.New("malformed event payload")
	ErrUnavailable        = errors.New("upstream unavailable")
)
