package token

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid auth token")
	ErrMissingToken = errors.New("missing auth token")
	// ErrMissingSigningKey reports a deployment misconfiguration. A strategy
	// without a signing key must never be constructed.
	ErrMissingSigningKey = errors.New("signing key is not configured")
)

// Strategy issues and verifies bearer tokens carrying the user identifier.
type Strategy interface {
	Issue(userID string) (string, error)
	Parse(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
