package test

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/novelnest/userservice/internal/domain/errors"
	"github.com/novelnest/userservice/internal/domain/model"
	pkgToken "github.com/novelnest/userservice/internal/pkg/token"
)

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// Issue returns deterministic tokens for tests.
func (s StrategyStub) Issue(userID string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token:" + userID, nil
}

// Parse parses previously issued token strings.
func (s StrategyStub) Parse(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	userID, ok := strings.CutPrefix(token, "token:")
	if !ok {
		return "", pkgToken.ErrInvalidToken
	}
	return userID, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// ProviderStub simulates the external identity authority in-memory.
type ProviderStub struct {
	SignUpFn      func(context.Context, string, string) (*model.User, error)
	SignInFn      func(context.Context, string, string) (*model.User, error)
	GetUserFn     func(context.Context, string) (*model.User, error)
	GetMetadataFn func(context.Context, string) (map[string]any, error)
	SetMetadataFn func(context.Context, string, map[string]any) error

	Users     map[string]*model.User // keyed by email
	ByID      map[string]*model.User
	Passwords map[string]string
	Metadata  map[string]map[string]any
	Next      int
}

// NewProviderStub constructs a stub provider with initialized maps.
func NewProviderStub() *ProviderStub {
	return &ProviderStub{
		Users:     make(map[string]*model.User),
		ByID:      make(map[string]*model.User),
		Passwords: make(map[string]string),
		Metadata:  make(map[string]map[string]any),
		Next:      1,
	}
}

// SignUp registers an account unless the email is taken.
func (s *ProviderStub) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	if s.SignUpFn != nil {
		return s.SignUpFn(ctx, email, password)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:        fmt.Sprintf("user-%d", s.Next),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	s.Passwords[email] = password
	return &model.User{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt}, nil
}

// SignIn validates the stored credentials.
func (s *ProviderStub) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	if s.SignInFn != nil {
		return s.SignInFn(ctx, email, password)
	}
	user, ok := s.Users[email]
	if !ok || s.Passwords[email] != password {
		return nil, domainErrors.ErrInvalidCredentials
	}
	return &model.User{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt}, nil
}

// GetUserByID returns the stored account or not found.
func (s *ProviderStub) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	if s.GetUserFn != nil {
		return s.GetUserFn(ctx, userID)
	}
	user, ok := s.ByID[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &model.User{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt}, nil
}

// GetMetadata returns metadata stored for the user.
func (s *ProviderStub) GetMetadata(ctx context.Context, userID string) (map[string]any, error) {
	if s.GetMetadataFn != nil {
		return s.GetMetadataFn(ctx, userID)
	}
	metadata, ok := s.Metadata[userID]
	if !ok {
		return map[string]any{}, nil
	}
	return metadata, nil
}

// SetMetadata merges updates into the stored metadata.
func (s *ProviderStub) SetMetadata(ctx context.Context, userID string, metadata map[string]any) error {
	if s.SetMetadataFn != nil {
		return s.SetMetadataFn(ctx, userID, metadata)
	}
	existing, ok := s.Metadata[userID]
	if !ok {
		existing = make(map[string]any)
		s.Metadata[userID] = existing
	}
	for k, v := range metadata {
		existing[k] = v
	}
	return nil
}

var _ pkgToken.Strategy = StrategyStub{}
