package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/novelnest/userservice/internal/adapter/identity"
	domainErrors "github.com/novelnest/userservice/internal/domain/errors"
	"github.com/novelnest/userservice/internal/domain/model"
	pkgToken "github.com/novelnest/userservice/internal/pkg/token"
)

const usernameMetadataKey = "username"

// AuthUseCase bridges the external identity authority to locally-signed
// bearer tokens and profile lookups.
type AuthUseCase struct {
	provider identity.Provider
	tokens   pkgToken.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(provider identity.Provider, tokens pkgToken.Strategy) *AuthUseCase {
	return &AuthUseCase{provider: provider, tokens: tokens}
}

// Register creates an account with the identity provider and attaches the
// username as provider metadata.
func (u *AuthUseCase) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, domainErrors.ErrSignupRejected
	}

	user, err := u.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}

	// Metadata failure leaves a usable account behind; the registration still
	// fails so the client retries with a clear signal.
	if err := u.provider.SetMetadata(ctx, user.ID, map[string]any{usernameMetadataKey: username}); err != nil {
		return nil, fmt.Errorf("store username metadata: %w", err)
	}

	user.Username = username
	return user, nil
}

// Login validates credentials with the identity provider and issues a signed
// bearer token bound to the user identifier.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrMissingCredentials
	}

	user, err := u.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	username, err := u.username(ctx, user.ID)
	if err != nil {
		// No token without a complete profile.
		return nil, fmt.Errorf("fetch username metadata: %w", err)
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.Session{UserID: user.ID, Username: username, Token: token}, nil
}

// CurrentUser loads the profile for an authenticated user identifier.
func (u *AuthUseCase) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := u.provider.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	username, err := u.username(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch username metadata: %w", err)
	}

	user.Username = username
	return user, nil
}

// ParseToken extracts the user identifier from a bearer token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgToken.ErrMissingToken
	}
	return u.tokens.Parse(token)
}

func (u *AuthUseCase) username(ctx context.Context, userID string) (string, error) {
	metadata, err := u.provider.GetMetadata(ctx, userID)
	if err != nil {
		return "", err
	}
	username, _ := metadata[usernameMetadataKey].(string)
	return username, nil
}
