package identity

import (
	"context"

	"github.com/novelnest/userservice/internal/domain/model"
)

// Provider exposes the capabilities of the external identity authority.
// Credential checks and account storage happen entirely on the provider side;
// this service only attaches username metadata and reads accounts back.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*model.User, error)
	SignIn(ctx context.Context, email, password string) (*model.User, error)
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	GetMetadata(ctx context.Context, userID string) (map[string]any, error)
	SetMetadata(ctx context.Context, userID string, metadata map[string]any) error
}
