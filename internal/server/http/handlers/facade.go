package handlers

import (
	"context"

	"github.com/novelnest/userservice/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.Session, error)
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
	ParseToken(token string) (string, error)
}

// PurchaseFacade encapsulates purchase history operations exposed via HTTP.
type PurchaseFacade interface {
	Purchases(ctx context.Context, customerID string) ([]model.Purchase, error)
}

// UserFacade aggregates the full set of operations used across handlers.
type UserFacade interface {
	AuthFacade
	PurchaseFacade
}
