package test

import (
	"context"
	"sync"
	"time"

	"github.com/novelnest/userservice/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn    func(context.Context, string, string, string) (*model.User, error)
	LoginFn       func(context.Context, string, string) (*model.Session, error)
	CurrentUserFn func(context.Context, string) (*model.User, error)
	ParseFn       func(string) (string, error)
}

// Register returns the created account for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, email, password)
	}
	return &model.User{ID: "user-1", Email: email, Username: username, CreatedAt: time.Unix(0, 0).UTC()}, nil
}

// Login returns a session for successful authentication scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.Session, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.Session{UserID: "user-1", Username: "reader", Token: "token"}, nil
}

// CurrentUser returns the stored profile.
func (s AuthFacadeStub) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, userID)
	}
	return &model.User{ID: userID, Email: "reader@example.com", Username: "reader", CreatedAt: time.Unix(0, 0).UTC()}, nil
}

// ParseToken returns the stored identifier for an authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

// PurchaseFacadeStub simulates purchase history lookups.
type PurchaseFacadeStub struct {
	PurchasesFn func(context.Context, string) ([]model.Purchase, error)
}

// Purchases returns predefined purchases for the customer.
func (s PurchaseFacadeStub) Purchases(ctx context.Context, customerID string) ([]model.Purchase, error) {
	if s.PurchasesFn != nil {
		return s.PurchasesFn(ctx, customerID)
	}
	return []model.Purchase{{ID: 1, OrderID: "O1", CustomerID: customerID, OrderStatus: model.OrderStatusCreated}}, nil
}

// UserFacadeStub aggregates facade dependencies for HTTP layer tests.
type UserFacadeStub struct {
	AuthFacadeStub
	PurchaseFacadeStub
}

// AppliedEvent records one ApplyPurchaseEvent invocation.
type AppliedEvent struct {
	Type    model.EventType
	OrderID string
}

// LedgerFacadeStub mimics consumer interactions with the application facade.
type LedgerFacadeStub struct {
	ApplyFn func(context.Context, *model.PurchaseEvent) error

	mu      sync.Mutex
	Applied []AppliedEvent
}

// ApplyPurchaseEvent records the event or delegates to the override.
func (s *LedgerFacadeStub) ApplyPurchaseEvent(ctx context.Context, event *model.PurchaseEvent) error {
	s.mu.Lock()
	s.Applied = append(s.Applied, AppliedEvent{Type: event.Type, OrderID: event.Data.OrderID})
	s.mu.Unlock()
	if s.ApplyFn != nil {
		return s.ApplyFn(ctx, event)
	}
	return nil
}

// AppliedCount reports how many events reached the facade.
func (s *LedgerFacadeStub) AppliedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Applied)
}
