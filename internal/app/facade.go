package app

import (
	"context"

	"github.com/novelnest/userservice/internal/domain/model"
	"github.com/novelnest/userservice/internal/usecase"
)

// UserFacade is the single entry point the HTTP layer and the queue consumer
// use to reach application behaviour.
type UserFacade struct {
	auth      *usecase.AuthUseCase
	purchases *usecase.PurchaseUseCase
	ledger    *usecase.LedgerUseCase
}

func NewUserFacade(auth *usecase.AuthUseCase, purchases *usecase.PurchaseUseCase, ledger *usecase.LedgerUseCase) *UserFacade {
	return &UserFacade{auth: auth, purchases: purchases, ledger: ledger}
}

func (f *UserFacade) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, username, email, password)
}

func (f *UserFacade) Login(ctx context.Context, email, password string) (*model.Session, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *UserFacade) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	return f.auth.CurrentUser(ctx, userID)
}

func (f *UserFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *UserFacade) Purchases(ctx context.Context, customerID string) ([]model.Purchase, error) {
	return f.purchases.ListByCustomer(ctx, customerID)
}

func (f *UserFacade) ApplyPurchaseEvent(ctx context.Context, event *model.PurchaseEvent) error {
	return f.ledger.Apply(ctx, event)
}
