package usecase

import (
	"context"

	"github.com/novelnest/userservice/internal/domain/model"
	"github.com/novelnest/userservice/internal/domain/repository"
)

// PurchaseUseCase serves purchase-history reads.
type PurchaseUseCase struct {
	purchases repository.PurchaseRepository
}

// NewPurchaseUseCase constructs PurchaseUseCase.
func NewPurchaseUseCase(purchases repository.PurchaseRepository) *PurchaseUseCase {
	return &PurchaseUseCase{purchases: purchases}
}

// ListByCustomer returns all purchases recorded for the customer.
// An empty result is not an error at this layer.
func (u *PurchaseUseCase) ListByCustomer(ctx context.Context, customerID string) ([]model.Purchase, error) {
	return u.purchases.ListByCustomer(ctx, customerID)
}
