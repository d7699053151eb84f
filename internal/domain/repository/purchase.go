package repository

import (
	"context"

	"github.com/novelnest/userservice/internal/domain/model"
)

// PurchaseRepository describes persistence operations for the purchase ledger.
type PurchaseRepository interface {
	// CreateFromEvent inserts a purchase for the event payload. A create for an
	// order that already exists is an idempotent no-op; the stored record is
	// returned and the bool reports whether a row was actually inserted.
	CreateFromEvent(ctx context.Context, data model.PurchaseData) (*model.Purchase, bool, error)
	// UpdateStatus mutates the order status of an existing purchase, leaving
	// every other field untouched. Returns ErrNotFound when no purchase exists
	// for the order.
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	GetByOrderID(ctx context.Context, orderID string) (*model.Purchase, error)
	ListByCustomer(ctx context.Context, customerID string) ([]model.Purchase, error)
}
