package usecase

import (
	"context"
	"log/slog"

	"github.com/novelnest/userservice/internal/domain/model"
	"github.com/novelnest/userservice/internal/domain/repository"
)

// LedgerUseCase applies normalized order events to the purchase ledger with
// idempotent semantics: duplicated creates are no-ops and repeated updates
// converge on the same final status.
type LedgerUseCase struct {
	purchases repository.PurchaseRepository
	logger    *slog.Logger
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(purchases repository.PurchaseRepository, logger *slog.Logger) *LedgerUseCase {
	return &LedgerUseCase{purchases: purchases, logger: logger}
}

// Apply mutates the ledger according to the event type.
// ORDER_UPDATED for an order the ledger has never seen returns ErrNotFound;
// the caller decides whether that is transient.
func (u *LedgerUseCase) Apply(ctx context.Context, event *model.PurchaseEvent) error {
	switch event.Type {
	case model.EventTypeOrderCreated:
		purchase, created, err := u.purchases.CreateFromEvent(ctx, event.Data)
		if err != nil {
			return err
		}
		if !created {
			u.logger.Info("duplicate create ignored", slog.String("order_id", event.Data.OrderID))
			return nil
		}
		u.logger.Info("purchase recorded",
			slog.Int64("id", purchase.ID),
			slog.String("order_id", purchase.OrderID),
		)
		return nil

	case model.EventTypeOrderUpdated:
		if err := u.purchases.UpdateStatus(ctx, event.Data.OrderID, event.Data.OrderStatus); err != nil {
			return err
		}
		u.logger.Info("purchase status updated",
			slog.String("order_id", event.Data.OrderID),
			slog.String("status", string(event.Data.OrderStatus)),
		)
		return nil

	default:
		return nil
	}
}
