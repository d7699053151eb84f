package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/novelnest/userservice/internal/domain/errors"
	"github.com/novelnest/userservice/internal/domain/model"
	"github.com/novelnest/userservice/internal/metrics"
)

// LedgerFacade exposes the subset of application functionality required by the consumer.
type LedgerFacade interface {
	ApplyPurchaseEvent(ctx context.Context, event *model.PurchaseEvent) error
}

// LedgerConsumer drains the order events queue and keeps the purchase ledger
// in sync. Deliveries are at-least-once and may be duplicated or reordered
// across orders; the consumer processes one message at a time and answers
// each with an explicit ack or nack.
type LedgerConsumer struct {
	source         Source
	facade         LedgerFacade
	reconnectDelay time.Duration
	maxAttempts    int
	logger         *slog.Logger
	metrics        *metrics.Metrics

	// attempts counts consecutive not-found failures per order; touched only
	// from the run goroutine.
	attempts map[string]int

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewLedgerConsumer constructs the queue consumer.
func NewLedgerConsumer(source Source, facade LedgerFacade, reconnectDelay time.Duration, maxAttempts int, logger *slog.Logger, m *metrics.Metrics) *LedgerConsumer {
	if reconnectDelay <= 0 {
		reconnectDelay = 5 * time.Second
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &LedgerConsumer{
		source:         source,
		facade:         facade,
		reconnectDelay: reconnectDelay,
		maxAttempts:    maxAttempts,
		logger:         logger,
		metrics:        m,
		attempts:       make(map[string]int),
	}
}

// Start launches background consumption.
func (c *LedgerConsumer) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(1)
	go c.run(runCtx)
}

// Stop cancels the consumer loop and waits for it to finish.
func (c *LedgerConsumer) Stop() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()

	c.wg.Wait()
}

// run reconnects with a fixed delay whenever the source fails or its delivery
// channel closes. Per-message failures never reach this level.
func (c *LedgerConsumer) run(ctx context.Context) {
	defer c.wg.Done()

	for {
		deliveries, err := c.source.Open(ctx)
		if err != nil {
			c.logger.Error("queue connection failed", slog.String("error", err.Error()))
			if !c.sleep(ctx) {
				return
			}
			continue
		}

		c.logger.Info("consuming order events")
		c.drain(ctx, deliveries)

		if ctx.Err() != nil {
			return
		}
		c.logger.Warn("queue channel closed, reconnecting")
		if !c.sleep(ctx) {
			return
		}
	}
}

func (c *LedgerConsumer) sleep(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.reconnectDelay):
		return true
	}
}

func (c *LedgerConsumer) drain(ctx context.Context, deliveries <-chan Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}
			c.handle(ctx, delivery)
		}
	}
}

func (c *LedgerConsumer) handle(ctx context.Context, delivery Delivery) {
	event, err := Normalize(delivery.Body())
	if err != nil {
		// Poison message: acknowledging removes it so it can never requeue forever.
		c.logger.Error("dropping malformed event", slog.String("error", err.Error()))
		c.metrics.ObserveEvent(metrics.EventOutcomeMalformed)
		c.ack(delivery)
		return
	}

	if event.Type == model.EventTypeUnknown {
		c.logger.Warn("ignoring unknown event type")
		c.metrics.ObserveEvent(metrics.EventOutcomeUnknown)
		c.ack(delivery)
		return
	}

	orderID := event.Data.OrderID
	if err := c.facade.ApplyPurchaseEvent(ctx, event); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			// Update before create: the create may still be in flight, so hand
			// the message back. Bounded so a permanently missing order cannot
			// loop forever.
			c.attempts[orderID]++
			if c.attempts[orderID] >= c.maxAttempts {
				delete(c.attempts, orderID)
				c.logger.Error("dropping event for missing order after max attempts",
					slog.String("order_id", orderID),
					slog.Int("attempts", c.maxAttempts),
				)
				c.metrics.ObserveEvent(metrics.EventOutcomeDropped)
				c.ack(delivery)
				return
			}
			c.logger.Warn("order not found, requeueing event",
				slog.String("order_id", orderID),
				slog.Int("attempt", c.attempts[orderID]),
			)
			c.metrics.ObserveEvent(metrics.EventOutcomeRequeued)
			c.nack(delivery)
			return
		}

		c.logger.Error("apply event failed, requeueing",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()),
		)
		c.metrics.ObserveEvent(metrics.EventOutcomeRequeued)
		c.nack(delivery)
		return
	}

	delete(c.attempts, orderID)
	c.metrics.ObserveEvent(metrics.EventOutcomeApplied)
	c.ack(delivery)
}

func (c *LedgerConsumer) ack(delivery Delivery) {
	if err := delivery.Ack(); err != nil {
		c.logger.Error("ack failed", slog.String("error", err.Error()))
	}
}

func (c *LedgerConsumer) nack(delivery Delivery) {
	if err := delivery.Nack(true); err != nil {
		c.logger.Error("nack failed", slog.String("error", err.Error()))
	}
}
