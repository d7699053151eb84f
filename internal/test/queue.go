package test

import (
	"context"
	"sync"

	"github.com/novelnest/userservice/internal/worker"
)

// DeliveryStub is a queue delivery with recorded ack/nack decisions.
type DeliveryStub struct {
	Payload []byte

	mu      sync.Mutex
	Acked   bool
	Nacked  bool
	Requeue bool
	AckErr  error
	NackErr error
}

// Body returns the raw payload.
func (d *DeliveryStub) Body() []byte { return d.Payload }

// Ack records the acknowledgement.
func (d *DeliveryStub) Ack() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Acked = true
	return d.AckErr
}

// Nack records the negative acknowledgement and requeue request.
func (d *DeliveryStub) Nack(requeue bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Nacked = true
	d.Requeue = requeue
	return d.NackErr
}

// Outcome reports the recorded decision.
func (d *DeliveryStub) Outcome() (acked, nacked, requeue bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Acked, d.Nacked, d.Requeue
}

// SourceStub replays configured deliveries, one channel per Open call.
type SourceStub struct {
	OpenFn     func(context.Context) (<-chan worker.Delivery, error)
	Deliveries []worker.Delivery
	OpenErr    error

	mu     sync.Mutex
	Opens  int
	Closed bool
}

// Open yields the configured deliveries and then closes the channel.
func (s *SourceStub) Open(ctx context.Context) (<-chan worker.Delivery, error) {
	if s.OpenFn != nil {
		return s.OpenFn(ctx)
	}
	s.mu.Lock()
	s.Opens++
	first := s.Opens == 1
	s.mu.Unlock()
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}

	out := make(chan worker.Delivery)
	go func() {
		defer close(out)
		if !first {
			// Replay only once; later opens behave like an idle queue.
			<-ctx.Done()
			return
		}
		for _, delivery := range s.Deliveries {
			select {
			case out <- delivery:
			case <-ctx.Done():
				return
			}
		}
		<-ctx.Done()
	}()
	return out, nil
}

// OpenCount reports how many times the source was opened.
func (s *SourceStub) OpenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Opens
}

// Close records teardown.
func (s *SourceStub) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed = true
	return nil
}
