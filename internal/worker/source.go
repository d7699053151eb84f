package worker

import "context"

// Delivery is a single in-flight queue message. Exactly one of Ack or Nack
// must be called per delivery: Ack removes the message from the queue, Nack
// with requeue hands it back for redelivery.
type Delivery interface {
	Body() []byte
	Ack() error
	Nack(requeue bool) error
}

// Source yields deliveries from the order events queue. Open blocks only for
// connection setup; deliveries arrive on the returned channel until the
// underlying connection drops (channel closes) or ctx is cancelled.
type Source interface {
	Open(ctx context.Context) (<-chan Delivery, error)
	Close() error
}
