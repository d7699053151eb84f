package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/novelnest/userservice/internal/worker"
)

// Source delivers order events from a durable RabbitMQ queue with manual
// acknowledgement. Each Open tears down any previous connection and dials a
// fresh one; the returned channel closes when the broker connection drops.
type Source struct {
	url   string
	queue string

	mu     sync.Mutex
	conn   *amqp.Connection
	logger *slog.Logger
}

// New creates a queue source for the given broker URL and queue name.
func New(url, queue string, logger *slog.Logger) *Source {
	return &Source{url: url, queue: queue, logger: logger}
}

// Open dials the broker, declares the durable queue, and starts consuming.
func (s *Source) Open(ctx context.Context) (<-chan worker.Delivery, error) {
	s.closeConn()

	conn, err := amqp.Dial(s.url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	queue, err := channel.QueueDeclare(s.queue, true, false, false, false, nil)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %q: %w", s.queue, err)
	}

	messages, err := channel.Consume(queue.Name, "", false, false, false, false, nil)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("consume queue %q: %w", s.queue, err)
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	s.logger.Info("listening on queue", slog.String("queue", queue.Name))

	out := make(chan worker.Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- delivery{msg: msg}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// Close tears down the broker connection.
func (s *Source) Close() error {
	return s.closeConn()
}

func (s *Source) closeConn() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

type delivery struct {
	msg amqp.Delivery
}

func (d delivery) Body() []byte { return d.msg.Body }

func (d delivery) Ack() error { return d.msg.Ack(false) }

func (d delivery) Nack(requeue bool) error { return d.msg.Nack(false, requeue) }
