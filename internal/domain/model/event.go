package model

import "time"

// EventType classifies incoming order lifecycle events.
type EventType string

const (
	EventTypeOrderCreated EventType = "ORDER_CREATED"
	EventTypeOrderUpdated EventType = "ORDER_UPDATED"
	// EventTypeUnknown marks event types this service does not handle.
	// Unknown events are acknowledged without touching the ledger.
	EventTypeUnknown EventType = "UNKNOWN"
)

// PurchaseEvent is a normalized order lifecycle event received from the queue.
// It lives only for the duration of one ack/nack decision and is never persisted.
type PurchaseEvent struct {
	Type      EventType
	Timestamp time.Time
	Data      PurchaseData
}

// PurchaseData carries the order payload of a purchase event.
type PurchaseData struct {
	OrderID      string
	CustomerID   string
	BookID       string
	BookTitle    string
	BookAuthor   string
	BookGenre    string
	PurchaseDate time.Time
	OrderStatus  OrderStatus
}
