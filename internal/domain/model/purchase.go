package model

import "time"

// OrderStatus mirrors the order lifecycle states published by the order service.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusUpdated   OrderStatus = "UPDATED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusFulfilled OrderStatus = "FULFILLED"
)

// Purchase is the durable record of a book order owned by a customer.
// OrderID is the external business key; at most one Purchase exists per OrderID.
// Only OrderStatus changes after creation.
type Purchase struct {
	ID           int64
	OrderID      string
	CustomerID   string
	BookID       string
	BookTitle    string
	BookAuthor   string
	BookGenre    string
	PurchaseDate time.Time
	OrderStatus  OrderStatus
}
