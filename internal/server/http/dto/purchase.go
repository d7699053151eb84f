package dto

import "time"

// PurchaseResponse describes one purchase history entry.
type PurchaseResponse struct {
	ID           int64     `json:"id"`
	OrderID      string    `json:"order_id"`
	CustomerID   string    `json:"customer_id"`
	BookID       string    `json:"book_id"`
	BookTitle    string    `json:"book_title"`
	BookAuthor   string    `json:"book_author"`
	BookGenre    string    `json:"book_genre"`
	PurchaseDate time.Time `json:"purchase_date"`
	OrderStatus  string    `json:"order_status"`
}

// PurchaseListResponse wraps the purchase history in a success envelope.
type PurchaseListResponse struct {
	Success bool               `json:"success"`
	Data    []PurchaseResponse `json:"data"`
}

// PurchaseErrorResponse is returned when the history lookup yields nothing.
type PurchaseErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
