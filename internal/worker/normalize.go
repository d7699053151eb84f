package worker

import (
	"encoding/json"
	"fmt"
	"time"

	domainErrors "github.com/novelnest/userservice/internal/domain/errors"
	"github.com/novelnest/userservice/internal/domain/model"
)

// rawEvent mirrors the JSON envelope published by the order service.
type rawEvent struct {
	EventType string  `json:"eventType"`
	Timestamp string  `json:"timestamp"`
	Data      rawData `json:"data"`
}

type rawData struct {
	OrderID      string `json:"order_id"`
	CustomerID   string `json:"customer_id"`
	BookID       string `json:"book_id"`
	BookTitle    string `json:"book_title"`
	BookAuthor   string `json:"book_author"`
	BookGenre    string `json:"book_genre"`
	PurchaseDate string `json:"purchase_date"`
	OrderStatus  string `json:"order_status"`
}

// Normalize parses a raw queue payload into a typed purchase event.
// Shape mismatches return ErrMalformedEvent, a permanent failure: such
// messages must be dropped, never requeued. Unrecognized event types are not
// malformed; they normalize to EventTypeUnknown and are handled as a no-op.
func Normalize(raw []byte) (*model.PurchaseEvent, error) {
	var envelope rawEvent
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrMalformedEvent, err)
	}

	eventType := model.EventTypeUnknown
	switch model.EventType(envelope.EventType) {
	case model.EventTypeOrderCreated:
		eventType = model.EventTypeOrderCreated
	case model.EventTypeOrderUpdated:
		eventType = model.EventTypeOrderUpdated
	}

	event := &model.PurchaseEvent{Type: eventType}
	if envelope.Timestamp != "" {
		// Producer timestamps are informational; a bad one is not poison.
		event.Timestamp, _ = time.Parse(time.RFC3339, envelope.Timestamp)
	}

	if eventType == model.EventTypeUnknown {
		return event, nil
	}

	data := envelope.Data
	if data.OrderID == "" {
		return nil, fmt.Errorf("%w: missing order_id", domainErrors.ErrMalformedEvent)
	}
	if data.OrderStatus == "" {
		return nil, fmt.Errorf("%w: missing order_status", domainErrors.ErrMalformedEvent)
	}

	event.Data = model.PurchaseData{
		OrderID:     data.OrderID,
		CustomerID:  data.CustomerID,
		BookID:      data.BookID,
		BookTitle:   data.BookTitle,
		BookAuthor:  data.BookAuthor,
		BookGenre:   data.BookGenre,
		OrderStatus: model.OrderStatus(data.OrderStatus),
	}

	if eventType == model.EventTypeOrderCreated {
		if data.CustomerID == "" {
			return nil, fmt.Errorf("%w: missing customer_id", domainErrors.ErrMalformedEvent)
		}
		if data.BookID == "" {
			return nil, fmt.Errorf("%w: missing book_id", domainErrors.ErrMalformedEvent)
		}
		if data.PurchaseDate == "" {
			return nil, fmt.Errorf("%w: missing purchase_date", domainErrors.ErrMalformedEvent)
		}
	}

	if data.PurchaseDate != "" {
		purchaseDate, err := time.Parse(time.RFC3339, data.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid purchase_date: %v", domainErrors.ErrMalformedEvent, err)
		}
		event.Data.PurchaseDate = purchaseDate
	}

	return event, nil
}
