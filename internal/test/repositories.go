package test

import (
	"context"
	"sync"

	domainErrors "github.com/novelnest/userservice/internal/domain/errors"
	"github.com/novelnest/userservice/internal/domain/model"
)

// PurchaseRepositoryStub stores purchases in-memory for tests.
type PurchaseRepositoryStub struct {
	CreateFn       func(context.Context, model.PurchaseData) (*model.Purchase, bool, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) error
	GetFn          func(context.Context, string) (*model.Purchase, error)
	ListFn         func(context.Context, string) ([]model.Purchase, error)

	mu        sync.Mutex
	ByOrderID map[string]*model.Purchase
	Next      int64
	Err       error
}

// NewPurchaseRepositoryStub constructs a stub repository with initialized maps.
func NewPurchaseRepositoryStub() *PurchaseRepositoryStub {
	return &PurchaseRepositoryStub{ByOrderID: make(map[string]*model.Purchase), Next: 1}
}

// CreateFromEvent inserts a purchase unless the order already exists.
func (s *PurchaseRepositoryStub) CreateFromEvent(ctx context.Context, data model.PurchaseData) (*model.Purchase, bool, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, data)
	}
	if s.Err != nil {
		return nil, false, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.ByOrderID[data.OrderID]; ok {
		copied := *existing
		return &copied, false, nil
	}
	purchase := &model.Purchase{
		ID:           s.Next,
		OrderID:      data.OrderID,
		CustomerID:   data.CustomerID,
		BookID:       data.BookID,
		BookTitle:    data.BookTitle,
		BookAuthor:   data.BookAuthor,
		BookGenre:    data.BookGenre,
		PurchaseDate: data.PurchaseDate,
		OrderStatus:  data.OrderStatus,
	}
	s.Next++
	s.ByOrderID[data.OrderID] = purchase
	copied := *purchase
	return &copied, true, nil
}

// UpdateStatus mutates only the order status of an existing purchase.
func (s *PurchaseRepositoryStub) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	purchase, ok := s.ByOrderID[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	purchase.OrderStatus = status
	return nil
}

// GetByOrderID fetches a purchase by its business key.
func (s *PurchaseRepositoryStub) GetByOrderID(ctx context.Context, orderID string) (*model.Purchase, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	purchase, ok := s.ByOrderID[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *purchase
	return &copied, nil
}

// ListByCustomer returns all purchases recorded for the customer.
func (s *PurchaseRepositoryStub) ListByCustomer(ctx context.Context, customerID string) ([]model.Purchase, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, customerID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Purchase
	for _, purchase := range s.ByOrderID {
		if purchase.CustomerID == customerID {
			result = append(result, *purchase)
		}
	}
	return result, nil
}
