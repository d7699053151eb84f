package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/novelnest/userservice/internal/domain/errors"
	"github.com/novelnest/userservice/internal/domain/model"
	"github.com/novelnest/userservice/internal/domain/repository"
)

// pgxPool is the pool surface used by the repositories; pgxmock satisfies it.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type purchaseRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Purchases returns the purchase ledger repository.
func (s *Storage) Purchases() repository.PurchaseRepository {
	return &purchaseRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS purchases (
            id SERIAL PRIMARY KEY,
            order_id TEXT UNIQUE NOT NULL,
            customer_id TEXT NOT NULL,
            book_id TEXT NOT NULL,
            book_title TEXT NOT NULL DEFAULT '',
            book_author TEXT NOT NULL DEFAULT '',
            book_genre TEXT NOT NULL DEFAULT '',
            purchase_date TIMESTAMPTZ NOT NULL,
            order_status TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_customer ON purchases(customer_id, purchase_date DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- PurchaseRepository implementation ---

// CreateFromEvent inserts a ledger row for the order. The unique order_id
// constraint makes redelivered creates a no-op: the existing row is returned
// with created=false.
func (r *purchaseRepository) CreateFromEvent(ctx context.Context, data model.PurchaseData) (*model.Purchase, bool, error) {
	const query = `INSERT INTO purchases (order_id, customer_id, book_id, book_title, book_author, book_genre, purchase_date, order_status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   ON CONFLICT (order_id) DO NOTHING
                   RETURNING id`
	var p model.Purchase
	err := r.storage.pool.QueryRow(ctx, query,
		data.OrderID, data.CustomerID, data.BookID,
		data.BookTitle, data.BookAuthor, data.BookGenre,
		data.PurchaseDate, data.OrderStatus,
	).Scan(&p.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			existing, err := r.GetByOrderID(ctx, data.OrderID)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, false, domainErrors.ErrAlreadyExists
		}
		return nil, false, err
	}
	p.OrderID = data.OrderID
	p.CustomerID = data.CustomerID
	p.BookID = data.BookID
	p.BookTitle = data.BookTitle
	p.BookAuthor = data.BookAuthor
	p.BookGenre = data.BookGenre
	p.PurchaseDate = data.PurchaseDate
	p.OrderStatus = data.OrderStatus
	return &p, true, nil
}

func (r *purchaseRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	const query = `UPDATE purchases SET order_status=$1 WHERE order_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *purchaseRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Purchase, error) {
	const query = `SELECT id, order_id, customer_id, book_id, book_title, book_author, book_genre, purchase_date, order_status
                   FROM purchases WHERE order_id=$1`
	var p model.Purchase
	err := r.storage.pool.QueryRow(ctx, query, orderID).Scan(
		&p.ID, &p.OrderID, &p.CustomerID, &p.BookID,
		&p.BookTitle, &p.BookAuthor, &p.BookGenre,
		&p.PurchaseDate, &p.OrderStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.Purchase, error) {
	const query = `SELECT id, order_id, customer_id, book_id, book_title, book_author, book_genre, purchase_date, order_status
                   FROM purchases WHERE customer_id=$1 ORDER BY purchase_date DESC`
	rows, err := r.storage.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Purchase
	for rows.Next() {
		var p model.Purchase
		if err := rows.Scan(
			&p.ID, &p.OrderID, &p.CustomerID, &p.BookID,
			&p.BookTitle, &p.BookAuthor, &p.BookGenre,
			&p.PurchaseDate, &p.OrderStatus,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
