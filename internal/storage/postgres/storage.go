package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/paymentoptimizer/internal/domain/errors"
	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
	"github.com/polkiloo/paymentoptimizer/internal/domain/repository"
)

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

// Storage loads allocation input from PostgreSQL. It never writes balances back.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.Source = (*Storage)(nil)

// New connects to database and makes sure input tables exist.
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

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            position BIGSERIAL PRIMARY KEY,
            id TEXT UNIQUE NOT NULL,
            value NUMERIC(14, 2) NOT NULL CHECK (value >= 0)
        )`,
		`CREATE TABLE IF NOT EXISTS order_promotions (
            order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            position INT NOT NULL,
            promotion_id TEXT NOT NULL,
            PRIMARY KEY (order_id, position)
        )`,
		`CREATE TABLE IF NOT EXISTS payment_methods (
            position BIGSERIAL PRIMARY KEY,
            id TEXT UNIQUE NOT NULL,
            discount INT NOT NULL DEFAULT 0 CHECK (discount BETWEEN 0 AND 100),
            spend_limit NUMERIC(14, 2) NOT NULL CHECK (spend_limit >= 0)
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// LoadOrders returns orders in insertion order with their promotions.
func (s *Storage) LoadOrders(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT o.id, o.value::text,
                          COALESCE(array_agg(p.promotion_id ORDER BY p.position)
                                   FILTER (WHERE p.promotion_id IS NOT NULL), '{}')
                   FROM orders o
                   LEFT JOIN order_promotions p ON p.order_id = o.id
                   GROUP BY o.position, o.id, o.value
                   ORDER BY o.position`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Order{}
	for rows.Next() {
		var (
			o     model.Order
			value string
		)
		if err := rows.Scan(&o.ID, &value, &o.Promotions); err != nil {
			return nil, err
		}
		if o.Value, err = parseAmount(value); err != nil {
			return nil, fmt.Errorf("order %s: %w", o.ID, err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	s.logger.Debug("orders loaded", slog.Int("count", len(result)))
	return result, nil
}

// LoadInstruments returns payment methods in insertion order.
func (s *Storage) LoadInstruments(ctx context.Context) ([]model.PaymentInstrument, error) {
	const query = `SELECT id, discount, spend_limit::text FROM payment_methods ORDER BY position`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.PaymentInstrument{}
	for rows.Next() {
		var (
			pm       model.PaymentInstrument
			discount int32
			limit    string
		)
		if err := rows.Scan(&pm.ID, &discount, &limit); err != nil {
			return nil, err
		}
		pm.Discount = model.Percent(discount)
		if pm.Limit, err = parseAmount(limit); err != nil {
			return nil, fmt.Errorf("payment method %s: %w", pm.ID, err)
		}
		result = append(result, pm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	s.logger.Debug("payment methods loaded", slog.Int("count", len(result)))
	return result, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domainErrors.ErrInvalidAmount, raw)
	}
	return amount, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
