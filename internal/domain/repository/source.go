package repository

import (
	"context"

	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
)

// OrderSource loads the batch of orders in processing order.
type OrderSource interface {
	LoadOrders(ctx context.Context) ([]model.Order, error)
}

// InstrumentSource loads payment instruments in declaration order.
type InstrumentSource interface {
	LoadInstruments(ctx context.Context) ([]model.PaymentInstrument, error)
}

// Source describes access to a complete allocation input.
type Source interface {
	OrderSource
	InstrumentSource
}

// HealthChecker reports whether the input backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
