package handlers

import (
	"context"

	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
)

// OptimizerFacade describes allocation capabilities required by handlers.
type OptimizerFacade interface {
	Optimize(ctx context.Context, orders []model.Order, instruments []model.PaymentInstrument) (*model.Allocation, error)
	HealthCheck(ctx context.Context) error
}
