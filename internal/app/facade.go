package app

import (
	"context"

	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
	"github.com/polkiloo/paymentoptimizer/internal/domain/repository"
	"github.com/polkiloo/paymentoptimizer/internal/usecase"
)

// OptimizerFacade exposes allocation to the HTTP layer and the batch runner.
type OptimizerFacade struct {
	optimize *usecase.OptimizeUseCase
	health   repository.HealthChecker
}

// NewOptimizerFacade constructs OptimizerFacade. Health checker may be nil.
func NewOptimizerFacade(optimize *usecase.OptimizeUseCase, health repository.HealthChecker) *OptimizerFacade {
	return &OptimizerFacade{optimize: optimize, health: health}
}

func (f *OptimizerFacade) Optimize(ctx context.Context, orders []model.Order, instruments []model.PaymentInstrument) (*model.Allocation, error) {
	return f.optimize.Optimize(ctx, orders, instruments)
}

func (f *OptimizerFacade) OptimizeStored(ctx context.Context) (*model.Allocation, error) {
	return f.optimize.OptimizeStored(ctx)
}

func (f *OptimizerFacade) HealthCheck(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
