package test

import (
	"context"
	"sync"

	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
)

// OptimizerFacadeStub provides controllable behaviour for allocation endpoints and batch runs.
type OptimizerFacadeStub struct {
	OptimizeFn       func(context.Context, []model.Order, []model.PaymentInstrument) (*model.Allocation, error)
	OptimizeStoredFn func(context.Context) (*model.Allocation, error)
	HealthFn         func(context.Context) error

	mu      sync.Mutex
	Batches int
}

// Optimize delegates to provided function or returns an empty allocation.
func (s *OptimizerFacadeStub) Optimize(ctx context.Context, orders []model.Order, instruments []model.PaymentInstrument) (*model.Allocation, error) {
	if s.OptimizeFn != nil {
		return s.OptimizeFn(ctx, orders, instruments)
	}
	return &model.Allocation{RunID: "run", Usage: model.NewUsage()}, nil
}

// OptimizeStored counts invocations and delegates to provided function.
func (s *OptimizerFacadeStub) OptimizeStored(ctx context.Context) (*model.Allocation, error) {
	s.mu.Lock()
	s.Batches++
	s.mu.Unlock()
	if s.OptimizeStoredFn != nil {
		return s.OptimizeStoredFn(ctx)
	}
	return &model.Allocation{RunID: "run", Usage: model.NewUsage()}, nil
}

// HealthCheck returns configured health error.
func (s *OptimizerFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

// BatchCount returns the number of OptimizeStored calls.
func (s *OptimizerFacadeStub) BatchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Batches
}

// HealthCheckerStub reports a fixed health status.
type HealthCheckerStub struct {
	Err   error
	Calls int
}

// HealthCheck records the call and returns configured error.
func (s *HealthCheckerStub) HealthCheck(context.Context) error {
	s.Calls++
	return s.Err
}
