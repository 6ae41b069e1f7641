package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/paymentoptimizer/internal/domain/errors"
	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
	"github.com/polkiloo/paymentoptimizer/internal/domain/repository"
)

// OptimizeUseCase runs allocation over supplied or stored inputs.
type OptimizeUseCase struct {
	source repository.Source
	logger *slog.Logger
}

// NewOptimizeUseCase constructs OptimizeUseCase. Source may be nil when inputs always come from callers.
func NewOptimizeUseCase(source repository.Source, logger *slog.Logger) *OptimizeUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OptimizeUseCase{source: source, logger: logger}
}

// Optimize allocates instruments to orders. On a structural failure both the partial
// allocation and the error are returned.
func (u *OptimizeUseCase) Optimize(ctx context.Context, orders []model.Order, instruments []model.PaymentInstrument) (*model.Allocation, error) {
	runID := uuid.NewString()
	logger := u.logger.With(slog.String("run_id", runID))

	engine, err := NewAllocationEngine(orders, instruments, logger)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "allocation started",
		slog.Int("orders", len(orders)),
		slog.Int("payment_methods", len(instruments)),
	)
	usage, summary, err := engine.Run()
	allocation := &model.Allocation{RunID: runID, Usage: usage, Summary: summary}
	if err != nil {
		return allocation, err
	}

	logger.InfoContext(ctx, "allocation finished",
		slog.Int("fully_paid", summary.FullyPaid),
		slog.Int("split", summary.Split),
		slog.Int("unallocated", summary.Unallocated),
	)
	return allocation, nil
}

// OptimizeStored loads inputs from the configured source and allocates them.
func (u *OptimizeUseCase) OptimizeStored(ctx context.Context) (*model.Allocation, error) {
	if u.source == nil {
		return nil, fmt.Errorf("input source: %w", domainErrors.ErrNotFound)
	}
	orders, err := u.source.LoadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	instruments, err := u.source.LoadInstruments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payment methods: %w", err)
	}
	return u.Optimize(ctx, orders, instruments)
}
