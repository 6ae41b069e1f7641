package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	domainErrors "github.com/polkiloo/paymentoptimizer/internal/domain/errors"
	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
	"github.com/polkiloo/paymentoptimizer/internal/report"
)

// Process exit codes of a batch run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitAborted = 2
)

// StoredOptimizer runs allocation over configured inputs.
type StoredOptimizer interface {
	OptimizeStored(ctx context.Context) (*model.Allocation, error)
}

// BatchRunner performs a single allocation and prints the report.
type BatchRunner struct {
	optimizer StoredOptimizer
	out       io.Writer
	logger    *slog.Logger
}

// NewBatchRunner constructs BatchRunner writing report to out.
func NewBatchRunner(optimizer StoredOptimizer, out io.Writer, logger *slog.Logger) *BatchRunner {
	return &BatchRunner{optimizer: optimizer, out: out, logger: logger}
}

// Run executes the batch and returns process exit code. An aborted run still prints
// the usage accumulated before the abort.
func (b *BatchRunner) Run(ctx context.Context) int {
	allocation, err := b.optimizer.OptimizeStored(ctx)
	code := ExitOK
	if err != nil {
		if !errors.Is(err, domainErrors.ErrLoyaltyUnavailable) || allocation == nil {
			b.logger.Error("allocation failed", slog.String("error", err.Error()))
			return ExitFailure
		}
		b.logger.Error("allocation aborted, printing partial usage",
			slog.String("run_id", allocation.RunID),
			slog.String("error", err.Error()),
		)
		code = ExitAborted
	}

	if err := report.Write(b.out, allocation.Usage); err != nil {
		b.logger.Error("report failed", slog.String("error", err.Error()))
		return ExitFailure
	}
	return code
}
