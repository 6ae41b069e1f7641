package usecase

import (
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/paymentoptimizer/internal/domain/errors"
	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
)

type outcome int

const (
	outcomeUnallocated outcome = iota
	outcomeFullyPaid
	outcomeSplit
	outcomeHalt
)

// AllocationEngine assigns payment instruments to orders one by one in input order.
// The engine owns its ledger and is meant for a single Run.
type AllocationEngine struct {
	orders []model.Order
	ledger *InstrumentLedger
	usage  *model.Usage
	logger *slog.Logger
}

// NewAllocationEngine validates inputs and builds an engine with a fresh ledger.
func NewAllocationEngine(orders []model.Order, instruments []model.PaymentInstrument, logger *slog.Logger) (*AllocationEngine, error) {
	if err := ValidateOrders(orders); err != nil {
		return nil, err
	}
	if err := ValidateInstruments(instruments); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &AllocationEngine{
		orders: append([]model.Order(nil), orders...),
		ledger: NewInstrumentLedger(instruments),
		usage:  model.NewUsage(),
		logger: logger,
	}, nil
}

// Run processes every order and returns accumulated usage. When loyalty points are
// unavailable for an order the run stops, and usage collected so far is returned
// together with an error wrapping ErrLoyaltyUnavailable.
func (e *AllocationEngine) Run() (*model.Usage, model.RunSummary, error) {
	summary := model.RunSummary{Orders: len(e.orders)}

	for i, order := range e.orders {
		switch e.allocate(order) {
		case outcomeFullyPaid:
			summary.FullyPaid++
		case outcomeSplit:
			summary.Split++
		case outcomeUnallocated:
			summary.Unallocated++
			e.logger.Debug("order left unallocated", slog.String("order", order.ID))
		case outcomeHalt:
			summary.Skipped = len(e.orders) - i
			e.logger.Warn("allocation aborted",
				slog.String("order", order.ID),
				slog.Int("skipped", summary.Skipped),
			)
			return e.usage, summary, fmt.Errorf("order %s: %w", order.ID, domainErrors.ErrLoyaltyUnavailable)
		}
	}

	return e.usage, summary, nil
}

// Ledger exposes instrument balances.
func (e *AllocationEngine) Ledger() *InstrumentLedger {
	return e.ledger
}

func (e *AllocationEngine) allocate(order model.Order) outcome {
	if result := e.tryFullDiscount(order); result != outcomeUnallocated {
		return result
	}
	return e.tryPartialPoints(order)
}

// loyaltyAvailable requires loyalty instrument with positive balance.
func (e *AllocationEngine) loyaltyAvailable() bool {
	if _, ok := e.ledger.Get(model.LoyaltyInstrumentID); !ok {
		return false
	}
	return e.ledger.Remaining(model.LoyaltyInstrumentID).IsPositive()
}
