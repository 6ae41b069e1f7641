package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/paymentoptimizer/internal/domain/errors"
	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
)

// InstrumentLedger owns remaining balances of payment instruments.
// Identifiers keep the position of their first declaration.
type InstrumentLedger struct {
	ids         []string
	instruments map[string]*model.PaymentInstrument
}

// NewInstrumentLedger builds ledger from instruments. A repeated identifier replaces the earlier definition.
func NewInstrumentLedger(instruments []model.PaymentInstrument) *InstrumentLedger {
	l := &InstrumentLedger{instruments: make(map[string]*model.PaymentInstrument, len(instruments))}
	for _, pm := range instruments {
		pm := pm
		if _, exists := l.instruments[pm.ID]; !exists {
			l.ids = append(l.ids, pm.ID)
		}
		l.instruments[pm.ID] = &pm
	}
	return l
}

// Get returns a copy of the instrument with current balance.
func (l *InstrumentLedger) Get(id string) (model.PaymentInstrument, bool) {
	pm, ok := l.instruments[id]
	if !ok {
		return model.PaymentInstrument{}, false
	}
	return *pm, true
}

// Remaining returns current balance, zero for unknown instruments.
func (l *InstrumentLedger) Remaining(id string) decimal.Decimal {
	if pm, ok := l.instruments[id]; ok {
		return pm.Limit
	}
	return decimal.Zero
}

// CanAfford reports whether instrument balance covers amount.
func (l *InstrumentLedger) CanAfford(id string, amount decimal.Decimal) bool {
	pm, ok := l.instruments[id]
	if !ok {
		return false
	}
	return pm.Limit.GreaterThanOrEqual(amount)
}

// Commit subtracts amount from instrument balance.
func (l *InstrumentLedger) Commit(id string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("commit %s to %s: %w", amount, id, domainErrors.ErrInvalidAmount)
	}
	if !l.CanAfford(id, amount) {
		return fmt.Errorf("commit %s to %s: %w", amount, id, domainErrors.ErrInsufficientBalance)
	}
	pm := l.instruments[id]
	pm.Limit = pm.Limit.Sub(amount)
	return nil
}

// IDs returns instrument identifiers in declaration order.
func (l *InstrumentLedger) IDs() []string {
	ids := make([]string, len(l.ids))
	copy(ids, l.ids)
	return ids
}
