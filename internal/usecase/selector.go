package usecase

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
)

// fullDiscountCandidates lists promotions in order without repeats, loyalty instrument last.
func fullDiscountCandidates(order model.Order) []string {
	seen := make(map[string]struct{}, len(order.Promotions)+1)
	candidates := make([]string, 0, len(order.Promotions)+1)
	for _, id := range order.Promotions {
		if id == model.LoyaltyInstrumentID {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		candidates = append(candidates, id)
	}
	return append(candidates, model.LoyaltyInstrumentID)
}

// tryFullDiscount pays the whole order with the single instrument giving the largest discount.
// The earliest candidate wins a tie.
func (e *AllocationEngine) tryFullDiscount(order model.Order) outcome {
	if !e.loyaltyAvailable() {
		return outcomeHalt
	}

	bestDiscount := decimal.Zero
	bestID := ""
	for _, id := range fullDiscountCandidates(order) {
		pm, ok := e.ledger.Get(id)
		if !ok || !e.ledger.CanAfford(id, order.Value) {
			continue
		}
		discount := Discount(order.Value, pm.Discount)
		if discount.GreaterThan(bestDiscount) {
			bestDiscount = discount
			bestID = id
		}
	}

	if bestID == "" {
		return outcomeUnallocated
	}

	toPay := order.Value.Sub(bestDiscount)
	if err := e.ledger.Commit(bestID, toPay); err != nil {
		e.logger.Error("full discount commit failed", slog.String("order", order.ID), slog.String("error", err.Error()))
		return outcomeUnallocated
	}
	e.usage.Add(bestID, toPay)

	e.logger.Debug("order paid with full discount",
		slog.String("order", order.ID),
		slog.String("method", bestID),
		slog.String("discount", bestDiscount.StringFixed(2)),
		slog.String("paid", toPay.StringFixed(2)),
	)
	return outcomeFullyPaid
}
