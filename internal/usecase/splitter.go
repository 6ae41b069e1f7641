package usecase

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
)

// partialPointsRate is both the minimal points share and the discount of a split payment.
// It does not depend on the loyalty instrument's own discount.
var partialPointsRate = decimal.RequireFromString("0.1")

// tryPartialPoints pays part of the order with loyalty points and the rest with
// the first other instrument, in declaration order, able to cover it.
func (e *AllocationEngine) tryPartialPoints(order model.Order) outcome {
	if !e.loyaltyAvailable() {
		return outcomeHalt
	}

	points := e.ledger.Remaining(model.LoyaltyInstrumentID)
	minRequired := order.Value.Mul(partialPointsRate)
	if points.LessThan(minRequired) {
		return outcomeUnallocated
	}

	discount := order.Value.Mul(partialPointsRate)
	toPay := order.Value.Sub(discount)
	pointsUsed := decimal.Min(toPay, points)
	leftToPay := toPay.Sub(pointsUsed)

	for _, id := range e.ledger.IDs() {
		if id == model.LoyaltyInstrumentID || !e.ledger.CanAfford(id, leftToPay) {
			continue
		}

		if err := e.ledger.Commit(model.LoyaltyInstrumentID, pointsUsed); err != nil {
			e.logger.Error("points commit failed", slog.String("order", order.ID), slog.String("error", err.Error()))
			return outcomeUnallocated
		}
		if err := e.ledger.Commit(id, leftToPay); err != nil {
			e.logger.Error("split commit failed", slog.String("order", order.ID), slog.String("error", err.Error()))
			return outcomeUnallocated
		}
		e.usage.Add(model.LoyaltyInstrumentID, pointsUsed)
		e.usage.Add(id, leftToPay)

		e.logger.Debug("order split with loyalty points",
			slog.String("order", order.ID),
			slog.String("method", id),
			slog.String("points", pointsUsed.StringFixed(2)),
			slog.String("paid", leftToPay.StringFixed(2)),
		)
		return outcomeSplit
	}

	return outcomeUnallocated
}
