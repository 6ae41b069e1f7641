package usecase

import (
	"fmt"

	domainErrors "github.com/polkiloo/paymentoptimizer/internal/domain/errors"
	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
)

// ValidateOrders rejects a missing batch and orders with negative value.
func ValidateOrders(orders []model.Order) error {
	if orders == nil {
		return fmt.Errorf("orders: %w", domainErrors.ErrNilInput)
	}
	for _, o := range orders {
		if o.Value.IsNegative() {
			return fmt.Errorf("order %s value %s: %w", o.ID, o.Value, domainErrors.ErrInvalidAmount)
		}
	}
	return nil
}

// ValidateInstruments rejects a missing set, negative limits and discounts outside 0-100.
func ValidateInstruments(instruments []model.PaymentInstrument) error {
	if instruments == nil {
		return fmt.Errorf("payment methods: %w", domainErrors.ErrNilInput)
	}
	for _, pm := range instruments {
		if pm.Limit.IsNegative() {
			return fmt.Errorf("payment method %s limit %s: %w", pm.ID, pm.Limit, domainErrors.ErrInvalidAmount)
		}
		if pm.Discount < 0 || pm.Discount > 100 {
			return fmt.Errorf("payment method %s discount %d: %w", pm.ID, pm.Discount, domainErrors.ErrInvalidDiscount)
		}
	}
	return nil
}
