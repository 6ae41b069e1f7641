package test

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
)

// ReferenceOrders returns the four-order sample batch.
func ReferenceOrders() []model.Order {
	return []model.Order{
		{ID: "ORDER1", Value: decimal.RequireFromString("100.00"), Promotions: []string{"mZysk"}},
		{ID: "ORDER2", Value: decimal.RequireFromString("200.00"), Promotions: []string{"BosBankrut"}},
		{ID: "ORDER3", Value: decimal.RequireFromString("150.00"), Promotions: []string{"mZysk", "BosBankrut"}},
		{ID: "ORDER4", Value: decimal.RequireFromString("50.00")},
	}
}

// ReferenceInstruments returns payment methods matching ReferenceOrders.
func ReferenceInstruments() []model.PaymentInstrument {
	return []model.PaymentInstrument{
		{ID: model.LoyaltyInstrumentID, Discount: 15, Limit: decimal.RequireFromString("100.00")},
		{ID: "mZysk", Discount: 10, Limit: decimal.RequireFromString("180.00")},
		{ID: "BosBankrut", Discount: 5, Limit: decimal.RequireFromString("200.00")},
	}
}
