package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
)

var hundred = decimal.NewFromInt(100)

// Discount returns percent of value rounded half-up to cents.
func Discount(value decimal.Decimal, percent model.Percent) decimal.Decimal {
	return value.Mul(decimal.NewFromInt(int64(percent))).DivRound(hundred, 2)
}
