package model

import "github.com/shopspring/decimal"

// Order describes a purchase that has to be paid with available instruments.
type Order struct {
	ID         string          `json:"id"`
	Value      decimal.Decimal `json:"value"`
	Promotions []string        `json:"promotions"`
}
