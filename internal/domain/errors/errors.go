package errors

import "errors"

var (
	ErrNilInput            = errors.New("orders and payment methods must not be nil")
	ErrLoyaltyUnavailable  = errors.New("loyalty points are not available")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidDiscount     = errors.New("invalid discount")
	ErrNotFound            = errors.New("not found")
)
