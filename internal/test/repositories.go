package test

import (
	"context"

	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
)

// SourceStub serves allocation inputs from memory.
type SourceStub struct {
	LoadOrdersFn      func(context.Context) ([]model.Order, error)
	LoadInstrumentsFn func(context.Context) ([]model.PaymentInstrument, error)

	Orders      []model.Order
	Instruments []model.PaymentInstrument
	OrdersErr   error
	MethodsErr  error
	Calls       int
}

// LoadOrders returns configured orders or delegates to override.
func (s *SourceStub) LoadOrders(ctx context.Context) ([]model.Order, error) {
	s.Calls++
	if s.LoadOrdersFn != nil {
		return s.LoadOrdersFn(ctx)
	}
	if s.OrdersErr != nil {
		return nil, s.OrdersErr
	}
	return s.Orders, nil
}

// LoadInstruments returns configured payment methods or delegates to override.
func (s *SourceStub) LoadInstruments(ctx context.Context) ([]model.PaymentInstrument, error) {
	if s.LoadInstrumentsFn != nil {
		return s.LoadInstrumentsFn(ctx)
	}
	if s.MethodsErr != nil {
		return nil, s.MethodsErr
	}
	return s.Instruments, nil
}
