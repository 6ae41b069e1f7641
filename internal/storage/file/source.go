package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
	"github.com/polkiloo/paymentoptimizer/internal/domain/repository"
)

// Source reads orders and payment methods from JSON array files.
type Source struct {
	ordersPath  string
	methodsPath string
	logger      *slog.Logger
}

var _ repository.Source = (*Source)(nil)

// New creates file source for the given paths.
func New(ordersPath, methodsPath string, logger *slog.Logger) *Source {
	return &Source{ordersPath: ordersPath, methodsPath: methodsPath, logger: logger}
}

// LoadOrders decodes orders file.
func (s *Source) LoadOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.decode(ctx, s.ordersPath, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// LoadInstruments decodes payment methods file.
func (s *Source) LoadInstruments(ctx context.Context) ([]model.PaymentInstrument, error) {
	var methods []model.PaymentInstrument
	if err := s.decode(ctx, s.methodsPath, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

func (s *Source) decode(ctx context.Context, path string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if s.logger != nil {
		s.logger.Debug("input file loaded", slog.String("path", path), slog.Int("bytes", len(data)))
	}
	return nil
}

// HealthCheck verifies both input files are readable.
func (s *Source) HealthCheck(ctx context.Context) error {
	for _, path := range []string{s.ordersPath, s.methodsPath} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return nil
}
