package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/paymentoptimizer/internal/config"
	"github.com/polkiloo/paymentoptimizer/internal/storage/file"
)

func TestNewSourceSelectsBackend(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	res, err := newSource(sourceParams{
		Ctx:       context.Background(),
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{OrdersPath: "orders.json", PaymentMethodsPath: "methods.json"},
		Logger:    logger,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.Source.(*file.Source); !ok {
		t.Fatalf("expected file source, got %T", res.Source)
	}
	if res.Health == nil {
		t.Fatal("expected health checker")
	}

	res, err = newSource(sourceParams{
		Ctx:       context.Background(),
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{RunAddress: ":8080"},
		Logger:    logger,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != nil || res.Health != nil {
		t.Fatalf("expected no source in server mode without inputs, got %+v", res)
	}

	_, err = newSource(sourceParams{
		Ctx:       context.Background(),
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{DatabaseURI: ":://bad"},
		Logger:    logger,
	})
	if err == nil {
		t.Fatal("expected error for invalid dsn")
	}
}
