package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/paymentoptimizer/internal/domain/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestSourceLoads(t *testing.T) {
	dir := t.TempDir()
	orders := writeFile(t, dir, "orders.json", `[
		{"id": "ORDER1", "value": "100.00", "promotions": ["mZysk"]},
		{"id": "ORDER4", "value": 50.00}
	]`)
	methods := writeFile(t, dir, "paymentmethods.json", `[
		{"id": "PUNKTY", "discount": "15", "limit": "100.00"},
		{"id": "mZysk", "discount": 10, "limit": 180.00}
	]`)

	src := New(orders, methods, nil)

	gotOrders, err := src.LoadOrders(context.Background())
	if err != nil {
		t.Fatalf("load orders: %v", err)
	}
	if len(gotOrders) != 2 || gotOrders[0].ID != "ORDER1" || gotOrders[1].Promotions != nil {
		t.Fatalf("unexpected orders: %+v", gotOrders)
	}
	if !gotOrders[1].Value.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected value: %s", gotOrders[1].Value)
	}

	gotMethods, err := src.LoadInstruments(context.Background())
	if err != nil {
		t.Fatalf("load methods: %v", err)
	}
	if len(gotMethods) != 2 || gotMethods[0].Discount != 15 || gotMethods[1].ID != "mZysk" {
		t.Fatalf("unexpected methods: %+v", gotMethods)
	}
}

func TestSourceNullDocument(t *testing.T) {
	dir := t.TempDir()
	orders := writeFile(t, dir, "orders.json", `null`)
	src := New(orders, "", nil)

	got, err := src.LoadOrders(context.Background())
	if err != nil {
		t.Fatalf("load orders: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil slice for null document, got %+v", got)
	}
}

func TestSourceErrors(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.json", `[{"id": 1`)
	badDiscount := writeFile(t, dir, "bad.json", `[{"id": "x", "discount": "abc", "limit": "1"}]`)

	src := New(filepath.Join(dir, "missing.json"), broken, nil)
	if _, err := src.LoadOrders(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
	if _, err := src.LoadInstruments(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}

	src = New("", badDiscount, nil)
	if _, err := src.LoadInstruments(context.Background()); !errors.Is(err, domainErrors.ErrInvalidDiscount) {
		t.Fatalf("expected invalid discount, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.LoadInstruments(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestSourceHealthCheck(t *testing.T) {
	dir := t.TempDir()
	orders := writeFile(t, dir, "orders.json", `[]`)
	methods := writeFile(t, dir, "paymentmethods.json", `[]`)

	if err := New(orders, methods, nil).HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := New(orders, filepath.Join(dir, "missing.json"), nil).HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
