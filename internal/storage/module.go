package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/paymentoptimizer/internal/config"
	"github.com/polkiloo/paymentoptimizer/internal/domain/repository"
	"github.com/polkiloo/paymentoptimizer/internal/storage/file"
	"github.com/polkiloo/paymentoptimizer/internal/storage/postgres"
)

// Module picks the input backend: PostgreSQL when a DSN is configured, JSON files otherwise.
var Module = fx.Provide(newSource)

type sourceParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

type sourceResult struct {
	fx.Out

	Source repository.Source
	Health repository.HealthChecker
}

func newSource(p sourceParams) (sourceResult, error) {
	switch {
	case p.Config.DatabaseURI != "":
		st, err := postgres.Open(p.Ctx, p.Lifecycle, p.Config.DatabaseURI, p.Logger)
		if err != nil {
			return sourceResult{}, err
		}
		p.Logger.Info("using postgres input source")
		return sourceResult{Source: st, Health: st}, nil
	case p.Config.OrdersPath != "" && p.Config.PaymentMethodsPath != "":
		src := file.New(p.Config.OrdersPath, p.Config.PaymentMethodsPath, p.Logger)
		p.Logger.Info("using file input source",
			slog.String("orders", p.Config.OrdersPath),
			slog.String("payment_methods", p.Config.PaymentMethodsPath),
		)
		return sourceResult{Source: src, Health: src}, nil
	default:
		return sourceResult{}, nil
	}
}
