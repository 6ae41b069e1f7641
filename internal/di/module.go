package di

import (
	"github.com/polkiloo/paymentoptimizer/internal/app"
	"github.com/polkiloo/paymentoptimizer/internal/config"
	"github.com/polkiloo/paymentoptimizer/internal/logger"
	"github.com/polkiloo/paymentoptimizer/internal/server/http/handlers"
	"github.com/polkiloo/paymentoptimizer/internal/server/http/router"
	"github.com/polkiloo/paymentoptimizer/internal/storage"
	"github.com/polkiloo/paymentoptimizer/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(facade *app.OptimizerFacade) handlers.OptimizerFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
