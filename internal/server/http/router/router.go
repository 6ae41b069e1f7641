package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/paymentoptimizer/internal/server/http/handlers"
	"github.com/polkiloo/paymentoptimizer/internal/server/http/middleware"
)

const maxRequestBytes = 32 << 20

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.OptimizerFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest(maxRequestBytes))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	optimizeHandler := handlers.NewOptimizeHandler(facade)

	api := engine.Group("/api")
	api.POST("/optimize", optimizeHandler.Optimize)
	api.GET("/health", optimizeHandler.Health)

	return engine
}
