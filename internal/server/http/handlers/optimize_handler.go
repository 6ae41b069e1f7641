package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/paymentoptimizer/internal/domain/errors"
	"github.com/polkiloo/paymentoptimizer/internal/server/http/dto"
)

// OptimizeHandler manages allocation endpoints.
type OptimizeHandler struct {
	facade OptimizerFacade
}

// NewOptimizeHandler constructs OptimizeHandler.
func NewOptimizeHandler(facade OptimizerFacade) *OptimizeHandler {
	return &OptimizeHandler{facade: facade}
}

// Optimize handles POST /api/optimize.
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	var req dto.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	allocation, err := h.facade.Optimize(c.Request.Context(), req.Orders, req.PaymentMethods)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrLoyaltyUnavailable) && allocation != nil:
			resp := newOptimizeResponse(allocation)
			resp.Error = err.Error()
			c.JSON(http.StatusUnprocessableEntity, resp)
		case errors.Is(err, domainErrors.ErrNilInput):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domainErrors.ErrInvalidAmount), errors.Is(err, domainErrors.ErrInvalidDiscount):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, newOptimizeResponse(allocation))
}

// Health handles GET /api/health.
func (h *OptimizeHandler) Health(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
