package dto

import "github.com/polkiloo/paymentoptimizer/internal/domain/model"

// OptimizeRequest carries one allocation batch.
type OptimizeRequest struct {
	Orders         []model.Order             `json:"orders"`
	PaymentMethods []model.PaymentInstrument `json:"paymentMethods"`
}

// UsageResponse is a single report line.
type UsageResponse struct {
	Method string `json:"method"`
	Amount string `json:"amount"`
}

// OptimizeResponse describes allocation result. Error is set when the run was aborted.
type OptimizeResponse struct {
	RunID   string           `json:"runId"`
	Usage   []UsageResponse  `json:"usage"`
	Summary model.RunSummary `json:"summary"`
	Error   string           `json:"error,omitempty"`
}

// ErrorResponse describes a rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status string `json:"status"`
}
