package handlers

import (
	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
	"github.com/polkiloo/paymentoptimizer/internal/report"
	"github.com/polkiloo/paymentoptimizer/internal/server/http/dto"
)

func newOptimizeResponse(allocation *model.Allocation) dto.OptimizeResponse {
	entries := report.NonZero(allocation.Usage)
	usage := make([]dto.UsageResponse, 0, len(entries))
	for _, entry := range entries {
		usage = append(usage, dto.UsageResponse{Method: entry.InstrumentID, Amount: report.FormatAmount(entry.Amount)})
	}
	return dto.OptimizeResponse{
		RunID:   allocation.RunID,
		Usage:   usage,
		Summary: allocation.Summary,
	}
}
