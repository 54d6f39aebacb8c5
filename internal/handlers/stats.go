package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/pagepulse/pagepulse/internal/stats"
	"go.uber.org/zap"
)

// StatsHandler serves the aggregated dashboard report.
type StatsHandler struct {
	aggregator *stats.Aggregator
	logger     *zap.Logger
	now        func() time.Time
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(aggregator *stats.Aggregator, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		aggregator: aggregator,
		logger:     logger,
		now:        time.Now,
	}
}

// GetStats recomputes the full report from the event log.
func (h *StatsHandler) GetStats(ctx context.Context, req *StatsRequest) (*StatsResponse, error) {
	report, err := h.aggregator.Compute(ctx, h.now(), req.TopN)
	if err != nil {
		h.logger.Error("failed to compute stats", zap.Error(err))

		return nil, huma.Error500InternalServerError("stats unavailable")
	}

	return &StatsResponse{Body: *report}, nil
}
