package handlers

import (
	"context"
)

// Checker defines the interface for checking a dependency's health.
type Checker interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles liveness checks.
type HealthHandler struct {
	store Checker
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store Checker) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Body struct {
		Status string `json:"status"`
		Store  string `json:"store"`
	}
}

// Check reports liveness. A degraded store does not fail the check; the
// endpoint always answers 200.
func (h *HealthHandler) Check(ctx context.Context, _ *struct{}) (*HealthResponse, error) {
	resp := &HealthResponse{}
	resp.Body.Status = "ok"

	if err := h.store.Ping(ctx); err != nil {
		resp.Body.Status = "degraded"
		resp.Body.Store = "unhealthy"
	} else {
		resp.Body.Store = "healthy"
	}

	return resp, nil
}
