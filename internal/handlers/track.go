package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/pagepulse/pagepulse/internal/geo"
	"github.com/pagepulse/pagepulse/internal/messaging"
	"github.com/pagepulse/pagepulse/internal/tracking"
	"go.uber.org/zap"
)

// TrackHandler accepts beacon posts and publishes page-view events for the
// store-appending consumer. Tracking is fire-and-forget from the browser's
// perspective.
type TrackHandler struct {
	publish  messaging.Publish[tracking.Event]
	resolver geo.Resolver
	logger   *zap.Logger
	now      func() time.Time
}

// NewTrackHandler creates a new track handler.
func NewTrackHandler(
	publish messaging.Publish[tracking.Event],
	resolver geo.Resolver,
	logger *zap.Logger,
) *TrackHandler {
	return &TrackHandler{
		publish:  publish,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// Track records one page view. The payload is best effort: anything the
// beacon failed to send is simply unknown.
func (h *TrackHandler) Track(ctx context.Context, req *TrackRequest) (*TrackResponse, error) {
	var payload trackPayload
	// Malformed payloads are defaulted, not rejected
	_ = json.Unmarshal(req.RawBody, &payload)

	meta := RequestMetaFromContext(ctx)

	userAgent := payload.UserAgent
	if userAgent == "" {
		userAgent = meta.UserAgent
	}

	event := &tracking.Event{
		ID:        uuid.NewString(),
		Timestamp: h.now().UnixMilli(),
		ClientIP:  meta.ClientIP,
		Country:   h.resolver.Country(meta.ClientIP),
		Path:      payload.Path,
		Referrer:  payload.Referrer,
		UserAgent: userAgent,
	}

	if err := h.publish(event); err != nil {
		h.logger.Error("failed to publish page view",
			zap.String("path", event.Path),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("track failed")
	}

	return &TrackResponse{}, nil
}
