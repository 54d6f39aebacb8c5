package middleware

import (
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/pagepulse/pagepulse/internal/handlers"
	"github.com/pagepulse/pagepulse/internal/ratelimit"
	"go.uber.org/zap"
)

// RateLimit enforces the per-endpoint sliding-window limits attached to
// huma operations via ratelimit.MetadataKey. Keys are per client IP per
// endpoint. A store failure lets the request through; throttling is never
// worth an outage.
func RateLimit(api huma.API, store ratelimit.Store, logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		op := ctx.Operation()
		if op == nil || op.Metadata == nil {
			next(ctx)

			return
		}

		config, ok := op.Metadata[ratelimit.MetadataKey].(ratelimit.EndpointConfig)
		if !ok || len(config.Limits) == 0 {
			next(ctx)

			return
		}

		meta := handlers.RequestMetaFromContext(ctx.Context())

		for _, limit := range config.Limits {
			key := fmt.Sprintf("%s:%s:%s", meta.ClientIP, op.Path, limit.Window)

			count, err := store.Record(ctx.Context(), key, limit.Window)
			if err != nil {
				logger.Error("rate limit store failed", zap.Error(err))

				continue
			}

			if count > limit.Max {
				_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, "rate limit exceeded")

				return
			}
		}

		next(ctx)
	}
}
