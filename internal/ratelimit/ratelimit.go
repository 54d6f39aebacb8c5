package ratelimit

import (
	"context"
	"time"
)

// MetadataKey is the key used to store rate limit config in huma operation
// metadata.
const MetadataKey = "rateLimit"

// LimitConfig is one sliding-window limit.
type LimitConfig struct {
	Window time.Duration
	Max    int64
}

// EndpointConfig defines per-endpoint rate limits, attached to huma
// operations via the Metadata field. Endpoints without config are not
// limited.
type EndpointConfig struct {
	Limits []LimitConfig
}

// Store records requests per key and reports how many fall inside the
// window, including the one just recorded.
type Store interface {
	Record(ctx context.Context, key string, window time.Duration) (int64, error)
}
