package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/pagepulse/pagepulse/internal/ratelimit"
)

// RegisterRoutes registers all API routes with their auth and rate limit
// configuration.
func RegisterRoutes(
	api huma.API,
	track *TrackHandler,
	stats *StatsHandler,
	auth *AuthHandler,
	health *HealthHandler,
) {
	// POST /api/track - beacon ingestion, fire-and-forget
	huma.Register(api, huma.Operation{
		Method:        http.MethodPost,
		Path:          "/api/track",
		Summary:       "Record a page view",
		Description:   "Accepts a browser beacon and records one page-view event. Missing or malformed fields are treated as unknown.",
		Tags:          []string{"Tracking"},
		DefaultStatus: http.StatusNoContent,
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 300}, // beacon flood guard
				},
			},
		},
	}, track.Track)

	// GET /api/stats - dashboard data, session required
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/stats",
		Summary:     "Get aggregated statistics",
		Description: "Recomputes KPI counts, time-bucketed series, and leaderboards over the whole event log.",
		Tags:        []string{"Stats"},
		Metadata: map[string]any{
			RequiresSessionKey: true,
		},
	}, stats.GetStats)

	// POST /login - establish an admin session
	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/login",
		Summary:     "Admin login",
		Description: "Checks the configured admin credentials and sets the session cookie.",
		Tags:        []string{"Auth"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 10}, // brute-force guard
					{Window: time.Hour, Max: 50},
				},
			},
		},
	}, auth.Login)

	// POST /logout - drop the session
	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/logout",
		Summary:     "Admin logout",
		Description: "Invalidates the session token and clears the cookie. Always succeeds.",
		Tags:        []string{"Auth"},
	}, auth.Logout)

	// GET /api/health - unauthenticated liveness
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, health.Check)
}
