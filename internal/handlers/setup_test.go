package handlers_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/pagepulse/pagepulse/internal/auth"
	"github.com/pagepulse/pagepulse/internal/handlers"
	"github.com/pagepulse/pagepulse/internal/middleware"
	"github.com/pagepulse/pagepulse/internal/ratelimit"
	"github.com/pagepulse/pagepulse/internal/stats"
	"github.com/pagepulse/pagepulse/internal/store"
	"github.com/pagepulse/pagepulse/internal/tracking"
	"go.uber.org/zap"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "s3cret"
)

// capturePublisher records published events in place of a real transport.
type capturePublisher struct {
	mu     sync.Mutex
	events []tracking.Event
	err    error
}

func (c *capturePublisher) publish(event *tracking.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}

	c.events = append(c.events, *event)

	return nil
}

func (c *capturePublisher) published() []tracking.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]tracking.Event, len(c.events))
	copy(out, c.events)

	return out
}

// stubResolver resolves from a fixed table.
type stubResolver struct {
	countries map[string]string
}

func (s *stubResolver) Country(ip string) string {
	return s.countries[ip]
}

type testEnv struct {
	router    *chi.Mux
	store     *store.MemoryStore
	sessions  *auth.Service
	publisher *capturePublisher
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tokens := 0
	generate := func() string {
		tokens++

		return fmt.Sprintf("token-%d", tokens)
	}

	env := &testEnv{
		router:    chi.NewMux(),
		store:     store.NewMemoryStore(),
		sessions:  auth.NewService(testEmail, testPassword, generate),
		publisher: &capturePublisher{},
	}

	logger := zap.NewNop()
	resolver := &stubResolver{countries: map[string]string{"203.0.113.9": "DE"}}

	api := humachi.New(env.router, huma.DefaultConfig("Test", "1.0.0"))
	api.UseMiddleware(
		middleware.RequestMeta(api),
		middleware.RateLimit(api, ratelimit.NewMemoryStore(), logger),
		middleware.Session(api, env.sessions),
	)

	handlers.RegisterRoutes(api,
		handlers.NewTrackHandler(env.publisher.publish, resolver, logger),
		handlers.NewStatsHandler(stats.NewAggregator(env.store), logger),
		handlers.NewAuthHandler(env.sessions, logger),
		handlers.NewHealthHandler(env.store),
	)

	return env
}
