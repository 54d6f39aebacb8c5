package container

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/pagepulse/pagepulse/internal/auth"
	"github.com/pagepulse/pagepulse/internal/geo"
	"github.com/pagepulse/pagepulse/internal/handlers"
	"github.com/pagepulse/pagepulse/internal/messaging"
	"github.com/pagepulse/pagepulse/internal/middleware"
	"github.com/pagepulse/pagepulse/internal/ratelimit"
	"github.com/pagepulse/pagepulse/internal/stats"
	"github.com/pagepulse/pagepulse/internal/tracking"
	"github.com/pagepulse/pagepulse/internal/web"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// HTTPPackage provides the router and the API with all routes registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		router := do.MustInvoke[*chi.Mux](i)
		logger := do.MustInvoke[*zap.Logger](i)
		sessions := do.MustInvoke[*auth.Service](i)
		resolver := do.MustInvoke[geo.Resolver](i)
		eventStore := do.MustInvoke[tracking.Store](i)
		checker := do.MustInvoke[handlers.Checker](i)
		publish := do.MustInvoke[messaging.Publish[tracking.Event]](i)

		api := humachi.New(router, huma.DefaultConfig("PagePulse", "1.0.0"))
		api.UseMiddleware(
			middleware.RequestMeta(api),
			middleware.RateLimit(api, ratelimit.NewMemoryStore(), logger),
			middleware.Session(api, sessions),
		)

		handlers.RegisterRoutes(api,
			handlers.NewTrackHandler(publish, resolver, logger),
			handlers.NewStatsHandler(stats.NewAggregator(eventStore), logger),
			handlers.NewAuthHandler(sessions, logger),
			handlers.NewHealthHandler(checker),
		)

		web.NewPages(sessions, handlers.SessionCookie).RegisterRoutes(router)

		return api, nil
	})
}
