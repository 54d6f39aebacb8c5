package container

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pagepulse/pagepulse/internal/handlers"
	"github.com/pagepulse/pagepulse/internal/store"
	"github.com/pagepulse/pagepulse/internal/tracking"
	"github.com/samber/do"
)

// StorePackage provides the event store: Postgres when a connection string
// is configured, the JSON file store otherwise.
func StorePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (tracking.Store, error) {
		options := do.MustInvoke[*Options](i)

		if options.PostgresURL != "" {
			pool, err := pgxpool.New(context.Background(), options.PostgresURL)
			if err != nil {
				return nil, fmt.Errorf("connect postgres: %w", err)
			}

			pg := store.NewPostgresStore(pool)
			if err := pg.EnsureSchema(context.Background()); err != nil {
				return nil, fmt.Errorf("ensure schema: %w", err)
			}

			return pg, nil
		}

		return store.NewFileStore(options.DataFile), nil
	})

	do.Provide(injector, func(i *do.Injector) (handlers.Checker, error) {
		eventStore := do.MustInvoke[tracking.Store](i)

		checker, ok := eventStore.(handlers.Checker)
		if !ok {
			return nil, fmt.Errorf("event store %T does not support health checks", eventStore)
		}

		return checker, nil
	})
}
