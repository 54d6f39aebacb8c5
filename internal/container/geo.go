package container

import (
	"github.com/pagepulse/pagepulse/internal/geo"
	"github.com/samber/do"
)

// GeoPackage provides the country resolver: MaxMind when a database path is
// configured, a no-op resolver otherwise.
func GeoPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (geo.Resolver, error) {
		options := do.MustInvoke[*Options](i)

		if options.GeoDBPath == "" {
			return geo.NewNoop(), nil
		}

		return geo.NewMaxMind(options.GeoDBPath)
	})
}
