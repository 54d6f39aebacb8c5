package container

import (
	"github.com/jaevor/go-nanoid"
	"github.com/pagepulse/pagepulse/internal/auth"
	"github.com/samber/do"
)

// tokenLength is the size of minted session tokens.
const tokenLength = 32

// AuthPackage provides the admin session service.
func AuthPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*auth.Service, error) {
		options := do.MustInvoke[*Options](i)

		generate, err := nanoid.Standard(tokenLength)
		if err != nil {
			return nil, err
		}

		return auth.NewService(options.AdminEmail, options.AdminPassword, generate), nil
	})
}
