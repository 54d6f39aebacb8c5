package middleware

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/pagepulse/pagepulse/internal/handlers"
)

// Authenticator validates session tokens.
type Authenticator interface {
	Authenticate(token string) bool
}

// Session gates operations whose metadata carries
// handlers.RequiresSessionKey. Anonymous API callers get a 401; page-level
// gating (redirects) lives on the plain chi routes instead.
func Session(api huma.API, sessions Authenticator) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		op := ctx.Operation()
		if op == nil || op.Metadata == nil || op.Metadata[handlers.RequiresSessionKey] != true {
			next(ctx)

			return
		}

		token := ""
		if cookie, err := huma.ReadCookie(ctx, handlers.SessionCookie); err == nil {
			token = cookie.Value
		}

		if !sessions.Authenticate(token) {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "unauthorized")

			return
		}

		next(ctx)
	}
}
