// Package web serves the static dashboard shell. The pages are thin
// presentation glue; all data comes from the JSON API.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed pages
var pages embed.FS

// Authenticator validates session tokens.
type Authenticator interface {
	Authenticate(token string) bool
}

// Pages serves the login and dashboard pages, gating the dashboard behind
// an authenticated session. Anonymous page loads redirect to the login page
// rather than getting a bare 401.
type Pages struct {
	sessions   Authenticator
	cookieName string
}

// NewPages creates the page handler.
func NewPages(sessions Authenticator, cookieName string) *Pages {
	return &Pages{sessions: sessions, cookieName: cookieName}
}

// RegisterRoutes mounts the page routes on the router.
func (p *Pages) RegisterRoutes(router chi.Router) {
	static, _ := fs.Sub(pages, "pages")
	fileServer := http.FileServer(http.FS(static))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login.html", http.StatusFound)
	})
	router.Get("/login.html", fileServer.ServeHTTP)
	router.Get("/pulse.js", fileServer.ServeHTTP)
	router.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login.html", http.StatusFound)
	})
	router.Get("/admin", p.serveAdmin)
	// No direct access to the raw file
	router.Get("/admin.html", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin", http.StatusFound)
	})
}

func (p *Pages) serveAdmin(w http.ResponseWriter, r *http.Request) {
	if !p.authenticated(r) {
		http.Redirect(w, r, "/login.html", http.StatusFound)

		return
	}

	raw, err := pages.ReadFile("pages/admin.html")
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(raw)
}

func (p *Pages) authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(p.cookieName)
	if err != nil {
		return false
	}

	return p.sessions.Authenticate(cookie.Value)
}
