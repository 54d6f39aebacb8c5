package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pagepulse/pagepulse/internal/web"
	"github.com/stretchr/testify/assert"
)

type staticAuthenticator struct {
	valid string
}

func (s *staticAuthenticator) Authenticate(token string) bool {
	return token != "" && token == s.valid
}

func setupPages(t *testing.T) *chi.Mux {
	t.Helper()

	router := chi.NewMux()
	pages := web.NewPages(&staticAuthenticator{valid: "good-token"}, "auth")
	pages.RegisterRoutes(router)

	return router
}

func get(router *chi.Mux, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestPages_Admin(t *testing.T) {
	t.Run("redirects anonymous visitors to the login page", func(t *testing.T) {
		router := setupPages(t)

		w := get(router, "/admin", nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login.html", w.Header().Get("Location"))
	})

	t.Run("redirects invalid sessions to the login page", func(t *testing.T) {
		router := setupPages(t)

		w := get(router, "/admin", &http.Cookie{Name: "auth", Value: "forged"})

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("serves the dashboard for a valid session", func(t *testing.T) {
		router := setupPages(t)

		w := get(router, "/admin", &http.Cookie{Name: "auth", Value: "good-token"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "PagePulse")
	})

	t.Run("blocks direct access to the raw page file", func(t *testing.T) {
		router := setupPages(t)

		w := get(router, "/admin.html", nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin", w.Header().Get("Location"))
	})
}

func TestPages_Login(t *testing.T) {
	t.Run("serves the login page", func(t *testing.T) {
		router := setupPages(t)

		w := get(router, "/login.html", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("redirects /login to the page", func(t *testing.T) {
		router := setupPages(t)

		w := get(router, "/login", nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login.html", w.Header().Get("Location"))
	})
}

func TestPages_Beacon(t *testing.T) {
	router := setupPages(t)

	w := get(router, "/pulse.js", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/track")
}
