package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/pagepulse/pagepulse/internal/auth"
	"go.uber.org/zap"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	sessions *auth.Service
	logger   *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(sessions *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// Login checks the credential pair and establishes a session. Failures are
// reported with a generic message and no cookie.
func (h *AuthHandler) Login(_ context.Context, req *LoginRequest) (*LoginResponse, error) {
	resp := &LoginResponse{}

	token, err := h.sessions.Login(req.Body.Email, req.Body.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Error("login failed", zap.Error(err))
		}

		resp.Status = http.StatusUnauthorized
		resp.Body.OK = false
		resp.Body.Error = "invalid_credentials"

		return resp, nil
	}

	resp.Status = http.StatusOK
	resp.Body.OK = true
	resp.SetCookie = http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   sessionMaxAge,
	}

	return resp, nil
}

// Logout drops the session token and clears the cookie. Always succeeds,
// even for unknown or absent tokens.
func (h *AuthHandler) Logout(_ context.Context, req *LogoutRequest) (*LogoutResponse, error) {
	if req.Token.Value != "" {
		h.sessions.Logout(req.Token.Value)
	}

	resp := &LogoutResponse{}
	resp.Body.OK = true
	resp.SetCookie = http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}

	return resp, nil
}
