package handlers

import (
	"net/http"

	"github.com/pagepulse/pagepulse/internal/stats"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "auth"

// RequiresSessionKey marks a huma operation as requiring an authenticated
// admin session when set to true in its metadata.
const RequiresSessionKey = "requiresSession"

// sessionMaxAge is how long the browser keeps the session cookie (7 days).
// The server side never expires tokens; only logout or a restart does.
const sessionMaxAge = 7 * 24 * 60 * 60

// TrackRequest is the beacon payload. The raw body is decoded leniently:
// malformed or missing fields are defaulted, never rejected.
type TrackRequest struct {
	RawBody []byte `contentType:"application/json" doc:"Beacon payload: {path?, referrer?, userAgent?}"`
}

type trackPayload struct {
	Path      string `json:"path"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"userAgent"`
}

// TrackResponse is empty; the endpoint answers 204 No Content.
type TrackResponse struct{}

// StatsRequest asks for the aggregated dashboard report.
type StatsRequest struct {
	TopN int `query:"topN" minimum:"0" doc:"Truncate leaderboards to the top N entries (0 = all)"`
}

// StatsResponse carries the full aggregation report.
type StatsResponse struct {
	Body stats.Report
}

// LoginRequest is the admin credential pair.
type LoginRequest struct {
	Body struct {
		Email    string `doc:"Admin email"    json:"email"`
		Password string `doc:"Admin password" json:"password"`
	}
}

// LoginResponse reports login outcome and sets the session cookie on
// success.
type LoginResponse struct {
	Status    int
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		OK    bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}
}

// LogoutRequest carries the session cookie, if any.
type LogoutRequest struct {
	Token http.Cookie `cookie:"auth"`
}

// LogoutResponse clears the session cookie. Logout always succeeds.
type LogoutResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		OK bool `json:"ok"`
	}
}
