package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/fkl-dashboard/internal/platform/id"
	"github.com/riskibarqy/fkl-dashboard/internal/usecase"
)

const (
	sessionHeader            = "X-Session-ID"
	defaultSessionCookieName = "fkl_session"
)

type SessionConfig struct {
	CookieName string
	Secure     bool
	// TTL sets the cookie Max-Age; zero issues a browser-session cookie.
	TTL time.Duration
	IDs id.Generator
}

func (c SessionConfig) normalize() SessionConfig {
	if c.CookieName == "" {
		c.CookieName = defaultSessionCookieName
	}
	if c.IDs == nil {
		c.IDs = id.NewRandomGenerator()
	}
	return c
}

func (c SessionConfig) cookie(sessionID string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     c.CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if c.TTL > 0 {
		cookie.MaxAge = int(c.TTL / time.Second)
	}
	return cookie
}

// WithSession puts the caller's session ID into the request context. A valid X-Session-ID header
// wins over the cookie; when neither is valid a new ID is issued as a cookie.
func WithSession(cfg SessionConfig, next http.Handler) http.Handler {
	cfg = cfg.normalize()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.WithSession")
		defer span.End()

		sessionID, ok := requestSessionID(r, cfg.CookieName)
		if !ok {
			issued, err := cfg.IDs.NewID()
			if err != nil {
				writeError(ctx, w, fmt.Errorf("%w: issue session: %w", usecase.ErrDependencyUnavailable, err))
				return
			}
			sessionID = issued
			http.SetCookie(w, cfg.cookie(sessionID))
		}
		w.Header().Set(sessionHeader, sessionID)

		next.ServeHTTP(w, r.WithContext(withSessionID(ctx, sessionID)))
	})
}

func requestSessionID(r *http.Request, cookieName string) (string, bool) {
	if v := r.Header.Get(sessionHeader); id.Valid(v) {
		return v, true
	}
	if cookie, err := r.Cookie(cookieName); err == nil && id.Valid(cookie.Value) {
		return cookie.Value, true
	}
	return "", false
}
