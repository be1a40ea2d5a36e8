// Package session binds a signed token to an HTTP cookie. It only moves
// opaque bytes; parsing and trust decisions live in the token codec.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	// DefaultCookieName is the cookie the session token travels in.
	DefaultCookieName = "token"
	defaultTTL        = 15 * time.Minute
)

// Manager produces the Set-Cookie directives for attaching and clearing a
// session. Secure is enabled for production-like deployments.
type Manager struct {
	name   string
	ttl    time.Duration
	secure bool
}

// NewManager builds a Manager. The cookie TTL defaults to 15m and is clamped
// to the token TTL so a cookie never presents an already-expired token.
func NewManager(name string, ttl, tokenTTL time.Duration, secure bool) *Manager {
	if name == "" {
		name = DefaultCookieName
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if tokenTTL > 0 && ttl > tokenTTL {
		ttl = tokenTTL
	}
	return &Manager{name: name, ttl: ttl, secure: secure}
}

// Name returns the cookie name tokens are stored under.
func (m *Manager) Name() string {
	return m.name
}

// TTL returns the effective cookie lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Attach stores the token in an HttpOnly, SameSite=Strict cookie.
func (m *Manager) Attach(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     m.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Detach expires the session cookie immediately.
func (m *Manager) Detach(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Read extracts the raw token from the request cookie set. A missing cookie
// is the valid unauthenticated state, not an error.
func (m *Manager) Read(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(m.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
