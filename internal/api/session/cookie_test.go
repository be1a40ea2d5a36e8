package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setCookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	res := http.Response{Header: rec.Header()}
	return res.Cookies()
}

func TestManager_Attach(t *testing.T) {
	m := NewManager("token", 15*time.Minute, time.Hour, false)
	c, rec := newTestContext(t)

	m.Attach(c, "abc123")

	cookies := setCookies(rec)
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	ck := cookies[0]
	if ck.Name != "token" || ck.Value != "abc123" {
		t.Fatalf("unexpected cookie: %s=%s", ck.Name, ck.Value)
	}
	if !ck.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if ck.SameSite != http.SameSiteStrictMode {
		t.Fatalf("cookie must be SameSite=Strict")
	}
	if ck.Secure {
		t.Fatalf("cookie must not be Secure outside production")
	}
	if ck.MaxAge != int(15*time.Minute/time.Second) {
		t.Fatalf("unexpected max-age: %d", ck.MaxAge)
	}
}

func TestManager_SecureInProduction(t *testing.T) {
	m := NewManager("token", 15*time.Minute, time.Hour, true)
	c, rec := newTestContext(t)

	m.Attach(c, "abc123")

	if ck := setCookies(rec)[0]; !ck.Secure {
		t.Fatalf("cookie must be Secure in production")
	}
}

func TestManager_TTLClampedToTokenTTL(t *testing.T) {
	m := NewManager("token", time.Hour, 10*time.Minute, false)
	if m.TTL() != 10*time.Minute {
		t.Fatalf("expected TTL clamped to 10m, got %v", m.TTL())
	}
}

func TestManager_Defaults(t *testing.T) {
	m := NewManager("", 0, time.Hour, false)
	if m.Name() != DefaultCookieName {
		t.Fatalf("expected default name, got %q", m.Name())
	}
	if m.TTL() != 15*time.Minute {
		t.Fatalf("expected 15m default TTL, got %v", m.TTL())
	}
}

func TestManager_Detach(t *testing.T) {
	m := NewManager("token", 15*time.Minute, time.Hour, false)
	c, rec := newTestContext(t)

	m.Detach(c)

	ck := setCookies(rec)[0]
	if ck.Value != "" {
		t.Fatalf("detach must clear the value")
	}
	if ck.MaxAge >= 0 {
		t.Fatalf("detach must expire the cookie, got max-age %d", ck.MaxAge)
	}
}

func TestManager_Read(t *testing.T) {
	m := NewManager("token", 15*time.Minute, time.Hour, false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "abc123"})
	c := e.NewContext(req, httptest.NewRecorder())

	raw, ok := m.Read(c)
	if !ok || raw != "abc123" {
		t.Fatalf("expected token, got %q ok=%v", raw, ok)
	}
}

func TestManager_Read_Absent(t *testing.T) {
	m := NewManager("token", 15*time.Minute, time.Hour, false)
	c, _ := newTestContext(t)

	if _, ok := m.Read(c); ok {
		t.Fatalf("missing cookie must read as absent, not error")
	}
}
