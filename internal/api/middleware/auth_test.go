package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/api/session"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/domain"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/token"
)

func testCodec(t *testing.T) *token.Codec {
	t.Helper()
	c, err := token.NewCodec("secret", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	return c
}

func testSessions() *session.Manager {
	return session.NewManager("token", 15*time.Minute, time.Hour, false)
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	e := echo.New()
	codec := testCodec(t)

	signed, err := codec.Sign("u1", "alice@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signed})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(codec, testSessions())
	handler := mw(func(c echo.Context) error {
		called = true
		claims, ok := c.Get(ContextKeyClaims).(*token.Claims)
		if !ok {
			t.Fatalf("claims not set")
		}
		if claims.UserID() != "u1" || claims.Email != "alice@example.com" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		if c.Get("role") != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	e := echo.New()
	codec := testCodec(t)

	signed, err := codec.Sign("u1", "alice@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(codec, testSessions())
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_NoSession(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testCodec(t), testSessions())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testCodec(t), testSessions())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ForeignSignature(t *testing.T) {
	e := echo.New()
	other, err := token.NewCodec("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	signed, err := other.Sign("u1", "a@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signed})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testCodec(t), testSessions())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
