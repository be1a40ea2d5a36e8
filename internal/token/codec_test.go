package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/domain"
)

func TestNewCodec_EmptySecret(t *testing.T) {
	if _, err := NewCodec("", time.Hour); !errors.Is(err, domain.ErrTokenSigning) {
		t.Fatalf("expected ErrTokenSigning, got %v", err)
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c, err := NewCodec("secret", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	signed, err := c.Sign("u1", "alice@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := c.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID() != "u1" {
		t.Fatalf("unexpected subject: %q", claims.UserID())
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %q", claims.Email)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %q", claims.Role)
	}
}

func TestCodec_DefaultTTL(t *testing.T) {
	c, err := NewCodec("secret", 0)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	if c.TTL() != 24*time.Hour {
		t.Fatalf("expected 24h default TTL, got %v", c.TTL())
	}
}

func TestCodec_Expired(t *testing.T) {
	c, err := NewCodec("secret", -time.Minute)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	// Negative falls back to default; build an already-expired token by hand.
	now := time.Now().UTC()
	expired := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		Email: "a@example.com",
		Role:  domain.RoleUser,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := c.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	a, _ := NewCodec("secret-a", time.Hour)
	b, _ := NewCodec("secret-b", time.Hour)

	signed, err := a.Sign("u1", "a@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := b.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for rotated secret, got %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	c, _ := NewCodec("secret", time.Hour)
	if _, err := c.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_MissingExpiry(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		Email:            "a@example.com",
		Role:             domain.RoleUser,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	c, _ := NewCodec("secret", time.Hour)
	if _, err := c.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for token without exp, got %v", err)
	}
}
