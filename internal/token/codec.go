// Package token signs and verifies the compact identity tokens that back
// sessions. Tokens are HS256 JWTs carrying the minimal subject (id, email,
// role); nothing in a token is trusted without signature and expiry checks.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Claims is the identity claim embedded in a session token. Immutable once
// issued: changing any field requires minting a new token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserID returns the subject the token was issued for.
func (c *Claims) UserID() string {
	return c.Subject
}

// Subject converts the claims into the policy actor representation.
func (c *Claims) AsSubject() domain.Subject {
	return domain.Subject{ID: c.Subject, Email: c.Email, Role: c.Role}
}

// Codec signs and verifies tokens with a single process-wide secret.
// Rotating the secret invalidates every previously issued token.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a Codec. A non-positive ttl falls back to 24h.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: empty signing secret", domain.ErrTokenSigning)
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Sign mints a token for the given identity, expiring TTL from now.
// It fails only on an internal signing fault, never on well-formed input.
func (c *Codec) Sign(userID, email, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Email: email,
		Role:  role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTokenSigning, err)
	}
	return signed, nil
}

// Verify parses and validates a raw token, returning the embedded claims.
// Any failure (bad signature, malformed structure, wrong algorithm, expiry)
// surfaces as domain.ErrInvalidToken.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	return claims, nil
}
