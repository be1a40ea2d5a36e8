package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/api/session"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/token"
)

// ContextKeyClaims is where verified claims are stored on the echo context.
const ContextKeyClaims = "claims"

// Auth verifies the session token and injects the claims into the context.
// The token is read from the session cookie, with an Authorization bearer
// header as fallback for non-browser clients. The embedded role is trusted
// until the token expires; live role changes are not re-checked.
func Auth(codec *token.Codec, sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := sessions.Read(c)
			if !ok {
				raw, ok = bearerToken(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextKeyClaims, claims)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
