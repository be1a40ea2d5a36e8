package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/api/middleware"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/domain"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/token"
)

// ctxSubject extracts the verified claims injected by the Auth middleware
// and converts them to the policy actor. Absence means the middleware never
// ran for this route; reject before any service call.
func ctxSubject(c echo.Context) (domain.Subject, error) {
	claims, ok := c.Get(middleware.ContextKeyClaims).(*token.Claims)
	if !ok || claims.UserID() == "" {
		return domain.Subject{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims.AsSubject(), nil
}
