package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/api/metrics"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/api/session"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/domain"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/ports"
)

// AuthHandler orchestrates the sign-up, sign-in, and sign-out flows:
// validated input through the auth service, minted token onto the session
// cookie, outcome mapped to a response.
type AuthHandler struct {
	authService ports.AuthService
	sessions    *session.Manager
	audit       ports.AuthEventSink
}

func NewAuthHandler(authService ports.AuthService, sessions *session.Manager, audit ports.AuthEventSink) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, audit: audit}
}

// SignUp registers a new user and opens a session.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/auth/sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	signed, user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusConflict, errorResponse{Error: "email already exists"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return err
	}

	h.sessions.Attach(c, signed)
	metrics.SignupsTotal.WithLabelValues("created").Inc()
	metrics.TokensIssuedTotal.Inc()
	h.record(c, "sign_up", user.ID, user.Email)

	return c.JSON(http.StatusCreated, authResponse{Message: "User registered", User: toUserResponse(user)})
}

// SignIn authenticates a user and opens a session.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/v1/auth/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	start := time.Now()
	signed, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	metrics.SigninDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		h.record(c, "sign_in_failed", "", domain.NormalizeEmail(req.Email))
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.SigninsTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		case errors.Is(err, domain.ErrInvalidPassword):
			metrics.SigninsTotal.WithLabelValues("invalid_password").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.SigninsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "too many sign-in attempts, try again later"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		metrics.SigninsTotal.WithLabelValues("error").Inc()
		return err
	}

	h.sessions.Attach(c, signed)
	metrics.SigninsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	h.record(c, "sign_in", user.ID, user.Email)

	return c.JSON(http.StatusOK, authResponse{Message: "User logged in", User: toUserResponse(user)})
}

// SignOut clears the session cookie. Always succeeds, with or without a
// prior session.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/v1/auth/sign-out [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	h.sessions.Detach(c)
	h.record(c, "sign_out", "", "")
	return c.JSON(http.StatusOK, messageResponse{Message: "User logged out"})
}

// record enqueues an auth event for the audit trail. Fire-and-forget: a nil
// sink (tests, degraded startup) just drops the event.
func (h *AuthHandler) record(c echo.Context, action, userID, email string) {
	if h.audit == nil {
		return
	}
	metrics.AuditEventsTotal.WithLabelValues(action).Inc()
	h.audit.Enqueue(ports.AuthEvent{
		Action:    action,
		UserID:    userID,
		Email:     email,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		At:        time.Now().UTC(),
	})
}
