package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/api/handler"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/api/middleware"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/api/session"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/domain"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/ports"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/service"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/infrastructure/config"
	mongodb "github.com/VictorManoelCostaDeBarros/acquisitions/internal/infrastructure/db/mongo"
	redisdb "github.com/VictorManoelCostaDeBarros/acquisitions/internal/infrastructure/db/redis"
	httphandlers "github.com/VictorManoelCostaDeBarros/acquisitions/internal/infrastructure/http/handlers"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit ports.AuthEventSink) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("acquisitions"))

	// --- Dependencies ---
	codec, err := token.NewCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}
	sessions := session.NewManager(cfg.Auth.CookieName, cfg.Auth.CookieTTL, codec.TTL(), cfg.IsProduction())

	userRepo := mongodb.NewUserRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Auth.LoginAttemptLimit, cfg.Auth.LoginAttemptWindow)
	authService := service.NewAuthService(userRepo, codec, limiter, cfg.Auth.BcryptCost, log)
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost, log)

	authHandler := handler.NewAuthHandler(authService, sessions, audit)
	userHandler := handler.NewUserHandler(userService)
	authRequired := middleware.Auth(codec, sessions)

	// --- Auth routes ---
	auth := e.Group("/api/v1/auth")
	auth.POST("/sign-up", authHandler.SignUp)
	auth.POST("/sign-in", authHandler.SignIn)
	auth.POST("/sign-out", authHandler.SignOut)

	// --- User routes ---
	users := e.Group("/api/v1/users", authRequired)
	users.GET("", userHandler.List, middleware.RequireRole(domain.RoleAdmin))
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.GET("/api", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Acquisitions API is running!"})
	})

	return e, nil
}
