// Acquisitions API entry point: loads configuration, connects the backing
// stores, and serves the HTTP API until interrupted.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/api"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/service"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/infrastructure/config"
	mongodb "github.com/VictorManoelCostaDeBarros/acquisitions/internal/infrastructure/db/mongo"
	redisdb "github.com/VictorManoelCostaDeBarros/acquisitions/internal/infrastructure/db/redis"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/infrastructure/queue"
	"github.com/VictorManoelCostaDeBarros/acquisitions/pkg/logger"

	_ "github.com/VictorManoelCostaDeBarros/acquisitions/docs"
)

const shutdownTimeout = 10 * time.Second

// @title        Acquisitions API
// @version      1.0
// @description  Identity and user management API with cookie-based sessions.
//
// @securityDefinitions.apikey  CookieAuth
// @in                          cookie
// @name                        token
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Backing stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Audit trail, off the request path ---
	auditService := service.NewAuditService(mongodb.NewAuditRepository(db), log)
	dispatcher := queue.NewDispatcher(cfg.Auth.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e, err := api.NewRouter(db, rdb, cfg, log, dispatcher)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("acquisitions api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
