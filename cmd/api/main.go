// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Blog API HTTP server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Run database migrations (idempotent).
//  4. Connect to PostgreSQL (pgxpool) and, when configured, Redis.
//  5. Build the token issuer, the revocation blacklist and the rate limiter.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/ianbriton/blogapi/internal/api"
	"github.com/ianbriton/blogapi/internal/blog"
	"github.com/ianbriton/blogapi/internal/platform/config"
	"github.com/ianbriton/blogapi/internal/platform/constants"
	"github.com/ianbriton/blogapi/internal/platform/middleware"
	"github.com/ianbriton/blogapi/internal/platform/migration"
	pgstore "github.com/ianbriton/blogapi/internal/platform/postgres"
	redisstore "github.com/ianbriton/blogapi/internal/platform/redis"
	"github.com/ianbriton/blogapi/internal/platform/revocation"
	"github.com/ianbriton/blogapi/internal/platform/sec"
	"github.com/ianbriton/blogapi/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
	)

	// Background workers stop with this context.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	startupCtx, startupCancel := context.WithTimeout(ctx, constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 4. PostgreSQL & Redis ─────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	var rdb *redis.Client
	if cfg.CacheEnabled() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()
	}

	// ── 5. Security ───────────────────────────────────────────────────────
	issuer, err := sec.NewTokenIssuer(cfg.JWTSecret, cfg.JWTValidIssuer, cfg.JWTValidAudience, cfg.JWTTTL)
	must(log, err, "initialize token issuer")

	blacklist := revocation.NewBlacklist(log)
	go blacklist.Run(ctx, cfg.BlacklistSweepInterval)

	limiter := middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	go limiter.Run(ctx)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	health := api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	}

	var posts blog.Repository = blog.NewPostgresRepository(pool)
	if rdb != nil {
		posts = blog.NewCachedRepository(posts, rdb, constants.BlogCacheTTL)
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	liveness, readiness := api.NewHealthHandlers(health)

	authService := auth.NewService(auth.NewUserRepository(pool), issuer, blacklist, cfg.BootstrapOwner)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(cfg, log, api.Security{
		Verifier:    issuer,
		Revocations: blacklist,
		Limiter:     limiter,
	}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Blog:      blog.NewHandler(blog.NewService(posts)),
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case <-ctx.Done():
		log.Info("shutdown_signal_received")
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly", slog.Int("revoked_tokens_forgotten", blacklist.Len()))
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// Only used during startup wiring.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
