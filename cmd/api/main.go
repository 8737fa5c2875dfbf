// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Querylab HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the runtime: entity store (PostgreSQL or memory), migrations, report cache, fixtures.
//  4. Load the token verifier.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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

	"github.com/taibuivan/querylab/internal/api"
	"github.com/taibuivan/querylab/internal/app"
	"github.com/taibuivan/querylab/internal/platform/config"
	"github.com/taibuivan/querylab/internal/platform/constants"
	"github.com/taibuivan/querylab/internal/platform/middleware"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
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
		slog.String("store_driver", cfg.StoreDriver),
	)

	// Root context for background workers (rate limiter cleanup).
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// ── 3. Runtime ────────────────────────────────────────────────────────
	// Bounded so misconfiguration is caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.StartupTimeout)
	runtime, err := app.Open(startupCtx, cfg, log)
	startupCancel()
	must(log, err, "open runtime")
	defer func() {
		log.Info("closing_connections")
		runtime.Close()
	}()

	// ── 4. Token Verifier ─────────────────────────────────────────────────
	tokens, err := app.Tokens(cfg)
	must(log, err, "initialize jwt service")

	var verifier middleware.TokenVerifier
	if tokens != nil {
		verifier = tokens
	} else {
		log.Warn("auth_disabled", slog.String("reason", "no JWT key configured; write endpoints answer 401"))
	}

	// ── 5. Handlers ───────────────────────────────────────────────────────
	services := runtime.Services
	handlers := api.NewHandlers(services.Cinema, services.Shop, services.Press, services.Catalog,
		services.Media, services.Pricing, services.Hero, services.Artifact)
	handlers.Liveness, handlers.Readiness = api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: runtime.CheckDatabase(),
		CheckCache:    runtime.CheckCache(),
	}, log)

	server := api.NewServer(rootCtx, cfg, log, verifier, handlers)

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("server_shutting_down", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		return
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
