// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
exercise handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/querylab/internal/core/artifact"
	"github.com/taibuivan/querylab/internal/core/catalog"
	"github.com/taibuivan/querylab/internal/core/cinema"
	"github.com/taibuivan/querylab/internal/core/hero"
	"github.com/taibuivan/querylab/internal/core/media"
	"github.com/taibuivan/querylab/internal/core/press"
	"github.com/taibuivan/querylab/internal/core/pricing"
	"github.com/taibuivan/querylab/internal/core/shop"
	"github.com/taibuivan/querylab/internal/platform/config"
	"github.com/taibuivan/querylab/internal/platform/constants"
	"github.com/taibuivan/querylab/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all exercise HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It answers 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It answers 200 when the store and cache respond.
	Readiness http.HandlerFunc

	Cinema    *cinema.Handler
	Shop      *shop.Handler
	Press     *press.Handler
	Catalog   *catalog.Handler
	Media     *media.Handler
	Customers *media.CustomerHandler
	Pricing   *pricing.Handler
	Heroes    *hero.Handler
	Artifacts *artifact.Handler
}

// NewHandlers builds the exercise handlers over the given services.
func NewHandlers(
	cinemaService *cinema.Service,
	shopService *shop.Service,
	pressService *press.Service,
	catalogService *catalog.Service,
	mediaService *media.Service,
	pricingService *pricing.Service,
	heroService *hero.Service,
	artifactService *artifact.Service,
) Handlers {
	return Handlers{
		Cinema:    cinema.NewHandler(cinemaService),
		Shop:      shop.NewHandler(shopService),
		Press:     press.NewHandler(pressService),
		Catalog:   catalog.NewHandler(catalogService),
		Media:     media.NewHandler(mediaService),
		Customers: media.NewCustomerHandler(mediaService),
		Pricing:   pricing.NewHandler(pricingService),
		Heroes:    hero.NewHandler(heroService),
		Artifacts: artifact.NewHandler(artifactService),
	}
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. A nil verifier leaves every request anonymous.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := NewRouter(ctx, cfg, log, verifier, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the routing tree on its own, for tests and for NewServer.
func NewRouter(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.Metrics())
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated probes and the Prometheus scrape target.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// # Application API
	// One route group per exercise under the versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/cinema", h.Cinema.RegisterRoutes)
		api.Route("/shop", h.Shop.RegisterRoutes)
		api.Route("/press", h.Press.RegisterRoutes)
		api.Route("/catalog", h.Catalog.RegisterRoutes)
		api.Route("/media", h.Media.RegisterRoutes)
		api.Route("/customers", h.Customers.RegisterRoutes)
		api.Route("/pricing", h.Pricing.RegisterRoutes)
		api.Route("/heroes", h.Heroes.RegisterRoutes)
		api.Route("/artifacts", h.Artifacts.RegisterRoutes)
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
