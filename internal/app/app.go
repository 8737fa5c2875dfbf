// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package app builds the exercise services for both binaries.

Architecture:

  - [Repositories] groups one repository per exercise. [MemoryRepositories] and
    [PostgresRepositories] are the two implementations selected by STORE_DRIVER.
  - [NewServices] wires the repositories with the optional report cache.
  - [Open] performs the whole startup sequence (store, migrations, cache, fixtures) and returns
    a [Runtime] that owns every connection it opened.
*/
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/querylab/internal/core/artifact"
	"github.com/taibuivan/querylab/internal/core/catalog"
	"github.com/taibuivan/querylab/internal/core/cinema"
	"github.com/taibuivan/querylab/internal/core/hero"
	"github.com/taibuivan/querylab/internal/core/media"
	"github.com/taibuivan/querylab/internal/core/press"
	"github.com/taibuivan/querylab/internal/core/pricing"
	"github.com/taibuivan/querylab/internal/core/shop"
	"github.com/taibuivan/querylab/internal/fixtures"
	"github.com/taibuivan/querylab/internal/platform/config"
	"github.com/taibuivan/querylab/internal/platform/migration"
	pgstore "github.com/taibuivan/querylab/internal/platform/postgres"
	redisstore "github.com/taibuivan/querylab/internal/platform/redis"
	"github.com/taibuivan/querylab/internal/platform/reportcache"
)

// # Wiring

// Repositories holds one repository per exercise.
type Repositories struct {
	Cinema   cinema.Repository
	Shop     shop.Repository
	Press    press.Repository
	Catalog  catalog.Repository
	Media    media.Repository
	Pricing  pricing.Repository
	Hero     hero.Repository
	Artifact artifact.Repository
}

// MemoryRepositories returns empty in-process repositories.
func MemoryRepositories() Repositories {
	return Repositories{
		Cinema:   cinema.NewMemoryRepository(),
		Shop:     shop.NewMemoryRepository(),
		Press:    press.NewMemoryRepository(),
		Catalog:  catalog.NewMemoryRepository(),
		Media:    media.NewMemoryRepository(),
		Pricing:  pricing.NewMemoryRepository(),
		Hero:     hero.NewMemoryRepository(),
		Artifact: artifact.NewMemoryRepository(),
	}
}

// PostgresRepositories returns repositories sharing one connection pool.
func PostgresRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Cinema:   cinema.NewPostgresRepository(pool),
		Shop:     shop.NewPostgresRepository(pool),
		Press:    press.NewPostgresRepository(pool),
		Catalog:  catalog.NewPostgresRepository(pool),
		Media:    media.NewPostgresRepository(pool),
		Pricing:  pricing.NewPostgresRepository(pool),
		Hero:     hero.NewPostgresRepository(pool),
		Artifact: artifact.NewPostgresRepository(pool),
	}
}

// Services holds one service per exercise.
type Services struct {
	Cinema   *cinema.Service
	Shop     *shop.Service
	Press    *press.Service
	Catalog  *catalog.Service
	Media    *media.Service
	Pricing  *pricing.Service
	Hero     *hero.Service
	Artifact *artifact.Service
}

// NewServices wires every service. A nil cache computes every report directly.
func NewServices(repositories Repositories, cache *reportcache.Cache, logger *slog.Logger) *Services {
	return &Services{
		Cinema:   cinema.NewService(repositories.Cinema, cache, logger),
		Shop:     shop.NewService(repositories.Shop, cache, logger),
		Press:    press.NewService(repositories.Press, cache, logger),
		Catalog:  catalog.NewService(repositories.Catalog, cache, logger),
		Media:    media.NewService(repositories.Media, logger),
		Pricing:  pricing.NewService(repositories.Pricing, cache, logger),
		Hero:     hero.NewService(repositories.Hero, logger),
		Artifact: artifact.NewService(repositories.Artifact, logger),
	}
}

// Seed loads the demo data set, one exercise after the other.
func (services *Services) Seed(ctx context.Context) error {
	steps := []func(context.Context) error{
		func(ctx context.Context) error { return fixtures.Cinema(ctx, services.Cinema) },
		func(ctx context.Context) error { return fixtures.Shop(ctx, services.Shop) },
		func(ctx context.Context) error { return fixtures.Press(ctx, services.Press) },
		func(ctx context.Context) error { return fixtures.Catalog(ctx, services.Catalog) },
		func(ctx context.Context) error { return fixtures.Media(ctx, services.Media) },
		func(ctx context.Context) error { return fixtures.Pricing(ctx, services.Pricing) },
		func(ctx context.Context) error { return fixtures.Heroes(ctx, services.Hero) },
		func(ctx context.Context) error { return fixtures.Artifacts(ctx, services.Artifact) },
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// # Runtime

// Runtime is a started application: its services and the connections behind them.
type Runtime struct {
	Services *Services

	// Pool is nil on the in-memory driver.
	Pool *pgxpool.Pool

	// Redis is nil when REDIS_URL is empty.
	Redis *goredis.Client

	logger *slog.Logger
}

// Open connects the configured store and cache, applies migrations and seeds fixtures.
//
// # Startup Sequence
//
//  1. PostgreSQL pool and migrations (postgres driver only).
//  2. Redis client and report cache (REDIS_URL only).
//  3. Services.
//  4. Fixtures (memory driver with SEED_FIXTURES only).
//
// On error every connection opened so far is closed.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (runtime *Runtime, err error) {
	runtime = &Runtime{logger: logger}
	defer func() {
		if err != nil {
			runtime.Close()
			runtime = nil
		}
	}()

	// ── 1. Store ──────────────────────────────────────────────────────────
	repositories := MemoryRepositories()
	if cfg.UsesPostgres() {
		if runtime.Pool, err = pgstore.NewPool(ctx, cfg.DatabaseURL, logger); err != nil {
			return runtime, err
		}
		if cfg.RunMigrations {
			if err = migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger); err != nil {
				return runtime, err
			}
		}
		repositories = PostgresRepositories(runtime.Pool)
	}

	// ── 2. Report Cache ───────────────────────────────────────────────────
	var cache *reportcache.Cache
	if cfg.RedisURL != "" {
		if runtime.Redis, err = redisstore.NewClient(ctx, cfg.RedisURL, logger); err != nil {
			return runtime, err
		}
		cache = reportcache.New(redisstore.NewReportStore(runtime.Redis), cfg.ReportCacheTTL, logger)
	}

	// ── 3. Services ───────────────────────────────────────────────────────
	runtime.Services = NewServices(repositories, cache, logger)

	logger.Info("store_ready",
		slog.String("driver", cfg.StoreDriver),
		slog.Bool("report_cache", cache != nil),
	)

	// ── 4. Fixtures ───────────────────────────────────────────────────────
	if !cfg.UsesPostgres() && cfg.SeedFixtures {
		if err = runtime.Services.Seed(ctx); err != nil {
			return runtime, fmt.Errorf("app: seed fixtures: %w", err)
		}
		logger.Info("fixtures_seeded")
	}

	return runtime, nil
}

// CheckDatabase pings PostgreSQL. It is nil on the in-memory driver.
func (runtime *Runtime) CheckDatabase() func() error {
	if runtime.Pool == nil {
		return nil
	}
	return func() error { return pgstore.Ping(context.Background(), runtime.Pool) }
}

// CheckCache pings Redis. It is nil when the report cache is disabled.
func (runtime *Runtime) CheckCache() func() error {
	if runtime.Redis == nil {
		return nil
	}
	return func() error { return redisstore.Ping(context.Background(), runtime.Redis) }
}

// Close releases every connection the runtime opened.
func (runtime *Runtime) Close() {
	if runtime.Redis != nil {
		if err := runtime.Redis.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			runtime.logger.Error("redis_close_failed", slog.Any("error", err))
		}
		runtime.Redis = nil
	}
	if runtime.Pool != nil {
		runtime.Pool.Close()
		runtime.Pool = nil
	}
}
