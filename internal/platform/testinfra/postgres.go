// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package testinfra

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taibuivan/querylab/internal/platform/migration"
	"github.com/taibuivan/querylab/internal/platform/postgres"
)

const (
	postgresImage = "postgres:16-alpine"
	postgresPort  = "5432/tcp"
)

// NewPostgres starts PostgreSQL, applies every migration and returns a connected pool.
func NewPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	container := start(t, testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{postgresPort},
		Env: map[string]string{
			"POSTGRES_USER":     "querylab",
			"POSTGRES_PASSWORD": "querylab",
			"POSTGRES_DB":       "querylab",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(postgresPort),
		).WithStartupTimeout(startupTimeout),
	})

	dsn := "postgres://querylab:querylab@" + endpoint(t, container) + "/querylab?sslmode=disable"
	logger := slog.New(slog.DiscardHandler)

	if err := migration.RunUp(dsn, MigrationsPath(), logger); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	pool, err := postgres.NewPool(context.Background(), dsn, logger)
	if err != nil {
		t.Fatalf("connect pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// MigrationsPath is the absolute path of data/migrations in this checkout.
func MigrationsPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "data", "migrations")
}
