// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package app_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/app"
	"github.com/taibuivan/querylab/internal/platform/config"
	"github.com/taibuivan/querylab/pkg/pagination"
)

/*
TestOpen_Memory starts the in-memory runtime with fixtures and reads a few reports back.
*/
func TestOpen_Memory(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{StoreDriver: config.DriverMemory, SeedFixtures: true}

	runtime, err := app.Open(ctx, cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(runtime.Close)

	assert.Nil(t, runtime.Pool)
	assert.Nil(t, runtime.Redis)
	assert.Nil(t, runtime.CheckDatabase())
	assert.Nil(t, runtime.CheckCache())

	report, err := runtime.Services.Cinema.TopDirector(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Top Director: Christopher Nolan, movies: 2.", report)

	report, err = runtime.Services.Catalog.PopularLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sofia: 3 listings\nPlovdiv: 1 listings", report)

	artifacts, meta, err := runtime.Services.Artifact.ListArtifacts(ctx, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, "Amulet", artifacts[0].Name)
}

/*
TestOpen_WithoutFixtures leaves the in-memory store empty.
*/
func TestOpen_WithoutFixtures(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{StoreDriver: config.DriverMemory}

	runtime, err := app.Open(ctx, cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(runtime.Close)

	report, err := runtime.Services.Cinema.TopDirector(ctx)
	require.NoError(t, err)
	assert.Empty(t, report)
}

/*
TestTokens covers the optional key configuration.
*/
func TestTokens(t *testing.T) {
	tokens, err := app.Tokens(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, tokens)

	_, err = app.Tokens(&config.Config{JWTPubKeyPath: "/nonexistent/public.pem"})
	assert.Error(t, err)
}
