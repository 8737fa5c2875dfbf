// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reportcache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/platform/reportcache"
)

// fakeStore is an in-process Store with a switch to simulate outages.
type fakeStore struct {
	mu       sync.Mutex
	values   map[string]string
	counters map[string]int64
	down     bool
	calls    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}, counters: map[string]int64{}}
}

var errDown = errors.New("connection refused")

func (s *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.down {
		return "", false, errDown
	}
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.down {
		return errDown
	}
	s.values[key] = value
	return nil
}

func (s *fakeStore) Incr(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.down {
		return 0, errDown
	}
	s.counters[key]++
	return s.counters[key], nil
}

func (s *fakeStore) Peek(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.down {
		return 0, errDown
	}
	return s.counters[key], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// counter returns a compute function and a pointer to how often it ran.
func counter(value string) (func(context.Context) (string, error), *int) {
	runs := 0
	return func(context.Context) (string, error) {
		runs++
		return value, nil
	}, &runs
}

/*
TestRemember_HitAfterMiss computes once, then serves from the store.
*/
func TestRemember_HitAfterMiss(t *testing.T) {
	ctx := context.Background()
	cache := reportcache.New(newFakeStore(), time.Minute, discardLogger())
	compute, runs := counter("Top Director: A, movies: 2.")

	for range 3 {
		value, err := cache.Remember(ctx, "cinema", "top-director", nil, compute)
		require.NoError(t, err)
		assert.Equal(t, "Top Director: A, movies: 2.", value)
	}

	assert.Equal(t, 1, *runs)
}

/*
TestRemember_ArgsAreKeyed keeps reports with different arguments apart.
*/
func TestRemember_ArgsAreKeyed(t *testing.T) {
	ctx := context.Background()
	cache := reportcache.New(newFakeStore(), time.Minute, discardLogger())

	first, _ := cache.Remember(ctx, "catalog", "games-by-genre", []string{"RPG"}, func(context.Context) (string, error) { return "rpg", nil })
	second, _ := cache.Remember(ctx, "catalog", "games-by-genre", []string{"Action"}, func(context.Context) (string, error) { return "action", nil })

	assert.Equal(t, "rpg", first)
	assert.Equal(t, "action", second)
}

/*
TestInvalidate makes the next read recompute.
*/
func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	cache := reportcache.New(newFakeStore(), time.Minute, discardLogger())
	compute, runs := counter("report")

	_, _ = cache.Remember(ctx, "press", "top-reviewer", nil, compute)
	cache.Invalidate(ctx, "press")
	_, _ = cache.Remember(ctx, "press", "top-reviewer", nil, compute)

	// A different domain's write does not touch press reports.
	cache.Invalidate(ctx, "shop")
	_, _ = cache.Remember(ctx, "press", "top-reviewer", nil, compute)

	assert.Equal(t, 2, *runs)
}

/*
TestRemember_ComputeErrorNotCached returns the error and retries next time.
*/
func TestRemember_ComputeErrorNotCached(t *testing.T) {
	ctx := context.Background()
	cache := reportcache.New(newFakeStore(), time.Minute, discardLogger())
	boom := errors.New("query failed")

	_, err := cache.Remember(ctx, "shop", "top-products", nil, func(context.Context) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)

	value, err := cache.Remember(ctx, "shop", "top-products", nil, func(context.Context) (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", value)
}

/*
TestRemember_StoreDownDegrades computes directly and trips the breaker.
*/
func TestRemember_StoreDownDegrades(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.down = true
	cache := reportcache.New(store, time.Minute, discardLogger(), reportcache.WithTripAfter(2), reportcache.WithBreakerTimeout(time.Hour))
	compute, runs := counter("fresh")

	for range 5 {
		value, err := cache.Remember(ctx, "hero", "list", nil, compute)
		require.NoError(t, err)
		assert.Equal(t, "fresh", value)
	}

	assert.Equal(t, 5, *runs)
	assert.Equal(t, "open", cache.State())
	assert.Equal(t, 2, store.calls, "an open breaker must stop calling the store")
}

/*
TestNilCache computes on every call.
*/
func TestNilCache(t *testing.T) {
	var cache *reportcache.Cache
	compute, runs := counter("x")

	_, _ = cache.Remember(context.Background(), "artifact", "list", nil, compute)
	_, _ = cache.Remember(context.Background(), "artifact", "list", nil, compute)
	cache.Invalidate(context.Background(), "artifact")

	assert.Equal(t, 2, *runs)
	assert.Equal(t, "disabled", cache.State())
}

/*
TestKey embeds the generation and arguments.
*/
func TestKey(t *testing.T) {
	assert.Equal(t, `report:cinema:3:search-directors:"nolan":""`, reportcache.Key("cinema", 3, "search-directors", "nolan", ""))
}

/*
TestKey_SeparatorInArgument keeps searches apart when an argument contains the key separator.
*/
func TestKey_SeparatorInArgument(t *testing.T) {
	x, y, xy, ytilde := "x", "y", "x:=y", "y:~"

	tests := []struct {
		name  string
		left  []string
		right []string
	}{
		{"optional_pair", []string{reportcache.OptionalArg(&xy), reportcache.OptionalArg(nil)}, []string{reportcache.OptionalArg(&x), reportcache.OptionalArg(&ytilde)}},
		{"split_value", []string{"a:b"}, []string{"a", "b"}},
		{"quote_in_value", []string{`a":"b`}, []string{"a", "b"}},
		{"plain_pair", []string{reportcache.OptionalArg(&x), reportcache.OptionalArg(&y)}, []string{reportcache.OptionalArg(&xy)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t,
				reportcache.Key("cinema", 0, "search-directors", tt.left...),
				reportcache.Key("cinema", 0, "search-directors", tt.right...))
		})
	}
}

/*
TestRemember_SeparatorInArgument computes both searches instead of serving the first result twice.
*/
func TestRemember_SeparatorInArgument(t *testing.T) {
	ctx := context.Background()
	cache := reportcache.New(newFakeStore(), time.Minute, discardLogger())
	x, xy, ytilde := "x", "x:=y", "y:~"

	first, err := cache.Remember(ctx, "cinema", "search-directors",
		[]string{reportcache.OptionalArg(&xy), reportcache.OptionalArg(nil)},
		func(context.Context) (string, error) { return "Director: First", nil })
	require.NoError(t, err)

	second, err := cache.Remember(ctx, "cinema", "search-directors",
		[]string{reportcache.OptionalArg(&x), reportcache.OptionalArg(&ytilde)},
		func(context.Context) (string, error) { return "Director: Second", nil })
	require.NoError(t, err)

	assert.Equal(t, "Director: First", first)
	assert.Equal(t, "Director: Second", second)
}

/*
TestOptionalArg keeps "not supplied" and "supplied empty" apart.
*/
func TestOptionalArg(t *testing.T) {
	empty := ""
	assert.NotEqual(t, reportcache.OptionalArg(nil), reportcache.OptionalArg(&empty))
}
