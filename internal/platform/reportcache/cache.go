// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reportcache memoizes formatted report strings per exercise domain.

Keys embed a per-domain generation number:

	report:<domain>:<generation>:<report>[:"<arg>"...]

Arguments are Go-quoted, so a separator inside an argument never merges two searches.
A write in a domain bumps its generation, so every report cached for the old
generation becomes unreachable and simply expires. Nothing is ever scanned or deleted.

Failures of the backing store never fail a report: the cache degrades to computing
directly, and a circuit breaker stops calling the store after repeated failures.
*/
package reportcache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/taibuivan/querylab/internal/platform/constants"
	"github.com/taibuivan/querylab/internal/platform/metrics"
)

// Store is the backing key-value store (Redis in production).
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	Peek(ctx context.Context, key string) (int64, error)
}

// Cache is a report cache. A nil *Cache is valid and always computes.
type Cache struct {
	store   Store
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker[string]
	logger  *slog.Logger
}

// Option customises a [Cache].
type Option func(*gobreaker.Settings)

// WithBreakerTimeout sets how long the breaker stays open before probing the store again.
func WithBreakerTimeout(timeout time.Duration) Option {
	return func(settings *gobreaker.Settings) { settings.Timeout = timeout }
}

// WithTripAfter sets the number of consecutive failures that opens the breaker.
func WithTripAfter(failures uint32) Option {
	return func(settings *gobreaker.Settings) {
		settings.ReadyToTrip = func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		}
	}
}

// New creates a cache writing entries with the given TTL.
func New(store Store, ttl time.Duration, logger *slog.Logger, opts ...Option) *Cache {
	settings := gobreaker.Settings{
		Name:        constants.ReportCacheName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errMiss)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit_breaker_state_changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}
	for _, opt := range opts {
		opt(&settings)
	}

	metrics.CircuitBreakerState.WithLabelValues(settings.Name).Set(0)

	return &Cache{
		store:   store,
		ttl:     ttl,
		breaker: gobreaker.NewCircuitBreaker[string](settings),
		logger:  logger,
	}
}

// Remember returns the cached report or computes, stores and returns it.
//
// Compute errors are returned unchanged and never cached.
func (c *Cache) Remember(ctx context.Context, domain, report string, args []string, compute func(context.Context) (string, error)) (string, error) {
	if c == nil {
		return timed(ctx, domain, report, compute)
	}

	generation, err := c.generation(ctx, domain)
	if err != nil {
		c.degrade(ctx, domain, "generation", err)
		return timed(ctx, domain, report, compute)
	}

	key := Key(domain, generation, report, args...)

	value, err := c.breaker.Execute(func() (string, error) {
		cached, found, err := c.store.Get(ctx, key)
		if err != nil {
			return "", err
		}
		if !found {
			return "", errMiss
		}
		return cached, nil
	})
	switch {
	case err == nil:
		metrics.RecordCacheResult(domain, "hit")
		return value, nil
	case errors.Is(err, errMiss):
		metrics.RecordCacheResult(domain, "miss")
	default:
		c.degrade(ctx, domain, "get", err)
	}

	value, err = timed(ctx, domain, report, compute)
	if err != nil {
		return "", err
	}

	if _, setErr := c.breaker.Execute(func() (string, error) {
		return "", c.store.Set(ctx, key, value, c.ttl)
	}); setErr != nil {
		c.degrade(ctx, domain, "set", setErr)
	}

	return value, nil
}

// Invalidate bumps the domain generation so previously cached reports are no longer read.
func (c *Cache) Invalidate(ctx context.Context, domain string) {
	if c == nil {
		return
	}

	_, err := c.breaker.Execute(func() (string, error) {
		_, err := c.store.Incr(ctx, constants.RedisPrefixGen+domain)
		return "", err
	})
	if err != nil {
		c.degrade(ctx, domain, "invalidate", err)
		return
	}
	metrics.ReportInvalidations.WithLabelValues(domain).Inc()
}

// State returns the breaker state, for readiness reporting.
func (c *Cache) State() string {
	if c == nil {
		return "disabled"
	}
	return c.breaker.State().String()
}

// Key builds the cache key for a report of a domain generation. Each argument is quoted.
func Key(domain string, generation int64, report string, args ...string) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%s%s:%d:%s", constants.RedisPrefixRpt, domain, generation, report)
	for _, arg := range args {
		builder.WriteByte(':')
		builder.WriteString(strconv.Quote(arg))
	}
	return builder.String()
}

// errMiss marks a cache miss inside the breaker; IsSuccessful counts it as a success.
var errMiss = errors.New("reportcache: miss")

func (c *Cache) generation(ctx context.Context, domain string) (int64, error) {
	value, err := c.breaker.Execute(func() (string, error) {
		generation, err := c.store.Peek(ctx, constants.RedisPrefixGen+domain)
		return strconv.FormatInt(generation, 10), err
	})
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

func (c *Cache) degrade(ctx context.Context, domain, op string, err error) {
	metrics.RecordCacheResult(domain, "error")
	c.logger.WarnContext(ctx, "report_cache_degraded",
		slog.String("domain", domain),
		slog.String("op", op),
		slog.Any("error", err),
	)
}

func timed(ctx context.Context, domain, report string, compute func(context.Context) (string, error)) (string, error) {
	startTime := time.Now()
	value, err := compute(ctx)
	metrics.RecordReport(domain, report, time.Since(startTime))
	return value, err
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// OptionalArg encodes an optional search argument so nil and "" produce different keys.
func OptionalArg(value *string) string {
	if value == nil {
		return "~"
	}
	return "=" + *value
}
