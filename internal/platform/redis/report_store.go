// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportStore implements the report cache's backing store on a Redis client.
type ReportStore struct {
	client redis.Cmdable
}

// NewReportStore wraps a client (or a cluster/ring client) as a report store.
func NewReportStore(client redis.Cmdable) *ReportStore {
	return &ReportStore{client: client}
}

// Get returns the cached value and whether it was present.
func (s *ReportStore) Get(context stdctx.Context, key string) (string, bool, error) {
	value, err := s.client.Get(context, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key for ttl. A zero ttl keeps the key without expiry.
func (s *ReportStore) Set(context stdctx.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(context, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Incr atomically increments an integer counter, creating it at 1.
func (s *ReportStore) Incr(context stdctx.Context, key string) (int64, error) {
	value, err := s.client.Incr(context, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis: incr %s: %w", key, err)
	}
	return value, nil
}

// Peek reads an integer counter, treating a missing key as zero.
func (s *ReportStore) Peek(context stdctx.Context, key string) (int64, error) {
	value, err := s.client.Get(context, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return value, nil
}
