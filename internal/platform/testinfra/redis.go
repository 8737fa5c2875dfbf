// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package testinfra

import (
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	redisImage = "redis:7-alpine"
	redisPort  = "6379/tcp"
)

// NewRedis starts Redis and returns a client connected to it.
func NewRedis(t *testing.T) *goredis.Client {
	t.Helper()

	container := start(t, testcontainers.ContainerRequest{
		Image:        redisImage,
		ExposedPorts: []string{redisPort},
		WaitingFor: wait.ForAll(
			wait.ForLog("Ready to accept connections"),
			wait.ForListeningPort(redisPort),
		).WithStartupTimeout(startupTimeout),
	})

	client := goredis.NewClient(&goredis.Options{Addr: endpoint(t, container)})
	t.Cleanup(func() { _ = client.Close() })

	return client
}
