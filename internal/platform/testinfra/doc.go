// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package testinfra starts disposable PostgreSQL and Redis containers for integration tests.
//
// Everything except this file is behind the "integration" build tag:
//
//	go test -tags integration ./...
//
// Tests are skipped when no Docker daemon is reachable. Each PostgreSQL container has every
// migration under data/migrations applied before the pool is handed out.
package testinfra
