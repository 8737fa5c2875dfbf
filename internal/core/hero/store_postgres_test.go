// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package hero_test

import (
	"testing"

	"github.com/taibuivan/querylab/internal/core/hero"
	"github.com/taibuivan/querylab/internal/platform/testinfra"
)

/*
TestPostgresRepository_Energy runs the shared energy suite on PostgreSQL.
*/
func TestPostgresRepository_Energy(t *testing.T) {
	assertEnergy(t, newService(hero.NewPostgresRepository(testinfra.NewPostgres(t))))
}
