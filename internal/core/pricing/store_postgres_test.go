// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package pricing_test

import (
	"testing"

	"github.com/taibuivan/querylab/internal/core/pricing"
	"github.com/taibuivan/querylab/internal/platform/testinfra"
)

/*
TestPostgresRepository_Quote runs the shared quote suite on PostgreSQL.
*/
func TestPostgresRepository_Quote(t *testing.T) {
	assertQuotes(t, newService(pricing.NewPostgresRepository(testinfra.NewPostgres(t))))
}
