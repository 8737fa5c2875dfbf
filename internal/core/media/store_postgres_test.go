// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package media_test

import (
	"testing"

	"github.com/taibuivan/querylab/internal/core/media"
	"github.com/taibuivan/querylab/internal/platform/testinfra"
)

/*
TestPostgresRepository_Collections runs the shared media suite on PostgreSQL.
*/
func TestPostgresRepository_Collections(t *testing.T) {
	assertCollections(t, newService(media.NewPostgresRepository(testinfra.NewPostgres(t))))
}
