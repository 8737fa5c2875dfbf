// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package press_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/querylab/internal/core/press"
	"github.com/taibuivan/querylab/internal/platform/apperr"
	"github.com/taibuivan/querylab/internal/platform/testinfra"
)

/*
TestPostgresRepository_Reports runs the shared report suite on PostgreSQL.
*/
func TestPostgresRepository_Reports(t *testing.T) {
	service := newService(press.NewPostgresRepository(testinfra.NewPostgres(t)))
	seedPress(t, service)
	assertReports(t, service)
	assertBan(t, service)

	ctx := context.Background()
	duplicate := &press.Author{FullName: "Alice Again", Email: "alice@example.com", BirthYear: 1985}
	assert.True(t, apperr.HasCode(service.CreateAuthor(ctx, duplicate), "CONFLICT"))

	review := &press.Review{Content: "Orphan review content.", Rating: 3, AuthorID: 999, ArticleID: 999}
	assert.True(t, apperr.HasCode(service.CreateReview(ctx, review), "VALIDATION_ERROR"))
}
