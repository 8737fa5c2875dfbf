// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package press_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/press"
	"github.com/taibuivan/querylab/internal/platform/apperr"
	"github.com/taibuivan/querylab/pkg/pointer"
)

/*
TestService_Reports runs every report against the in-memory store.
*/
func TestService_Reports(t *testing.T) {
	service := newService(press.NewMemoryRepository())
	seedPress(t, service)
	assertReports(t, service)
	assertBan(t, service)
}

/*
TestService_SearchAuthors covers the filter combinations.
*/
func TestService_SearchAuthors(t *testing.T) {
	service := newService(press.NewMemoryRepository())
	seedPress(t, service)

	tests := []struct {
		name  string
		query *string
		email *string
		want  string
	}{
		{"neither_supplied", nil, nil, ""},
		{"name_only", pointer.To("SMITH"), nil, "Author: Bob Smith, email: bob@example.com, status: Not Banned"},
		{"email_only", nil, pointer.To("news"), "Author: Dan Brown, email: dan@news.com, status: Not Banned"},
		{"both_must_match", pointer.To("dan"), pointer.To("example"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := service.SearchAuthors(context.Background(), tt.query, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, report)
		})
	}
}

/*
TestService_EmptyReports checks every report on an empty store.
*/
func TestService_EmptyReports(t *testing.T) {
	ctx := context.Background()
	service := newService(press.NewMemoryRepository())

	for name, build := range map[string]func(context.Context) (string, error){
		"top_publisher":     service.TopPublisher,
		"top_reviewer":      service.TopReviewer,
		"latest_article":    service.LatestArticle,
		"top_rated_article": service.TopRatedArticle,
	} {
		t.Run(name, func(t *testing.T) {
			report, err := build(ctx)
			require.NoError(t, err)
			assert.Empty(t, report)
		})
	}

	report, err := service.BanAuthor(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "No authors banned.", report)
}

/*
TestService_AuthorsWithoutWork hides publishers and reviewers with zero records.
*/
func TestService_AuthorsWithoutWork(t *testing.T) {
	ctx := context.Background()
	service := newService(press.NewMemoryRepository())
	require.NoError(t, service.CreateAuthor(ctx, &press.Author{FullName: "Idle Writer", Email: "idle@example.com", BirthYear: 1990}))

	report, err := service.TopPublisher(ctx)
	require.NoError(t, err)
	assert.Empty(t, report)

	report, err = service.TopReviewer(ctx)
	require.NoError(t, err)
	assert.Empty(t, report)
}

/*
TestService_LatestArticleUnreviewed prints the zero average and breaks date ties by id.
*/
func TestService_LatestArticleUnreviewed(t *testing.T) {
	ctx := context.Background()
	service := newService(press.NewMemoryRepository())

	author := &press.Author{FullName: "Zoe Adams", Email: "zoe@example.com", BirthYear: 1995}
	require.NoError(t, service.CreateAuthor(ctx, author))

	published := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	for _, title := range []string{"First Draft", "Second Draft"} {
		article := &press.Article{Title: title, Content: "Some content here.", AuthorIDs: []int64{author.ID}, PublishedOn: published}
		require.NoError(t, service.CreateArticle(ctx, article))
		assert.Equal(t, press.CategoryTechnology, article.Category)
	}

	report, err := service.LatestArticle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "The latest article is: Second Draft. Authors: Zoe Adams. Reviewed: 0 times. Average Rating: 0.00.", report)
}

/*
TestService_Validation rejects invalid records before they reach the store.
*/
func TestService_Validation(t *testing.T) {
	ctx := context.Background()
	service := newService(press.NewMemoryRepository())

	tests := []struct {
		name   string
		create func() error
		field  string
	}{
		{"short_name", func() error {
			return service.CreateAuthor(ctx, &press.Author{FullName: "Al", Email: "al@example.com", BirthYear: 1990})
		}, press.FieldFullName},
		{"birth_year", func() error {
			return service.CreateAuthor(ctx, &press.Author{FullName: "Young Writer", Email: "young@example.com", BirthYear: 2010})
		}, press.FieldBirthYear},
		{"website", func() error {
			return service.CreateAuthor(ctx, &press.Author{FullName: "Web Writer", Email: "web@example.com", BirthYear: 1990, Website: pointer.To("nope")})
		}, press.FieldWebsite},
		{"category", func() error {
			return service.CreateArticle(ctx, &press.Article{Title: "Valid Title", Content: "Valid content.", Category: "Sports"})
		}, press.FieldCategory},
		{"rating", func() error {
			return service.CreateReview(ctx, &press.Review{Content: "Valid content.", Rating: 5.5, AuthorID: 1, ArticleID: 1})
		}, press.FieldRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := apperr.As(tt.create())
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

/*
TestService_DuplicateEmail reports a conflict on the unique email.
*/
func TestService_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	service := newService(press.NewMemoryRepository())

	author := press.Author{FullName: "Alice Johnson", Email: "alice@example.com", BirthYear: 1985}
	first, second := author, author
	require.NoError(t, service.CreateAuthor(ctx, &first))
	assert.True(t, apperr.HasCode(service.CreateAuthor(ctx, &second), "CONFLICT"))

	_, err := service.GetAuthor(ctx, 999)
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
}
