// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package press_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/press"
	"github.com/taibuivan/querylab/internal/platform/apitest"
	"github.com/taibuivan/querylab/internal/platform/sec"
)

/*
TestHandler_Reports serves the seeded reports to anonymous callers.
*/
func TestHandler_Reports(t *testing.T) {
	service := newService(press.NewMemoryRepository())
	seedPress(t, service)
	router := apitest.Router(press.NewHandler(service).RegisterRoutes)

	recorder := apitest.Do(t, router, http.MethodGet, "/reports/top-publisher", nil, apitest.Anonymous)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Top Author: Alice Johnson with 2 published articles.", apitest.Report(t, recorder))

	recorder = apitest.Do(t, router, http.MethodGet, "/reports/search-authors?email=news", nil, apitest.Anonymous)
	assert.Equal(t, "Author: Dan Brown, email: dan@news.com, status: Not Banned", apitest.Report(t, recorder))

	recorder = apitest.Do(t, router, http.MethodGet, "/authors/by-article-count", nil, apitest.Anonymous)
	require.Equal(t, http.StatusOK, recorder.Code)
	var rows []press.AuthorCount
	apitest.Data(t, recorder, &rows)
	require.Len(t, rows, 4)
	assert.Equal(t, "Alice Johnson", rows[0].Author.FullName)
}

/*
TestHandler_Ban requires the admin role.
*/
func TestHandler_Ban(t *testing.T) {
	service := newService(press.NewMemoryRepository())
	seedPress(t, service)
	router := apitest.Router(press.NewHandler(service).RegisterRoutes)

	recorder := apitest.Do(t, router, http.MethodPost, "/authors/ban?email=dan@news.com", nil, apitest.Anonymous)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = apitest.Do(t, router, http.MethodPost, "/authors/ban?email=dan@news.com", nil, sec.RoleEditor)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = apitest.Do(t, router, http.MethodPost, "/authors/ban?email=dan@news.com", nil, sec.RoleAdmin)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Author: Dan Brown is banned! 1 reviews deleted.", apitest.Report(t, recorder))

	recorder = apitest.Do(t, router, http.MethodPost, "/authors/ban", nil, sec.RoleAdmin)
	assert.Equal(t, "No authors banned.", apitest.Report(t, recorder))
}

/*
TestHandler_CreateArticle parses the publication date and defaults the category.
*/
func TestHandler_CreateArticle(t *testing.T) {
	service := newService(press.NewMemoryRepository())
	router := apitest.Router(press.NewHandler(service).RegisterRoutes)

	recorder := apitest.Do(t, router, http.MethodPost, "/authors", map[string]any{
		"full_name": "Ann Lee", "email": "ann@example.com", "birth_year": 1988,
	}, sec.RoleEditor)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	var author press.Author
	apitest.Data(t, recorder, &author)

	recorder = apitest.Do(t, router, http.MethodPost, "/articles", map[string]any{
		"title": "Hello World", "content": "First article body.", "author_ids": []int64{author.ID}, "published_on": "2024-13-01",
	}, sec.RoleEditor)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = apitest.Do(t, router, http.MethodPost, "/articles", map[string]any{
		"title": "Hello World", "content": "First article body.", "author_ids": []int64{author.ID}, "published_on": "2024-06-01",
	}, sec.RoleEditor)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var article press.Article
	apitest.Data(t, recorder, &article)
	assert.Equal(t, press.CategoryTechnology, article.Category)
	assert.Equal(t, 2024, article.PublishedOn.Year())
}
