// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cinema_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/cinema"
	"github.com/taibuivan/querylab/internal/platform/apitest"
	"github.com/taibuivan/querylab/internal/platform/sec"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	service := newService(cinema.NewMemoryRepository())
	seedCinema(t, service)
	return apitest.Router(cinema.NewHandler(service).RegisterRoutes)
}

/*
TestHandler_Reports serves reports to anonymous callers.
*/
func TestHandler_Reports(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"top_director", "/reports/top-director", "Top Director: Christopher Nolan, movies: 3."},
		{"search_absent", "/reports/search-directors", ""},
		{"search_nationality", "/reports/search-directors?nationality=british", "Director: Christopher Nolan, nationality: British, experience: 25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := apitest.Do(t, router, http.MethodGet, tt.target, nil, apitest.Anonymous)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tt.want, apitest.Report(t, recorder))
		})
	}
}

/*
TestHandler_RoleGuards checks which roles may write.
*/
func TestHandler_RoleGuards(t *testing.T) {
	router := newRouter(t)
	director := map[string]any{"full_name": "Denis Villeneuve", "nationality": "Canadian", "years_of_experience": 20}

	tests := []struct {
		name   string
		method string
		target string
		body   any
		role   sec.UserRole
		status int
	}{
		{"create_anonymous", http.MethodPost, "/directors", director, apitest.Anonymous, http.StatusUnauthorized},
		{"create_viewer", http.MethodPost, "/directors", director, sec.RoleViewer, http.StatusForbidden},
		{"create_editor", http.MethodPost, "/directors", director, sec.RoleEditor, http.StatusCreated},
		{"bulk_editor", http.MethodPost, "/movies/increase-rating", nil, sec.RoleEditor, http.StatusForbidden},
		{"bulk_admin", http.MethodPost, "/movies/increase-rating", nil, sec.RoleAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := apitest.Do(t, router, tt.method, tt.target, tt.body, tt.role)
			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}
}

/*
TestHandler_CreateMovie decodes dates and rejects malformed ones.
*/
func TestHandler_CreateMovie(t *testing.T) {
	router := newRouter(t)

	recorder := apitest.Do(t, router, http.MethodGet, "/directors/1", nil, apitest.Anonymous)
	require.Equal(t, http.StatusOK, recorder.Code)

	movie := map[string]any{"title": "Tenet Returns", "release_date": "2020-08-26", "rating": 7.3, "director_id": 1}
	recorder = apitest.Do(t, router, http.MethodPost, "/movies", movie, sec.RoleEditor)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var created cinema.Movie
	apitest.Data(t, recorder, &created)
	assert.Equal(t, cinema.GenreOther, created.Genre)
	assert.Equal(t, 2020, created.ReleaseDate.Year())

	movie["release_date"] = "26/08/2020"
	recorder = apitest.Do(t, router, http.MethodPost, "/movies", movie, sec.RoleEditor)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", apitest.Code(t, recorder))

	recorder = apitest.Do(t, router, http.MethodGet, "/movies/abc", nil, apitest.Anonymous)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
