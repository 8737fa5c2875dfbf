// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/media"
	"github.com/taibuivan/querylab/internal/platform/apitest"
	"github.com/taibuivan/querylab/internal/platform/sec"
)

/*
TestHandler_Media creates and lists books over HTTP.
*/
func TestHandler_Media(t *testing.T) {
	router := apitest.Router(media.NewHandler(newService(media.NewMemoryRepository())).RegisterRoutes)

	recorder := apitest.Do(t, router, http.MethodGet, "/books", nil, apitest.Anonymous)
	require.Equal(t, http.StatusOK, recorder.Code)
	var books []media.Book
	apitest.Data(t, recorder, &books)
	assert.Empty(t, books)

	book := map[string]any{"title": "Dune", "description": "Spice.", "genre": "Sci-Fi", "author": "Frank Herbert", "isbn": "9780441013593"}
	recorder = apitest.Do(t, router, http.MethodPost, "/books", book, apitest.Anonymous)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = apitest.Do(t, router, http.MethodPost, "/books", book, sec.RoleEditor)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = apitest.Do(t, router, http.MethodPost, "/books", book, sec.RoleEditor)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, "CONFLICT", apitest.Code(t, recorder))

	recorder = apitest.Do(t, router, http.MethodGet, "/books", nil, apitest.Anonymous)
	apitest.Data(t, recorder, &books)
	require.Len(t, books, 1)
	assert.Equal(t, "Frank Herbert", books[0].Author)
	assert.False(t, books[0].CreatedAt.IsZero())
}

/*
TestHandler_Customers mounts the customer routes on their own prefix.
*/
func TestHandler_Customers(t *testing.T) {
	customers := media.NewCustomerHandler(newService(media.NewMemoryRepository()))
	router := apitest.Router(func(router chi.Router) {
		router.Route("/customers", customers.RegisterRoutes)
	})

	recorder := apitest.Do(t, router, http.MethodPost, "/customers/", map[string]any{
		"name": "Maria Ivanova", "age": 17, "email": "maria@example.com",
		"phone_number": "+359888123456", "website_url": "https://maria.bg",
	}, sec.RoleEditor)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", apitest.Code(t, recorder))

	recorder = apitest.Do(t, router, http.MethodPost, "/customers/", map[string]any{
		"name": "Maria Ivanova", "age": 18, "email": "maria@example.com",
		"phone_number": "+359888123456", "website_url": "https://maria.bg",
	}, sec.RoleEditor)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var customer media.Customer
	apitest.Data(t, recorder, &customer)

	recorder = apitest.Do(t, router, http.MethodGet, "/customers/"+strconv.FormatInt(customer.ID, 10), nil, apitest.Anonymous)
	require.Equal(t, http.StatusOK, recorder.Code)
}
