// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shop_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/shop"
	"github.com/taibuivan/querylab/internal/platform/apitest"
	"github.com/taibuivan/querylab/internal/platform/sec"
)

/*
TestHandler_Flow creates records over HTTP and completes the order as admin.
*/
func TestHandler_Flow(t *testing.T) {
	service := newService(shop.NewMemoryRepository())
	router := apitest.Router(shop.NewHandler(service).RegisterRoutes)

	recorder := apitest.Do(t, router, http.MethodPost, "/profiles", map[string]any{
		"full_name": "Ivan Petrov", "email": "ivan@example.com", "phone_number": "+359888", "address": "Sofia",
	}, sec.RoleEditor)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var profile shop.Profile
	apitest.Data(t, recorder, &profile)
	assert.True(t, profile.IsActive)

	recorder = apitest.Do(t, router, http.MethodPost, "/products", map[string]any{
		"name": "Lamp", "description": "Desk lamp", "price": 25.5, "in_stock": 1,
	}, sec.RoleEditor)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var product shop.Product
	apitest.Data(t, recorder, &product)

	recorder = apitest.Do(t, router, http.MethodPost, "/orders", map[string]any{
		"profile_id": profile.ID, "product_ids": []int64{product.ID}, "total_price": 25.5,
	}, sec.RoleEditor)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = apitest.Do(t, router, http.MethodPost, "/orders/complete", nil, sec.RoleEditor)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = apitest.Do(t, router, http.MethodPost, "/orders/complete", nil, sec.RoleAdmin)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, shop.OrderCompleted, apitest.Report(t, recorder))

	recorder = apitest.Do(t, router, http.MethodGet, "/products/"+strconv.FormatInt(product.ID, 10), nil, apitest.Anonymous)
	require.Equal(t, http.StatusOK, recorder.Code)
	apitest.Data(t, recorder, &product)
	assert.Zero(t, product.InStock)
	assert.False(t, product.IsAvailable)

	recorder = apitest.Do(t, router, http.MethodGet, "/reports/last-sold-products", nil, apitest.Anonymous)
	assert.Equal(t, "Last sold products: Lamp", apitest.Report(t, recorder))

	recorder = apitest.Do(t, router, http.MethodGet, "/reports/search-profiles", nil, apitest.Anonymous)
	assert.Empty(t, apitest.Report(t, recorder))
}
