// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/shop"
	"github.com/taibuivan/querylab/internal/platform/apperr"
	"github.com/taibuivan/querylab/pkg/pointer"
)

/*
TestService_Reports runs every report against the in-memory store.
*/
func TestService_Reports(t *testing.T) {
	service := newService(shop.NewMemoryRepository())
	seedShop(t, service)
	assertReports(t, service)
}

/*
TestService_BulkUpdates discounts and completes orders in the in-memory store.
*/
func TestService_BulkUpdates(t *testing.T) {
	service := newService(shop.NewMemoryRepository())
	ids := seedShop(t, service)
	assertBulkUpdates(t, service, ids)
}

/*
TestService_SearchProfiles separates a missing search from an empty one.
*/
func TestService_SearchProfiles(t *testing.T) {
	service := newService(shop.NewMemoryRepository())
	seedShop(t, service)

	tests := []struct {
		name   string
		search *string
		lines  int
	}{
		{"not_supplied", nil, 0},
		{"no_match", pointer.To("zzz"), 0},
		{"empty_matches_all", pointer.To(""), 4},
		{"phone_fragment", pointer.To("+2"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := service.SearchProfiles(context.Background(), tt.search)
			require.NoError(t, err)
			if tt.lines == 0 {
				assert.Empty(t, report)
				return
			}
			assert.Len(t, splitLines(report), tt.lines)
		})
	}
}

/*
TestService_EmptyStore checks every report on an empty store.
*/
func TestService_EmptyStore(t *testing.T) {
	ctx := context.Background()
	service := newService(shop.NewMemoryRepository())

	for name, build := range map[string]func(context.Context) (string, error){
		"loyal_profiles":     service.LoyalProfiles,
		"last_sold_products": service.LastSoldProducts,
		"top_products":       service.TopProducts,
		"complete_order":     service.CompleteOrder,
	} {
		t.Run(name, func(t *testing.T) {
			report, err := build(ctx)
			require.NoError(t, err)
			assert.Empty(t, report)
		})
	}

	report, err := service.ApplyDiscounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Discount applied to 0 orders.", report)
}

/*
TestService_LastSoldProductsWithoutProducts returns nothing for an empty latest order.
*/
func TestService_LastSoldProductsWithoutProducts(t *testing.T) {
	ctx := context.Background()
	service := newService(shop.NewMemoryRepository())

	profile := &shop.Profile{FullName: "Eve Adams", Email: "eve@example.com", PhoneNumber: "+555", Address: "5 Main St"}
	require.NoError(t, service.CreateProfile(ctx, profile))
	require.NoError(t, service.CreateOrder(ctx, &shop.Order{ProfileID: profile.ID, TotalPrice: 10}))

	report, err := service.LastSoldProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, report)
}

/*
TestService_Validation rejects invalid records.
*/
func TestService_Validation(t *testing.T) {
	ctx := context.Background()
	service := newService(shop.NewMemoryRepository())

	tests := []struct {
		name  string
		write func() error
	}{
		{"short_name", func() error {
			return service.CreateProfile(ctx, &shop.Profile{FullName: "A", Email: "a@example.com", PhoneNumber: "+1", Address: "x"})
		}},
		{"bad_email", func() error {
			return service.CreateProfile(ctx, &shop.Profile{FullName: "Ann", Email: "ann", PhoneNumber: "+1", Address: "x"})
		}},
		{"long_phone", func() error {
			return service.CreateProfile(ctx, &shop.Profile{FullName: "Ann", Email: "a@example.com", PhoneNumber: "+1234567890123456", Address: "x"})
		}},
		{"free_product", func() error {
			return service.CreateProduct(ctx, &shop.Product{Name: "Gift", Price: 0})
		}},
		{"negative_stock", func() error {
			return service.CreateProduct(ctx, &shop.Product{Name: "Gift", Price: 1, InStock: -1})
		}},
		{"unknown_profile", func() error {
			return service.CreateOrder(ctx, &shop.Order{ProfileID: 99, TotalPrice: 1})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, apperr.HasCode(tt.write(), "VALIDATION_ERROR"))
		})
	}
}
