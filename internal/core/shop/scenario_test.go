// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shop_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/shop"
	"github.com/taibuivan/querylab/pkg/pointer"
)

var opening = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

func newService(repo shop.Repository) *shop.Service {
	return shop.NewService(repo, nil, slog.New(slog.DiscardHandler))
}

// seeded maps names to the ids assigned by the store.
type seeded struct {
	profiles map[string]int64
	products map[string]int64
	orders   []int64
}

// seedShop loads four profiles, six products and seven orders placed an hour apart.
func seedShop(t *testing.T, service *shop.Service) seeded {
	t.Helper()
	ctx := context.Background()
	ids := seeded{profiles: map[string]int64{}, products: map[string]int64{}}

	for _, profile := range []shop.Profile{
		{FullName: "Alice Johnson", Email: "alice@example.com", PhoneNumber: "+111", Address: "1 Main St", IsActive: true},
		{FullName: "Bob Smith", Email: "bob@example.com", PhoneNumber: "+222", Address: "2 Main St", IsActive: true},
		{FullName: "Carol White", Email: "carol@shop.bg", PhoneNumber: "0888123456", Address: "3 Main St", IsActive: true},
		{FullName: "Dan Brown", Email: "dan@mail.com", PhoneNumber: "+444", Address: "4 Main St"},
	} {
		created := profile
		require.NoError(t, service.CreateProfile(ctx, &created))
		ids.profiles[created.FullName] = created.ID
	}

	for _, product := range []shop.Product{
		{Name: "Laptop", Description: "14 inch", Price: 999.99, InStock: 1, IsAvailable: true},
		{Name: "Mouse", Description: "Wireless", Price: 19.99, InStock: 5, IsAvailable: true},
		{Name: "Keyboard", Description: "Mechanical", Price: 49.99, InStock: 2, IsAvailable: true},
		{Name: "Monitor", Description: "27 inch", Price: 199.99, InStock: 3, IsAvailable: true},
		{Name: "Webcam", Description: "1080p", Price: 59.99, InStock: 10, IsAvailable: true},
		{Name: "Headset", Description: "Noise cancelling", Price: 89.5, InStock: 4, IsAvailable: true},
	} {
		created := product
		require.NoError(t, service.CreateProduct(ctx, &created))
		ids.products[created.Name] = created.ID
	}

	orders := []struct {
		profile   string
		products  []string
		total     float64
		completed bool
	}{
		{"Alice Johnson", []string{"Laptop", "Mouse", "Keyboard"}, 1069.97, false},
		{"Alice Johnson", []string{"Mouse"}, 19.99, true},
		{"Alice Johnson", []string{"Monitor"}, 199.99, false},
		{"Bob Smith", []string{"Mouse", "Keyboard", "Monitor"}, 269.97, false},
		{"Bob Smith", []string{"Webcam"}, 59.99, true},
		{"Bob Smith", []string{"Headset", "Mouse"}, 109.49, false},
		{"Carol White", []string{"Keyboard", "Laptop"}, 1049.98, false},
	}
	for i, planned := range orders {
		order := &shop.Order{
			ProfileID:   ids.profiles[planned.profile],
			TotalPrice:  planned.total,
			IsCompleted: planned.completed,
			Timestamped: shop.Timestamped{CreationDate: opening.Add(time.Duration(i+1) * time.Hour)},
		}
		for _, name := range planned.products {
			order.ProductIDs = append(order.ProductIDs, ids.products[name])
		}
		require.NoError(t, service.CreateOrder(ctx, order))
		ids.orders = append(ids.orders, order.ID)
	}

	return ids
}

// assertReports checks every read-only report against the seeded data set.
func assertReports(t *testing.T, service *shop.Service) {
	t.Helper()
	ctx := context.Background()

	report, err := service.SearchProfiles(ctx, pointer.To("EXAMPLE"))
	require.NoError(t, err)
	assert.Equal(t, "Profile: Alice Johnson, email: alice@example.com, phone number: +111, orders: 3\n"+
		"Profile: Bob Smith, email: bob@example.com, phone number: +222, orders: 3", report)

	report, err = service.SearchProfiles(ctx, pointer.To("0888"))
	require.NoError(t, err)
	assert.Equal(t, "Profile: Carol White, email: carol@shop.bg, phone number: 0888123456, orders: 1", report)

	report, err = service.LoyalProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Profile: Alice Johnson, orders: 3\nProfile: Bob Smith, orders: 3", report)

	report, err = service.LastSoldProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Last sold products: Keyboard, Laptop", report)

	report, err = service.TopProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Top products:\nMouse, sold 4 times\nKeyboard, sold 3 times\nLaptop, sold 2 times\nMonitor, sold 2 times\nHeadset, sold 1 times", report)
}

// assertBulkUpdates runs the discount and completion flows on the seeded data set.
func assertBulkUpdates(t *testing.T, service *shop.Service, ids seeded) {
	t.Helper()
	ctx := context.Background()

	report, err := service.ApplyDiscounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Discount applied to 2 orders.", report)

	order, err := service.GetOrder(ctx, ids.orders[0])
	require.NoError(t, err)
	assert.InDelta(t, 962.97, order.TotalPrice, 1e-9)

	order, err = service.GetOrder(ctx, ids.orders[2])
	require.NoError(t, err)
	assert.InDelta(t, 199.99, order.TotalPrice, 1e-9)

	// Orders 1, 3, 4, 6 and 7 are open, oldest first.
	for range 5 {
		report, err = service.CompleteOrder(ctx)
		require.NoError(t, err)
		assert.Equal(t, shop.OrderCompleted, report)
	}

	report, err = service.CompleteOrder(ctx)
	require.NoError(t, err)
	assert.Empty(t, report)

	stock := map[string]struct {
		inStock   int
		available bool
	}{
		"Laptop":   {0, false},
		"Keyboard": {0, false},
		"Mouse":    {2, true},
		"Monitor":  {1, true},
		"Webcam":   {10, true},
		"Headset":  {3, true},
	}
	for name, want := range stock {
		product, err := service.GetProduct(ctx, ids.products[name])
		require.NoError(t, err)
		assert.Equal(t, want.inStock, product.InStock, name)
		assert.Equal(t, want.available, product.IsAvailable, name)
	}

	report, err = service.ApplyDiscounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Discount applied to 0 orders.", report)
}
