// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shop

import "context"

// Repository defines the persistence operations for profiles, products and orders.
type Repository interface {
	CreateProfile(ctx context.Context, profile *Profile) error
	GetProfile(ctx context.Context, id int64) (*Profile, error)
	CreateProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, id int64) (*Product, error)
	CreateOrder(ctx context.Context, order *Order) error
	GetOrder(ctx context.Context, id int64) (*Order, error)

	// SearchProfiles matches search case-insensitively against full name, email or phone,
	// ordered by full name.
	SearchProfiles(ctx context.Context, search string) ([]ProfileOrders, error)

	// ProfilesWithMoreOrders lists profiles with more than minOrders orders,
	// ordered by order count desc, then full name.
	ProfilesWithMoreOrders(ctx context.Context, minOrders int) ([]ProfileOrders, error)

	// LatestOrderProducts returns the product names of the newest order ordered by name.
	// found is false when there are no orders.
	LatestOrderProducts(ctx context.Context) (names []string, found bool, err error)

	// TopProducts lists products found in at least one order, ordered by order count desc,
	// then name.
	TopProducts(ctx context.Context, limit int) ([]ProductOrders, error)

	// DiscountOpenOrders scales the total of every open order with more than minProducts
	// products and returns how many orders changed.
	DiscountOpenOrders(ctx context.Context, minProducts int, factor float64) (int, error)

	// CompleteOldestOrder atomically completes the oldest open order and takes one unit of
	// each of its products out of stock. It reports false when no order is open.
	CompleteOldestOrder(ctx context.Context) (bool, error)
}
