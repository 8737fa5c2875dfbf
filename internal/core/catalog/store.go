// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// Repository defines the persistence operations for listings and video games.
//
// Listing and game queries return rows in insertion order.
type Repository interface {
	CreateListing(ctx context.Context, listing *Listing) error
	GetListing(ctx context.Context, id int64) (*Listing, error)
	ListingsByPropertyType(ctx context.Context, propertyType string) ([]Listing, error)

	// ListingsInPriceRange includes both bounds.
	ListingsInPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]Listing, error)
	ListingsWithBedrooms(ctx context.Context, bedrooms int) ([]Listing, error)

	// PopularLocations counts listings per location ordered by count desc, then location.
	PopularLocations(ctx context.Context, limit int) ([]LocationCount, error)

	CreateVideoGame(ctx context.Context, game *VideoGame) error
	GetVideoGame(ctx context.Context, id int64) (*VideoGame, error)
	GamesByGenre(ctx context.Context, genre string) ([]VideoGame, error)

	// GamesReleasedSince returns games released in year or later.
	GamesReleasedSince(ctx context.Context, year int) ([]VideoGame, error)

	// HighestRatedGame breaks rating ties by title. It returns nil for an empty collection.
	HighestRatedGame(ctx context.Context) (*VideoGame, error)

	// LowestRatedGame breaks rating ties by title. It returns nil for an empty collection.
	LowestRatedGame(ctx context.Context) (*VideoGame, error)

	// AverageRating returns nil for an empty collection.
	AverageRating(ctx context.Context) (*float64, error)
}
