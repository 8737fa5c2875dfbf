// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/catalog"
)

func newService(repo catalog.Repository) *catalog.Service {
	return catalog.NewService(repo, nil, slog.New(slog.DiscardHandler))
}

// seedCatalog loads seven listings and five video games.
func seedCatalog(t *testing.T, service *catalog.Service) {
	t.Helper()
	ctx := context.Background()

	for _, listing := range []catalog.Listing{
		{PropertyType: "House", Price: 150000, Bedrooms: 3, Location: "Sofia"},
		{PropertyType: "Apartment", Price: 85000.5, Bedrooms: 2, Location: "Sofia"},
		{PropertyType: "Apartment", Price: 60000, Bedrooms: 2, Location: "Plovdiv"},
		{PropertyType: "Villa", Price: 320000, Bedrooms: 5, Location: "Varna"},
		{PropertyType: "House", Price: 120000, Bedrooms: 4, Location: "Plovdiv"},
		{PropertyType: "Apartment", Price: 70000, Bedrooms: 1, Location: "Varna"},
		{PropertyType: "Studio", Price: 45000, Bedrooms: 1, Location: "Sofia"},
	} {
		created := listing
		require.NoError(t, service.CreateListing(ctx, &created))
	}

	for _, game := range []catalog.VideoGame{
		{Title: "The Witcher 3", Genre: "RPG", ReleaseYear: 2015, Rating: 9.5},
		{Title: "Elden Ring", Genre: "RPG", ReleaseYear: 2022, Rating: 9.5},
		{Title: "Hades", Genre: "Roguelike", ReleaseYear: 2020, Rating: 9.0},
		{Title: "Cyberpunk 2077", Genre: "RPG", ReleaseYear: 2020, Rating: 7.2},
		{Title: "Fall Guys", Genre: "Party", ReleaseYear: 2020, Rating: 6.0},
	} {
		created := game
		require.NoError(t, service.CreateVideoGame(ctx, &created))
	}
}

// assertReports checks every report against the seeded data set.
func assertReports(t *testing.T, service *catalog.Service) {
	t.Helper()
	ctx := context.Background()

	tests := []struct {
		name  string
		build func() (string, error)
		want  string
	}{
		{
			"by_property_type", func() (string, error) { return service.ListingsByPropertyType(ctx, "Apartment") },
			"Apartment in Sofia: 85000.50 (2 bedrooms)\nApartment in Plovdiv: 60000.00 (2 bedrooms)\nApartment in Varna: 70000.00 (1 bedrooms)",
		},
		{
			"price_range_inclusive", func() (string, error) { return service.ListingsInPriceRange(ctx, 60000, 120000) },
			"Apartment in Sofia: 85000.50 (2 bedrooms)\nApartment in Plovdiv: 60000.00 (2 bedrooms)\n" +
				"House in Plovdiv: 120000.00 (4 bedrooms)\nApartment in Varna: 70000.00 (1 bedrooms)",
		},
		{
			"bedrooms", func() (string, error) { return service.ListingsWithBedrooms(ctx, 2) },
			"Apartment in Sofia: 85000.50 (2 bedrooms)\nApartment in Plovdiv: 60000.00 (2 bedrooms)",
		},
		{"no_bedrooms_match", func() (string, error) { return service.ListingsWithBedrooms(ctx, 9) }, ""},
		{"popular_locations", func() (string, error) { return service.PopularLocations(ctx) }, "Sofia: 3 listings\nPlovdiv: 2 listings"},
		{
			"games_by_genre", func() (string, error) { return service.GamesByGenre(ctx, "RPG") },
			"The Witcher 3 (RPG, 2015), rating: 9.5\nElden Ring (RPG, 2022), rating: 9.5\nCyberpunk 2077 (RPG, 2020), rating: 7.2",
		},
		{
			"recent_games", func() (string, error) { return service.RecentlyReleasedGames(ctx, 2021) },
			"Elden Ring (RPG, 2022), rating: 9.5",
		},
		{"highest_rated", func() (string, error) { return service.HighestRatedGame(ctx) }, "Elden Ring (RPG, 2022), rating: 9.5"},
		{"lowest_rated", func() (string, error) { return service.LowestRatedGame(ctx) }, "Fall Guys (Party, 2020), rating: 6.0"},
		{"average_rating", func() (string, error) { return service.AverageRating(ctx) }, "8.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, report)
		})
	}
}
