// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"

	"github.com/taibuivan/querylab/pkg/convert"
	"github.com/taibuivan/querylab/pkg/slice"
)

// NoRatings is the average shown for an empty collection.
const NoRatings = "0.0"

// FormatListings renders one line per listing.
func FormatListings(listings []Listing) string {
	return slice.Join(listings, "\n", func(listing Listing) string {
		return fmt.Sprintf("%s in %s: %s (%d bedrooms)",
			listing.PropertyType, listing.Location, convert.Decimal(listing.Price, 2), listing.Bedrooms)
	})
}

// FormatLocations renders the location popularity ranking.
func FormatLocations(rows []LocationCount) string {
	return slice.Join(rows, "\n", func(row LocationCount) string {
		return fmt.Sprintf("%s: %d listings", row.Location, row.Count)
	})
}

// FormatGame renders a single game; nil renders "".
func FormatGame(game *VideoGame) string {
	if game == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s, %d), rating: %s", game.Title, game.Genre, game.ReleaseYear, convert.Decimal(game.Rating, 1))
}

// FormatGames renders one line per game.
func FormatGames(games []VideoGame) string {
	return slice.Join(games, "\n", func(game VideoGame) string {
		return FormatGame(&game)
	})
}

// FormatAverageRating renders the average with one decimal place.
func FormatAverageRating(average *float64) string {
	if average == nil {
		return NoRatings
	}
	return convert.Decimal(*average, 1)
}
