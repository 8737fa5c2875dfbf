// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "github.com/taibuivan/querylab/internal/platform/validate"

// ValidateListing checks a listing before it is written.
func ValidateListing(listing *Listing) error {
	return (&validate.Validator{}).
		Required(FieldPropertyType, listing.PropertyType).
		MaxLen(FieldPropertyType, listing.PropertyType, 100).
		FloatMin(FieldPrice, listing.Price, 0).
		Min(FieldBedrooms, listing.Bedrooms, 0).
		Required(FieldLocation, listing.Location).
		MaxLen(FieldLocation, listing.Location, 100).
		Err()
}

// ValidateVideoGame checks a video game before it is written.
func ValidateVideoGame(game *VideoGame) error {
	return (&validate.Validator{}).
		Required(FieldTitle, game.Title).
		MaxLen(FieldTitle, game.Title, 100).
		Required(FieldGenre, game.Genre).
		MaxLen(FieldGenre, game.Genre, 100).
		Min(FieldReleaseYear, game.ReleaseYear, 1).
		FloatRange(FieldRating, game.Rating, MinRating, MaxRating).
		Err()
}
