// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

// Listing is a real-estate listing.
type Listing struct {
	ID           int64   `json:"id"`
	PropertyType string  `json:"property_type"`
	Price        float64 `json:"price"`
	Bedrooms     int     `json:"bedrooms"`
	Location     string  `json:"location"`
}

// VideoGame is a rated video game.
type VideoGame struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	ReleaseYear int     `json:"release_year"`
	Rating      float64 `json:"rating"`
}

// LocationCount is a location annotated with its number of listings.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// PopularLocationsSize is how many locations the popularity report shows.
const PopularLocationsSize = 2

// Validation bounds.
const (
	MinRating = 0.0
	MaxRating = 10.0
)

// Field names for validation
const (
	FieldPropertyType = "property_type"
	FieldPrice        = "price"
	FieldBedrooms     = "bedrooms"
	FieldLocation     = "location"
	FieldTitle        = "title"
	FieldGenre        = "genre"
	FieldReleaseYear  = "release_year"
	FieldRating       = "rating"
)
