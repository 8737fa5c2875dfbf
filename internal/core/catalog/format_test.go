// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/querylab/internal/core/catalog"
	"github.com/taibuivan/querylab/pkg/pointer"
)

/*
TestFormatAverageRating rounds to one decimal place.
*/
func TestFormatAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		average *float64
		want    string
	}{
		{"empty", nil, "0.0"},
		{"whole", pointer.To(7.0), "7.0"},
		{"rounds_up", pointer.To(8.26), "8.3"},
		{"rounds_down", pointer.To(8.24), "8.2"},
		{"exact_half_to_even", pointer.To(8.25), "8.2"},
		{"exact_half_odd_neighbour", pointer.To(8.75), "8.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.FormatAverageRating(tt.average))
		})
	}
}

/*
TestFormatListings prints prices with two decimals.
*/
func TestFormatListings(t *testing.T) {
	listings := []catalog.Listing{{PropertyType: "Loft", Price: 99999.9, Bedrooms: 0, Location: "Ruse"}}
	assert.Equal(t, "Loft in Ruse: 99999.90 (0 bedrooms)", catalog.FormatListings(listings))
	assert.Empty(t, catalog.FormatListings(nil))
}
