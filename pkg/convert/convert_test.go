// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/querylab/pkg/convert"
)

/*
TestRoundAndDecimal pins the rounding used for ratings and prices.
*/
func TestRoundAndDecimal(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		places int
		want   string
	}{
		{"rating_increment", 7.9 + 0.1, 1, "8.0"},
		{"average", 4.25, 2, "4.25"},
		{"discount", 250.5 * 0.9, 2, "225.45"},
		{"whole", 3, 1, "3.0"},
		{"exact_half_rating", 8.25, 1, "8.2"},
		{"exact_half_average", 2.125, 2, "2.12"},
		{"exact_half_small", 0.125, 2, "0.12"},
		{"half_odd_neighbour", 0.375, 2, "0.38"},
		{"below_half", 2.675, 2, "2.67"},
		{"above_half", 8.26, 1, "8.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.Decimal(tt.value, tt.places))
		})
	}

	assert.InDelta(t, 225.45, convert.Cents(250.5*0.9), 1e-9)
}

/*
TestScaleCents rounds discounted prices the way NUMERIC columns do.
*/
func TestScaleCents(t *testing.T) {
	tests := []struct {
		amount float64
		factor float64
		want   float64
	}{
		{250.5, 0.9, 225.45},
		{10.05, 0.9, 9.05},
		{99.99, 0.9, 89.99},
		{0.01, 0.9, 0.01},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, convert.ScaleCents(tt.amount, tt.factor), 1e-9, "%v * %v", tt.amount, tt.factor)
	}
}

/*
TestToIntD falls back on empty and malformed input.
*/
func TestToIntD(t *testing.T) {
	assert.Equal(t, 3, convert.ToIntD("3", 1))
	assert.Equal(t, 1, convert.ToIntD("", 1))
	assert.Equal(t, 1, convert.ToIntD("three", 1))
}
