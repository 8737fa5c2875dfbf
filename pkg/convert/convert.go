// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides the numeric conversions shared by stores and formatters.

Ratings carry one decimal place, money carries two. Both the in-memory store and
the formatters round through this package so the two storage drivers print the
same strings.
*/
package convert

import (
	"math"
	"strconv"
)

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// Cents rounds a money amount to two decimal places.
func Cents(v float64) float64 {
	return Round(v, 2)
}

// ScaleCents multiplies a money amount by factor and rounds the result to cents.
//
// The amount is first snapped to whole cents so that results agree with NUMERIC(10, 2)
// arithmetic in PostgreSQL, for example 10.05 * 0.9 = 9.05.
func ScaleCents(amount, factor float64) float64 {
	return math.Round(math.Round(amount*100)*factor) / 100
}

// Decimal formats v with a fixed number of decimal places.
//
// The exact binary value is rounded half to even, so 8.25 prints as "8.2" and 2.675
// (stored just below the half) prints as "2.67".
func Decimal(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}

// ToIntD converts a string to an int, returning the provided default if parsing fails or string is empty.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	return def
}
