// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold implements Unicode case-insensitive matching for the in-memory store.
//
// The memory driver uses it where the postgres driver uses ILIKE.
package fold

import (
	"strings"

	"golang.org/x/text/cases"
)

// String returns the case-folded form of s.
//
// A new Caser is created per call; cases.Caser is stateful and not safe for concurrent use.
func String(s string) string {
	return cases.Fold().String(s)
}

// Contains reports whether needle occurs in haystack, ignoring case.
// An empty needle matches everything.
func Contains(haystack, needle string) bool {
	return strings.Contains(String(haystack), String(needle))
}

// Equal reports whether a and b are equal under case folding.
func Equal(a, b string) bool {
	return String(a) == String(b)
}
