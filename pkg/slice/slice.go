// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the functional
helpers the report formatters lean on (Map, Filter, Take, Join).
*/
package slice

import (
	"cmp"
	"slices"
	"strings"
)

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter filters a slice, returning only elements where the predicate function evaluates to true.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	var result []T
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Reduce reduces a slice into a single accumulated result using the reducer function.
func Reduce[T any, U any](input []T, initial U, reducer func(accumulator U, current T) U) U {
	result := initial
	for _, v := range input {
		result = reducer(result, v)
	}
	return result
}

// Take returns at most the first n elements. A negative n returns the whole slice.
func Take[T any](input []T, n int) []T {
	if n < 0 || n >= len(input) {
		return input
	}
	return input[:n]
}

// Limit returns at most the first n elements. n <= 0 means no limit, matching LIMIT NULL.
func Limit[T any](input []T, n int) []T {
	if n <= 0 {
		return input
	}
	return Take(input, n)
}

// Unique returns the distinct elements in ascending order. It never returns nil.
func Unique[T cmp.Ordered](input []T) []T {
	out := slices.Clone(input)
	if out == nil {
		return []T{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Join renders every element and joins the results with sep.
func Join[T any](input []T, sep string, render func(T) string) string {
	return strings.Join(Map(input, render), sep)
}
