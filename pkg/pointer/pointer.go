// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Optional search arguments travel as *string: nil means "not supplied", while a
pointer to "" means "supplied but empty". These helpers keep that distinction
readable at call sites.

Key Functions:
  - To: Creates a pointer from a value literal.
  - Val: Safely dereferences a pointer, returning the zero value if nil.
  - Fallback: Safely dereferences a pointer, returning a fallback value if nil.
  - NoneSet: Reports whether every optional argument is nil.
  - NonZero: Turns a zero value into nil, for columns with database defaults.
*/
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer.
// If the pointer is nil, it returns the zero value of the underlying type.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Fallback safely dereferences a pointer.
// If the pointer is nil, it returns the provided fallback value instead.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// NoneSet reports whether all the given pointers are nil.
func NoneSet[T any](ps ...*T) bool {
	for _, p := range ps {
		if p != nil {
			return false
		}
	}
	return true
}

// NonZero returns nil for the zero value of T and a pointer to v otherwise.
func NonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
