// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/querylab/pkg/fold"
)

/*
TestContains matches substrings regardless of case.
*/
func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     bool
	}{
		{"ascii", "Christopher Nolan", "nolan", true},
		{"upper_needle", "reader@example.com", "EXAMPLE", true},
		{"non_ascii", "Pedro Almodóvar", "ALMODÓVAR", true},
		{"sharp_s", "Straße", "STRASSE", true},
		{"empty_needle", "anything", "", true},
		{"absent", "Greta Gerwig", "nolan", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fold.Contains(tt.haystack, tt.needle))
		})
	}
}

/*
TestEqual compares emails case-insensitively.
*/
func TestEqual(t *testing.T) {
	assert.True(t, fold.Equal("Author@Press.io", "author@press.io"))
	assert.False(t, fold.Equal("a@press.io", "b@press.io"))
}
