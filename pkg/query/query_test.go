// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/querylab/pkg/query"
)

/*
TestContains escapes wildcard characters in user input.
*/
func TestContains(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"nolan", "%nolan%"},
		{"", "%%"},
		{"50%", `%50\%%`},
		{"a_b", `%a\_b%`},
		{`c:\x`, `%c:\\x%`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, query.Contains(tt.in))
		})
	}
}

/*
TestStringSlice trims and drops empty entries.
*/
func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"RPG", "Action"}, query.StringSlice(" RPG, ,Action "))
	assert.Nil(t, query.StringSlice(""))
}
