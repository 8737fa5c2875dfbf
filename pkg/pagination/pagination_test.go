// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/querylab/pkg/pagination"
)

/*
TestFromRequest clamps invalid values to the defaults.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		query string
		want  pagination.Params
	}{
		{"", pagination.Params{Page: 1, Limit: 20}},
		{"?page=3&limit=5", pagination.Params{Page: 3, Limit: 5}},
		{"?page=-1&limit=1000", pagination.Params{Page: 1, Limit: 20}},
		{"?page=x", pagination.Params{Page: 1, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/artifacts"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(request))
		})
	}
}

/*
TestWindow pages through an in-memory slice.
*/
func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, pagination.Window(items, pagination.Params{Page: 1, Limit: 2}))
	assert.Equal(t, []int{5}, pagination.Window(items, pagination.Params{Page: 3, Limit: 2}))
	assert.Empty(t, pagination.Window(items, pagination.Params{Page: 4, Limit: 2}))

	meta := pagination.NewMeta(3, 2, len(items))
	assert.Equal(t, 3, meta.TotalPages)
}
