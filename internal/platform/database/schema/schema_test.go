// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/querylab/internal/platform/database/schema"
)

/*
TestSelect qualifies columns with an alias.
*/
func TestSelect(t *testing.T) {
	assert.Equal(t, "id, fullname", schema.Select("", schema.Director.ID, schema.Director.FullName))
	assert.Equal(t, "d.id, d.fullname", schema.Select("d", schema.Director.ID, schema.Director.FullName))
	assert.Len(t, schema.Movie.Columns(), 11)
}
