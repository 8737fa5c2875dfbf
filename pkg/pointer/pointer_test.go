// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/querylab/pkg/pointer"
)

/*
TestPointerHelpers covers nil and non-nil inputs.
*/
func TestPointerHelpers(t *testing.T) {
	var missing *string
	name := pointer.To("Nolan")

	assert.Equal(t, "", pointer.Val(missing))
	assert.Equal(t, "Nolan", pointer.Val(name))
	assert.Equal(t, "N/A", pointer.Fallback(missing, "N/A"))
	assert.Equal(t, "Nolan", pointer.Fallback(name, "N/A"))

	assert.True(t, pointer.NoneSet[string]())
	assert.True(t, pointer.NoneSet(missing, nil))
	assert.False(t, pointer.NoneSet(missing, pointer.To("")))

	assert.Nil(t, pointer.NonZero(0))
	assert.Equal(t, 3, *pointer.NonZero(3))
}
