// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artifact_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/artifact"
	"github.com/taibuivan/querylab/internal/platform/apperr"
)

/*
TestService_Collection runs the shared collection suite on the in-memory store.
*/
func TestService_Collection(t *testing.T) {
	assertCollection(t, newService(artifact.NewMemoryRepository()))
}

/*
TestService_CreateArtifact checks the confirmation line and the field rules.
*/
func TestService_CreateArtifact(t *testing.T) {
	service := newService(artifact.NewMemoryRepository())
	ctx := context.Background()

	report, err := service.CreateArtifact(ctx, &artifact.Artifact{Name: "Rosetta Stone", Origin: "Egypt", Age: 2220})
	require.NoError(t, err)
	assert.Equal(t, "The artifact Rosetta Stone is 2220 years old!", report)

	tests := []struct {
		name     string
		artifact artifact.Artifact
		field    string
	}{
		{"missing_name", artifact.Artifact{Origin: "Egypt", Age: 1}, artifact.FieldName},
		{"long_name", artifact.Artifact{Name: strings.Repeat("a", 71), Origin: "Egypt"}, artifact.FieldName},
		{"long_origin", artifact.Artifact{Name: "Scarab", Origin: strings.Repeat("o", 71)}, artifact.FieldOrigin},
		{"negative_age", artifact.Artifact{Name: "Scarab", Origin: "Egypt", Age: -1}, artifact.FieldAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateArtifact(ctx, &tt.artifact)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

/*
TestService_RenameArtifact_Validation rejects names the column cannot hold.
*/
func TestService_RenameArtifact_Validation(t *testing.T) {
	service := newService(artifact.NewMemoryRepository())
	stored := seed(t, service)

	_, err := service.RenameArtifact(context.Background(), stored["Sword of Light"].ID, strings.Repeat("x", 71))
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}
