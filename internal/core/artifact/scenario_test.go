// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artifact_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/artifact"
	"github.com/taibuivan/querylab/internal/platform/apperr"
	"github.com/taibuivan/querylab/pkg/pagination"
)

func newService(repo artifact.Repository) *artifact.Service {
	return artifact.NewService(repo, slog.New(slog.DiscardHandler))
}

// seed stores three artifacts out of name order and returns them by name.
func seed(t *testing.T, service *artifact.Service) map[string]*artifact.Artifact {
	t.Helper()
	ctx := context.Background()

	stored := map[string]*artifact.Artifact{}
	for _, item := range []*artifact.Artifact{
		{Name: "Sword of Light", Origin: "Avalon", Age: 1200, Description: "Glows at dusk.", IsMagical: true},
		{Name: "Clay Pot", Origin: "Thrace", Age: 2400},
		{Name: "Amulet", Origin: "Babylon", Age: 250, IsMagical: true},
	} {
		_, err := service.CreateArtifact(ctx, item)
		require.NoError(t, err)
		stored[item.Name] = item
	}
	return stored
}

// assertCollection covers ordering, the rename rule and bulk deletion.
func assertCollection(t *testing.T, service *artifact.Service) {
	t.Helper()
	ctx := context.Background()
	stored := seed(t, service)

	page, meta, err := service.ListArtifacts(ctx, pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"Amulet", "Clay Pot"}, names(page)); diff != "" {
		t.Errorf("first page mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, pagination.Meta{Page: 1, Limit: 2, Total: 3, TotalPages: 2}, meta)

	page, _, err = service.ListArtifacts(ctx, pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"Sword of Light"}, names(page)); diff != "" {
		t.Errorf("second page mismatch (-want +got):\n%s", diff)
	}

	page, meta, err = service.ListArtifacts(ctx, pagination.Params{Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, 3, meta.Total)

	renamed, err := service.RenameArtifact(ctx, stored["Sword of Light"].ID, "Excalibur")
	require.NoError(t, err)
	assert.Equal(t, "Excalibur", renamed.Name)

	kept, err := service.RenameArtifact(ctx, stored["Amulet"].ID, "Eye of Ra")
	require.NoError(t, err)
	assert.Equal(t, "Amulet", kept.Name, "an artifact of exactly 250 years keeps its name")

	kept, err = service.RenameArtifact(ctx, stored["Clay Pot"].ID, "Urn")
	require.NoError(t, err)
	assert.Equal(t, "Clay Pot", kept.Name, "mundane artifacts keep their name")

	_, err = service.RenameArtifact(ctx, 999, "Ghost")
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))

	deleted, err := service.DeleteAllArtifacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	deleted, err = service.DeleteAllArtifacts(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	page, meta, err = service.ListArtifacts(ctx, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Zero(t, meta.Total)
}

func names(artifacts []artifact.Artifact) []string {
	result := make([]string, len(artifacts))
	for i, item := range artifacts {
		result[i] = item.Name
	}
	return result
}
