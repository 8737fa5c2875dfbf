// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artifact

import (
	"context"

	"github.com/taibuivan/querylab/pkg/pagination"
)

// Repository persists artifacts.
type Repository interface {
	CreateArtifact(ctx context.Context, artifact *Artifact) error
	GetArtifact(ctx context.Context, id int64) (*Artifact, error)

	// ListArtifacts returns one page ordered by name and the total number of artifacts.
	ListArtifacts(ctx context.Context, params pagination.Params) ([]Artifact, int, error)

	// RenameArtifact sets the name only when the stored artifact is renamable, and reports
	// whether it did.
	RenameArtifact(ctx context.Context, id int64, name string) (bool, error)

	// DeleteAll removes every artifact and returns how many there were.
	DeleteAll(ctx context.Context) (int, error)
}
