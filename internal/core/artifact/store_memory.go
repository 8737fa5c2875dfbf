// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artifact

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/taibuivan/querylab/internal/platform/apperr"
	"github.com/taibuivan/querylab/pkg/pagination"
)

// MemoryRepository keeps artifacts in process memory.
type MemoryRepository struct {
	mu        sync.RWMutex
	artifacts map[int64]Artifact
	lastID    int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{artifacts: map[int64]Artifact{}}
}

func (repository *MemoryRepository) CreateArtifact(_ context.Context, artifact *Artifact) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lastID++
	artifact.ID = repository.lastID
	repository.artifacts[artifact.ID] = *artifact
	return nil
}

func (repository *MemoryRepository) GetArtifact(_ context.Context, id int64) (*Artifact, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	artifact, ok := repository.artifacts[id]
	if !ok {
		return nil, apperr.NotFound("Artifact")
	}
	return &artifact, nil
}

func (repository *MemoryRepository) ListArtifacts(_ context.Context, params pagination.Params) ([]Artifact, int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	sorted := make([]Artifact, 0, len(repository.artifacts))
	for _, artifact := range repository.artifacts {
		sorted = append(sorted, artifact)
	}
	slices.SortFunc(sorted, func(a, b Artifact) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return pagination.Window(sorted, params), len(sorted), nil
}

func (repository *MemoryRepository) RenameArtifact(_ context.Context, id int64, name string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	artifact, ok := repository.artifacts[id]
	if !ok {
		return false, apperr.NotFound("Artifact")
	}
	if !artifact.Renamable() {
		return false, nil
	}

	artifact.Name = name
	repository.artifacts[id] = artifact
	return true, nil
}

func (repository *MemoryRepository) DeleteAll(_ context.Context) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	deleted := len(repository.artifacts)
	clear(repository.artifacts)
	return deleted, nil
}
