// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artifact

import (
	"context"
	"log/slog"

	"github.com/taibuivan/querylab/pkg/pagination"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateArtifact stores the artifact and returns its confirmation line.
func (service *Service) CreateArtifact(ctx context.Context, artifact *Artifact) (string, error) {
	if err := ValidateArtifact(artifact); err != nil {
		return "", err
	}
	if err := service.repo.CreateArtifact(ctx, artifact); err != nil {
		return "", err
	}

	service.logger.InfoContext(ctx, "artifact_created", slog.Int64("artifact_id", artifact.ID))
	return FormatCreated(artifact), nil
}

func (service *Service) GetArtifact(ctx context.Context, id int64) (*Artifact, error) {
	return service.repo.GetArtifact(ctx, id)
}

// ListArtifacts returns one page ordered by name, with its pagination metadata.
func (service *Service) ListArtifacts(ctx context.Context, params pagination.Params) ([]Artifact, pagination.Meta, error) {
	artifacts, total, err := service.repo.ListArtifacts(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return artifacts, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// RenameArtifact renames magical artifacts older than RenameMinAge years; others are left as is.
func (service *Service) RenameArtifact(ctx context.Context, id int64, name string) (*Artifact, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	renamed, err := service.repo.RenameArtifact(ctx, id, name)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "artifact_rename_requested",
		slog.Int64("artifact_id", id),
		slog.Bool("renamed", renamed),
	)
	return service.repo.GetArtifact(ctx, id)
}

// DeleteAllArtifacts removes the whole collection and returns the number removed.
func (service *Service) DeleteAllArtifacts(ctx context.Context) (int, error) {
	deleted, err := service.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	service.logger.WarnContext(ctx, "artifacts_deleted", slog.Int("count", deleted))
	return deleted, nil
}
