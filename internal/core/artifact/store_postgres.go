// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artifact

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/querylab/internal/platform/database/schema"
	"github.com/taibuivan/querylab/internal/platform/dberr"
	"github.com/taibuivan/querylab/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var artifactColumns = schema.Select("a", schema.Artifact.Columns()...)

func scanArtifact(row pgx.Row, artifact *Artifact, extra ...any) error {
	dest := append([]any{&artifact.ID, &artifact.Name, &artifact.Origin, &artifact.Age,
		&artifact.Description, &artifact.IsMagical}, extra...)
	return row.Scan(dest...)
}

func (repository *PostgresRepository) CreateArtifact(ctx context.Context, artifact *Artifact) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`,
		schema.Artifact.Table,
		schema.Artifact.Name, schema.Artifact.Origin, schema.Artifact.Age, schema.Artifact.Description, schema.Artifact.IsMagical,
		schema.Artifact.ID,
	)

	err := repository.db.QueryRow(ctx, sql,
		artifact.Name, artifact.Origin, artifact.Age, artifact.Description, artifact.IsMagical,
	).Scan(&artifact.ID)
	return dberr.Wrap(err, "Artifact", "create_artifact")
}

func (repository *PostgresRepository) GetArtifact(ctx context.Context, id int64) (*Artifact, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s a WHERE a.%s = $1`, artifactColumns, schema.Artifact.Table, schema.Artifact.ID)

	artifact := &Artifact{}
	if err := scanArtifact(repository.db.QueryRow(ctx, sql, id), artifact); err != nil {
		return nil, dberr.Wrap(err, "Artifact", "get_artifact")
	}
	return artifact, nil
}

func (repository *PostgresRepository) ListArtifacts(ctx context.Context, params pagination.Params) ([]Artifact, int, error) {
	sql := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER () AS total
		FROM %s a
		ORDER BY a.%s %s, a.%s
		LIMIT $1 OFFSET $2
	`, artifactColumns, schema.Artifact.Table, schema.Artifact.Name, schema.CollateC, schema.Artifact.ID)

	rows, err := repository.db.Query(ctx, sql, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Artifact", "list_artifacts")
	}
	defer rows.Close()

	artifacts := []Artifact{}
	total := 0
	for rows.Next() {
		var artifact Artifact
		if err := scanArtifact(rows, &artifact, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "Artifact", "scan_artifact")
		}
		artifacts = append(artifacts, artifact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Artifact", "list_artifacts")
	}

	// A page past the end carries no window count.
	if len(artifacts) == 0 && params.Offset() > 0 {
		countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.Artifact.Table)
		if err := repository.db.QueryRow(ctx, countSQL).Scan(&total); err != nil {
			return nil, 0, dberr.Wrap(err, "Artifact", "count_artifacts")
		}
	}
	return artifacts, total, nil
}

func (repository *PostgresRepository) RenameArtifact(ctx context.Context, id int64, name string) (bool, error) {
	sql := fmt.Sprintf(`
		UPDATE %s SET %s = $2
		WHERE %s = $1 AND %s AND %s > $3
		RETURNING %s
	`, schema.Artifact.Table, schema.Artifact.Name,
		schema.Artifact.ID, schema.Artifact.IsMagical, schema.Artifact.Age, schema.Artifact.ID)

	var renamed int64
	err := repository.db.QueryRow(ctx, sql, id, name, RenameMinAge).Scan(&renamed)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, dberr.Wrap(err, "Artifact", "rename_artifact")
	}

	// Distinguish a missing artifact from one that may not be renamed.
	if _, err := repository.GetArtifact(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

func (repository *PostgresRepository) DeleteAll(ctx context.Context) (int, error) {
	tag, err := repository.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, schema.Artifact.Table))
	if err != nil {
		return 0, dberr.Wrap(err, "Artifact", "delete_all_artifacts")
	}
	return int(tag.RowsAffected()), nil
}
