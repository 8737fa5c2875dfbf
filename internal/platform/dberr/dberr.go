// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/querylab/internal/platform/apperr"
)

// SQLSTATE codes the stores care about.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
//
// resource names the entity for NOT_FOUND messages; action tags the cause for logs.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	// 1. Missing row
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Constraint violations surface as client errors
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return apperr.Conflict(fmt.Sprintf("%s with this %s already exists", resource, constraintField(pgErr)))
		case foreignKeyViolation:
			return apperr.ValidationError("Referenced record does not exist")
		case checkViolation:
			return apperr.ValidationError(fmt.Sprintf("%s violates constraint %s", resource, pgErr.ConstraintName))
		}
	}

	// 3. Anything else is an internal failure
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// constraintField extracts a readable field hint from a unique constraint name
// following the "<table>_<column>_key" convention.
func constraintField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	name := pgErr.ConstraintName
	const suffix = "_key"
	if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
		name = name[:len(name)-len(suffix)]
		for i := len(name) - 1; i >= 0; i-- {
			if name[i] == '_' {
				return name[i+1:]
			}
		}
	}
	return "value"
}
