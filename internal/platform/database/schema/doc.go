// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds table descriptors for every PostgreSQL table.
//
// Repositories interpolate these names into SQL with fmt.Sprintf instead of
// repeating string literals, so a renamed column is a one-line change here.
// One PostgreSQL schema exists per exercise domain (cinema, shop, press, catalog,
// media, pricing, hero, dataops).
package schema

import "strings"

// Select joins column names into a SELECT list, each prefixed with alias when non-empty.
func Select(alias string, columns ...string) string {
	if alias == "" {
		return strings.Join(columns, ", ")
	}
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}

// CollateC forces byte-order text comparison so ORDER BY agrees with Go's string ordering.
const CollateC = `COLLATE "C"`

// Limit converts a row limit into a LIMIT argument. limit <= 0 yields NULL, which means no limit.
func Limit(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}
