// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package query builds SQL fragments for the case-insensitive substring filters.

PostgreSQL ILIKE treats '%' and '_' as wildcards; user input is escaped so a
search for "50%" matches the literal text.
*/
package query

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE metacharacters using the default backslash escape.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Contains returns an ILIKE pattern matching s anywhere in the column.
// Contains("") is "%%", which matches every non-NULL value.
func Contains(s string) string {
	return "%" + EscapeLike(s) + "%"
}

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
