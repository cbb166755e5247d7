// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package query turns free-text search terms into SQL LIKE patterns.

Patterns use backslash as the escape character, so every query built from
[Contains] must declare it with ESCAPE '\'.
*/
package query

import "strings"

// EscapeClause is appended to LIKE/ILIKE predicates that use [Contains] patterns.
const EscapeClause = `ESCAPE '\'`

// likeEscaper escapes the LIKE metacharacters so they match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Term trims a raw search term. An empty result matches everything.
func Term(raw string) string {
	return strings.TrimSpace(raw)
}

// Contains returns a substring pattern for term with LIKE metacharacters escaped.
func Contains(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
