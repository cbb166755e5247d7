// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fyyur/pkg/query"
)

/*
TestContains escapes LIKE metacharacters.
*/
func TestContains(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"Hop", "%Hop%"},
		{"", "%%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`back\slash`, `%back\\slash%`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, query.Contains(tt.term), tt.term)
	}
}

/*
TestTerm trims surrounding whitespace only.
*/
func TestTerm(t *testing.T) {
	assert.Equal(t, "Musical Hop", query.Term("  Musical Hop \t"))
	assert.Empty(t, query.Term("   "))
}
