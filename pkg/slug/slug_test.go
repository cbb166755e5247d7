// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fyyur/pkg/slug"
)

/*
TestFrom covers accents, punctuation and hyphen collapsing.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"San Francisco-CA", "san-francisco-ca"},
		{"New York-NY", "new-york-ny"},
		{"Montréal-QC", "montreal-qc"},
		{"  St. Louis -- MO ", "st-louis-mo"},
		{"Zürich", "zurich"},
		{"東京", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slug.From(tt.input), tt.input)
	}
}

/*
TestJoin skips parts that slug to nothing.
*/
func TestJoin(t *testing.T) {
	assert.Equal(t, "san-francisco-ca", slug.Join("San Francisco", "CA"))
	assert.Equal(t, "ca", slug.Join("", "CA"))
	assert.Equal(t, "", slug.Join("", " "))
}
