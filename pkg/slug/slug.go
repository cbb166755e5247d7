// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug builds ASCII URL keys from Unicode text, such as the
// "san-francisco-ca" key of a venue location.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// separator joins words and parts of a slug.
const separator = '-'

// From lowercases s, strips accents (NFD then drop non-spacing marks) and
// replaces every run of other characters with a single hyphen. Leading and
// trailing hyphens are dropped; non-ASCII letters without a decomposition are
// dropped as well.
func From(s string) string {
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		folded = s
	}

	var builder strings.Builder
	builder.Grow(len(folded))
	pendingSeparator := false

	for _, r := range strings.ToLower(folded) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingSeparator && builder.Len() > 0 {
				builder.WriteRune(separator)
			}
			pendingSeparator = false
			builder.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			// Non-ASCII word characters are dropped without splitting the word.
		default:
			pendingSeparator = true
		}
	}

	return builder.String()
}

// Join slugs every part and joins the non-empty results with hyphens.
//
//	slug.Join("San Francisco", "CA") // "san-francisco-ca"
func Join(parts ...string) string {
	slugs := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := From(part); s != "" {
			slugs = append(slugs, s)
		}
	}
	return strings.Join(slugs, string(separator))
}
