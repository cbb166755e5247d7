// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for the optional fields of partial updates.

A nil pointer means "not provided"; a non-nil pointer carries the new value,
even when that value is the zero value.

Key Functions:
  - To: Creates a pointer from a value literal.
  - Fallback: Dereferences a pointer, returning a fallback value if nil.
  - Trim: Returns a trimmed copy of an optional string.
*/
package pointer

import "strings"

// To returns a pointer to the provided value (e.g. pointer.To("Jazz")).
func To[T any](v T) *T {
	return &v
}

// Fallback dereferences p, or returns fallback when p is nil.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// Trim returns a pointer to the trimmed value of p, or nil when p is nil.
//
// The caller's string is never modified.
func Trim(p *string) *string {
	if p == nil {
		return nil
	}
	return To(strings.TrimSpace(*p))
}
