// Package normalize provides utilities for normalizing and sanitizing data.
package normalize

import "strings"

// Nickname canonicalizes a raw in-game nickname for comparison: it strips
// NUL bytes, trims leading/trailing whitespace, and lower-cases the result.
// Every component that compares nicknames must go through this function;
// it is the single source of truth for case-insensitive semantics.
//
// An empty result is never a valid lookup key.
func Nickname(raw string) string {
	return strings.ToLower(strings.TrimSpace(sanitizeString(raw)))
}

// sanitizeString removes NUL bytes from strings, which can cause issues in
// databases and JSON parsing. Vision/OCR output occasionally embeds them.
func sanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 { // null byte
			return -1 // drop it
		}
		return r
	}, s)
}
