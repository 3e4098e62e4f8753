// Package normalize provides helper functions for consistent string normalization
// across the application. Use these helpers instead of scattered strings.ToLower
// and strings.TrimSpace calls to ensure consistent behavior.
package normalize

import "strings"

// Slug normalizes a page slug by trimming whitespace and lowercasing.
// Validation (charset, length, reserved names) is separate; this only puts
// the value in canonical form for lookup.
func Slug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Niche normalizes a gallery niche filter value.
func Niche(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LangCode normalizes a raw ?lang= value before parsing. "RU " and "ru" must
// resolve to the same language.
func LangCode(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam normalizes a query parameter by trimming whitespace.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// UserAgent trims a User-Agent header. Bot matching lowercases on its own;
// the original casing is kept for logging.
func UserAgent(s string) string {
	return strings.TrimSpace(s)
}
