// internal/htmlutil/escape.go

// Package htmlutil provides the HTML text-escaping primitive shared by every
// component that interpolates strings into markup: the head-tag renderer,
// the crawler projection, and the static SSR builders.
//
// This is a correctness-critical wire contract: no interpolated string may
// reach HTML output unescaped, including titles and descriptions sourced
// from user content. A regression here is an injection defect, not a
// display bug.
package htmlutil

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes the five HTML-significant characters. Safe for both
// element text content and double- or single-quoted attribute values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
