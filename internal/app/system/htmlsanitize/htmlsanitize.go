// Package htmlsanitize provides HTML sanitization for user-authored rich
// text entering crawler-facing output. It uses bluemonday to strip
// dangerous markup while preserving the formatting the block editor emits.
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// policy is the shared bluemonday policy for sanitizing rich text.
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// UGC policy as base: basic formatting, lists, links with rel
		// hardening, no scripts or event handlers.
		policy = bluemonday.UGCPolicy()

		// The block editor emits these beyond the UGC set.
		policy.AllowElements("u", "s", "sub", "sup", "mark")

		// Crawler output must not carry inline styles or data attributes;
		// the UGC base already excludes them.
		policy.RequireNoFollowOnLinks(false)
		policy.RequireNoReferrerOnLinks(false)
		policy.AddTargetBlankToFullyQualifiedLinks(false)
	})
	return policy
}

// Sanitize cleans user-authored HTML, removing potentially dangerous
// elements and attributes while preserving safe formatting.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}

// IsPlainText reports whether content appears to be plain text (no HTML
// tags). Valid tags require both < and >, so if either is missing the
// content is treated as plain text and escaped rather than sanitized.
func IsPlainText(content string) bool {
	if content == "" {
		return true
	}
	return !strings.Contains(content, "<") || !strings.Contains(content, ">")
}
