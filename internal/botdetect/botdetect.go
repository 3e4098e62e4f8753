// internal/botdetect/botdetect.go

// Package botdetect classifies incoming requests so the server can choose
// between the SPA shell and server-rendered HTML. Detection is a
// case-insensitive substring match over known crawler tokens; no header
// beyond User-Agent is consulted.
package botdetect

import (
	"regexp"
	"strings"

	"github.com/dalemusser/linkfolio/internal/domain/models"
)

// botTokens are matched case-insensitively as substrings of the User-Agent.
// Grouped by category; order does not matter.
var botTokens = []string{
	// search engines
	"googlebot",
	"bingbot",
	"yandexbot",
	"yandex.com/bots",
	"duckduckbot",
	"baiduspider",
	"slurp",
	"applebot",

	// social link previews
	"facebookexternalhit",
	"twitterbot",
	"linkedinbot",
	"telegrambot",
	"whatsapp",
	"vkshare",
	"slackbot",
	"discordbot",
	"pinterestbot",

	// AI assistants and their crawlers
	"gptbot",
	"chatgpt-user",
	"oai-searchbot",
	"claudebot",
	"claude-web",
	"anthropic-ai",
	"perplexitybot",
	"youbot",
	"cohere-ai",
	"google-extended",
	"ccbot",
	"bytespider",

	// generic markers
	"crawler",
	"spider",
	"mediapartners",
}

// IsSearchBot reports whether the User-Agent belongs to a known crawler.
// An empty User-Agent is not a bot: real crawlers identify themselves, and
// misclassifying a broken client as a bot would hand it the wrong document.
func IsSearchBot(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	ua := strings.ToLower(userAgent)
	for _, token := range botTokens {
		if strings.Contains(ua, token) {
			return true
		}
	}
	return false
}

// slugPathRe matches exactly one public-page path segment.
var slugPathRe = regexp.MustCompile(`^/[a-z0-9-]+$`)

// appPaths are SPA-only routes that never get server-rendered HTML even
// though they look like page slugs.
var appPaths = map[string]bool{
	"dashboard": true,
	"login":     true,
	"signup":    true,
	"logout":    true,
	"admin":     true,
	"settings":  true,
	"editor":    true,
	"account":   true,
}

// ShouldReturnSSR reports whether this request gets server-rendered HTML.
// Only crawlers qualify, and only on renderable paths: the landing root,
// the gallery, or a single-segment page slug that is not an application
// route or a reserved name.
func ShouldReturnSSR(path, userAgent string) bool {
	if !IsSearchBot(userAgent) {
		return false
	}
	if path == "/" || path == "/gallery" {
		return true
	}
	if !slugPathRe.MatchString(path) {
		return false
	}
	slug := strings.TrimPrefix(path, "/")
	if appPaths[slug] || models.ReservedSlugs[slug] {
		return false
	}
	return true
}
