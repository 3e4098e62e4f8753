// internal/ssr/hreflang.go
package ssr

import (
	"strings"

	"github.com/dalemusser/linkfolio/internal/domain/models"
	"github.com/dalemusser/linkfolio/internal/htmlutil"
)

// HreflangLinks emits the alternate-language link tags for a path: one per
// supported language plus x-default pointing at the unparameterized URL.
// path must start with "/".
func HreflangLinks(baseURL, path string) string {
	base := strings.TrimRight(baseURL, "/")
	var sb strings.Builder
	for _, lang := range models.SupportedLangs() {
		sb.WriteString(`<link rel="alternate" hreflang="`)
		sb.WriteString(string(lang))
		sb.WriteString(`" href="`)
		sb.WriteString(htmlutil.EscapeHTML(base + path + "?lang=" + string(lang)))
		sb.WriteString("\" />\n")
	}
	sb.WriteString(`<link rel="alternate" hreflang="x-default" href="`)
	sb.WriteString(htmlutil.EscapeHTML(base + path))
	sb.WriteString("\" />\n")
	return sb.String()
}
