// internal/seo/headtags/headset.go

// Package headtags manages the head-tag bundle for one page render.
//
// The browser-side equivalent of this component mutated one global document
// head. Here each request gets its own HeadSet (an isolated output buffer),
// so concurrent requests never share mutable state; the SPA receives the
// same bundle as JSON and owns actual DOM mutation on the client.
package headtags

import (
	"sort"
	"strings"

	"github.com/dalemusser/linkfolio/internal/htmlutil"
)

// TagKind selects how a Tag renders.
type TagKind string

const (
	KindTitle  TagKind = "title"  // <title>Body</title>
	KindMeta   TagKind = "meta"   // <meta {attrs}>
	KindLink   TagKind = "link"   // <link {attrs}>
	KindScript TagKind = "script" // <script {attrs}>Body</script>
)

// Tag is one head element identified by a stable key. The key is what makes
// re-application idempotent: setting the same key twice replaces the element
// instead of accumulating a stale duplicate.
type Tag struct {
	Kind  TagKind           `json:"kind"`
	Key   string            `json:"key"`
	Attrs map[string]string `json:"attrs,omitempty"`
	Body  string            `json:"body,omitempty"`

	// RawBody marks Body as pre-serialized JSON (ld+json scripts) that must
	// be embedded verbatim rather than HTML-escaped. encoding/json already
	// escapes <, >, and & inside strings, so raw embedding is closure-safe.
	RawBody bool `json:"rawBody,omitempty"`
}

// HeadSet is an ordered, keyed collection of head tags for one render.
// Not safe for concurrent use; create one per request.
type HeadSet struct {
	order []string
	tags  map[string]Tag
}

// New returns an empty HeadSet.
func New() *HeadSet {
	return &HeadSet{tags: make(map[string]Tag)}
}

// Set inserts or replaces the tag under its key. Insertion order is
// preserved for first insertion; replacement keeps the original position so
// repeated application renders byte-identically.
func (h *HeadSet) Set(t Tag) {
	if t.Key == "" {
		return
	}
	if _, exists := h.tags[t.Key]; !exists {
		h.order = append(h.order, t.Key)
	}
	h.tags[t.Key] = t
}

// Remove deletes the tag under key, if present.
func (h *HeadSet) Remove(key string) {
	if _, exists := h.tags[key]; !exists {
		return
	}
	delete(h.tags, key)
	for i, k := range h.order {
		if k == key {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Reset removes every tag, returning the set to its initial state. This is
// the teardown path: after Reset the rendered head contains nothing of the
// previous page.
func (h *HeadSet) Reset() {
	h.order = nil
	h.tags = make(map[string]Tag)
}

// Len returns the number of tags currently set.
func (h *HeadSet) Len() int {
	return len(h.tags)
}

// Get returns the tag under key.
func (h *HeadSet) Get(key string) (Tag, bool) {
	t, ok := h.tags[key]
	return t, ok
}

// Keys returns the tag keys in render order.
func (h *HeadSet) Keys() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Tags returns the tags in render order, for JSON bundling.
func (h *HeadSet) Tags() []Tag {
	out := make([]Tag, 0, len(h.order))
	for _, k := range h.order {
		out = append(out, h.tags[k])
	}
	return out
}

// Render emits the head elements as HTML in insertion order. All attribute
// values and non-raw bodies pass through htmlutil.EscapeHTML.
func (h *HeadSet) Render() string {
	var sb strings.Builder
	for _, key := range h.order {
		t := h.tags[key]
		switch t.Kind {
		case KindTitle:
			sb.WriteString("<title>")
			sb.WriteString(htmlutil.EscapeHTML(t.Body))
			sb.WriteString("</title>\n")
		case KindMeta:
			sb.WriteString("<meta")
			writeAttrs(&sb, t.Attrs)
			sb.WriteString(">\n")
		case KindLink:
			sb.WriteString("<link")
			writeAttrs(&sb, t.Attrs)
			sb.WriteString(">\n")
		case KindScript:
			sb.WriteString("<script")
			writeAttrs(&sb, t.Attrs)
			sb.WriteString(">")
			if t.RawBody {
				sb.WriteString(t.Body)
			} else {
				sb.WriteString(htmlutil.EscapeHTML(t.Body))
			}
			sb.WriteString("</script>\n")
		}
	}
	return sb.String()
}

// writeAttrs emits attributes in sorted key order so output is
// deterministic.
func writeAttrs(sb *strings.Builder, attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(" ")
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(htmlutil.EscapeHTML(attrs[k]))
		sb.WriteString(`"`)
	}
}
