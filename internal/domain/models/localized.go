// internal/domain/models/localized.go
package models

import "sort"

// Lang is a supported interface language code.
type Lang string

// Supported languages. Russian is the primary content language and the
// terminal fallback for localized lookups.
const (
	LangRU Lang = "ru"
	LangEN Lang = "en"
	LangKK Lang = "kk"
)

// SupportedLangs returns all supported languages in canonical order.
func SupportedLangs() []Lang {
	return []Lang{LangRU, LangEN, LangKK}
}

// ParseLang normalizes a raw language code. Unknown or empty codes
// resolve to Russian.
func ParseLang(code string) Lang {
	switch Lang(code) {
	case LangRU, LangEN, LangKK:
		return Lang(code)
	default:
		return LangRU
	}
}

// LocalizedText is a per-language string record. Text-bearing block fields
// are stored this way so one page can serve several languages.
//
// Lookup never fails: Resolve falls back through a fixed chain instead of
// reporting a missing language.
type LocalizedText map[string]string

// Resolve returns the text for lang, falling back deterministically:
// requested language, then ru, then en, then the first available language
// in sorted key order, then the empty string.
func (t LocalizedText) Resolve(lang Lang) string {
	if len(t) == 0 {
		return ""
	}
	if s, ok := t[string(lang)]; ok && s != "" {
		return s
	}
	if s, ok := t[string(LangRU)]; ok && s != "" {
		return s
	}
	if s, ok := t[string(LangEN)]; ok && s != "" {
		return s
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if t[k] != "" {
			return t[k]
		}
	}
	return ""
}

// IsEmpty reports whether no language carries any text.
func (t LocalizedText) IsEmpty() bool {
	for _, s := range t {
		if s != "" {
			return false
		}
	}
	return true
}

// Plain builds a LocalizedText carrying the same string for the primary
// language only. Useful in tests and seeding.
func Plain(s string) LocalizedText {
	if s == "" {
		return LocalizedText{}
	}
	return LocalizedText{string(LangRU): s}
}
