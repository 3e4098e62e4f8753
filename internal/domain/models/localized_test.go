package models

import "testing"

func TestLocalizedTextResolve(t *testing.T) {
	tests := []struct {
		name string
		text LocalizedText
		lang Lang
		want string
	}{
		{"requested present", LocalizedText{"ru": "привет", "en": "hello"}, LangEN, "hello"},
		{"fallback to ru", LocalizedText{"ru": "привет", "en": "hello"}, LangKK, "привет"},
		{"fallback to en", LocalizedText{"en": "hello"}, LangKK, "hello"},
		{"empty requested value ignored", LocalizedText{"en": "", "ru": "привет"}, LangEN, "привет"},
		{"first sorted key as last resort", LocalizedText{"kk": "сәлем", "de": "hallo"}, LangEN, "hallo"},
		{"nil map", nil, LangRU, ""},
		{"all empty values", LocalizedText{"ru": "", "en": ""}, LangRU, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.Resolve(tt.lang); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
	}{
		{"ru", LangRU},
		{"en", LangEN},
		{"kk", LangKK},
		{"", LangRU},
		{"fr", LangRU},
		{"EN", LangRU},
	}

	for _, tt := range tests {
		if got := ParseLang(tt.in); got != tt.want {
			t.Errorf("ParseLang(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLocalizedTextIsEmpty(t *testing.T) {
	if !(LocalizedText{}).IsEmpty() {
		t.Error("empty map should be empty")
	}
	if !(LocalizedText{"ru": ""}).IsEmpty() {
		t.Error("map with only empty values should be empty")
	}
	if (LocalizedText{"ru": "x"}).IsEmpty() {
		t.Error("map with text should not be empty")
	}
}
