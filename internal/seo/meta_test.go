package seo

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dalemusser/linkfolio/internal/domain/models"
)

func testGenerator() Generator {
	return Generator{
		BaseURL:        "https://linkfolio.example",
		Brand:          "LinkFolio",
		DefaultOGImage: "https://linkfolio.example/static/og-default.png",
	}
}

func TestBuildMetaTitle(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		brand string
		want  string
	}{
		{"short with brand", "Анна", "LinkFolio", "Анна | LinkFolio"},
		{"no brand", "Анна", "", "Анна"},
		{
			"brand dropped before cutting name",
			"Анна Петрова мастер маникюра и педикюра в городе Алматы",
			"LinkFolio",
			"Анна Петрова мастер маникюра и педикюра в городе Алматы",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildMetaTitle(tt.in, tt.brand); got != tt.want {
				t.Errorf("BuildMetaTitle(%q, %q) = %q, want %q", tt.in, tt.brand, got, tt.want)
			}
		})
	}
}

func TestBuildMetaTitle_NeverExceedsLimit(t *testing.T) {
	inputs := []string{
		strings.Repeat("длинное имя ", 20),
		strings.Repeat("ж", 200),
		"short",
	}
	for _, in := range inputs {
		got := BuildMetaTitle(in, "LinkFolio")
		if n := utf8.RuneCountInString(got); n > TitleMaxRunes {
			t.Errorf("title %q is %d runes, limit %d", got, n, TitleMaxRunes)
		}
		if !utf8.ValidString(got) {
			t.Errorf("title %q is not valid UTF-8", got)
		}
	}
}

func TestBuildMetaTitle_WordBoundary(t *testing.T) {
	in := strings.Repeat("слово ", 15) // well past 60 runes
	got := BuildMetaTitle(in, "")
	if strings.HasSuffix(got, "слов") || strings.HasSuffix(got, "сло") {
		t.Errorf("title cut mid-word: %q", got)
	}
}

func TestBuildMetaDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short unchanged", "Мастер маникюра в Алматы.", "Мастер маникюра в Алматы."},
		{"markdown link stripped", "Запись у [меня в телеграме](https://t.me/anna) каждый день.", "Запись у меня в телеграме каждый день."},
		{"whitespace collapsed", "  много \n\t пробелов  ", "много пробелов"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildMetaDescription(tt.in); got != tt.want {
				t.Errorf("BuildMetaDescription(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildMetaDescription_TruncatesWithEllipsis(t *testing.T) {
	in := strings.Repeat("описание услуг и цен ", 20)
	got := BuildMetaDescription(in)

	if n := utf8.RuneCountInString(got); n > DescriptionMaxRunes {
		t.Errorf("description is %d runes, limit %d", n, DescriptionMaxRunes)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated description missing ellipsis: %q", got)
	}
	if !utf8.ValidString(got) {
		t.Error("description is not valid UTF-8")
	}
}

func TestBuildMetaDescription_Idempotent(t *testing.T) {
	in := strings.Repeat("текст про услуги ", 30)
	once := BuildMetaDescription(in)
	twice := BuildMetaDescription(once)
	if once != twice {
		t.Errorf("re-deriving a derived description changed it:\n%q\n%q", once, twice)
	}
}

func TestStripMarkdownLinks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[text](url)", "text"},
		{"a [b](c) d [e](f)", "a b d e"},
		{"no links here", "no links here"},
		{"[](empty)", ""},
	}
	for _, tt := range tests {
		if got := StripMarkdownLinks(tt.in); got != tt.want {
			t.Errorf("StripMarkdownLinks(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeneratorPageMeta(t *testing.T) {
	g := testGenerator()
	blocks := []models.Block{profileBlock("Анна", "Мастер маникюра в Алматы.")}
	p := ExtractProfile(blocks, models.LangRU)

	passed := QualityGateResult{Score: 80, Passed: true}
	failed := QualityGateResult{Score: 30, Passed: false}

	meta := g.PageMeta(p, blocks, "anna-beauty", passed, models.LangRU)
	if meta.Title != "Анна | LinkFolio" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Canonical != "https://linkfolio.example/anna-beauty" {
		t.Errorf("Canonical = %q", meta.Canonical)
	}
	if meta.Robots != RobotsIndex {
		t.Errorf("Robots = %q, want index for a passed gate", meta.Robots)
	}
	if meta.OGImage != g.DefaultOGImage {
		t.Errorf("OGImage = %q, want the default when the profile has no avatar", meta.OGImage)
	}

	meta = g.PageMeta(p, blocks, "anna-beauty", failed, models.LangRU)
	if meta.Robots != RobotsNoIndex {
		t.Errorf("Robots = %q, want noindex for a failed gate", meta.Robots)
	}
}

func TestGeneratorPageMeta_SlugFallbackName(t *testing.T) {
	g := testGenerator()
	meta := g.PageMeta(Profile{}, nil, "anna-beauty", QualityGateResult{}, models.LangRU)
	if !strings.Contains(meta.Title, "anna-beauty") {
		t.Errorf("Title = %q, want the slug as fallback name", meta.Title)
	}
}
