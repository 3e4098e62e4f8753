// internal/seo/profile.go

// Package seo derives crawler-facing metadata from a page's block sequence:
// a normalized profile, the index/noindex quality gate, the meta-tag bundle,
// and the schema.org JSON-LD graph.
//
// Every function in this package is a pure derivation over
// (blocks, slug, language, updatedAt, isNewAccount). Nothing here touches
// the database or mutates shared state, so handlers can call these on every
// request without memoization.
package seo

import (
	"strings"

	"github.com/dalemusser/linkfolio/internal/domain/models"
)

// Profile is the normalized page identity derived from the block sequence.
// It has no persistence and no identity of its own; recompute it whenever
// the blocks change.
type Profile struct {
	Name     string
	Bio      string
	Avatar   string
	Kind     models.EntityKind
	Location string
	Niche    string
}

// ExtractProfile scans the ordered block list and derives the page profile
// for the given language. The first profile block seeds name/bio/avatar;
// when no profile block exists, the first link or social block supplies a
// partial identity. An empty block list yields an empty profile, never an
// error.
func ExtractProfile(blocks []models.Block, lang models.Lang) Profile {
	var p Profile

	for _, b := range blocks {
		if b.Profile == nil {
			continue
		}
		p.Name = strings.TrimSpace(b.Profile.Name.Resolve(lang))
		p.Bio = strings.TrimSpace(b.Profile.Bio.Resolve(lang))
		p.Avatar = b.Profile.Avatar
		p.Kind = b.Profile.Kind
		p.Location = strings.TrimSpace(b.Profile.Location)
		p.Niche = strings.TrimSpace(b.Profile.Niche)
		break
	}
	if p.Kind == "" {
		p.Kind = models.EntityPerson
	}

	if p.Name == "" {
		for _, b := range blocks {
			if b.Link != nil {
				if t := strings.TrimSpace(b.Link.Title.Resolve(lang)); t != "" {
					p.Name = t
					break
				}
			}
			if b.Socials != nil && len(b.Socials.Links) > 0 {
				if n := strings.TrimSpace(b.Socials.Links[0].Network); n != "" {
					p.Name = n
					break
				}
			}
		}
	}

	return p
}

// autoAboutParts are the per-language sentence fragments AutoAbout composes.
// kk falls back to ru wording where no dedicated phrasing exists.
var autoAboutParts = map[models.Lang]struct {
	intro    string // before the subject
	services string // before the joined service list
	location string // before the location
}{
	models.LangRU: {intro: "Страница", services: "Услуги:", location: "Находится:"},
	models.LangEN: {intro: "Page of", services: "Services:", location: "Located in"},
	models.LangKK: {intro: "Парақша", services: "Қызметтер:", location: "Орналасқан:"},
}

// AutoAbout synthesizes a short descriptive sentence when the profile bio is
// empty, from whatever facts the blocks carry: niche, up to three service
// names, and location. Deterministic: identical blocks and language always
// produce the identical string.
func AutoAbout(p Profile, blocks []models.Block, lang models.Lang) string {
	if p.Bio != "" {
		return p.Bio
	}

	parts, ok := autoAboutParts[lang]
	if !ok {
		parts = autoAboutParts[models.LangRU]
	}

	var sb strings.Builder
	subject := p.Name
	if subject == "" {
		return ""
	}
	sb.WriteString(parts.intro)
	sb.WriteString(" ")
	sb.WriteString(subject)
	if p.Niche != "" {
		sb.WriteString(" — ")
		sb.WriteString(p.Niche)
	}
	sb.WriteString(".")

	if services := Services(blocks, lang); len(services) > 0 {
		names := make([]string, 0, 3)
		for _, s := range services {
			if s.Name == "" {
				continue
			}
			names = append(names, s.Name)
			if len(names) == 3 {
				break
			}
		}
		if len(names) > 0 {
			sb.WriteString(" ")
			sb.WriteString(parts.services)
			sb.WriteString(" ")
			sb.WriteString(strings.Join(names, ", "))
			sb.WriteString(".")
		}
	}

	if p.Location != "" {
		sb.WriteString(" ")
		sb.WriteString(parts.location)
		sb.WriteString(" ")
		sb.WriteString(p.Location)
		sb.WriteString(".")
	}

	return sb.String()
}

// FAQEntry is a resolved question/answer pair.
type FAQEntry struct {
	Question string
	Answer   string
}

// FAQEntries collects non-empty FAQ pairs from all FAQ blocks, in block
// order.
func FAQEntries(blocks []models.Block, lang models.Lang) []FAQEntry {
	var out []FAQEntry
	for _, b := range blocks {
		if b.FAQ == nil {
			continue
		}
		for _, item := range b.FAQ.Items {
			q := strings.TrimSpace(item.Question.Resolve(lang))
			a := strings.TrimSpace(item.Answer.Resolve(lang))
			if q == "" || a == "" {
				continue
			}
			out = append(out, FAQEntry{Question: q, Answer: a})
		}
	}
	return out
}

// EventEntry is a resolved event block.
type EventEntry struct {
	Title       string
	Description string
	StartAt     string // RFC3339, empty when the block has no date
	Location    string
	URL         string
}

// Events collects events from all event blocks, in block order. Events with
// no resolvable title are skipped; a missing date or location is carried as
// empty, not an error.
func Events(blocks []models.Block, lang models.Lang) []EventEntry {
	var out []EventEntry
	for _, b := range blocks {
		if b.Event == nil {
			continue
		}
		title := strings.TrimSpace(b.Event.Title.Resolve(lang))
		if title == "" {
			continue
		}
		e := EventEntry{
			Title:       title,
			Description: strings.TrimSpace(b.Event.Description.Resolve(lang)),
			Location:    strings.TrimSpace(b.Event.Location),
			URL:         b.Event.URL,
		}
		if !b.Event.StartAt.IsZero() {
			e.StartAt = b.Event.StartAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		}
		out = append(out, e)
	}
	return out
}

// ServiceEntry is one offered service with optional price.
type ServiceEntry struct {
	Name        string
	Description string
	Price       string
	Currency    string
}

// DefaultCurrency is used for pricing items that carry no currency of their
// own and whose pricing block has none either.
const DefaultCurrency = "KZT"

// Services collects service/price rows from pricing blocks and product
// blocks, in block order.
func Services(blocks []models.Block, lang models.Lang) []ServiceEntry {
	var out []ServiceEntry
	for _, b := range blocks {
		switch {
		case b.Pricing != nil:
			for _, item := range b.Pricing.Items {
				name := strings.TrimSpace(item.Name.Resolve(lang))
				if name == "" {
					continue
				}
				cur := item.Currency
				if cur == "" {
					cur = b.Pricing.Currency
				}
				if cur == "" {
					cur = DefaultCurrency
				}
				out = append(out, ServiceEntry{
					Name:        name,
					Description: strings.TrimSpace(item.Description.Resolve(lang)),
					Price:       strings.TrimSpace(item.Price),
					Currency:    cur,
				})
			}
		case b.Product != nil:
			name := strings.TrimSpace(b.Product.Title.Resolve(lang))
			if name == "" {
				continue
			}
			cur := b.Product.Currency
			if cur == "" {
				cur = DefaultCurrency
			}
			out = append(out, ServiceEntry{
				Name:        name,
				Description: strings.TrimSpace(b.Product.Description.Resolve(lang)),
				Price:       strings.TrimSpace(b.Product.Price),
				Currency:    cur,
			})
		}
	}
	return out
}

// LinkEntry is a resolved outbound link.
type LinkEntry struct {
	Title string
	URL   string
}

// Links collects outbound links (link and button blocks) with a usable URL,
// in block order.
func Links(blocks []models.Block, lang models.Lang) []LinkEntry {
	var out []LinkEntry
	for _, b := range blocks {
		if b.Link == nil || strings.TrimSpace(b.Link.URL) == "" {
			continue
		}
		title := strings.TrimSpace(b.Link.Title.Resolve(lang))
		if title == "" {
			title = b.Link.URL
		}
		out = append(out, LinkEntry{Title: title, URL: strings.TrimSpace(b.Link.URL)})
	}
	return out
}

// SameAs collects social and messenger profile URLs for entity linking in
// the main-entity schema.
func SameAs(blocks []models.Block) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(u string) {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		out = append(out, u)
	}
	for _, b := range blocks {
		if b.Socials != nil {
			for _, l := range b.Socials.Links {
				add(l.URL)
			}
		}
		if b.Messenger != nil {
			add(b.Messenger.URL)
		}
	}
	return out
}

// HasContactMechanism reports whether the page offers any outbound link,
// messenger, or social contact. Feeds the quality gate.
func HasContactMechanism(blocks []models.Block) bool {
	for _, b := range blocks {
		if b.Link != nil && strings.TrimSpace(b.Link.URL) != "" {
			return true
		}
		if b.Messenger != nil && strings.TrimSpace(b.Messenger.URL) != "" {
			return true
		}
		if b.Socials != nil {
			for _, l := range b.Socials.Links {
				if strings.TrimSpace(l.URL) != "" {
					return true
				}
			}
		}
	}
	return false
}
