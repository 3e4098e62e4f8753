// internal/domain/models/block.go
package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// BlockType discriminates the content payload carried by a Block.
type BlockType string

// Known block types. A page is an ordered sequence of these; array order is
// display order and the only ordering guarantee.
const (
	BlockProfile     BlockType = "profile"
	BlockLink        BlockType = "link"
	BlockButton      BlockType = "button"
	BlockText        BlockType = "text"
	BlockProduct     BlockType = "product"
	BlockPricing     BlockType = "pricing"
	BlockFAQ         BlockType = "faq"
	BlockEvent       BlockType = "event"
	BlockTestimonial BlockType = "testimonial"
	BlockMessenger   BlockType = "messenger"
	BlockSocials     BlockType = "socials"
	BlockVideo       BlockType = "video"
	BlockCountdown   BlockType = "countdown"
	BlockSeparator   BlockType = "separator"
	BlockCarousel    BlockType = "carousel"
)

// EntityKind distinguishes a personal page from an organization page.
type EntityKind string

const (
	EntityPerson       EntityKind = "person"
	EntityOrganization EntityKind = "organization"
)

// Block is one content unit of a page, a tagged variant: Type selects which
// payload pointer is non-nil. Unknown types decode to an inert block with no
// payload; malformed payloads degrade to zero values rather than failing the
// page load.
//
// On the wire (BSON and JSON) a block is {type, content} with the content
// shape depending on type; the variant fields below are the normalized form
// used everywhere past the store boundary.
type Block struct {
	Type BlockType

	Profile     *ProfileContent
	Link        *LinkContent
	Text        *TextContent
	Product     *ProductContent
	Pricing     *PricingContent
	FAQ         *FAQContent
	Event       *EventContent
	Testimonial *TestimonialContent
	Messenger   *MessengerContent
	Socials     *SocialsContent
	Video       *VideoContent
	Countdown   *CountdownContent
	Carousel    *CarouselContent
}

// ProfileContent seeds the page identity: display name, bio, avatar, and
// whether the page represents a person or an organization.
type ProfileContent struct {
	Name     LocalizedText `bson:"name,omitempty" json:"name,omitempty"`
	Bio      LocalizedText `bson:"bio,omitempty" json:"bio,omitempty"`
	Avatar   string        `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Kind     EntityKind    `bson:"kind,omitempty" json:"kind,omitempty"`
	Location string        `bson:"location,omitempty" json:"location,omitempty"`
	Niche    string        `bson:"niche,omitempty" json:"niche,omitempty"`
}

// LinkContent is an outbound link (also used for button blocks).
type LinkContent struct {
	Title LocalizedText `bson:"title,omitempty" json:"title,omitempty"`
	URL   string        `bson:"url,omitempty" json:"url,omitempty"`
}

// TextContent is a free-form rich text section.
type TextContent struct {
	Body LocalizedText `bson:"body,omitempty" json:"body,omitempty"`
}

// ProductContent is a single product card.
type ProductContent struct {
	Title       LocalizedText `bson:"title,omitempty" json:"title,omitempty"`
	Description LocalizedText `bson:"description,omitempty" json:"description,omitempty"`
	Price       string        `bson:"price,omitempty" json:"price,omitempty"`
	Currency    string        `bson:"currency,omitempty" json:"currency,omitempty"`
	URL         string        `bson:"url,omitempty" json:"url,omitempty"`
	Image       string        `bson:"image,omitempty" json:"image,omitempty"`
}

// PriceItem is one row of a pricing table.
type PriceItem struct {
	Name        LocalizedText `bson:"name,omitempty" json:"name,omitempty"`
	Description LocalizedText `bson:"description,omitempty" json:"description,omitempty"`
	Price       string        `bson:"price,omitempty" json:"price,omitempty"`
	Currency    string        `bson:"currency,omitempty" json:"currency,omitempty"`
}

// PricingContent is a services/pricing table.
type PricingContent struct {
	Items    []PriceItem `bson:"items,omitempty" json:"items,omitempty"`
	Currency string      `bson:"currency,omitempty" json:"currency,omitempty"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question LocalizedText `bson:"question,omitempty" json:"question,omitempty"`
	Answer   LocalizedText `bson:"answer,omitempty" json:"answer,omitempty"`
}

// FAQContent is a frequently-asked-questions section.
type FAQContent struct {
	Items []FAQItem `bson:"items,omitempty" json:"items,omitempty"`
}

// EventContent is a dated event with a plain-text location.
type EventContent struct {
	Title       LocalizedText `bson:"title,omitempty" json:"title,omitempty"`
	Description LocalizedText `bson:"description,omitempty" json:"description,omitempty"`
	StartAt     time.Time     `bson:"start_at,omitempty" json:"start_at,omitempty"`
	Location    string        `bson:"location,omitempty" json:"location,omitempty"`
	URL         string        `bson:"url,omitempty" json:"url,omitempty"`
}

// TestimonialContent is a quoted review.
type TestimonialContent struct {
	Author string        `bson:"author,omitempty" json:"author,omitempty"`
	Quote  LocalizedText `bson:"quote,omitempty" json:"quote,omitempty"`
}

// MessengerContent is a direct-contact link (WhatsApp, Telegram, etc.).
type MessengerContent struct {
	Network string `bson:"network,omitempty" json:"network,omitempty"`
	URL     string `bson:"url,omitempty" json:"url,omitempty"`
}

// SocialLink is one social network profile link.
type SocialLink struct {
	Network string `bson:"network,omitempty" json:"network,omitempty"`
	URL     string `bson:"url,omitempty" json:"url,omitempty"`
}

// SocialsContent is a row of social profile links.
type SocialsContent struct {
	Links []SocialLink `bson:"links,omitempty" json:"links,omitempty"`
}

// VideoContent embeds an external video.
type VideoContent struct {
	Title LocalizedText `bson:"title,omitempty" json:"title,omitempty"`
	URL   string        `bson:"url,omitempty" json:"url,omitempty"`
}

// CountdownContent counts down to a moment.
type CountdownContent struct {
	Until time.Time `bson:"until,omitempty" json:"until,omitempty"`
}

// CarouselContent is an image strip.
type CarouselContent struct {
	Images []string `bson:"images,omitempty" json:"images,omitempty"`
}

// wireBlock is the persisted {type, content} shape.
type wireBlock struct {
	Type    string   `bson:"type"`
	Content bson.Raw `bson:"content,omitempty"`
}

// UnmarshalBSON decodes the persisted {type, content} document into the
// tagged variant. Decoding is total: unknown types yield an inert block and
// payload decode failures leave the payload at its zero value.
func (b *Block) UnmarshalBSON(data []byte) error {
	var raw wireBlock
	if err := bson.Unmarshal(data, &raw); err != nil {
		// A block that cannot be read at all is still not an error for the
		// page as a whole; it becomes an inert separator-like unit.
		*b = Block{Type: BlockType(raw.Type)}
		return nil
	}
	*b = decodeBlock(BlockType(raw.Type), raw.Content)
	return nil
}

// MarshalBSON re-encodes the variant into the persisted {type, content} shape.
func (b Block) MarshalBSON() ([]byte, error) {
	return bson.Marshal(bson.M{
		"type":    string(b.Type),
		"content": b.payload(),
	})
}

// MarshalJSON mirrors the wire shape for API responses.
func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":    string(b.Type),
		"content": b.payload(),
	})
}

// payload returns the active variant payload, or nil for payload-free blocks.
func (b Block) payload() any {
	switch {
	case b.Profile != nil:
		return b.Profile
	case b.Link != nil:
		return b.Link
	case b.Text != nil:
		return b.Text
	case b.Product != nil:
		return b.Product
	case b.Pricing != nil:
		return b.Pricing
	case b.FAQ != nil:
		return b.FAQ
	case b.Event != nil:
		return b.Event
	case b.Testimonial != nil:
		return b.Testimonial
	case b.Messenger != nil:
		return b.Messenger
	case b.Socials != nil:
		return b.Socials
	case b.Video != nil:
		return b.Video
	case b.Countdown != nil:
		return b.Countdown
	case b.Carousel != nil:
		return b.Carousel
	}
	return nil
}

// decodeBlock normalizes one raw block at the store boundary. Every branch
// tolerates a missing or malformed content document.
func decodeBlock(t BlockType, content bson.Raw) Block {
	b := Block{Type: t}

	unmarshal := func(v any) {
		if len(content) == 0 {
			return
		}
		// Best effort: a payload that does not match its declared shape
		// decodes to zero values, never to a page-level failure.
		_ = bson.Unmarshal(content, v)
	}

	switch t {
	case BlockProfile:
		b.Profile = &ProfileContent{}
		unmarshal(b.Profile)
	case BlockLink, BlockButton:
		b.Link = &LinkContent{}
		unmarshal(b.Link)
	case BlockText:
		b.Text = &TextContent{}
		unmarshal(b.Text)
	case BlockProduct:
		b.Product = &ProductContent{}
		unmarshal(b.Product)
	case BlockPricing:
		b.Pricing = &PricingContent{}
		unmarshal(b.Pricing)
	case BlockFAQ:
		b.FAQ = &FAQContent{}
		unmarshal(b.FAQ)
	case BlockEvent:
		b.Event = &EventContent{}
		unmarshal(b.Event)
	case BlockTestimonial:
		b.Testimonial = &TestimonialContent{}
		unmarshal(b.Testimonial)
	case BlockMessenger:
		b.Messenger = &MessengerContent{}
		unmarshal(b.Messenger)
	case BlockSocials:
		b.Socials = &SocialsContent{}
		unmarshal(b.Socials)
	case BlockVideo:
		b.Video = &VideoContent{}
		unmarshal(b.Video)
	case BlockCountdown:
		b.Countdown = &CountdownContent{}
		unmarshal(b.Countdown)
	case BlockCarousel:
		b.Carousel = &CarouselContent{}
		unmarshal(b.Carousel)
	case BlockSeparator:
		// no payload
	default:
		// Unknown type: keep the tag for round-tripping, carry no payload.
	}
	return b
}
