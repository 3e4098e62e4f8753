// internal/domain/models/gallery.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem is one published page surfaced on the public gallery listing.
// Title and description are denormalized from the page at publish time, so
// the gallery renders without loading every page's blocks.
type GalleryItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug        string             `bson:"slug" json:"slug"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	AvatarURL   string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Niche       string             `bson:"niche,omitempty" json:"niche,omitempty"`
	Visible     bool               `bson:"visible" json:"visible"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// GalleryPageSize caps both the rendered gallery grid and the ItemList
// schema, keeping visible HTML and structured data consistent.
const GalleryPageSize = 10
