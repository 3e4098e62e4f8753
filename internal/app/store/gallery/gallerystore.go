// internal/app/store/gallery/gallerystore.go
package gallerystore

import (
	"context"
	"time"

	"github.com/dalemusser/linkfolio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the gallery_items collection: the curated set of
// example pages shown on the public gallery listing.
type Store struct {
	c *mongo.Collection
}

// New creates a new gallery store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("gallery_items")}
}

// ListVisible returns visible gallery items, newest first. niche filters
// when non-empty; limit of 0 means no limit.
func (s *Store) ListVisible(ctx context.Context, niche string, limit int64) ([]models.GalleryItem, error) {
	filter := bson.M{"visible": true}
	if niche != "" {
		filter["niche"] = niche
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.GalleryItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert creates or updates a gallery item by slug.
func (s *Store) Upsert(ctx context.Context, item models.GalleryItem) error {
	filter := bson.M{"slug": item.Slug}
	update := bson.M{
		"$set": bson.M{
			"title":       item.Title,
			"description": item.Description,
			"avatar_url":  item.AvatarURL,
			"niche":       item.Niche,
			"visible":     item.Visible,
			"updated_at":  time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"_id":  primitive.NewObjectID(),
			"slug": item.Slug,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Delete removes a gallery item by slug.
func (s *Store) Delete(ctx context.Context, slug string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"slug": slug})
	return err
}
