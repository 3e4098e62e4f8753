// internal/app/store/pages/pagestore.go
package pagestore

import (
	"context"
	"time"

	"github.com/dalemusser/linkfolio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the pages collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new page store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("pages")}
}

// GetBySlug returns a page by its slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Page, error) {
	var page models.Page
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&page)
	if err != nil {
		return models.Page{}, err
	}
	return page, nil
}

// GetPublishedBySlug returns a page by slug only if it is published. Crawler
// and meta endpoints use this so draft pages never leak.
func (s *Store) GetPublishedBySlug(ctx context.Context, slug string) (models.Page, error) {
	var page models.Page
	err := s.c.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(&page)
	if err != nil {
		return models.Page{}, err
	}
	return page, nil
}

// Upsert creates or updates a page by slug. CreatedAt is set on first insert
// only; UpdatedAt advances on every write.
func (s *Store) Upsert(ctx context.Context, page models.Page) error {
	now := time.Now().UTC()

	filter := bson.M{"slug": page.Slug}
	update := bson.M{
		"$set": bson.M{
			"blocks":     page.Blocks,
			"published":  page.Published,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"slug":       page.Slug,
			"owner_id":   page.OwnerID,
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// ListPublished returns published pages ordered by most recent update.
// A limit of 0 means no limit; the sitemap uses this path.
func (s *Store) ListPublished(ctx context.Context, limit int64) ([]models.Page, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.c.Find(ctx, bson.M{"published": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var pages []models.Page
	if err := cur.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// Exists checks if a page with the given slug exists.
func (s *Store) Exists(ctx context.Context, slug string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a page by slug.
func (s *Store) Delete(ctx context.Context, slug string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"slug": slug})
	return err
}
