// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"
	"time"

	gallerystore "github.com/dalemusser/linkfolio/internal/app/store/gallery"
	pagestore "github.com/dalemusser/linkfolio/internal/app/store/pages"
	"github.com/dalemusser/linkfolio/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll seeds default data if not already present.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedDemoPage(ctx, db, logger); err != nil {
		return err
	}
	if err := seedGallery(ctx, db, logger); err != nil {
		return err
	}
	return nil
}

// seedDemoPage creates the demo page new deployments can inspect. It carries
// one of every SEO-relevant block so the crawler output is exercised end to
// end on a fresh install.
func seedDemoPage(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := pagestore.New(db)

	const slug = "demo"
	exists, err := store.Exists(ctx, slug)
	if err != nil {
		logger.Error("failed to check if demo page exists", zap.Error(err))
		return err
	}
	if exists {
		return nil
	}

	page := models.Page{
		Slug:      slug,
		Published: true,
		Blocks: []models.Block{
			{Type: models.BlockProfile, Profile: &models.ProfileContent{
				Name: models.LocalizedText{
					"ru": "Демо-страница",
					"en": "Demo page",
					"kk": "Демо-бет",
				},
				Bio: models.LocalizedText{
					"ru": "Пример страницы LinkFolio: профиль, ссылки, услуги, вопросы и ответы и мероприятие на одной странице.",
					"en": "A LinkFolio example page: profile, links, services, FAQ, and an event on a single page.",
				},
				Kind:  models.EntityPerson,
				Niche: "demo",
			}},
			{Type: models.BlockLink, Link: &models.LinkContent{
				Title: models.LocalizedText{"ru": "Телеграм", "en": "Telegram"},
				URL:   "https://t.me/linkfolio_demo",
			}},
			{Type: models.BlockPricing, Pricing: &models.PricingContent{
				Currency: "KZT",
				Items: []models.PriceItem{
					{Name: models.LocalizedText{"ru": "Консультация", "en": "Consultation"}, Price: "10000"},
					{Name: models.LocalizedText{"ru": "Полный пакет", "en": "Full package"}, Price: "45000"},
				},
			}},
			{Type: models.BlockFAQ, FAQ: &models.FAQContent{Items: []models.FAQItem{
				{
					Question: models.LocalizedText{"ru": "Что это за страница?", "en": "What is this page?"},
					Answer:   models.LocalizedText{"ru": "Демонстрация возможностей конструктора.", "en": "A demonstration of the builder."},
				},
			}}},
			{Type: models.BlockEvent, Event: &models.EventContent{
				Title:    models.LocalizedText{"ru": "Открытый вебинар", "en": "Open webinar"},
				StartAt:  time.Now().UTC().AddDate(0, 1, 0).Truncate(time.Hour),
				Location: "Online",
			}},
		},
	}

	if err := store.Upsert(ctx, page); err != nil {
		logger.Error("failed to seed demo page", zap.Error(err))
		return err
	}
	logger.Info("seeded demo page", zap.String("slug", slug))
	return nil
}

// seedGallery populates the gallery listing with the demo page so the
// listing is never empty on a fresh install.
func seedGallery(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := gallerystore.New(db)

	item := models.GalleryItem{
		Slug:        "demo",
		Title:       "Demo page",
		Description: "A LinkFolio example page with every block type.",
		Niche:       "demo",
		Visible:     true,
	}

	if err := store.Upsert(ctx, item); err != nil {
		logger.Error("failed to seed gallery item", zap.String("slug", item.Slug), zap.Error(err))
		return err
	}
	logger.Info("seeded gallery item", zap.String("slug", item.Slug))
	return nil
}
