package pagestore

import (
	"testing"

	"github.com/dalemusser/linkfolio/internal/domain/models"
	"github.com/dalemusser/linkfolio/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	if store == nil {
		t.Fatal("New() returned nil")
	}
}

func testPage(slug string, published bool) models.Page {
	return models.Page{
		Slug:      slug,
		Published: published,
		Blocks: []models.Block{
			{Type: models.BlockProfile, Profile: &models.ProfileContent{
				Name: models.Plain("Анна"),
				Bio:  models.Plain("Мастер маникюра в Алматы"),
			}},
			{Type: models.BlockLink, Link: &models.LinkContent{
				Title: models.Plain("Запись"),
				URL:   "https://t.me/anna",
			}},
		},
	}
}

func TestStore_Upsert_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Upsert(ctx, testPage("anna-nails", true)); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := store.GetBySlug(ctx, "anna-nails")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Slug != "anna-nails" {
		t.Errorf("Slug = %q", got.Slug)
	}
	if !got.Published {
		t.Error("Published = false, want true")
	}
	if len(got.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(got.Blocks))
	}
	if got.Blocks[0].Profile == nil {
		t.Fatal("first block lost its profile payload")
	}
	if name := got.Blocks[0].Profile.Name.Resolve(models.LangRU); name != "Анна" {
		t.Errorf("profile name = %q", name)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set on insert")
	}
}

func TestStore_Upsert_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Upsert(ctx, testPage("anna-nails", false)); err != nil {
		t.Fatalf("initial Upsert() error = %v", err)
	}
	first, err := store.GetBySlug(ctx, "anna-nails")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}

	updated := testPage("anna-nails", true)
	updated.Blocks = updated.Blocks[:1]
	if err := store.Upsert(ctx, updated); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	got, err := store.GetBySlug(ctx, "anna-nails")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.ID != first.ID {
		t.Error("upsert by slug created a second document")
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Error("CreatedAt changed on update")
	}
	if len(got.Blocks) != 1 {
		t.Errorf("got %d blocks after update, want 1", len(got.Blocks))
	}
	if !got.Published {
		t.Error("Published not updated")
	}
}

func TestStore_GetBySlug_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetBySlug(ctx, "no-such-page")
	if err != mongo.ErrNoDocuments {
		t.Errorf("error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_GetPublishedBySlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Upsert(ctx, testPage("draft-page", false)); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.Upsert(ctx, testPage("live-page", true)); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	if _, err := store.GetPublishedBySlug(ctx, "draft-page"); err != mongo.ErrNoDocuments {
		t.Errorf("draft page error = %v, want mongo.ErrNoDocuments", err)
	}
	if _, err := store.GetPublishedBySlug(ctx, "live-page"); err != nil {
		t.Errorf("live page error = %v", err)
	}
}

func TestStore_ListPublished(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, p := range []models.Page{
		testPage("first", true),
		testPage("second", true),
		testPage("hidden", false),
	} {
		if err := store.Upsert(ctx, p); err != nil {
			t.Fatalf("Upsert(%s) error = %v", p.Slug, err)
		}
	}

	got, err := store.ListPublished(ctx, 0)
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d pages, want 2", len(got))
	}
	for _, p := range got {
		if !p.Published {
			t.Errorf("unpublished page %q in listing", p.Slug)
		}
	}

	limited, err := store.ListPublished(ctx, 1)
	if err != nil {
		t.Fatalf("ListPublished(1) error = %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d pages with limit 1", len(limited))
	}
}

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Upsert(ctx, testPage("anna-nails", true)); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	exists, err := store.Exists(ctx, "anna-nails")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false for stored page")
	}

	exists, err = store.Exists(ctx, "missing")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true for missing page")
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Upsert(ctx, testPage("anna-nails", true)); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.Delete(ctx, "anna-nails"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.GetBySlug(ctx, "anna-nails"); err != mongo.ErrNoDocuments {
		t.Errorf("error after delete = %v, want mongo.ErrNoDocuments", err)
	}
}
