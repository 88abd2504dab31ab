package recipebook

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/O-X-E-Y/recipe-book/recipe"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	return s, func() { s.Close() }
}

// testDoc builds a minimal valid recipe document with the given title.
func testDoc(title string) string {
	return fmt.Sprintf("%s\n\n---ingredients\n1 cup water\n\n---steps\nBoil it.\n", title)
}

func TestNewStore(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if s == nil {
		t.Fatal("store should not be nil")
	}
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSaveAndGetRecipe(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entry := RecipeEntry{
		Slug:      "tea",
		Source:    testDoc("A Cup of Tea"),
		Date:      "2024-01-15",
		Published: true,
	}

	if err := s.SaveRecipe(entry); err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}

	got, err := s.GetRecipe("tea")
	if err != nil {
		t.Fatalf("GetRecipe failed: %v", err)
	}

	if got.Slug != "tea" {
		t.Errorf("Slug = %q, want %q", got.Slug, "tea")
	}
	if got.Title != "A Cup of Tea" {
		t.Errorf("Title = %q, want the parsed document title %q", got.Title, "A Cup of Tea")
	}
	if got.Source != entry.Source {
		t.Errorf("Source = %q, want %q", got.Source, entry.Source)
	}
	if got.Date != entry.Date {
		t.Errorf("Date = %q, want %q", got.Date, entry.Date)
	}
	if got.Link != "/recipe/tea" {
		t.Errorf("Link = %q, want %q", got.Link, "/recipe/tea")
	}
	if !got.Published {
		t.Error("Published should be true")
	}
}

func TestSaveRecipeUpdate(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entry := RecipeEntry{
		Slug:      "tea",
		Source:    testDoc("Original Tea"),
		Date:      "2024-01-01",
		Published: true,
	}
	if err := s.SaveRecipe(entry); err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}

	entry.Source = testDoc("Better Tea")
	if err := s.SaveRecipe(entry); err != nil {
		t.Fatalf("SaveRecipe update failed: %v", err)
	}

	got, err := s.GetRecipe("tea")
	if err != nil {
		t.Fatalf("GetRecipe failed: %v", err)
	}
	if got.Title != "Better Tea" {
		t.Errorf("Title = %q, want %q", got.Title, "Better Tea")
	}
}

func TestSaveRecipeRejectsInvalidSource(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entry := RecipeEntry{
		Slug:      "broken",
		Source:    "Broken\n\n---ingredients\n1 cup water\n\nBoil it.\n",
		Date:      "2024-01-01",
		Published: true,
	}

	err := s.SaveRecipe(entry)
	if !errors.Is(err, recipe.ErrExpectedStepsStart) {
		t.Fatalf("SaveRecipe error = %v, want ErrExpectedStepsStart", err)
	}

	// nothing should have been stored
	if _, err := s.GetRecipeAny("broken"); err != sql.ErrNoRows {
		t.Errorf("GetRecipeAny after failed save = %v, want sql.ErrNoRows", err)
	}
}

func TestGetRecipeNotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.GetRecipe("nonexistent")
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestGetRecipeUnpublished(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entry := RecipeEntry{
		Slug:      "draft",
		Source:    testDoc("Draft"),
		Date:      "2024-01-01",
		Published: false,
	}
	if err := s.SaveRecipe(entry); err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}

	// GetRecipe should not find drafts
	if _, err := s.GetRecipe("draft"); err != sql.ErrNoRows {
		t.Errorf("GetRecipe should return ErrNoRows for drafts, got %v", err)
	}

	// GetRecipeAny should find them
	got, err := s.GetRecipeAny("draft")
	if err != nil {
		t.Fatalf("GetRecipeAny failed: %v", err)
	}
	if got.Published {
		t.Error("Published should be false")
	}
}

func TestListRecipes(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entries := []RecipeEntry{
		{Slug: "zebra", Source: testDoc("Zebra Cake"), Date: "2024-01-01", Published: true},
		{Slug: "apple", Source: testDoc("apple pie"), Date: "2024-01-02", Published: true},
		{Slug: "bread", Source: testDoc("Bread"), Date: "2024-01-03", Published: true},
		{Slug: "draft", Source: testDoc("Draft"), Date: "2024-01-04", Published: false},
	}
	for _, e := range entries {
		if err := s.SaveRecipe(e); err != nil {
			t.Fatalf("SaveRecipe failed: %v", err)
		}
	}

	got, err := s.ListRecipes()
	if err != nil {
		t.Fatalf("ListRecipes failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("ListRecipes count = %d, want 3 (excluding drafts)", len(got))
	}

	// ordered by title, case-insensitive
	want := []string{"apple", "bread", "zebra"}
	for n, slug := range want {
		if got[n].Slug != slug {
			t.Errorf("ListRecipes[%d] = %q, want %q", n, got[n].Slug, slug)
		}
	}
}

func TestListAllRecipes(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entries := []RecipeEntry{
		{Slug: "old", Source: testDoc("Old"), Date: "2024-01-01", Published: true},
		{Slug: "new", Source: testDoc("New"), Date: "2024-03-01", Published: false},
	}
	for _, e := range entries {
		if err := s.SaveRecipe(e); err != nil {
			t.Fatalf("SaveRecipe failed: %v", err)
		}
	}

	got, err := s.ListAllRecipes()
	if err != nil {
		t.Fatalf("ListAllRecipes failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("ListAllRecipes count = %d, want 2 (including drafts)", len(got))
	}
	// newest first
	if got[0].Slug != "new" {
		t.Errorf("ListAllRecipes[0] = %q, want %q", got[0].Slug, "new")
	}
}

func TestDeleteRecipe(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entry := RecipeEntry{Slug: "gone", Source: testDoc("Gone"), Date: "2024-01-01", Published: true}
	if err := s.SaveRecipe(entry); err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}

	if err := s.DeleteRecipe("gone"); err != nil {
		t.Fatalf("DeleteRecipe failed: %v", err)
	}

	if _, err := s.GetRecipe("gone"); err != sql.ErrNoRows {
		t.Errorf("recipe should not exist after delete, got err: %v", err)
	}
}

func TestDeleteNonexistentRecipe(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if err := s.DeleteRecipe("nonexistent"); err != nil {
		t.Errorf("DeleteRecipe on nonexistent should not error, got: %v", err)
	}
}

func TestSeedRecipes(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	n, err := s.SeedRecipes(BundledRecipes, "recipes")
	if err != nil {
		t.Fatalf("SeedRecipes failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("SeedRecipes inserted %d, want 3", n)
	}

	// every bundled document must parse and be published
	entries, err := s.ListRecipes()
	if err != nil {
		t.Fatalf("ListRecipes failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ListRecipes count = %d, want 3", len(entries))
	}
	for _, e := range entries {
		if _, err := recipe.Parse(e.Source); err != nil {
			t.Errorf("bundled recipe %q does not parse: %v", e.Slug, err)
		}
	}

	// seeding again must be a no-op
	n, err = s.SeedRecipes(BundledRecipes, "recipes")
	if err != nil {
		t.Fatalf("second SeedRecipes failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second SeedRecipes inserted %d, want 0", n)
	}
}

func TestImages(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	img := Image{
		Filename:     "stew.jpg",
		OriginalName: "IMG_1234.jpeg",
		Width:        800,
		Height:       600,
		Size:         123456,
		UploadedAt:   "2024-01-15T10:00:00Z",
	}
	if err := s.SaveImage(img); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	images, err := s.ListImages()
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("ListImages count = %d, want 1", len(images))
	}
	if images[0] != img {
		t.Errorf("ListImages[0] = %+v, want %+v", images[0], img)
	}

	if err := s.DeleteImage("stew.jpg"); err != nil {
		t.Fatalf("DeleteImage failed: %v", err)
	}
	images, err = s.ListImages()
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("ListImages count after delete = %d, want 0", len(images))
	}
}
