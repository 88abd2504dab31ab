package recipebook

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/O-X-E-Y/recipe-book/recipe"
)

// Store wraps a SQLite database and provides CRUD operations for
// recipe documents and uploaded images.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Enable WAL mode for concurrent read/write access, set a busy timeout
	// so writers wait instead of returning SQLITE_BUSY immediately, and tune
	// performance: synchronous=NORMAL is safe with WAL and avoids an fsync
	// per transaction; larger cache and mmap reduce disk I/O.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
		PRAGMA mmap_size=268435456;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS recipes (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    source TEXT NOT NULL,
    date TEXT NOT NULL,
    published INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS images (
    filename TEXT PRIMARY KEY,
    original_name TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    size INTEGER NOT NULL,
    uploaded_at TEXT NOT NULL
);
`)
	return err
}

// ListRecipes returns all published recipes ordered by title.
func (s *Store) ListRecipes() ([]RecipeEntry, error) {
	rows, err := s.db.Query(`SELECT slug, title, source, date, published FROM recipes WHERE published = 1 ORDER BY title COLLATE NOCASE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecipes(rows)
}

// ListAllRecipes returns every recipe (published and drafts) ordered
// by date descending, newest edits first.
func (s *Store) ListAllRecipes() ([]RecipeEntry, error) {
	rows, err := s.db.Query(`SELECT slug, title, source, date, published FROM recipes ORDER BY date DESC, title COLLATE NOCASE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecipes(rows)
}

func scanRecipes(rows *sql.Rows) ([]RecipeEntry, error) {
	var entries []RecipeEntry
	for rows.Next() {
		var slug, title, source, date string
		var published int
		if err := rows.Scan(&slug, &title, &source, &date, &published); err != nil {
			return nil, err
		}
		entries = append(entries, RecipeEntry{
			Slug:      slug,
			Title:     title,
			Source:    source,
			Date:      date,
			Link:      "/recipe/" + slug,
			Published: published == 1,
		})
	}
	return entries, rows.Err()
}

// GetRecipe returns a single published recipe by slug.
func (s *Store) GetRecipe(slug string) (RecipeEntry, error) {
	return s.getRecipe(slug, true)
}

// GetRecipeAny returns a recipe by slug regardless of published status
// (for admin).
func (s *Store) GetRecipeAny(slug string) (RecipeEntry, error) {
	return s.getRecipe(slug, false)
}

func (s *Store) getRecipe(slug string, publishedOnly bool) (RecipeEntry, error) {
	query := `SELECT title, source, date, published FROM recipes WHERE slug = ?`
	if publishedOnly {
		query += ` AND published = 1`
	}
	var title, source, date string
	var published int
	err := s.db.QueryRow(query, slug).Scan(&title, &source, &date, &published)
	if err != nil {
		return RecipeEntry{}, err
	}
	return RecipeEntry{
		Slug:      slug,
		Title:     title,
		Source:    source,
		Date:      date,
		Link:      "/recipe/" + slug,
		Published: published == 1,
	}, nil
}

// SaveRecipe parses the entry's source and upserts it. The stored
// title always comes from the parsed document, so the store never
// holds a published recipe the site cannot render.
func (s *Store) SaveRecipe(e RecipeEntry) error {
	parsed, err := recipe.Parse(e.Source)
	if err != nil {
		return fmt.Errorf("parse recipe %q: %w", e.Slug, err)
	}
	published := 0
	if e.Published {
		published = 1
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO recipes (slug, title, source, date, published) VALUES (?, ?, ?, ?, ?)`,
		e.Slug, parsed.Title, e.Source, e.Date, published)
	return err
}

// DeleteRecipe removes a recipe by slug.
func (s *Store) DeleteRecipe(slug string) error {
	_, err := s.db.Exec(`DELETE FROM recipes WHERE slug = ?`, slug)
	return err
}

// SeedRecipes inserts every .txt document from fsys that the store
// does not already have, using the file's base name as the slug.
// Existing entries are never overwritten. It returns the number of
// recipes inserted.
func (s *Store) SeedRecipes(fsys fs.FS, dir string) (int, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return 0, err
	}
	date := time.Now().Format("2006-01-02")
	inserted := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".txt") {
			continue
		}
		slug := strings.TrimSuffix(name, ".txt")
		if _, err := s.GetRecipeAny(slug); err == nil {
			continue
		} else if !errors.Is(err, sql.ErrNoRows) {
			return inserted, err
		}
		source, err := fs.ReadFile(fsys, dir+"/"+name)
		if err != nil {
			return inserted, err
		}
		err = s.SaveRecipe(RecipeEntry{
			Slug:      slug,
			Source:    string(source),
			Date:      date,
			Published: true,
		})
		if err != nil {
			return inserted, fmt.Errorf("seed %q: %w", slug, err)
		}
		inserted++
	}
	return inserted, nil
}

// SaveImage records an uploaded image's metadata.
func (s *Store) SaveImage(img Image) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO images (filename, original_name, width, height, size, uploaded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		img.Filename, img.OriginalName, img.Width, img.Height, img.Size, img.UploadedAt)
	return err
}

// ListImages returns all uploaded images, newest first.
func (s *Store) ListImages() ([]Image, error) {
	rows, err := s.db.Query(`SELECT filename, original_name, width, height, size, uploaded_at FROM images ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.Filename, &img.OriginalName, &img.Width, &img.Height, &img.Size, &img.UploadedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// DeleteImage removes an image's metadata by filename.
func (s *Store) DeleteImage(filename string) error {
	_, err := s.db.Exec(`DELETE FROM images WHERE filename = ?`, filename)
	return err
}
