package recipebook

import (
	"database/sql"
	"sync"
	"time"

	"github.com/O-X-E-Y/recipe-book/recipe"
)

// ErrNotFound is returned when a requested recipe does not exist.
var ErrNotFound = sql.ErrNoRows

// RecipeCache is an in-memory cache of published recipes with TTL. It
// holds the stored entries together with their parsed documents, so a
// page render never re-parses a recipe.
type RecipeCache struct {
	mu      sync.RWMutex
	entries []RecipeEntry
	parsed  map[string]recipe.Recipe
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewRecipeCache creates a RecipeCache backed by the given Store.
func NewRecipeCache(s *Store, ttl time.Duration) *RecipeCache {
	return &RecipeCache{store: s, ttl: ttl}
}

func (c *RecipeCache) valid() bool {
	return c.parsed != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *RecipeCache) Invalidate() {
	c.mu.Lock()
	c.entries = nil
	c.parsed = nil
	c.mu.Unlock()
}

// load refreshes the cache from the store. Entries whose source no
// longer parses are left out of the public listing.
func (c *RecipeCache) load() error {
	if c.valid() {
		return nil
	}
	entries, err := c.store.ListRecipes()
	if err != nil {
		return err
	}
	parsed := make(map[string]recipe.Recipe, len(entries))
	kept := entries[:0]
	for _, e := range entries {
		r, err := recipe.Parse(e.Source)
		if err != nil {
			continue
		}
		parsed[e.Slug] = r
		kept = append(kept, e)
	}
	c.entries = kept
	c.parsed = parsed
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns the cached entries and parsed documents after
// ensuring the cache is fresh. It tries a read lock first; only takes
// a write lock if a reload is needed.
func (c *RecipeCache) ensureLoaded() ([]RecipeEntry, map[string]recipe.Recipe, error) {
	c.mu.RLock()
	if c.valid() {
		entries, parsed := c.entries, c.parsed
		c.mu.RUnlock()
		return entries, parsed, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.entries, c.parsed, nil
}

// ListRecipes returns the published recipes in listing order.
func (c *RecipeCache) ListRecipes() ([]RecipeEntry, error) {
	entries, _, err := c.ensureLoaded()
	return entries, err
}

// GetRecipe returns a published recipe's entry and parsed document by
// slug.
func (c *RecipeCache) GetRecipe(slug string) (RecipeEntry, recipe.Recipe, error) {
	entries, parsed, err := c.ensureLoaded()
	if err != nil {
		return RecipeEntry{}, recipe.Recipe{}, err
	}
	r, ok := parsed[slug]
	if !ok {
		return RecipeEntry{}, recipe.Recipe{}, ErrNotFound
	}
	for _, e := range entries {
		if e.Slug == slug {
			return e, r, nil
		}
	}
	return RecipeEntry{}, recipe.Recipe{}, ErrNotFound
}
