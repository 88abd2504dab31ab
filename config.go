package recipebook

import "time"

// SiteConfig holds all configuration for a recipe-book site.
type SiteConfig struct {
	Name        string // Site name (default "Recipe Book")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/recipes.db")

	AnalyticsEnabled      bool   // Enable recipe view tracking
	AnalyticsDatabasePath string // Analytics SQLite path (default "data/analytics.db")
	AnalyticsRetainDays   int    // Days of view history to keep (default 365)

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	SeedBundled    bool          // Insert the bundled recipes on first run
	RecipeCacheTTL time.Duration // Parsed recipe cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Recipe Book"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/recipes.db"
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
	if c.AnalyticsRetainDays == 0 {
		c.AnalyticsRetainDays = 365
	}
	if c.RecipeCacheTTL == 0 {
		c.RecipeCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets
// (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
