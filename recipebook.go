// Package recipebook is a recipe publishing site built with Go, Echo, and
// templ. It parses a plain-text recipe format into structured documents,
// renders ingredient quantities in metric or imperial units, and provides an
// admin dashboard, image uploads, analytics, RSS, and a sitemap out of the box.
package recipebook

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/O-X-E-Y/recipe-book/analytics"
	"github.com/O-X-E-Y/recipe-book/views"
)

// App is the central application. It wires together the store, cache,
// handlers, and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *RecipeCache

	loginLimiter   *LoginLimiter
	analyticsStore *analytics.Store
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, cache, middleware, routes, and starts the
// server. It blocks until the server shuts down.
func (a *App) Start() error {
	// Validate required config
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("recipebook: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("recipebook: SessionSecret is required")
	}

	// Initialize store
	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("recipebook: init store: %w", err)
	}
	a.Store = store

	// Seed bundled recipes on first run
	if a.Config.SeedBundled {
		n, err := a.Store.SeedRecipes(BundledRecipes, "recipes")
		if err != nil {
			return fmt.Errorf("recipebook: seed recipes: %w", err)
		}
		if n > 0 {
			a.Echo.Logger.Infof("seeded %d bundled recipes", n)
		}
	}

	// Initialize cache
	a.Cache = NewRecipeCache(a.Store, a.Config.RecipeCacheTTL)

	// Initialize login limiter
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	// Initialize analytics if enabled
	if a.Config.AnalyticsEnabled {
		analyticsStore, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("recipebook: init analytics: %w", err)
		}
		a.analyticsStore = analyticsStore
		if err := analytics.InitSalt(analyticsStore); err != nil {
			return fmt.Errorf("recipebook: init analytics salt: %w", err)
		}
		stopCleanup := analyticsStore.StartCleanupScheduler(a.Config.AnalyticsRetainDays, 24*time.Hour)
		defer stopCleanup()
	}

	// Setup middleware
	a.setupMiddleware()

	// Setup routes
	a.setupRoutes()

	// Apply custom routes
	for _, fn := range a.customRoutes {
		fn(a)
	}

	// Start server
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Serve embedded framework assets under /public/, falling through to the
	// user's static dir for everything else.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/style.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/units.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/admin.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	// User's static assets
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/recipes", handleRecipesRedirect)
	e.GET("/", a.handleHome)
	e.GET("/recipe/:slug/", a.handleRecipe)

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/recipe/:slug/", a.handleAdminRecipe)
	e.POST("/admin/save/", a.handleAdminSave)
	e.DELETE("/admin/recipe/:slug/", a.handleAdminDelete)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)

	// View tracking
	if a.Config.AnalyticsEnabled && a.analyticsStore != nil {
		handler := analytics.NewHandler(a.analyticsStore)
		e.POST("/api/track/", handler.Collect)
	}
}

// loadStats fetches the last 30 days of view statistics for the admin
// dashboard. Returns nil if the stats cannot be loaded.
func (a *App) loadStats(c echo.Context) *views.StatsSummary {
	stats, err := a.analyticsStore.Stats(30)
	if err != nil {
		c.Logger().Errorf("load stats: %v", err)
		return nil
	}
	top := make([]views.RecipeViews, len(stats.Top))
	for n, t := range stats.Top {
		top[n] = views.RecipeViews{Slug: t.Slug, Views: t.Views}
	}
	daily := make([]views.DayViews, len(stats.Daily))
	for n, d := range stats.Daily {
		daily[n] = views.DayViews{Day: d.Day, Views: d.Views}
	}
	return &views.StatsSummary{
		Days:           30,
		TotalViews:     stats.TotalViews,
		UniqueVisitors: stats.UniqueVisitors,
		MetricViews:    stats.MetricViews,
		ImperialViews:  stats.ImperialViews,
		Top:            top,
		Daily:          daily,
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		a.Store.Close()
	}
	if a.analyticsStore != nil {
		a.analyticsStore.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits
// if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("recipebook: required environment variable %s is not set", key)
	}
	return v
}
