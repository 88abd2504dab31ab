package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	recipebook "github.com/O-X-E-Y/recipe-book"
	"github.com/O-X-E-Y/recipe-book/recipe"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: recipe-book check <file>...")
			os.Exit(1)
		}
		if !runCheck(os.Args[2:]) {
			os.Exit(1)
		}
	case "version":
		fmt.Printf("recipe-book %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := recipebook.SiteConfig{
		Name:        recipebook.EnvOr("SITE_NAME", "Recipe Book"),
		URL:         recipebook.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: os.Getenv("SITE_DESCRIPTION"),
		Author:      os.Getenv("SITE_AUTHOR"),

		Addr:         recipebook.EnvOr("ADDR", ":3000"),
		DatabasePath: recipebook.EnvOr("DATABASE_PATH", "data/recipes.db"),

		AnalyticsEnabled:      os.Getenv("ANALYTICS") == "true",
		AnalyticsDatabasePath: recipebook.EnvOr("ANALYTICS_DATABASE_PATH", "data/analytics.db"),

		AdminPassword: recipebook.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: recipebook.MustEnv("SESSION_SECRET"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",

		SeedBundled: os.Getenv("SEED_BUNDLED") != "false",
	}

	app := recipebook.New(cfg)
	defer app.Close()
	return app.Start()
}

// runCheck parses each file and reports the first error per document.
// It returns false if any file failed.
func runCheck(paths []string) bool {
	ok := true
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			ok = false
			continue
		}
		doc, err := recipe.Parse(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			ok = false
			continue
		}
		fmt.Printf("%s: ok (%q, %d ingredients, %d steps)\n", path, doc.Title, len(doc.Ingredients), len(doc.Steps))
	}
	return ok
}

func printUsage() {
	fmt.Println(`recipe-book - a recipe site with a plain-text recipe format

Usage:
  recipe-book [command] [arguments]

Commands:
  serve         Start the site (default)
  check <file>  Parse recipe documents and report errors
  version       Print the recipe-book version
  help          Show this help message

Environment (serve):
  ADMIN_PASSWORD   admin login password (required)
  SESSION_SECRET   session encryption secret (required)
  SITE_NAME        site name shown in the header and feed
  SITE_URL         canonical base URL
  SITE_DESCRIPTION short description for meta tags and RSS
  SITE_AUTHOR      author name for feeds and structured data
  ADDR             listen address (default :3000)
  DATABASE_PATH    recipe database path (default data/recipes.db)
  ANALYTICS        "true" enables privacy-first view tracking
  ANALYTICS_DATABASE_PATH  analytics database path
  COOKIE_SECURE    "true" behind HTTPS
  SEED_BUNDLED     "false" skips seeding the bundled recipes

A .env file in the working directory is loaded if present.

Examples:
  recipe-book
  recipe-book check recipes/*.txt`)
}
