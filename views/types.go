// Package views renders the site's HTML. Components are plain Go
// functions returning templ.Component so full pages and fragments
// compose through the same render bridge.
package views

// Site holds site-wide settings passed to every page.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the page head.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	JsonLD      string // optional schema.org JSON-LD block
}

// RecipeLink is a single entry in the home page listing.
type RecipeLink struct {
	Slug  string
	Title string
	Date  string
}

// AdminRecipe is the editor's view of a stored recipe document.
type AdminRecipe struct {
	Slug      string
	Title     string
	Date      string
	Source    string
	Published bool
}

// ImageInfo describes an uploaded image in the admin library.
type ImageInfo struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int64
	UploadedAt   string
}

// StatsSummary aggregates recipe view analytics for the dashboard.
type StatsSummary struct {
	Days           int
	TotalViews     int
	UniqueVisitors int
	MetricViews    int
	ImperialViews  int
	Top            []RecipeViews
	Daily          []DayViews
}

// RecipeViews is views per recipe.
type RecipeViews struct {
	Slug  string
	Views int
}

// DayViews is views per day.
type DayViews struct {
	Day   string
	Views int
}
