package recipebook

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/O-X-E-Y/recipe-book/recipe"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// PathEscape escapes a string for use in a URL path.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// absURL resolves href against base. Absolute hrefs pass through.
func absURL(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	u, err := url.Parse(base)
	if err != nil {
		return href
	}
	u.Path = path.Join(u.Path, href)
	return u.String()
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// RecipeJsonLD returns a JSON-LD string for a schema.org Recipe built
// from a stored entry and its parsed document. Ingredient lines are
// rendered metric.
func RecipeJsonLD(entry RecipeEntry, r recipe.Recipe, cfg SiteConfig) string {
	recipeURL := BuildURL(cfg.URL, "recipe", entry.Slug)
	ingredients := make([]string, len(r.Ingredients))
	for n, ing := range r.Ingredients {
		ingredients[n] = ing.AsMetric().String()
	}
	instructions := make([]map[string]string, len(r.Steps))
	for n, step := range r.Steps {
		instructions[n] = map[string]string{
			"@type": "HowToStep",
			"text":  step.Body,
		}
	}
	data := map[string]interface{}{
		"@context":           "https://schema.org",
		"@type":              "Recipe",
		"name":               r.Title,
		"datePublished":      entry.Date,
		"url":                recipeURL,
		"recipeIngredient":   ingredients,
		"recipeInstructions": instructions,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   recipeURL,
		},
	}
	if r.Introduction != "" {
		data["description"] = r.Introduction
	}
	if r.Image != nil {
		data["image"] = absURL(cfg.URL, r.Image.Href)
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
