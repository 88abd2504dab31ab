package recipebook

import (
	"encoding/json"
	"testing"

	"github.com/O-X-E-Y/recipe-book/recipe"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Egg Fried Rice", "egg-fried-rice"},
		{"  Pasta alla Boscaiola  ", "pasta-alla-boscaiola"},
		{"Chili & Lime!", "chili-lime"},
		{"already-a-slug", "already-a-slug"},
		{"Crème Brûlée", "cr-me-br-l-e"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"recipe", "tea"}, "https://example.com/recipe/tea/"},
		{"https://example.com/sub", []string{"recipe", "tea"}, "https://example.com/sub/recipe/tea/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestAbsURL(t *testing.T) {
	tests := []struct {
		base string
		href string
		want string
	}{
		{"https://example.com", "/public/uploads/x.jpg", "https://example.com/public/uploads/x.jpg"},
		{"https://example.com", "https://cdn.example.com/x.jpg", "https://cdn.example.com/x.jpg"},
	}
	for _, tt := range tests {
		if got := absURL(tt.base, tt.href); got != tt.want {
			t.Errorf("absURL(%q, %q) = %q, want %q", tt.base, tt.href, got, tt.want)
		}
	}
}

func TestRecipeJsonLD(t *testing.T) {
	doc, err := recipe.Parse("Tea\n\nimage: /public/uploads/tea.jpg\n\nA cup of tea.\n\n---ingredients\n1 cup water\n\n---steps\nBoil it.\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	entry := RecipeEntry{Slug: "tea", Date: "2024-01-15"}
	cfg := SiteConfig{URL: "https://example.com", Author: "Oxey"}

	var data struct {
		Type         string   `json:"@type"`
		Name         string   `json:"name"`
		Description  string   `json:"description"`
		Image        string   `json:"image"`
		URL          string   `json:"url"`
		Ingredients  []string `json:"recipeIngredient"`
		Instructions []struct {
			Type string `json:"@type"`
			Text string `json:"text"`
		} `json:"recipeInstructions"`
	}
	if err := json.Unmarshal([]byte(RecipeJsonLD(entry, doc, cfg)), &data); err != nil {
		t.Fatalf("RecipeJsonLD produced invalid JSON: %v", err)
	}

	if data.Type != "Recipe" {
		t.Errorf("@type = %q, want %q", data.Type, "Recipe")
	}
	if data.Name != "Tea" {
		t.Errorf("name = %q, want %q", data.Name, "Tea")
	}
	if data.Description != "A cup of tea." {
		t.Errorf("description = %q, want %q", data.Description, "A cup of tea.")
	}
	if data.Image != "https://example.com/public/uploads/tea.jpg" {
		t.Errorf("image = %q, want the resolved upload URL, got %q", data.Image, data.Image)
	}
	if data.URL != "https://example.com/recipe/tea/" {
		t.Errorf("url = %q, want %q", data.URL, "https://example.com/recipe/tea/")
	}
	if len(data.Ingredients) != 1 || data.Ingredients[0] != "236 ml water" {
		t.Errorf("recipeIngredient = %v, want metric-rendered lines", data.Ingredients)
	}
	if len(data.Instructions) != 1 || data.Instructions[0].Type != "HowToStep" || data.Instructions[0].Text != "Boil it." {
		t.Errorf("recipeInstructions = %v, want one HowToStep", data.Instructions)
	}
}

func TestWebsiteJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Recipe Book", URL: "https://example.com", Description: "Food."}
	var data struct {
		Type string `json:"@type"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal([]byte(WebsiteJsonLD(cfg)), &data); err != nil {
		t.Fatalf("WebsiteJsonLD produced invalid JSON: %v", err)
	}
	if data.Type != "WebSite" || data.Name != "Recipe Book" {
		t.Errorf("WebsiteJsonLD = %+v, want WebSite named Recipe Book", data)
	}
}
