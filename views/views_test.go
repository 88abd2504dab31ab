package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/O-X-E-Y/recipe-book/measure"
	"github.com/O-X-E-Y/recipe-book/recipe"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return b.String()
}

func testSite() Site {
	return Site{
		Name:        "Recipe Book",
		URL:         "https://example.com",
		Description: "Recipes I cook.",
		Author:      "Oxey",
	}
}

func testRecipe(t *testing.T) recipe.Recipe {
	t.Helper()
	doc, err := recipe.Parse("Tea & Co\n\nWarm <b>drinks</b>.\n\n---ingredients\n1 cup water\n5 g leaves\n\n---steps\nBoil it.\n\nSteep.\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestHome(t *testing.T) {
	html := render(t, Home(testSite(), PageMeta{Title: "Recipe Book"}, []RecipeLink{
		{Slug: "egg fried rice", Title: "Egg <Fried> Rice", Date: "2024-01-15"},
	}))

	if !strings.Contains(html, `href="/recipe/egg%20fried%20rice/"`) {
		t.Error("recipe link should path-escape the slug")
	}
	if !strings.Contains(html, "Egg &lt;Fried&gt; Rice") {
		t.Error("recipe title should be escaped")
	}
	if strings.Contains(html, "<Fried>") {
		t.Error("raw title markup leaked into the page")
	}
}

func TestHomeEmpty(t *testing.T) {
	html := render(t, Home(testSite(), PageMeta{Title: "Recipe Book"}, nil))
	if !strings.Contains(html, "No recipes yet.") {
		t.Error("empty listing should show the placeholder")
	}
}

func TestRecipePage(t *testing.T) {
	doc := testRecipe(t)
	html := render(t, RecipePage(testSite(), PageMeta{Title: "Tea & Co"}, doc, measure.Metric, "/recipe/tea"))

	if !strings.Contains(html, "Tea &amp; Co") {
		t.Error("title should be escaped")
	}
	if !strings.Contains(html, "Warm &lt;b&gt;drinks&lt;/b&gt;.") {
		t.Error("introduction markup should be escaped")
	}
	if !strings.Contains(html, "236 ml") {
		t.Error("ingredient quantity should render metric")
	}
	if !strings.Contains(html, `data-units="metric"`) {
		t.Error("article should carry lowercase data-units")
	}
	if !strings.Contains(html, `data-slug="tea"`) {
		t.Error("article should carry the recipe slug")
	}
	if !strings.Contains(html, "<li>Steep.</li>") {
		t.Error("second step missing")
	}
}

func TestIngredientsSectionToggle(t *testing.T) {
	doc := testRecipe(t)

	metric := render(t, IngredientsSection(doc, measure.Metric, "/recipe/tea"))
	if !strings.Contains(metric, `href="/recipe/tea/?units=imperial"`) {
		t.Error("metric view should link to the imperial variant")
	}
	if !strings.Contains(metric, "236 ml") {
		t.Error("metric view should render millilitres")
	}

	imperial := render(t, IngredientsSection(doc, measure.Imperial, "/recipe/tea"))
	if !strings.Contains(imperial, "1.0 cups") {
		t.Errorf("imperial view should render cups, got:\n%s", imperial)
	}

	if !strings.Contains(metric, `<a class="unit active" href="/recipe/tea/?units=metric"`) {
		t.Error("metric view should mark the metric link active")
	}
	if !strings.Contains(imperial, `<a class="unit active" href="/recipe/tea/?units=imperial"`) {
		t.Error("imperial view should mark the imperial link active")
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/public/uploads/x.jpg", "/public/uploads/x.jpg"},
		{"https://example.com/x.jpg", "https://example.com/x.jpg"},
		{"javascript:alert(1)", ""},
		{"data:text/html,hi", ""},
	}
	for _, tt := range tests {
		if got := safeURL(tt.in); got != tt.want {
			t.Errorf("safeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := humanSize(tt.n); got != tt.want {
			t.Errorf("humanSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
