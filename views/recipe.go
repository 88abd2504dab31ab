package views

import (
	"bytes"
	"strings"

	"github.com/a-h/templ"

	"github.com/O-X-E-Y/recipe-book/measure"
	"github.com/O-X-E-Y/recipe-book/recipe"
)

// RecipePage renders a full recipe document with quantities in the
// given unit system. link is the recipe's own path, used for the unit
// toggle.
func RecipePage(site Site, meta PageMeta, doc recipe.Recipe, sys measure.System, link string) templ.Component {
	return page(site, meta, func(buf *bytes.Buffer) {
		if doc.Image != nil {
			if href := safeURL(doc.Image.Href); href != "" {
				buf.WriteString(`<meta property="og:image" content="` + href + `"/>`)
			}
		}
		buf.WriteString(`<script src="/public/units.js" defer></script>`)
	}, func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="recipe" data-slug="` + attr(slugFromLink(link)) + `" data-units="` + unitsParam(sys) + `">`)
		buf.WriteString(`<h1>` + esc(doc.Title) + `</h1>`)
		if doc.Image != nil {
			if href := safeURL(doc.Image.Href); href != "" {
				buf.WriteString(`<img class="recipe-photo" src="` + href + `" alt="` + attr(doc.Title) + `"/>`)
			}
		}
		if doc.Introduction != "" {
			buf.WriteString(`<p class="introduction">` + textWithBreaks(doc.Introduction) + `</p>`)
		}
		writeIngredients(buf, doc, sys, link)
		buf.WriteString(`<section class="steps"><h2>Method</h2><ol>`)
		for _, step := range doc.Steps {
			buf.WriteString(`<li>` + textWithBreaks(step.Body) + `</li>`)
		}
		buf.WriteString(`</ol></section>`)
		buf.WriteString(`</article>`)
	})
}

// IngredientsSection renders only the ingredient list, for swapping a
// recipe page between unit systems without a full reload.
func IngredientsSection(doc recipe.Recipe, sys measure.System, link string) templ.Component {
	return fragment(func(buf *bytes.Buffer) {
		writeIngredients(buf, doc, sys, link)
	})
}

func writeIngredients(buf *bytes.Buffer, doc recipe.Recipe, sys measure.System, link string) {
	buf.WriteString(`<section class="ingredients" id="ingredients">`)
	buf.WriteString(`<div class="section-head"><h2>Ingredients</h2>`)
	writeUnitToggle(buf, sys, link)
	buf.WriteString(`</div>`)
	buf.WriteString(`<ul>`)
	for _, ing := range doc.Ingredients {
		buf.WriteString(`<li>`)
		if ing.Quantity != nil {
			buf.WriteString(`<span class="amount">` + esc(ing.Quantity.String()) + `</span> `)
		}
		buf.WriteString(esc(ing.Name))
		buf.WriteString(`</li>`)
	}
	buf.WriteString(`</ul>`)
	buf.WriteString(`</section>`)
}

func writeUnitToggle(buf *bytes.Buffer, sys measure.System, link string) {
	metricClass, imperialClass := "unit active", "unit"
	if sys == measure.Imperial {
		metricClass, imperialClass = "unit", "unit active"
	}
	buf.WriteString(`<nav class="unit-toggle">`)
	buf.WriteString(`<a class="` + metricClass + `" href="` + attr(link) + `/?units=metric">Metric</a>`)
	buf.WriteString(`<a class="` + imperialClass + `" href="` + attr(link) + `/?units=imperial">Imperial</a>`)
	buf.WriteString(`</nav>`)
}

// textWithBreaks escapes text and keeps its line breaks.
func textWithBreaks(s string) string {
	return strings.ReplaceAll(esc(s), "\n", "<br/>")
}

// unitsParam is the query-parameter spelling of a display system.
func unitsParam(sys measure.System) string {
	if sys == measure.Imperial {
		return "imperial"
	}
	return "metric"
}

// slugFromLink extracts the trailing path segment of a recipe link.
func slugFromLink(link string) string {
	link = strings.TrimSuffix(link, "/")
	if n := strings.LastIndexByte(link, '/'); n >= 0 {
		return link[n+1:]
	}
	return link
}
