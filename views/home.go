package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// Home renders the recipe index.
func Home(site Site, meta PageMeta, recipes []RecipeLink) templ.Component {
	return page(site, meta, nil, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="recipe-list">`)
		if site.Description != "" {
			buf.WriteString(`<p class="site-intro">` + esc(site.Description) + `</p>`)
		}
		if len(recipes) == 0 {
			buf.WriteString(`<p class="empty">No recipes yet.</p>`)
		} else {
			buf.WriteString(`<ul>`)
			for _, r := range recipes {
				buf.WriteString(`<li><a href="/recipe/` + pathEscape(r.Slug) + `/">` + esc(r.Title) + `</a>`)
				if r.Date != "" {
					buf.WriteString(`<time datetime="` + attr(r.Date) + `">` + esc(r.Date) + `</time>`)
				}
				buf.WriteString(`</li>`)
			}
			buf.WriteString(`</ul>`)
		}
		buf.WriteString(`</section>`)
	})
}
