package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// NotFound renders the 404 page.
func NotFound(site Site) templ.Component {
	meta := PageMeta{Title: "Not Found | " + site.Name}
	return page(site, meta, nil, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="error-page">`)
		buf.WriteString(`<h1>404</h1>`)
		buf.WriteString(`<p>That page doesn't exist.</p>`)
		buf.WriteString(`<p><a href="/">Back to all recipes</a></p>`)
		buf.WriteString(`</section>`)
	})
}

// ServerError renders the 500 page.
func ServerError(site Site) templ.Component {
	meta := PageMeta{Title: "Something went wrong | " + site.Name}
	return page(site, meta, nil, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="error-page">`)
		buf.WriteString(`<h1>500</h1>`)
		buf.WriteString(`<p>Something went wrong. Try again in a bit.</p>`)
		buf.WriteString(`<p><a href="/">Back to all recipes</a></p>`)
		buf.WriteString(`</section>`)
	})
}
