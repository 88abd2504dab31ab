package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// esc escapes user-controlled text for HTML output.
func esc(s string) string {
	return html.EscapeString(s)
}

// attr escapes a value for use inside a double-quoted attribute.
func attr(s string) string {
	return html.EscapeString(s)
}

// pathEscape escapes a single URL path segment.
func pathEscape(s string) string {
	return url.PathEscape(s)
}

// page wraps body markup in the shared document shell. The extraHead
// callback may be nil.
func page(site Site, meta PageMeta, extraHead, body func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
		buf.WriteString(`<meta charset="utf-8"/>`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		buf.WriteString(`<title>` + esc(meta.Title) + `</title>`)
		if meta.Description != "" {
			buf.WriteString(`<meta name="description" content="` + attr(meta.Description) + `"/>`)
		}
		if meta.URL != "" {
			buf.WriteString(`<link rel="canonical" href="` + attr(meta.URL) + `"/>`)
			buf.WriteString(`<meta property="og:url" content="` + attr(meta.URL) + `"/>`)
		}
		buf.WriteString(`<meta property="og:title" content="` + attr(meta.Title) + `"/>`)
		if meta.Description != "" {
			buf.WriteString(`<meta property="og:description" content="` + attr(meta.Description) + `"/>`)
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		buf.WriteString(`<meta property="og:type" content="` + ogType + `"/>`)
		buf.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
		buf.WriteString(`<link rel="stylesheet" href="/public/style.css"/>`)
		buf.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + attr(site.Name) + `" href="/feed.xml"/>`)
		if meta.JsonLD != "" {
			buf.WriteString(`<script type="application/ld+json">` + meta.JsonLD + `</script>`)
		}
		if extraHead != nil {
			extraHead(&buf)
		}
		buf.WriteString(`</head><body>`)
		buf.WriteString(`<header class="site-header"><a class="site-title" href="/">` + esc(site.Name) + `</a></header>`)
		buf.WriteString(`<main>`)
		body(&buf)
		buf.WriteString(`</main>`)
		buf.WriteString(`<footer class="site-footer">`)
		if site.Author != "" {
			buf.WriteString(`<p>` + esc(site.Author) + `</p>`)
		}
		buf.WriteString(`<p><a href="/feed.xml">RSS</a></p>`)
		buf.WriteString(`</footer>`)
		buf.WriteString(`</body></html>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// fragment renders a bare component without the document shell.
func fragment(body func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		body(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}
