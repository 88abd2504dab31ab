package views

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/a-h/templ"
)

// adminPage wraps body in the document shell plus the CSRF token and
// dashboard script that admin pages need.
func adminPage(site Site, title, csrf string, body func(buf *bytes.Buffer)) templ.Component {
	meta := PageMeta{Title: title + " | " + site.Name}
	return page(site, meta, func(buf *bytes.Buffer) {
		buf.WriteString(`<meta name="csrf-token" content="` + attr(csrf) + `"/>`)
		buf.WriteString(`<script src="/public/admin.js" defer></script>`)
	}, body)
}

// AdminLogin renders the login form.
func AdminLogin(site Site, showError bool, csrf string) templ.Component {
	return adminPage(site, "Admin", csrf, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="admin-login">`)
		buf.WriteString(`<h1>Admin</h1>`)
		if showError {
			buf.WriteString(`<p class="flash error">Wrong password.</p>`)
		}
		buf.WriteString(`<form method="post" action="/admin/login/">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + attr(csrf) + `"/>`)
		buf.WriteString(`<label>Password <input type="password" name="password" autofocus/></label>`)
		buf.WriteString(`<button type="submit">Log in</button>`)
		buf.WriteString(`</form>`)
		buf.WriteString(`</section>`)
	})
}

// AdminDashboard renders the recipe list, a blank editor, and view
// stats when analytics is enabled.
func AdminDashboard(site Site, recipes []AdminRecipe, stats *StatsSummary, msg, csrf string) templ.Component {
	return adminPage(site, "Admin", csrf, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="admin">`)
		writeAdminNav(buf, csrf)
		if msg != "" {
			buf.WriteString(`<p class="flash">` + esc(msg) + `</p>`)
		}
		if stats != nil {
			writeStats(buf, stats)
		}

		buf.WriteString(`<h2>Recipes</h2>`)
		if len(recipes) == 0 {
			buf.WriteString(`<p class="empty">Nothing saved yet.</p>`)
		} else {
			buf.WriteString(`<table class="admin-table"><thead><tr><th>Title</th><th>Date</th><th>Status</th><th></th></tr></thead><tbody>`)
			for _, r := range recipes {
				status := "draft"
				if r.Published {
					status = "published"
				}
				buf.WriteString(`<tr>`)
				buf.WriteString(`<td><a href="/admin/recipe/` + pathEscape(r.Slug) + `/">` + esc(r.Title) + `</a></td>`)
				buf.WriteString(`<td>` + esc(r.Date) + `</td>`)
				buf.WriteString(`<td>` + status + `</td>`)
				buf.WriteString(`<td><button class="delete" data-slug="` + attr(r.Slug) + `">Delete</button></td>`)
				buf.WriteString(`</tr>`)
			}
			buf.WriteString(`</tbody></table>`)
		}

		buf.WriteString(`<h2>New recipe</h2>`)
		writeEditorForm(buf, AdminRecipe{}, csrf)
		buf.WriteString(`</section>`)
	})
}

// AdminEditor renders the edit page for one stored recipe.
func AdminEditor(site Site, entry AdminRecipe, csrf string) templ.Component {
	return adminPage(site, "Edit "+entry.Title, csrf, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="admin">`)
		writeAdminNav(buf, csrf)
		buf.WriteString(`<h2>Edit ` + esc(entry.Title) + `</h2>`)
		writeEditorForm(buf, entry, csrf)
		buf.WriteString(`</section>`)
	})
}

// AdminImages renders the uploaded image library.
func AdminImages(site Site, images []ImageInfo, csrf string) templ.Component {
	return adminPage(site, "Images", csrf, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="admin">`)
		writeAdminNav(buf, csrf)
		buf.WriteString(`<h2>Images</h2>`)

		buf.WriteString(`<form method="post" action="/admin/images/upload/" enctype="multipart/form-data" class="upload-form">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + attr(csrf) + `"/>`)
		buf.WriteString(`<input type="file" name="image" accept="image/*" required/>`)
		buf.WriteString(`<button type="submit">Upload</button>`)
		buf.WriteString(`</form>`)

		if len(images) == 0 {
			buf.WriteString(`<p class="empty">No images uploaded.</p>`)
		} else {
			buf.WriteString(`<table class="admin-table"><thead><tr><th>Preview</th><th>Path</th><th>Size</th><th>Uploaded</th><th></th></tr></thead><tbody>`)
			for _, img := range images {
				path := "/public/uploads/" + pathEscape(img.Filename)
				buf.WriteString(`<tr>`)
				buf.WriteString(`<td><img class="thumb" src="` + path + `" alt="` + attr(img.OriginalName) + `"/></td>`)
				buf.WriteString(`<td><code>` + esc(path) + `</code> ` + strconv.Itoa(img.Width) + `&times;` + strconv.Itoa(img.Height) + `</td>`)
				buf.WriteString(`<td>` + humanSize(img.Size) + `</td>`)
				buf.WriteString(`<td>` + esc(img.UploadedAt) + `</td>`)
				buf.WriteString(`<td><button class="delete" data-filename="` + attr(img.Filename) + `">Delete</button></td>`)
				buf.WriteString(`</tr>`)
			}
			buf.WriteString(`</tbody></table>`)
		}
		buf.WriteString(`</section>`)
	})
}

func writeAdminNav(buf *bytes.Buffer, csrf string) {
	buf.WriteString(`<nav class="admin-nav">`)
	buf.WriteString(`<a href="/admin/">Recipes</a>`)
	buf.WriteString(`<a href="/admin/images/">Images</a>`)
	buf.WriteString(`<a href="/">View site</a>`)
	buf.WriteString(`<form method="post" action="/admin/logout/">`)
	buf.WriteString(`<input type="hidden" name="_csrf" value="` + attr(csrf) + `"/>`)
	buf.WriteString(`<button type="submit">Log out</button>`)
	buf.WriteString(`</form>`)
	buf.WriteString(`</nav>`)
}

func writeEditorForm(buf *bytes.Buffer, entry AdminRecipe, csrf string) {
	buf.WriteString(`<form method="post" action="/admin/save/" class="editor">`)
	buf.WriteString(`<input type="hidden" name="_csrf" value="` + attr(csrf) + `"/>`)
	buf.WriteString(`<label>Slug <input type="text" name="slug" value="` + attr(entry.Slug) + `" placeholder="left empty, taken from the title"/></label>`)
	buf.WriteString(`<label>Date <input type="text" name="date" value="` + attr(entry.Date) + `" placeholder="YYYY-MM-DD"/></label>`)
	checked := ""
	if entry.Published {
		checked = ` checked`
	}
	buf.WriteString(`<label class="inline"><input type="checkbox" name="published"` + checked + `/> Published</label>`)
	buf.WriteString(`<label>Document <textarea name="source" rows="18" spellcheck="false">` + esc(entry.Source) + `</textarea></label>`)
	buf.WriteString(`<button type="submit">Save</button>`)
	buf.WriteString(`</form>`)
}

func writeStats(buf *bytes.Buffer, stats *StatsSummary) {
	buf.WriteString(`<section class="stats">`)
	buf.WriteString(fmt.Sprintf(`<h2>Last %d days</h2>`, stats.Days))
	buf.WriteString(fmt.Sprintf(`<p>%d views from %d visitors. Metric %d, imperial %d.</p>`,
		stats.TotalViews, stats.UniqueVisitors, stats.MetricViews, stats.ImperialViews))
	if len(stats.Top) > 0 {
		buf.WriteString(`<table class="admin-table"><thead><tr><th>Recipe</th><th>Views</th></tr></thead><tbody>`)
		for _, t := range stats.Top {
			buf.WriteString(`<tr><td><a href="/recipe/` + pathEscape(t.Slug) + `/">` + esc(t.Slug) + `</a></td><td>` + strconv.Itoa(t.Views) + `</td></tr>`)
		}
		buf.WriteString(`</tbody></table>`)
	}
	if len(stats.Daily) > 0 {
		buf.WriteString(`<ul class="daily">`)
		for _, d := range stats.Daily {
			buf.WriteString(`<li><time datetime="` + attr(d.Day) + `">` + esc(d.Day) + `</time> ` + strconv.Itoa(d.Views) + `</li>`)
		}
		buf.WriteString(`</ul>`)
	}
	buf.WriteString(`</section>`)
}

// humanSize formats a byte count for the image table.
func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
