package recipebook

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/O-X-E-Y/recipe-book/measure"
	"github.com/O-X-E-Y/recipe-book/views"
)

// systemFromQuery picks the display system for a request. Metric is
// the default; anything other than "imperial" keeps it.
func systemFromQuery(c echo.Context) measure.System {
	if c.QueryParam("units") == "imperial" {
		return measure.Imperial
	}
	return measure.Metric
}

func (a *App) handleHome(c echo.Context) error {
	entries, err := a.Cache.ListRecipes()
	if err != nil {
		return err
	}
	links := make([]views.RecipeLink, len(entries))
	for n, e := range entries {
		links[n] = views.RecipeLink{Slug: e.Slug, Title: e.Title, Date: e.Date}
	}
	meta := views.PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL),
		OGType:      "website",
		JsonLD:      WebsiteJsonLD(a.Config),
	}
	return Render(c, views.Home(a.site(), meta, links))
}

func (a *App) handleRecipe(c echo.Context) error {
	slug := c.Param("slug")
	entry, doc, err := a.Cache.GetRecipe(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		}
		return err
	}

	sys := systemFromQuery(c)
	if sys == measure.Imperial {
		doc = doc.AsImperial()
	} else {
		doc = doc.AsMetric()
	}

	if c.Request().Header.Get("HX-Request") == "true" || c.QueryParam("partial") == "ingredients" {
		return Render(c, views.IngredientsSection(doc, sys, entry.Link))
	}

	meta := views.PageMeta{
		Title:       doc.Title + " | " + a.Config.Name,
		Description: doc.Introduction,
		URL:         BuildURL(a.Config.URL, "recipe", slug),
		OGType:      "article",
		JsonLD:      RecipeJsonLD(entry, doc, a.Config),
	}
	return Render(c, views.RecipePage(a.site(), meta, doc, sys, entry.Link))
}

func (a *App) handleSitemap(c echo.Context) error {
	entries, err := a.Cache.ListRecipes()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, entries)
}

func (a *App) handleFeed(c echo.Context) error {
	entries, err := a.Cache.ListRecipes()
	if err != nil {
		return err
	}
	return a.renderRSS(c, entries)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nDisallow: /admin/\n\nSitemap: " + a.Config.URL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func handleFavicon(c echo.Context) error {
	data, err := EmbeddedAssets.ReadFile("embedded/favicon.svg")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

func handleRecipesRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// site maps the app config onto the view layer's site descriptor.
func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}
