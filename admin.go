package recipebook

import (
	"crypto/subtle"
	"database/sql"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/O-X-E-Y/recipe-book/recipe"
	"github.com/O-X-E-Y/recipe-book/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.site(), false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminRecipe(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	slug := c.Param("slug")
	entry, err := a.Store.GetRecipeAny(slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return Render(c, views.AdminEditor(a.site(), adminRecipe(entry), CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(c.RealIP())
	return Render(c, views.AdminLogin(a.site(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	source := c.FormValue("source")
	parsed, err := recipe.Parse(source)
	if err != nil {
		return adminMsg(c, "Not saved: "+err.Error())
	}
	slug := strings.TrimSpace(c.FormValue("slug"))
	if slug == "" {
		slug = Slugify(parsed.Title)
	}
	if slug == "" {
		return adminMsg(c, "Slug is required. Give the recipe a title or a slug.")
	}
	date := strings.TrimSpace(c.FormValue("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return adminMsg(c, "Invalid date format. Use YYYY-MM-DD.")
	}
	published := c.FormValue("published") != ""
	if err := a.Store.SaveRecipe(RecipeEntry{
		Slug:      slug,
		Source:    source,
		Date:      date,
		Published: published,
	}); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return adminMsg(c, "Saved.")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	slug := c.Param("slug")
	if err := a.Store.DeleteRecipe(slug); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return adminMsg(c, "Deleted.")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	entries, err := a.Store.ListAllRecipes()
	if err != nil {
		return err
	}
	list := make([]views.AdminRecipe, len(entries))
	for n, e := range entries {
		list[n] = adminRecipe(e)
	}
	var stats *views.StatsSummary
	if a.analyticsStore != nil {
		if s := a.loadStats(c); s != nil {
			stats = s
		}
	}
	return Render(c, views.AdminDashboard(a.site(), list, stats, msg, CsrfToken(c)))
}

// adminMsg redirects back to the dashboard with a flash message.
func adminMsg(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, "/admin/?msg="+url.QueryEscape(msg))
}

func adminRecipe(e RecipeEntry) views.AdminRecipe {
	return views.AdminRecipe{
		Slug:      e.Slug,
		Title:     e.Title,
		Date:      e.Date,
		Source:    e.Source,
		Published: e.Published,
	}
}
