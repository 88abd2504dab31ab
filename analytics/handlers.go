package analytics

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler handles the view collection endpoint.
type Handler struct {
	store          *Store
	collectLimiter *rateLimiter
}

// NewHandler creates a new analytics handler.
// The collect endpoint is rate-limited to 60 requests per IP per minute.
func NewHandler(store *Store) *Handler {
	return &Handler{
		store:          store,
		collectLimiter: newRateLimiter(60, time.Minute),
	}
}

// CollectRequest is the expected request body for the collect endpoint.
type CollectRequest struct {
	Slug  string `json:"slug"`
	Units string `json:"units"`
}

const maxSlugLen = 256

// Collect records a recipe view sent by the client beacon.
func (h *Handler) Collect(c echo.Context) error {
	// Rate limit by IP to prevent flooding.
	if !h.collectLimiter.allow(c.RealIP()) {
		return c.NoContent(http.StatusTooManyRequests)
	}

	// Honor Do Not Track
	if c.Request().Header.Get("DNT") == "1" {
		return c.NoContent(http.StatusNoContent)
	}

	var req CollectRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request")
	}
	if req.Slug == "" || len(req.Slug) > maxSlugLen {
		return c.String(http.StatusBadRequest, "Invalid request")
	}
	units := "metric"
	if req.Units == "imperial" {
		units = "imperial"
	}

	view := &View{
		Slug:     req.Slug,
		IPHash:   HashIP(c.RealIP()),
		Units:    units,
		Bot:      IsBot(c.Request().UserAgent()),
		ViewedAt: time.Now().UTC(),
	}
	if err := h.store.RecordView(view); err != nil {
		c.Logger().Errorf("record view: %v", err)
	}

	return c.NoContent(http.StatusNoContent)
}
