package views

import (
	"html"
	"net/url"
	"strings"
)

// safeURL returns raw escaped for attribute use if it is a relative
// path or uses an allowed scheme, and "" otherwise.
func safeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return html.EscapeString(val)
	default:
		return ""
	}
}
