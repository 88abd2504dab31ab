// Package analytics provides privacy-first recipe view tracking.
// No cookies, no fingerprinting: views are keyed by a salted hash of
// the client IP and aged out after a retention period.
package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"
)

// salt holds the per-installation random salt for IP hashing, protected by sync.Once.
var salt struct {
	once  sync.Once
	value string
}

// InitSalt loads or generates a persistent salt for IP hashing.
// Must be called once at startup before any requests are served.
func InitSalt(store *Store) error {
	var initErr error
	salt.once.Do(func() {
		s, err := store.GetSetting("hash_salt")
		if err != nil {
			initErr = fmt.Errorf("read hash salt: %w", err)
			return
		}
		if s == "" {
			b := make([]byte, 32)
			if _, err := rand.Read(b); err != nil {
				initErr = fmt.Errorf("generate salt: %w", err)
				return
			}
			s = hex.EncodeToString(b)
			if err := store.SetSetting("hash_salt", s); err != nil {
				initErr = fmt.Errorf("store hash salt: %w", err)
				return
			}
		}
		salt.value = s
	})
	return initErr
}

// getSalt returns the initialized salt value.
func getSalt() string {
	return salt.value
}

// HashIP creates a salted SHA-256 hash of an IP address.
func HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(getSalt() + ip))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// View is a single recipe page view.
type View struct {
	ID       int64
	Slug     string
	IPHash   string
	Units    string // "metric" or "imperial"
	Bot      bool
	ViewedAt time.Time
}

// Stats holds aggregated view data for a trailing window.
type Stats struct {
	TotalViews     int
	UniqueVisitors int
	MetricViews    int
	ImperialViews  int
	Top            []RecipeCount
	Daily          []DayCount
}

// RecipeCount is views per recipe slug.
type RecipeCount struct {
	Slug  string
	Views int
}

// DayCount is views per day.
type DayCount struct {
	Day   string
	Views int
}

// IsBot checks if the User-Agent is likely a bot or crawler.
func IsBot(ua string) bool {
	ua = strings.ToLower(ua)
	markers := []string{
		"bot", "crawler", "spider", "crawl", "slurp", "scrape",
		"facebookexternalhit", "preview", "curl", "wget", "python-requests",
	}
	for _, m := range markers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}
