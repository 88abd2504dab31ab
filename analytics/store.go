package analytics

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides database operations for view tracking. It keeps its
// own SQLite database so analytics churn never contends with the
// content database.
type Store struct {
	db *sql.DB
}

// NewStore creates a new analytics store at dbPath.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS recipe_views (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slug TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			units TEXT NOT NULL,
			bot INTEGER NOT NULL DEFAULT 0,
			viewed_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_recipe_views_viewed_at ON recipe_views(viewed_at);
		CREATE INDEX IF NOT EXISTS idx_recipe_views_slug ON recipe_views(slug);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// currentSchemaVersion is the latest schema version. Increment when adding migrations.
const currentSchemaVersion = 1

// migrate applies incremental schema migrations based on a version stored in
// the settings table.
func (s *Store) migrate() error {
	verStr, err := s.GetSetting("schema_version")
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	version := 0
	if verStr != "" {
		version, err = strconv.Atoi(verStr)
		if err != nil {
			return fmt.Errorf("parse schema version %q: %w", verStr, err)
		}
	}

	if version < currentSchemaVersion {
		version = currentSchemaVersion
	}

	return s.SetSetting("schema_version", strconv.Itoa(version))
}

// GetSetting retrieves a setting value by key. Returns empty string if not found.
func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetSetting stores a setting value by key (upsert).
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// RecordView stores a single recipe view.
func (s *Store) RecordView(v *View) error {
	bot := 0
	if v.Bot {
		bot = 1
	}
	_, err := s.db.Exec(`INSERT INTO recipe_views (slug, ip_hash, units, bot, viewed_at) VALUES (?, ?, ?, ?, ?)`,
		v.Slug, v.IPHash, v.Units, bot, v.ViewedAt.UTC())
	return err
}

// Stats aggregates non-bot views over the trailing number of days.
func (s *Store) Stats(days int) (*Stats, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	stats := &Stats{
		Top:   []RecipeCount{},
		Daily: []DayCount{},
	}

	err := s.db.QueryRow(`SELECT COUNT(*), COUNT(DISTINCT ip_hash) FROM recipe_views WHERE viewed_at >= ? AND bot = 0`, cutoff).
		Scan(&stats.TotalViews, &stats.UniqueVisitors)
	if err != nil {
		return nil, fmt.Errorf("count views: %w", err)
	}

	rows, err := s.db.Query(`SELECT units, COUNT(*) FROM recipe_views WHERE viewed_at >= ? AND bot = 0 GROUP BY units`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("units split: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var units string
		var count int
		if err := rows.Scan(&units, &count); err != nil {
			return nil, err
		}
		if units == "imperial" {
			stats.ImperialViews = count
		} else {
			stats.MetricViews += count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	top, err := s.db.Query(`SELECT slug, COUNT(*) AS views FROM recipe_views WHERE viewed_at >= ? AND bot = 0
		GROUP BY slug ORDER BY views DESC, slug LIMIT 10`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("top recipes: %w", err)
	}
	defer top.Close()
	for top.Next() {
		var rc RecipeCount
		if err := top.Scan(&rc.Slug, &rc.Views); err != nil {
			return nil, err
		}
		stats.Top = append(stats.Top, rc)
	}
	if err := top.Err(); err != nil {
		return nil, err
	}

	daily, err := s.db.Query(`SELECT date(viewed_at) AS day, COUNT(*) FROM recipe_views WHERE viewed_at >= ? AND bot = 0
		GROUP BY day ORDER BY day`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("daily views: %w", err)
	}
	defer daily.Close()
	for daily.Next() {
		var dc DayCount
		if err := daily.Scan(&dc.Day, &dc.Views); err != nil {
			return nil, err
		}
		stats.Daily = append(stats.Daily, dc)
	}
	if err := daily.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// CleanupOldViews removes views older than the retention period.
func (s *Store) CleanupOldViews(retentionDays int) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	if _, err := s.db.Exec(`DELETE FROM recipe_views WHERE viewed_at < ?`, cutoff); err != nil {
		return fmt.Errorf("cleanup recipe_views: %w", err)
	}
	return nil
}

// StartCleanupScheduler runs periodic cleanup of old data. Returns a stop function.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := s.CleanupOldViews(retentionDays); err != nil {
					log.Printf("analytics cleanup: %v", err)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}
