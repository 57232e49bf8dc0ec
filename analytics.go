package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// Timestamps are stored as UTC text so sqlite's date functions can compare
// them directly.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Privacy-conscious visitor record
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"` // Hashed instead of raw IP for privacy
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type ProjectStat struct {
	Slug       string    `json:"slug"`
	Views      int64     `json:"views"`
	LastViewed time.Time `json:"last_viewed"`
}

type AdminStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	TotalViews       int64           `json:"total_project_views"`
	TopProjects      []ProjectStat   `json:"top_projects"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
}

// Analytics stores visitor and project view data in sqlite.
type Analytics struct {
	db *sql.DB
}

// OpenAnalytics opens (or creates) the sqlite database at path and ensures
// the schema exists. Use ":memory:" for an ephemeral store.
func OpenAnalytics(path string) (*Analytics, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// sqlite serializes writers anyway, and ":memory:" is per connection.
	db.SetMaxOpenConns(1)

	a := &Analytics{db: db}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

func (a *Analytics) Close() error {
	return a.db.Close()
}

func (a *Analytics) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,  -- Store hashed IP instead of raw IP
			user_agent TEXT,
			path TEXT,
			timestamp TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors (timestamp)`,
		`CREATE TABLE IF NOT EXISTS project_views (
			slug TEXT PRIMARY KEY,
			views INTEGER NOT NULL DEFAULT 0,
			last_viewed TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := a.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate analytics db: %w", err)
		}
	}
	return nil
}

// TrackVisitor records one page view. ip must already be hashed.
func (a *Analytics) TrackVisitor(ctx context.Context, hashedIP, userAgent, path string, at time.Time) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, at.UTC().Format(sqliteTimeLayout))
	return err
}

// RecordProjectView bumps the view counter for slug.
func (a *Analytics) RecordProjectView(ctx context.Context, slug string, at time.Time) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO project_views (slug, views, last_viewed) VALUES (?, 1, ?)
		ON CONFLICT(slug) DO UPDATE SET views = views + 1, last_viewed = excluded.last_viewed
	`, slug, at.UTC().Format(sqliteTimeLayout))
	return err
}

// ResetProjectViews deletes the counter for slug and reports whether one
// existed.
func (a *Analytics) ResetProjectViews(ctx context.Context, slug string) (bool, error) {
	result, err := a.db.ExecContext(ctx, "DELETE FROM project_views WHERE slug = ?", slug)
	if err != nil {
		return false, err
	}
	n, _ := result.RowsAffected()
	return n > 0, nil
}

// CleanupOldVisitors removes visitor records older than 12 months.
func (a *Analytics) CleanupOldVisitors(ctx context.Context) (int64, error) {
	result, err := a.db.ExecContext(ctx, `
		DELETE FROM visitors
		WHERE timestamp < datetime('now', '-12 months')
	`)
	if err != nil {
		return 0, err
	}
	rowsDeleted, _ := result.RowsAffected()
	if rowsDeleted > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than 12 months", rowsDeleted)
	}
	return rowsDeleted, nil
}

// Stats gathers the admin dashboard numbers.
func (a *Analytics) Stats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{}

	counts := []struct {
		query string
		dst   *int64
	}{
		{"SELECT COUNT(*) FROM visitors", &stats.TotalVisitors},
		{"SELECT COUNT(DISTINCT hashed_ip) FROM visitors", &stats.UniqueVisitors},
		{"SELECT COALESCE(SUM(views), 0) FROM project_views", &stats.TotalViews},
		{"SELECT COUNT(*) FROM visitors WHERE DATE(timestamp) = DATE('now')", &stats.VisitorsToday},
		{"SELECT COUNT(*) FROM visitors WHERE timestamp >= datetime('now', '-7 days')", &stats.VisitorsThisWeek},
	}
	for _, c := range counts {
		if err := a.db.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return nil, err
		}
	}

	var err error
	stats.TopProjects, err = a.topProjects(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors, err = a.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (a *Analytics) topProjects(ctx context.Context, limit int) ([]ProjectStat, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT slug, views, last_viewed
		FROM project_views
		ORDER BY views DESC, last_viewed DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProjectStat
	for rows.Next() {
		var (
			stat ProjectStat
			last string
		)
		if err := rows.Scan(&stat.Slug, &stat.Views, &last); err != nil {
			return nil, err
		}
		stat.LastViewed = parseTimestamp(last)
		out = append(out, stat)
	}
	return out, rows.Err()
}

// RecentVisitors returns the newest visitor records first.
func (a *Analytics) RecentVisitors(ctx context.Context, limit int) ([]VisitorMetric, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VisitorMetric
	for rows.Next() {
		var (
			v  VisitorMetric
			ts string
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, err
		}
		v.Timestamp = parseTimestamp(ts)
		out = append(out, v)
	}
	return out, rows.Err()
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(sqliteTimeLayout, s)
	if err != nil {
		log.Printf("Unparseable analytics timestamp %q: %v", s, err)
		return time.Time{}
	}
	return t
}
