// Package store provides a SQLite-backed record of panel sizes so a split
// layout comes back the way the user left it.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS layouts (
	name        TEXT NOT NULL,
	panel_count INTEGER NOT NULL,
	sizes       TEXT NOT NULL,
	container   INTEGER NOT NULL,
	updated     INTEGER NOT NULL,
	PRIMARY KEY (name, panel_count)
);

CREATE INDEX IF NOT EXISTS idx_layouts_updated ON layouts(updated);
`

// Layout is a remembered set of panel sizes.
type Layout struct {
	Name      string
	Sizes     []int
	Container int
	Updated   time.Time
}

// Store is a SQLite-backed layout store.
type Store struct {
	mu  sync.Mutex
	db  *sql.DB
	ttl time.Duration
}

// Open creates or opens a layout database at the given path.
// Layouts untouched for longer than ttl are purged on open; zero keeps them forever.
func Open(dbPath string, ttl time.Duration) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open layout db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	// Early versions keyed layouts by name only. Sizes are cheap to lose.
	if hasTable(db, "layouts") && !hasColumn(db, "layouts", "panel_count") {
		db.Exec("DROP TABLE layouts") //nolint:errcheck // best-effort migration
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{db: db, ttl: ttl}
	s.purgeStale()
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// SaveLayout records sizes for the named layout. Layouts with a different
// panel count are kept separately. No-op on nil receiver.
func (s *Store) SaveLayout(name string, sizes []int, container int) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sizes)
	if err != nil {
		return fmt.Errorf("encode sizes: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO layouts (name, panel_count, sizes, container, updated) VALUES (?, ?, ?, ?, ?)",
		name, len(sizes), string(data), container, time.Now().Unix(),
	)
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("failed to save layout")
		return err
	}
	return nil
}

// LoadLayout returns the remembered layout for name with panelCount panels.
// Safe to call on a nil receiver (returns miss).
func (s *Store) LoadLayout(name string, panelCount int) (Layout, bool) {
	if s == nil {
		return Layout{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		raw       string
		container int
		updated   int64
	)
	err := s.db.QueryRow(
		"SELECT sizes, container, updated FROM layouts WHERE name = ? AND panel_count = ?",
		name, panelCount,
	).Scan(&raw, &container, &updated)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Warn().Err(err).Str("name", name).Msg("failed to load layout")
		}
		return Layout{}, false
	}

	var sizes []int
	if err := json.Unmarshal([]byte(raw), &sizes); err != nil || len(sizes) != panelCount {
		log.Warn().Err(err).Str("name", name).Msg("discarding corrupt layout")
		return Layout{}, false
	}
	return Layout{
		Name:      name,
		Sizes:     sizes,
		Container: container,
		Updated:   time.Unix(updated, 0),
	}, true
}

// DeleteLayout forgets every remembered layout for name. No-op on nil receiver.
func (s *Store) DeleteLayout(name string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM layouts WHERE name = ?", name); err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	return nil
}

// ListLayouts returns every remembered layout, most recently updated first.
func (s *Store) ListLayouts() ([]Layout, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT name, sizes, container, updated FROM layouts ORDER BY updated DESC, name")
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer rows.Close()

	var out []Layout
	for rows.Next() {
		var (
			l       Layout
			raw     string
			updated int64
		)
		if err := rows.Scan(&l.Name, &raw, &l.Container, &updated); err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(raw), &l.Sizes); err != nil {
			continue
		}
		l.Updated = time.Unix(updated, 0)
		out = append(out, l)
	}
	return out, rows.Err()
}

func hasTable(db *sql.DB, table string) bool {
	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
	return err == nil
}

// hasColumn checks if a table has a specific column.
func hasColumn(db *sql.DB, table, column string) bool {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table)) //nolint:gosec // table name is hardcoded by caller
	if err != nil {
		return false
	}
	defer rows.Close()
	for rows.Next() {
		var cid int
		var name, typ string
		var notNull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			continue
		}
		if name == column {
			return true
		}
	}
	return false
}

// purgeStale removes layouts older than the TTL.
func (s *Store) purgeStale() {
	if s.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.ttl).Unix()
	res, err := s.db.Exec("DELETE FROM layouts WHERE updated <= ?", cutoff)
	if err != nil {
		log.Warn().Err(err).Msg("failed to purge stale layouts")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Info().Int64("deleted", n).Msg("purged stale layouts")
	}
}
