// Package store persists kill/death tallies in SQLite so scores
// survive server restarts.
package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS player_stats (
	name   TEXT PRIMARY KEY,
	kills  INTEGER NOT NULL DEFAULT 0,
	deaths INTEGER NOT NULL DEFAULT 0
);`

// Store is a SQLite-backed stats store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the stats database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("stats db path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordKill increments the kill tally for a player name.
func (s *Store) RecordKill(name string) error {
	return s.bump(name, "kills")
}

// RecordDeath increments the death tally for a player name.
func (s *Store) RecordDeath(name string) error {
	return s.bump(name, "deaths")
}

func (s *Store) bump(name, column string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("player name is required")
	}

	// column is one of the two fixed names above, never user input.
	query := fmt.Sprintf(`
		INSERT INTO player_stats (name, %[1]s) VALUES (?, 1)
		ON CONFLICT(name) DO UPDATE SET %[1]s = %[1]s + 1`, column)

	if _, err := s.db.Exec(query, name); err != nil {
		return fmt.Errorf("update %s for %q: %w", column, name, err)
	}
	return nil
}

// PlayerStats is one scoreboard row.
type PlayerStats struct {
	Name   string
	Kills  int
	Deaths int
}

// TopPlayers returns up to limit players ordered by kills, then fewest
// deaths, then name.
func (s *Store) TopPlayers(limit int) ([]PlayerStats, error) {
	rows, err := s.db.Query(`
		SELECT name, kills, deaths FROM player_stats
		ORDER BY kills DESC, deaths ASC, name ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top players: %w", err)
	}
	defer rows.Close()

	var out []PlayerStats
	for rows.Next() {
		var ps PlayerStats
		if err := rows.Scan(&ps.Name, &ps.Kills, &ps.Deaths); err != nil {
			return nil, fmt.Errorf("scan player stats: %w", err)
		}
		out = append(out, ps)
	}
	return out, rows.Err()
}

// Stats returns the tallies for one player name; zeroes if unseen.
func (s *Store) Stats(name string) (PlayerStats, error) {
	ps := PlayerStats{Name: name}
	err := s.db.QueryRow(
		`SELECT kills, deaths FROM player_stats WHERE name = ?`, name,
	).Scan(&ps.Kills, &ps.Deaths)
	if err == sql.ErrNoRows {
		return ps, nil
	}
	if err != nil {
		return ps, fmt.Errorf("query stats for %q: %w", name, err)
	}
	return ps, nil
}
