package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndReadStats(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.RecordKill("alice"); err != nil {
			t.Fatalf("record kill: %v", err)
		}
	}
	if err := s.RecordDeath("alice"); err != nil {
		t.Fatalf("record death: %v", err)
	}

	ps, err := s.Stats("alice")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if ps.Kills != 3 || ps.Deaths != 1 {
		t.Fatalf("alice stats = %+v, want 3 kills 1 death", ps)
	}
}

func TestStatsForUnknownPlayerAreZero(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	ps, err := s.Stats("nobody")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if ps.Kills != 0 || ps.Deaths != 0 {
		t.Fatalf("unseen player stats = %+v, want zeroes", ps)
	}
}

func TestTopPlayersOrdering(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	_ = s.RecordKill("bob")
	_ = s.RecordKill("bob")
	_ = s.RecordKill("carol")
	_ = s.RecordDeath("carol")
	_ = s.RecordKill("dave")

	top, err := s.TopPlayers(10)
	if err != nil {
		t.Fatalf("top players: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(top))
	}
	if top[0].Name != "bob" {
		t.Fatalf("top player = %q, want bob", top[0].Name)
	}
	// carol and dave both have 1 kill; dave has fewer deaths.
	if top[1].Name != "dave" || top[2].Name != "carol" {
		t.Fatalf("tiebreak order = %q, %q, want dave, carol", top[1].Name, top[2].Name)
	}
}

func TestRejectsBlankNames(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	if err := s.RecordKill("  "); err == nil {
		t.Fatalf("blank name should be rejected")
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatalf("empty path should be rejected")
	}
}
