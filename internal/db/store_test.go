package db

import (
	"context"
	"path/filepath"
	"testing"
)

// newTestStore creates a seeded store backed by a temp file.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "company.db"), nil)
	if err := store.EnsureDatabase(context.Background()); err != nil {
		t.Fatalf("EnsureDatabase() error = %v", err)
	}
	return store
}

// seedCounts are the fixture row counts per table.
var seedCounts = map[string]int{
	"departments":         5,
	"employees":           15,
	"projects":            5,
	"salaries":            15,
	"project_assignments": 11,
}

func rowCount(t *testing.T, store *Store, table string) int {
	t.Helper()

	result, err := store.Execute(context.Background(), "SELECT COUNT(*) FROM "+table)
	if err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	n, ok := result.Rows[0][0].(int64)
	if !ok {
		t.Fatalf("count %s: unexpected type %T", table, result.Rows[0][0])
	}
	return int(n)
}

func TestEnsureDatabaseSeedsFixture(t *testing.T) {
	store := newTestStore(t)

	for table, want := range seedCounts {
		if got := rowCount(t, store, table); got != want {
			t.Errorf("table %s has %d rows, want %d", table, got, want)
		}
	}
}

func TestEnsureDatabaseIdempotent(t *testing.T) {
	store := newTestStore(t)

	// Second call must leave the existing database untouched.
	if err := store.EnsureDatabase(context.Background()); err != nil {
		t.Fatalf("second EnsureDatabase() error = %v", err)
	}

	for table, want := range seedCounts {
		if got := rowCount(t, store, table); got != want {
			t.Errorf("after second ensure, table %s has %d rows, want %d", table, got, want)
		}
	}
}

func TestReseedRestoresFixture(t *testing.T) {
	store := newTestStore(t)

	// Damage the data out-of-band, then redeploy the fixture wholesale.
	conn, err := store.open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := conn.Exec("DELETE FROM salaries"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	conn.Close()

	if err := store.Reseed(context.Background()); err != nil {
		t.Fatalf("Reseed() error = %v", err)
	}
	if got := rowCount(t, store, "salaries"); got != seedCounts["salaries"] {
		t.Errorf("after reseed, salaries has %d rows, want %d", got, seedCounts["salaries"])
	}
}
