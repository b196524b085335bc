// Package db implements the embedded SQLite store: fixture seeding, schema
// introspection, and read-only statement execution.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps access to the file-backed SQLite database. Connections are
// opened and released within the scope of each call; there is no pooling
// or cross-request reuse.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a store for the database file at path.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// open establishes a scoped connection. Callers must close it on every
// exit path.
func (s *Store) open() (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return conn, nil
}

// EnsureDatabase creates and seeds the database file if it does not exist
// at the expected location. Idempotent: an existing file is left untouched,
// so repeated calls keep schema and seed row counts identical.
func (s *Store) EnsureDatabase(ctx context.Context) error {
	if _, err := os.Stat(s.path); err == nil {
		s.logger.Debug("database already exists", "path", s.path)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat database: %w", err)
	}

	s.logger.Info("creating sample database", "path", s.path)
	return s.Reseed(ctx)
}

// Reseed redeploys the fixture wholesale: drop everything, recreate the
// schema, and reload the sample rows. There is no incremental migration.
func (s *Store) Reseed(ctx context.Context) error {
	conn, err := s.open()
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, script := range []string{DropSQL, SchemaSQL, SeedSQL} {
		if _, err := conn.ExecContext(ctx, script); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	s.logger.Info("sample database seeded", "path", s.path)
	return nil
}
