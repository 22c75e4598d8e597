package db

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath is the on-disk location of the inventory database when no
// path is configured.
const DefaultPath = "lib/database/inventory.sqlite"

// Open opens (or creates) the local SQLite database file. For plain file
// paths the parent directory and the file are created on first use;
// "file:" URIs (used by tests for in-memory databases) are passed to the
// driver untouched. The returned handle is verified with a Ping.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultPath
	}
	if !strings.HasPrefix(path, "file:") {
		if err := ensureDatabaseFile(path); err != nil {
			return nil, err
		}
	}
	d, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, err
	}
	// Pragmas for robustness
	// journal_mode may not be supported in some contexts (e.g., in-memory). Ignore errors.
	_, _ = d.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := d.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = d.Close()
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA foreign_keys=ON`); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

// ensureDatabaseFile creates the database directory and file if absent.
// Safe to call concurrently: MkdirAll tolerates existing directories and
// O_CREATE without O_EXCL tolerates an existing file, so first-run races
// cannot fail each other.
func ensureDatabaseFile(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	// SQLite would create the file itself; creating it here surfaces
	// I/O errors before the driver wraps them.
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
