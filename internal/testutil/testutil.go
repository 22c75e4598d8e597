package testutil

import (
	"database/sql"
	"testing"

	"deviceInventoryManagement/internal/db"
)

// OpenTestDB opens an in-memory SQLite database with the inventory
// schema applied. Caller cleanup happens via t.Cleanup.
func OpenTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	// Shared cache so additional connections in the same test see one database.
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	if err := db.Init(d); err != nil {
		t.Fatalf("init test db: %v", err)
	}
	return d
}
