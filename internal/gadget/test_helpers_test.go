package gadget

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// testDB creates a temporary SQLite database with the gadgets schema applied.
// The database file is cleaned up when the test completes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	// Use a temp file so WAL mode works (in-memory doesn't support it)
	f, err := os.CreateTemp("", "gadget-test-*.db")
	if err != nil {
		t.Fatalf("creating temp db: %v", err)
	}
	dbPath := f.Name()
	f.Close()
	t.Cleanup(func() { os.Remove(dbPath) })

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	migrationSQL := `
		CREATE TABLE gadgets (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			status TEXT NOT NULL DEFAULT 'Available',
			decommissioned_at TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		) STRICT;

		CREATE UNIQUE INDEX idx_gadgets_name ON gadgets(name);
		CREATE INDEX idx_gadgets_status ON gadgets(status);
	`
	if _, err := db.Exec(migrationSQL); err != nil {
		t.Fatalf("applying gadgets schema: %v", err)
	}

	return db
}

// testService wires a Service against a fresh test database and returns
// both the service and its code store for direct inspection.
func testService(t *testing.T) (*Service, *CodeStore) {
	t.Helper()

	codes := NewCodeStore()
	svc := NewService(NewSQLiteRepository(testDB(t)), codes)
	return svc, codes
}
