package database

import (
	"context"
	"embed"
	"testing"
)

// testMigrationsDir is the directory containing test migration files.
const testMigrationsDir = "testdata"

//go:embed testdata/*.sql
var testMigrationsFS embed.FS

// useTestMigrations swaps in the testdata migrations for the duration of a test.
func useTestMigrations(t *testing.T) {
	t.Helper()

	origFS := MigrationsFS
	origDir := MigrationsDir
	t.Cleanup(func() {
		MigrationsFS = origFS
		MigrationsDir = origDir
	})

	MigrationsFS = testMigrationsFS
	MigrationsDir = testMigrationsDir
}

func TestMigrate(t *testing.T) {
	useTestMigrations(t)
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	// Verify table was created
	var tableName string
	err := db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name='test_agents'",
	).Scan(&tableName)
	if err != nil {
		t.Fatalf("table test_agents not created: %v", err)
	}

	// Verify migration was recorded
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("querying schema_migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("applied migrations = %d, want 1", count)
	}

	// Running again should be idempotent
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
}

func TestMigrateDown(t *testing.T) {
	useTestMigrations(t)
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if err := db.MigrateDown(ctx); err != nil {
		t.Fatalf("MigrateDown() error = %v", err)
	}

	// Table should be gone
	var tableName string
	err := db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name='test_agents'",
	).Scan(&tableName)
	if err == nil {
		t.Error("table test_agents should have been dropped")
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("querying schema_migrations: %v", err)
	}
	if count != 0 {
		t.Errorf("applied migrations = %d, want 0 after rollback", count)
	}
}

func TestParseMigrationFilename(t *testing.T) {
	tests := []struct {
		name        string
		wantVersion string
		wantUp      bool
		wantOK      bool
	}{
		{"20260301_120000_initial_schema.up.sql", "20260301_120000", true, true},
		{"20260301_120000_initial_schema.down.sql", "20260301_120000", false, true},
		{"not-a-migration.sql", "", false, false},
		{"20260301_120000_initial_schema.sql", "", false, false},
		{"README.md", "", false, false},
	}

	for _, tt := range tests {
		version, isUp, ok := parseMigrationFilename(tt.name)
		if ok != tt.wantOK {
			t.Errorf("parseMigrationFilename(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if version != tt.wantVersion {
			t.Errorf("parseMigrationFilename(%q) version = %q, want %q", tt.name, version, tt.wantVersion)
		}
		if isUp != tt.wantUp {
			t.Errorf("parseMigrationFilename(%q) isUp = %v, want %v", tt.name, isUp, tt.wantUp)
		}
	}
}

func TestExtractMigrationName(t *testing.T) {
	if got := extractMigrationName("20260301_120000_initial_schema.up.sql"); got != "initial_schema" {
		t.Errorf("extractMigrationName() = %q, want %q", got, "initial_schema")
	}
}
