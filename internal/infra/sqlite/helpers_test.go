package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/fardannozami/oceanguard/internal/infra/sqlite"
)

// openRawDB opens an empty database file with the go-sqlite3 driver. A file
// is used instead of :memory: because each pooled connection would get its
// own in-memory database.
func openRawDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ocean.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestDB(t *testing.T) (*sql.DB, *sqlite.UserRepository, *sqlite.ReportRepository) {
	t.Helper()

	db := openRawDB(t)
	result, err := sqlite.Migrate(context.Background(), db, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db, sqlite.NewUserRepository(db), sqlite.NewReportRepository(db, result.LegacyDate)
}

func mustExec(t *testing.T, db *sql.DB, query string, args ...any) {
	t.Helper()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}

func strPtr(s string) *string { return &s }
