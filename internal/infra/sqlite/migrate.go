package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/fardannozami/oceanguard/internal/infra/sqlite/migrations"
	"github.com/fardannozami/oceanguard/internal/logging"
)

type MigrationOutcome int

const (
	// MigrationNoop: the reports table already had the current layout.
	MigrationNoop MigrationOutcome = iota
	// MigrationRebuilt: a legacy table with a `date` column was rebuilt.
	MigrationRebuilt
	// MigrationPatched: missing columns were added in place.
	MigrationPatched
	// MigrationFailed: the rebuild or a column addition failed; see Err.
	// Reported again on every run while the legacy `date` column remains.
	MigrationFailed
)

func (o MigrationOutcome) String() string {
	switch o {
	case MigrationNoop:
		return "noop"
	case MigrationRebuilt:
		return "rebuilt"
	case MigrationPatched:
		return "patched"
	case MigrationFailed:
		return "failed"
	default:
		return fmt.Sprintf("MigrationOutcome(%d)", int(o))
	}
}

// MigrationResult describes what Migrate did to the legacy reports table.
// A failed legacy upgrade does not make Migrate return an error: the
// database stays usable and the caller decides how loudly to report it.
type MigrationResult struct {
	Outcome       MigrationOutcome
	SchemaVersion int64
	Steps         []string
	// LegacyDate is true when the old `date` column is still present, so
	// repositories must keep reading and writing it.
	LegacyDate bool
	Err        error
}

const createReportsNew = `
	CREATE TABLE reports_new (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		location TEXT NOT NULL,
		waste_type TEXT NOT NULL,
		description TEXT,
		date_reported TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id)
	)
`

// Migrate applies the versioned schema and then upgrades a legacy reports
// table in place. Only a goose failure is returned as an error.
func Migrate(ctx context.Context, db *sql.DB, logger *zap.Logger) (MigrationResult, error) {
	var result MigrationResult

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(logging.Goose(logger))
	if err := goose.SetDialect("sqlite3"); err != nil {
		return result, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return result, fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return result, fmt.Errorf("failed to read schema version: %w", err)
	}
	result.SchemaVersion = version

	cols, err := reportColumns(ctx, db)
	if err != nil {
		return result, err
	}

	var (
		errs    []error
		rebuilt bool
		patched bool
	)

	// A table that still has `date` is rebuilt on every start until the copy
	// succeeds, so a failed upgrade keeps being reported.
	if cols["date"] {
		if err := rebuildReports(ctx, db, cols); err != nil {
			logger.Warn("legacy reports rebuild failed, falling back to column patches", zap.Error(err))
			errs = append(errs, fmt.Errorf("rebuild reports: %w", err))
		} else {
			rebuilt = true
			result.Steps = append(result.Steps, "rebuild reports")
		}

		if cols, err = reportColumns(ctx, db); err != nil {
			return result, err
		}
	}

	patches := []struct {
		column string
		ddl    string
	}{
		{"location", "ALTER TABLE reports ADD COLUMN location TEXT NOT NULL DEFAULT ''"},
		{"waste_type", "ALTER TABLE reports ADD COLUMN waste_type TEXT NOT NULL DEFAULT ''"},
		{"description", "ALTER TABLE reports ADD COLUMN description TEXT"},
		{"date_reported", "ALTER TABLE reports ADD COLUMN date_reported TEXT"},
		{"user_id", "ALTER TABLE reports ADD COLUMN user_id INTEGER"},
		// ADD COLUMN rejects CURRENT_TIMESTAMP as a default
		{"created_at", "ALTER TABLE reports ADD COLUMN created_at TIMESTAMP"},
	}
	for _, p := range patches {
		if cols[p.column] {
			continue
		}
		if _, err := db.ExecContext(ctx, p.ddl); err != nil {
			errs = append(errs, fmt.Errorf("add column %s: %w", p.column, err))
			continue
		}
		patched = true
		result.Steps = append(result.Steps, "add column "+p.column)
	}

	if cols, err = reportColumns(ctx, db); err != nil {
		return result, err
	}
	result.LegacyDate = cols["date"]

	switch {
	case len(errs) > 0:
		result.Outcome = MigrationFailed
		result.Err = errors.Join(errs...)
	case rebuilt:
		result.Outcome = MigrationRebuilt
	case patched:
		result.Outcome = MigrationPatched
	default:
		result.Outcome = MigrationNoop
	}

	logger.Info("storage initialized",
		zap.Int64("schema_version", result.SchemaVersion),
		zap.Stringer("outcome", result.Outcome),
		zap.Strings("steps", result.Steps),
		zap.Bool("legacy_date", result.LegacyDate),
	)

	return result, nil
}

func reportColumns(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT name FROM pragma_table_info('reports')`)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect reports table: %w", err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols[strings.ToLower(name)] = true
	}
	return cols, rows.Err()
}

// rebuildReports copies a legacy reports table into the current layout,
// mapping `date` onto `date_reported` (an empty legacy date becomes NULL). Columns the old table lacks get
// defaults. Runs in one transaction; on error nothing changes.
func rebuildReports(ctx context.Context, db *sql.DB, cols map[string]bool) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	pick := func(col, fallback string) string {
		if cols[col] {
			return col
		}
		return fallback
	}

	selectCols := []string{
		pick("id", "rowid AS id"),
		pick("user_id", "NULL AS user_id"),
		pick("location", "'' AS location"),
		pick("waste_type", "'' AS waste_type"),
		pick("description", "NULL AS description"),
		"NULLIF(date, '') AS date_reported",
		"CURRENT_TIMESTAMP AS created_at",
	}
	if cols["date_reported"] {
		// left behind by an earlier patched upgrade; edits since then live here
		selectCols[5] = "COALESCE(date_reported, NULLIF(date, '')) AS date_reported"
	}
	if cols["created_at"] {
		selectCols[6] = "COALESCE(created_at, CURRENT_TIMESTAMP) AS created_at"
	}

	stmts := []string{
		`DROP TABLE IF EXISTS reports_new`,
		createReportsNew,
		fmt.Sprintf(`INSERT INTO reports_new (id, user_id, location, waste_type, description, date_reported, created_at)
			SELECT %s FROM reports`, strings.Join(selectCols, ", ")),
		`DROP TABLE reports`,
		`ALTER TABLE reports_new RENAME TO reports`,
	}
	for _, stmt := range stmts {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return tx.Commit()
}
