package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fardannozami/oceanguard/internal/domain"
)

type ReportRepository struct {
	db *sql.DB
	// legacyDate mirrors MigrationResult.LegacyDate: the old `date` column
	// survived a failed rebuild and must stay in sync with date_reported.
	legacyDate bool
}

func NewReportRepository(db *sql.DB, legacyDate bool) *ReportRepository {
	return &ReportRepository{db: db, legacyDate: legacyDate}
}

func (r *ReportRepository) AddReport(ctx context.Context, report *domain.Report) (int64, error) {
	query := `
		INSERT INTO reports (user_id, location, waste_type, description, date_reported, created_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`
	date := nullableDate(report.DateReported)
	args := []any{nullableID(report.UserID), report.Location, report.WasteType, report.Description, date}
	if r.legacyDate {
		query = `
			INSERT INTO reports (user_id, location, waste_type, description, date_reported, created_at, date)
			VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, COALESCE(?, ''))
		`
		args = append(args, date)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert report: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read report id: %w", err)
	}
	report.ID = id
	return id, nil
}

func (r *ReportRepository) GetReport(ctx context.Context, id int64) (*domain.Report, error) {
	query := r.selectReports() + ` WHERE r.id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// GetAllReports lists newest first. Rows without a creation time sort last
// and ties fall back to the identifier.
func (r *ReportRepository) GetAllReports(ctx context.Context) ([]*domain.Report, error) {
	query := r.selectReports() + ` ORDER BY r.created_at IS NULL, r.created_at DESC, r.id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select reports: %w", err)
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) UpdateReport(ctx context.Context, report *domain.Report) error {
	query := `
		UPDATE reports
		SET location = ?, waste_type = ?, description = ?, date_reported = ?
		WHERE id = ?
	`
	date := nullableDate(report.DateReported)
	args := []any{report.Location, report.WasteType, report.Description, date, report.ID}
	if r.legacyDate {
		query = `
			UPDATE reports
			SET location = ?, waste_type = ?, description = ?, date_reported = ?, date = COALESCE(?, '')
			WHERE id = ?
		`
		args = []any{report.Location, report.WasteType, report.Description, date, date, report.ID}
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	return expectOneRow(res)
}

func (r *ReportRepository) DeleteReport(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return expectOneRow(res)
}

func (r *ReportRepository) selectReports() string {
	dateExpr := "r.date_reported"
	if r.legacyDate {
		dateExpr = "COALESCE(r.date_reported, NULLIF(r.date, ''))"
	}
	return `
		SELECT r.id, r.user_id, r.location, r.waste_type, r.description,
		       ` + dateExpr + `, u.username, CAST(r.created_at AS TEXT)
		FROM reports r
		LEFT JOIN users u ON r.user_id = u.id`
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (*domain.Report, error) {
	var report domain.Report
	var userID sql.NullInt64
	var location, wasteType, description sql.NullString
	var dateReported, owner, createdAt sql.NullString
	err := s.Scan(&report.ID, &userID, &location, &wasteType, &description, &dateReported, &owner, &createdAt)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		id := userID.Int64
		report.UserID = &id
	}
	report.Location = location.String
	report.WasteType = wasteType.String
	report.Description = description.String
	if dateReported.Valid {
		d := dateReported.String
		report.DateReported = &d
	}
	report.Owner = owner.String
	report.CreatedAt = parseTimestamp(createdAt)

	return &report, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

// nullableDate stores blank dates as NULL. Format checks belong to callers.
func nullableDate(d *string) any {
	if d == nil || strings.TrimSpace(*d) == "" {
		return nil
	}
	return *d
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02",
}

// parseTimestamp returns the zero time for NULL or unparseable values; old
// databases carry whatever the writing tool put there.
func parseTimestamp(s sql.NullString) time.Time {
	if !s.Valid {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s.String); err == nil {
			return t
		}
	}
	return time.Time{}
}
