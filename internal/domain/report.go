package domain

import (
	"context"
	"errors"
	"time"
)

var ErrReportNotFound = errors.New("report not found")

// Report is a marine-waste sighting. DateReported is nil when the reporter
// left the date blank; Owner is empty when no user is linked.
type Report struct {
	ID           int64     `json:"id" db:"id"`
	UserID       *int64    `json:"user_id,omitempty" db:"user_id"`
	Location     string    `json:"location" db:"location"`
	WasteType    string    `json:"waste_type" db:"waste_type"`
	Description  string    `json:"description" db:"description"`
	DateReported *string   `json:"date_reported,omitempty" db:"date_reported"`
	Owner        string    `json:"owner,omitempty" db:"username"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type ReportRepository interface {
	AddReport(ctx context.Context, report *Report) (int64, error)
	GetReport(ctx context.Context, id int64) (*Report, error)
	GetAllReports(ctx context.Context) ([]*Report, error)
	UpdateReport(ctx context.Context, report *Report) error
	DeleteReport(ctx context.Context, id int64) error
}
