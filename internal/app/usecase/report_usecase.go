package usecase

import (
	"context"
	"strings"

	"github.com/fardannozami/oceanguard/internal/domain"
	"github.com/fardannozami/oceanguard/internal/validation"
)

// ReportInput is the raw form content for a submit or an edit.
type ReportInput struct {
	Location    string
	WasteType   string
	Description string
	Date        string
}

func (in ReportInput) normalize() ReportInput {
	return ReportInput{
		Location:    strings.TrimSpace(in.Location),
		WasteType:   strings.TrimSpace(in.WasteType),
		Description: strings.TrimSpace(in.Description),
		Date:        strings.TrimSpace(in.Date),
	}
}

func (in ReportInput) date() *string {
	if in.Date == "" {
		return nil
	}
	d := in.Date
	return &d
}

type SubmitReportUsecase struct {
	repo domain.ReportRepository
}

func NewSubmitReportUsecase(repo domain.ReportRepository) *SubmitReportUsecase {
	return &SubmitReportUsecase{repo: repo}
}

// Execute validates the form and stores it, linked to userID when non-nil.
func (uc *SubmitReportUsecase) Execute(ctx context.Context, userID *int64, in ReportInput) (int64, error) {
	in = in.normalize()
	if err := validation.ValidateReport(in.Location, in.WasteType, in.Date); err != nil {
		return 0, err
	}

	return uc.repo.AddReport(ctx, &domain.Report{
		UserID:       userID,
		Location:     in.Location,
		WasteType:    in.WasteType,
		Description:  in.Description,
		DateReported: in.date(),
	})
}

type ListReportsUsecase struct {
	repo domain.ReportRepository
}

func NewListReportsUsecase(repo domain.ReportRepository) *ListReportsUsecase {
	return &ListReportsUsecase{repo: repo}
}

func (uc *ListReportsUsecase) Execute(ctx context.Context) ([]*domain.Report, error) {
	return uc.repo.GetAllReports(ctx)
}

type GetReportUsecase struct {
	repo domain.ReportRepository
}

func NewGetReportUsecase(repo domain.ReportRepository) *GetReportUsecase {
	return &GetReportUsecase{repo: repo}
}

// Execute returns domain.ErrReportNotFound instead of a nil report.
func (uc *GetReportUsecase) Execute(ctx context.Context, id int64) (*domain.Report, error) {
	report, err := uc.repo.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}

type UpdateReportUsecase struct {
	repo domain.ReportRepository
}

func NewUpdateReportUsecase(repo domain.ReportRepository) *UpdateReportUsecase {
	return &UpdateReportUsecase{repo: repo}
}

func (uc *UpdateReportUsecase) Execute(ctx context.Context, id int64, in ReportInput) error {
	in = in.normalize()
	if err := validation.ValidateReport(in.Location, in.WasteType, in.Date); err != nil {
		return err
	}

	return uc.repo.UpdateReport(ctx, &domain.Report{
		ID:           id,
		Location:     in.Location,
		WasteType:    in.WasteType,
		Description:  in.Description,
		DateReported: in.date(),
	})
}

type DeleteReportUsecase struct {
	repo domain.ReportRepository
}

func NewDeleteReportUsecase(repo domain.ReportRepository) *DeleteReportUsecase {
	return &DeleteReportUsecase{repo: repo}
}

func (uc *DeleteReportUsecase) Execute(ctx context.Context, id int64) error {
	return uc.repo.DeleteReport(ctx, id)
}
