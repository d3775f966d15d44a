package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/fardannozami/oceanguard/internal/app/usecase"
	"github.com/fardannozami/oceanguard/internal/domain"
	"github.com/fardannozami/oceanguard/internal/validation"
)

const invalidReportMessage = "Fill required fields correctly. Date must be MM/DD/YYYY if provided."

func reportFields() []field {
	return []field{
		{label: "Location:", placeholder: "e.g. Manila Bay, north shore", limit: 120},
		{label: "Waste Type:", placeholder: "e.g. Plastic bottles", limit: 80},
		{label: "Description:", placeholder: "optional", limit: 500},
		{label: "Date (MM/DD/YYYY):", placeholder: "optional", limit: 10},
	}
}

func (f form) reportInput() usecase.ReportInput {
	return usecase.ReportInput{
		Location:    f.value(0),
		WasteType:   f.value(1),
		Description: f.value(2),
		Date:        f.value(3),
	}
}

func newRecordsTable(s Styles) table.Model {
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Location", Width: 24},
			{Title: "Waste Type", Width: 18},
			{Title: "Date", Width: 12},
			{Title: "Reported By", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
		table.WithStyles(s.Table),
	)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func dateText(r *domain.Report) string {
	if r.DateReported == nil {
		return ""
	}
	return *r.DateReported
}

// ---- report form ----

func (a *App) showReportForm() tea.Cmd {
	a.screen = screenReportForm
	a.reportForm = newForm(reportFields()...)
	return a.reportForm.setFocus(0)
}

func (a *App) updateReportForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		a.submitReport()
		return nil
	case "esc":
		a.showHome()
		return nil
	}
	return a.reportForm.update(msg)
}

func (a *App) submitReport() {
	var userID *int64
	if a.session != nil {
		id := a.session.ID
		userID = &id
	}

	id, err := a.svc.Submit.Execute(a.ctx, userID, a.reportForm.reportInput())
	switch {
	case errors.Is(err, validation.ErrInvalidReport):
		a.warn("Validation", invalidReportMessage)
		return
	case err != nil:
		a.log.Error("submit report", zap.Error(err))
		a.fail("Error", err.Error())
		return
	}

	a.log.Info("report submitted", zap.Int64("report_id", id))
	if a.showRecords() {
		a.info("Success", fmt.Sprintf("Report submitted (ID: %d)", id))
	}
}

func (a *App) viewReportForm() string {
	return a.header("REPORT WASTE") +
		a.reportForm.view(a.styles) +
		a.help("tab: next field", "enter: submit", "esc: back")
}

// ---- records ----

// showRecords reloads the table. On a storage error the current screen
// stays and an error dialog opens.
func (a *App) showRecords() bool {
	reports, err := a.svc.List.Execute(a.ctx)
	if err != nil {
		a.log.Error("list reports", zap.Error(err))
		a.fail("Database Error", err.Error())
		return false
	}

	rows := make([]table.Row, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, table.Row{
			strconv.FormatInt(r.ID, 10),
			orDash(r.Location),
			orDash(r.WasteType),
			orDash(dateText(r)),
			orDash(r.Owner),
		})
	}

	a.reports = reports
	a.records.SetRows(rows)
	// SetRows keeps the old cursor; pull it back after the list shrinks
	if n := len(rows); n > 0 && a.records.Cursor() >= n {
		a.records.SetCursor(n - 1)
	}
	a.screen = screenRecords
	return true
}

func (a *App) selectedReport() *domain.Report {
	i := a.records.Cursor()
	if i < 0 || i >= len(a.reports) {
		return nil
	}
	return a.reports[i]
}

func (a *App) updateRecords(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "v", "enter":
		a.viewSelected()
		return nil
	case "e":
		return a.editSelected()
	case "d", "x", "delete":
		a.deleteSelected()
		return nil
	case "r":
		a.showRecords()
		return nil
	case "esc", "q":
		a.showHome()
		return nil
	}

	var cmd tea.Cmd
	a.records, cmd = a.records.Update(msg)
	return cmd
}

// fetchSelected re-reads the highlighted row so view and edit never work
// from a stale list.
func (a *App) fetchSelected() *domain.Report {
	sel := a.selectedReport()
	if sel == nil {
		a.warn("Warning", "Select a record first.")
		return nil
	}

	report, err := a.svc.Get.Execute(a.ctx, sel.ID)
	switch {
	case errors.Is(err, domain.ErrReportNotFound):
		a.fail("Error", "Record not found.")
		return nil
	case err != nil:
		a.log.Error("get report", zap.Int64("report_id", sel.ID), zap.Error(err))
		a.fail("Database Error", err.Error())
		return nil
	}
	return report
}

func (a *App) deleteSelected() {
	sel := a.selectedReport()
	if sel == nil {
		a.warn("Warning", "Select a record first.")
		return
	}

	id := sel.ID
	a.confirm("Confirm", "Delete this record?", func() tea.Cmd {
		if err := a.svc.Delete.Execute(a.ctx, id); err != nil {
			a.log.Error("delete report", zap.Int64("report_id", id), zap.Error(err))
			a.fail("Error", err.Error())
			return nil
		}
		a.log.Info("report deleted", zap.Int64("report_id", id))
		if a.showRecords() {
			a.info("Deleted", "Record deleted.")
		}
		return nil
	})
}

func (a *App) viewRecords() string {
	var body string
	if len(a.reports) == 0 {
		body = a.styles.Help.Render("No reports yet.") + "\n"
	} else {
		body = a.records.View() + "\n"
	}
	return a.header("WASTE RECORDS") +
		body +
		a.help("↑/↓: move", "v: view", "e: edit", "d: delete", "r: refresh", "esc: back")
}

// ---- view ----

func (a *App) viewSelected() {
	if report := a.fetchSelected(); report != nil {
		a.viewing = report
		a.screen = screenView
	}
}

func (a *App) updateView(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "q":
		a.showRecords()
	case "e":
		return a.startEdit(a.viewing)
	}
	return nil
}

func (a *App) viewRecord() string {
	r := a.viewing
	created := ""
	if !r.CreatedAt.IsZero() {
		created = r.CreatedAt.Format("01/02/2006 15:04")
	}

	rows := [][2]string{
		{"ID", strconv.FormatInt(r.ID, 10)},
		{"Location", r.Location},
		{"Waste Type", r.WasteType},
		{"Description", r.Description},
		{"Date", dateText(r)},
		{"Reported By", r.Owner},
		{"Submitted", created},
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(a.styles.Label.Render(fmt.Sprintf("%-12s", row[0]+":")))
		sb.WriteString(" ")
		sb.WriteString(a.styles.Value.Render(orDash(row[1])))
		sb.WriteString("\n")
	}

	return a.header("VIEW RECORD") + sb.String() + a.help("e: edit", "esc: back")
}

// ---- edit ----

func (a *App) editSelected() tea.Cmd {
	report := a.fetchSelected()
	if report == nil {
		return nil
	}
	return a.startEdit(report)
}

func (a *App) startEdit(report *domain.Report) tea.Cmd {
	a.screen = screenEdit
	a.editID = report.ID
	a.editForm = newForm(reportFields()...)
	a.editForm.setValue(0, report.Location)
	a.editForm.setValue(1, report.WasteType)
	a.editForm.setValue(2, report.Description)
	a.editForm.setValue(3, dateText(report))
	return a.editForm.setFocus(0)
}

func (a *App) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		a.saveEdit()
		return nil
	case "esc":
		a.showRecords()
		return nil
	}
	return a.editForm.update(msg)
}

func (a *App) saveEdit() {
	err := a.svc.Update.Execute(a.ctx, a.editID, a.editForm.reportInput())
	switch {
	case errors.Is(err, validation.ErrInvalidReport):
		a.warn("Validation", invalidReportMessage)
		return
	case errors.Is(err, domain.ErrReportNotFound):
		a.fail("Error", "Record not found.")
		return
	case err != nil:
		a.log.Error("update report", zap.Int64("report_id", a.editID), zap.Error(err))
		a.fail("Error", err.Error())
		return
	}

	a.log.Info("report updated", zap.Int64("report_id", a.editID))
	if a.showRecords() {
		a.info("Success", "Record updated!")
	}
}

func (a *App) viewEdit() string {
	return a.header(fmt.Sprintf("EDIT RECORD #%d", a.editID)) +
		a.editForm.view(a.styles) +
		a.help("tab: next field", "enter: save", "esc: back")
}
