package tui

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fardannozami/oceanguard/internal/domain"
	"github.com/fardannozami/oceanguard/internal/infra/sqlite"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "ocean.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	result, err := sqlite.Migrate(ctx, db, zap.NewNop())
	require.NoError(t, err)

	svc := NewServices(sqlite.NewUserRepository(db), sqlite.NewReportRepository(db, result.LegacyDate))
	return NewApp(ctx, svc, zap.NewNop())
}

func typeText(a *App, s string) {
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(a *App, k tea.KeyType) {
	a.Update(tea.KeyMsg{Type: k})
}

// loggedInApp registers "marina" and walks the login screen to home.
func loggedInApp(t *testing.T) *App {
	t.Helper()

	a := newTestApp(t)
	_, err := a.svc.Register.Execute(a.ctx, "marina", "seaturtle", "seaturtle")
	require.NoError(t, err)

	press(a, tea.KeyEnter) // splash -> login
	typeText(a, "marina")
	press(a, tea.KeyTab)
	typeText(a, "seaturtle")
	press(a, tea.KeyEnter)

	require.Equal(t, screenHome, a.screen)
	require.NotNil(t, a.dialog)
	press(a, tea.KeyEnter) // dismiss welcome
	return a
}

func submitReport(t *testing.T, a *App, location, wasteType, date string) {
	t.Helper()

	typeText(a, "1") // home -> report form
	require.Equal(t, screenReportForm, a.screen)
	typeText(a, location)
	press(a, tea.KeyTab)
	typeText(a, wasteType)
	press(a, tea.KeyTab)
	press(a, tea.KeyTab)
	if date != "" {
		typeText(a, date)
	}
	press(a, tea.KeyEnter)
}

func TestSignupThenLogin(t *testing.T) {
	a := newTestApp(t)
	assert.Contains(t, a.View(), "OCEANGUARD")

	press(a, tea.KeyEnter)
	require.Equal(t, screenLogin, a.screen)

	press(a, tea.KeyCtrlN)
	require.Equal(t, screenSignup, a.screen)

	typeText(a, "marina")
	press(a, tea.KeyTab)
	typeText(a, "seaturtle")
	press(a, tea.KeyTab)
	typeText(a, "seaturtle")
	press(a, tea.KeyEnter)

	require.Equal(t, screenLogin, a.screen)
	assert.Contains(t, a.View(), "Account created! You can now login.")
	press(a, tea.KeyEnter)
	assert.Nil(t, a.dialog)

	typeText(a, "marina")
	press(a, tea.KeyTab)
	typeText(a, "seaturtle")
	press(a, tea.KeyEnter)

	assert.Equal(t, screenHome, a.screen)
	require.NotNil(t, a.Session())
	assert.Equal(t, "marina", a.Session().Username)
	assert.Contains(t, a.View(), "Welcome, marina!")
}

func TestSignup_PasswordRules(t *testing.T) {
	a := newTestApp(t)
	press(a, tea.KeyEnter)
	press(a, tea.KeyCtrlN)

	typeText(a, "marina")
	press(a, tea.KeyTab)
	typeText(a, "abc")
	press(a, tea.KeyTab)
	typeText(a, "abc")
	press(a, tea.KeyEnter)

	assert.Equal(t, screenSignup, a.screen)
	require.NotNil(t, a.dialog)
	assert.Equal(t, dialogWarning, a.dialog.kind)
	assert.Contains(t, a.View(), "at least 6 characters")
}

func TestLogin_WrongPassword(t *testing.T) {
	a := newTestApp(t)
	_, err := a.svc.Register.Execute(a.ctx, "marina", "seaturtle", "seaturtle")
	require.NoError(t, err)

	press(a, tea.KeyEnter)
	typeText(a, "marina")
	press(a, tea.KeyTab)
	typeText(a, "dolphin1")
	press(a, tea.KeyEnter)

	assert.Equal(t, screenLogin, a.screen)
	assert.Nil(t, a.Session())
	require.NotNil(t, a.dialog)
	assert.Equal(t, dialogError, a.dialog.kind)
	assert.Contains(t, a.View(), "Invalid username or password.")
}

func TestLogin_EmptyFields(t *testing.T) {
	a := newTestApp(t)
	press(a, tea.KeyEnter)
	press(a, tea.KeyEnter)

	require.NotNil(t, a.dialog)
	assert.Equal(t, dialogWarning, a.dialog.kind)
	assert.Contains(t, a.View(), "Please fill in all fields.")
}

func TestDialogIsModal(t *testing.T) {
	a := newTestApp(t)
	press(a, tea.KeyEnter)
	press(a, tea.KeyEnter) // empty login -> warning

	typeText(a, "ignored")
	press(a, tea.KeyEsc)
	assert.Nil(t, a.dialog)
	assert.Equal(t, screenLogin, a.screen)
	assert.Empty(t, a.loginForm.value(0))
}

func TestSubmitReport_ShowsRecords(t *testing.T) {
	a := loggedInApp(t)

	submitReport(t, a, "Manila Bay", "Plastic bottles", "03/15/2024")

	assert.Equal(t, screenRecords, a.screen)
	view := a.View()
	assert.Contains(t, view, "Report submitted (ID: 1)")
	assert.Contains(t, view, "Manila Bay")
	assert.Contains(t, view, "marina")

	require.Len(t, a.reports, 1)
	require.NotNil(t, a.reports[0].UserID)
	assert.Equal(t, a.Session().ID, *a.reports[0].UserID)
}

func TestSubmitReport_InvalidDate(t *testing.T) {
	a := loggedInApp(t)

	submitReport(t, a, "Manila Bay", "Plastic", "2024-03-15")

	assert.Equal(t, screenReportForm, a.screen)
	require.NotNil(t, a.dialog)
	assert.Equal(t, dialogWarning, a.dialog.kind)
	assert.Contains(t, a.View(), "Date must be MM/DD/YYYY")

	reports, err := a.svc.List.Execute(a.ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestViewRecord(t *testing.T) {
	a := loggedInApp(t)
	submitReport(t, a, "Cebu", "Nets", "")
	press(a, tea.KeyEnter) // dismiss

	typeText(a, "v")
	require.Equal(t, screenView, a.screen)
	view := a.View()
	assert.Contains(t, view, "Cebu")
	assert.Contains(t, view, "Description:")

	press(a, tea.KeyEsc)
	assert.Equal(t, screenRecords, a.screen)
}

func TestEditRecord(t *testing.T) {
	a := loggedInApp(t)
	submitReport(t, a, "Manila Bay", "Plastic", "")
	press(a, tea.KeyEnter)

	typeText(a, "e")
	require.Equal(t, screenEdit, a.screen)
	assert.Equal(t, "Manila Bay", a.editForm.value(0))

	typeText(a, ", north")
	press(a, tea.KeyTab)
	press(a, tea.KeyTab)
	press(a, tea.KeyTab)
	typeText(a, "04/01/2024")
	press(a, tea.KeyEnter)

	assert.Equal(t, screenRecords, a.screen)
	assert.Contains(t, a.View(), "Record updated!")

	got, err := a.svc.Get.Execute(a.ctx, a.editID)
	require.NoError(t, err)
	assert.Equal(t, "Manila Bay, north", got.Location)
	require.NotNil(t, got.DateReported)
	assert.Equal(t, "04/01/2024", *got.DateReported)
}

func TestDeleteRecord(t *testing.T) {
	a := loggedInApp(t)
	submitReport(t, a, "Bohol", "Cans", "")
	press(a, tea.KeyEnter)

	typeText(a, "d")
	require.NotNil(t, a.dialog)
	assert.Equal(t, dialogConfirm, a.dialog.kind)

	typeText(a, "y")
	assert.Equal(t, screenRecords, a.screen)
	assert.Contains(t, a.View(), "Record deleted.")
	assert.Empty(t, a.reports)

	_, err := a.svc.Get.Execute(a.ctx, 1)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestDeleteLastRow_KeepsSelection(t *testing.T) {
	a := loggedInApp(t)
	submitReport(t, a, "Bohol", "Cans", "")
	press(a, tea.KeyEnter)
	press(a, tea.KeyEsc) // records -> home
	submitReport(t, a, "Cebu", "Nets", "")
	press(a, tea.KeyEnter)

	require.Len(t, a.reports, 2)
	press(a, tea.KeyDown)
	require.Equal(t, 1, a.records.Cursor())

	typeText(a, "d")
	typeText(a, "y")
	press(a, tea.KeyEnter) // dismiss "Record deleted."
	require.Len(t, a.reports, 1)
	assert.Equal(t, 0, a.records.Cursor())

	typeText(a, "v")
	assert.Nil(t, a.dialog)
	require.Equal(t, screenView, a.screen)
	assert.Equal(t, "Cebu", a.viewing.Location)
}

func TestDeleteRecord_Cancelled(t *testing.T) {
	a := loggedInApp(t)
	submitReport(t, a, "Bohol", "Cans", "")
	press(a, tea.KeyEnter)

	typeText(a, "d")
	typeText(a, "n")
	assert.Nil(t, a.dialog)
	assert.Len(t, a.reports, 1)
}

func TestRecords_NothingSelected(t *testing.T) {
	a := loggedInApp(t)
	typeText(a, "2")
	require.Equal(t, screenRecords, a.screen)
	assert.Contains(t, a.View(), "No reports yet.")

	typeText(a, "e")
	require.NotNil(t, a.dialog)
	assert.Contains(t, a.View(), "Select a record first.")
}

func TestLogout(t *testing.T) {
	a := loggedInApp(t)

	typeText(a, "4")
	require.NotNil(t, a.dialog)
	assert.Contains(t, a.View(), "Are you sure you want to logout?")

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Equal(t, screenLogin, a.screen)
	assert.Nil(t, a.Session())
	assert.NotNil(t, cmd, "login form focus should start the cursor blink")
}

func TestAboutScreen(t *testing.T) {
	a := loggedInApp(t)

	typeText(a, "3")
	require.Equal(t, screenAbout, a.screen)
	assert.Contains(t, a.View(), "Sustainable Development Goal 14")

	press(a, tea.KeyEsc)
	assert.Equal(t, screenHome, a.screen)
}

func TestWarnAtStartup(t *testing.T) {
	a := newTestApp(t)
	a.Warn("Storage", "legacy reports table could not be rebuilt")

	assert.Contains(t, a.View(), "legacy reports table could not be rebuilt")
	press(a, tea.KeyEnter)
	assert.Nil(t, a.dialog)
	assert.Equal(t, screenSplash, a.screen)
}

func TestCtrlCQuits(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
