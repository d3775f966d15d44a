package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fardannozami/oceanguard/internal/app/usecase"
	"github.com/fardannozami/oceanguard/internal/domain"
	"github.com/fardannozami/oceanguard/internal/infra/sqlite"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema and exit",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userRegisterCmd = &cobra.Command{
	Use:   "register [username]",
	Short: "Create an account, prompting for the password",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserRegister,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Inspect waste reports",
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every report, newest first",
	Args:  cobra.NoArgs,
	RunE:  runReportList,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, result, err := openStorage(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "schema version: %d\n", result.SchemaVersion)
	fmt.Fprintf(out, "outcome: %s\n", result.Outcome)
	for _, step := range result.Steps {
		fmt.Fprintf(out, "  - %s\n", step)
	}
	if result.LegacyDate {
		fmt.Fprintln(out, "legacy date column still present")
	}

	if result.Outcome == sqlite.MigrationFailed {
		return fmt.Errorf("legacy upgrade incomplete: %w", result.Err)
	}
	return nil
}

func runUserRegister(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	password, err := promptPassword(out, "Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword(out, "Confirm password: ")
	if err != nil {
		return err
	}

	db, _, err := openStorage(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	register := usecase.NewRegisterUserUsecase(sqlite.NewUserRepository(db))
	id, err := register.Execute(cmd.Context(), args[0], password, confirm)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return fmt.Errorf("username %q already exists", args[0])
		}
		return err
	}

	fmt.Fprintf(out, "created user %s (ID: %d)\n", args[0], id)
	return nil
}

func promptPassword(w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

func runReportList(cmd *cobra.Command, args []string) error {
	db, result, err := openStorage(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	list := usecase.NewListReportsUsecase(sqlite.NewReportRepository(db, result.LegacyDate))
	reports, err := list.Execute(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(reports) == 0 {
		fmt.Fprintln(out, "No reports yet.")
		return nil
	}
	fmt.Fprintln(out, reportTable(reports))
	return nil
}

func reportTable(reports []*domain.Report) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Location", "Waste Type", "Date", "Reported By")

	for _, r := range reports {
		date := ""
		if r.DateReported != nil {
			date = *r.DateReported
		}
		t.Row(strconv.FormatInt(r.ID, 10), dash(r.Location), dash(r.WasteType), dash(date), dash(r.Owner))
	}
	return t.String()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
