package main

import (
	"database/sql"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fardannozami/oceanguard/internal/config"
	"github.com/fardannozami/oceanguard/internal/infra/sqlite"
	"github.com/fardannozami/oceanguard/internal/logging"
	"github.com/fardannozami/oceanguard/internal/tui"
)

var (
	// Global flags
	dbPath  string
	logFile string
	verbose bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "oceanguard",
	Short: "OceanGuard - report marine waste for SDG 14",
	Long: `OceanGuard records sightings of marine waste in a local SQLite database.

Run without arguments to start the terminal interface. The subcommands
cover maintenance tasks that do not need the UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config, flags win over the environment
		cfg = config.Load()
		if dbPath != "" {
			cfg.SQLitePath = dbPath
		}
		if logFile != "" {
			cfg.LogFile = logFile
		}
		if verbose {
			cfg.LogLevel = "debug"
		}

		// 2. Logger
		var err error
		logger, err = logging.New(cfg.LogFile, cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides SQLITE_PATH)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (overrides LOG_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	userCmd.AddCommand(userRegisterCmd)
	reportCmd.AddCommand(reportListCmd)
	rootCmd.AddCommand(migrateCmd, userCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStorage covers startup steps 3 and 4: open the database and bring
// its schema up to date. A failed legacy upgrade is logged, not returned.
func openStorage(cmd *cobra.Command) (*sql.DB, sqlite.MigrationResult, error) {
	db, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return nil, sqlite.MigrationResult{}, err
	}

	result, err := sqlite.Migrate(cmd.Context(), db, logger)
	if err != nil {
		_ = db.Close()
		return nil, result, err
	}
	if result.Outcome == sqlite.MigrationFailed {
		logger.Warn("legacy reports upgrade incomplete", zap.Error(result.Err))
	}
	return db, result, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	// 3-4. Database & schema
	db, result, err := openStorage(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	// 5. Repositories
	users := sqlite.NewUserRepository(db)
	reports := sqlite.NewReportRepository(db, result.LegacyDate)

	// 6. Use Cases
	app := tui.NewApp(cmd.Context(), tui.NewServices(users, reports), logger)
	if result.Outcome == sqlite.MigrationFailed {
		app.Warn("Storage", "The database could not be fully upgraded. Some report dates may be missing.")
	}

	// 7. Run UI
	logger.Info("starting ui", zap.String("db", cfg.SQLitePath))
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	logger.Info("ui closed")
	return nil
}
