package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/cli"
	"github.com/mariekevos/gmatrix/internal/db"
	"github.com/mariekevos/gmatrix/internal/repository"
	"github.com/mariekevos/gmatrix/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Warnings only; anything below stays out of the wizard's way.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	// Determine DB path: env var or default ~/.gmatrix/gmatrix.db
	dbPath := os.Getenv("GMATRIX_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".gmatrix", "gmatrix.db")
	}

	// The dataset ships embedded; GMATRIX_CATALOG overrides it with a
	// custom JSON file.
	cat, err := catalog.Load(os.Getenv("GMATRIX_CATALOG"), logger)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// A failing probe means history and journal writes will not stick.
	// The assessment itself still works, so warn and continue.
	if err := db.Probe(database); err != nil {
		logger.Warn("database not writable; results will not be saved", "error", err)
	}

	snapshotRepo := repository.NewSQLiteSnapshotRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	evidenceRepo := repository.NewSQLiteEvidenceRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Catalog:     cat,
		Assessments: service.NewAssessmentService(cat, snapshotRepo, settingsRepo, uow, logger),
		History:     service.NewHistoryService(historyRepo),
		Evidence:    service.NewEvidenceService(cat, evidenceRepo),
		Results:     service.NewResultsService(cat),
		Settings:    service.NewSettings(settingsRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
