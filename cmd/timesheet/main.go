package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/timesheet/internal/config"
	"github.com/sandeepkv93/timesheet/internal/storage"
	"github.com/sandeepkv93/timesheet/internal/update"
)

func main() {
	dbFlag := flag.String("db", "", "path to the timesheet database (overrides config and TIMESHEET_DB)")
	flag.Parse()

	if err := run(*dbFlag); err != nil {
		fmt.Fprintf(os.Stderr, "timesheet failed: %v\n", err)
		os.Exit(1)
	}
}

func run(dbOverride string) error {
	settingsPath, err := config.DefaultPath()
	if err != nil {
		settingsPath = ""
	}
	var settings config.Settings
	if settingsPath != "" {
		settings, err = config.Load(settingsPath)
		if err != nil {
			return err
		}
	}
	settings = config.FromEnv(settings)
	if dbOverride != "" {
		settings.StorePath = dbOverride
	}
	if settings.StorePath == "" {
		// The only fatal startup condition: no resolvable store.
		return fmt.Errorf("no database configured; pass -db, set TIMESHEET_DB, or add store_path to %s", settingsPath)
	}

	db, err := sql.Open("sqlite3", settings.StorePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := storage.MigrateUp(db); err != nil {
		return err
	}
	repo, err := storage.NewSQLiteRepository(db)
	if err != nil {
		return err
	}

	if settingsPath != "" {
		if err := config.Save(settingsPath, settings); err != nil {
			fmt.Fprintf(os.Stderr, "timesheet: settings not saved: %v\n", err)
		}
	}

	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	program := tea.NewProgram(update.NewModel(repo, settings, settingsPath, cfg))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
