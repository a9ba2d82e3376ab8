package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"billd/internal/notify"
	"billd/internal/scheduler"
	"billd/internal/storage"
	"billd/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "billd failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Missing .env is fine, env vars still apply.
	_ = godotenv.Load()
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	defer repo.DB().Close()
	if err := storage.MigrateUp(repo.DB()); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	source := storage.NewReminderSource(repo)
	engine, err := scheduler.NewEngine(source, time.Duration(cfg.PollIntervalSeconds)*time.Second, cfg.SchedulerBuffer)
	if err != nil {
		return fmt.Errorf("configure scheduler: %w", err)
	}

	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.DesktopNotifications {
		notifier = notify.ExecNotifier{}
	}
	router := notify.NewRouter(notifier, notify.TerminalAudio{})

	engine.Start()
	defer engine.Stop()

	program := tea.NewProgram(
		update.NewModelWithRuntime(engine, router, repo, cfg),
		tea.WithReportFocus(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
