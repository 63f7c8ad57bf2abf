package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/jasktodo/internal/config"
	"github.com/jask/jasktodo/internal/logging"
	"github.com/jask/jasktodo/internal/seed"
	"github.com/jask/jasktodo/internal/service"
	"github.com/jask/jasktodo/internal/task"
	"github.com/jask/jasktodo/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Error("jasktodo", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level})
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	tasks, err := initialTasks(cfg)
	if err != nil {
		return err
	}

	ctrl := service.NewController(service.Options{
		IDs:        cfg.IDGenerator(),
		Seed:       tasks,
		Locale:     cfg.Locale(),
		Query:      task.Query{Category: cfg.UI.Filter, Sort: cfg.SortDirection()},
		Categories: cfg.UI.Categories,
		Icons:      task.DefaultIcons().With(cfg.UI.Icons),
		Logger:     logger,
	})

	p := tea.NewProgram(tui.New(ctrl, nil), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("ui exited", "err", err)
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("session ended", "tasks", ctrl.Snapshot().Summary.Total)
	return nil
}

// initialTasks picks the seed file when configured, else the samples.
func initialTasks(cfg config.Config) ([]task.Task, error) {
	if cfg.Tasks.SeedFile != "" {
		tasks, err := seed.Load(cfg.Tasks.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		return tasks, nil
	}
	if cfg.Tasks.Samples {
		return seed.Samples(), nil
	}
	return nil, nil
}
