package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ttakeda/daybook/internal/cli"
	"github.com/ttakeda/daybook/internal/config"
	"github.com/ttakeda/daybook/internal/db"
	"github.com/ttakeda/daybook/internal/livequery"
	"github.com/ttakeda/daybook/internal/repository"
	"github.com/ttakeda/daybook/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config path: env var or default ~/.daybook/config.toml
	cfgPath := os.Getenv("DAYBOOK_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database. A migration failure here is blocking: nothing runs
	// against a half-migrated store.
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repository, live feed, and service
	todoRepo := repository.NewSQLiteTodoRepo(database)
	feed := livequery.NewFeed(todoRepo.List)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Todos:  service.NewTodoService(todoRepo, uow, feed),
		Feed:   feed,
		Config: cfg,
	}

	// Detect interactive terminal for the calendar TUI and form prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
