package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alexanderramin/activitylog/internal/cli"
	"github.com/alexanderramin/activitylog/internal/config"
	"github.com/alexanderramin/activitylog/internal/db"
	"github.com/alexanderramin/activitylog/internal/kv"
	"github.com/alexanderramin/activitylog/internal/repository"
	"github.com/alexanderramin/activitylog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config.LoadEnvFile()
	cfg := config.LoadConfig()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Open the key-value store
	var store kv.Store
	if cfg.InMemory() {
		store = kv.NewMemoryStore()
	} else {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		store = kv.NewSQLiteStore(database)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Wire services
	gaming := service.NewGamingService(
		repository.NewSessionLogStore(store, logger),
		service.GamingOptions{
			LoadDelay:             cfg.LoadDelay,
			AllowNegativeDuration: cfg.AllowNegativeDuration,
			Logger:                logger,
		},
		observer,
	)
	activities := service.NewActivityService(ctx, repository.NewActivityStore(store, logger), logger, observer)

	app := &cli.App{
		Gaming:     gaming,
		Activities: activities,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
