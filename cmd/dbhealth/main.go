package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/orderkyat/orderkyat/internal/common"
	"github.com/orderkyat/orderkyat/internal/repository"
)

// Connects with the configured DSN, migrates and pings. Exits non-zero on
// failure so it can back a container health probe or a deploy smoke test.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := db.Migrate(ctx); err != nil {
		logger.Error("migrating schema", "error", err)
		os.Exit(1)
	}
	if err := db.HealthCheck(ctx, time.Second, logger); err != nil {
		logger.Error("db health: FAIL", "error", err)
		os.Exit(1)
	}

	count, err := db.Client.InvoiceDraft.Query().Count(ctx)
	if err != nil {
		logger.Error("counting drafts", "error", err)
		os.Exit(1)
	}
	logger.Info("db health: OK", "drafts", count)
}
