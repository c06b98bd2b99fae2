package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orderkyat/orderkyat/internal/common"
	"github.com/orderkyat/orderkyat/internal/export"
	"github.com/orderkyat/orderkyat/internal/extract"
	"github.com/orderkyat/orderkyat/internal/invoice"
	"github.com/orderkyat/orderkyat/internal/numbering"
	"github.com/orderkyat/orderkyat/internal/render"
	"github.com/orderkyat/orderkyat/internal/repository"
	"github.com/orderkyat/orderkyat/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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
	if err := db.HealthCheck(ctx, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database ready")

	engine, err := extract.NewEngine(extract.Myanmar())
	if err != nil {
		logger.Error("building extraction engine", "error", err)
		os.Exit(1)
	}

	drafts := repository.NewDraftRepository(db.Client, logger)
	profiles := repository.NewStoreProfileRepository(db.Client, logger)
	sequences := repository.NewSequenceRepository(db.Client, logger)

	renderer := render.NewRenderer(render.Defaults{
		StoreName:    cfg.Store.DefaultName,
		StorePhone:   cfg.Store.DefaultPhone,
		StoreAddress: cfg.Store.DefaultAddress,
	}, logger)

	invoices := invoice.NewService(
		engine,
		drafts,
		profiles,
		numbering.NewService(sequences, logger),
		renderer,
		logger,
	)
	exporter := export.NewService(drafts, logger)

	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           server.NewServer(invoices, profiles, exporter, logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	logger.Info("stopped")
}
