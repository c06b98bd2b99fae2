package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/orderkyat/orderkyat/internal/common"
	"github.com/orderkyat/orderkyat/internal/extract"
	"github.com/orderkyat/orderkyat/internal/invoice"
	"github.com/orderkyat/orderkyat/internal/numbering"
	"github.com/orderkyat/orderkyat/internal/render"
	"github.com/orderkyat/orderkyat/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		in  = flag.String("in", "", "file with the pasted order text (default: stdin)")
		pdf = flag.String("pdf", "", "also render the invoice PDF to this path")
		v   = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *v {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	text, err := readInput(*in, flag.Args())
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if strings.TrimSpace(text) == "" {
		printError("Error: no order text given (pass it as an argument, via --in, or on stdin)\n")
		os.Exit(2)
	}

	ctx := context.Background()
	cfg := common.LoadConfig()

	drafts := repository.NewMemoryDraftRepository()
	profiles := repository.NewMemoryStoreProfileRepository()
	svc := invoice.NewService(
		extract.MustEngine(extract.Myanmar()),
		drafts,
		profiles,
		numbering.NewService(repository.NewMemorySequenceRepository(), logger),
		render.NewRenderer(render.Defaults{
			StoreName:    cfg.Store.DefaultName,
			StorePhone:   cfg.Store.DefaultPhone,
			StoreAddress: cfg.Store.DefaultAddress,
		}, logger),
		logger,
	)

	draft, err := svc.ExtractDraft(ctx, text)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(draft.Data); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	if *pdf != "" {
		name, pdfBytes, err := svc.Finalize(ctx)
		if err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*pdf, pdfBytes, 0o644); err != nil {
			printError("Error: writing %s: %v\n", *pdf, err)
			os.Exit(1)
		}
		logger.Info("pdf written", "path", *pdf, "file_name", name)
	}
}

func readInput(path string, args []string) (string, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
