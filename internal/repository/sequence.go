package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/orderkyat/orderkyat/gen/ent"
	"github.com/orderkyat/orderkyat/gen/ent/invoicesequence"
)

// SequenceRepository owns the durable per-year invoice counter.
type SequenceRepository interface {
	// Next increments and returns the counter for the given year.
	Next(ctx context.Context, year int) (int, error)
	// Current returns the last issued number for the year without bumping,
	// zero when the year has no row yet.
	Current(ctx context.Context, year int) (int, error)
}

type sequenceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSequenceRepository(client *ent.Client, logger *slog.Logger) SequenceRepository {
	return &sequenceRepository{
		client: client,
		logger: logger,
	}
}

// Next runs inside a transaction so concurrent downloads cannot issue the
// same number twice.
func (r *sequenceRepository) Next(ctx context.Context, year int) (int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin sequence tx: %w", err)
	}

	next, err := r.bump(ctx, tx, year)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("sequence rollback failed", "error", rerr)
		}
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sequence tx: %w", err)
	}
	return next, nil
}

func (r *sequenceRepository) bump(ctx context.Context, tx *ent.Tx, year int) (int, error) {
	row, err := tx.InvoiceSequence.Query().
		Where(invoicesequence.YearEQ(year)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return 0, fmt.Errorf("query sequence: %w", err)
		}
		if _, err := tx.InvoiceSequence.Create().
			SetYear(year).
			SetCounter(1).
			Save(ctx); err != nil {
			return 0, fmt.Errorf("create sequence: %w", err)
		}
		return 1, nil
	}

	next := row.Counter + 1
	if err := tx.InvoiceSequence.UpdateOne(row).
		SetCounter(next).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("bump sequence: %w", err)
	}
	return next, nil
}

func (r *sequenceRepository) Current(ctx context.Context, year int) (int, error) {
	row, err := r.client.InvoiceSequence.Query().
		Where(invoicesequence.YearEQ(year)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, err
	}
	return row.Counter, nil
}
