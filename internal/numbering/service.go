// Package numbering issues sequential invoice numbers. Numbering is a
// side-effecting collaborator kept apart from the pure extraction engine:
// the counter moves at most once per finalized invoice, never during
// preview or extraction.
package numbering

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/orderkyat/orderkyat/internal/repository"
)

type Service struct {
	seq    repository.SequenceRepository
	logger *slog.Logger
}

func NewService(seq repository.SequenceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{seq: seq, logger: logger}
}

// Next returns the next zero-padded identifier for the year, e.g.
// INV-2026-0042.
func (s *Service) Next(ctx context.Context, year int) (string, error) {
	n, err := s.seq.Next(ctx, year)
	if err != nil {
		return "", fmt.Errorf("next invoice number: %w", err)
	}
	num := fmt.Sprintf("INV-%d-%04d", year, n)
	s.logger.Info("numbering.issued", "year", year, "sequence", n, "invoice_number", num)
	return num, nil
}
