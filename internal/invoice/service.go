// Package invoice orchestrates the extract -> edit -> finalize lifecycle.
package invoice

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/orderkyat/orderkyat/constants"
	"github.com/orderkyat/orderkyat/internal/common"
	"github.com/orderkyat/orderkyat/internal/entity"
	"github.com/orderkyat/orderkyat/internal/extract"
	"github.com/orderkyat/orderkyat/internal/numbering"
	"github.com/orderkyat/orderkyat/internal/render"
	"github.com/orderkyat/orderkyat/internal/repository"
	"github.com/orderkyat/orderkyat/internal/sanitize"
)

type Service struct {
	engine    *extract.Engine
	drafts    repository.DraftRepository
	profiles  repository.StoreProfileRepository
	numbering *numbering.Service
	renderer  *render.Renderer
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(
	engine *extract.Engine,
	drafts repository.DraftRepository,
	profiles repository.StoreProfileRepository,
	num *numbering.Service,
	renderer *render.Renderer,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		engine:    engine,
		drafts:    drafts,
		profiles:  profiles,
		numbering: num,
		renderer:  renderer,
		logger:    logger,
		now:       time.Now,
	}
}

// ExtractDraft sanitizes the pasted order text, runs the extraction engine
// and stores the result as the open draft. Zero extracted items is a valid
// outcome; the UI decides whether to prompt for manual entry.
func (s *Service) ExtractDraft(ctx context.Context, rawText string) (*entity.InvoiceDraft, error) {
	if err := sanitize.Validate(rawText); err != nil {
		return nil, err
	}
	clean := sanitize.SanitizeWith(rawText, s.logger)

	result := s.engine.Extract(clean)
	s.logger.Info("extract.ok",
		"input_len", len(clean),
		"items", len(result.Items),
		"total", result.TotalPrice,
		"has_name", result.CustomerName != "",
		"has_phone", result.Phone != "",
		"has_address", result.Address != "",
	)

	return s.drafts.Save(ctx, result)
}

// Draft returns the open draft, or a NotFound error when none exists.
func (s *Service) Draft(ctx context.Context) (*entity.InvoiceDraft, error) {
	d, err := s.drafts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, common.NotFoundError("no open draft")
	}
	return d, nil
}

// UpdateDraft applies user edits. Quantities and prices are clamped to zero,
// new items get ids, the free-delivery invariant is enforced and the total
// is always recomputed from item subtotals.
func (s *Service) UpdateDraft(ctx context.Context, data entity.ExtractionResult) (*entity.InvoiceDraft, error) {
	normalize(&data)
	return s.drafts.Save(ctx, data)
}

// DiscardDraft drops the open draft, if any.
func (s *Service) DiscardDraft(ctx context.Context) error {
	return s.drafts.Delete(ctx)
}

// Finalize assigns the next invoice number, renders the PDF and closes the
// draft. This is the only path that touches the invoice counter.
func (s *Service) Finalize(ctx context.Context) (string, []byte, error) {
	draft, err := s.Draft(ctx)
	if err != nil {
		return "", nil, err
	}

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return "", nil, err
	}

	now := s.now()
	number, err := s.numbering.Next(ctx, now.Year())
	if err != nil {
		return "", nil, err
	}

	pdfBytes, err := s.renderer.Invoice(draft.Data, *profile, number, now)
	if err != nil {
		return "", nil, err
	}

	if err := s.drafts.MarkFinalized(ctx, draft.ID, number); err != nil {
		return "", nil, err
	}

	name := render.FileName(profile.Name, draft.Data.CustomerName, now)
	s.logger.Info("invoice.finalized",
		"invoice_number", number,
		"file_name", name,
		"grand_total", draft.Data.GrandTotal(),
	)
	return name, pdfBytes, nil
}

func normalize(data *entity.ExtractionResult) {
	if data.Items == nil {
		data.Items = []entity.InvoiceItem{}
	}
	for i := range data.Items {
		if data.Items[i].ID == uuid.Nil {
			data.Items[i].ID = uuid.New()
		}
		if data.Items[i].Quantity < 0 {
			data.Items[i].Quantity = 0
		}
		if data.Items[i].UnitPrice < 0 {
			data.Items[i].UnitPrice = 0
		}
	}

	if data.DeliveryType != "" {
		if dt, ok := constants.CanonicalizeDelivery(string(data.DeliveryType)); ok {
			data.DeliveryType = dt
		} else {
			data.DeliveryType = ""
			data.DeliveryFee = 0
		}
	}
	if constants.IsFree(data.DeliveryType) || data.DeliveryFee < 0 {
		data.DeliveryFee = 0
	}

	data.Recompute()
}
