package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/orderkyat/orderkyat/constants"
	"github.com/orderkyat/orderkyat/gen/ent"
	"github.com/orderkyat/orderkyat/gen/ent/invoicedraft"
	"github.com/orderkyat/orderkyat/internal/draftschema"
	"github.com/orderkyat/orderkyat/internal/entity"
)

// DraftRepository persists the current invoice draft. Payloads are validated
// against the draft JSON schema on the way in and on the way out.
type DraftRepository interface {
	Save(ctx context.Context, data entity.ExtractionResult) (*entity.InvoiceDraft, error)
	Load(ctx context.Context) (*entity.InvoiceDraft, error)
	Delete(ctx context.Context) error
	MarkFinalized(ctx context.Context, id uuid.UUID, invoiceNumber string) error
	// ListFinalized returns closed invoices, oldest first.
	ListFinalized(ctx context.Context) ([]*entity.InvoiceDraft, error)
}

type draftRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDraftRepository(client *ent.Client, logger *slog.Logger) DraftRepository {
	return &draftRepository{
		client: client,
		logger: logger,
	}
}

// Save upserts the open draft (a single-user tool keeps one at a time).
func (r *draftRepository) Save(ctx context.Context, data entity.ExtractionResult) (*entity.InvoiceDraft, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	if err := draftschema.Validate(payload); err != nil {
		r.logger.Error("refusing to save invalid draft", "error", err)
		return nil, err
	}

	existing, err := r.openDraft(ctx)
	if err != nil {
		return nil, err
	}

	var row *ent.InvoiceDraft
	if existing == nil {
		row, err = r.client.InvoiceDraft.Create().
			SetData(payload).
			Save(ctx)
	} else {
		row, err = existing.Update().
			SetData(payload).
			Save(ctx)
	}
	if err != nil {
		r.logger.Error("failed to save draft", "error", err)
		return nil, err
	}
	return toDraft(row)
}

// Load returns the open draft, or nil when none exists.
func (r *draftRepository) Load(ctx context.Context) (*entity.InvoiceDraft, error) {
	row, err := r.openDraft(ctx)
	if err != nil || row == nil {
		return nil, err
	}
	if err := draftschema.Validate(row.Data); err != nil {
		r.logger.Error("stored draft failed validation", "draft_id", row.ID, "error", err)
		return nil, err
	}
	return toDraft(row)
}

func (r *draftRepository) Delete(ctx context.Context) error {
	_, err := r.client.InvoiceDraft.Delete().
		Where(invoicedraft.StatusEQ(string(constants.DraftStatusOpen))).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete draft", "error", err)
	}
	return err
}

// MarkFinalized records the assigned invoice number and closes the draft.
func (r *draftRepository) MarkFinalized(ctx context.Context, id uuid.UUID, invoiceNumber string) error {
	err := r.client.InvoiceDraft.UpdateOneID(id).
		SetStatus(string(constants.DraftStatusFinalized)).
		SetInvoiceNumber(invoiceNumber).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to finalize draft", "draft_id", id, "error", err)
	}
	return err
}

func (r *draftRepository) ListFinalized(ctx context.Context) ([]*entity.InvoiceDraft, error) {
	rows, err := r.client.InvoiceDraft.Query().
		Where(invoicedraft.StatusEQ(string(constants.DraftStatusFinalized))).
		Order(ent.Asc(invoicedraft.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list finalized invoices", "error", err)
		return nil, err
	}
	out := make([]*entity.InvoiceDraft, 0, len(rows))
	for _, row := range rows {
		d, err := toDraft(row)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *draftRepository) openDraft(ctx context.Context) (*ent.InvoiceDraft, error) {
	row, err := r.client.InvoiceDraft.Query().
		Where(invoicedraft.StatusEQ(string(constants.DraftStatusOpen))).
		Order(ent.Desc(invoicedraft.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to query draft", "error", err)
		return nil, err
	}
	return row, nil
}

func toDraft(e *ent.InvoiceDraft) (*entity.InvoiceDraft, error) {
	var data entity.ExtractionResult
	if err := json.Unmarshal(e.Data, &data); err != nil {
		return nil, err
	}
	return &entity.InvoiceDraft{
		ID:            e.ID,
		Data:          data,
		Status:        constants.DraftStatus(e.Status),
		InvoiceNumber: e.InvoiceNumber,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}, nil
}
