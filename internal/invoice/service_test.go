package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderkyat/orderkyat/constants"
	"github.com/orderkyat/orderkyat/internal/entity"
	"github.com/orderkyat/orderkyat/internal/extract"
	"github.com/orderkyat/orderkyat/internal/numbering"
	"github.com/orderkyat/orderkyat/internal/render"
	"github.com/orderkyat/orderkyat/internal/repository"
)

func newTestService(t *testing.T) (*Service, *repository.MemoryDraftRepository, *repository.MemorySequenceRepository) {
	t.Helper()
	drafts := repository.NewMemoryDraftRepository()
	seq := repository.NewMemorySequenceRepository()
	profiles := repository.NewMemoryStoreProfileRepository()
	_, err := profiles.Upsert(context.Background(), &entity.StoreProfile{Name: "My Shop"})
	require.NoError(t, err)

	svc := NewService(
		extract.MustEngine(extract.Myanmar()),
		drafts,
		profiles,
		numbering.NewService(seq, nil),
		render.NewRenderer(render.Defaults{}, nil),
		nil,
	)
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC) }
	return svc, drafts, seq
}

func TestExtractDraft(t *testing.T) {
	svc, drafts, seq := newTestService(t)
	ctx := context.Background()

	d, err := svc.ExtractDraft(ctx, "Mg Mg, 09123456789, 2 shirts @ 15000 and 3 bags @ 10000, Yangon")
	require.NoError(t, err)
	assert.Equal(t, "Mg Mg", d.Data.CustomerName)
	assert.Equal(t, "Yangon", d.Data.Address)
	assert.Equal(t, 60000, d.Data.TotalPrice)

	saved, err := drafts.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, constants.DraftStatusOpen, saved.Status)

	// extraction must not touch the counter
	cur, err := seq.Current(ctx, 2026)
	require.NoError(t, err)
	assert.Zero(t, cur)
}

func TestExtractDraft_RejectsHostileInput(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ExtractDraft(context.Background(), "<script>alert(1)</script>")
	require.Error(t, err)
}

func TestExtractDraft_ZeroItemsIsNotAnError(t *testing.T) {
	svc, _, _ := newTestService(t)

	d, err := svc.ExtractDraft(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Empty(t, d.Data.Items)
	assert.Zero(t, d.Data.TotalPrice)
}

func TestUpdateDraft_NormalizesEdits(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.UpdateDraft(ctx, entity.ExtractionResult{
		CustomerName: "Ko Ko",
		Items: []entity.InvoiceItem{
			{Name: "hat", Quantity: -2, UnitPrice: 5000},
			{Name: "bag", Quantity: 1, UnitPrice: 20000},
		},
		TotalPrice:   999999, // stale, must be recomputed
		DeliveryType: "cod",
		DeliveryFee:  -10,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, d.Data.Items[0].Quantity)
	assert.NotEqual(t, uuid.Nil, d.Data.Items[0].ID)
	assert.Equal(t, 20000, d.Data.TotalPrice)
	assert.Equal(t, constants.CashOnDelivery, d.Data.DeliveryType)
	assert.Equal(t, 0, d.Data.DeliveryFee)
}

func TestUpdateDraft_FreeDeliveryZeroesFee(t *testing.T) {
	svc, _, _ := newTestService(t)

	d, err := svc.UpdateDraft(context.Background(), entity.ExtractionResult{
		Items:        []entity.InvoiceItem{{Name: "mug", Quantity: 1, UnitPrice: 3000}},
		DeliveryType: constants.SelfPickup,
		DeliveryFee:  4500,
	})
	require.NoError(t, err)
	assert.Zero(t, d.Data.DeliveryFee)
}

func TestFinalize(t *testing.T) {
	svc, drafts, seq := newTestService(t)
	ctx := context.Background()

	_, err := svc.ExtractDraft(ctx, "Mg Mg, 09123456789, 2 shirts @ 15000")
	require.NoError(t, err)

	name, pdfBytes, err := svc.Finalize(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-MS-MM-260830.pdf", name)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))

	// draft closed, number recorded, counter bumped exactly once
	open, err := drafts.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, open)

	finalized, err := drafts.ListFinalized(ctx)
	require.NoError(t, err)
	require.Len(t, finalized, 1)
	assert.Equal(t, "INV-2026-0001", finalized[0].InvoiceNumber)

	cur, _ := seq.Current(ctx, 2026)
	assert.Equal(t, 1, cur)
}

func TestFinalize_NoDraft(t *testing.T) {
	svc, _, seq := newTestService(t)

	_, _, err := svc.Finalize(context.Background())
	require.Error(t, err)
	cur, _ := seq.Current(context.Background(), 2026)
	assert.Zero(t, cur)
}
