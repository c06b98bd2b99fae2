package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/orderkyat/orderkyat/internal/entity"
	"github.com/orderkyat/orderkyat/internal/repository"
)

func TestInvoiceHistoryXLSX(t *testing.T) {
	ctx := context.Background()
	drafts := repository.NewMemoryDraftRepository()

	d, err := drafts.Save(ctx, entity.ExtractionResult{
		CustomerName: "Mg Mg",
		Phone:        "09123456789",
		Address:      "Yangon",
		Items: []entity.InvoiceItem{
			{ID: uuid.New(), Name: "shirts", Quantity: 2, UnitPrice: 15000},
		},
		TotalPrice: 30000,
	})
	require.NoError(t, err)
	require.NoError(t, drafts.MarkFinalized(ctx, d.ID, "INV-2026-0001"))

	b, err := NewService(drafts, nil).InvoiceHistoryXLSX(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Invoices"}, f.GetSheetList())

	number, err := f.GetCellValue("Invoices", "A2")
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0001", number)

	items, err := f.GetCellValue("Invoices", "F2")
	require.NoError(t, err)
	assert.Equal(t, "2x shirts", items)
}

func TestTruncate(t *testing.T) {
	t.Run("short strings untouched", func(t *testing.T) {
		assert.Equal(t, "shirts", truncate("shirts", 140))
	})

	t.Run("cuts on rune boundaries", func(t *testing.T) {
		s := strings.Repeat("ကလေး", 5)
		got := truncate(s, 5)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, "ကလေး"+"…", got)
	})
}
