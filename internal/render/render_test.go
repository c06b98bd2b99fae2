package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderkyat/orderkyat/constants"
	"github.com/orderkyat/orderkyat/internal/entity"
)

func sampleData() entity.ExtractionResult {
	r := entity.ExtractionResult{
		CustomerName: "Mg Mg",
		Phone:        "09123456789",
		Address:      "Yangon",
		Items: []entity.InvoiceItem{
			{Name: "shirts", Quantity: 2, UnitPrice: 15000},
			{Name: "bags", Quantity: 3, UnitPrice: 10000},
		},
		DeliveryType: constants.CashOnDelivery,
		DeliveryFee:  4500,
	}
	r.Recompute()
	return r
}

func TestInvoice_ProducesPDF(t *testing.T) {
	r := NewRenderer(Defaults{}, nil)

	out, err := r.Invoice(sampleData(), entity.StoreProfile{Name: "My Shop"}, "INV-2026-0007", time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestInvoice_EmptyDataStillRenders(t *testing.T) {
	r := NewRenderer(Defaults{}, nil)

	out, err := r.Invoice(entity.ExtractionResult{}, entity.StoreProfile{}, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestFormatKyat(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0 Ks"},
		{500, "500 Ks"},
		{15000, "15,000 Ks"},
		{1500000, "1,500,000 Ks"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatKyat(tt.in))
	}
}

func TestFileName(t *testing.T) {
	ts := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "INV-MS-MM-260830.pdf", FileName("My Shop", "Mg Mg", ts))
	// blanks fall back to brand/customer placeholders
	assert.Equal(t, "INV-O-C-260830.pdf", FileName("", "", ts))
}
