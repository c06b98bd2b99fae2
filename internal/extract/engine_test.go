package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderkyat/orderkyat/internal/entity"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Myanmar())
	require.NoError(t, err)
	return e
}

func TestExtract_FullOrderMessage(t *testing.T) {
	e := newTestEngine(t)

	r := e.Extract("Mg Mg, 09123456789, 2 shirts @ 15000 and 3 bags @ 10000, Yangon")

	assert.Equal(t, "Mg Mg", r.CustomerName)
	assert.Equal(t, "09123456789", r.Phone)
	assert.Equal(t, "Yangon", r.Address)
	require.Len(t, r.Items, 2)
	assert.Equal(t, "shirts", r.Items[0].Name)
	assert.Equal(t, 2, r.Items[0].Quantity)
	assert.Equal(t, 15000, r.Items[0].UnitPrice)
	assert.Equal(t, "bags", r.Items[1].Name)
	assert.Equal(t, 3, r.Items[1].Quantity)
	assert.Equal(t, 10000, r.Items[1].UnitPrice)
	assert.Equal(t, 60000, r.TotalPrice)
}

func TestExtract_EmptyInput(t *testing.T) {
	e := newTestEngine(t)

	r := e.Extract("")

	assert.Empty(t, r.CustomerName)
	assert.Empty(t, r.Phone)
	assert.Empty(t, r.Address)
	assert.NotNil(t, r.Items)
	assert.Empty(t, r.Items)
	assert.Zero(t, r.TotalPrice)
}

func TestExtract_NoCommaAfterName(t *testing.T) {
	e := newTestEngine(t)

	r := e.Extract("Su Su 09987654321 1 bag (20000)")

	// The leading letters run hits a digit before any comma, so no name.
	assert.Empty(t, r.CustomerName)
	assert.Equal(t, "09987654321", r.Phone)
	require.Len(t, r.Items, 1)
	assert.Equal(t, "bag", r.Items[0].Name)
	assert.Equal(t, 1, r.Items[0].Quantity)
	assert.Equal(t, 20000, r.Items[0].UnitPrice)
	assert.Equal(t, 20000, r.TotalPrice)
}

func TestExtract_FallbackAddress(t *testing.T) {
	e := newTestEngine(t)

	r := e.Extract("Ko Ko, 09111222333, 5 hats @ 5000, somewhere made up")

	assert.Equal(t, "Ko Ko", r.CustomerName)
	assert.Equal(t, "somewhere made up", r.Address)
	require.Len(t, r.Items, 1)
	assert.Equal(t, 25000, r.TotalPrice)
}

func TestExtract_HostileInputStillWellFormed(t *testing.T) {
	e := newTestEngine(t)

	r := e.Extract("<script>alert(1)</script> Mg, 09123456789, 1 item @ 1000")

	assert.Equal(t, "09123456789", r.Phone)
	require.Len(t, r.Items, 1)
	assert.Equal(t, "item", r.Items[0].Name)
	assert.Equal(t, 1000, r.TotalPrice)
}

func TestExtract_AddressResolution(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "known city beats trailing fallback",
			text: "Aye, 09111222333, 2 cups @ 500, mandalay somewhere",
			want: "mandalay",
		},
		{
			name: "city found anywhere in the text",
			text: "send to Taunggyi please, 1 mug @ 3000",
			want: "Taunggyi",
		},
		{
			name: "leftmost of two known cities wins",
			text: "ship from Mandalay warehouse to Yangon, 1 mug @ 3000",
			want: "Mandalay",
		},
		{
			name: "case-folding rune that widens when lowered",
			text: strings.Repeat("Ⱥ", 3) + " yangon 1 mug @ 3000",
			want: "yangon",
		},
		{
			name: "dotted capital i before the city",
			text: "İİ yangon, 1 mug @ 3000",
			want: "yangon",
		},
		{
			name: "filler word rejected",
			text: "Mya, 09111222333, 2 cups @ 500 and",
			want: "",
		},
		{
			name: "trailing digits rejected",
			text: "Mya, 09111222333, 2 cups @ 500, block 14",
			want: "",
		},
		{
			name: "single letter too short",
			text: "Mya, 09111222333, 2 cups @ 500, a",
			want: "",
		},
		{
			name: "over fifty letters rejected",
			text: "Mya, 09111222333, 2 cups @ 500, " + strings.Repeat("a", 51),
			want: "",
		},
		{
			name: "no items means no fallback",
			text: "Mya, 09111222333, no order yet",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text).Address)
		})
	}
}

func TestExtract_Items(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name  string
		text  string
		items []entity.InvoiceItem
		total int
	}{
		{
			name: "parenthesis and at markers mix",
			text: "2 shirts (30000) then 1 hat @ 5,000",
			items: []entity.InvoiceItem{
				{Name: "shirts", Quantity: 2, UnitPrice: 30000},
				{Name: "hat", Quantity: 1, UnitPrice: 5000},
			},
			total: 65000,
		},
		{
			name: "comma grouped price stripped",
			text: "3 bags @ 1,500,000",
			items: []entity.InvoiceItem{
				{Name: "bags", Quantity: 3, UnitPrice: 1500000},
			},
			total: 4500000,
		},
		{
			name: "multi word item name",
			text: "1 blue cotton shirt @ 12000",
			items: []entity.InvoiceItem{
				{Name: "blue cotton shirt", Quantity: 1, UnitPrice: 12000},
			},
			total: 12000,
		},
		{
			name:  "stray grand total figure is not an item",
			text:  "Mg Mg, 2 shirts @ 15000, total 50000 ks",
			items: []entity.InvoiceItem{{Name: "shirts", Quantity: 2, UnitPrice: 15000}},
			total: 30000,
		},
		{
			name:  "number without price marker ignored",
			text:  "2 shirts and 3 bags",
			items: []entity.InvoiceItem{},
			total: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := e.Extract(tt.text)
			require.Len(t, r.Items, len(tt.items))
			for i, want := range tt.items {
				assert.Equal(t, want.Name, r.Items[i].Name)
				assert.Equal(t, want.Quantity, r.Items[i].Quantity)
				assert.Equal(t, want.UnitPrice, r.Items[i].UnitPrice)
				assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", r.Items[i].ID.String())
			}
			assert.Equal(t, tt.total, r.TotalPrice)
		})
	}
}

func TestExtract_Idempotence(t *testing.T) {
	e := newTestEngine(t)

	inputs := []string{
		"Mg Mg, 09123456789, 2 shirts @ 15000 and 3 bags @ 10000, Yangon",
		"Su Su 09987654321 1 bag (20000)",
		"",
		"garbage ,,, @@@ ((( 123",
	}

	for _, in := range inputs {
		a := e.Extract(in)
		b := e.Extract(in)

		assert.Equal(t, a.CustomerName, b.CustomerName)
		assert.Equal(t, a.Phone, b.Phone)
		assert.Equal(t, a.Address, b.Address)
		assert.Equal(t, a.TotalPrice, b.TotalPrice)
		require.Len(t, b.Items, len(a.Items))
		for i := range a.Items {
			// ids are freshly generated per call; field values must agree
			assert.Equal(t, a.Items[i].Name, b.Items[i].Name)
			assert.Equal(t, a.Items[i].Quantity, b.Items[i].Quantity)
			assert.Equal(t, a.Items[i].UnitPrice, b.Items[i].UnitPrice)
		}
	}
}

func TestExtract_NoThrowOnMalformedInput(t *testing.T) {
	e := newTestEngine(t)

	inputs := []string{
		strings.Repeat("9", 1000),
		strings.Repeat("a ", 500),
		strings.Repeat("(", 1000),
		"@@@@",
		", , , ,",
		"5  @ ",
		"09",
		"မောင်မောင်, 09123456789, 2 shirts @ 15000",
	}

	for _, in := range inputs {
		r := e.Extract(in)
		total := 0
		for _, it := range r.Items {
			total += it.Quantity * it.UnitPrice
		}
		assert.Equal(t, total, r.TotalPrice, "total must equal summed subtotals for %q", in)
	}
}

func TestExtract_OrderingPreserved(t *testing.T) {
	e := newTestEngine(t)

	r := e.Extract("3 pens @ 300, 1 ruler @ 500, 2 books @ 4000")

	require.Len(t, r.Items, 3)
	assert.Equal(t, []string{"pens", "ruler", "books"}, []string{
		r.Items[0].Name, r.Items[1].Name, r.Items[2].Name,
	})
}

func TestNewEngine_RequiresPhonePatterns(t *testing.T) {
	_, err := NewEngine(Locale{Name: "empty"})
	require.Error(t, err)
}
