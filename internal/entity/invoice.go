package entity

import (
	"github.com/google/uuid"

	"github.com/orderkyat/orderkyat/constants"
)

// InvoiceItem represents one ordered product line for data transfer between layers.
type InvoiceItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int       `json:"unit_price"`
}

// Subtotal is derived, never stored.
func (i InvoiceItem) Subtotal() int {
	return i.Quantity * i.UnitPrice
}

// ExtractionResult is the structured outcome of parsing an order message.
// Empty fields are empty strings / empty slices / zero, never nil maps or
// error values. DeliveryType and DeliveryFee are set in the editing stage,
// not by the extraction engine.
type ExtractionResult struct {
	CustomerName string                 `json:"customer_name"`
	Phone        string                 `json:"phone"`
	Address      string                 `json:"address"`
	Items        []InvoiceItem          `json:"items"`
	TotalPrice   int                    `json:"total_price"`
	DeliveryType constants.DeliveryType `json:"delivery_type,omitempty"`
	DeliveryFee  int                    `json:"delivery_fee,omitempty"`
}

// Recompute refreshes TotalPrice from the item subtotals. The stored total is
// never trusted across edits.
func (r *ExtractionResult) Recompute() {
	total := 0
	for _, it := range r.Items {
		total += it.Subtotal()
	}
	r.TotalPrice = total
}

// GrandTotal is the item total plus any delivery fee.
func (r *ExtractionResult) GrandTotal() int {
	return r.TotalPrice + r.DeliveryFee
}
