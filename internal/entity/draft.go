package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/orderkyat/orderkyat/constants"
)

// InvoiceDraft represents an in-progress invoice for data transfer between
// layers. A single-user tool keeps at most one open draft at a time.
type InvoiceDraft struct {
	ID            uuid.UUID             `json:"id"`
	Data          ExtractionResult      `json:"data"`
	Status        constants.DraftStatus `json:"status"`
	InvoiceNumber string                `json:"invoice_number,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}
