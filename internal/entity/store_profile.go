package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreProfile represents the seller's details printed in the FROM block of
// the invoice, for data transfer between layers.
type StoreProfile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
