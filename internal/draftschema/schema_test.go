package draftschema

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderkyat/orderkyat/internal/entity"
)

func TestValidate(t *testing.T) {
	t.Run("marshaled extraction result passes", func(t *testing.T) {
		data := entity.ExtractionResult{
			CustomerName: "Mg Mg",
			Phone:        "09123456789",
			Address:      "Yangon",
			Items: []entity.InvoiceItem{
				{ID: uuid.New(), Name: "shirts", Quantity: 2, UnitPrice: 15000},
			},
			TotalPrice: 30000,
		}
		payload, err := json.Marshal(data)
		require.NoError(t, err)
		assert.NoError(t, Validate(payload))
	})

	t.Run("empty result passes", func(t *testing.T) {
		payload, err := json.Marshal(entity.ExtractionResult{Items: []entity.InvoiceItem{}})
		require.NoError(t, err)
		assert.NoError(t, Validate(payload))
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		assert.Error(t, Validate([]byte(`{"customer_name":`)))
	})

	t.Run("rejects missing item id", func(t *testing.T) {
		payload := []byte(`{"customer_name":"","phone":"","address":"",
			"items":[{"name":"shirts","quantity":2,"unit_price":15000}],
			"total_price":30000}`)
		assert.Error(t, Validate(payload))
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		payload := []byte(`{"customer_name":"","phone":"","address":"",
			"items":[{"id":"x","name":"shirts","quantity":-1,"unit_price":15000}],
			"total_price":0}`)
		assert.Error(t, Validate(payload))
	})

	t.Run("rejects unknown delivery type", func(t *testing.T) {
		payload := []byte(`{"customer_name":"","phone":"","address":"",
			"items":[],"total_price":0,"delivery_type":"Drone"}`)
		assert.Error(t, Validate(payload))
	})

	t.Run("rejects unknown top-level field", func(t *testing.T) {
		payload := []byte(`{"customer_name":"","phone":"","address":"",
			"items":[],"total_price":0,"grand_total":99}`)
		assert.Error(t, Validate(payload))
	})
}
