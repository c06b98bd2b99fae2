// Package draftschema guards the persisted invoice-draft payload. Drafts are
// stored as JSON and survive process restarts; a corrupted or hand-edited row
// must fail loudly at the storage boundary, not deep inside rendering.
package draftschema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaJSON = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "customer_name": {"type": "string"},
    "phone": {"type": "string"},
    "address": {"type": "string"},
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "quantity": {"type": "integer", "minimum": 0},
          "unit_price": {"type": "integer", "minimum": 0}
        },
        "required": ["id", "quantity", "unit_price"]
      }
    },
    "total_price": {"type": "integer", "minimum": 0},
    "delivery_type": {
      "type": "string",
      "enum": ["Cash on Delivery", "Prepaid", "Self Pickup", "Free Delivery"]
    },
    "delivery_fee": {"type": "integer", "minimum": 0}
  },
  "required": ["customer_name", "phone", "address", "items", "total_price"]
}`

var compiled = mustCompile()

func mustCompile() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("invoice_draft.json", bytes.NewReader([]byte(schemaJSON))); err != nil {
		panic(err)
	}
	return c.MustCompile("invoice_draft.json")
}

// Validate checks a serialized ExtractionResult payload against the draft
// schema.
func Validate(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("draft payload is not valid JSON: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("draft payload rejected: %w", err)
	}
	return nil
}
