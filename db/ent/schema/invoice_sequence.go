package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// InvoiceSequence is the durable per-year invoice counter. One row per
// calendar year; Counter holds the last issued sequence number.
type InvoiceSequence struct{ ent.Schema }

func (InvoiceSequence) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_sequences"},
	}
}

func (InvoiceSequence) Fields() []ent.Field {
	return []ent.Field{
		field.Int("year").Unique().Immutable(),
		field.Int("counter").Default(0).NonNegative(),
	}
}
