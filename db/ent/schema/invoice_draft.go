package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/orderkyat/orderkyat/constants"
	"github.com/orderkyat/orderkyat/db/ent/schema/utils"
)

type InvoiceDraft struct{ ent.Schema }

func (InvoiceDraft) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_drafts"},
	}
}

func (InvoiceDraft) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// The ExtractionResult payload, serialized as JSON and validated
		// against the draft schema before writes.
		field.Bytes("data"),
		field.String("status").
			Default(string(constants.DraftStatusOpen)).
			Validate(utils.EnumValidator(
				string(constants.DraftStatusOpen),
				string(constants.DraftStatusFinalized),
			)),
		field.String("invoice_number").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
