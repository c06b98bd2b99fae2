// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvoiceDraftsColumns holds the columns for the "invoice_drafts" table.
	InvoiceDraftsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "data", Type: field.TypeBytes},
		{Name: "status", Type: field.TypeString, Default: "OPEN"},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InvoiceDraftsTable holds the schema information for the "invoice_drafts" table.
	InvoiceDraftsTable = &schema.Table{
		Name:       "invoice_drafts",
		Columns:    InvoiceDraftsColumns,
		PrimaryKey: []*schema.Column{InvoiceDraftsColumns[0]},
	}
	// InvoiceSequencesColumns holds the columns for the "invoice_sequences" table.
	InvoiceSequencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "year", Type: field.TypeInt, Unique: true},
		{Name: "counter", Type: field.TypeInt, Default: 0},
	}
	// InvoiceSequencesTable holds the schema information for the "invoice_sequences" table.
	InvoiceSequencesTable = &schema.Table{
		Name:       "invoice_sequences",
		Columns:    InvoiceSequencesColumns,
		PrimaryKey: []*schema.Column{InvoiceSequencesColumns[0]},
	}
	// StoreProfilesColumns holds the columns for the "store_profiles" table.
	StoreProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "phone", Type: field.TypeString, Default: ""},
		{Name: "address", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StoreProfilesTable holds the schema information for the "store_profiles" table.
	StoreProfilesTable = &schema.Table{
		Name:       "store_profiles",
		Columns:    StoreProfilesColumns,
		PrimaryKey: []*schema.Column{StoreProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvoiceDraftsTable,
		InvoiceSequencesTable,
		StoreProfilesTable,
	}
)

func init() {
	InvoiceDraftsTable.Annotation = &entsql.Annotation{
		Table: "invoice_drafts",
	}
	InvoiceSequencesTable.Annotation = &entsql.Annotation{
		Table: "invoice_sequences",
	}
	StoreProfilesTable.Annotation = &entsql.Annotation{
		Table: "store_profiles",
	}
}
