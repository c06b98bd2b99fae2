// Code generated by ent, DO NOT EDIT.

package invoicesequence

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the invoicesequence type in the database.
	Label = "invoice_sequence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldCounter holds the string denoting the counter field in the database.
	FieldCounter = "counter"
	// Table holds the table name of the invoicesequence in the database.
	Table = "invoice_sequences"
)

// Columns holds all SQL columns for invoicesequence fields.
var Columns = []string{
	FieldID,
	FieldYear,
	FieldCounter,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCounter holds the default value on creation for the "counter" field.
	DefaultCounter int
	// CounterValidator is a validator for the "counter" field. It is called by the builders before save.
	CounterValidator func(int) error
)

// OrderOption defines the ordering options for the InvoiceSequence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByCounter orders the results by the counter field.
func ByCounter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCounter, opts...).ToFunc()
}
