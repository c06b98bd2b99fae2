// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/orderkyat/orderkyat/gen/ent/invoicesequence"
)

// InvoiceSequence is the model entity for the InvoiceSequence schema.
type InvoiceSequence struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Year holds the value of the "year" field.
	Year int `json:"year,omitempty"`
	// Counter holds the value of the "counter" field.
	Counter      int `json:"counter,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InvoiceSequence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoicesequence.FieldID, invoicesequence.FieldYear, invoicesequence.FieldCounter:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InvoiceSequence fields.
func (_m *InvoiceSequence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoicesequence.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case invoicesequence.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = int(value.Int64)
			}
		case invoicesequence.FieldCounter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field counter", values[i])
			} else if value.Valid {
				_m.Counter = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InvoiceSequence.
// This includes values selected through modifiers, order, etc.
func (_m *InvoiceSequence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InvoiceSequence.
// Note that you need to call InvoiceSequence.Unwrap() before calling this method if this InvoiceSequence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InvoiceSequence) Update() *InvoiceSequenceUpdateOne {
	return NewInvoiceSequenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InvoiceSequence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InvoiceSequence) Unwrap() *InvoiceSequence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InvoiceSequence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InvoiceSequence) String() string {
	var builder strings.Builder
	builder.WriteString("InvoiceSequence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("year=")
	builder.WriteString(fmt.Sprintf("%v", _m.Year))
	builder.WriteString(", ")
	builder.WriteString("counter=")
	builder.WriteString(fmt.Sprintf("%v", _m.Counter))
	builder.WriteByte(')')
	return builder.String()
}

// InvoiceSequences is a parsable slice of InvoiceSequence.
type InvoiceSequences []*InvoiceSequence
