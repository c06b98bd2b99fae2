// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// InvoiceDraft is the predicate function for invoicedraft builders.
type InvoiceDraft func(*sql.Selector)

// InvoiceSequence is the predicate function for invoicesequence builders.
type InvoiceSequence func(*sql.Selector)

// StoreProfile is the predicate function for storeprofile builders.
type StoreProfile func(*sql.Selector)
