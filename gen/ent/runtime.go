// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/orderkyat/orderkyat/db/ent/schema"
	"github.com/orderkyat/orderkyat/gen/ent/invoicedraft"
	"github.com/orderkyat/orderkyat/gen/ent/invoicesequence"
	"github.com/orderkyat/orderkyat/gen/ent/storeprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoicedraftFields := schema.InvoiceDraft{}.Fields()
	_ = invoicedraftFields
	// invoicedraftDescStatus is the schema descriptor for status field.
	invoicedraftDescStatus := invoicedraftFields[2].Descriptor()
	// invoicedraft.DefaultStatus holds the default value on creation for the status field.
	invoicedraft.DefaultStatus = invoicedraftDescStatus.Default.(string)
	// invoicedraft.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	invoicedraft.StatusValidator = invoicedraftDescStatus.Validators[0].(func(string) error)
	// invoicedraftDescCreatedAt is the schema descriptor for created_at field.
	invoicedraftDescCreatedAt := invoicedraftFields[4].Descriptor()
	// invoicedraft.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoicedraft.DefaultCreatedAt = invoicedraftDescCreatedAt.Default.(func() time.Time)
	// invoicedraftDescUpdatedAt is the schema descriptor for updated_at field.
	invoicedraftDescUpdatedAt := invoicedraftFields[5].Descriptor()
	// invoicedraft.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoicedraft.DefaultUpdatedAt = invoicedraftDescUpdatedAt.Default.(func() time.Time)
	// invoicedraft.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoicedraft.UpdateDefaultUpdatedAt = invoicedraftDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoicedraftDescID is the schema descriptor for id field.
	invoicedraftDescID := invoicedraftFields[0].Descriptor()
	// invoicedraft.DefaultID holds the default value on creation for the id field.
	invoicedraft.DefaultID = invoicedraftDescID.Default.(func() uuid.UUID)
	invoicesequenceFields := schema.InvoiceSequence{}.Fields()
	_ = invoicesequenceFields
	// invoicesequenceDescCounter is the schema descriptor for counter field.
	invoicesequenceDescCounter := invoicesequenceFields[1].Descriptor()
	// invoicesequence.DefaultCounter holds the default value on creation for the counter field.
	invoicesequence.DefaultCounter = invoicesequenceDescCounter.Default.(int)
	// invoicesequence.CounterValidator is a validator for the "counter" field. It is called by the builders before save.
	invoicesequence.CounterValidator = invoicesequenceDescCounter.Validators[0].(func(int) error)
	storeprofileFields := schema.StoreProfile{}.Fields()
	_ = storeprofileFields
	// storeprofileDescName is the schema descriptor for name field.
	storeprofileDescName := storeprofileFields[1].Descriptor()
	// storeprofile.DefaultName holds the default value on creation for the name field.
	storeprofile.DefaultName = storeprofileDescName.Default.(string)
	// storeprofileDescPhone is the schema descriptor for phone field.
	storeprofileDescPhone := storeprofileFields[2].Descriptor()
	// storeprofile.DefaultPhone holds the default value on creation for the phone field.
	storeprofile.DefaultPhone = storeprofileDescPhone.Default.(string)
	// storeprofileDescAddress is the schema descriptor for address field.
	storeprofileDescAddress := storeprofileFields[3].Descriptor()
	// storeprofile.DefaultAddress holds the default value on creation for the address field.
	storeprofile.DefaultAddress = storeprofileDescAddress.Default.(string)
	// storeprofileDescCreatedAt is the schema descriptor for created_at field.
	storeprofileDescCreatedAt := storeprofileFields[4].Descriptor()
	// storeprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	storeprofile.DefaultCreatedAt = storeprofileDescCreatedAt.Default.(func() time.Time)
	// storeprofileDescUpdatedAt is the schema descriptor for updated_at field.
	storeprofileDescUpdatedAt := storeprofileFields[5].Descriptor()
	// storeprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	storeprofile.DefaultUpdatedAt = storeprofileDescUpdatedAt.Default.(func() time.Time)
	// storeprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	storeprofile.UpdateDefaultUpdatedAt = storeprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// storeprofileDescID is the schema descriptor for id field.
	storeprofileDescID := storeprofileFields[0].Descriptor()
	// storeprofile.DefaultID holds the default value on creation for the id field.
	storeprofile.DefaultID = storeprofileDescID.Default.(func() uuid.UUID)
}
