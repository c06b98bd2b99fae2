// Code generated by ent, DO NOT EDIT.

package invoicesequence

import (
	"entgo.io/ent/dialect/sql"
	"github.com/orderkyat/orderkyat/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldLTE(FieldID, id))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldEQ(FieldYear, v))
}

// Counter applies equality check predicate on the "counter" field. It's identical to CounterEQ.
func Counter(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldEQ(FieldCounter, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldLTE(FieldYear, v))
}

// CounterEQ applies the EQ predicate on the "counter" field.
func CounterEQ(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldEQ(FieldCounter, v))
}

// CounterNEQ applies the NEQ predicate on the "counter" field.
func CounterNEQ(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldNEQ(FieldCounter, v))
}

// CounterIn applies the In predicate on the "counter" field.
func CounterIn(vs ...int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldIn(FieldCounter, vs...))
}

// CounterNotIn applies the NotIn predicate on the "counter" field.
func CounterNotIn(vs ...int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldNotIn(FieldCounter, vs...))
}

// CounterGT applies the GT predicate on the "counter" field.
func CounterGT(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldGT(FieldCounter, v))
}

// CounterGTE applies the GTE predicate on the "counter" field.
func CounterGTE(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldGTE(FieldCounter, v))
}

// CounterLT applies the LT predicate on the "counter" field.
func CounterLT(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldLT(FieldCounter, v))
}

// CounterLTE applies the LTE predicate on the "counter" field.
func CounterLTE(v int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldLTE(FieldCounter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvoiceSequence) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvoiceSequence) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvoiceSequence) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.NotPredicates(p))
}
