// Code generated by ent, DO NOT EDIT.

package docsequence

import (
	"entgo.io/ent/dialect/sql"
	"github.com/jromarion/arc-classifier/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldLTE(FieldID, id))
}

// Prefix applies equality check predicate on the "prefix" field. It's identical to PrefixEQ.
func Prefix(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldEQ(FieldPrefix, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldEQ(FieldDepartment, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldEQ(FieldYear, v))
}

// Counter applies equality check predicate on the "counter" field. It's identical to CounterEQ.
func Counter(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldEQ(FieldCounter, v))
}

// PrefixEQ applies the EQ predicate on the "prefix" field.
func PrefixEQ(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldEQ(FieldPrefix, v))
}

// PrefixNEQ applies the NEQ predicate on the "prefix" field.
func PrefixNEQ(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldNEQ(FieldPrefix, v))
}

// PrefixIn applies the In predicate on the "prefix" field.
func PrefixIn(vs ...string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldIn(FieldPrefix, vs...))
}

// PrefixNotIn applies the NotIn predicate on the "prefix" field.
func PrefixNotIn(vs ...string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldNotIn(FieldPrefix, vs...))
}

// PrefixGT applies the GT predicate on the "prefix" field.
func PrefixGT(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldGT(FieldPrefix, v))
}

// PrefixGTE applies the GTE predicate on the "prefix" field.
func PrefixGTE(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldGTE(FieldPrefix, v))
}

// PrefixLT applies the LT predicate on the "prefix" field.
func PrefixLT(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldLT(FieldPrefix, v))
}

// PrefixLTE applies the LTE predicate on the "prefix" field.
func PrefixLTE(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldLTE(FieldPrefix, v))
}

// PrefixContains applies the Contains predicate on the "prefix" field.
func PrefixContains(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldContains(FieldPrefix, v))
}

// PrefixHasPrefix applies the HasPrefix predicate on the "prefix" field.
func PrefixHasPrefix(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldHasPrefix(FieldPrefix, v))
}

// PrefixHasSuffix applies the HasSuffix predicate on the "prefix" field.
func PrefixHasSuffix(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldHasSuffix(FieldPrefix, v))
}

// PrefixEqualFold applies the EqualFold predicate on the "prefix" field.
func PrefixEqualFold(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldEqualFold(FieldPrefix, v))
}

// PrefixContainsFold applies the ContainsFold predicate on the "prefix" field.
func PrefixContainsFold(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldContainsFold(FieldPrefix, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldContainsFold(FieldDepartment, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldLTE(FieldYear, v))
}

// CounterEQ applies the EQ predicate on the "counter" field.
func CounterEQ(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldEQ(FieldCounter, v))
}

// CounterNEQ applies the NEQ predicate on the "counter" field.
func CounterNEQ(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldNEQ(FieldCounter, v))
}

// CounterIn applies the In predicate on the "counter" field.
func CounterIn(vs ...int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldIn(FieldCounter, vs...))
}

// CounterNotIn applies the NotIn predicate on the "counter" field.
func CounterNotIn(vs ...int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldNotIn(FieldCounter, vs...))
}

// CounterGT applies the GT predicate on the "counter" field.
func CounterGT(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldGT(FieldCounter, v))
}

// CounterGTE applies the GTE predicate on the "counter" field.
func CounterGTE(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldGTE(FieldCounter, v))
}

// CounterLT applies the LT predicate on the "counter" field.
func CounterLT(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldLT(FieldCounter, v))
}

// CounterLTE applies the LTE predicate on the "counter" field.
func CounterLTE(v int) predicate.DocSequence {
	return predicate.DocSequence(sql.FieldLTE(FieldCounter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocSequence) predicate.DocSequence {
	return predicate.DocSequence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocSequence) predicate.DocSequence {
	return predicate.DocSequence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocSequence) predicate.DocSequence {
	return predicate.DocSequence(sql.NotPredicates(p))
}
