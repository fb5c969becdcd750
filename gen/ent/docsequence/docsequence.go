// Code generated by ent, DO NOT EDIT.

package docsequence

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the docsequence type in the database.
	Label = "doc_sequence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPrefix holds the string denoting the prefix field in the database.
	FieldPrefix = "prefix"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldCounter holds the string denoting the counter field in the database.
	FieldCounter = "counter"
	// Table holds the table name of the docsequence in the database.
	Table = "doc_sequences"
)

// Columns holds all SQL columns for docsequence fields.
var Columns = []string{
	FieldID,
	FieldPrefix,
	FieldDepartment,
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
	// PrefixValidator is a validator for the "prefix" field. It is called by the builders before save.
	PrefixValidator func(string) error
	// DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	DepartmentValidator func(string) error
	// YearValidator is a validator for the "year" field. It is called by the builders before save.
	YearValidator func(int) error
	// DefaultCounter holds the default value on creation for the "counter" field.
	DefaultCounter int
	// CounterValidator is a validator for the "counter" field. It is called by the builders before save.
	CounterValidator func(int) error
)

// OrderOption defines the ordering options for the DocSequence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPrefix orders the results by the prefix field.
func ByPrefix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrefix, opts...).ToFunc()
}

// ByDepartment orders the results by the department field.
func ByDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartment, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByCounter orders the results by the counter field.
func ByCounter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCounter, opts...).ToFunc()
}
