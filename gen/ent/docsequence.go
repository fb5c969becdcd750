// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jromarion/arc-classifier/gen/ent/docsequence"
)

// DocSequence is the model entity for the DocSequence schema.
type DocSequence struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Prefix holds the value of the "prefix" field.
	Prefix string `json:"prefix,omitempty"`
	// Department holds the value of the "department" field.
	Department string `json:"department,omitempty"`
	// Year holds the value of the "year" field.
	Year int `json:"year,omitempty"`
	// Counter holds the value of the "counter" field.
	Counter      int `json:"counter,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocSequence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case docsequence.FieldID, docsequence.FieldYear, docsequence.FieldCounter:
			values[i] = new(sql.NullInt64)
		case docsequence.FieldPrefix, docsequence.FieldDepartment:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocSequence fields.
func (_m *DocSequence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case docsequence.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case docsequence.FieldPrefix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prefix", values[i])
			} else if value.Valid {
				_m.Prefix = value.String
			}
		case docsequence.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = value.String
			}
		case docsequence.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = int(value.Int64)
			}
		case docsequence.FieldCounter:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DocSequence.
// This includes values selected through modifiers, order, etc.
func (_m *DocSequence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DocSequence.
// Note that you need to call DocSequence.Unwrap() before calling this method if this DocSequence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocSequence) Update() *DocSequenceUpdateOne {
	return NewDocSequenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocSequence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocSequence) Unwrap() *DocSequence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocSequence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocSequence) String() string {
	var builder strings.Builder
	builder.WriteString("DocSequence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("prefix=")
	builder.WriteString(_m.Prefix)
	builder.WriteString(", ")
	builder.WriteString("department=")
	builder.WriteString(_m.Department)
	builder.WriteString(", ")
	builder.WriteString("year=")
	builder.WriteString(fmt.Sprintf("%v", _m.Year))
	builder.WriteString(", ")
	builder.WriteString("counter=")
	builder.WriteString(fmt.Sprintf("%v", _m.Counter))
	builder.WriteByte(')')
	return builder.String()
}

// DocSequences is a parsable slice of DocSequence.
type DocSequences []*DocSequence
