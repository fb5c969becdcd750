// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jromarion/arc-classifier/gen/ent/docsequence"
	"github.com/jromarion/arc-classifier/gen/ent/predicate"
)

// DocSequenceUpdate is the builder for updating DocSequence entities.
type DocSequenceUpdate struct {
	config
	hooks    []Hook
	mutation *DocSequenceMutation
}

// Where appends a list predicates to the DocSequenceUpdate builder.
func (_u *DocSequenceUpdate) Where(ps ...predicate.DocSequence) *DocSequenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPrefix sets the "prefix" field.
func (_u *DocSequenceUpdate) SetPrefix(v string) *DocSequenceUpdate {
	_u.mutation.SetPrefix(v)
	return _u
}

// SetNillablePrefix sets the "prefix" field if the given value is not nil.
func (_u *DocSequenceUpdate) SetNillablePrefix(v *string) *DocSequenceUpdate {
	if v != nil {
		_u.SetPrefix(*v)
	}
	return _u
}

// SetDepartment sets the "department" field.
func (_u *DocSequenceUpdate) SetDepartment(v string) *DocSequenceUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *DocSequenceUpdate) SetNillableDepartment(v *string) *DocSequenceUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *DocSequenceUpdate) SetYear(v int) *DocSequenceUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *DocSequenceUpdate) SetNillableYear(v *int) *DocSequenceUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *DocSequenceUpdate) AddYear(v int) *DocSequenceUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// SetCounter sets the "counter" field.
func (_u *DocSequenceUpdate) SetCounter(v int) *DocSequenceUpdate {
	_u.mutation.ResetCounter()
	_u.mutation.SetCounter(v)
	return _u
}

// SetNillableCounter sets the "counter" field if the given value is not nil.
func (_u *DocSequenceUpdate) SetNillableCounter(v *int) *DocSequenceUpdate {
	if v != nil {
		_u.SetCounter(*v)
	}
	return _u
}

// AddCounter adds value to the "counter" field.
func (_u *DocSequenceUpdate) AddCounter(v int) *DocSequenceUpdate {
	_u.mutation.AddCounter(v)
	return _u
}

// Mutation returns the DocSequenceMutation object of the builder.
func (_u *DocSequenceUpdate) Mutation() *DocSequenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocSequenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocSequenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocSequenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocSequenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocSequenceUpdate) check() error {
	if v, ok := _u.mutation.Prefix(); ok {
		if err := docsequence.PrefixValidator(v); err != nil {
			return &ValidationError{Name: "prefix", err: fmt.Errorf(`ent: validator failed for field "DocSequence.prefix": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := docsequence.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "DocSequence.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Year(); ok {
		if err := docsequence.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "DocSequence.year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Counter(); ok {
		if err := docsequence.CounterValidator(v); err != nil {
			return &ValidationError{Name: "counter", err: fmt.Errorf(`ent: validator failed for field "DocSequence.counter": %w`, err)}
		}
	}
	return nil
}

func (_u *DocSequenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(docsequence.Table, docsequence.Columns, sqlgraph.NewFieldSpec(docsequence.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Prefix(); ok {
		_spec.SetField(docsequence.FieldPrefix, field.TypeString, value)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(docsequence.FieldDepartment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(docsequence.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(docsequence.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Counter(); ok {
		_spec.SetField(docsequence.FieldCounter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCounter(); ok {
		_spec.AddField(docsequence.FieldCounter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{docsequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocSequenceUpdateOne is the builder for updating a single DocSequence entity.
type DocSequenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocSequenceMutation
}

// SetPrefix sets the "prefix" field.
func (_u *DocSequenceUpdateOne) SetPrefix(v string) *DocSequenceUpdateOne {
	_u.mutation.SetPrefix(v)
	return _u
}

// SetNillablePrefix sets the "prefix" field if the given value is not nil.
func (_u *DocSequenceUpdateOne) SetNillablePrefix(v *string) *DocSequenceUpdateOne {
	if v != nil {
		_u.SetPrefix(*v)
	}
	return _u
}

// SetDepartment sets the "department" field.
func (_u *DocSequenceUpdateOne) SetDepartment(v string) *DocSequenceUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *DocSequenceUpdateOne) SetNillableDepartment(v *string) *DocSequenceUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *DocSequenceUpdateOne) SetYear(v int) *DocSequenceUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *DocSequenceUpdateOne) SetNillableYear(v *int) *DocSequenceUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *DocSequenceUpdateOne) AddYear(v int) *DocSequenceUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// SetCounter sets the "counter" field.
func (_u *DocSequenceUpdateOne) SetCounter(v int) *DocSequenceUpdateOne {
	_u.mutation.ResetCounter()
	_u.mutation.SetCounter(v)
	return _u
}

// SetNillableCounter sets the "counter" field if the given value is not nil.
func (_u *DocSequenceUpdateOne) SetNillableCounter(v *int) *DocSequenceUpdateOne {
	if v != nil {
		_u.SetCounter(*v)
	}
	return _u
}

// AddCounter adds value to the "counter" field.
func (_u *DocSequenceUpdateOne) AddCounter(v int) *DocSequenceUpdateOne {
	_u.mutation.AddCounter(v)
	return _u
}

// Mutation returns the DocSequenceMutation object of the builder.
func (_u *DocSequenceUpdateOne) Mutation() *DocSequenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocSequenceUpdate builder.
func (_u *DocSequenceUpdateOne) Where(ps ...predicate.DocSequence) *DocSequenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocSequenceUpdateOne) Select(field string, fields ...string) *DocSequenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocSequence entity.
func (_u *DocSequenceUpdateOne) Save(ctx context.Context) (*DocSequence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocSequenceUpdateOne) SaveX(ctx context.Context) *DocSequence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocSequenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocSequenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocSequenceUpdateOne) check() error {
	if v, ok := _u.mutation.Prefix(); ok {
		if err := docsequence.PrefixValidator(v); err != nil {
			return &ValidationError{Name: "prefix", err: fmt.Errorf(`ent: validator failed for field "DocSequence.prefix": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := docsequence.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "DocSequence.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Year(); ok {
		if err := docsequence.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "DocSequence.year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Counter(); ok {
		if err := docsequence.CounterValidator(v); err != nil {
			return &ValidationError{Name: "counter", err: fmt.Errorf(`ent: validator failed for field "DocSequence.counter": %w`, err)}
		}
	}
	return nil
}

func (_u *DocSequenceUpdateOne) sqlSave(ctx context.Context) (_node *DocSequence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(docsequence.Table, docsequence.Columns, sqlgraph.NewFieldSpec(docsequence.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocSequence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, docsequence.FieldID)
		for _, f := range fields {
			if !docsequence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != docsequence.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Prefix(); ok {
		_spec.SetField(docsequence.FieldPrefix, field.TypeString, value)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(docsequence.FieldDepartment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(docsequence.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(docsequence.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Counter(); ok {
		_spec.SetField(docsequence.FieldCounter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCounter(); ok {
		_spec.AddField(docsequence.FieldCounter, field.TypeInt, value)
	}
	_node = &DocSequence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{docsequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
