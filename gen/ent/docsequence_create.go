// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jromarion/arc-classifier/gen/ent/docsequence"
)

// DocSequenceCreate is the builder for creating a DocSequence entity.
type DocSequenceCreate struct {
	config
	mutation *DocSequenceMutation
	hooks    []Hook
}

// SetPrefix sets the "prefix" field.
func (_c *DocSequenceCreate) SetPrefix(v string) *DocSequenceCreate {
	_c.mutation.SetPrefix(v)
	return _c
}

// SetDepartment sets the "department" field.
func (_c *DocSequenceCreate) SetDepartment(v string) *DocSequenceCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetYear sets the "year" field.
func (_c *DocSequenceCreate) SetYear(v int) *DocSequenceCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetCounter sets the "counter" field.
func (_c *DocSequenceCreate) SetCounter(v int) *DocSequenceCreate {
	_c.mutation.SetCounter(v)
	return _c
}

// SetNillableCounter sets the "counter" field if the given value is not nil.
func (_c *DocSequenceCreate) SetNillableCounter(v *int) *DocSequenceCreate {
	if v != nil {
		_c.SetCounter(*v)
	}
	return _c
}

// Mutation returns the DocSequenceMutation object of the builder.
func (_c *DocSequenceCreate) Mutation() *DocSequenceMutation {
	return _c.mutation
}

// Save creates the DocSequence in the database.
func (_c *DocSequenceCreate) Save(ctx context.Context) (*DocSequence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocSequenceCreate) SaveX(ctx context.Context) *DocSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocSequenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocSequenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocSequenceCreate) defaults() {
	if _, ok := _c.mutation.Counter(); !ok {
		v := docsequence.DefaultCounter
		_c.mutation.SetCounter(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocSequenceCreate) check() error {
	if _, ok := _c.mutation.Prefix(); !ok {
		return &ValidationError{Name: "prefix", err: errors.New(`ent: missing required field "DocSequence.prefix"`)}
	}
	if v, ok := _c.mutation.Prefix(); ok {
		if err := docsequence.PrefixValidator(v); err != nil {
			return &ValidationError{Name: "prefix", err: fmt.Errorf(`ent: validator failed for field "DocSequence.prefix": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Department(); !ok {
		return &ValidationError{Name: "department", err: errors.New(`ent: missing required field "DocSequence.department"`)}
	}
	if v, ok := _c.mutation.Department(); ok {
		if err := docsequence.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "DocSequence.department": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`ent: missing required field "DocSequence.year"`)}
	}
	if v, ok := _c.mutation.Year(); ok {
		if err := docsequence.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "DocSequence.year": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Counter(); !ok {
		return &ValidationError{Name: "counter", err: errors.New(`ent: missing required field "DocSequence.counter"`)}
	}
	if v, ok := _c.mutation.Counter(); ok {
		if err := docsequence.CounterValidator(v); err != nil {
			return &ValidationError{Name: "counter", err: fmt.Errorf(`ent: validator failed for field "DocSequence.counter": %w`, err)}
		}
	}
	return nil
}

func (_c *DocSequenceCreate) sqlSave(ctx context.Context) (*DocSequence, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocSequenceCreate) createSpec() (*DocSequence, *sqlgraph.CreateSpec) {
	var (
		_node = &DocSequence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(docsequence.Table, sqlgraph.NewFieldSpec(docsequence.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Prefix(); ok {
		_spec.SetField(docsequence.FieldPrefix, field.TypeString, value)
		_node.Prefix = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(docsequence.FieldDepartment, field.TypeString, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(docsequence.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.Counter(); ok {
		_spec.SetField(docsequence.FieldCounter, field.TypeInt, value)
		_node.Counter = value
	}
	return _node, _spec
}

// DocSequenceCreateBulk is the builder for creating many DocSequence entities in bulk.
type DocSequenceCreateBulk struct {
	config
	err      error
	builders []*DocSequenceCreate
}

// Save creates the DocSequence entities in the database.
func (_c *DocSequenceCreateBulk) Save(ctx context.Context) ([]*DocSequence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocSequence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocSequenceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocSequenceCreateBulk) SaveX(ctx context.Context) []*DocSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocSequenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocSequenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
