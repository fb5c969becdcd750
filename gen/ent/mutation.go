// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jromarion/arc-classifier/gen/ent/docsequence"
	"github.com/jromarion/arc-classifier/gen/ent/document"
	"github.com/jromarion/arc-classifier/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocSequence = "DocSequence"
	TypeDocument    = "Document"
)

// DocSequenceMutation represents an operation that mutates the DocSequence nodes in the graph.
type DocSequenceMutation struct {
	config
	op            Op
	typ           string
	id            *int
	prefix        *string
	department    *string
	year          *int
	addyear       *int
	counter       *int
	addcounter    *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DocSequence, error)
	predicates    []predicate.DocSequence
}

var _ ent.Mutation = (*DocSequenceMutation)(nil)

// docsequenceOption allows management of the mutation configuration using functional options.
type docsequenceOption func(*DocSequenceMutation)

// newDocSequenceMutation creates new mutation for the DocSequence entity.
func newDocSequenceMutation(c config, op Op, opts ...docsequenceOption) *DocSequenceMutation {
	m := &DocSequenceMutation{
		config:        c,
		op:            op,
		typ:           TypeDocSequence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocSequenceID sets the ID field of the mutation.
func withDocSequenceID(id int) docsequenceOption {
	return func(m *DocSequenceMutation) {
		var (
			err   error
			once  sync.Once
			value *DocSequence
		)
		m.oldValue = func(ctx context.Context) (*DocSequence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocSequence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocSequence sets the old DocSequence of the mutation.
func withDocSequence(node *DocSequence) docsequenceOption {
	return func(m *DocSequenceMutation) {
		m.oldValue = func(context.Context) (*DocSequence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocSequenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocSequenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocSequenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocSequenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocSequence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPrefix sets the "prefix" field.
func (m *DocSequenceMutation) SetPrefix(s string) {
	m.prefix = &s
}

// Prefix returns the value of the "prefix" field in the mutation.
func (m *DocSequenceMutation) Prefix() (r string, exists bool) {
	v := m.prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldPrefix returns the old "prefix" field's value of the DocSequence entity.
// If the DocSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocSequenceMutation) OldPrefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrefix: %w", err)
	}
	return oldValue.Prefix, nil
}

// ResetPrefix resets all changes to the "prefix" field.
func (m *DocSequenceMutation) ResetPrefix() {
	m.prefix = nil
}

// SetDepartment sets the "department" field.
func (m *DocSequenceMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *DocSequenceMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the DocSequence entity.
// If the DocSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocSequenceMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ResetDepartment resets all changes to the "department" field.
func (m *DocSequenceMutation) ResetDepartment() {
	m.department = nil
}

// SetYear sets the "year" field.
func (m *DocSequenceMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *DocSequenceMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the DocSequence entity.
// If the DocSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocSequenceMutation) OldYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *DocSequenceMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *DocSequenceMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ResetYear resets all changes to the "year" field.
func (m *DocSequenceMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
}

// SetCounter sets the "counter" field.
func (m *DocSequenceMutation) SetCounter(i int) {
	m.counter = &i
	m.addcounter = nil
}

// Counter returns the value of the "counter" field in the mutation.
func (m *DocSequenceMutation) Counter() (r int, exists bool) {
	v := m.counter
	if v == nil {
		return
	}
	return *v, true
}

// OldCounter returns the old "counter" field's value of the DocSequence entity.
// If the DocSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocSequenceMutation) OldCounter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounter: %w", err)
	}
	return oldValue.Counter, nil
}

// AddCounter adds i to the "counter" field.
func (m *DocSequenceMutation) AddCounter(i int) {
	if m.addcounter != nil {
		*m.addcounter += i
	} else {
		m.addcounter = &i
	}
}

// AddedCounter returns the value that was added to the "counter" field in this mutation.
func (m *DocSequenceMutation) AddedCounter() (r int, exists bool) {
	v := m.addcounter
	if v == nil {
		return
	}
	return *v, true
}

// ResetCounter resets all changes to the "counter" field.
func (m *DocSequenceMutation) ResetCounter() {
	m.counter = nil
	m.addcounter = nil
}

// Where appends a list predicates to the DocSequenceMutation builder.
func (m *DocSequenceMutation) Where(ps ...predicate.DocSequence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocSequenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocSequenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocSequence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocSequenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocSequenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocSequence).
func (m *DocSequenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocSequenceMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.prefix != nil {
		fields = append(fields, docsequence.FieldPrefix)
	}
	if m.department != nil {
		fields = append(fields, docsequence.FieldDepartment)
	}
	if m.year != nil {
		fields = append(fields, docsequence.FieldYear)
	}
	if m.counter != nil {
		fields = append(fields, docsequence.FieldCounter)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocSequenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case docsequence.FieldPrefix:
		return m.Prefix()
	case docsequence.FieldDepartment:
		return m.Department()
	case docsequence.FieldYear:
		return m.Year()
	case docsequence.FieldCounter:
		return m.Counter()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocSequenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case docsequence.FieldPrefix:
		return m.OldPrefix(ctx)
	case docsequence.FieldDepartment:
		return m.OldDepartment(ctx)
	case docsequence.FieldYear:
		return m.OldYear(ctx)
	case docsequence.FieldCounter:
		return m.OldCounter(ctx)
	}
	return nil, fmt.Errorf("unknown DocSequence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocSequenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case docsequence.FieldPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrefix(v)
		return nil
	case docsequence.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case docsequence.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case docsequence.FieldCounter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounter(v)
		return nil
	}
	return fmt.Errorf("unknown DocSequence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocSequenceMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, docsequence.FieldYear)
	}
	if m.addcounter != nil {
		fields = append(fields, docsequence.FieldCounter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocSequenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case docsequence.FieldYear:
		return m.AddedYear()
	case docsequence.FieldCounter:
		return m.AddedCounter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocSequenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case docsequence.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	case docsequence.FieldCounter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCounter(v)
		return nil
	}
	return fmt.Errorf("unknown DocSequence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocSequenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocSequenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocSequenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DocSequence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocSequenceMutation) ResetField(name string) error {
	switch name {
	case docsequence.FieldPrefix:
		m.ResetPrefix()
		return nil
	case docsequence.FieldDepartment:
		m.ResetDepartment()
		return nil
	case docsequence.FieldYear:
		m.ResetYear()
		return nil
	case docsequence.FieldCounter:
		m.ResetCounter()
		return nil
	}
	return fmt.Errorf("unknown DocSequence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocSequenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocSequenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocSequenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocSequenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocSequenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocSequenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocSequenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DocSequence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocSequenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DocSequence edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	user_id                *string
	filename               *string
	file_ext               *string
	source_type            *string
	storage_path           *string
	doc_number             *string
	status                 *string
	category               *string
	confidence             *float64
	addconfidence          *float64
	method                 *string
	ocr_text               *string
	ocr_variant            *string
	ocr_params             *string
	ocr_score              *float64
	addocr_score           *float64
	keywords               *[]string
	appendkeywords         []string
	extracted_fields       *json.RawMessage
	appendextracted_fields json.RawMessage
	error_message          *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Document, error)
	predicates             []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DocumentMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DocumentMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DocumentMutation) ResetUserID() {
	m.user_id = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetSourceType sets the "source_type" field.
func (m *DocumentMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *DocumentMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *DocumentMutation) ResetSourceType() {
	m.source_type = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *DocumentMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *DocumentMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoragePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ClearStoragePath clears the value of the "storage_path" field.
func (m *DocumentMutation) ClearStoragePath() {
	m.storage_path = nil
	m.clearedFields[document.FieldStoragePath] = struct{}{}
}

// StoragePathCleared returns if the "storage_path" field was cleared in this mutation.
func (m *DocumentMutation) StoragePathCleared() bool {
	_, ok := m.clearedFields[document.FieldStoragePath]
	return ok
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *DocumentMutation) ResetStoragePath() {
	m.storage_path = nil
	delete(m.clearedFields, document.FieldStoragePath)
}

// SetDocNumber sets the "doc_number" field.
func (m *DocumentMutation) SetDocNumber(s string) {
	m.doc_number = &s
}

// DocNumber returns the value of the "doc_number" field in the mutation.
func (m *DocumentMutation) DocNumber() (r string, exists bool) {
	v := m.doc_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDocNumber returns the old "doc_number" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocNumber: %w", err)
	}
	return oldValue.DocNumber, nil
}

// ClearDocNumber clears the value of the "doc_number" field.
func (m *DocumentMutation) ClearDocNumber() {
	m.doc_number = nil
	m.clearedFields[document.FieldDocNumber] = struct{}{}
}

// DocNumberCleared returns if the "doc_number" field was cleared in this mutation.
func (m *DocumentMutation) DocNumberCleared() bool {
	_, ok := m.clearedFields[document.FieldDocNumber]
	return ok
}

// ResetDocNumber resets all changes to the "doc_number" field.
func (m *DocumentMutation) ResetDocNumber() {
	m.doc_number = nil
	delete(m.clearedFields, document.FieldDocNumber)
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetCategory sets the "category" field.
func (m *DocumentMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *DocumentMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *DocumentMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[document.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *DocumentMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[document.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *DocumentMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, document.FieldCategory)
}

// SetConfidence sets the "confidence" field.
func (m *DocumentMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DocumentMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DocumentMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DocumentMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *DocumentMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[document.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *DocumentMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[document.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DocumentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, document.FieldConfidence)
}

// SetMethod sets the "method" field.
func (m *DocumentMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *DocumentMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ClearMethod clears the value of the "method" field.
func (m *DocumentMutation) ClearMethod() {
	m.method = nil
	m.clearedFields[document.FieldMethod] = struct{}{}
}

// MethodCleared returns if the "method" field was cleared in this mutation.
func (m *DocumentMutation) MethodCleared() bool {
	_, ok := m.clearedFields[document.FieldMethod]
	return ok
}

// ResetMethod resets all changes to the "method" field.
func (m *DocumentMutation) ResetMethod() {
	m.method = nil
	delete(m.clearedFields, document.FieldMethod)
}

// SetOcrText sets the "ocr_text" field.
func (m *DocumentMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *DocumentMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *DocumentMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[document.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *DocumentMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *DocumentMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, document.FieldOcrText)
}

// SetOcrVariant sets the "ocr_variant" field.
func (m *DocumentMutation) SetOcrVariant(s string) {
	m.ocr_variant = &s
}

// OcrVariant returns the value of the "ocr_variant" field in the mutation.
func (m *DocumentMutation) OcrVariant() (r string, exists bool) {
	v := m.ocr_variant
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrVariant returns the old "ocr_variant" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrVariant(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrVariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrVariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrVariant: %w", err)
	}
	return oldValue.OcrVariant, nil
}

// ClearOcrVariant clears the value of the "ocr_variant" field.
func (m *DocumentMutation) ClearOcrVariant() {
	m.ocr_variant = nil
	m.clearedFields[document.FieldOcrVariant] = struct{}{}
}

// OcrVariantCleared returns if the "ocr_variant" field was cleared in this mutation.
func (m *DocumentMutation) OcrVariantCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrVariant]
	return ok
}

// ResetOcrVariant resets all changes to the "ocr_variant" field.
func (m *DocumentMutation) ResetOcrVariant() {
	m.ocr_variant = nil
	delete(m.clearedFields, document.FieldOcrVariant)
}

// SetOcrParams sets the "ocr_params" field.
func (m *DocumentMutation) SetOcrParams(s string) {
	m.ocr_params = &s
}

// OcrParams returns the value of the "ocr_params" field in the mutation.
func (m *DocumentMutation) OcrParams() (r string, exists bool) {
	v := m.ocr_params
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrParams returns the old "ocr_params" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrParams(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrParams: %w", err)
	}
	return oldValue.OcrParams, nil
}

// ClearOcrParams clears the value of the "ocr_params" field.
func (m *DocumentMutation) ClearOcrParams() {
	m.ocr_params = nil
	m.clearedFields[document.FieldOcrParams] = struct{}{}
}

// OcrParamsCleared returns if the "ocr_params" field was cleared in this mutation.
func (m *DocumentMutation) OcrParamsCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrParams]
	return ok
}

// ResetOcrParams resets all changes to the "ocr_params" field.
func (m *DocumentMutation) ResetOcrParams() {
	m.ocr_params = nil
	delete(m.clearedFields, document.FieldOcrParams)
}

// SetOcrScore sets the "ocr_score" field.
func (m *DocumentMutation) SetOcrScore(f float64) {
	m.ocr_score = &f
	m.addocr_score = nil
}

// OcrScore returns the value of the "ocr_score" field in the mutation.
func (m *DocumentMutation) OcrScore() (r float64, exists bool) {
	v := m.ocr_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrScore returns the old "ocr_score" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrScore: %w", err)
	}
	return oldValue.OcrScore, nil
}

// AddOcrScore adds f to the "ocr_score" field.
func (m *DocumentMutation) AddOcrScore(f float64) {
	if m.addocr_score != nil {
		*m.addocr_score += f
	} else {
		m.addocr_score = &f
	}
}

// AddedOcrScore returns the value that was added to the "ocr_score" field in this mutation.
func (m *DocumentMutation) AddedOcrScore() (r float64, exists bool) {
	v := m.addocr_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrScore clears the value of the "ocr_score" field.
func (m *DocumentMutation) ClearOcrScore() {
	m.ocr_score = nil
	m.addocr_score = nil
	m.clearedFields[document.FieldOcrScore] = struct{}{}
}

// OcrScoreCleared returns if the "ocr_score" field was cleared in this mutation.
func (m *DocumentMutation) OcrScoreCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrScore]
	return ok
}

// ResetOcrScore resets all changes to the "ocr_score" field.
func (m *DocumentMutation) ResetOcrScore() {
	m.ocr_score = nil
	m.addocr_score = nil
	delete(m.clearedFields, document.FieldOcrScore)
}

// SetKeywords sets the "keywords" field.
func (m *DocumentMutation) SetKeywords(s []string) {
	m.keywords = &s
	m.appendkeywords = nil
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *DocumentMutation) Keywords() (r []string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// AppendKeywords adds s to the "keywords" field.
func (m *DocumentMutation) AppendKeywords(s []string) {
	m.appendkeywords = append(m.appendkeywords, s...)
}

// AppendedKeywords returns the list of values that were appended to the "keywords" field in this mutation.
func (m *DocumentMutation) AppendedKeywords() ([]string, bool) {
	if len(m.appendkeywords) == 0 {
		return nil, false
	}
	return m.appendkeywords, true
}

// ClearKeywords clears the value of the "keywords" field.
func (m *DocumentMutation) ClearKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	m.clearedFields[document.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *DocumentMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[document.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *DocumentMutation) ResetKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	delete(m.clearedFields, document.FieldKeywords)
}

// SetExtractedFields sets the "extracted_fields" field.
func (m *DocumentMutation) SetExtractedFields(jm json.RawMessage) {
	m.extracted_fields = &jm
	m.appendextracted_fields = nil
}

// ExtractedFields returns the value of the "extracted_fields" field in the mutation.
func (m *DocumentMutation) ExtractedFields() (r json.RawMessage, exists bool) {
	v := m.extracted_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedFields returns the old "extracted_fields" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedFields: %w", err)
	}
	return oldValue.ExtractedFields, nil
}

// AppendExtractedFields adds jm to the "extracted_fields" field.
func (m *DocumentMutation) AppendExtractedFields(jm json.RawMessage) {
	m.appendextracted_fields = append(m.appendextracted_fields, jm...)
}

// AppendedExtractedFields returns the list of values that were appended to the "extracted_fields" field in this mutation.
func (m *DocumentMutation) AppendedExtractedFields() (json.RawMessage, bool) {
	if len(m.appendextracted_fields) == 0 {
		return nil, false
	}
	return m.appendextracted_fields, true
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (m *DocumentMutation) ClearExtractedFields() {
	m.extracted_fields = nil
	m.appendextracted_fields = nil
	m.clearedFields[document.FieldExtractedFields] = struct{}{}
}

// ExtractedFieldsCleared returns if the "extracted_fields" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedFieldsCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedFields]
	return ok
}

// ResetExtractedFields resets all changes to the "extracted_fields" field.
func (m *DocumentMutation) ResetExtractedFields() {
	m.extracted_fields = nil
	m.appendextracted_fields = nil
	delete(m.clearedFields, document.FieldExtractedFields)
}

// SetErrorMessage sets the "error_message" field.
func (m *DocumentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DocumentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DocumentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[document.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DocumentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[document.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DocumentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, document.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.user_id != nil {
		fields = append(fields, document.FieldUserID)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, document.FieldFileExt)
	}
	if m.source_type != nil {
		fields = append(fields, document.FieldSourceType)
	}
	if m.storage_path != nil {
		fields = append(fields, document.FieldStoragePath)
	}
	if m.doc_number != nil {
		fields = append(fields, document.FieldDocNumber)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.category != nil {
		fields = append(fields, document.FieldCategory)
	}
	if m.confidence != nil {
		fields = append(fields, document.FieldConfidence)
	}
	if m.method != nil {
		fields = append(fields, document.FieldMethod)
	}
	if m.ocr_text != nil {
		fields = append(fields, document.FieldOcrText)
	}
	if m.ocr_variant != nil {
		fields = append(fields, document.FieldOcrVariant)
	}
	if m.ocr_params != nil {
		fields = append(fields, document.FieldOcrParams)
	}
	if m.ocr_score != nil {
		fields = append(fields, document.FieldOcrScore)
	}
	if m.keywords != nil {
		fields = append(fields, document.FieldKeywords)
	}
	if m.extracted_fields != nil {
		fields = append(fields, document.FieldExtractedFields)
	}
	if m.error_message != nil {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldUserID:
		return m.UserID()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldFileExt:
		return m.FileExt()
	case document.FieldSourceType:
		return m.SourceType()
	case document.FieldStoragePath:
		return m.StoragePath()
	case document.FieldDocNumber:
		return m.DocNumber()
	case document.FieldStatus:
		return m.Status()
	case document.FieldCategory:
		return m.Category()
	case document.FieldConfidence:
		return m.Confidence()
	case document.FieldMethod:
		return m.Method()
	case document.FieldOcrText:
		return m.OcrText()
	case document.FieldOcrVariant:
		return m.OcrVariant()
	case document.FieldOcrParams:
		return m.OcrParams()
	case document.FieldOcrScore:
		return m.OcrScore()
	case document.FieldKeywords:
		return m.Keywords()
	case document.FieldExtractedFields:
		return m.ExtractedFields()
	case document.FieldErrorMessage:
		return m.ErrorMessage()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldUserID:
		return m.OldUserID(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldFileExt:
		return m.OldFileExt(ctx)
	case document.FieldSourceType:
		return m.OldSourceType(ctx)
	case document.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case document.FieldDocNumber:
		return m.OldDocNumber(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldCategory:
		return m.OldCategory(ctx)
	case document.FieldConfidence:
		return m.OldConfidence(ctx)
	case document.FieldMethod:
		return m.OldMethod(ctx)
	case document.FieldOcrText:
		return m.OldOcrText(ctx)
	case document.FieldOcrVariant:
		return m.OldOcrVariant(ctx)
	case document.FieldOcrParams:
		return m.OldOcrParams(ctx)
	case document.FieldOcrScore:
		return m.OldOcrScore(ctx)
	case document.FieldKeywords:
		return m.OldKeywords(ctx)
	case document.FieldExtractedFields:
		return m.OldExtractedFields(ctx)
	case document.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case document.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case document.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case document.FieldDocNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocNumber(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case document.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case document.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case document.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case document.FieldOcrVariant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrVariant(v)
		return nil
	case document.FieldOcrParams:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrParams(v)
		return nil
	case document.FieldOcrScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrScore(v)
		return nil
	case document.FieldKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case document.FieldExtractedFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedFields(v)
		return nil
	case document.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, document.FieldConfidence)
	}
	if m.addocr_score != nil {
		fields = append(fields, document.FieldOcrScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldConfidence:
		return m.AddedConfidence()
	case document.FieldOcrScore:
		return m.AddedOcrScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case document.FieldOcrScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrScore(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldStoragePath) {
		fields = append(fields, document.FieldStoragePath)
	}
	if m.FieldCleared(document.FieldDocNumber) {
		fields = append(fields, document.FieldDocNumber)
	}
	if m.FieldCleared(document.FieldCategory) {
		fields = append(fields, document.FieldCategory)
	}
	if m.FieldCleared(document.FieldConfidence) {
		fields = append(fields, document.FieldConfidence)
	}
	if m.FieldCleared(document.FieldMethod) {
		fields = append(fields, document.FieldMethod)
	}
	if m.FieldCleared(document.FieldOcrText) {
		fields = append(fields, document.FieldOcrText)
	}
	if m.FieldCleared(document.FieldOcrVariant) {
		fields = append(fields, document.FieldOcrVariant)
	}
	if m.FieldCleared(document.FieldOcrParams) {
		fields = append(fields, document.FieldOcrParams)
	}
	if m.FieldCleared(document.FieldOcrScore) {
		fields = append(fields, document.FieldOcrScore)
	}
	if m.FieldCleared(document.FieldKeywords) {
		fields = append(fields, document.FieldKeywords)
	}
	if m.FieldCleared(document.FieldExtractedFields) {
		fields = append(fields, document.FieldExtractedFields)
	}
	if m.FieldCleared(document.FieldErrorMessage) {
		fields = append(fields, document.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldStoragePath:
		m.ClearStoragePath()
		return nil
	case document.FieldDocNumber:
		m.ClearDocNumber()
		return nil
	case document.FieldCategory:
		m.ClearCategory()
		return nil
	case document.FieldConfidence:
		m.ClearConfidence()
		return nil
	case document.FieldMethod:
		m.ClearMethod()
		return nil
	case document.FieldOcrText:
		m.ClearOcrText()
		return nil
	case document.FieldOcrVariant:
		m.ClearOcrVariant()
		return nil
	case document.FieldOcrParams:
		m.ClearOcrParams()
		return nil
	case document.FieldOcrScore:
		m.ClearOcrScore()
		return nil
	case document.FieldKeywords:
		m.ClearKeywords()
		return nil
	case document.FieldExtractedFields:
		m.ClearExtractedFields()
		return nil
	case document.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldUserID:
		m.ResetUserID()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldFileExt:
		m.ResetFileExt()
		return nil
	case document.FieldSourceType:
		m.ResetSourceType()
		return nil
	case document.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case document.FieldDocNumber:
		m.ResetDocNumber()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldCategory:
		m.ResetCategory()
		return nil
	case document.FieldConfidence:
		m.ResetConfidence()
		return nil
	case document.FieldMethod:
		m.ResetMethod()
		return nil
	case document.FieldOcrText:
		m.ResetOcrText()
		return nil
	case document.FieldOcrVariant:
		m.ResetOcrVariant()
		return nil
	case document.FieldOcrParams:
		m.ResetOcrParams()
		return nil
	case document.FieldOcrScore:
		m.ResetOcrScore()
		return nil
	case document.FieldKeywords:
		m.ResetKeywords()
		return nil
	case document.FieldExtractedFields:
		m.ResetExtractedFields()
		return nil
	case document.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Document edge %s", name)
}
