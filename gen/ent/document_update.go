// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jromarion/arc-classifier/gen/ent/document"
	"github.com/jromarion/arc-classifier/gen/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DocumentUpdate) SetUserID(v string) *DocumentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUserID(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdate) SetFileExt(v string) *DocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileExt(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DocumentUpdate) SetSourceType(v string) *DocumentUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourceType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *DocumentUpdate) SetStoragePath(v string) *DocumentUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStoragePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// ClearStoragePath clears the value of the "storage_path" field.
func (_u *DocumentUpdate) ClearStoragePath() *DocumentUpdate {
	_u.mutation.ClearStoragePath()
	return _u
}

// SetDocNumber sets the "doc_number" field.
func (_u *DocumentUpdate) SetDocNumber(v string) *DocumentUpdate {
	_u.mutation.SetDocNumber(v)
	return _u
}

// SetNillableDocNumber sets the "doc_number" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocNumber(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocNumber(*v)
	}
	return _u
}

// ClearDocNumber clears the value of the "doc_number" field.
func (_u *DocumentUpdate) ClearDocNumber() *DocumentUpdate {
	_u.mutation.ClearDocNumber()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DocumentUpdate) SetCategory(v string) *DocumentUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCategory(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DocumentUpdate) ClearCategory() *DocumentUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocumentUpdate) SetConfidence(v float64) *DocumentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableConfidence(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocumentUpdate) AddConfidence(v float64) *DocumentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *DocumentUpdate) ClearConfidence() *DocumentUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetMethod sets the "method" field.
func (_u *DocumentUpdate) SetMethod(v string) *DocumentUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableMethod(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *DocumentUpdate) ClearMethod() *DocumentUpdate {
	_u.mutation.ClearMethod()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *DocumentUpdate) SetOcrText(v string) *DocumentUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *DocumentUpdate) ClearOcrText() *DocumentUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetOcrVariant sets the "ocr_variant" field.
func (_u *DocumentUpdate) SetOcrVariant(v string) *DocumentUpdate {
	_u.mutation.SetOcrVariant(v)
	return _u
}

// SetNillableOcrVariant sets the "ocr_variant" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrVariant(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrVariant(*v)
	}
	return _u
}

// ClearOcrVariant clears the value of the "ocr_variant" field.
func (_u *DocumentUpdate) ClearOcrVariant() *DocumentUpdate {
	_u.mutation.ClearOcrVariant()
	return _u
}

// SetOcrParams sets the "ocr_params" field.
func (_u *DocumentUpdate) SetOcrParams(v string) *DocumentUpdate {
	_u.mutation.SetOcrParams(v)
	return _u
}

// SetNillableOcrParams sets the "ocr_params" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrParams(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrParams(*v)
	}
	return _u
}

// ClearOcrParams clears the value of the "ocr_params" field.
func (_u *DocumentUpdate) ClearOcrParams() *DocumentUpdate {
	_u.mutation.ClearOcrParams()
	return _u
}

// SetOcrScore sets the "ocr_score" field.
func (_u *DocumentUpdate) SetOcrScore(v float64) *DocumentUpdate {
	_u.mutation.ResetOcrScore()
	_u.mutation.SetOcrScore(v)
	return _u
}

// SetNillableOcrScore sets the "ocr_score" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrScore(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetOcrScore(*v)
	}
	return _u
}

// AddOcrScore adds value to the "ocr_score" field.
func (_u *DocumentUpdate) AddOcrScore(v float64) *DocumentUpdate {
	_u.mutation.AddOcrScore(v)
	return _u
}

// ClearOcrScore clears the value of the "ocr_score" field.
func (_u *DocumentUpdate) ClearOcrScore() *DocumentUpdate {
	_u.mutation.ClearOcrScore()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *DocumentUpdate) SetKeywords(v []string) *DocumentUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *DocumentUpdate) AppendKeywords(v []string) *DocumentUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *DocumentUpdate) ClearKeywords() *DocumentUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *DocumentUpdate) SetExtractedFields(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *DocumentUpdate) AppendExtractedFields(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *DocumentUpdate) ClearExtractedFields() *DocumentUpdate {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdate) SetErrorMessage(v string) *DocumentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableErrorMessage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdate) ClearErrorMessage() *DocumentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := document.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Document.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := document.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Document.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(document.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(document.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(document.FieldStoragePath, field.TypeString, value)
	}
	if _u.mutation.StoragePathCleared() {
		_spec.ClearField(document.FieldStoragePath, field.TypeString)
	}
	if value, ok := _u.mutation.DocNumber(); ok {
		_spec.SetField(document.FieldDocNumber, field.TypeString, value)
	}
	if _u.mutation.DocNumberCleared() {
		_spec.ClearField(document.FieldDocNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(document.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(document.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(document.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(document.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(document.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(document.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(document.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(document.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrVariant(); ok {
		_spec.SetField(document.FieldOcrVariant, field.TypeString, value)
	}
	if _u.mutation.OcrVariantCleared() {
		_spec.ClearField(document.FieldOcrVariant, field.TypeString)
	}
	if value, ok := _u.mutation.OcrParams(); ok {
		_spec.SetField(document.FieldOcrParams, field.TypeString, value)
	}
	if _u.mutation.OcrParamsCleared() {
		_spec.ClearField(document.FieldOcrParams, field.TypeString)
	}
	if value, ok := _u.mutation.OcrScore(); ok {
		_spec.SetField(document.FieldOcrScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOcrScore(); ok {
		_spec.AddField(document.FieldOcrScore, field.TypeFloat64, value)
	}
	if _u.mutation.OcrScoreCleared() {
		_spec.ClearField(document.FieldOcrScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(document.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(document.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(document.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(document.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetUserID sets the "user_id" field.
func (_u *DocumentUpdateOne) SetUserID(v string) *DocumentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUserID(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdateOne) SetFileExt(v string) *DocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileExt(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DocumentUpdateOne) SetSourceType(v string) *DocumentUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourceType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *DocumentUpdateOne) SetStoragePath(v string) *DocumentUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStoragePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// ClearStoragePath clears the value of the "storage_path" field.
func (_u *DocumentUpdateOne) ClearStoragePath() *DocumentUpdateOne {
	_u.mutation.ClearStoragePath()
	return _u
}

// SetDocNumber sets the "doc_number" field.
func (_u *DocumentUpdateOne) SetDocNumber(v string) *DocumentUpdateOne {
	_u.mutation.SetDocNumber(v)
	return _u
}

// SetNillableDocNumber sets the "doc_number" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocNumber(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocNumber(*v)
	}
	return _u
}

// ClearDocNumber clears the value of the "doc_number" field.
func (_u *DocumentUpdateOne) ClearDocNumber() *DocumentUpdateOne {
	_u.mutation.ClearDocNumber()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DocumentUpdateOne) SetCategory(v string) *DocumentUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCategory(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DocumentUpdateOne) ClearCategory() *DocumentUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocumentUpdateOne) SetConfidence(v float64) *DocumentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableConfidence(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocumentUpdateOne) AddConfidence(v float64) *DocumentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *DocumentUpdateOne) ClearConfidence() *DocumentUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetMethod sets the "method" field.
func (_u *DocumentUpdateOne) SetMethod(v string) *DocumentUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableMethod(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *DocumentUpdateOne) ClearMethod() *DocumentUpdateOne {
	_u.mutation.ClearMethod()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *DocumentUpdateOne) SetOcrText(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *DocumentUpdateOne) ClearOcrText() *DocumentUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetOcrVariant sets the "ocr_variant" field.
func (_u *DocumentUpdateOne) SetOcrVariant(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrVariant(v)
	return _u
}

// SetNillableOcrVariant sets the "ocr_variant" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrVariant(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrVariant(*v)
	}
	return _u
}

// ClearOcrVariant clears the value of the "ocr_variant" field.
func (_u *DocumentUpdateOne) ClearOcrVariant() *DocumentUpdateOne {
	_u.mutation.ClearOcrVariant()
	return _u
}

// SetOcrParams sets the "ocr_params" field.
func (_u *DocumentUpdateOne) SetOcrParams(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrParams(v)
	return _u
}

// SetNillableOcrParams sets the "ocr_params" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrParams(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrParams(*v)
	}
	return _u
}

// ClearOcrParams clears the value of the "ocr_params" field.
func (_u *DocumentUpdateOne) ClearOcrParams() *DocumentUpdateOne {
	_u.mutation.ClearOcrParams()
	return _u
}

// SetOcrScore sets the "ocr_score" field.
func (_u *DocumentUpdateOne) SetOcrScore(v float64) *DocumentUpdateOne {
	_u.mutation.ResetOcrScore()
	_u.mutation.SetOcrScore(v)
	return _u
}

// SetNillableOcrScore sets the "ocr_score" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrScore(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrScore(*v)
	}
	return _u
}

// AddOcrScore adds value to the "ocr_score" field.
func (_u *DocumentUpdateOne) AddOcrScore(v float64) *DocumentUpdateOne {
	_u.mutation.AddOcrScore(v)
	return _u
}

// ClearOcrScore clears the value of the "ocr_score" field.
func (_u *DocumentUpdateOne) ClearOcrScore() *DocumentUpdateOne {
	_u.mutation.ClearOcrScore()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *DocumentUpdateOne) SetKeywords(v []string) *DocumentUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *DocumentUpdateOne) AppendKeywords(v []string) *DocumentUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *DocumentUpdateOne) ClearKeywords() *DocumentUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *DocumentUpdateOne) SetExtractedFields(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *DocumentUpdateOne) AppendExtractedFields(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *DocumentUpdateOne) ClearExtractedFields() *DocumentUpdateOne {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdateOne) SetErrorMessage(v string) *DocumentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableErrorMessage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdateOne) ClearErrorMessage() *DocumentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := document.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Document.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := document.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Document.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(document.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(document.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(document.FieldStoragePath, field.TypeString, value)
	}
	if _u.mutation.StoragePathCleared() {
		_spec.ClearField(document.FieldStoragePath, field.TypeString)
	}
	if value, ok := _u.mutation.DocNumber(); ok {
		_spec.SetField(document.FieldDocNumber, field.TypeString, value)
	}
	if _u.mutation.DocNumberCleared() {
		_spec.ClearField(document.FieldDocNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(document.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(document.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(document.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(document.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(document.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(document.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(document.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(document.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrVariant(); ok {
		_spec.SetField(document.FieldOcrVariant, field.TypeString, value)
	}
	if _u.mutation.OcrVariantCleared() {
		_spec.ClearField(document.FieldOcrVariant, field.TypeString)
	}
	if value, ok := _u.mutation.OcrParams(); ok {
		_spec.SetField(document.FieldOcrParams, field.TypeString, value)
	}
	if _u.mutation.OcrParamsCleared() {
		_spec.ClearField(document.FieldOcrParams, field.TypeString)
	}
	if value, ok := _u.mutation.OcrScore(); ok {
		_spec.SetField(document.FieldOcrScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOcrScore(); ok {
		_spec.AddField(document.FieldOcrScore, field.TypeFloat64, value)
	}
	if _u.mutation.OcrScoreCleared() {
		_spec.ClearField(document.FieldOcrScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(document.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(document.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(document.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(document.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
