// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/jromarion/arc-classifier/db/ent/schema"
	"github.com/jromarion/arc-classifier/gen/ent/docsequence"
	"github.com/jromarion/arc-classifier/gen/ent/document"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	docsequenceFields := schema.DocSequence{}.Fields()
	_ = docsequenceFields
	// docsequenceDescPrefix is the schema descriptor for prefix field.
	docsequenceDescPrefix := docsequenceFields[0].Descriptor()
	// docsequence.PrefixValidator is a validator for the "prefix" field. It is called by the builders before save.
	docsequence.PrefixValidator = docsequenceDescPrefix.Validators[0].(func(string) error)
	// docsequenceDescDepartment is the schema descriptor for department field.
	docsequenceDescDepartment := docsequenceFields[1].Descriptor()
	// docsequence.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	docsequence.DepartmentValidator = docsequenceDescDepartment.Validators[0].(func(string) error)
	// docsequenceDescYear is the schema descriptor for year field.
	docsequenceDescYear := docsequenceFields[2].Descriptor()
	// docsequence.YearValidator is a validator for the "year" field. It is called by the builders before save.
	docsequence.YearValidator = docsequenceDescYear.Validators[0].(func(int) error)
	// docsequenceDescCounter is the schema descriptor for counter field.
	docsequenceDescCounter := docsequenceFields[3].Descriptor()
	// docsequence.DefaultCounter holds the default value on creation for the counter field.
	docsequence.DefaultCounter = docsequenceDescCounter.Default.(int)
	// docsequence.CounterValidator is a validator for the "counter" field. It is called by the builders before save.
	docsequence.CounterValidator = docsequenceDescCounter.Validators[0].(func(int) error)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescUserID is the schema descriptor for user_id field.
	documentDescUserID := documentFields[1].Descriptor()
	// document.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	document.UserIDValidator = documentDescUserID.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[3].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescSourceType is the schema descriptor for source_type field.
	documentDescSourceType := documentFields[4].Descriptor()
	// document.SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	document.SourceTypeValidator = func() func(string) error {
		validators := documentDescSourceType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_type string) error {
			for _, fn := range fns {
				if err := fn(source_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[7].Descriptor()
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = func() func(string) error {
		validators := documentDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[18].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[19].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
}
