// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jromarion/arc-classifier/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUserID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceType, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStoragePath, v))
}

// DocNumber applies equality check predicate on the "doc_number" field. It's identical to DocNumberEQ.
func DocNumber(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocNumber, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCategory, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldConfidence, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMethod, v))
}

// OcrText applies equality check predicate on the "ocr_text" field. It's identical to OcrTextEQ.
func OcrText(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrText, v))
}

// OcrVariant applies equality check predicate on the "ocr_variant" field. It's identical to OcrVariantEQ.
func OcrVariant(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrVariant, v))
}

// OcrParams applies equality check predicate on the "ocr_params" field. It's identical to OcrParamsEQ.
func OcrParams(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrParams, v))
}

// OcrScore applies equality check predicate on the "ocr_score" field. It's identical to OcrScoreEQ.
func OcrScore(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrScore, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldUserID, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilename, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileExt, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSourceType, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathIsNil applies the IsNil predicate on the "storage_path" field.
func StoragePathIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldStoragePath))
}

// StoragePathNotNil applies the NotNil predicate on the "storage_path" field.
func StoragePathNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldStoragePath))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStoragePath, v))
}

// DocNumberEQ applies the EQ predicate on the "doc_number" field.
func DocNumberEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocNumber, v))
}

// DocNumberNEQ applies the NEQ predicate on the "doc_number" field.
func DocNumberNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocNumber, v))
}

// DocNumberIn applies the In predicate on the "doc_number" field.
func DocNumberIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocNumber, vs...))
}

// DocNumberNotIn applies the NotIn predicate on the "doc_number" field.
func DocNumberNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocNumber, vs...))
}

// DocNumberGT applies the GT predicate on the "doc_number" field.
func DocNumberGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocNumber, v))
}

// DocNumberGTE applies the GTE predicate on the "doc_number" field.
func DocNumberGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocNumber, v))
}

// DocNumberLT applies the LT predicate on the "doc_number" field.
func DocNumberLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocNumber, v))
}

// DocNumberLTE applies the LTE predicate on the "doc_number" field.
func DocNumberLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocNumber, v))
}

// DocNumberContains applies the Contains predicate on the "doc_number" field.
func DocNumberContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocNumber, v))
}

// DocNumberHasPrefix applies the HasPrefix predicate on the "doc_number" field.
func DocNumberHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocNumber, v))
}

// DocNumberHasSuffix applies the HasSuffix predicate on the "doc_number" field.
func DocNumberHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocNumber, v))
}

// DocNumberIsNil applies the IsNil predicate on the "doc_number" field.
func DocNumberIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDocNumber))
}

// DocNumberNotNil applies the NotNil predicate on the "doc_number" field.
func DocNumberNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDocNumber))
}

// DocNumberEqualFold applies the EqualFold predicate on the "doc_number" field.
func DocNumberEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocNumber, v))
}

// DocNumberContainsFold applies the ContainsFold predicate on the "doc_number" field.
func DocNumberContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStatus, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldCategory, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldConfidence))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodIsNil applies the IsNil predicate on the "method" field.
func MethodIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldMethod))
}

// MethodNotNil applies the NotNil predicate on the "method" field.
func MethodNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldMethod))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldMethod, v))
}

// OcrTextEQ applies the EQ predicate on the "ocr_text" field.
func OcrTextEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrText, v))
}

// OcrTextNEQ applies the NEQ predicate on the "ocr_text" field.
func OcrTextNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrText, v))
}

// OcrTextIn applies the In predicate on the "ocr_text" field.
func OcrTextIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrText, vs...))
}

// OcrTextNotIn applies the NotIn predicate on the "ocr_text" field.
func OcrTextNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrText, vs...))
}

// OcrTextGT applies the GT predicate on the "ocr_text" field.
func OcrTextGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrText, v))
}

// OcrTextGTE applies the GTE predicate on the "ocr_text" field.
func OcrTextGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrText, v))
}

// OcrTextLT applies the LT predicate on the "ocr_text" field.
func OcrTextLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrText, v))
}

// OcrTextLTE applies the LTE predicate on the "ocr_text" field.
func OcrTextLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrText, v))
}

// OcrTextContains applies the Contains predicate on the "ocr_text" field.
func OcrTextContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrText, v))
}

// OcrTextHasPrefix applies the HasPrefix predicate on the "ocr_text" field.
func OcrTextHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrText, v))
}

// OcrTextHasSuffix applies the HasSuffix predicate on the "ocr_text" field.
func OcrTextHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrText, v))
}

// OcrTextIsNil applies the IsNil predicate on the "ocr_text" field.
func OcrTextIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrText))
}

// OcrTextNotNil applies the NotNil predicate on the "ocr_text" field.
func OcrTextNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrText))
}

// OcrTextEqualFold applies the EqualFold predicate on the "ocr_text" field.
func OcrTextEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrText, v))
}

// OcrTextContainsFold applies the ContainsFold predicate on the "ocr_text" field.
func OcrTextContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrText, v))
}

// OcrVariantEQ applies the EQ predicate on the "ocr_variant" field.
func OcrVariantEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrVariant, v))
}

// OcrVariantNEQ applies the NEQ predicate on the "ocr_variant" field.
func OcrVariantNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrVariant, v))
}

// OcrVariantIn applies the In predicate on the "ocr_variant" field.
func OcrVariantIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrVariant, vs...))
}

// OcrVariantNotIn applies the NotIn predicate on the "ocr_variant" field.
func OcrVariantNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrVariant, vs...))
}

// OcrVariantGT applies the GT predicate on the "ocr_variant" field.
func OcrVariantGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrVariant, v))
}

// OcrVariantGTE applies the GTE predicate on the "ocr_variant" field.
func OcrVariantGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrVariant, v))
}

// OcrVariantLT applies the LT predicate on the "ocr_variant" field.
func OcrVariantLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrVariant, v))
}

// OcrVariantLTE applies the LTE predicate on the "ocr_variant" field.
func OcrVariantLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrVariant, v))
}

// OcrVariantContains applies the Contains predicate on the "ocr_variant" field.
func OcrVariantContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrVariant, v))
}

// OcrVariantHasPrefix applies the HasPrefix predicate on the "ocr_variant" field.
func OcrVariantHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrVariant, v))
}

// OcrVariantHasSuffix applies the HasSuffix predicate on the "ocr_variant" field.
func OcrVariantHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrVariant, v))
}

// OcrVariantIsNil applies the IsNil predicate on the "ocr_variant" field.
func OcrVariantIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrVariant))
}

// OcrVariantNotNil applies the NotNil predicate on the "ocr_variant" field.
func OcrVariantNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrVariant))
}

// OcrVariantEqualFold applies the EqualFold predicate on the "ocr_variant" field.
func OcrVariantEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrVariant, v))
}

// OcrVariantContainsFold applies the ContainsFold predicate on the "ocr_variant" field.
func OcrVariantContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrVariant, v))
}

// OcrParamsEQ applies the EQ predicate on the "ocr_params" field.
func OcrParamsEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrParams, v))
}

// OcrParamsNEQ applies the NEQ predicate on the "ocr_params" field.
func OcrParamsNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrParams, v))
}

// OcrParamsIn applies the In predicate on the "ocr_params" field.
func OcrParamsIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrParams, vs...))
}

// OcrParamsNotIn applies the NotIn predicate on the "ocr_params" field.
func OcrParamsNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrParams, vs...))
}

// OcrParamsGT applies the GT predicate on the "ocr_params" field.
func OcrParamsGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrParams, v))
}

// OcrParamsGTE applies the GTE predicate on the "ocr_params" field.
func OcrParamsGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrParams, v))
}

// OcrParamsLT applies the LT predicate on the "ocr_params" field.
func OcrParamsLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrParams, v))
}

// OcrParamsLTE applies the LTE predicate on the "ocr_params" field.
func OcrParamsLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrParams, v))
}

// OcrParamsContains applies the Contains predicate on the "ocr_params" field.
func OcrParamsContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrParams, v))
}

// OcrParamsHasPrefix applies the HasPrefix predicate on the "ocr_params" field.
func OcrParamsHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrParams, v))
}

// OcrParamsHasSuffix applies the HasSuffix predicate on the "ocr_params" field.
func OcrParamsHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrParams, v))
}

// OcrParamsIsNil applies the IsNil predicate on the "ocr_params" field.
func OcrParamsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrParams))
}

// OcrParamsNotNil applies the NotNil predicate on the "ocr_params" field.
func OcrParamsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrParams))
}

// OcrParamsEqualFold applies the EqualFold predicate on the "ocr_params" field.
func OcrParamsEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrParams, v))
}

// OcrParamsContainsFold applies the ContainsFold predicate on the "ocr_params" field.
func OcrParamsContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrParams, v))
}

// OcrScoreEQ applies the EQ predicate on the "ocr_score" field.
func OcrScoreEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrScore, v))
}

// OcrScoreNEQ applies the NEQ predicate on the "ocr_score" field.
func OcrScoreNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrScore, v))
}

// OcrScoreIn applies the In predicate on the "ocr_score" field.
func OcrScoreIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrScore, vs...))
}

// OcrScoreNotIn applies the NotIn predicate on the "ocr_score" field.
func OcrScoreNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrScore, vs...))
}

// OcrScoreGT applies the GT predicate on the "ocr_score" field.
func OcrScoreGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrScore, v))
}

// OcrScoreGTE applies the GTE predicate on the "ocr_score" field.
func OcrScoreGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrScore, v))
}

// OcrScoreLT applies the LT predicate on the "ocr_score" field.
func OcrScoreLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrScore, v))
}

// OcrScoreLTE applies the LTE predicate on the "ocr_score" field.
func OcrScoreLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrScore, v))
}

// OcrScoreIsNil applies the IsNil predicate on the "ocr_score" field.
func OcrScoreIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrScore))
}

// OcrScoreNotNil applies the NotNil predicate on the "ocr_score" field.
func OcrScoreNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrScore))
}

// KeywordsIsNil applies the IsNil predicate on the "keywords" field.
func KeywordsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldKeywords))
}

// KeywordsNotNil applies the NotNil predicate on the "keywords" field.
func KeywordsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldKeywords))
}

// ExtractedFieldsIsNil applies the IsNil predicate on the "extracted_fields" field.
func ExtractedFieldsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedFields))
}

// ExtractedFieldsNotNil applies the NotNil predicate on the "extracted_fields" field.
func ExtractedFieldsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedFields))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
