// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocSequencesColumns holds the columns for the "doc_sequences" table.
	DocSequencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "prefix", Type: field.TypeString},
		{Name: "department", Type: field.TypeString},
		{Name: "year", Type: field.TypeInt},
		{Name: "counter", Type: field.TypeInt, Default: 0},
	}
	// DocSequencesTable holds the schema information for the "doc_sequences" table.
	DocSequencesTable = &schema.Table{
		Name:       "doc_sequences",
		Columns:    DocSequencesColumns,
		PrimaryKey: []*schema.Column{DocSequencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "docsequence_prefix_department_year",
				Unique:  true,
				Columns: []*schema.Column{DocSequencesColumns[1], DocSequencesColumns[2], DocSequencesColumns[3]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString, Nullable: true},
		{Name: "doc_number", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "method", Type: field.TypeString, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_variant", Type: field.TypeString, Nullable: true},
		{Name: "ocr_params", Type: field.TypeString, Nullable: true},
		{Name: "ocr_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[18]},
			},
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[7]},
			},
			{
				Name:    "document_category",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocSequencesTable,
		DocumentsTable,
	}
)

func init() {
	DocSequencesTable.Annotation = &entsql.Annotation{
		Table: "doc_sequences",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
}
