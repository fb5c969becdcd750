package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/jromarion/arc-classifier/constants"
	"github.com/jromarion/arc-classifier/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("user_id").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("source_type").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("storage_path").Optional().Nillable(),
		field.String("doc_number").Optional().Nillable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.DocStatuses...)),
		field.String("category").Optional().Nillable(),
		field.Float("confidence").Optional().Nillable(),
		field.String("method").Optional().Nillable(),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("ocr_variant").Optional().Nillable(),
		field.String("ocr_params").Optional().Nillable(),
		field.Float("ocr_score").Optional().Nillable(),
		field.JSON("keywords", []string{}).Optional(),
		field.JSON("extracted_fields", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("status"),
		index.Fields("category"),
	}
}
