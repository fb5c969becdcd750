package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocSequence backs office filing numbers of the form
// PREFIX-DEPT-YYYY-NNNN. One row per (prefix, department, year); the
// counter only ever moves forward.
type DocSequence struct{ ent.Schema }

func (DocSequence) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "doc_sequences"},
	}
}

func (DocSequence) Fields() []ent.Field {
	return []ent.Field{
		field.String("prefix").NotEmpty(),
		field.String("department").NotEmpty(),
		field.Int("year").Positive(),
		field.Int("counter").Default(0).NonNegative(),
	}
}

func (DocSequence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prefix", "department", "year").Unique(),
	}
}
