package fields

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jromarion/arc-classifier/constants"
)

const syllabusSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "document_code":        {"type": ["string", "null"]},
    "course_code":          {"type": ["string", "null"]},
    "semester":             {"type": ["string", "null"]},
    "academic_year":        {"type": ["string", "null"], "pattern": "^[0-9]{4}-[0-9]{4}$"},
    "descriptive_title":    {"type": ["string", "null"]},
    "faculty":              {"type": ["array", "null"], "items": {"type": "string", "minLength": 2}},
    "reviewed_by":          {"type": ["string", "null"]},
    "review_date":          {"type": ["string", "null"]},
    "has_indicators_table": {"type": "boolean"},
    "yes_count":            {"type": "integer", "minimum": 0},
    "no_count":             {"type": "integer", "minimum": 0},
    "present_fields":       {"type": ["array", "null"], "items": {"type": "string"}}
  },
  "required": ["has_indicators_table", "yes_count", "no_count"],
  "additionalProperties": false
}`

var fieldSchemas = map[constants.Category]*jsonschema.Schema{
	constants.SyllabusReview: jsonschema.MustCompileString("syllabus_review.json", syllabusSchemaJSON),
}

// ValidateFieldSet checks an extracted field set against its category
// schema. Callers treat a failure as a data-quality signal to log, not a
// reason to drop the document.
func ValidateFieldSet(c constants.Category, fieldSet map[string]any) error {
	schema, ok := fieldSchemas[c]
	if !ok {
		return nil
	}
	// Round-trip through JSON so the validator sees the same value shapes
	// the persisted payload will have.
	raw, err := json.Marshal(fieldSet)
	if err != nil {
		return fmt.Errorf("marshal field set: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decode field set: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("field set for %s: %w", c, err)
	}
	return nil
}
