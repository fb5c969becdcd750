// Package fields extracts structured metadata from classified documents
// using per-category templates. Extraction is tolerant by construction:
// every field is optional, a pattern that does not match leaves its field
// null, and no input text can produce an error.
package fields

import (
	"regexp"
	"strings"

	"github.com/jromarion/arc-classifier/constants"
)

// Extractor pulls the fields of one document category out of OCR text.
type Extractor interface {
	Category() constants.Category
	Extract(text string) map[string]any
}

var registry = map[constants.Category]Extractor{
	constants.SyllabusReview: syllabusExtractor{},
}

// ForCategory returns the template extractor for a category, if one exists.
// Categories without a template simply carry no structured fields.
func ForCategory(c constants.Category) (Extractor, bool) {
	e, ok := registry[c]
	return e, ok
}

var (
	reDashes     = regexp.MustCompile("[–—]")
	reWhitespace = regexp.MustCompile(`\s+`)
)

// normalizeText folds the unicode dashes OCR likes to emit into plain
// hyphens and collapses all whitespace runs, so the field patterns only
// have to deal with one textual shape.
func normalizeText(text string) string {
	text = reDashes.ReplaceAllString(text, "-")
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
