package fields

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jromarion/arc-classifier/constants"
)

// CanonicalSyllabusDocCode is the document control code of the syllabus
// review form. OCR mangles it freely ("fm ustp acad 12", "FMUSTPACAD12",
// "m-ustp-acad-12"); any recognizable rendering canonicalizes to this.
const CanonicalSyllabusDocCode = "FM-USTP-ACAD-12"

var (
	reSyllabusDocCode = regexp.MustCompile(`(?i)(f?m\s*-?\s*ustp\s*-?\s*acad\s*-?\s*12)`)
	reCourseLabeled   = regexp.MustCompile(`(?i)course\s*code\s*[:\-]\s*([A-Za-z]{2,4}\s*-?\s*\d{2,5}|\d{4,6})`)
	reCourseBare      = regexp.MustCompile(`\b([A-Z]{2,4}\s*-\s*\d{2,5})\b`)
	// Ordinal first: with whitespace collapsed the lax pattern would latch
	// onto a stray trailing digit ("... Part 2 Semester: 2nd ...").
	reSemesterOrdinal = regexp.MustCompile(`(?i)\b(\d(?:st|nd|rd|th)\s*semester)\b`)
	reSemesterLax     = regexp.MustCompile(`(?i)\b(\d\s*semester)\b`)
	reAcademicYear    = regexp.MustCompile(`(?i)\bAY\s*[:\-]?\s*(\d{4})\s*[-/]\s*(\d{4})\b`)
	reDescTitle       = regexp.MustCompile(`(?i)descriptive\s*title\s*[:\-]\s*([A-Za-z0-9&,'() -]{3,80})`)
	reFacultyBlob     = regexp.MustCompile(`(?i)faculty\s*(?:member|members)?\s*[:\-]\s*([A-Za-z .,;'-]{2,120})`)
	reReviewedBy      = regexp.MustCompile(`(?i)reviewed\s*by\s*[:\-]?\s*([A-Za-z .,'-]{3,60})`)
	reNumericDate     = regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`)
	reWrittenDate     = regexp.MustCompile(`(?i)\b((?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s*\d{4})\b`)
	reYesMark         = regexp.MustCompile(`(?i)\byes\b`)
	reNoMark          = regexp.MustCompile(`(?i)\bno\b`)

	// With whitespace collapsed, a greedy capture runs straight into the
	// next printed label. Free-text captures are cut at the first one.
	reFieldLabel = regexp.MustCompile(`(?i)\b(?:course code|descriptive title|semester|academic year|ay|faculty|reviewed by|noted by|approved by|date|signature)\b`)
)

func cutAtLabel(s string) string {
	if loc := reFieldLabel.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	return strings.TrimSpace(s)
}

type syllabusExtractor struct{}

func (syllabusExtractor) Category() constants.Category { return constants.SyllabusReview }

// Extract pulls the syllabus review form fields. Whatever the text looks
// like, the result always contains every key; unmatched fields are nil.
func (syllabusExtractor) Extract(text string) map[string]any {
	t := normalizeText(text)
	lower := strings.ToLower(t)

	out := map[string]any{
		"document_code":        nil,
		"course_code":          nil,
		"semester":             nil,
		"academic_year":        nil,
		"descriptive_title":    nil,
		"faculty":              nil,
		"reviewed_by":          nil,
		"review_date":          nil,
		"has_indicators_table": false,
		"yes_count":            0,
		"no_count":             0,
	}

	if reSyllabusDocCode.MatchString(t) {
		out["document_code"] = CanonicalSyllabusDocCode
	}
	if code := extractCourseCode(t); code != "" {
		out["course_code"] = code
	}
	if sem := extractSemester(t); sem != "" {
		out["semester"] = sem
	}
	if m := reAcademicYear.FindStringSubmatch(t); m != nil {
		out["academic_year"] = fmt.Sprintf("%s-%s", m[1], m[2])
	}
	if m := reDescTitle.FindStringSubmatch(t); m != nil {
		if title := strings.Trim(cutAtLabel(m[1]), " ,;-"); len(title) >= 3 {
			out["descriptive_title"] = titleCase(title)
		}
	}
	if names := extractFaculty(t); len(names) > 0 {
		out["faculty"] = names
	}
	if m := reReviewedBy.FindStringSubmatch(t); m != nil {
		if name := strings.Trim(cutAtLabel(m[1]), " ,;.-"); len(name) >= 3 {
			out["reviewed_by"] = titleCase(name)
		}
	}
	if date := extractReviewDate(t); date != "" {
		out["review_date"] = date
	}

	if strings.Contains(lower, "indicators") && strings.Contains(lower, "remarks") {
		out["has_indicators_table"] = true
		out["yes_count"] = len(reYesMark.FindAllString(t, -1))
		out["no_count"] = len(reNoMark.FindAllString(t, -1))
	}

	out["present_fields"] = presentFields(out)
	return out
}

func extractSemester(t string) string {
	m := reSemesterOrdinal.FindStringSubmatch(t)
	if m == nil {
		m = reSemesterLax.FindStringSubmatch(t)
	}
	if m == nil {
		return ""
	}
	return strings.ToLower(reWhitespace.ReplaceAllString(m[1], " "))
}

func extractCourseCode(t string) string {
	m := reCourseLabeled.FindStringSubmatch(t)
	if m == nil {
		m = reCourseBare.FindStringSubmatch(t)
	}
	if m == nil {
		return ""
	}
	code := strings.ReplaceAll(m[1], " ", "")
	return strings.ToUpper(code)
}

func extractFaculty(t string) []string {
	m := reFacultyBlob.FindStringSubmatch(t)
	if m == nil {
		return nil
	}
	blob := cutAtLabel(m[1])
	var names []string
	for _, part := range strings.FieldsFunc(blob, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		name := strings.Trim(part, " ,;\n\t")
		if len(name) < 2 {
			continue
		}
		names = append(names, titleCase(name))
	}
	return names
}

func extractReviewDate(t string) string {
	if m := reNumericDate.FindStringSubmatch(t); m != nil {
		return m[1]
	}
	if m := reWrittenDate.FindStringSubmatch(t); m != nil {
		return titleCase(m[1])
	}
	return ""
}

// presentFields lists which optional fields matched, sorted for stable
// output. Zero-valued counters and flags do not count as present.
func presentFields(out map[string]any) []string {
	var present []string
	for k, v := range out {
		switch val := v.(type) {
		case nil:
			continue
		case bool:
			if !val {
				continue
			}
		case int:
			if val == 0 {
				continue
			}
		}
		present = append(present, k)
	}
	sort.Strings(present)
	return present
}
