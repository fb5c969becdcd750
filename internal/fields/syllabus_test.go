package fields

import (
	"reflect"
	"testing"

	"github.com/jromarion/arc-classifier/constants"
)

func extract(t *testing.T, text string) map[string]any {
	t.Helper()
	e, ok := ForCategory(constants.SyllabusReview)
	if !ok {
		t.Fatal("no extractor registered for syllabus review")
	}
	return e.Extract(text)
}

func TestDocumentCodeCanonicalization(t *testing.T) {
	variants := []string{
		"FM-USTP-ACAD-12",
		"fm ustp acad 12",
		"FMUSTPACAD12",
		"F M-USTP-ACAD-12",
		"fm - ustp - acad - 12",
		"Code: fm–ustp–acad–12", // en dashes from OCR
	}
	for _, text := range variants {
		got := extract(t, text)["document_code"]
		if got != CanonicalSyllabusDocCode {
			t.Errorf("%q: document_code = %v, want %q", text, got, CanonicalSyllabusDocCode)
		}
	}
}

func TestExtractSemesterPrefersOrdinal(t *testing.T) {
	cases := []struct {
		name string
		text string
		want any
	}{
		// A title ending in a digit sits right before the Semester label
		// once whitespace is collapsed; the stray digit must not win.
		{"digit before label", "Descriptive Title: Information Management, Part 2 Semester: 2nd Semester", "2nd semester"},
		{"ordinal only", "offered during the 1st semester", "1st semester"},
		{"bare digit fallback", "Semester: 2 Semester AY 2023-2024", "2 semester"},
		{"no match", "no term mentioned here at all", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extract(t, tc.text)["semester"]; got != tc.want {
				t.Errorf("semester = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExtractFullForm(t *testing.T) {
	text := `FM-USTP-ACAD-12
SYLLABUS REVIEW FORM
Course Code: IT - 221    Descriptive Title: Information Management, Part 2
Semester: 2nd Semester   AY 2023-2024
Faculty: juan dela cruz; MARIA SANTOS
Reviewed by: Pedro Reyes
Date: 15/01/2024
INDICATORS | YES | NO | REMARKS
Objectives stated clearly  yes
Assessment aligned         yes
References current         no`

	got := extract(t, text)

	want := map[string]any{
		"document_code":     CanonicalSyllabusDocCode,
		"course_code":       "IT-221",
		"semester":          "2nd semester",
		"academic_year":     "2023-2024",
		"descriptive_title": "Information Management, Part 2",
		"review_date":       "15/01/2024",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
	faculty, _ := got["faculty"].([]string)
	if !reflect.DeepEqual(faculty, []string{"Juan Dela Cruz", "Maria Santos"}) {
		t.Errorf("faculty = %v", faculty)
	}
	if rb := got["reviewed_by"]; rb != "Pedro Reyes" {
		t.Errorf("reviewed_by = %v", rb)
	}
	if got["has_indicators_table"] != true {
		t.Error("indicators table not detected")
	}
	if yc := got["yes_count"]; yc != 3 {
		t.Errorf("yes_count = %v, want 3", yc)
	}
	if nc := got["no_count"]; nc != 2 {
		t.Errorf("no_count = %v, want 2", nc)
	}
}

func TestExtractEmptyTextNeverErrors(t *testing.T) {
	for _, text := range []string{"", "   \n\t  ", "no structured content here at all"} {
		got := extract(t, text)
		for _, k := range []string{
			"document_code", "course_code", "semester", "academic_year",
			"descriptive_title", "faculty", "reviewed_by", "review_date",
		} {
			if got[k] != nil {
				t.Errorf("%q: %s = %v, want nil", text, k, got[k])
			}
		}
		if got["has_indicators_table"] != false {
			t.Errorf("%q: has_indicators_table should be false", text)
		}
	}
}

func TestWrittenReviewDate(t *testing.T) {
	got := extract(t, "Reviewed by: Ana Cruz on january 5, 2024")
	if got["review_date"] != "January 5, 2024" {
		t.Errorf("review_date = %v", got["review_date"])
	}
}

func TestPresentFields(t *testing.T) {
	got := extract(t, "Course Code: CS-101")
	present, _ := got["present_fields"].([]string)
	if !reflect.DeepEqual(present, []string{"course_code"}) {
		t.Errorf("present_fields = %v", present)
	}
}

func TestValidateFieldSet(t *testing.T) {
	fieldSet := extract(t, "FM-USTP-ACAD-12 Course Code: IT-221 indicators remarks yes no")
	if err := ValidateFieldSet(constants.SyllabusReview, fieldSet); err != nil {
		t.Errorf("extracted field set failed its own schema: %v", err)
	}

	bad := map[string]any{"has_indicators_table": "yes", "yes_count": 0, "no_count": 0}
	if err := ValidateFieldSet(constants.SyllabusReview, bad); err == nil {
		t.Error("expected schema violation for non-boolean flag")
	}

	// categories without a template validate vacuously
	if err := ValidateFieldSet(constants.Receipt, map[string]any{"anything": 1}); err != nil {
		t.Errorf("unexpected error for untemplated category: %v", err)
	}
}

func TestNormalizeText(t *testing.T) {
	got := normalizeText("a—b  \n\t c–d  ")
	if got != "a-b c-d" {
		t.Errorf("normalizeText = %q", got)
	}
}
