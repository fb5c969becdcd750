package classifier

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jromarion/arc-classifier/constants"
	"github.com/jromarion/arc-classifier/internal/common"
)

func rulesOnly(t *testing.T) *Classifier {
	t.Helper()
	return New(common.ClassifierConfig{}, nil)
}

func TestClassifyInsufficientText(t *testing.T) {
	c := rulesOnly(t)
	for _, text := range []string{"", "   ", "short", "  a b c  "} {
		res := c.Classify(text)
		if res.Category != constants.Other {
			t.Errorf("%q: category = %q, want Other", text, res.Category)
		}
		if res.Confidence != 0.0 {
			t.Errorf("%q: confidence = %v, want 0", text, res.Confidence)
		}
		if res.Method != MethodInsufficientText {
			t.Errorf("%q: method = %q", text, res.Method)
		}
		if len(res.Keywords) != 0 {
			t.Errorf("%q: keywords = %v, want none", text, res.Keywords)
		}
	}
}

func TestClassifyReceipt(t *testing.T) {
	c := rulesOnly(t)
	res := c.Classify("OFFICIAL RECEIPT\nAmount paid: $150.00\nPayment received with thanks")
	if res.Category != constants.Receipt {
		t.Fatalf("category = %q, want Receipt", res.Category)
	}
	// receipt terms (+3) and amount-with-payment (+3): 6 points
	if res.Confidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6", res.Confidence)
	}
	if res.Method != MethodRuleBased {
		t.Errorf("method = %q", res.Method)
	}
}

func TestClassifyClearance(t *testing.T) {
	c := rulesOnly(t)
	res := c.Classify("STUDENT CLEARANCE\nThe bearer has no pending obligations and is hereby cleared.")
	if res.Category != constants.Clearance {
		t.Fatalf("category = %q, want Clearance", res.Category)
	}
	if res.Confidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6", res.Confidence)
	}
}

func TestClassifyNoSignalFallsToOther(t *testing.T) {
	c := rulesOnly(t)
	res := c.Classify("lorem ipsum dolor sit consectetur adipiscing elit sed tempor")
	if res.Category != constants.Other {
		t.Fatalf("category = %q, want Other", res.Category)
	}
	if res.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5 floor", res.Confidence)
	}
}

func TestSyllabusReviewBeatsGradeSheet(t *testing.T) {
	c := rulesOnly(t)
	// grading vocabulary plus the structural markers of the review form
	text := `FM-USTP-ACAD-12
UNIVERSITY OF SCIENCE AND TECHNOLOGY OF SOUTHERN PHILIPPINES
SYLLABUS REVIEW FORM
Course Code: IT-221
Directions: check yes or no for each item
INDICATORS | YES | NO | REMARKS
Faculty: J. Dela Cruz
Grade components and score distribution reviewed`
	res := c.Classify(text)
	if res.Category != constants.SyllabusReview {
		t.Fatalf("category = %q, want Syllabus Review Form", res.Category)
	}
	if res.Confidence != 1.0 {
		t.Errorf("confidence = %v, want capped at 1.0", res.Confidence)
	}
}

func TestSyllabusMarkersSuppressGradeSheet(t *testing.T) {
	lowered := "grade score syllabus review form indicators remarks yes no"
	scores := scoreRules(lowered)
	if scores[constants.GradeSheet] != 0 {
		t.Errorf("grade sheet score = %d, want 0 after suppression", scores[constants.GradeSheet])
	}
	if scores[constants.SyllabusReview] < 6 {
		t.Errorf("syllabus score = %d, want title+indicators signals", scores[constants.SyllabusReview])
	}
}

func TestSyllabusSignals(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"nothing", "a receipt for tuition payment", 0},
		{"exact title", "syllabus review form", 4 + 2}, // title also trips the fuzzy pattern
		{"fuzzy only", "syllabus review checklist", 2},
		{"doc code spaced", "fm ustp acad 12", 3 + 3}, // literal match plus pattern match
		{"doc code bare", "ustp-acad-12", 3},
		{"indicators table", "indicators remarks yes no", 2},
		{"university header", "university of science and technology of southern philippines", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := syllabusSignals(tc.text); got != tc.want {
				t.Errorf("signals(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := rulesOnly(t)
	text := "Application for leave of absence, signature required, 12/05/2024"
	a := c.Classify(text)
	b := c.Classify(text)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same text classified differently:\n%+v\n%+v", a, b)
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	c := rulesOnly(t)
	texts := []string{
		"receipt payment amount paid $100.00 cleared clearance grade enroll exam",
		"certificate request certify",
		"random unrelated prose about gardening tomatoes sunshine watering",
		"x",
	}
	for _, text := range texts {
		res := c.Classify(text)
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Errorf("%q: confidence %v out of [0,1]", text, res.Confidence)
		}
		if len(res.Keywords) > 5 {
			t.Errorf("%q: %d keywords, want at most 5", text, len(res.Keywords))
		}
	}
}

func TestTopKeywords(t *testing.T) {
	text := "tuition tuition tuition receipt receipt payment university this that with"
	got := topKeywords(text, 5)
	want := []string{"tuition", "receipt", "payment", "university"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("keywords = %v, want %v", got, want)
	}
}

func TestTopKeywordsTieOrderIsFirstOccurrence(t *testing.T) {
	got := topKeywords("delta alpha delta alpha gamma", 5)
	want := []string{"delta", "alpha", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("keywords = %v, want %v", got, want)
	}
}

func writeModel(t *testing.T, m Model) string {
	t.Helper()
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// two-class toy model: "receipt" vs everything else
func toyModel() Model {
	return Model{
		Vocabulary:    map[string]int{"receipt": 0, "payment": 1, "syllabus": 2},
		IDF:           []float64{1.0, 1.0, 1.0},
		Classes:       []string{"Receipt", "Syllabus Review Form"},
		ClassLogPrior: []float64{-0.69, -0.69},
		FeatureLogProb: [][]float64{
			{-0.5, -0.5, -8.0},
			{-8.0, -8.0, -0.5},
		},
	}
}

func TestModelRouting(t *testing.T) {
	path := writeModel(t, toyModel())
	c := New(common.ClassifierConfig{ModelPath: path, ConfidenceThreshold: 0.7}, nil)
	if c.model == nil {
		t.Fatal("model did not load")
	}

	res := c.Classify("receipt payment receipt payment confirmation")
	if res.Method != MethodMLModel {
		t.Fatalf("method = %q, want ml_model", res.Method)
	}
	if res.Category != constants.Receipt {
		t.Errorf("category = %q, want Receipt", res.Category)
	}
	if res.Confidence < 0.7 || res.Confidence > 1.0 {
		t.Errorf("confidence = %v, want within [threshold, 1]", res.Confidence)
	}
}

func TestModelBelowThresholdFallsBackToRules(t *testing.T) {
	path := writeModel(t, toyModel())
	// impossible threshold forces the fallback path on every input
	c := New(common.ClassifierConfig{ModelPath: path, ConfidenceThreshold: 1.01}, nil)

	res := c.Classify("official receipt for tuition payment amount paid")
	if res.Method != MethodRuleFallback {
		t.Fatalf("method = %q, want rule_based_fallback", res.Method)
	}
	if res.Category != constants.Receipt {
		t.Errorf("category = %q, want rule-based Receipt", res.Category)
	}
}

func TestMissingModelDowngradesToRules(t *testing.T) {
	c := New(common.ClassifierConfig{ModelPath: "/does/not/exist.json"}, nil)
	if c.model != nil {
		t.Fatal("expected nil model")
	}
	res := c.Classify("official receipt for tuition payment")
	if res.Method != MethodRuleBased {
		t.Errorf("method = %q, want rule_based", res.Method)
	}
}

func TestLoadModelRejectsInconsistentShapes(t *testing.T) {
	m := toyModel()
	m.IDF = []float64{1.0} // wrong size
	path := writeModel(t, m)
	if _, err := LoadModel(path); err == nil {
		t.Error("expected shape validation error")
	}
}
