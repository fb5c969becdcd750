package constants

import (
	"strings"
)

// Category is a document classification label for school records.
type Category string

const (
	ExamForm           Category = "Exam Form"
	Acknowledgement    Category = "Acknowledgement Form"
	Clearance          Category = "Clearance"
	Receipt            Category = "Receipt"
	GradeSheet         Category = "Grade Sheet"
	EnrollmentForm     Category = "Enrollment Form"
	IDApplication      Category = "ID Application"
	CertificateRequest Category = "Certificate Request"
	LeaveForm          Category = "Leave Form"
	SyllabusReview     Category = "Syllabus Review Form"
	Other              Category = "Other"
)

// allCategories is the canonical ordering. The rule engine iterates in this
// order, so score ties resolve deterministically.
var allCategories = []Category{
	ExamForm,
	Acknowledgement,
	Clearance,
	Receipt,
	GradeSheet,
	EnrollmentForm,
	IDApplication,
	CertificateRequest,
	LeaveForm,
	SyllabusReview,
	Other,
}

// Categories returns the fixed category list in canonical order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"examination form":  ExamForm,
		"acknowledgment":    Acknowledgement,
		"official receipt":  Receipt,
		"transcript":        GradeSheet,
		"report card":       GradeSheet,
		"enrolment form":    EnrollmentForm,
		"registration form": EnrollmentForm,
		"id card":           IDApplication,
		"leave application": LeaveForm,
		"syllabus review":   SyllabusReview,
		"clearance form":    Clearance,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
