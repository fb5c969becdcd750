package classifier

import (
	"strings"

	"github.com/jromarion/arc-classifier/constants"
)

// scoreRules assigns keyword-evidence points per category. The weights are
// tuned for scans of institutional forms: a strong exclusive cue is worth
// 3-4 points, a corroborating pair of cues 2.
func scoreRules(text string) map[constants.Category]int {
	scores := make(map[constants.Category]int, len(constants.Categories()))
	for _, c := range constants.Categories() {
		scores[c] = 0
	}

	if containsAny(text, "exam", "examination", "test", "quiz") {
		scores[constants.ExamForm] += 3
	}
	if containsAll(text, "examination", "form") {
		scores[constants.ExamForm] += 2
	}

	if containsAny(text, "acknowledge", "acknowledgement", "received") {
		scores[constants.Acknowledgement] += 3
	}
	if hasSignaturePattern(text) && strings.Contains(text, "acknowledge") {
		scores[constants.Acknowledgement] += 2
	}

	if containsAny(text, "clearance", "cleared", "no obligations") {
		scores[constants.Clearance] += 4
	}
	if containsAny(text, "cleared", "no pending") {
		scores[constants.Clearance] += 2
	}

	if containsAny(text, "receipt", "payment", "amount", "paid") {
		scores[constants.Receipt] += 3
	}
	if hasAmountPattern(text) && containsAny(text, "paid", "payment") {
		scores[constants.Receipt] += 3
	}

	if containsAny(text, "grade", "marks", "score", "gpa") {
		scores[constants.GradeSheet] += 3
	}
	if containsAny(text, "transcript", "report card") {
		scores[constants.GradeSheet] += 2
	}

	if containsAny(text, "enroll", "enrollment", "registration") {
		scores[constants.EnrollmentForm] += 3
	}
	if containsAll(text, "enroll", "subject") {
		scores[constants.EnrollmentForm] += 2
	}

	if containsAny(text, "id card", "identification", "student id") {
		scores[constants.IDApplication] += 4
	}
	if containsAny(text, "student id", "id application") {
		scores[constants.IDApplication] += 2
	}

	if containsAny(text, "certificate", "certification", "certify") {
		scores[constants.CertificateRequest] += 3
	}
	if containsAll(text, "request", "certificate") {
		scores[constants.CertificateRequest] += 2
	}

	if containsAny(text, "leave", "absence", "vacation") {
		scores[constants.LeaveForm] += 3
	}
	if containsAny(text, "leave application", "absence") {
		scores[constants.LeaveForm] += 2
	}

	// Syllabus review forms are grading-adjacent documents full of
	// "rating"/"remarks" vocabulary, so their structural markers both boost
	// the syllabus score and suppress the grade-sheet score.
	if signals := syllabusSignals(text); signals > 0 {
		scores[constants.SyllabusReview] += signals
		if scores[constants.GradeSheet] > 3 {
			scores[constants.GradeSheet] -= 3
		} else {
			scores[constants.GradeSheet] = 0
		}
	}

	return scores
}

// syllabusSignals scores the structural markers of the institutional
// syllabus review form: its title, its document control code, and its
// indicators table.
func syllabusSignals(text string) int {
	signals := 0
	if strings.Contains(text, "syllabus review form") {
		signals += 4
	}
	if reSyllabusFuzzy.MatchString(text) {
		signals += 2
	}
	if containsAny(text, "fm-ustp-acad-12", "fm ustp acad 12") {
		signals += 3
	}
	if reDocCode.MatchString(text) {
		signals += 3
	}
	if containsAll(text, "indicators", "remarks", "yes", "no") {
		signals += 2
	}
	if containsAll(text, "directions", "yes") {
		signals++
	}
	if strings.Contains(text, "university of science and technology of southern philippines") {
		signals++
	}
	if strings.Contains(text, "course code") {
		signals++
	}
	if strings.Contains(text, "faculty") {
		signals++
	}
	return signals
}

// classifyByRules picks the highest-scoring category. Ties keep the first
// category in registry order; a board of all zeros means nothing matched
// and falls back to Other at the configured floor.
func classifyByRules(text string, otherFloor float64) (constants.Category, float64) {
	scores := scoreRules(strings.ToLower(text))

	winner := constants.Other
	best := 0
	for _, c := range constants.Categories() {
		if scores[c] > best {
			best = scores[c]
			winner = c
		}
	}
	if best == 0 {
		return constants.Other, otherFloor
	}
	confidence := float64(best) / 10.0
	if confidence > 1.0 {
		confidence = 1.0
	}
	return winner, confidence
}
