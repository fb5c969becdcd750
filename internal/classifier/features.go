package classifier

import (
	"regexp"
	"strings"
)

var (
	reAmount = regexp.MustCompile(`\$?\d+\.?\d*`)

	reSyllabusFuzzy = regexp.MustCompile(`syllabus\W{0,10}review|review\W{0,10}syllabus`)
	reDocCode       = regexp.MustCompile(`\b(?:fm)?\s*-?\s*ustp\s*-?\s*acad\s*-?\s*12\b`)
)

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func hasAmountPattern(s string) bool    { return reAmount.MatchString(s) }
func hasSignaturePattern(s string) bool { return containsAny(s, "signature", "signed") }
