package classifier

import (
	"regexp"
	"sort"
	"strings"
)

var reKeyword = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

// filler words that dominate form prose but carry no category signal
var keywordStopwords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "from": {}, "have": {},
	"been": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"about": {}, "their": {}, "there": {},
}

// topKeywords returns the most frequent non-stopword terms of at least four
// letters, up to limit. Frequency ties keep first-occurrence order so the
// output is stable for a given text.
func topKeywords(text string, limit int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, m := range reKeyword.FindAllString(text, -1) {
		w := strings.ToLower(m)
		if _, skip := keywordStopwords[w]; skip {
			continue
		}
		if _, ok := counts[w]; !ok {
			firstSeen[w] = order
			order++
		}
		counts[w]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return firstSeen[words[i]] < firstSeen[words[j]]
	})

	if len(words) > limit {
		words = words[:limit]
	}
	return words
}
