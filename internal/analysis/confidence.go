package analysis

import (
	"regexp"
	"strings"
)

var digitRe = regexp.MustCompile(`\d`)

// scoreConfidence estimates how trustworthy the extraction is from
// simple signals in the text: digits present, a known keyword present,
// and enough words to be a real document. Each signal contributes
// independently and the sum is capped at 1.0. Empty text scores 0.0.
func (a *Analyzer) scoreConfidence(text string) float64 {
	if text == "" {
		return 0.0
	}

	score := 0.0
	if digitRe.MatchString(text) {
		score += 0.4
	}
	if a.containsAnyKeyword(text) {
		score += 0.3
	}
	if len(strings.Fields(text)) > 20 {
		score += 0.3
	}
	return min(score, 1.0)
}

func (a *Analyzer) containsAnyKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, cat := range a.cfg.Categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
