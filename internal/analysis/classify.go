package analysis

import "strings"

// classify assigns a document category by counting how many of each
// category's keywords appear in the text. The strictly greatest score
// wins; ties go to the category listed first in the config table, and
// a zero score everywhere falls back to "invoice".
func (a *Analyzer) classify(text string) string {
	lower := strings.ToLower(text)

	best := "invoice"
	bestScore := 0
	for _, cat := range a.cfg.Categories {
		score := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = cat.Name
			bestScore = score
		}
	}
	return best
}
