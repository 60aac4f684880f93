package analysis

import "strings"

const (
	vendorMaxLines = 5
	vendorMaxLen   = 100
)

// extractVendor picks the vendor name from the leading lines of the
// document: the first of the first five non-empty lines that is longer
// than three characters and free of boilerplate words, truncated to a
// sane length.
func (a *Analyzer) extractVendor(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > vendorMaxLines {
			break
		}
		if len(line) <= 3 || a.containsNoise(line) {
			continue
		}
		if runes := []rune(line); len(runes) > vendorMaxLen {
			line = string(runes[:vendorMaxLen])
		}
		return line
	}
	return "Unknown Vendor"
}

func (a *Analyzer) containsNoise(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range a.cfg.NoiseWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
