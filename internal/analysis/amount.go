package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches amounts written with optional comma grouping
// and an optional two-decimal fraction. Comma-decimal locales
// ("1.234,56") are misparsed; the numeric convention is assumed to be
// comma-grouping with a dot decimal, as in the documents this was
// built against.
const numberPattern = `\d{1,3}(?:,\d{3})+(?:\.\d{2})?|\d+(?:\.\d{2})?`

// currencyPrefix optionally sits between a label and its amount.
const currencyPrefix = `(?:rs\.?|pkr|[$€£¥₹])?`

var (
	// labelPatterns are tried in priority order; the first pattern
	// that matches anywhere supplies the amount.
	labelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)total\s*amount[\s:]*` + currencyPrefix + `\s*(` + numberPattern + `)`),
		regexp.MustCompile(`(?i)total[\s:]*` + currencyPrefix + `\s*(` + numberPattern + `)`),
		regexp.MustCompile(`(?i)amount\s*due[\s:]*` + currencyPrefix + `\s*(` + numberPattern + `)`),
		regexp.MustCompile(`(?i)grand\s*total[\s:]*` + currencyPrefix + `\s*(` + numberPattern + `)`),
	}

	numberRe        = regexp.MustCompile(numberPattern)
	symbolAmountRe  = regexp.MustCompile(`[$€£¥₹]\s*(` + numberPattern + `)`)
	groupedAmountRe = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d{2})?`)
	rsAmountRe      = regexp.MustCompile(`(?i)(?:rs\.?|pkr)\s*(` + numberPattern + `)`)
)

// extractAmount finds the monetary total through a three-tier cascade:
// label-anchored amounts, then amounts near "total" lines, then any
// currency-looking number in the document. Each tier runs only when
// the previous one found nothing.
func (a *Analyzer) extractAmount(text string) float64 {
	if v, ok := amountFromLabels(text); ok {
		return v
	}
	if v, ok := amountNearTotals(text); ok {
		return v
	}
	return amountAnywhere(text)
}

// amountFromLabels looks for an amount directly following one of the
// total labels. Labels are tried in fixed priority order and the first
// occurrence in document order wins.
func amountFromLabels(text string) (float64, bool) {
	for _, re := range labelPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, ok := parseAmount(m[1]); ok {
			return v, true
		}
	}
	return 0, false
}

// amountNearTotals collects every number on a line containing "total"
// and its immediate neighbors, drops values small enough to be line or
// item numbers, and returns the maximum.
func amountNearTotals(text string) (float64, bool) {
	lines := strings.Split(text, "\n")
	var best float64
	found := false
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), "total") {
			continue
		}
		lo := max(i-1, 0)
		hi := min(i+1, len(lines)-1)
		for j := lo; j <= hi; j++ {
			for _, tok := range numberRe.FindAllString(lines[j], -1) {
				v, ok := parseAmount(tok)
				if !ok || v <= 100 {
					continue
				}
				if !found || v > best {
					best = v
					found = true
				}
			}
		}
	}
	return best, found
}

// amountAnywhere scans the whole text for symbol-prefixed amounts,
// comma-grouped bare numbers, and Rs/PKR-prefixed amounts, returning
// the maximum above a small-noise floor, or 0.0 when nothing matches.
func amountAnywhere(text string) float64 {
	var candidates []float64
	for _, m := range symbolAmountRe.FindAllStringSubmatch(text, -1) {
		if v, ok := parseAmount(m[1]); ok {
			candidates = append(candidates, v)
		}
	}
	for _, tok := range groupedAmountRe.FindAllString(text, -1) {
		if v, ok := parseAmount(tok); ok {
			candidates = append(candidates, v)
		}
	}
	for _, m := range rsAmountRe.FindAllStringSubmatch(text, -1) {
		if v, ok := parseAmount(m[1]); ok {
			candidates = append(candidates, v)
		}
	}

	var best float64
	for _, v := range candidates {
		if v > 10 && v > best {
			best = v
		}
	}
	return best
}

// parseAmount strips grouping separators and converts the token to a
// float. Tokens that fail to parse are skipped, not errors.
func parseAmount(tok string) (float64, bool) {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(tok)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
