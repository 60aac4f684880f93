package analysis

import "strings"

// extractCurrency returns the code of the first symbol in the config
// table that appears anywhere in the text. Table order, not symbol
// position, decides the winner when several symbols are present.
func (a *Analyzer) extractCurrency(text string) string {
	for _, c := range a.cfg.Currencies {
		if strings.Contains(text, c.Symbol) {
			return c.Code
		}
	}
	return "USD"
}
