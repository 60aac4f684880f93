package analysis

// Category pairs a document type with the keywords that indicate it.
type Category struct {
	Name     string
	Keywords []string
}

// CurrencySymbol maps a symbol appearing in text to an ISO-style code.
type CurrencySymbol struct {
	Symbol string
	Code   string
}

// Config holds the lookup tables that drive the analyzer. Table order is
// part of the contract: category order decides classification tie-breaks
// and symbol order decides which currency wins when several symbols
// appear in the same document.
type Config struct {
	Categories []Category
	Currencies []CurrencySymbol
	// NoiseWords disqualify a leading line from being the vendor name.
	NoiseWords []string
}

// DefaultConfig returns the standard lookup tables for invoices,
// receipts, and bills.
func DefaultConfig() Config {
	return Config{
		Categories: []Category{
			{Name: "invoice", Keywords: []string{"invoice", "bill", "inv no", "invoice no", "invoice #"}},
			{Name: "receipt", Keywords: []string{"receipt", "payment received", "paid"}},
			{Name: "bill", Keywords: []string{"bill", "statement", "amount due"}},
		},
		Currencies: []CurrencySymbol{
			{Symbol: "$", Code: "USD"},
			{Symbol: "€", Code: "EUR"},
			{Symbol: "£", Code: "GBP"},
			{Symbol: "¥", Code: "JPY"},
			{Symbol: "₹", Code: "INR"},
			{Symbol: "Rs", Code: "INR"},
			{Symbol: "PKR", Code: "PKR"},
		},
		NoiseWords: []string{"invoice", "receipt", "bill", "tax", "date"},
	}
}
