package analysis

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the outcome of analyzing a single document. It is a plain
// value: once returned it is never mutated.
type Result struct {
	DocumentType    string  `json:"document_type"`
	TotalAmount     float64 `json:"total_amount"`
	Currency        string  `json:"currency"`
	VendorName      string  `json:"vendor_name"`
	ExtractedText   string  `json:"extracted_text"`
	ConfidenceScore float64 `json:"confidence_score"`
	Status          string  `json:"status"`
	Error           string  `json:"error,omitempty"`
}

// errorResult carries the documented defaults for a failed analysis.
func errorResult(err error) Result {
	return Result{
		DocumentType:    "unknown",
		TotalAmount:     0.0,
		Currency:        "USD",
		VendorName:      "Unknown",
		ExtractedText:   "",
		ConfidenceScore: 0.0,
		Status:          StatusError,
		Error:           err.Error(),
	}
}
