package document

import "time"

// Document represents an uploaded document together with the fields
// extracted from it.
type Document struct {
	ID              string    `json:"id"`
	Filename        string    `json:"filename"`
	ContentType     string    `json:"content_type"`
	DocumentType    string    `json:"document_type"`
	TotalAmount     float64   `json:"total_amount"`
	Currency        string    `json:"currency"`
	VendorName      string    `json:"vendor_name"`
	ExtractedText   string    `json:"extracted_text"`
	ConfidenceScore float64   `json:"confidence_score"`
	Status          string    `json:"status"`
	Error           string    `json:"error,omitempty"`
	UploadedAt      time.Time `json:"uploaded_at"`
}

// Stats summarizes the stored documents.
type Stats struct {
	DocumentCount int     `json:"document_count"`
	TotalAmount   float64 `json:"total_amount"`
}
