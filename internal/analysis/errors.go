package analysis

import "fmt"

// DecodeError reports input bytes that could not be interpreted as an
// image or document.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unreadable document: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// ExtractionError reports OCR output with no usable text.
type ExtractionError struct {
	Message string
}

func (e *ExtractionError) Error() string { return e.Message }
