package analysis

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/docsight/docsight/internal/docimage"
	"github.com/docsight/docsight/internal/ocr"
)

// renderDPI is the resolution used when rasterizing the first page of a
// paginated document. Totals and vendor names sit on page 1 for the
// document classes we care about, so later pages are never rendered.
const renderDPI = 300

// Renderer rasterizes the first page of a paginated document.
type Renderer interface {
	RenderFirstPage(data []byte, dpi int) (image.Image, error)
}

// Analyzer turns raw document bytes into a structured Result using
// deterministic text heuristics over OCR output. It holds only
// immutable configuration and is safe to share across goroutines as
// long as the OCR engine is.
type Analyzer struct {
	cfg      Config
	engine   ocr.Engine
	renderer Renderer
}

// New creates an Analyzer with the default PDF renderer.
func New(cfg Config, engine ocr.Engine) *Analyzer {
	return NewWithRenderer(cfg, engine, docimage.Fitz{})
}

// NewWithRenderer creates an Analyzer with a custom renderer for testing.
func NewWithRenderer(cfg Config, engine ocr.Engine, renderer Renderer) *Analyzer {
	return &Analyzer{
		cfg:      cfg,
		engine:   engine,
		renderer: renderer,
	}
}

// Analyze runs the full pipeline over a document: rasterize or
// preprocess, recognize text, then extract type, amount, currency,
// vendor, and confidence from the same text. It never returns an
// error; every failure at any stage is folded into an error-status
// Result carrying the documented defaults.
func (a *Analyzer) Analyze(ctx context.Context, data []byte, contentType string) Result {
	text, err := a.extractText(ctx, data, contentType)
	if err != nil {
		return errorResult(err)
	}
	if strings.TrimSpace(text) == "" {
		return errorResult(&ExtractionError{Message: "no text could be extracted from document"})
	}

	return Result{
		DocumentType:    a.classify(text),
		TotalAmount:     a.extractAmount(text),
		Currency:        a.extractCurrency(text),
		VendorName:      a.extractVendor(text),
		ExtractedText:   text,
		ConfidenceScore: a.scoreConfidence(text),
		Status:          StatusSuccess,
	}
}

// extractText produces OCR text for the document. Paginated documents
// go through the first-page renderer; single images are preprocessed
// for OCR first.
func (a *Analyzer) extractText(ctx context.Context, data []byte, contentType string) (string, error) {
	var img image.Image
	if isPaginated(contentType) {
		rendered, err := a.renderer.RenderFirstPage(data, renderDPI)
		if err != nil {
			return "", &DecodeError{Cause: err}
		}
		img = rendered
	} else {
		decoded, err := docimage.Decode(data, contentType)
		if err != nil {
			return "", &DecodeError{Cause: err}
		}
		img = docimage.Preprocess(decoded)
	}

	text, err := a.engine.Recognize(ctx, img)
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}
	return text, nil
}

func isPaginated(contentType string) bool {
	return strings.ToLower(strings.TrimSpace(contentType)) == "application/pdf"
}
