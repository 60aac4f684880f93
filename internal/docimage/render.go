package docimage

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// Fitz renders PDF pages with MuPDF via go-fitz.
type Fitz struct{}

// RenderFirstPage rasterizes page 1 of a PDF at the given DPI. Only
// the first page is rendered regardless of page count; invoices and
// receipts carry their totals there and rendering the rest only adds
// latency.
func (Fitz) RenderFirstPage(data []byte, dpi int) (image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	img, err := doc.ImageDPI(0, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("rendering PDF page: %w", err)
	}
	return img, nil
}
