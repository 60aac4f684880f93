package ocr

import (
	"context"
	"image"
)

// Engine is the OCR capability injected into the analyzer: one image
// in, recognized text out. Implementations may fail or return empty
// text on unrecognizable input; the analyzer decides what that means.
type Engine interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
	// Close releases any resources held by the engine.
	Close() error
}
