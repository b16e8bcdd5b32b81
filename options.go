package figura

import (
	"go.uber.org/zap"

	"github.com/tsawler/figura/figure"
)

// Default processing limits. They bound work on pathological documents
// while leaving typical papers and reports unaffected.
const (
	DefaultMaxPages  = 20
	DefaultMaxImages = 15
	DefaultDPI       = 200
)

// ExtractOptions holds configuration for figure extraction.
type ExtractOptions struct {
	// Processing limits
	maxPages  int
	maxImages int

	// Output rendering
	dpi float64

	// Caption position override; nil means detect from the document.
	position *figure.Position

	// Run OCR over each extracted figure image.
	ocrAltText bool

	logger *zap.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		maxPages:  DefaultMaxPages,
		maxImages: DefaultMaxImages,
		dpi:       DefaultDPI,
		logger:    zap.NewNop(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		maxPages:   o.maxPages,
		maxImages:  o.maxImages,
		dpi:        o.dpi,
		ocrAltText: o.ocrAltText,
		logger:     o.logger,
	}
	if o.position != nil {
		pos := *o.position
		newOpts.position = &pos
	}
	return newOpts
}
