// Package pdf defines the document access boundary used by the extraction
// pipeline. Implementations wrap an external PDF engine; the pipeline itself
// only depends on these interfaces, which keeps the geometry and caption
// logic testable without a real document.
package pdf

import (
	"fmt"

	"github.com/tsawler/figura/model"
)

// Document is an open PDF file.
type Document interface {
	// PageCount returns the total number of pages.
	PageCount() int

	// Page returns the page with the given 1-based number.
	Page(n int) (Page, error)

	// Close releases any resources held by the document.
	Close() error
}

// Page exposes the layout and raster content of a single page. All
// coordinates are in PDF points with the origin at the top-left corner and
// y increasing downward.
type Page interface {
	// Rect returns the page bounds.
	Rect() model.Rect

	// Blocks returns the page's text and image blocks in content order.
	Blocks() ([]model.Block, error)

	// ImagePlacements returns bounding boxes of images placed on the page
	// that are not reported as blocks, such as inline or form XObject
	// images.
	ImagePlacements() ([]model.Rect, error)

	// Render rasterizes the clip region of the page at the given DPI and
	// returns the encoded raster bytes.
	Render(clip model.Rect, dpi float64) ([]byte, error)
}

// OpenError reports a failure to open a document. Callers can use
// errors.As to distinguish open failures, which are fatal to an extraction
// run, from per-page or per-figure errors, which are not.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }
