// Package figura extracts captioned figures from PDF files. It locates
// figure captions ("Figure 3", "Fig. 2b"), resolves the page region holding
// each figure's artwork and writes every figure out as a JPEG image paired
// with its caption text.
//
// Basic usage:
//
//	n, err := figura.Open("paper.pdf").ExtractTo("figures/")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Printf("extracted %d figures\n", n)
//
// With options:
//
//	n, err := figura.Open("paper.pdf").
//	    MaxPages(10).
//	    DPI(300).
//	    WithLogger(logger).
//	    ExtractTo("figures/")
//
// Rendering and page analysis are delegated to the MuPDF command line tools;
// see the mupdf package for the runtime requirements.
package figura

import (
	"github.com/tsawler/figura/pdf"
)

// Open prepares a PDF file for figure extraction and returns an Extractor
// for fluent configuration. The file is not touched until a terminal
// operation such as ExtractTo runs.
//
// Example:
//
//	n, err := figura.Open("paper.pdf").ExtractTo("figures/")
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor from an already-open document. This is
// useful for alternate document providers or for tests. The caller remains
// responsible for closing the document.
//
// Example:
//
//	doc, err := mupdf.Open("paper.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer doc.Close()
//	n, err := figura.FromDocument(doc).ExtractTo("figures/")
func FromDocument(doc pdf.Document) *Extractor {
	return &Extractor{
		doc:       doc,
		ownsDoc:   false,
		docOpened: true,
		options:   defaultOptions(),
	}
}

// ExtractImages extracts every captioned figure from the PDF at path into
// dir using default options, returning the number of figures written.
//
// Example:
//
//	n, err := figura.ExtractImages("paper.pdf", "figures/")
func ExtractImages(path, dir string) (int, error) {
	return Open(path).ExtractTo(dir)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	n := figura.Must(figura.Open("paper.pdf").ExtractTo("figures/"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
