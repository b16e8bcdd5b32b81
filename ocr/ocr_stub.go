//go:build !ocr

// Package ocr recognizes text inside extracted figure images, such as axis
// labels, legends and panel annotations, so figures can carry searchable
// alt-text alongside their caption.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All operations return ErrOCRNotEnabled. To enable recognition, rebuild
// with the "ocr" build tag:
//
//	go build -tags ocr
//
// which requires Tesseract to be installed on the system.
package ocr

import "errors"

// ErrOCRNotEnabled is returned when recognition is requested but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub that returns ErrOCRNotEnabled for all operations.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op. It is safe to call on a nil client.
func (c *Client) Close() error { return nil }

// SetLanguage returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(lang string) error { return ErrOCRNotEnabled }

// RecognizeFigure returns ErrOCRNotEnabled.
func (c *Client) RecognizeFigure(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}
