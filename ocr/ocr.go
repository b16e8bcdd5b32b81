//go:build ocr

// Package ocr recognizes text inside extracted figure images, such as axis
// labels, legends and panel annotations, so figures can carry searchable
// alt-text alongside their caption.
//
// It wraps the Tesseract engine via gosseract and requires Tesseract to be
// installed on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps a Tesseract session.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client. Close it when done to release the Tesseract
// session.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases the underlying Tesseract session.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the recognition language(s). Multiple languages join
// with "+", for example "eng+deu". The default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeFigure runs OCR over an encoded figure image and returns the
// recognized text, one line per text fragment, trimmed of surrounding
// whitespace. Figures hold sparse, scattered text rather than running
// paragraphs, so sparse-text segmentation is used.
func (c *Client) RecognizeFigure(imageData []byte) (string, error) {
	if err := c.client.SetPageSegMode(gosseract.PSM_SPARSE_TEXT); err != nil {
		return "", fmt.Errorf("set segmentation mode: %w", err)
	}
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("set figure image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize figure text: %w", err)
	}

	return strings.TrimSpace(text), nil
}
