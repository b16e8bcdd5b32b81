// Package imaging converts rendered page rasters into the final figure
// output format. Page renders can carry an alpha channel; output figures are
// opaque JPEGs, so transparency is flattened onto a white background before
// encoding.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// jpegQuality keeps encoding effectively lossless for line art and plots.
const jpegQuality = 100

// FlattenToJPEG decodes a raster image, composites it over a white
// background and returns it encoded as JPEG.
func FlattenToJPEG(raster []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raster))
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("empty raster %v", bounds)
	}

	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, bounds, src, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
