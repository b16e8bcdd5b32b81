package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestFlattenToJPEG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			src.Set(x, y, color.NRGBA{R: 20, G: 40, B: 200, A: 255})
		}
	}

	out, err := FlattenToJPEG(encodePNG(t, src))
	if err != nil {
		t.Fatalf("FlattenToJPEG() error: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a valid jpeg: %v", err)
	}
	if got, want := decoded.Bounds().Size(), image.Pt(40, 30); got != want {
		t.Errorf("output size = %v, want %v", got, want)
	}
}

func TestFlattenToJPEGWhiteBackground(t *testing.T) {
	// Fully transparent source must come out white, not black.
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))

	out, err := FlattenToJPEG(encodePNG(t, src))
	if err != nil {
		t.Fatalf("FlattenToJPEG() error: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	r, g, b, _ := decoded.At(8, 8).RGBA()
	for name, v := range map[string]uint32{"r": r, "g": g, "b": b} {
		if v < 0xf000 {
			t.Errorf("center pixel %s = %#x, want near white", name, v)
		}
	}
}

func TestFlattenToJPEGInvalidInput(t *testing.T) {
	if _, err := FlattenToJPEG([]byte("not an image")); err == nil {
		t.Error("FlattenToJPEG() accepted invalid input")
	}
}
