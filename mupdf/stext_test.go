package mupdf

import (
	"testing"

	"github.com/tsawler/figura/model"
)

const sampleStext = `{
  "pages": [
    {
      "blocks": [
        {
          "type": "text",
          "bbox": {"x": 72, "y": 100, "w": 400, "h": 30},
          "lines": [
            {"bbox": {"x": 72, "y": 100, "w": 400, "h": 14}, "text": "Figure 1"},
            {"bbox": {"x": 72, "y": 116, "w": 300, "h": 14}, "text": "Example diagram."}
          ]
        },
        {
          "type": "image",
          "bbox": {"x": 72, "y": 150, "w": 400, "h": 250}
        }
      ]
    }
  ]
}`

func TestParseStext(t *testing.T) {
	doc, err := parseStext([]byte(sampleStext))
	if err != nil {
		t.Fatalf("parseStext() error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(doc.Pages))
	}

	blocks := pageBlocks(doc.Pages[0])
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}

	if blocks[0].Type != model.BlockText {
		t.Errorf("block 0 type = %v, want %v", blocks[0].Type, model.BlockText)
	}
	if want := "Figure 1 Example diagram."; blocks[0].Text != want {
		t.Errorf("block 0 text = %q, want %q", blocks[0].Text, want)
	}
	if want := (model.Rect{X0: 72, Y0: 100, X1: 472, Y1: 130}); blocks[0].Rect != want {
		t.Errorf("block 0 rect = %v, want %v", blocks[0].Rect, want)
	}

	if blocks[1].Type != model.BlockImage {
		t.Errorf("block 1 type = %v, want %v", blocks[1].Type, model.BlockImage)
	}
	if want := (model.Rect{X0: 72, Y0: 150, X1: 472, Y1: 400}); blocks[1].Rect != want {
		t.Errorf("block 1 rect = %v, want %v", blocks[1].Rect, want)
	}
}

func TestParseStextInvalid(t *testing.T) {
	if _, err := parseStext([]byte("not json")); err == nil {
		t.Error("parseStext() accepted invalid input")
	}
}

func TestMediaBoxPattern(t *testing.T) {
	out := `page 1:
<MediaBox l="0" b="0" r="612" t="792" />
<Rotate v="0" />
page 2:
<MediaBox l="0" b="0" r="595.276" t="841.89" />
`
	matches := mediaBoxPattern.FindAllStringSubmatch(out, -1)
	if len(matches) != 2 {
		t.Fatalf("got %d media boxes, want 2", len(matches))
	}
	if matches[1][3] != "595.276" {
		t.Errorf("page 2 right edge = %q, want %q", matches[1][3], "595.276")
	}
}
