package mupdf

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tsawler/figura/model"
)

// Structured text as emitted by mutool's stext.json output format. Only the
// fields the pipeline needs are decoded.

type stextDocument struct {
	Pages []stextPage `json:"pages"`
}

type stextPage struct {
	Blocks []stextBlock `json:"blocks"`
}

type stextBlock struct {
	Type  string      `json:"type"`
	BBox  stextBBox   `json:"bbox"`
	Lines []stextLine `json:"lines"`
}

type stextLine struct {
	BBox stextBBox `json:"bbox"`
	Text string    `json:"text"`
}

type stextBBox struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (b stextBBox) rect() model.Rect {
	return model.Rect{X0: b.X, Y0: b.Y, X1: b.X + b.W, Y1: b.Y + b.H}
}

func parseStext(data []byte) (*stextDocument, error) {
	var doc stextDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse structured text: %w", err)
	}
	return &doc, nil
}

// pageBlocks converts one structured-text page into the pipeline's block
// model. Line texts are joined with spaces; hard line breaks inside a block
// are irrelevant to caption matching.
func pageBlocks(page stextPage) []model.Block {
	blocks := make([]model.Block, 0, len(page.Blocks))
	for _, blk := range page.Blocks {
		switch blk.Type {
		case "text":
			var sb strings.Builder
			for i, line := range blk.Lines {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(line.Text)
			}
			blocks = append(blocks, model.Block{
				Type: model.BlockText,
				Rect: blk.BBox.rect(),
				Text: sb.String(),
			})
		case "image":
			blocks = append(blocks, model.Block{
				Type: model.BlockImage,
				Rect: blk.BBox.rect(),
			})
		}
	}
	return blocks
}
