package model

// MinImageSize is the minimum width and height, in points, for an image
// block to be considered a significant piece of figure artwork.
const MinImageSize = 10

// BlockType represents the type of page block
type BlockType int

const (
	BlockText BlockType = iota
	BlockImage
)

func (bt BlockType) String() string {
	switch bt {
	case BlockText:
		return "Text"
	case BlockImage:
		return "Image"
	default:
		return "Unknown"
	}
}

// Block is a single content block on a page: either a text block carrying
// the concatenated plain text of its lines, or an image block.
type Block struct {
	Type BlockType
	Rect Rect
	Text string // concatenated text, empty for image blocks
}

// ImageRects collects the bounding boxes believed to contain raster or
// vector images on a page. It combines inline image blocks (filtered by
// MinImageSize on both axes) with image-object placement rectangles
// (filtered by area), then de-duplicates the result at 1 decimal of
// coordinate precision.
func ImageRects(blocks []Block, placements []Rect) []Rect {
	var rects []Rect

	for _, blk := range blocks {
		if blk.Type != BlockImage {
			continue
		}
		if blk.Rect.Width() <= MinImageSize || blk.Rect.Height() <= MinImageSize {
			continue
		}
		rects = append(rects, blk.Rect)
	}

	for _, r := range placements {
		if r.Area() <= MinImageSize*MinImageSize {
			continue
		}
		rects = append(rects, r)
	}

	return Dedupe(rects, 1)
}
