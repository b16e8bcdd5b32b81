package model

import "testing"

func TestImageRectsFiltersSmallBlocks(t *testing.T) {
	blocks := []Block{
		{Type: BlockImage, Rect: NewRect(0, 0, 100, 80)},
		{Type: BlockImage, Rect: NewRect(0, 0, 8, 80)},  // too narrow
		{Type: BlockImage, Rect: NewRect(0, 0, 100, 9)}, // too short
		{Type: BlockText, Rect: NewRect(0, 0, 100, 80), Text: "not an image"},
	}

	rects := ImageRects(blocks, nil)
	if len(rects) != 1 {
		t.Fatalf("ImageRects() returned %d rects, want 1", len(rects))
	}
	if rects[0] != NewRect(0, 0, 100, 80) {
		t.Errorf("ImageRects()[0] = %v", rects[0])
	}
}

func TestImageRectsFiltersPlacementsByArea(t *testing.T) {
	placements := []Rect{
		NewRect(0, 0, 50, 50),  // area 2500, kept
		NewRect(0, 0, 10, 10),  // area 100, dropped (not > MinImageSize²)
		NewRect(0, 0, 200, 20), // area 4000, kept even though one axis is short
	}

	rects := ImageRects(nil, placements)
	if len(rects) != 2 {
		t.Fatalf("ImageRects() returned %d rects, want 2", len(rects))
	}
}

func TestImageRectsDedupesBlocksAndPlacements(t *testing.T) {
	blocks := []Block{
		{Type: BlockImage, Rect: NewRect(10, 10, 110, 110)},
	}
	placements := []Rect{
		NewRect(10.01, 10.02, 110.03, 110.04), // same box via placement rect
		NewRect(300, 300, 400, 400),
	}

	rects := ImageRects(blocks, placements)
	if len(rects) != 2 {
		t.Fatalf("ImageRects() returned %d rects, want 2", len(rects))
	}
	// Block rect wins as first-seen.
	if rects[0] != NewRect(10, 10, 110, 110) {
		t.Errorf("ImageRects()[0] = %v, want block rect first", rects[0])
	}
}

func TestBlockTypeString(t *testing.T) {
	if BlockText.String() != "Text" || BlockImage.String() != "Image" {
		t.Errorf("BlockType.String() = %q, %q", BlockText, BlockImage)
	}
	if BlockType(99).String() != "Unknown" {
		t.Errorf("BlockType(99).String() = %q, want Unknown", BlockType(99))
	}
}
