package figure

import (
	"github.com/tsawler/figura/model"
)

// Position indicates where captions sit relative to their figure artwork.
type Position int

const (
	// PositionBelow means captions sit below their artwork. This is the
	// default, matching the common convention in academic papers.
	PositionBelow Position = iota

	// PositionAbove means captions sit above their artwork.
	PositionAbove
)

func (p Position) String() string {
	if p == PositionAbove {
		return "above"
	}
	return "below"
}

// InferPosition classifies the caption position for one page by comparing
// the images above and below the given caption. A side with candidates and
// no competition wins outright; otherwise the side whose nearest qualifying
// image is closer wins, and a complete tie falls back to PositionBelow.
func InferPosition(capRect model.Rect, images []model.Rect) Position {
	if len(images) == 0 {
		return PositionBelow
	}

	var above, below []model.Rect
	for _, img := range images {
		if img.Bottom() <= capRect.Top() {
			above = append(above, img)
		} else if img.Top() >= capRect.Bottom() {
			below = append(below, img)
		}
	}

	if len(above) > 0 && len(below) == 0 {
		return PositionAbove
	}
	if len(below) > 0 && len(above) == 0 {
		return PositionBelow
	}

	closestAbove, okAbove := closestImage(capRect, above)
	closestBelow, okBelow := closestImage(capRect, below)

	switch {
	case okAbove && !okBelow:
		return PositionAbove
	case okBelow && !okAbove:
		return PositionBelow
	case okAbove && okBelow:
		if capRect.VerticalDistance(closestAbove) < capRect.VerticalDistance(closestBelow) {
			return PositionAbove
		}
	}

	return PositionBelow
}
