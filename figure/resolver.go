// Package figure resolves the page region containing a figure's artwork.
//
// Resolution works caption-by-caption. When an image object with suitable
// geometry exists near the caption, its bounding box (expanded with any
// neighboring panels) is trusted directly. When no image object qualifies —
// typically a vector-drawn figure with no extractable image object — a
// fallback region is synthesized from the surrounding text-block layout.
// Either way the region is merged with the caption before rendering, and
// degenerate results are rejected.
package figure

import (
	"fmt"
	"math"

	"github.com/tsawler/figura/caption"
	"github.com/tsawler/figura/model"
)

const (
	// maxVerticalDistance caps how far, in points, a matched image may sit
	// from its caption.
	maxVerticalDistance = 200

	// minMatchOverlap is the horizontal overlap required for an image to
	// be matched to a caption.
	minMatchOverlap = 0.3

	// minSideOverlap is the looser overlap used when filtering candidates
	// to the caption side of the page.
	minSideOverlap = 0.1

	// mergeGap and mergeOverlap control when neighboring image objects are
	// absorbed into a matched region (multi-panel figures).
	mergeGap     = 20
	mergeOverlap = 0.2

	// pageMargin is the assumed margin from page edges used by the
	// layout fallback.
	pageMargin = 50

	// sideSlack tolerates captions that slightly overlap their artwork.
	sideSlack = 5

	// Minimum dimensions for a usable figure region.
	minRegionWidth  = 50
	minRegionHeight = 30

	// fallbackMinHeight and fallbackReach widen degenerate fallback
	// regions upward.
	fallbackMinHeight = 50
	fallbackReach     = 200
)

// Outcome distinguishes how a figure region was resolved.
type Outcome int

const (
	// OutcomeRejected means no usable region could be determined.
	OutcomeRejected Outcome = iota

	// OutcomeImageMatched means the region came from detected image
	// geometry and is trusted as-is.
	OutcomeImageMatched

	// OutcomeFallback means the region was synthesized from page layout
	// and had column/limit constraints re-applied.
	OutcomeFallback
)

func (o Outcome) String() string {
	switch o {
	case OutcomeImageMatched:
		return "image-matched"
	case OutcomeFallback:
		return "fallback"
	default:
		return "rejected"
	}
}

// Resolution is the result of resolving one caption's figure region.
type Resolution struct {
	Outcome Outcome
	Region  model.Rect // final region including the caption; zero when rejected
	Reason  string     // set when rejected
}

// Request carries everything needed to resolve one caption's figure region.
type Request struct {
	Caption  caption.Entry
	Blocks   []model.Block // all blocks on the page
	Images   []model.Rect  // de-duplicated image bboxes on the page
	PageRect model.Rect
	Position Position // document-wide caption position
}

// Resolve determines the region of the page containing the figure described
// by the request's caption. The result is deterministic for identical input.
func Resolve(req Request) Resolution {
	capRect := req.Caption.Rect

	side := candidateImages(req)

	var region model.Rect
	var outcome Outcome

	if closest, ok := closestImage(capRect, side); ok {
		region = expandWithNeighbors(closest, side).Clamp(req.PageRect)
		outcome = OutcomeImageMatched
	} else {
		region = fallbackRegion(req)
		outcome = OutcomeFallback
	}

	if region.Width() < minRegionWidth || region.Height() < minRegionHeight {
		return Resolution{
			Outcome: OutcomeRejected,
			Reason: fmt.Sprintf("figure region too small: %.1fx%.1f",
				region.Width(), region.Height()),
		}
	}

	combined := region.Merge(capRect, 5).Clamp(req.PageRect)

	// An image match is trusted; a fallback region is re-clamped so the
	// caption merge cannot push it past page-layout boundaries.
	if outcome == OutcomeFallback {
		combined = clampToColumn(combined, req.Caption.ColumnBounds)
		if tl := req.Caption.TopLimit; tl != nil && *tl < capRect.Top() {
			combined.Y0 = math.Max(combined.Y0, *tl)
		}
	}

	if combined.Width() < minRegionWidth || combined.Height() < minRegionHeight {
		return Resolution{
			Outcome: OutcomeRejected,
			Reason: fmt.Sprintf("combined region too small: %.1fx%.1f",
				combined.Width(), combined.Height()),
		}
	}

	return Resolution{Outcome: outcome, Region: combined}
}

// candidateImages filters the page's images down to those that could belong
// to the caption: below the previous figure's boundary, inside the caption's
// column, and on the document's caption side of this caption.
func candidateImages(req Request) []model.Rect {
	capRect := req.Caption.Rect
	candidates := req.Images

	if tl := req.Caption.TopLimit; tl != nil {
		kept := candidates[:0:0]
		for _, img := range candidates {
			if img.Bottom() >= *tl+2 {
				kept = append(kept, img)
			}
		}
		candidates = kept
	}

	if cb := req.Caption.ColumnBounds; cb != nil {
		kept := candidates[:0:0]
		for _, img := range candidates {
			cx := img.CenterX()
			if cx >= cb.Left && cx <= cb.Right && img.HorizontalOverlap(capRect) >= mergeOverlap {
				kept = append(kept, img)
			}
		}
		candidates = kept
	}

	var side []model.Rect
	for _, img := range candidates {
		if img.HorizontalOverlap(capRect) < minSideOverlap {
			continue
		}
		if req.Position == PositionAbove {
			if img.Bottom() <= capRect.Top()+sideSlack {
				side = append(side, img)
			}
		} else {
			if img.Top() >= capRect.Bottom()-sideSlack {
				side = append(side, img)
			}
		}
	}

	return side
}

// closestImage returns the image nearest the caption by vertical distance,
// subject to the distance cap and minimum horizontal overlap. Ties resolve
// to the first candidate in page order.
func closestImage(capRect model.Rect, images []model.Rect) (model.Rect, bool) {
	var best model.Rect
	bestDistance := math.Inf(1)
	found := false

	for _, img := range images {
		dist := capRect.VerticalDistance(img)
		if dist > maxVerticalDistance {
			continue
		}
		if capRect.HorizontalOverlap(img) < minMatchOverlap {
			continue
		}
		if dist < bestDistance {
			bestDistance = dist
			best = img
			found = true
		}
	}

	return best, found
}

// expandWithNeighbors grows a matched image region by absorbing nearby or
// horizontally-overlapping images, handling multi-panel figures that are
// split across several image objects.
func expandWithNeighbors(base model.Rect, images []model.Rect) model.Rect {
	merged := base
	for _, img := range images {
		if img == base {
			continue
		}
		if merged.VerticalDistance(img) <= mergeGap || merged.HorizontalOverlap(img) >= mergeOverlap {
			merged = merged.Merge(img, 2)
		}
	}
	return merged
}

// fallbackRegion synthesizes a figure region from the page layout when no
// image object matched the caption: the vertical span between the nearest
// preceding text block and the caption, at full page width, clamped to the
// caption's column and neighbor limits.
func fallbackRegion(req Request) model.Rect {
	capRect := req.Caption.Rect

	// Nearest text block bottom edge above the caption.
	nearestTextBottom := float64(pageMargin)
	for _, blk := range req.Blocks {
		if blk.Type != model.BlockText {
			continue
		}
		if blk.Rect.Bottom() >= capRect.Top()-sideSlack {
			continue
		}
		if blk.Rect.Height() < 10 {
			continue
		}
		nearestTextBottom = math.Max(nearestTextBottom, blk.Rect.Bottom())
	}

	top := nearestTextBottom + 5
	bottom := capRect.Top() - 2

	if tl := req.Caption.TopLimit; tl != nil {
		top = math.Max(top, *tl)
	}
	if bl := req.Caption.BottomLimit; bl != nil {
		bottom = math.Min(bottom, *bl)
	}

	// A degenerate span usually means the figure fills most of the space
	// above; widen upward.
	if bottom-top < fallbackMinHeight {
		top = math.Max(pageMargin, bottom-fallbackReach)
	}

	region := model.Rect{
		X0: pageMargin,
		Y0: top,
		X1: req.PageRect.X1 - pageMargin,
		Y1: bottom,
	}
	region = region.Clamp(req.PageRect)

	region = clampToColumn(region, req.Caption.ColumnBounds)
	if tl := req.Caption.TopLimit; tl != nil {
		region.Y0 = math.Max(region.Y0, *tl)
	}
	if bl := req.Caption.BottomLimit; bl != nil {
		region.Y1 = math.Min(region.Y1, *bl)
	}

	return region
}

func clampToColumn(r model.Rect, cb *caption.Span) model.Rect {
	if cb == nil {
		return r
	}
	r.X0 = math.Max(r.X0, cb.Left)
	r.X1 = math.Min(r.X1, cb.Right)
	return r
}
