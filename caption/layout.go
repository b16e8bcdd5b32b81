package caption

import (
	"math"
	"sort"

	"github.com/tsawler/figura/model"
)

const (
	// pageMargin is the assumed margin from the page edges, in points.
	pageMargin = 50

	// columnPadding widens inferred column bounds beyond the caption edges.
	columnPadding = 20

	// neighborOverlap is the minimum horizontal overlap for two captions
	// to be considered vertical neighbors in the same column.
	neighborOverlap = 0.2

	// limitGap keeps a caption's vertical limits just clear of the
	// neighboring caption's edges.
	limitGap = 2

	// fullWidthRatio is the fraction of page width above which a caption
	// is treated as spanning the full page rather than one column.
	fullWidthRatio = 0.6
)

// Annotate computes the layout constraints for every caption on a page:
// column bounds for captions narrower than the page, and top/bottom limits
// from the nearest vertically adjacent caption sharing the same column.
// Entries are modified in place.
func Annotate(entries []Entry, page model.Rect) {
	for i := range entries {
		entries[i].ColumnBounds = columnBounds(entries[i].Rect, page)
	}

	// Pair each caption with its nearest horizontally-overlapping neighbor
	// above and below, scanning in vertical order.
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return entries[order[a]].Rect.Y0 < entries[order[b]].Rect.Y0
	})

	for pos, idx := range order {
		cur := entries[idx].Rect

		for j := pos - 1; j >= 0; j-- {
			other := entries[order[j]].Rect
			if cur.HorizontalOverlap(other) >= neighborOverlap {
				limit := other.Bottom() + limitGap
				entries[idx].TopLimit = &limit
				break
			}
		}

		for j := pos + 1; j < len(order); j++ {
			other := entries[order[j]].Rect
			if cur.HorizontalOverlap(other) >= neighborOverlap {
				limit := other.Top() - limitGap
				entries[idx].BottomLimit = &limit
				break
			}
		}
	}
}

// columnBounds returns the horizontal extent of the caption's column, or
// nil when the caption spans the full page width.
func columnBounds(capRect, page model.Rect) *Span {
	if capRect.Width() >= page.Width()*fullWidthRatio {
		return nil
	}
	return &Span{
		Left:  math.Max(pageMargin, capRect.X0-columnPadding),
		Right: math.Min(page.X1-pageMargin, capRect.X1+columnPadding),
	}
}
