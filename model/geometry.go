package model

import "math"

// Rect represents an axis-aligned rectangle in page coordinates.
// Coordinates are (x0, y0, x1, y1) with the origin at the top-left corner
// of the page and y increasing downward, matching rendered page space.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from its edge coordinates.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Left returns the left edge X coordinate.
func (r Rect) Left() float64 {
	return r.X0
}

// Right returns the right edge X coordinate.
func (r Rect) Right() float64 {
	return r.X1
}

// Top returns the top edge Y coordinate (y increases downward).
func (r Rect) Top() float64 {
	return r.Y0
}

// Bottom returns the bottom edge Y coordinate (y increases downward).
func (r Rect) Bottom() float64 {
	return r.Y1
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Area returns the area of the rectangle. Degenerate rectangles
// (non-positive width or height) have zero area.
func (r Rect) Area() float64 {
	return math.Max(0, r.Width()) * math.Max(0, r.Height())
}

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 {
	return (r.X0 + r.X1) / 2
}

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 {
	return (r.Y0 + r.Y1) / 2
}

// IsValid returns true if the rectangle has positive dimensions.
func (r Rect) IsValid() bool {
	return r.Width() > 0 && r.Height() > 0
}

// VerticalDistance returns the vertical gap between two rectangles.
// It is zero when the rectangles overlap vertically, and otherwise the
// distance between the closer pair of horizontal edges. The result is
// symmetric and never negative.
func (r Rect) VerticalDistance(other Rect) float64 {
	if r.Y1 >= other.Y0 && other.Y1 >= r.Y0 {
		return 0
	}
	if r.Y1 < other.Y0 {
		return other.Y0 - r.Y1
	}
	return r.Y0 - other.Y1
}

// HorizontalOverlap returns the horizontal overlap between two rectangles
// as a ratio of the smaller width, clamped to [0, 1]. The result is
// symmetric, and zero when either width is non-positive.
func (r Rect) HorizontalOverlap(other Rect) float64 {
	overlap := math.Min(r.X1, other.X1) - math.Max(r.X0, other.X0)
	if overlap < 0 {
		overlap = 0
	}

	minWidth := math.Min(r.Width(), other.Width())
	if minWidth <= 0 {
		return 0
	}

	ratio := overlap / minWidth
	if ratio > 1 {
		return 1
	}
	return ratio
}

// Merge returns the smallest rectangle containing both r and other,
// expanded outward by padding on all sides.
func (r Rect) Merge(other Rect, padding float64) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0) - padding,
		Y0: math.Min(r.Y0, other.Y0) - padding,
		X1: math.Max(r.X1, other.X1) + padding,
		Y1: math.Max(r.Y1, other.Y1) + padding,
	}
}

// Clamp intersects the rectangle with the given bounds.
func (r Rect) Clamp(bounds Rect) Rect {
	return Rect{
		X0: math.Max(bounds.X0, r.X0),
		Y0: math.Max(bounds.Y0, r.Y0),
		X1: math.Min(bounds.X1, r.X1),
		Y1: math.Min(bounds.Y1, r.Y1),
	}
}

// Dedupe removes rectangles that are equal after rounding coordinates to
// the given number of decimals, preserving first-seen order. The returned
// rectangles keep their original, unrounded coordinates.
func Dedupe(rects []Rect, precision int) []Rect {
	scale := math.Pow(10, float64(precision))
	round := func(v float64) float64 {
		return math.Round(v*scale) / scale
	}

	seen := make(map[Rect]bool, len(rects))
	unique := make([]Rect, 0, len(rects))

	for _, r := range rects {
		key := Rect{X0: round(r.X0), Y0: round(r.Y0), X1: round(r.X1), Y1: round(r.Y1)}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, r)
	}

	return unique
}
