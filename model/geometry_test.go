package model

import (
	"math"
	"testing"
)

func TestRectEdgesAndCenters(t *testing.T) {
	r := NewRect(10, 20, 110, 70)

	if r.Left() != 10 || r.Right() != 110 || r.Top() != 20 || r.Bottom() != 70 {
		t.Errorf("edges = (%v, %v, %v, %v), want (10, 110, 20, 70)",
			r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("size = %vx%v, want 100x50", r.Width(), r.Height())
	}
	if r.CenterX() != 60 {
		t.Errorf("CenterX() = %v, want 60", r.CenterX())
	}
	if r.CenterY() != 45 {
		t.Errorf("CenterY() = %v, want 45", r.CenterY())
	}
}

func TestRectArea(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want float64
	}{
		{"normal", NewRect(0, 0, 10, 5), 50},
		{"zero width", NewRect(5, 0, 5, 10), 0},
		{"inverted x", NewRect(10, 0, 0, 10), 0},
		{"inverted y", NewRect(0, 10, 10, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Area(); got != tt.want {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerticalDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want float64
	}{
		{"a above b", NewRect(0, 0, 100, 50), NewRect(0, 80, 100, 120), 30},
		{"touching", NewRect(0, 0, 100, 50), NewRect(0, 50, 100, 100), 0},
		{"overlapping", NewRect(0, 0, 100, 60), NewRect(0, 40, 100, 100), 0},
		{"contained", NewRect(0, 0, 100, 100), NewRect(10, 20, 90, 80), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.VerticalDistance(tt.b)
			if got != tt.want {
				t.Errorf("VerticalDistance() = %v, want %v", got, tt.want)
			}
			// Must be symmetric and never negative.
			if rev := tt.b.VerticalDistance(tt.a); rev != got {
				t.Errorf("VerticalDistance not symmetric: %v vs %v", got, rev)
			}
			if got < 0 {
				t.Errorf("VerticalDistance() = %v, want non-negative", got)
			}
		})
	}
}

func TestHorizontalOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want float64
	}{
		{"identical", NewRect(0, 0, 100, 10), NewRect(0, 50, 100, 60), 1},
		{"half of smaller", NewRect(0, 0, 100, 10), NewRect(75, 0, 125, 10), 0.5},
		{"disjoint", NewRect(0, 0, 50, 10), NewRect(60, 0, 100, 10), 0},
		{"contained smaller", NewRect(0, 0, 200, 10), NewRect(50, 0, 100, 10), 1},
		{"zero width", NewRect(0, 0, 0, 10), NewRect(0, 0, 100, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.HorizontalOverlap(tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HorizontalOverlap() = %v, want %v", got, tt.want)
			}
			if rev := tt.b.HorizontalOverlap(tt.a); math.Abs(rev-got) > 1e-9 {
				t.Errorf("HorizontalOverlap not symmetric: %v vs %v", got, rev)
			}
			if got < 0 || got > 1 {
				t.Errorf("HorizontalOverlap() = %v, want within [0,1]", got)
			}
		})
	}
}

func TestMergeContainsBoth(t *testing.T) {
	a := NewRect(10, 10, 50, 50)
	b := NewRect(40, 60, 120, 90)

	merged := a.Merge(b, 0)

	for _, r := range []Rect{a, b} {
		if merged.X0 > r.X0 || merged.Y0 > r.Y0 || merged.X1 < r.X1 || merged.Y1 < r.Y1 {
			t.Errorf("Merge(%v, 0) = %v does not contain %v", b, merged, r)
		}
	}
}

func TestMergePadding(t *testing.T) {
	a := NewRect(10, 10, 50, 50)
	b := NewRect(20, 20, 40, 40)

	merged := a.Merge(b, 5)
	want := NewRect(5, 5, 55, 55)
	if merged != want {
		t.Errorf("Merge() = %v, want %v", merged, want)
	}
}

func TestClamp(t *testing.T) {
	page := NewRect(0, 0, 612, 792)

	r := NewRect(-10, -5, 700, 800)
	if got := r.Clamp(page); got != page {
		t.Errorf("Clamp() = %v, want %v", got, page)
	}

	inside := NewRect(100, 100, 200, 200)
	if got := inside.Clamp(page); got != inside {
		t.Errorf("Clamp() = %v, want %v (unchanged)", got, inside)
	}
}

func TestDedupe(t *testing.T) {
	rects := []Rect{
		NewRect(10.01, 20.02, 30.03, 40.04),
		NewRect(10.04, 20.04, 30.04, 40.04), // same after rounding to 1 decimal
		NewRect(10.2, 20.0, 30.0, 40.0),     // differs in X0
	}

	unique := Dedupe(rects, 1)
	if len(unique) != 2 {
		t.Fatalf("Dedupe() returned %d rects, want 2", len(unique))
	}
	// First-seen order preserved, original coordinates kept.
	if unique[0] != rects[0] {
		t.Errorf("Dedupe()[0] = %v, want %v", unique[0], rects[0])
	}
	if unique[1] != rects[2] {
		t.Errorf("Dedupe()[1] = %v, want %v", unique[1], rects[2])
	}
}

func TestDedupeEmpty(t *testing.T) {
	if got := Dedupe(nil, 1); len(got) != 0 {
		t.Errorf("Dedupe(nil) = %v, want empty", got)
	}
}
