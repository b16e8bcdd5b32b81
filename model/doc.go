// Package model provides the geometric primitives and page data model used
// by the figure-extraction engine.
//
// # Geometry
//
// The [Rect] type is an axis-aligned rectangle in page coordinates with the
// origin at the top-left corner and y increasing downward. All geometric
// operations are pure and total over well-formed rectangles:
//
//   - [Rect.VerticalDistance] - gap between closer edges, zero on overlap
//   - [Rect.HorizontalOverlap] - overlap ratio relative to the smaller width
//   - [Rect.Merge] - padded union of two rectangles
//   - [Rect.Clamp] - intersection with page bounds
//   - [Dedupe] - order-preserving removal of rounded duplicates
//
// # Page content
//
// A page is represented as a flat list of [Block] values tagged text or
// image, each with a bounding box and, for text blocks, the concatenated
// plain text of its lines. [ImageRects] derives the set of candidate image
// regions on a page from inline image blocks and image-object placements.
package model
