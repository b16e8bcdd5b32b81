// Package caption classifies text blocks as figure captions and extracts
// figure identifiers from them.
//
// A caption is a text block that describes a figure ("Figure 6 Geometry of
// STEM embeddings. (a) ..."), as opposed to a sentence in the prose that
// merely references one ("Figure 6 shows that embeddings exhibit..."). The
// detector distinguishes the two by the words that follow the figure number.
package caption

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/figura/model"
)

// Span is a horizontal extent (left, right) in page coordinates.
type Span struct {
	Left, Right float64
}

// Entry describes one detected figure caption on a page.
type Entry struct {
	// FigureID is the identifier following the Figure/Fig. token,
	// e.g. "6" or "10b".
	FigureID string

	// Rect is the bounding box of the caption text block.
	Rect model.Rect

	// Description is the whitespace-normalized text of the whole block.
	Description string

	// ColumnBounds is the inferred horizontal extent of the figure's
	// column, set when the caption occupies less than 60% of the page
	// width. Nil for full-width captions.
	ColumnBounds *Span

	// TopLimit and BottomLimit are vertical boundaries derived from the
	// nearest vertically adjacent captions in the same column, preventing
	// one figure's region from bleeding into a neighbor's. Nil when there
	// is no such neighbor.
	TopLimit    *float64
	BottomLimit *float64
}

var (
	// Caption prefix: "Figure 6", "Fig. 10b", "FIG 3", etc.
	prefixPattern = regexp.MustCompile(`^(?i:Figure|Fig\.?)\s*([0-9]+[A-Za-z]?)`)
	idPattern     = regexp.MustCompile(`(?i:Figure|Fig\.?)\s*([0-9]+[A-Za-z]?)`)

	// Verbs that indicate a textual reference to a figure rather than its
	// caption, anchored at the start of the text after the figure number.
	referencePattern = regexp.MustCompile(`(?i)^(shows?|demonstrates?|illustrates?|presents?|depicts?|displays?|` +
		`contains?|provides?|gives?|describes?|summarizes?|compares?|` +
		`plots?|reports?|indicates?|confirms?|reveals?|highlights?|` +
		`is\s+a\s|is\s+an\s|is\s+the\s|are\s|was\s|were\s|has\s|have\s|` +
		`can\s+be\s|should\s+be\s|also\s)`)

	// Captions typically continue with a capitalized word, a parenthesized
	// panel label, or a punctuation separator. Deliberately case-sensitive.
	captionStartPattern = regexp.MustCompile(`^([A-Z(\[]|[:.]\s*[A-Za-z(])`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize returns block text in NFC form with runs of whitespace
// collapsed to single spaces and surrounding whitespace trimmed.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// IsFigureCaption reports whether text is an actual figure caption rather
// than an in-text reference to a figure.
func IsFigureCaption(text string) bool {
	loc := prefixPattern.FindStringIndex(text)
	if loc == nil {
		return false
	}

	rest := strings.TrimSpace(text[loc[1]:])

	if referencePattern.MatchString(rest) {
		return false
	}

	// A bare "Figure X" block is unusual but accepted.
	if rest == "" {
		return true
	}

	return captionStartPattern.MatchString(rest)
}

// ExtractFigureID returns the figure identifier following the first
// Figure/Fig. token in text, or "" if none is found.
func ExtractFigureID(text string) string {
	m := idPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// Collect returns a caption entry for every text block whose normalized
// text is a figure caption with a parseable identifier. Blocks without an
// identifier are dropped.
func Collect(blocks []model.Block) []Entry {
	var entries []Entry

	for _, blk := range blocks {
		if blk.Type != model.BlockText {
			continue
		}

		text := Normalize(blk.Text)
		if !IsFigureCaption(text) {
			continue
		}

		id := ExtractFigureID(text)
		if id == "" {
			continue
		}

		entries = append(entries, Entry{
			FigureID:    id,
			Rect:        blk.Rect,
			Description: text,
		})
	}

	return entries
}
