package figura

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tsawler/figura/caption"
	"github.com/tsawler/figura/figure"
	"github.com/tsawler/figura/imaging"
	"github.com/tsawler/figura/model"
	"github.com/tsawler/figura/mupdf"
	"github.com/tsawler/figura/ocr"
	"github.com/tsawler/figura/pdf"
)

// loadedPage holds the data extracted from a single page.
type loadedPage struct {
	number int
	page   pdf.Page
	rect   model.Rect
	blocks []model.Block
	images []model.Rect
}

// Extractor provides a fluent interface for extracting figures from PDFs.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string

	// Document access
	doc pdf.Document

	// Lifecycle
	ownsDoc   bool // true if we opened the document and should close it
	docOpened bool // true if doc has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability, so each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		doc:       e.doc,
		ownsDoc:   e.ownsDoc,
		docOpened: e.docOpened,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// ensureDocument opens the document if not already open.
func (e *Extractor) ensureDocument() error {
	if e.docOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	doc, err := mupdf.Open(e.filename)
	if err != nil {
		return err
	}
	e.doc = doc
	e.ownsDoc = true
	e.docOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsDoc && e.doc != nil {
		err := e.doc.Close()
		e.doc = nil
		e.ownsDoc = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// MaxPages limits how many pages are scanned for figures, counted from the
// start of the document. Values below 1 are ignored.
func (e *Extractor) MaxPages(n int) *Extractor {
	newExt := e.clone()
	if n >= 1 {
		newExt.options.maxPages = n
	}
	return newExt
}

// MaxImages limits how many figures are extracted in total. Values below 1
// are ignored.
func (e *Extractor) MaxImages(n int) *Extractor {
	newExt := e.clone()
	if n >= 1 {
		newExt.options.maxImages = n
	}
	return newExt
}

// DPI sets the rendering resolution for figure images.
func (e *Extractor) DPI(dpi float64) *Extractor {
	newExt := e.clone()
	if dpi > 0 {
		newExt.options.dpi = dpi
	}
	return newExt
}

// CaptionPosition overrides caption position detection, forcing every
// figure's artwork to be looked for on the given side of its caption.
func (e *Extractor) CaptionPosition(pos figure.Position) *Extractor {
	newExt := e.clone()
	newExt.options.position = &pos
	return newExt
}

// WithOCR enables text recognition over each extracted figure image. The
// recognized text is written next to the figure as alt-text. Requires a
// build with the ocr tag; without it every figure logs a warning and the
// alt-text file is skipped.
func (e *Extractor) WithOCR() *Extractor {
	newExt := e.clone()
	newExt.options.ocrAltText = true
	return newExt
}

// WithLogger attaches a logger for per-figure progress and skip reporting.
// The default logger discards everything.
func (e *Extractor) WithLogger(logger *zap.Logger) *Extractor {
	newExt := e.clone()
	if logger != nil {
		newExt.options.logger = logger
	}
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// ExtractTo finds every captioned figure in the document and writes each one
// to dir as a JPEG image plus a text file holding the caption. Files are
// named figure_<id>.jpg and figure_<id>.txt after the figure's caption
// identifier. It returns the number of figures written.
//
// Figures that cannot be resolved or rendered are skipped with a log entry;
// only failures to open the document or create dir abort the run.
func (e *Extractor) ExtractTo(dir string) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureDocument(); err != nil {
		return 0, err
	}
	defer e.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}

	log := e.options.logger

	limit := e.doc.PageCount()
	if limit > e.options.maxPages {
		limit = e.options.maxPages
	}

	// Pages are loaded on demand and at most once, shared between position
	// detection and extraction. Once the figure budget is reached no
	// further page is touched.
	cache := make(map[int]*loadedPage)
	loadPage := func(n int) *loadedPage {
		if lp, ok := cache[n]; ok {
			return lp
		}
		lp := e.loadPage(n)
		cache[n] = lp
		return lp
	}

	position := e.detectPosition(loadPage, limit)
	log.Debug("caption position determined", zap.Stringer("position", position))

	var ocrClient *ocr.Client
	if e.options.ocrAltText {
		var err error
		ocrClient, err = ocr.New()
		if err != nil {
			log.Warn("ocr unavailable, alt-text disabled", zap.Error(err))
		} else {
			defer ocrClient.Close()
		}
	}

	seen := make(map[string]bool)
	count := 0

	for n := 1; n <= limit; n++ {
		if count >= e.options.maxImages {
			break
		}
		lp := loadPage(n)
		if lp == nil {
			continue
		}

		entries := caption.Collect(lp.blocks)
		caption.Annotate(entries, lp.rect)

		for _, idx := range caption.ExtractionOrder(entries) {
			if count >= e.options.maxImages {
				log.Debug("figure limit reached", zap.Int("limit", e.options.maxImages))
				break
			}
			entry := entries[idx]

			if seen[entry.FigureID] {
				log.Debug("duplicate figure id skipped",
					zap.String("id", entry.FigureID), zap.Int("page", lp.number))
				continue
			}

			res := figure.Resolve(figure.Request{
				Caption:  entry,
				Blocks:   lp.blocks,
				Images:   lp.images,
				PageRect: lp.rect,
				Position: position,
			})
			if res.Outcome == figure.OutcomeRejected {
				log.Warn("figure skipped",
					zap.String("id", entry.FigureID),
					zap.Int("page", lp.number),
					zap.String("reason", res.Reason))
				continue
			}

			if err := e.saveFigure(dir, lp, entry, res.Region, ocrClient); err != nil {
				log.Warn("figure not written",
					zap.String("id", entry.FigureID),
					zap.Int("page", lp.number),
					zap.Error(err))
				continue
			}

			log.Debug("figure written",
				zap.String("id", entry.FigureID),
				zap.Int("page", lp.number),
				zap.Stringer("outcome", res.Outcome))
			seen[entry.FigureID] = true
			count++
		}
	}

	return count, nil
}

// loadPage reads blocks and image geometry for one page. It returns nil,
// with a log entry, for a page that fails to load.
func (e *Extractor) loadPage(n int) *loadedPage {
	p, err := e.doc.Page(n)
	if err != nil {
		e.options.logger.Warn("page skipped", zap.Int("page", n), zap.Error(err))
		return nil
	}
	blocks, err := p.Blocks()
	if err != nil {
		e.options.logger.Warn("page skipped", zap.Int("page", n), zap.Error(err))
		return nil
	}
	placements, err := p.ImagePlacements()
	if err != nil {
		e.options.logger.Warn("image placements unavailable",
			zap.Int("page", n), zap.Error(err))
	}
	return &loadedPage{
		number: n,
		page:   p,
		rect:   p.Rect(),
		blocks: blocks,
		images: model.ImageRects(blocks, placements),
	}
}

// detectPosition determines whether this document places figure artwork
// above or below captions. Pages are scanned in order and the first page
// holding both images and captions decides, classified from that page's
// first caption. A single document-wide answer keeps adjacent figures from
// claiming each other's artwork.
func (e *Extractor) detectPosition(load func(int) *loadedPage, limit int) figure.Position {
	if e.options.position != nil {
		return *e.options.position
	}

	for n := 1; n <= limit; n++ {
		lp := load(n)
		if lp == nil || len(lp.images) == 0 {
			continue
		}
		entries := caption.Collect(lp.blocks)
		if len(entries) == 0 {
			continue
		}
		return figure.InferPosition(entries[0].Rect, lp.images)
	}

	return figure.PositionBelow
}

// saveFigure renders the figure region, flattens it to JPEG and writes the
// image and caption files, plus OCR alt-text when available.
func (e *Extractor) saveFigure(dir string, lp *loadedPage, entry caption.Entry, region model.Rect, ocrClient *ocr.Client) error {
	raster, err := lp.page.Render(region, e.options.dpi)
	if err != nil {
		return fmt.Errorf("render figure region: %w", err)
	}
	jpegData, err := imaging.FlattenToJPEG(raster)
	if err != nil {
		return err
	}

	base := filepath.Join(dir, "figure_"+entry.FigureID)
	if err := os.WriteFile(base+".jpg", jpegData, 0o644); err != nil {
		return fmt.Errorf("write figure image: %w", err)
	}
	if err := os.WriteFile(base+".txt", []byte(entry.Description), 0o644); err != nil {
		return fmt.Errorf("write figure caption: %w", err)
	}

	if ocrClient != nil {
		text, err := ocrClient.RecognizeFigure(jpegData)
		if err != nil && !errors.Is(err, ocr.ErrOCRNotEnabled) {
			e.options.logger.Warn("alt-text recognition failed",
				zap.String("id", entry.FigureID), zap.Error(err))
		} else if err == nil && text != "" {
			if err := os.WriteFile(base+".ocr.txt", []byte(text), 0o644); err != nil {
				return fmt.Errorf("write figure alt-text: %w", err)
			}
		}
	}

	return nil
}
