// Package mupdf implements the pdf.Document interface on top of the MuPDF
// command line tools. It shells out to mutool for page counting, structured
// text extraction and page rasterization, so the only runtime requirement is
// a mutool binary on PATH (or named by $MUPDF_BIN).
package mupdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/tsawler/figura/model"
	"github.com/tsawler/figura/pdf"
)

var (
	binPath string
	binOnce sync.Once
	binErr  error
)

// discover searches $MUPDF_BIN, then PATH, for the mutool binary.
func discover() (string, error) {
	binOnce.Do(func() {
		candidates := []string{}
		if env := strings.TrimSpace(os.Getenv("MUPDF_BIN")); env != "" {
			candidates = append(candidates, env)
		}
		exe := "mutool"
		if runtime.GOOS == "windows" {
			exe += ".exe"
		}
		candidates = append(candidates, exe)
		for _, c := range candidates {
			if p, err := exec.LookPath(c); err == nil {
				binPath = p
				return
			}
		}
		binErr = errors.New("mutool not found: install mupdf-tools or set $MUPDF_BIN")
	})
	return binPath, binErr
}

func run(args ...string) ([]byte, error) {
	bin, err := discover()
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("mutool %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// Document wraps one PDF file.
type Document struct {
	path      string
	pageCount int
	pageRects []model.Rect
}

var _ pdf.Document = (*Document)(nil)

// Open validates the file and reads its page geometry. Page content is read
// lazily, one page at a time.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &pdf.OpenError{Path: path, Err: err}
	}
	count, err := pageCount(path)
	if err != nil {
		return nil, &pdf.OpenError{Path: path, Err: err}
	}
	rects, err := pageRects(path, count)
	if err != nil {
		return nil, &pdf.OpenError{Path: path, Err: err}
	}
	return &Document{path: path, pageCount: count, pageRects: rects}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int { return d.pageCount }

// Page returns the page with the given 1-based number.
func (d *Document) Page(n int) (pdf.Page, error) {
	if n < 1 || n > d.pageCount {
		return nil, fmt.Errorf("page %d out of range 1..%d", n, d.pageCount)
	}
	return &page{doc: d, number: n, rect: d.pageRects[n-1]}, nil
}

// Close is a no-op; mutool is invoked per operation and holds no state.
func (d *Document) Close() error { return nil }

func pageCount(path string) (int, error) {
	out, err := run("info", path)
	if err != nil {
		return 0, err
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "Pages:") {
			fields := strings.Fields(line)
			if len(fields) == 2 {
				return strconv.Atoi(fields[1])
			}
		}
	}
	return 0, errors.New("page count not found in info output")
}

var mediaBoxPattern = regexp.MustCompile(
	`<MediaBox l="(-?[\d.]+)" b="(-?[\d.]+)" r="(-?[\d.]+)" t="(-?[\d.]+)"`)

// pageRects parses MediaBox entries from mutool's page listing and converts
// them to top-left-origin bounds.
func pageRects(path string, count int) ([]model.Rect, error) {
	out, err := run("pages", path)
	if err != nil {
		return nil, err
	}
	matches := mediaBoxPattern.FindAllStringSubmatch(string(out), -1)
	if len(matches) < count {
		return nil, fmt.Errorf("found %d media boxes for %d pages", len(matches), count)
	}
	rects := make([]model.Rect, count)
	for i := 0; i < count; i++ {
		vals := make([]float64, 4)
		for j, s := range matches[i][1:5] {
			if vals[j], err = strconv.ParseFloat(s, 64); err != nil {
				return nil, fmt.Errorf("parse media box: %w", err)
			}
		}
		rects[i] = model.Rect{X0: 0, Y0: 0, X1: vals[2] - vals[0], Y1: vals[3] - vals[1]}
	}
	return rects, nil
}

type page struct {
	doc    *Document
	number int
	rect   model.Rect

	loadOnce sync.Once
	blocks   []model.Block
	loadErr  error
}

var _ pdf.Page = (*page)(nil)

// Rect returns the page bounds with the origin at the top-left corner.
func (p *page) Rect() model.Rect { return p.rect }

func (p *page) load() {
	out, err := run("draw", "-F", "stext.json", "-o", "-",
		"-p", strconv.Itoa(p.number), p.doc.path)
	if err != nil {
		p.loadErr = err
		return
	}
	doc, err := parseStext(out)
	if err != nil {
		p.loadErr = err
		return
	}
	if len(doc.Pages) == 0 {
		p.loadErr = fmt.Errorf("no structured text for page %d", p.number)
		return
	}
	p.blocks = pageBlocks(doc.Pages[0])
}

// Blocks returns the page's text and image blocks in content order.
func (p *page) Blocks() ([]model.Block, error) {
	p.loadOnce.Do(p.load)
	return p.blocks, p.loadErr
}

// ImagePlacements returns nil: mutool's structured text already reports
// every placed image as an image block.
func (p *page) ImagePlacements() ([]model.Rect, error) {
	return nil, nil
}

// Render rasterizes the clip region at the given DPI. mutool only renders
// whole pages, so the page is drawn in full and cropped afterwards.
func (p *page) Render(clip model.Rect, dpi float64) ([]byte, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("invalid dpi %v", dpi)
	}
	out, err := run("draw", "-F", "png", "-r", strconv.FormatFloat(dpi, 'f', -1, 64),
		"-o", "-", "-p", strconv.Itoa(p.number), p.doc.path)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("decode page raster: %w", err)
	}

	scale := dpi / 72
	crop := image.Rect(
		int(math.Floor(clip.X0*scale)),
		int(math.Floor(clip.Y0*scale)),
		int(math.Ceil(clip.X1*scale)),
		int(math.Ceil(clip.Y1*scale)),
	).Intersect(img.Bounds())
	if crop.Empty() {
		return nil, fmt.Errorf("clip %v outside page raster", clip)
	}

	sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return nil, fmt.Errorf("page raster %T does not support cropping", img)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, sub.SubImage(crop)); err != nil {
		return nil, fmt.Errorf("encode cropped raster: %w", err)
	}
	return buf.Bytes(), nil
}
