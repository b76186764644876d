// Package layout partitions a date group's images into fixed-size pages and
// computes where everything lands on a landscape A4 sheet. It is pure
// geometry: no I/O, no drawing.
package layout

import "time"

// Page geometry in millimeters, A4 landscape.
const (
	PageWidth  = 297.0
	PageHeight = 210.0
	Margin     = 10.0
	TitleBand  = 16.0 // header row under the top margin
	CaptionGap = 4.0  // gap between image row and captions
	Spacing    = 5.0  // horizontal gap between images

	// CaptionBand is reserved at the bottom of the page for per-image
	// source labels and summaries.
	CaptionBand = 40.0

	// DefaultAspect (height/width) stands in for images whose dimensions
	// could not be read.
	DefaultAspect = 0.75
)

// imageBand is the vertical space available to the image row.
const imageBand = PageHeight - Margin - TitleBand - CaptionBand - Margin

// Rect is a draw rectangle: origin at the page's top-left, mm units.
type Rect struct {
	X, Y, W, H float64
}

// Item is one image with its analysis results, ready for placement.
// Width/Height are pixel dimensions; zero or negative values mean unknown
// and fall back to DefaultAspect.
type Item struct {
	Path    string
	Width   int
	Height  int
	Source  string
	Summary string
}

// Cell is one placed item: where its image draws and where its caption text
// goes.
type Cell struct {
	Item    Item
	Image   Rect
	Caption Rect
}

// Page is one rendered sheet: up to the configured number of images from a
// single date, in group order.
type Page struct {
	Date  time.Time
	Part  int // 1-based index within the date group
	Parts int // total pages produced for the group
	Cells []Cell
}

// Paginate splits items into consecutive chunks of at most perPage and lays
// each chunk out as one page. ceil(len(items)/perPage) pages come back;
// concatenating their cells reproduces the input order exactly.
func Paginate(date time.Time, items []Item, perPage int) []Page {
	if perPage < 1 {
		perPage = 1
	}
	if len(items) == 0 {
		return nil
	}

	parts := (len(items) + perPage - 1) / perPage
	pages := make([]Page, 0, parts)
	for i := 0; i < len(items); i += perPage {
		end := i + perPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, Page{
			Date:  date,
			Part:  len(pages) + 1,
			Parts: parts,
			Cells: layoutRow(items[i:end]),
		})
	}

	return pages
}

// layoutRow places a chunk of images side by side: each scaled to fit its
// column while preserving aspect ratio, the whole row scaled down further if
// the tallest image would overflow the image band, then centered.
func layoutRow(items []Item) []Cell {
	n := len(items)
	targetW := (PageWidth - 2*Margin - Spacing*float64(n-1)) / float64(n)

	heights := make([]float64, n)
	maxH := 0.0
	for i, it := range items {
		h := targetW * aspect(it)
		heights[i] = h
		if h > maxH {
			maxH = h
		}
	}

	scale := 1.0
	if maxH > imageBand {
		scale = imageBand / maxH
	}

	finalW := targetW * scale
	rowW := finalW*float64(n) + Spacing*float64(n-1)
	x := (PageWidth - rowW) / 2
	imgY := Margin + TitleBand
	captionY := imgY + maxH*scale + CaptionGap
	captionH := PageHeight - Margin - captionY

	cells := make([]Cell, n)
	for i, it := range items {
		cells[i] = Cell{
			Item:    it,
			Image:   Rect{X: x, Y: imgY, W: finalW, H: heights[i] * scale},
			Caption: Rect{X: x, Y: captionY, W: finalW, H: captionH},
		}
		x += finalW + Spacing
	}

	return cells
}

// aspect returns height/width, falling back for degenerate dimensions.
func aspect(it Item) float64 {
	if it.Width <= 0 || it.Height <= 0 {
		return DefaultAspect
	}
	return float64(it.Height) / float64(it.Width)
}
