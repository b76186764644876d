package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"shotbook/internal/layout"
	"shotbook/internal/logger"
)

const (
	sourceLineHeight  = 5.0
	summaryLineHeight = 4.0
)

// Renderer draws layout pages onto a landscape A4 PDF document.
type Renderer struct {
	pdf *fpdf.Fpdf
}

func NewRenderer() *Renderer {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	return &Renderer{pdf: pdf}
}

// AddPage renders one laid-out page: date header, image row, and per-image
// captions. A broken image file costs only its own slot, not the document.
func (r *Renderer) AddPage(p layout.Page) {
	r.pdf.AddPage()

	title := fmt.Sprintf("Date: %s", p.Date.Format("2006-01-02"))
	if p.Parts > 1 {
		title += fmt.Sprintf(" - Part %d", p.Part)
	}
	r.pdf.SetFont("Helvetica", "B", 16)
	r.pdf.SetXY(layout.Margin, layout.Margin)
	r.pdf.CellFormat(layout.PageWidth-2*layout.Margin, 12, title, "", 1, "C", false, 0, "")

	for _, cell := range p.Cells {
		r.drawImage(cell)
		r.drawCaption(cell)
	}
}

func (r *Renderer) drawImage(cell layout.Cell) {
	rect := cell.Image
	r.pdf.ImageOptions(cell.Item.Path, rect.X, rect.Y, rect.W, rect.H, false,
		fpdf.ImageOptions{ReadDpi: true}, 0, "")
	if r.pdf.Err() {
		logger.GetLogger().Warnf("Failed to draw %s, leaving its slot empty: %v", cell.Item.Path, r.pdf.Error())
		r.pdf.ClearError()
	}
}

// drawCaption places the source label and summary in the cell's column,
// wrapping to the column width and truncating whatever would overflow the
// caption band.
func (r *Renderer) drawCaption(cell layout.Cell) {
	rect := cell.Caption
	y := rect.Y

	r.pdf.SetFont("Helvetica", "B", 9)
	source := fmt.Sprintf("Source: %s", cell.Item.Source)
	for _, line := range r.fitLines(source, rect.W, 1) {
		r.pdf.SetXY(rect.X, y)
		r.pdf.CellFormat(rect.W, sourceLineHeight, line, "", 0, "L", false, 0, "")
		y += sourceLineHeight
	}

	r.pdf.SetFont("Helvetica", "", 8)
	maxLines := int((rect.Y + rect.H - y) / summaryLineHeight)
	for _, line := range r.fitLines(cell.Item.Summary, rect.W, maxLines) {
		r.pdf.SetXY(rect.X, y)
		r.pdf.CellFormat(rect.W, summaryLineHeight, line, "", 0, "L", false, 0, "")
		y += summaryLineHeight
	}
}

// fitLines wraps text to the given width in the current font and keeps at
// most maxLines of it.
func (r *Renderer) fitLines(text string, width float64, maxLines int) []string {
	if maxLines < 1 {
		return nil
	}
	lines := r.pdf.SplitText(text, width)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// WriteFile finalizes the document. Failing here is fatal for the run: a
// report that cannot be written is the one error no fallback papers over.
func (r *Renderer) WriteFile(path string) error {
	if err := r.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
