package report

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Registered for image.DecodeConfig dimension probing
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shotbook/internal/analyzer"
	"shotbook/internal/config"
	"shotbook/internal/layout"
	"shotbook/internal/logger"
	"shotbook/internal/ocr"
	"shotbook/internal/screenshot"
)

// Stats summarizes one build run for the user: what was processed, what was
// skipped, and where degraded fallbacks kicked in.
type Stats struct {
	Scanned     int // screenshots with a parseable timestamp
	Skipped     int // files excluded for unrecognized names
	OCRFailures int // images the OCR engine could not read
	Fallbacks   int // images whose context came from the placeholder
	Pages       int
	ReportPath  string // empty when nothing was produced
}

// Builder runs the whole pipeline: scan, group, extract, analyze, lay out,
// render. One Builder per configuration; Build may be called repeatedly.
type Builder struct {
	cfg       *config.Config
	extractor *ocr.Extractor
	analyzer  *analyzer.Analyzer
}

func NewBuilder(cfg *config.Config, extractor *ocr.Extractor, an *analyzer.Analyzer) *Builder {
	return &Builder{cfg: cfg, extractor: extractor, analyzer: an}
}

// Build produces one PDF report spanning every date found in the input
// folder. Everything except reading the input folder and writing the output
// file is absorbed with a warning; the run always renders whatever succeeded.
func (b *Builder) Build(ctx context.Context) (*Stats, error) {
	runID := uuid.New().String()
	log := logger.GetLogger().WithField("run", runID[:8])

	files, skipped, err := screenshot.Scan(b.cfg.InputDir)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Scanned: len(files), Skipped: skipped}
	if len(files) == 0 {
		log.Warnf("No screenshots found in %s, nothing to do", b.cfg.InputDir)
		return stats, nil
	}

	groups := screenshot.GroupByDate(files)
	log.Infof("Building report for %d screenshots across %d dates", len(files), len(groups))

	var pages []layout.Page
	for _, group := range groups {
		items := b.analyzeGroup(ctx, log, group, stats)
		pages = append(pages, layout.Paginate(group.Date, items, b.cfg.ImagesPerPage)...)
	}
	stats.Pages = len(pages)

	if err := b.cfg.EnsureOutputDir(); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	minDate := groups[0].Date
	maxDate := groups[len(groups)-1].Date
	outPath := filepath.Join(b.cfg.OutputDir, Filename(b.cfg.Identity, minDate, maxDate))

	renderer := NewRenderer()
	for _, p := range pages {
		renderer.AddPage(p)
	}
	if err := renderer.WriteFile(outPath); err != nil {
		return nil, err
	}
	stats.ReportPath = outPath

	log.Infof("Report written to %s (%d pages, %d skipped, %d OCR failures, %d fallbacks)",
		outPath, stats.Pages, stats.Skipped, stats.OCRFailures, stats.Fallbacks)

	return stats, nil
}

// analyzeGroup runs OCR and context analysis over one date group, in group
// order, producing layout-ready items.
func (b *Builder) analyzeGroup(ctx context.Context, log *logrus.Entry, group screenshot.Group, stats *Stats) []layout.Item {
	items := make([]layout.Item, 0, len(group.Files))
	for _, f := range group.Files {
		text, err := b.extractor.Extract(ctx, f.Path)
		if err != nil {
			stats.OCRFailures++
		}

		pc, fromModel := b.analyzer.Analyze(ctx, text)
		if !fromModel {
			stats.Fallbacks++
		}

		w, h := probeSize(f.Path)
		if w == 0 {
			log.Warnf("Could not read dimensions of %s, assuming default aspect", f.Name)
		}

		items = append(items, layout.Item{
			Path:    f.Path,
			Width:   w,
			Height:  h,
			Source:  pc.Source,
			Summary: pc.Summary,
		})
	}
	return items
}

// probeSize reads just the image header for pixel dimensions. Zeroes mean
// unknown and select the layout engine's default aspect.
func probeSize(path string) (int, int) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
