package report

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"shotbook/internal/analyzer"
	"shotbook/internal/config"
	"shotbook/internal/ocr"
)

type fakeEngine struct {
	text string
	err  error
}

func (f *fakeEngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	return f.text, f.err
}

type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}

func writePNG(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 12, 9))
	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
}

func testConfig(t *testing.T, inputDir, outputDir string) *config.Config {
	t.Helper()
	return &config.Config{
		Identity:      "NickoLaygo",
		InputDir:      inputDir,
		OutputDir:     outputDir,
		ImagesPerPage: 3,
	}
}

func newTestBuilder(t *testing.T, cfg *config.Config, engine ocr.Engine, client analyzer.Client) *Builder {
	t.Helper()
	filter, err := ocr.NewNoiseFilter(config.DefaultNoisePatterns)
	if err != nil {
		t.Fatal(err)
	}
	return NewBuilder(cfg,
		ocr.NewExtractor(engine, filter),
		analyzer.New(client, time.Second))
}

func TestBuild_SevenImagesTwoDates(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	// 4 screenshots on Jan 5, 3 on Jan 6, plus one junk file
	for i := 0; i < 4; i++ {
		writePNG(t, inputDir, fmt.Sprintf("Screenshot_2024-01-05-1%d-00-00-123.png", i))
	}
	for i := 0; i < 3; i++ {
		writePNG(t, inputDir, fmt.Sprintf("Screenshot_2024-01-06-1%d-00-00-123.png", i))
	}
	writePNG(t, inputDir, "random.png")

	client := &fakeClient{response: `{"page_name": "One Batangas", "summary": "This post is about a road closure."}`}
	builder := newTestBuilder(t, testConfig(t, inputDir, outputDir), &fakeEngine{text: "One Batangas\nRoad closed"}, client)

	stats, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if stats.Scanned != 7 {
		t.Errorf("Scanned = %d, want 7", stats.Scanned)
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", stats.Skipped)
	}
	// ceil(4/3) + ceil(3/3) pages
	if stats.Pages != 3 {
		t.Errorf("Pages = %d, want 3", stats.Pages)
	}
	if stats.Fallbacks != 0 {
		t.Errorf("Fallbacks = %d, want 0", stats.Fallbacks)
	}

	wantPath := filepath.Join(outputDir, "NickoLaygo - January 05 - January 06.pdf")
	if stats.ReportPath != wantPath {
		t.Errorf("ReportPath = %q, want %q", stats.ReportPath, wantPath)
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Errorf("report file missing: %v", err)
	}
}

func TestBuild_OCRAlwaysFails(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writePNG(t, inputDir, "Screenshot_2024-01-05-10-00-00-123.png")
	writePNG(t, inputDir, "Screenshot_2024-01-05-11-00-00-123.png")

	engine := &fakeEngine{err: errors.New("tesseract unavailable")}
	// Model never gets called: empty OCR text short-circuits to the placeholder
	builder := newTestBuilder(t, testConfig(t, inputDir, outputDir), engine, &fakeClient{err: errors.New("unused")})

	stats, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if stats.OCRFailures != 2 {
		t.Errorf("OCRFailures = %d, want 2", stats.OCRFailures)
	}
	if stats.Fallbacks != 2 {
		t.Errorf("Fallbacks = %d, want 2", stats.Fallbacks)
	}

	wantPath := filepath.Join(outputDir, "NickoLaygo - January 05.pdf")
	if _, err := os.Stat(wantPath); err != nil {
		t.Errorf("run did not complete with a valid PDF: %v", err)
	}
}

func TestBuild_EmptyFolder(t *testing.T) {
	builder := newTestBuilder(t, testConfig(t, t.TempDir(), t.TempDir()), &fakeEngine{}, &fakeClient{})

	stats, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if stats.ReportPath != "" {
		t.Errorf("ReportPath = %q, want empty for an empty run", stats.ReportPath)
	}
	if stats.Pages != 0 {
		t.Errorf("Pages = %d, want 0", stats.Pages)
	}
}

func TestBuild_MissingInputFolderIsFatal(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "nope"), t.TempDir())
	builder := newTestBuilder(t, cfg, &fakeEngine{}, &fakeClient{})

	if _, err := builder.Build(context.Background()); err == nil {
		t.Error("Build() succeeded with a missing input folder, want error")
	}
}

func TestBuild_Idempotent(t *testing.T) {
	inputDir := t.TempDir()
	writePNG(t, inputDir, "Screenshot_2024-01-05-10-00-00-123.png")
	writePNG(t, inputDir, "Screenshot_2024-01-06-10-00-00-123.png")

	client := &fakeClient{response: `{"page_name": "MMDA", "summary": "This post is a traffic advisory."}`}

	var first *Stats
	for i := 0; i < 2; i++ {
		builder := newTestBuilder(t, testConfig(t, inputDir, t.TempDir()), &fakeEngine{text: "MMDA advisory"}, client)
		stats, err := builder.Build(context.Background())
		if err != nil {
			t.Fatalf("Build() run %d error = %v", i, err)
		}
		if first == nil {
			first = stats
			continue
		}
		if filepath.Base(stats.ReportPath) != filepath.Base(first.ReportPath) {
			t.Errorf("filenames differ across runs: %q vs %q", stats.ReportPath, first.ReportPath)
		}
		if stats.Pages != first.Pages || stats.Scanned != first.Scanned {
			t.Errorf("structure differs across runs: %+v vs %+v", stats, first)
		}
	}
}
