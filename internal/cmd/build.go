package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shotbook/internal/analyzer"
	"shotbook/internal/config"
	"shotbook/internal/logger"
	"shotbook/internal/ocr"
	"shotbook/internal/report"
)

var buildConfigPath string
var buildInput string
var buildOutput string
var buildIdentity string
var buildPerPage int
var buildModel string

func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a PDF report from the screenshot folder",
		Long:  "Scans the input folder for timestamped screenshots, groups them by capture date, OCRs and summarizes each image, and writes one paginated PDF spanning the full date range found.",
		RunE:  runBuild,
	}

	cmd.Flags().StringVarP(&buildConfigPath, "config", "c", "", "Path to config file")
	cmd.Flags().StringVarP(&buildInput, "input", "i", "", "Screenshot folder (overrides config)")
	cmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output folder for the PDF (overrides config)")
	cmd.Flags().StringVar(&buildIdentity, "identity", "", "Name used in the report filename (overrides config)")
	cmd.Flags().IntVarP(&buildPerPage, "per-page", "n", 0, "Images per page (overrides config)")
	cmd.Flags().StringVarP(&buildModel, "model", "m", "", "LLM model identifier (overrides config)")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if buildInput != "" {
		cfg.InputDir = buildInput
	}
	if buildOutput != "" {
		cfg.OutputDir = buildOutput
	}
	if buildIdentity != "" {
		cfg.Identity = buildIdentity
	}
	if buildPerPage > 0 {
		cfg.ImagesPerPage = buildPerPage
	}
	if buildModel != "" {
		cfg.LLM.Model = buildModel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(cfg.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	builder, err := newBuilder(cfg)
	if err != nil {
		return err
	}

	stats, err := builder.Build(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Scanned:      %d screenshots\n", stats.Scanned)
	fmt.Fprintf(os.Stdout, "Skipped:      %d files (unrecognized names)\n", stats.Skipped)
	fmt.Fprintf(os.Stdout, "OCR failures: %d\n", stats.OCRFailures)
	fmt.Fprintf(os.Stdout, "Fallbacks:    %d images used the placeholder context\n", stats.Fallbacks)
	if stats.ReportPath == "" {
		fmt.Fprintf(os.Stdout, "No report produced: no screenshots found in %s\n", cfg.InputDir)
		return nil
	}
	fmt.Fprintf(os.Stdout, "Report:       %s (%d pages)\n", stats.ReportPath, stats.Pages)

	return nil
}

// newBuilder wires the pipeline from configuration: tesseract engine, noise
// filter, LLM client, and the report builder around them.
func newBuilder(cfg *config.Config) (*report.Builder, error) {
	ocrTimeout, err := cfg.OCR.TimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("invalid ocr.timeout: %w", err)
	}
	llmTimeout, err := cfg.LLM.TimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("invalid llm.timeout: %w", err)
	}

	filter, err := ocr.NewNoiseFilter(cfg.OCR.NoisePatterns)
	if err != nil {
		return nil, err
	}

	engine := &ocr.Tesseract{
		Cmd:       cfg.OCR.TesseractCmd,
		Languages: cfg.OCR.Languages,
		Timeout:   ocrTimeout,
	}

	client := analyzer.NewOpenAIClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.MaxTokens)

	return report.NewBuilder(cfg,
		ocr.NewExtractor(engine, filter),
		analyzer.New(client, llmTimeout)), nil
}
