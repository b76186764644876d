package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shotbook/internal/config"
)

var configConfigPath string

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE:  runConfig,
	}
	cmd.Flags().StringVarP(&configConfigPath, "config", "c", "", "Path to config file")
	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Configuration\n")
	fmt.Fprintf(os.Stdout, "=============\n\n")
	fmt.Fprintf(os.Stdout, "Identity:        %s\n", cfg.Identity)
	fmt.Fprintf(os.Stdout, "Input Folder:    %s\n", cfg.InputDir)
	fmt.Fprintf(os.Stdout, "Output Folder:   %s\n", cfg.OutputDir)
	fmt.Fprintf(os.Stdout, "Images Per Page: %d\n", cfg.ImagesPerPage)
	fmt.Fprintf(os.Stdout, "\nLLM:\n")
	fmt.Fprintf(os.Stdout, "  Base URL:   %s\n", cfg.LLM.BaseURL)
	fmt.Fprintf(os.Stdout, "  Model:      %s\n", cfg.LLM.Model)
	fmt.Fprintf(os.Stdout, "  Max Tokens: %d\n", cfg.LLM.MaxTokens)
	fmt.Fprintf(os.Stdout, "  Timeout:    %s\n", cfg.LLM.Timeout)
	fmt.Fprintf(os.Stdout, "  API Key:    %s\n", maskAPIKey(cfg.LLM.APIKey))
	fmt.Fprintf(os.Stdout, "\nOCR:\n")
	fmt.Fprintf(os.Stdout, "  Tesseract:  %s\n", cfg.OCR.TesseractCmd)
	fmt.Fprintf(os.Stdout, "  Languages:  %s\n", cfg.OCR.Languages)
	fmt.Fprintf(os.Stdout, "  Timeout:    %s\n", cfg.OCR.Timeout)
	fmt.Fprintf(os.Stdout, "  Noise Patterns: %d configured\n", len(cfg.OCR.NoisePatterns))
	fmt.Fprintf(os.Stdout, "\nLog:\n")
	fmt.Fprintf(os.Stdout, "  Level: %s\n", cfg.Log.Level)
	if cfg.Log.File != "" {
		fmt.Fprintf(os.Stdout, "  File:  %s\n", cfg.Log.File)
	}

	return nil
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
