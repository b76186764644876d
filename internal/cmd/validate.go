package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shotbook/internal/config"
	"shotbook/internal/report"
)

var validateConfigPath string
var validateDir string

func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check generated PDF reports for structural problems",
		RunE:  runValidate,
	}

	cmd.Flags().StringVarP(&validateConfigPath, "config", "c", "", "Path to config file")
	cmd.Flags().StringVarP(&validateDir, "dir", "d", "", "Folder to check (defaults to the configured output folder)")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(validateConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dir := validateDir
	if dir == "" {
		dir = cfg.OutputDir
	}

	results, err := report.ValidateDir(dir)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(os.Stdout, "No PDF files found in %s\n", dir)
		return nil
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stdout, "FAIL %s: %v\n", r.Path, r.Err)
		} else {
			fmt.Fprintf(os.Stdout, "OK   %s\n", r.Path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d reports failed validation", failed, len(results))
	}
	fmt.Fprintf(os.Stdout, "All %d reports are valid\n", len(results))

	return nil
}
