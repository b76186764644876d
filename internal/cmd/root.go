package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shotbook",
		Short: "Shotbook - screenshot-to-PDF report builder",
		Long:  "Builds paginated PDF reports from a folder of timestamped screenshots, using OCR and a local LLM to label and summarize each image",
	}

	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewCaptureCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}
