package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"hrsynth/internal/services"
)

var (
	reportWidth int
	reportRaw   bool
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Render a generated summary report in the terminal",
	Long: `Renders the Markdown summary written by "hrsynth generate".
Without an argument the report in the configured report directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportWidth, "width", 80, "Word wrap width")
	reportCmd.Flags().BoolVar(&reportRaw, "raw", false, "Print the Markdown source without rendering")
}

func runReport(cmd *cobra.Command, args []string) error {
	path := filepath.Join(cfg.DataGeneration.ReportDir, services.MarkdownReport)
	if len(args) == 1 {
		path = args[0]
	}

	md, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}
	if reportRaw {
		_, err = cmd.OutOrStdout().Write(md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(reportWidth),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := renderer.Render(string(md))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
