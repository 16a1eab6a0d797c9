package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hrsynth/internal/lifecycle"
	"hrsynth/internal/pipeline"
	"hrsynth/internal/report"
	"hrsynth/internal/repository"
	"hrsynth/internal/services"
	"hrsynth/internal/telemetry"
)

var quiet bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and its summary report",
	Long: `Runs the full generation pipeline and writes:
  <output-dir>/<output_file>                 the employee table (CSV)
  <report-dir>/dataset_statistics.md         the summary report
  <report-dir>/dataset_statistics.yaml       the same summary, structured

The same seed, count and reference date always produce the same table.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the summary to stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dg := cfg.DataGeneration

	metrics, err := telemetry.NewRecorder(nil)
	if err != nil {
		return fmt.Errorf("failed to create metric instruments: %w", err)
	}

	p := pipeline.New(pipeline.Options{
		Seed:    dg.Seed,
		Count:   dg.SampleSize,
		Workers: dg.Workers,
		Window: lifecycle.Window{
			EarliestHire: cfg.EarliestHireDate(),
			Reference:    cfg.ReferenceDate(),
		},
	}, logger, metrics)

	svc := services.NewGeneratorService(
		p,
		repository.NewCSVDatasetStore(dg.OutputDir, dg.OutputFile),
		repository.NewFileReportStore(dg.ReportDir),
		logger,
		report.Generation{Seed: dg.Seed, Reference: cfg.ReferenceDate()},
	)

	result, err := svc.Generate(ctx)
	if err != nil {
		logger.Error("Dataset generation failed", "error", err)
		return err
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), report.Console(result.Summary))
		fmt.Fprintf(cmd.OutOrStdout(), "\nDataset saved to %s\n", result.DatasetPath)
		for _, path := range result.ReportPaths {
			fmt.Fprintf(cmd.OutOrStdout(), "Statistics report generated at %s\n", path)
		}
	}
	return nil
}
