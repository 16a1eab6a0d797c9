package services

import (
	"context"
	"fmt"
	"time"

	"hrsynth/internal/catalog"
	"hrsynth/internal/logging"
	"hrsynth/internal/report"
	"hrsynth/internal/repository"
)

// Report file names inside the report directory.
const (
	MarkdownReport = "dataset_statistics.md"
	YAMLReport     = "dataset_statistics.yaml"
)

// Result describes a completed generation run.
type Result struct {
	Summary     report.Summary
	DatasetPath string
	ReportPaths []string
}

// GeneratorService is a service for generating the dataset and its reports.
type GeneratorService struct {
	runner  Runner
	dataset repository.DatasetStore
	reports repository.ReportStore
	logger  *logging.Logger
	gen     report.Generation
	now     func() time.Time
}

// NewGeneratorService creates a new GeneratorService. gen.GeneratedAt is
// filled in at the end of each run.
func NewGeneratorService(runner Runner, dataset repository.DatasetStore, reports repository.ReportStore, logger *logging.Logger, gen report.Generation) *GeneratorService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &GeneratorService{
		runner:  runner,
		dataset: dataset,
		reports: reports,
		logger:  logger,
		gen:     gen,
		now:     time.Now,
	}
}

// Generate validates the catalog, runs the pipeline and writes the dataset
// followed by the reports. Nothing is written unless the table verified.
func (s *GeneratorService) Generate(ctx context.Context) (*Result, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	table, err := s.runner.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}

	if err := s.dataset.Save(ctx, table); err != nil {
		return nil, err
	}
	s.logger.Info("Dataset saved", "path", s.dataset.Location(), "rows", len(table))

	gen := s.gen
	gen.GeneratedAt = s.now()
	summary := report.Summarize(table, gen)

	result := &Result{Summary: summary, DatasetPath: s.dataset.Location()}

	path, err := s.reports.SaveReport(ctx, MarkdownReport, []byte(report.Markdown(summary)))
	if err != nil {
		return nil, err
	}
	result.ReportPaths = append(result.ReportPaths, path)

	data, err := report.YAML(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to encode summary: %w", err)
	}
	path, err = s.reports.SaveReport(ctx, YAMLReport, data)
	if err != nil {
		return nil, err
	}
	result.ReportPaths = append(result.ReportPaths, path)

	s.logger.Info("Statistics report generated",
		"paths", result.ReportPaths,
		"dataset_id", summary.DatasetID,
		"attrition_rate", fmt.Sprintf("%.1f%%", summary.AttritionRate),
	)
	return result, nil
}
