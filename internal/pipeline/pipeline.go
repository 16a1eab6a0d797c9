// Package pipeline runs the generation stages over the employee table. Each
// stage is a pure function of one record and its own random stream, applied to
// every record in parallel; stages are separated by a barrier.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"hrsynth/internal/attributes"
	"hrsynth/internal/lifecycle"
	"hrsynth/internal/logging"
	"hrsynth/internal/outcome"
	"hrsynth/internal/reconcile"
	"hrsynth/internal/sampling"
	"hrsynth/internal/telemetry"
	"hrsynth/pkg/models"
)

// StageFunc transforms one record. It must not retain or mutate anything
// reachable from its input.
type StageFunc func(models.Employee, *sampling.Source) (models.Employee, error)

// Stage is one named step of the pipeline.
type Stage struct {
	Name     string
	Progress string
	Apply    StageFunc
}

// Table is the in-progress dataset. Its length never changes.
type Table []models.Employee

// Options configures a run.
type Options struct {
	Seed    int64
	Count   int
	Workers int
	Window  lifecycle.Window
}

// Pipeline runs a fixed sequence of stages.
type Pipeline struct {
	opts    Options
	stages  []Stage
	logger  *logging.Logger
	metrics *telemetry.Recorder
}

// DefaultStages returns the generation stages in their required order.
func DefaultStages(w lifecycle.Window) []Stage {
	return []Stage{
		{Name: "attributes", Progress: "Generating employee demographics", Apply: attributes.Sample},
		{Name: "lifecycle", Progress: "Generating employment history", Apply: lifecycle.Stage(w)},
		{Name: "performance", Progress: "Generating performance metrics", Apply: outcome.Performance},
		{Name: "career", Progress: "Generating career progression data", Apply: outcome.Career},
		{Name: "compensation", Progress: "Generating compensation data", Apply: outcome.Compensation},
		{Name: "departure", Progress: "Generating departure details", Apply: outcome.Departure},
		{Name: "adjust", Progress: "Adjusting attrition patterns", Apply: outcome.AdjustAttritionPatterns},
		{Name: "reconcile", Progress: "Validating data consistency", Apply: reconcile.Stage},
	}
}

// New creates a Pipeline with the default stages.
func New(opts Options, logger *logging.Logger, metrics *telemetry.Recorder) *Pipeline {
	return NewWithStages(opts, DefaultStages(opts.Window), logger, metrics)
}

// NewWithStages creates a Pipeline with an explicit stage list.
func NewWithStages(opts Options, stages []Stage, logger *logging.Logger, metrics *telemetry.Recorder) *Pipeline {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{opts: opts, stages: stages, logger: logger, metrics: metrics}
}

// Seed creates the initial table of n records carrying only their IDs.
func Seed(n int) Table {
	t := make(Table, n)
	for i := range t {
		t[i] = models.Employee{ID: attributes.EmployeeID(i + 1)}
	}
	return t
}

// Run executes every stage and verifies the result. On error no table is
// returned.
func (p *Pipeline) Run(ctx context.Context) (Table, error) {
	if p.opts.Count <= 0 {
		return nil, errors.New("pipeline: employee count must be positive")
	}
	p.logger.Info("Generating synthetic HR dataset", "employees", p.opts.Count, "seed", p.opts.Seed, "workers", p.opts.Workers)

	table := Seed(p.opts.Count)
	for i, st := range p.stages {
		p.logger.Info(st.Progress, "stage", st.Name)
		start := time.Now()

		next, err := p.apply(ctx, i, st, table)
		if err != nil {
			return nil, err
		}
		table = next

		elapsed := time.Since(start)
		p.metrics.Stage(ctx, st.Name, len(table), elapsed)
		p.logger.Info("Stage complete", "stage", st.Name, "records", len(table), "duration", elapsed)
		if st.Name == "lifecycle" {
			p.recordDepartures(ctx, table)
		}
	}

	if err := Verify(table, p.opts.Window.Reference); err != nil {
		return nil, err
	}
	p.logger.Info("Dataset generation complete", "employees", len(table))
	return table, nil
}

// apply runs one stage over contiguous chunks of the table, one chunk per
// worker. Every record gets its own stream, so output does not depend on
// scheduling.
func (p *Pipeline) apply(ctx context.Context, index int, st Stage, in Table) (Table, error) {
	out := make(Table, len(in))
	g, ctx := errgroup.WithContext(ctx)

	chunk := (len(in) + p.opts.Workers - 1) / p.opts.Workers
	for lo := 0; lo < len(in); lo += chunk {
		hi := min(lo+chunk, len(in))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				rec, err := st.Apply(in[i], sampling.Stream(p.opts.Seed, index, i))
				if err != nil {
					return fmt.Errorf("stage %s: record %s: %w", st.Name, in[i].ID, err)
				}
				out[i] = rec
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Pipeline) recordDepartures(ctx context.Context, t Table) {
	counts := map[models.Department]int{}
	for _, e := range t {
		if e.Departed() {
			counts[e.Department]++
		}
	}
	for d, n := range counts {
		p.metrics.Departures(ctx, string(d), n)
	}
}

// Verify checks the record invariants plus that every termination falls on or
// before the reference date.
func Verify(t Table, reference time.Time) error {
	if err := reconcile.Verify(t); err != nil {
		return err
	}
	for _, e := range t {
		if e.TerminationDate != nil && e.TerminationDate.After(reference) {
			return fmt.Errorf("%w: %s: termination %s after reference date", reconcile.ErrInvariantViolated, e.ID, models.FormatDate(e.TerminationDate))
		}
	}
	return nil
}
