package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScopeName is the instrumentation scope for all hrsynth instruments.
const ScopeName = "hrsynth"

// Recorder holds the generator's metric instruments.
type Recorder struct {
	stageDuration metric.Float64Histogram
	records       metric.Int64Counter
	departures    metric.Int64Counter
}

// NewRecorder creates instruments on the given provider. A nil provider uses
// the global one, which is a no-op until an SDK is installed.
func NewRecorder(provider metric.MeterProvider) (*Recorder, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(ScopeName)

	stageDuration, err := meter.Float64Histogram(
		"hrsynth.stage.duration",
		metric.WithDescription("Wall time of one pipeline stage"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	records, err := meter.Int64Counter(
		"hrsynth.records.processed",
		metric.WithDescription("Employee records processed per stage"),
	)
	if err != nil {
		return nil, err
	}
	departures, err := meter.Int64Counter(
		"hrsynth.departures",
		metric.WithDescription("Simulated departures by department"),
	)
	if err != nil {
		return nil, err
	}
	return &Recorder{stageDuration: stageDuration, records: records, departures: departures}, nil
}

// Stage records the duration and record count of a completed stage.
func (r *Recorder) Stage(ctx context.Context, stage string, n int, elapsed time.Duration) {
	if r == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("stage", stage))
	r.stageDuration.Record(ctx, elapsed.Seconds(), attrs)
	r.records.Add(ctx, int64(n), attrs)
}

// Departures records the departures of one department.
func (r *Recorder) Departures(ctx context.Context, department string, n int) {
	if r == nil || n == 0 {
		return
	}
	r.departures.Add(ctx, int64(n), metric.WithAttributes(attribute.String("department", department)))
}
