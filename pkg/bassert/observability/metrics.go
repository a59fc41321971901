package observability

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records bassert failure metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordFailure records one failed check labeled by operator kind.
	RecordFailure(ctx context.Context, kind string)

	// RecordFailurePath records how long the failure path took
	// (rendering, logging, journaling) before the panic unwound.
	RecordFailurePath(ctx context.Context, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	failures    metric.Int64Counter
	pathLatency metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("bassert")

	failures, err := meter.Int64Counter("bassert.failures",
		metric.WithDescription("Number of failed checks"),
	)
	if err != nil {
		return nil, err
	}

	pathLatency, err := meter.Float64Histogram("bassert.failure_path_ms",
		metric.WithDescription("Failure path latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		failures:    failures,
		pathLatency: pathLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
//
// The recorder uses the global OTel meter provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
//
// If instrument creation fails, a NoopMetrics is returned.
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		return NoopMetrics{}
	}
	return m
}

// RecordFailure records one failed check labeled by operator kind.
func (m *otelMetrics) RecordFailure(ctx context.Context, kind string) {
	m.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

// RecordFailurePath records the failure path latency.
func (m *otelMetrics) RecordFailurePath(ctx context.Context, duration time.Duration) {
	m.pathLatency.Record(ctx, float64(duration.Microseconds())/1000.0)
}
