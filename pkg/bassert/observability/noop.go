package observability

import (
	"context"
	"time"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordFailure does nothing.
func (NoopMetrics) RecordFailure(_ context.Context, _ string) {}

// RecordFailurePath does nothing.
func (NoopMetrics) RecordFailurePath(_ context.Context, _ time.Duration) {}
