package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/bassert/pkg/bassert/report"
)

// FailureEventName is the span event recorded for failed checks.
const FailureEventName = "assertion.failed"

// RecordFailureSpan attaches the failure to the span carried by ctx:
// a span event with the report attributes, a recorded error, and an
// error status. Does nothing when ctx carries no recording span.
func RecordFailureSpan(ctx context.Context, rep *report.Report) {
	if rep == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("assertion.id", rep.ID),
		attribute.String("assertion.kind", rep.Kind.String()),
		attribute.String("assertion.expr", rep.Expr),
	}
	if rep.Message != "" {
		attrs = append(attrs, attribute.String("assertion.message", rep.Message))
	}
	if len(rep.Stack) > 0 {
		attrs = append(attrs, attribute.String("assertion.stack", string(rep.Stack)))
	}

	span.AddEvent(FailureEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("assertion failed: %s", rep.Expr))
	span.SetStatus(codes.Error, "assertion failed")
}
