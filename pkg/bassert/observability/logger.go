// Package observability provides the failure-path telemetry for
// bassert: structured logging, metrics, and span events.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Span events via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// The pass path of a check never touches this package.
package observability

import (
	"log/slog"

	"github.com/randalmurphal/bassert/pkg/bassert/report"
)

// LogFailure logs a failed check with its report fields.
func LogFailure(logger *slog.Logger, rep *report.Report) {
	if logger == nil || rep == nil {
		return
	}
	attrs := []any{
		slog.String("report_id", rep.ID),
		slog.String("kind", rep.Kind.String()),
		slog.String("expr", rep.Expr),
	}
	if rep.Message != "" {
		attrs = append(attrs, slog.String("message", rep.Message))
	}
	for i, op := range rep.Operands {
		attrs = append(attrs, slog.Group("operand",
			slog.Int("index", i),
			slog.String("text", op.Text),
			slog.String("value", op.Value),
		))
	}
	logger.Error("assertion failed", attrs...)
}

// LogJournalError logs a journal write failure. Journal errors are
// never allowed to mask the assertion failure itself.
func LogJournalError(logger *slog.Logger, err error) {
	if logger == nil || err == nil {
		return
	}
	logger.Warn("failure journal write failed",
		slog.String("error", err.Error()),
	)
}
