package bassert

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
	"time"

	"github.com/randalmurphal/bassert/pkg/bassert/expr"
	"github.com/randalmurphal/bassert/pkg/bassert/observability"
	"github.com/randalmurphal/bassert/pkg/bassert/render"
	"github.com/randalmurphal/bassert/pkg/bassert/report"
)

// ErrAssertionFailed is the sentinel matched by errors.Is against a
// FailureError.
var ErrAssertionFailed = errors.New("assertion failed")

// FailureError is the panic payload of a failed check. Its Error text
// is the rendered diagnostic message.
type FailureError struct {
	Report *report.Report
}

// Error returns the rendered diagnostic message.
func (e *FailureError) Error() string {
	return e.Report.Render()
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (e *FailureError) Unwrap() error {
	return ErrAssertionFailed
}

// captureSkip is the number of stack frames between expr.Capture's
// caller (one of the fail* functions) and the user's call site: the
// fail* frame plus the public entry point frame.
const captureSkip = 2

// failComparison assembles and emits the report for a failed two-operand
// comparison. lhs and rhs carry the single evaluation of each operand.
func failComparison(fn string, kind expr.Kind, lhs, rhs any, msgAndArgs []any) {
	opts := snapshotOptions()

	lhsText, rhsText := "lhs", "rhs"
	if call, ok := expr.Capture(captureSkip, fn); ok && len(call.Args) >= 2 {
		lhsText, rhsText = call.Args[0], call.Args[1]
	}

	limit := truncateLimit(opts)
	operands := []report.Operand{
		{Text: lhsText, Value: render.Truncate(render.Value(lhs), limit)},
		{Text: rhsText, Value: render.Truncate(render.Value(rhs), limit)},
	}
	exprText := lhsText + " " + kind.Operator() + " " + rhsText

	emit(opts, report.New(kind, exprText, operands, formatMessage(msgAndArgs)))
}

// failBoolean emits the report for a failed boolean condition. The
// condition text is classified so metrics and the journal still carry
// the operator kind when the caller wrote a comparison inline.
func failBoolean(fn string, msgAndArgs []any) {
	opts := snapshotOptions()

	exprText := "condition"
	kind := expr.Boolean
	if call, ok := expr.Capture(captureSkip, fn); ok && len(call.Args) >= 1 {
		exprText = call.Args[0]
		if c, err := expr.Classify(exprText); err == nil {
			kind = c.Kind
		}
	}

	emit(opts, report.New(kind, exprText, nil, formatMessage(msgAndArgs)))
}

// failMatch emits the report for a failed type-pattern match. The
// pattern text comes from the explicit type argument at the call site
// when present, else from reflection.
func failMatch[P any](fn string, rhs any, msgAndArgs []any) {
	opts := snapshotOptions()

	rhsText := "rhs"
	pattern := reflect.TypeFor[P]().String()
	if call, ok := expr.Capture(captureSkip, fn); ok {
		if len(call.Args) >= 1 {
			rhsText = call.Args[0]
		}
		if len(call.TypeArgs) >= 1 {
			pattern = call.TypeArgs[0]
		}
	}

	limit := truncateLimit(opts)
	operands := []report.Operand{
		{Text: rhsText, Value: render.Truncate(render.Value(rhs), limit)},
	}
	exprText := pattern + " " + expr.Match.Operator() + " " + rhsText

	emit(opts, report.New(expr.Match, exprText, operands, formatMessage(msgAndArgs)))
}

// formatMessage renders the optional custom message. It runs only on
// the failure path, so formatting work and thunk arguments cost nothing
// when a check passes.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprint(expandThunks(msgAndArgs)...)
	}
	if len(msgAndArgs) == 1 {
		return format
	}
	return fmt.Sprintf(format, expandThunks(msgAndArgs[1:])...)
}

// expandThunks invokes lazy message arguments. A func() any or
// func() string argument is evaluated here, in the failure branch only.
func expandThunks(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		switch fn := a.(type) {
		case func() any:
			out[i] = fn()
		case func() string:
			out[i] = fn()
		default:
			out[i] = a
		}
	}
	return out
}

// emit runs the failure path: stack capture, logging, metrics, span
// event, journal write, then the terminating panic. Telemetry and
// journal errors never mask the failure itself.
func emit(opts Options, rep *report.Report) {
	start := time.Now()

	if opts.IncludeStack {
		rep.Stack = debug.Stack()
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	observability.LogFailure(opts.Logger, rep)
	observability.RecordFailureSpan(ctx, rep)

	if opts.Journal != nil {
		if err := opts.Journal.Record(rep); err != nil {
			observability.LogJournalError(opts.Logger, err)
		}
	}

	if opts.Metrics != nil {
		opts.Metrics.RecordFailure(ctx, rep.Kind.String())
		opts.Metrics.RecordFailurePath(ctx, time.Since(start))
	}

	panic(&FailureError{Report: rep})
}
