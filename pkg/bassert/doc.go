/*
Package bassert provides diagnostic assertions: one family of checks
that, on failure, reports the literal source text of the checked
expression together with the evaluated values of its operands, plus an
optional caller-supplied formatted message.

# Overview

A failed check panics with a *FailureError whose message names both the
expression as written and what each side actually evaluated to:

	assertion failed: `y < x`
	y: `20`,
	x: `10`

Operand source text is recovered from the caller's source file, so the
report shows the expression the developer wrote, not a reconstruction.
Each operand is an ordinary Go argument: evaluated exactly once, left to
right, with the same captured value used for both the comparison and the
diagnostic.

# Basic Usage

Pick the check matching the top-level operator of the condition you
would otherwise write:

	bassert.Eq(got, want)        // got == want
	bassert.Ne(id, "")          // id != ""
	bassert.Lt(i, len(buf))     // i < len(buf)
	bassert.Ge(n, 0)            // n >= 0
	bassert.That(ok)            // plain boolean condition

Comparisons require the capability the operator implies: Eq and Ne take
any comparable type, the four ordering checks take cmp.Ordered types.
A type lacking the capability is rejected by the compiler, not at run
time.

An operand that is itself a comparison or otherwise ambiguous expression
must be parenthesized by the caller; the parentheses are preserved in
the diagnostic:

	bassert.Gt(x, (x + 2))
	// assertion failed: `x > (x + 2)`
	// x: `10`,
	// (x + 2): `12`

# Custom Messages

An optional format string and arguments are appended to the diagnostic.
Formatting happens only in the failure branch. An argument that is a
func() any or func() string is invoked only on failure, so expensive
message material costs nothing on the pass path:

	bassert.Gt(x, (x + 2), "note: %s", "extra")
	bassert.Eq(got, want, "state: %v", func() any { return dumpState() })

# Pattern Matching

Is checks the dynamic type of a value, independent of any equality or
ordering capability on the value's type:

	bassert.Is[*os.PathError](err)
	// assertion failed: `*os.PathError = err`
	// err: `...`

# Debug Checks

Debug runs its argument only when the build carries the bassertdebug
tag; otherwise the closure is never invoked, so nothing inside it is
evaluated:

	bassert.Debug(func() {
	    bassert.Eq(recount(tree), tree.size)
	})

Build with -tags bassertdebug to compile debug checks in.

# Failure Path

On failure the engine renders the report and, as configured via
Configure, logs it through slog, increments an OpenTelemetry counter,
attaches a span event to the active span, and records the report to a
SQLite failure journal, then panics with the *FailureError. The panic is
never downgraded or retried; recovery, if any, is the caller's decision.

	bassert.Configure(bassert.Options{
	    Logger:  slog.Default(),
	    Metrics: observability.NewMetricsRecorder(),
	})
*/
package bassert
