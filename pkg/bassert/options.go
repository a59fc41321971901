package bassert

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/randalmurphal/bassert/pkg/bassert/config"
	"github.com/randalmurphal/bassert/pkg/bassert/journal"
	"github.com/randalmurphal/bassert/pkg/bassert/observability"
)

// DefaultTruncateAt is the rendered-value size cap applied when
// Options.TruncateAt is zero.
const DefaultTruncateAt = 1024

// Options control the failure path. The zero value disables all
// telemetry: a failed check still panics with its full diagnostic, it
// just isn't logged, counted, or journaled first.
type Options struct {
	// Logger receives a structured record for every failed check.
	// Nil disables logging.
	Logger *slog.Logger

	// Metrics records failure counters and failure-path latency.
	// Nil disables metrics.
	Metrics observability.MetricsRecorder

	// Context is used when recording metrics and span events. Set it to
	// a context carrying your service's active span to attach assertion
	// events to traces. Nil means context.Background().
	Context context.Context

	// Journal persists failure reports before the panic unwinds.
	// Nil disables journaling.
	Journal *journal.Journal

	// IncludeStack attaches a stack trace to the report. The stack goes
	// to the journal and span event, never into the rendered message.
	IncludeStack bool

	// TruncateAt caps rendered operand values at this many bytes.
	// Zero applies DefaultTruncateAt; a negative value disables
	// truncation.
	TruncateAt int
}

var (
	optionsMu sync.RWMutex
	current   Options
)

// Configure replaces the global failure-path options. Safe for
// concurrent use with running checks; each failure takes a snapshot.
func Configure(opts Options) {
	optionsMu.Lock()
	defer optionsMu.Unlock()
	current = opts
}

// snapshotOptions returns the options in effect for one failure.
func snapshotOptions() Options {
	optionsMu.RLock()
	defer optionsMu.RUnlock()
	return current
}

// truncateLimit resolves the effective truncation limit for opts.
func truncateLimit(opts Options) int {
	switch {
	case opts.TruncateAt < 0:
		return 0
	case opts.TruncateAt == 0:
		return DefaultTruncateAt
	default:
		return opts.TruncateAt
	}
}

// ConfigureFromFile loads failure-path options from a YAML or JSON
// file. Recognized keys:
//
//	log_failures  bool    log failures through slog.Default
//	metrics       bool    record OpenTelemetry failure metrics
//	include_stack bool    attach stack traces to reports
//	truncate_at   int     rendered-value size cap (bytes)
//	journal_path  string  SQLite failure journal location
func ConfigureFromFile(path string) error {
	cfg, err := config.FromFile(path)
	if err != nil {
		return err
	}
	return configureFrom(cfg)
}

// ConfigureFromEnv loads failure-path options from BASSERT_-prefixed
// environment variables, e.g. BASSERT_JOURNAL_PATH. Keys match
// ConfigureFromFile.
func ConfigureFromEnv() error {
	return configureFrom(config.FromEnv("BASSERT_"))
}

func configureFrom(cfg config.Config) error {
	opts := Options{
		IncludeStack: cfg.Bool("include_stack", false),
		TruncateAt:   cfg.Int("truncate_at", 0),
	}
	if cfg.Bool("log_failures", false) {
		opts.Logger = slog.Default()
	}
	if cfg.Bool("metrics", false) {
		opts.Metrics = observability.NewMetricsRecorder()
	}
	if path := cfg.String("journal_path", ""); path != "" {
		j, err := journal.Open(path)
		if err != nil {
			return fmt.Errorf("open failure journal: %w", err)
		}
		opts.Journal = j
	}
	Configure(opts)
	return nil
}
