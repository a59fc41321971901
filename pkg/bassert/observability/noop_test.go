package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNoopMetrics verifies the disabled recorder does nothing and
// never panics.
func TestNoopMetrics(t *testing.T) {
	var m MetricsRecorder = NoopMetrics{}
	assert.NotPanics(t, func() {
		m.RecordFailure(context.Background(), "eq")
		m.RecordFailurePath(context.Background(), time.Millisecond)
	})
}
