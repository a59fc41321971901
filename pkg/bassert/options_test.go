package bassert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigure_Snapshot verifies that failures see the options in
// effect when they fire.
func TestConfigure_Snapshot(t *testing.T) {
	resetOptions(t)

	Configure(Options{TruncateAt: 17})
	assert.Equal(t, 17, snapshotOptions().TruncateAt)

	Configure(Options{})
	assert.Zero(t, snapshotOptions().TruncateAt)
}

// TestTruncateLimit verifies limit resolution.
func TestTruncateLimit(t *testing.T) {
	assert.Equal(t, DefaultTruncateAt, truncateLimit(Options{}))
	assert.Equal(t, 32, truncateLimit(Options{TruncateAt: 32}))
	assert.Equal(t, 0, truncateLimit(Options{TruncateAt: -1}))
}

// TestConfigureFromFile verifies YAML loading of the failure-path
// options, including journal creation.
func TestConfigureFromFile(t *testing.T) {
	resetOptions(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "bassert.yaml")
	journalPath := filepath.Join(dir, "failures.db")
	data := "log_failures: true\ninclude_stack: true\ntruncate_at: 64\njournal_path: " + journalPath + "\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	require.NoError(t, ConfigureFromFile(path))
	opts := snapshotOptions()
	t.Cleanup(func() {
		if opts.Journal != nil {
			opts.Journal.Close()
		}
	})

	assert.NotNil(t, opts.Logger)
	assert.True(t, opts.IncludeStack)
	assert.Equal(t, 64, opts.TruncateAt)
	require.NotNil(t, opts.Journal)

	// The configured journal is live.
	failure := recoverFailure(t, func() {
		That(false)
	})
	entries, err := opts.Journal.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, failure.Report.ID, entries[0].ID)
}

// TestConfigureFromFile_MissingFile verifies the error path.
func TestConfigureFromFile_MissingFile(t *testing.T) {
	resetOptions(t)
	assert.Error(t, ConfigureFromFile(filepath.Join(t.TempDir(), "absent.yaml")))
}

// TestConfigureFromEnv verifies environment-driven configuration.
func TestConfigureFromEnv(t *testing.T) {
	resetOptions(t)
	t.Setenv("BASSERT_TRUNCATE_AT", "48")
	t.Setenv("BASSERT_INCLUDE_STACK", "true")

	require.NoError(t, ConfigureFromEnv())
	opts := snapshotOptions()
	assert.Equal(t, 48, opts.TruncateAt)
	assert.True(t, opts.IncludeStack)
	assert.Nil(t, opts.Journal)
	assert.Nil(t, opts.Logger)
}
