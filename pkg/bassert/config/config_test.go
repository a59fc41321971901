package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_NilData verifies that a nil map yields a usable Config.
func TestNew_NilData(t *testing.T) {
	cfg := New(nil)
	assert.Equal(t, "fallback", cfg.String("missing", "fallback"))
}

// TestString verifies string extraction and defaults.
func TestString(t *testing.T) {
	cfg := New(map[string]any{"path": "/tmp/x", "count": 3})
	assert.Equal(t, "/tmp/x", cfg.String("path", ""))
	assert.Equal(t, "d", cfg.String("count", "d"))
	assert.Equal(t, "d", cfg.String("missing", "d"))
}

// TestBool verifies boolean extraction including string forms.
func TestBool(t *testing.T) {
	cfg := New(map[string]any{
		"on":      true,
		"off":     false,
		"str_on":  "true",
		"str_off": "false",
		"junk":    "maybe",
	})
	assert.True(t, cfg.Bool("on", false))
	assert.False(t, cfg.Bool("off", true))
	assert.True(t, cfg.Bool("str_on", false))
	assert.False(t, cfg.Bool("str_off", true))
	assert.True(t, cfg.Bool("junk", true))
	assert.False(t, cfg.Bool("missing", false))
}

// TestInt verifies integer extraction across decoder types.
func TestInt(t *testing.T) {
	cfg := New(map[string]any{
		"int":     7,
		"int64":   int64(8),
		"float64": float64(9),
		"str":     "10",
		"junk":    "x",
	})
	assert.Equal(t, 7, cfg.Int("int", 0))
	assert.Equal(t, 8, cfg.Int("int64", 0))
	assert.Equal(t, 9, cfg.Int("float64", 0))
	assert.Equal(t, 10, cfg.Int("str", 0))
	assert.Equal(t, -1, cfg.Int("junk", -1))
	assert.Equal(t, -1, cfg.Int("missing", -1))
}

// TestFromYAML verifies YAML parsing.
func TestFromYAML(t *testing.T) {
	cfg, err := FromYAML([]byte("journal_path: ./failures.db\ntruncate_at: 64\nmetrics: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "./failures.db", cfg.String("journal_path", ""))
	assert.Equal(t, 64, cfg.Int("truncate_at", 0))
	assert.True(t, cfg.Bool("metrics", false))
}

// TestFromYAML_Invalid verifies the error path.
func TestFromYAML_Invalid(t *testing.T) {
	_, err := FromYAML([]byte(":\n:::"))
	assert.Error(t, err)
}

// TestFromJSON verifies JSON parsing.
func TestFromJSON(t *testing.T) {
	cfg, err := FromJSON([]byte(`{"truncate_at": 32, "include_stack": true}`))
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Int("truncate_at", 0))
	assert.True(t, cfg.Bool("include_stack", false))
}

// TestFromFile verifies extension detection.
func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("truncate_at: 5\n"), 0o644))
	cfg, err := FromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Int("truncate_at", 0))

	jsonPath := filepath.Join(dir, "c.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"truncate_at": 6}`), 0o644))
	cfg, err = FromFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Int("truncate_at", 0))

	txtPath := filepath.Join(dir, "c.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0o644))
	_, err = FromFile(txtPath)
	assert.Error(t, err)

	_, err = FromFile(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

// TestFromEnv verifies prefix scanning and key normalization.
func TestFromEnv(t *testing.T) {
	t.Setenv("BASSERT_JOURNAL_PATH", "/tmp/j.db")
	t.Setenv("BASSERT_METRICS", "true")
	t.Setenv("BASSERT_TRUNCATE_AT", "12")
	t.Setenv("UNRELATED", "x")

	cfg := FromEnv("BASSERT_")
	assert.Equal(t, "/tmp/j.db", cfg.String("journal_path", ""))
	assert.True(t, cfg.Bool("metrics", false))
	assert.Equal(t, 12, cfg.Int("truncate_at", 0))
	assert.Equal(t, "", cfg.String("unrelated", ""))
}
