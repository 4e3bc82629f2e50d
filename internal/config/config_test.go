package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 1, cfg.Normalize.Iterations)
	assert.Equal(t, 1024, cfg.Normalize.ChunkSize)
	assert.False(t, cfg.Normalize.SkipInvalid)
	assert.Equal(t, float32(1e-30), cfg.Accuracy.Min)
	assert.Equal(t, 10000, cfg.Accuracy.Samples)
	assert.Len(t, cfg.Normalize.Options(), 5)
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("normalize:\n  iterations: 3\n  skip_invalid: true\nlog:\n  level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Normalize.Iterations)
	assert.True(t, cfg.Normalize.SkipInvalid)
	assert.Equal(t, 1024, cfg.Normalize.ChunkSize) // default kept

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"level", "log:\n  level: loud\n"},
		{"format", "log:\n  format: xml\n"},
		{"rate", "normalize:\n  rate_limit: -1\n"},
		{"samples", "accuracy:\n  samples: 0\n"},
		{"min", "accuracy:\n  min: 0\n"},
		{"range", "accuracy:\n  min: 10\n  max: 1\n"},
		{"max inf", "accuracy:\n  max: .inf\n"},
		{"max overflow", "accuracy:\n  max: 1.0e+40\n"},
		{"syntax", "normalize: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteYAML(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Normalize.Iterations = 4

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLogger(t *testing.T) {
	l, err := LogConfig{Level: "warn", Format: "json"}.Logger()
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = LogConfig{Level: "nope", Format: "text"}.Logger()
	assert.Error(t, err)
}
