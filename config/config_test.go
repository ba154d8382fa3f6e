package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopdist/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hopdist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// clearEnv blanks every variable Load reads; empty values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HOPDIST_EDGES", "HOPDIST_LABELS", "HOPDIST_WORKERS", "HOPDIST_MAX_DEPTH",
		"HOPDIST_OUTPUT", "HOPDIST_COLOR", "HOPDIST_METRICS_TEXTFILE",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_INCLUDE_CALLER",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
input:
  edges: edges.txt
  labels: labels.txt
compute:
  workers: 4
output:
  format: json
logging:
  level: debug
`)
	t.Setenv("HOPDIST_WORKERS", "8")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "edges.txt", cfg.Input.Edges)
	assert.Equal(t, "labels.txt", cfg.Input.Labels)
	assert.Equal(t, 8, cfg.Compute.Workers, "env overrides file")
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color, "default kept")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "compute:\n  wrokers: 2\n"))
	require.Error(t, err, "unknown keys are rejected")

	t.Setenv("HOPDIST_WORKERS", "many")
	_, err = config.Load("")
	require.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Compute.Workers = -1
	cfg.Output.Format = "xml"
	cfg.Output.Color = "sometimes"
	cfg.Logging.Format = "logfmt"

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	for _, frag := range []string{"workers", "xml", "sometimes", "logfmt"} {
		assert.Contains(t, err.Error(), frag)
	}
}
