package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lintscan/internal/config"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestWithEnvOverrides(t *testing.T) {
	base := config.Default()
	cfg, err := base.WithEnv(lookupFrom(map[string]string{
		"LINTSCAN_MAX_DIAGNOSTICS": "25",
		"LINTSCAN_JOBS":            " 3 ",
		"LINTSCAN_CACHE":           "true",
		"LINTSCAN_CACHE_DIR":       "/tmp/ls",
		"LINTSCAN_TRACE_LEVEL":     "Detail",
		"LINTSCAN_UNRELATED":       "x",
	}))
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.MaxDiagnostics())
	assert.Equal(t, 3, cfg.Jobs())
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, "/tmp/ls", cfg.CacheDir())
	assert.Equal(t, "detail", cfg.TraceLevel())
	assert.NotEqual(t, base.Fingerprint(), cfg.Fingerprint())

	// the original is untouched
	assert.Equal(t, 0, base.MaxDiagnostics())
	assert.False(t, base.CacheEnabled())
}

func TestWithEnvRejectsBadValues(t *testing.T) {
	for _, env := range []map[string]string{
		{"LINTSCAN_JOBS": "many"},
		{"LINTSCAN_MAX_DIAGNOSTICS": "-1"},
		{"LINTSCAN_CACHE": "perhaps"},
	} {
		_, err := config.Default().WithEnv(lookupFrom(env))
		assert.Error(t, err, "%v", env)
	}

	same, err := config.Default().WithEnv(lookupFrom(map[string]string{"LINTSCAN_JOBS": "  "}))
	require.NoError(t, err)
	assert.Equal(t, 0, same.Jobs())
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LINTSCAN_TEST_ENV_FILE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LINTSCAN_TEST_ENV_FILE") })

	require.NoError(t, config.LoadEnvFiles(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("LINTSCAN_TEST_ENV_FILE"))
	require.NoError(t, config.LoadEnvFiles())
}
