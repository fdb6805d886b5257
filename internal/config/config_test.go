package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lintscan/internal/config"
	"lintscan/internal/diag"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lintscan.toml", `
[scan]
max_diagnostics = 50
jobs = 4
trace_level = "Phase"

[codes]
exclude = ["avoid_using_cfdump_tag"]

[severity]
MISSING_VAR = "error"

[rules]
disabled = ["CFDumpChecker"]
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, 50, cfg.MaxDiagnostics())
	assert.Equal(t, 4, cfg.Jobs())
	assert.Equal(t, "phase", cfg.TraceLevel())
	assert.False(t, cfg.Enabled("AVOID_USING_CFDUMP_TAG"))
	assert.True(t, cfg.Enabled("MISSING_VAR"))
	assert.Equal(t, diag.SevError, cfg.SeverityOf("missing_var", diag.SevWarning))
	assert.Equal(t, diag.SevInfo, cfg.SeverityOf("OTHER", diag.SevInfo))
	assert.False(t, cfg.RuleEnabled("cfdumpchecker"))
	assert.True(t, cfg.RuleEnabled("VarScoper"))
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lintscan.yaml", `
codes:
  include: [MISSING_VAR, ARG_VAR_CONFLICT]
severity:
  ARG_VAR_CONFLICT: info
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Enabled("MISSING_VAR"))
	assert.False(t, cfg.Enabled("SOMETHING_ELSE"))
	assert.Equal(t, diag.SevInfo, cfg.SeverityOf("ARG_VAR_CONFLICT", diag.SevWarning))
}

func TestLoadRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"unknown.toml":  "[scan]\nbogus = 1\n",
		"severity.toml": "[severity]\nX = \"fatal\"\n",
		"negative.toml": "[scan]\njobs = -1\n",
		"unknown.yaml":  "scan:\n  bogus: 1\n",
		"config.json":   "{}",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, dir, name, content))
			assert.Error(t, err)
		})
	}

	_, err := config.Load(writeFile(t, dir, "x.ini", ""))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lintscan.toml", "[codes]\nexclude = [\"X\"]\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := config.Discover(nested)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled("X"))
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "", cfg.Path())
	assert.True(t, cfg.Enabled("ANY"))
	assert.True(t, cfg.RuleEnabled("Any"))
	assert.Equal(t, "off", cfg.TraceLevel())
	assert.Contains(t, cfg.Summary(), "source: (defaults)")
}

func TestFingerprintTracksOutputSettings(t *testing.T) {
	dir := t.TempDir()
	a, err := config.Load(writeFile(t, dir, "a.toml", "[codes]\nexclude = [\"X\", \"Y\"]\n"))
	require.NoError(t, err)
	b, err := config.Load(writeFile(t, dir, "b.toml", "[codes]\nexclude = [\"y\", \"x\"]\n"))
	require.NoError(t, err)
	c, err := config.Load(writeFile(t, dir, "c.toml", "[codes]\nexclude = [\"X\"]\n"))
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
