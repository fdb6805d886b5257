// Package config loads the run-wide scan configuration. A Config is
// immutable once Load returns and is shared by every scan context of a run.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"lintscan/internal/diag"
)

// FileNames are the names Find looks for, in priority order.
var FileNames = []string{"lintscan.toml", "lintscan.yaml", "lintscan.yml"}

// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// fileConfig is the on-disk shape shared by the TOML and YAML decoders.
type fileConfig struct {
	Scan     scanSection       `toml:"scan" yaml:"scan"`
	Codes    codesSection      `toml:"codes" yaml:"codes"`
	Severity map[string]string `toml:"severity" yaml:"severity"`
	Rules    rulesSection      `toml:"rules" yaml:"rules"`
}

type scanSection struct {
	MaxDiagnostics int    `toml:"max_diagnostics" yaml:"max_diagnostics"`
	Jobs           int    `toml:"jobs" yaml:"jobs"`
	Cache          bool   `toml:"cache" yaml:"cache"`
	CacheDir       string `toml:"cache_dir" yaml:"cache_dir"`
	TraceLevel     string `toml:"trace_level" yaml:"trace_level"`
}

type codesSection struct {
	Include []string `toml:"include" yaml:"include"`
	Exclude []string `toml:"exclude" yaml:"exclude"`
}

type rulesSection struct {
	Disabled []string `toml:"disabled" yaml:"disabled"`
}

// Config is the resolved, read-only configuration.
type Config struct {
	path           string
	maxDiagnostics int
	jobs           int
	cache          bool
	cacheDir       string
	traceLevel     string
	include        map[diag.Code]struct{} // empty = every code
	exclude        map[diag.Code]struct{}
	severity       map[diag.Code]diag.Severity
	disabledRules  map[string]struct{}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg, err := build("", fileConfig{})
	if err != nil {
		panic(fmt.Errorf("default config: %w", err))
	}
	return cfg
}

// Find walks from startDir up to the filesystem root looking for one of FileNames.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes path as TOML or YAML depending on its extension.
func Load(path string) (*Config, error) {
	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.DecodeFile(path, &fc)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		// #nosec G304 -- path is provided by the caller
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.UnmarshalWithOptions(data, &fc, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	return build(path, fc)
}

// Discover finds and loads the nearest config, or returns Default.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func build(path string, fc fileConfig) (*Config, error) {
	if fc.Scan.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("%s: [scan].max_diagnostics must be >= 0", path)
	}
	if fc.Scan.Jobs < 0 {
		return nil, fmt.Errorf("%s: [scan].jobs must be >= 0", path)
	}
	traceLevel := strings.ToLower(strings.TrimSpace(fc.Scan.TraceLevel))
	if traceLevel == "" {
		traceLevel = "off"
	}

	cfg := &Config{
		path:           path,
		maxDiagnostics: fc.Scan.MaxDiagnostics,
		jobs:           fc.Scan.Jobs,
		cache:          fc.Scan.Cache,
		cacheDir:       strings.TrimSpace(fc.Scan.CacheDir),
		traceLevel:     traceLevel,
		include:        codeSet(fc.Codes.Include),
		exclude:        codeSet(fc.Codes.Exclude),
		severity:       make(map[diag.Code]diag.Severity, len(fc.Severity)),
		disabledRules:  make(map[string]struct{}, len(fc.Rules.Disabled)),
	}
	for code, s := range fc.Severity {
		sev, err := diag.ParseSeverity(s)
		if err != nil {
			return nil, fmt.Errorf("%s: [severity].%s: %w", path, code, err)
		}
		cfg.severity[diag.Normalize(code)] = sev
	}
	for _, name := range fc.Rules.Disabled {
		if name = strings.TrimSpace(name); name != "" {
			cfg.disabledRules[strings.ToLower(name)] = struct{}{}
		}
	}
	return cfg, nil
}

func codeSet(codes []string) map[diag.Code]struct{} {
	out := make(map[diag.Code]struct{}, len(codes))
	for _, c := range codes {
		if code := diag.Normalize(c); code.Valid() {
			out[code] = struct{}{}
		}
	}
	return out
}

// Path is the file the config was loaded from ("" for Default).
func (c *Config) Path() string { return c.path }

func (c *Config) MaxDiagnostics() int { return c.maxDiagnostics }
func (c *Config) Jobs() int           { return c.jobs }
func (c *Config) CacheEnabled() bool  { return c.cache }
func (c *Config) CacheDir() string    { return c.cacheDir }
func (c *Config) TraceLevel() string  { return c.traceLevel }

// Enabled reports whether findings with code are reported at all.
// Exclusion wins over inclusion; an empty include list admits everything.
func (c *Config) Enabled(code diag.Code) bool {
	code = diag.Normalize(string(code))
	if _, ok := c.exclude[code]; ok {
		return false
	}
	if len(c.include) == 0 {
		return true
	}
	_, ok := c.include[code]
	return ok
}

// RuleEnabled reports whether the named rule should run.
func (c *Config) RuleEnabled(name string) bool {
	_, off := c.disabledRules[strings.ToLower(strings.TrimSpace(name))]
	return !off
}

// SeverityOf returns the configured severity for code, or fallback.
func (c *Config) SeverityOf(code diag.Code, fallback diag.Severity) diag.Severity {
	if sev, ok := c.severity[diag.Normalize(string(code))]; ok {
		return sev
	}
	return fallback
}

// Fingerprint is a stable hash of everything that changes scan output.
// Cached results are only valid for an equal fingerprint.
func (c *Config) Fingerprint() string {
	h := sha256.New()
	writeSet := func(tag string, set map[diag.Code]struct{}) {
		fmt.Fprintf(h, "%s:", tag)
		for _, code := range slices.Sorted(maps.Keys(set)) {
			fmt.Fprintf(h, "%s,", code)
		}
		h.Write([]byte{'\n'})
	}
	writeSet("include", c.include)
	writeSet("exclude", c.exclude)
	for _, code := range slices.Sorted(maps.Keys(c.severity)) {
		fmt.Fprintf(h, "severity:%s=%d\n", code, c.severity[code])
	}
	for _, rule := range slices.Sorted(maps.Keys(c.disabledRules)) {
		fmt.Fprintf(h, "disabled:%s\n", rule)
	}
	fmt.Fprintf(h, "max:%d\n", c.maxDiagnostics)
	return hex.EncodeToString(h.Sum(nil))
}

// Summary lists the effective settings, one per line, for display.
func (c *Config) Summary() []string {
	source := c.path
	if source == "" {
		source = "(defaults)"
	}
	lines := []string{
		"source: " + source,
		fmt.Sprintf("max_diagnostics: %d", c.maxDiagnostics),
		fmt.Sprintf("jobs: %d", c.jobs),
		fmt.Sprintf("cache: %v", c.cache),
		"trace_level: " + c.traceLevel,
	}
	if len(c.include) > 0 {
		lines = append(lines, "include: "+joinCodes(c.include))
	}
	if len(c.exclude) > 0 {
		lines = append(lines, "exclude: "+joinCodes(c.exclude))
	}
	for _, code := range slices.Sorted(maps.Keys(c.severity)) {
		lines = append(lines, fmt.Sprintf("severity %s: %s", code, c.severity[code]))
	}
	if len(c.disabledRules) > 0 {
		lines = append(lines, "disabled rules: "+strings.Join(slices.Sorted(maps.Keys(c.disabledRules)), ", "))
	}
	return lines
}

func joinCodes(set map[diag.Code]struct{}) string {
	codes := slices.Sorted(maps.Keys(set))
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
