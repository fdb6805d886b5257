package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// EnvPrefix starts every environment override, e.g. LINTSCAN_JOBS.
const EnvPrefix = "LINTSCAN_"

// LoadEnvFiles reads dotenv files into the process environment. Missing
// files are skipped and variables that are already set are kept.
func LoadEnvFiles(paths ...string) error {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to stat %q: %w", p, err)
		}
		existing = append(existing, p)
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}

// WithEnv returns a copy of c with the [scan] settings overridden from
// lookup (usually os.LookupEnv):
//
//	LINTSCAN_MAX_DIAGNOSTICS  LINTSCAN_JOBS  LINTSCAN_CACHE
//	LINTSCAN_CACHE_DIR        LINTSCAN_TRACE_LEVEL
//
// Unset or blank variables leave the value alone.
func (c *Config) WithEnv(lookup func(string) (string, bool)) (*Config, error) {
	out := *c
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("MAX_DIAGNOSTICS"); ok {
		n, err := cast.ToIntE(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%sMAX_DIAGNOSTICS: want a non-negative integer, got %q", EnvPrefix, v)
		}
		out.maxDiagnostics = n
	}
	if v, ok := get("JOBS"); ok {
		n, err := cast.ToIntE(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%sJOBS: want a non-negative integer, got %q", EnvPrefix, v)
		}
		out.jobs = n
	}
	if v, ok := get("CACHE"); ok {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return nil, fmt.Errorf("%sCACHE: %w", EnvPrefix, err)
		}
		out.cache = b
	}
	if v, ok := get("CACHE_DIR"); ok {
		out.cacheDir = v
	}
	if v, ok := get("TRACE_LEVEL"); ok {
		out.traceLevel = strings.ToLower(v)
	}
	return &out, nil
}
