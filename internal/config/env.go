// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// A nil flag set means nothing was set.
func isFlagSet(fs *pflag.FlagSet, name string) bool {
	if fs == nil {
		return false
	}
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the ARRAYSUM_ prefix) to the CLI flag
// it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	{"N", "elements", func(c *AppConfig, v string) { c.N = parseIntEnv(v, c.N) }},
	{"CHUNKS", "chunks", func(c *AppConfig, v string) { c.Chunks = parseIntEnv(v, c.Chunks) }},
	{"WORKERS", "workers", func(c *AppConfig, v string) { c.Workers = parseIntEnv(v, c.Workers) }},
	{"RUNS", "runs", func(c *AppConfig, v string) { c.Runs = parseIntEnv(v, c.Runs) }},
	{"SAMPLE", "sample", func(c *AppConfig, v string) { c.SampleSize = parseIntEnv(v, c.SampleSize) }},
	{"SEED", "seed", func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = parsed
			c.FixedSeed = true
		}
	}},

	// String overrides
	{"EXECUTOR", "executor", func(c *AppConfig, v string) { c.Executor = strings.ToLower(v) }},
	{"KERNEL", "kernel", func(c *AppConfig, v string) { c.Kernel = strings.ToLower(v) }},
	{"GC", "gc", func(c *AppConfig, v string) { c.GCMode = strings.ToLower(v) }},
	{"METRICS_FILE", "metrics-file", func(c *AppConfig, v string) { c.MetricsFile = v }},
	{"LOG_LEVEL", "log-level", func(c *AppConfig, v string) { c.LogLevel = v }},
	{"LOG_FORMAT", "log-format", func(c *AppConfig, v string) { c.LogFormat = strings.ToLower(v) }},

	// Boolean overrides
	{"QUIET", "quiet", func(c *AppConfig, v string) { c.Quiet = parseBoolEnv(v, c.Quiet) }},
	{"VERBOSE", "verbose", func(c *AppConfig, v string) { c.Verbose = parseBoolEnv(v, c.Verbose) }},
	{"NO_COLOR", "no-color", func(c *AppConfig, v string) { c.NoColor = parseBoolEnv(v, c.NoColor) }},
}

func parseIntEnv(val string, defaultVal int) int {
	if parsed, err := strconv.Atoi(val); err == nil {
		return parsed
	}
	return defaultVal
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
//
// Supported environment variables (all prefixed with ARRAYSUM_):
//   - N, CHUNKS, WORKERS, RUNS, SAMPLE, SEED, EXECUTOR, KERNEL, GC,
//     METRICS_FILE, LOG_LEVEL, LOG_FORMAT, QUIET, VERBOSE, NO_COLOR
func applyEnvOverrides(config *AppConfig, fs *pflag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
