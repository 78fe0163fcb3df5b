// Package config holds the application configuration: defaults, command-line
// flag bindings, environment and file overrides, and validation rules.
package config

import (
	"fmt"
	"slices"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/arraysum/internal/errors"
)

const (
	// EnvPrefix is prepended to every environment override key.
	EnvPrefix = "ARRAYSUM_"
	// MaxElements is the largest accepted element count.
	MaxElements = 1_000_000
	// DefaultChunks is the number of static chunks the parallel summer splits
	// the index range into. Element counts must be a multiple of it.
	DefaultChunks = 10
	// DefaultSampleSize is the number of result rows printed after a run.
	DefaultSampleSize = 25
	// MaxRuns bounds the --runs repetition count.
	MaxRuns = 1000
)

// Executor names accepted by --executor.
const (
	ExecutorPool   = "pool"
	ExecutorGroup  = "group"
	ExecutorInline = "inline"
)

// Kernel names accepted by --kernel.
const (
	KernelScalar = "scalar"
	KernelVector = "vector"
)

// Garbage collector modes accepted by --gc.
const (
	// GCAuto pauses the collector during timing for large inputs only.
	GCAuto = "auto"
	// GCPaused always pauses the collector during timing.
	GCPaused = "paused"
	// GCEnabled leaves the collector running.
	GCEnabled = "enabled"
)

// GCModes lists the accepted --gc values.
var GCModes = []string{GCAuto, GCPaused, GCEnabled}

// Executors lists the accepted --executor values.
var Executors = []string{ExecutorPool, ExecutorGroup, ExecutorInline}

// Kernels lists the accepted --kernel values.
var Kernels = []string{KernelScalar, KernelVector}

// Log formats accepted by --log-format.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// LogFormats lists the accepted --log-format values.
var LogFormats = []string{LogFormatConsole, LogFormatJSON}

// AppConfig aggregates all configuration parameters of the application.
type AppConfig struct {
	// N is the element count. Zero means "ask interactively".
	N int
	// Chunks is the number of contiguous ranges the parallel summer uses.
	Chunks int
	// Workers caps the number of goroutines executing chunks. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int
	// Executor selects the parallel executor implementation.
	Executor string
	// Kernel selects the element-wise addition kernel.
	Kernel string
	// GCMode controls the garbage collector while strategies are timed.
	GCMode string
	// Seed fixes the generator seeds for reproducible inputs. It is only
	// used when FixedSeed is true.
	Seed uint64
	// FixedSeed is set when Seed was given by flag, environment or file.
	// Otherwise seeds are drawn from the system entropy source.
	FixedSeed bool
	// Runs is how many times each strategy is timed on the same inputs.
	Runs int
	// SampleSize is the maximum number of result rows printed.
	SampleSize int
	// MetricsFile, when set, receives a Prometheus text exposition of the run.
	MetricsFile string
	// ConfigFile is an optional YAML file with defaults for the fields above.
	ConfigFile string
	// LogLevel is the minimum level written to stderr.
	LogLevel string
	// LogFormat selects human-readable console logs or JSON lines.
	LogFormat string
	Quiet     bool
	Verbose   bool
	NoColor   bool
}

// Default returns the configuration used when nothing is overridden.
func Default() AppConfig {
	return AppConfig{
		Chunks:     DefaultChunks,
		Executor:   ExecutorPool,
		Kernel:     KernelScalar,
		GCMode:     GCAuto,
		Runs:       1,
		SampleSize: DefaultSampleSize,
		LogFormat:  LogFormatConsole,
	}
}

// BindFlags registers every configuration flag on fs, writing into cfg.
// cfg should already hold the defaults.
func BindFlags(fs *pflag.FlagSet, cfg *AppConfig) {
	fs.IntVarP(&cfg.N, "elements", "n", cfg.N, "number of elements for each array (skips the prompt)")
	fs.IntVar(&cfg.Chunks, "chunks", cfg.Chunks, "number of static chunks for the parallel summation")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.Executor, "executor", cfg.Executor, fmt.Sprintf("parallel executor %v", Executors))
	fs.StringVar(&cfg.Kernel, "kernel", cfg.Kernel, fmt.Sprintf("addition kernel %v", Kernels))
	fs.StringVar(&cfg.GCMode, "gc", cfg.GCMode, fmt.Sprintf("garbage collector during timing %v", GCModes))
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "fixed generator seed (default: drawn from system entropy)")
	fs.IntVar(&cfg.Runs, "runs", cfg.Runs, "timed repetitions per strategy")
	fs.IntVar(&cfg.SampleSize, "sample", cfg.SampleSize, "number of result rows to print")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus metrics to this file")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML configuration file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, fmt.Sprintf("log format %v", LogFormats))
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "print only the durations")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "print configuration, statistics and host details")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
}

// Resolve applies the file and environment layers to cfg for every flag not
// set explicitly on fs, then validates the result.
// Priority: CLI flags > environment > config file > defaults.
func Resolve(cfg AppConfig, fs *pflag.FlagSet) (AppConfig, error) {
	if cfg.ConfigFile != "" {
		if err := LoadFile(cfg.ConfigFile, &cfg, fs); err != nil {
			return cfg, err
		}
	}
	applyEnvOverrides(&cfg, fs)
	if isFlagSet(fs, "seed") {
		cfg.FixedSeed = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the structural options. The element count is validated
// separately via ValidateElementCount because it may still come from the prompt.
func (c AppConfig) Validate() error {
	if c.Chunks < 1 || c.Chunks > MaxElements {
		return apperrors.NewConfigError("--chunks must be between 1 and %d, got %d", MaxElements, c.Chunks)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("--workers must not be negative, got %d", c.Workers)
	}
	if !slices.Contains(Executors, c.Executor) {
		return apperrors.NewConfigError("unknown executor %q (valid: %v)", c.Executor, Executors)
	}
	if !slices.Contains(Kernels, c.Kernel) {
		return apperrors.NewConfigError("unknown kernel %q (valid: %v)", c.Kernel, Kernels)
	}
	if !slices.Contains(GCModes, c.GCMode) {
		return apperrors.NewConfigError("unknown gc mode %q (valid: %v)", c.GCMode, GCModes)
	}
	if !slices.Contains(LogFormats, c.LogFormat) {
		return apperrors.NewConfigError("unknown log format %q (valid: %v)", c.LogFormat, LogFormats)
	}
	if c.Runs < 1 || c.Runs > MaxRuns {
		return apperrors.NewConfigError("--runs must be between 1 and %d, got %d", MaxRuns, c.Runs)
	}
	if c.SampleSize < 0 {
		return apperrors.NewConfigError("--sample must not be negative, got %d", c.SampleSize)
	}
	if c.N != 0 {
		if err := ValidateElementCount(c.N, c.Chunks); err != nil {
			return apperrors.NewConfigError("%v", err)
		}
	}
	return nil
}

// ValidateElementCount enforces the element-count rule: between 1 and
// MaxElements inclusive and a multiple of chunks.
func ValidateElementCount(n, chunks int) error {
	if n < 1 || n > MaxElements {
		return apperrors.ValidationError{Field: "elements", Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxElements, n)}
	}
	if chunks > 0 && n%chunks != 0 {
		return apperrors.ValidationError{Field: "elements", Message: fmt.Sprintf("must be a multiple of %d, got %d", chunks, n)}
	}
	return nil
}
