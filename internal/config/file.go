package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/arraysum/internal/errors"
)

// fileConfig mirrors AppConfig for YAML decoding. Pointer fields distinguish
// "absent" from "zero".
type fileConfig struct {
	Elements    *int    `yaml:"elements"`
	Chunks      *int    `yaml:"chunks"`
	Workers     *int    `yaml:"workers"`
	Executor    *string `yaml:"executor"`
	Kernel      *string `yaml:"kernel"`
	GC          *string `yaml:"gc"`
	Seed        *uint64 `yaml:"seed"`
	Runs        *int    `yaml:"runs"`
	Sample      *int    `yaml:"sample"`
	MetricsFile *string `yaml:"metrics_file"`
	LogLevel    *string `yaml:"log_level"`
	LogFormat   *string `yaml:"log_format"`
	Quiet       *bool   `yaml:"quiet"`
	Verbose     *bool   `yaml:"verbose"`
	NoColor     *bool   `yaml:"no_color"`
}

// LoadFile reads a YAML configuration file and copies every present key into
// cfg, unless the matching flag was set explicitly on fs.
func LoadFile(path string, cfg *AppConfig, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewConfigError("reading config file: %v", err)
	}
	return applyYAML(data, cfg, fs)
}

func applyYAML(data []byte, cfg *AppConfig, fs *pflag.FlagSet) error {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.NewConfigError("parsing config file: %v", err)
	}

	setValue(fs, "elements", fc.Elements, &cfg.N)
	setValue(fs, "chunks", fc.Chunks, &cfg.Chunks)
	setValue(fs, "workers", fc.Workers, &cfg.Workers)
	setValue(fs, "runs", fc.Runs, &cfg.Runs)
	setValue(fs, "sample", fc.Sample, &cfg.SampleSize)
	setValue(fs, "executor", fc.Executor, &cfg.Executor)
	setValue(fs, "kernel", fc.Kernel, &cfg.Kernel)
	setValue(fs, "gc", fc.GC, &cfg.GCMode)
	setValue(fs, "seed", fc.Seed, &cfg.Seed)
	if fc.Seed != nil {
		cfg.FixedSeed = true
	}
	setValue(fs, "metrics-file", fc.MetricsFile, &cfg.MetricsFile)
	setValue(fs, "log-level", fc.LogLevel, &cfg.LogLevel)
	setValue(fs, "log-format", fc.LogFormat, &cfg.LogFormat)
	setValue(fs, "quiet", fc.Quiet, &cfg.Quiet)
	setValue(fs, "verbose", fc.Verbose, &cfg.Verbose)
	setValue(fs, "no-color", fc.NoColor, &cfg.NoColor)
	return nil
}

func setValue[T any](fs *pflag.FlagSet, flag string, src *T, dst *T) {
	if src == nil || isFlagSet(fs, flag) {
		return
	}
	*dst = *src
}
