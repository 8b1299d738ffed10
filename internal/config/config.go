// Package config resolves the matmul CLI settings from the environment and
// an optional .env file found in the working directory or one of its parents.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvInput         = "MATMUL_INPUT"
	EnvOutput        = "MATMUL_OUTPUT"
	EnvAlgorithm     = "MATMUL_ALGORITHM"
	EnvLeafSize      = "MATMUL_LEAF_SIZE"
	EnvParallelDepth = "MATMUL_PARALLEL_DEPTH"
	EnvLogLevel      = "MATMUL_LOG_LEVEL"
)

// envFileDepth bounds the upward search for a .env file.
const envFileDepth = 5

// ErrInvalidValue indicates a setting that cannot be parsed or is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Algorithm selects which multiplier the CLI runs.
type Algorithm string

const (
	AlgorithmNaive    Algorithm = "naive"
	AlgorithmStrassen Algorithm = "strassen"
	AlgorithmBoth     Algorithm = "both"
)

// ParseAlgorithm accepts naive, strassen or both (case-insensitive).
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case AlgorithmNaive, AlgorithmStrassen, AlgorithmBoth:
		return a, nil
	default:
		return "", fmt.Errorf("algorithm %q: %w", s, ErrInvalidValue)
	}
}

// RunsNaive reports whether the naive multiplier is selected.
func (a Algorithm) RunsNaive() bool { return a == AlgorithmNaive || a == AlgorithmBoth }

// RunsStrassen reports whether the Strassen multiplier is selected.
func (a Algorithm) RunsStrassen() bool { return a == AlgorithmStrassen || a == AlgorithmBoth }

// Config holds the resolved CLI settings.
type Config struct {
	Input         string
	Output        string
	Algorithm     Algorithm
	LeafSize      int
	ParallelDepth int
	LogLevel      slog.Level
}

// Default returns the settings used when nothing is configured:
// input.txt → output.txt, both algorithms, textbook recursion, info logging.
func Default() Config {
	return Config{
		Input:         "input.txt",
		Output:        "output.txt",
		Algorithm:     AlgorithmBoth,
		LeafSize:      1,
		ParallelDepth: 0,
		LogLevel:      slog.LevelInfo,
	}
}

// Validate checks ranges that parsing alone does not cover.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input path is empty: %w", ErrInvalidValue)
	}
	if c.Output == "" {
		return fmt.Errorf("output path is empty: %w", ErrInvalidValue)
	}
	if _, err := ParseAlgorithm(string(c.Algorithm)); err != nil {
		return err
	}
	if c.LeafSize < 1 {
		return fmt.Errorf("leaf size %d < 1: %w", c.LeafSize, ErrInvalidValue)
	}
	if c.ParallelDepth < 0 {
		return fmt.Errorf("parallel depth %d < 0: %w", c.ParallelDepth, ErrInvalidValue)
	}

	return nil
}

// Load resolves settings from the process environment, falling back to a
// .env file in the working directory or up to four parents above it.
func Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return LoadFrom(dir)
}

// LoadFrom is Load with an explicit starting directory.
// Non-empty process environment variables take precedence over .env entries.
func LoadFrom(dir string) (*Config, error) {
	fileVars, err := readEnvFile(dir)
	if err != nil {
		return nil, err
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	})
}

// FromLookup builds a Config from lookup, starting from Default.
// Unset or empty keys keep their defaults.
func FromLookup(lookup func(key string) (string, bool)) (*Config, error) {
	cfg := Default()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvInput); ok {
		cfg.Input = v
	}
	if v, ok := get(EnvOutput); ok {
		cfg.Output = v
	}
	if v, ok := get(EnvAlgorithm); ok {
		a, err := ParseAlgorithm(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvAlgorithm, err)
		}
		cfg.Algorithm = a
	}
	if v, ok := get(EnvLeafSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvLeafSize, v, ErrInvalidValue)
		}
		cfg.LeafSize = n
	}
	if v, ok := get(EnvParallelDepth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvParallelDepth, v, ErrInvalidValue)
		}
		cfg.ParallelDepth = n
	}
	if v, ok := get(EnvLogLevel); ok {
		lvl, err := ParseLogLevel(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseLogLevel accepts debug, info, warn or error, optionally with an
// offset such as "info+2".
func ParseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, ErrInvalidValue)
	}

	return lvl, nil
}

// readEnvFile returns the entries of the nearest .env file at or above dir.
// No file found is not an error.
func readEnvFile(dir string) (map[string]string, error) {
	for i := 0; i < envFileDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			vars, err := godotenv.Read(envPath)
			if err != nil {
				return nil, fmt.Errorf("config: %s: %w", envPath, err)
			}
			return vars, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return map[string]string{}, nil
}
