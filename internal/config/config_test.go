package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(mapLookup(nil))
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
	require.True(t, cfg.Algorithm.RunsNaive())
	require.True(t, cfg.Algorithm.RunsStrassen())
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(mapLookup(map[string]string{
		EnvInput:         "a.txt",
		EnvOutput:        "b.txt",
		EnvAlgorithm:     " Strassen ",
		EnvLeafSize:      "32",
		EnvParallelDepth: "2",
		EnvLogLevel:      "debug",
		EnvOutput + "_X": "ignored",
	}))
	require.NoError(t, err)
	require.Equal(t, "a.txt", cfg.Input)
	require.Equal(t, "b.txt", cfg.Output)
	require.Equal(t, AlgorithmStrassen, cfg.Algorithm)
	require.False(t, cfg.Algorithm.RunsNaive())
	require.Equal(t, 32, cfg.LeafSize)
	require.Equal(t, 2, cfg.ParallelDepth)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestFromLookup_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"algorithm":      {EnvAlgorithm: "winograd"},
		"leaf not int":   {EnvLeafSize: "big"},
		"leaf zero":      {EnvLeafSize: "0"},
		"negative depth": {EnvParallelDepth: "-1"},
		"log level":      {EnvLogLevel: "loud"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromLookup(mapLookup(env))
			require.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestLoadFrom_EnvFileInParent(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"),
		[]byte("MATMUL_ALGORITHM=naive\nMATMUL_LEAF_SIZE=8\n"), 0o644))

	t.Setenv(EnvAlgorithm, "")  // empty falls through to the file
	t.Setenv(EnvLeafSize, "16") // process env wins over the file
	cfg, err := LoadFrom(sub)
	require.NoError(t, err)
	require.Equal(t, AlgorithmNaive, cfg.Algorithm)
	require.Equal(t, 16, cfg.LeafSize)
}

func TestLoadFrom_NoEnvFile(t *testing.T) {
	t.Setenv(EnvAlgorithm, "")
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, AlgorithmBoth, cfg.Algorithm)
}
