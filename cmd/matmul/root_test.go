package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matmul/internal/config"
)

// execute runs the root command with args and returns its stderr.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	err := cmd.Execute()

	return stderr.String(), err
}

func writeInput(t *testing.T, content string) (in, out string) {
	t.Helper()
	dir := t.TempDir()
	in = filepath.Join(dir, "input.txt")
	out = filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))

	return in, out
}

func TestRun_BothWithVerify(t *testing.T) {
	in, out := writeInput(t, "3 2\n1 2\n3 4\n5 6\n2 3\n7 8 9\n10 11 12\n")

	logs, err := execute(t, "--input", in, "--output", out, "--verify", "--log-level", "debug", "--parallel-depth", "1")
	require.NoError(t, err, logs)
	require.Contains(t, logs, "results agree")
	require.Contains(t, logs, "cpu=")

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(got), "\n"), "\n")
	require.Len(t, lines, 6)
	require.True(t, strings.HasPrefix(lines[0], "tradition cost "), lines[0])
	require.True(t, strings.HasPrefix(lines[1], "Strassen cost "), lines[1])
	require.Equal(t, "3 3", lines[2])
	require.Equal(t, "   27.00    30.00    33.00 ", lines[3])
	require.Equal(t, "   61.00    68.00    75.00 ", lines[4])
	require.Equal(t, "   95.00   106.00   117.00 ", lines[5])
}

func TestRun_NaiveOnly(t *testing.T) {
	in, out := writeInput(t, "2 2 1 2 3 4 2 2 5 6 7 8")

	_, err := execute(t, "-i", in, "-o", out, "-a", "naive")
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NotContains(t, string(got), "Strassen")
	require.Contains(t, string(got), "2 2\n   19.00    22.00 \n   43.00    50.00 \n")
}

func TestRun_Errors(t *testing.T) {
	in, out := writeInput(t, "2 2 1 2 3 4 3 1 1 2 3")

	_, err := execute(t, "-i", in, "-o", out)
	require.ErrorContains(t, err, "matrices dimension error")

	_, err = execute(t, "-i", filepath.Join(t.TempDir(), "missing.txt"), "-o", out)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "-i", in, "-o", out, "-a", "winograd")
	require.ErrorIs(t, err, config.ErrInvalidValue)

	_, err = execute(t, "-i", in, "-o", out, "--leaf-size", "0")
	require.ErrorIs(t, err, config.ErrInvalidValue)
}

// TestRun_FailureLeavesOutput checks that a failed run neither creates nor
// truncates the output file.
func TestRun_FailureLeavesOutput(t *testing.T) {
	in, out := writeInput(t, "2 2 1 2 3 4 2 2 5 6 7 8")

	_, err := execute(t, "-i", in, "-o", out, "-a", "strassen", "--timeout", "1ns")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	_, err = os.Stat(out)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(out, []byte("previous\n"), 0o644))
	_, err = execute(t, "-i", in, "-o", out, "-a", "both", "--timeout", "1ns")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "previous\n", string(got))
}

// TestRun_ErrorReportedOnce checks that a failure is logged once and that
// cobra does not print it a second time.
func TestRun_ErrorReportedOnce(t *testing.T) {
	in, out := writeInput(t, "2 2 1 2 3 4 3 1 1 2 3")

	for _, args := range [][]string{
		{"-i", in, "-o", out},
		{"-i", in, "-o", out, "-a", "winograd"},
		{"-i", in, "--no-such-flag"},
	} {
		logs, err := execute(t, args...)
		require.Error(t, err)
		require.Equal(t, 1, strings.Count(logs, "matmul failed"), logs)
		require.NotContains(t, logs, "Error:", logs)
	}
}

func TestCPUFeatures_NonEmpty(t *testing.T) {
	require.NotEmpty(t, cpuFeatures())
}
