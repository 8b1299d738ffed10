package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/matmul/internal/config"
)

// flagValues receives raw flag input; only flags the user set override config.
type flagValues struct {
	input         string
	output        string
	algorithm     string
	leafSize      int
	parallelDepth int
	logLevel      string
	verify        bool
	timeout       time.Duration
}

func bindFlags(fs *pflag.FlagSet, fv *flagValues) {
	def := config.Default()
	fs.StringVarP(&fv.input, "input", "i", def.Input, "input file with both operands")
	fs.StringVarP(&fv.output, "output", "o", def.Output, "output file for timings and the product")
	fs.StringVarP(&fv.algorithm, "algorithm", "a", string(def.Algorithm), "naive, strassen or both")
	fs.IntVar(&fv.leafSize, "leaf-size", def.LeafSize, "Strassen base-case cutoff")
	fs.IntVar(&fv.parallelDepth, "parallel-depth", def.ParallelDepth, "recursion levels with concurrent products")
	fs.StringVar(&fv.logLevel, "log-level", def.LogLevel.String(), "debug, info, warn or error")
	fs.BoolVar(&fv.verify, "verify", false, "compare naive and Strassen results (implies both)")
	fs.DurationVar(&fv.timeout, "timeout", 0, "abort the Strassen run after this long (0 = no limit)")
}

// applyFlags overrides cfg with every flag present on the command line.
func applyFlags(fs *pflag.FlagSet, fv *flagValues, cfg *config.Config) error {
	if fs.Changed("input") {
		cfg.Input = fv.input
	}
	if fs.Changed("output") {
		cfg.Output = fv.output
	}
	if fs.Changed("algorithm") {
		a, err := config.ParseAlgorithm(fv.algorithm)
		if err != nil {
			return err
		}
		cfg.Algorithm = a
	}
	if fs.Changed("leaf-size") {
		cfg.LeafSize = fv.leafSize
	}
	if fs.Changed("parallel-depth") {
		cfg.ParallelDepth = fv.parallelDepth
	}
	if fs.Changed("log-level") {
		lvl, err := config.ParseLogLevel(fv.logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = lvl
	}
	if fv.verify {
		cfg.Algorithm = config.AlgorithmBoth
	}

	return cfg.Validate()
}

// reportError logs err once on the command's stderr; cobra's own error
// printing is silenced.
func reportError(cmd *cobra.Command, err error) {
	slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)).Error("matmul failed", slog.Any("err", err))
}

func newRootCmd() *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:           "matmul",
		Short:         "Multiply two matrices with the naive and Strassen algorithms",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runRoot(cmd, &fv); err != nil {
				reportError(cmd, err)
				return fmt.Errorf("matmul: %w", err)
			}

			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		reportError(c, err)
		return err
	})
	bindFlags(cmd.Flags(), &fv)

	return cmd
}

// runRoot resolves the configuration and runs the selected multipliers.
func runRoot(cmd *cobra.Command, fv *flagValues) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err = applyFlags(cmd.Flags(), fv, cfg); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
	logger.Info("matmul",
		slog.String("input", cfg.Input),
		slog.String("output", cfg.Output),
		slog.String("algorithm", string(cfg.Algorithm)),
		slog.String("cpu", cpuFeatures()),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if fv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, fv.timeout)
		defer cancel()
	}

	return run(ctx, cfg, fv.verify, logger)
}
