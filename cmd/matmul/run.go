package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/matmul/internal/config"
	"github.com/katalvlaran/matmul/matio"
	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/strassen"
)

// verifyTolerance bounds the rounding gap between the two multipliers.
const verifyTolerance = 1e-9

// ErrVerifyFailed indicates naive and Strassen products that disagree.
var ErrVerifyFailed = errors.New("naive and Strassen results differ")

// timing is one "<label> cost <duration>" line of the report.
type timing struct {
	label   string
	elapsed time.Duration
}

// run reads both operands, multiplies them with the selected algorithms and
// writes the timings followed by the product. The output file is created
// only once every product has been computed and verified.
func run(ctx context.Context, cfg *config.Config, verify bool, logger *slog.Logger) error {
	in, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	a, b, err := matio.ReadPair(in)
	_ = in.Close()
	if err != nil {
		return err
	}
	logger.Debug("operands loaded",
		slog.String("a", fmt.Sprintf("%dx%d", a.Rows(), a.Cols())),
		slog.String("b", fmt.Sprintf("%dx%d", b.Rows(), b.Cols())),
	)

	var (
		naive, fast *matrix.Dense
		timings     []timing
	)
	if cfg.Algorithm.RunsNaive() {
		start := time.Now()
		if naive, err = matrix.Mul(a, b); err != nil {
			return err
		}
		elapsed := time.Since(start)
		logger.Info("naive done", slog.Duration("elapsed", elapsed))
		timings = append(timings, timing{label: "tradition", elapsed: elapsed})
	}

	if cfg.Algorithm.RunsStrassen() {
		var st strassen.Stats
		start := time.Now()
		fast, err = strassen.MultiplyPadded(a, b,
			strassen.WithContext(ctx),
			strassen.WithLeafSize(cfg.LeafSize),
			strassen.WithParallelDepth(cfg.ParallelDepth),
			strassen.WithStats(&st),
		)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		snap := st.Snapshot()
		logger.Info("strassen done", slog.Duration("elapsed", elapsed))
		logger.Debug("strassen stats",
			slog.Int64("frames", snap.Frames),
			slog.Int64("base_cases", snap.BaseCases),
			slog.Int64("allocations", snap.Allocations),
			slog.Duration("alloc_time", snap.AllocTime),
			slog.Int("max_depth", snap.MaxDepth),
		)
		timings = append(timings, timing{label: "Strassen", elapsed: elapsed})
	}

	if verify {
		ok, err := matrix.AllClose(naive, fast, verifyTolerance, verifyTolerance)
		if err != nil {
			return err
		}
		if !ok {
			return ErrVerifyFailed
		}
		logger.Info("results agree", slog.Float64("tolerance", verifyTolerance))
	}

	result := fast
	if result == nil {
		result = naive
	}

	return writeReport(cfg.Output, timings, result)
}

// writeReport creates path and writes the timing lines followed by the product.
func writeReport(path string, timings []timing, result *matrix.Dense) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	for _, tm := range timings {
		if err = matio.WriteTiming(out, tm.label, tm.elapsed); err != nil {
			return err
		}
	}

	return matio.WriteMatrix(out, result)
}
