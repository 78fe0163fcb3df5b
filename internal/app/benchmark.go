package app

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agbru/arraysum/internal/cli"
	"github.com/agbru/arraysum/internal/config"
	apperrors "github.com/agbru/arraysum/internal/errors"
	"github.com/agbru/arraysum/internal/logging"
	"github.com/agbru/arraysum/internal/metrics"
	"github.com/agbru/arraysum/internal/orchestration"
	"github.com/agbru/arraysum/internal/parallel"
	"github.com/agbru/arraysum/internal/sequence"
	"github.com/agbru/arraysum/internal/summation"
	"github.com/agbru/arraysum/internal/sysmon"
)

// newExecutor returns the parallel executor selected by cfg.Executor.
func newExecutor(cfg config.AppConfig) parallel.Executor {
	workers := config.ResolveWorkers(cfg)
	switch cfg.Executor {
	case config.ExecutorGroup:
		return parallel.NewGroup(workers)
	case config.ExecutorInline:
		return parallel.Inline{}
	default:
		return parallel.NewPool(workers)
	}
}

// runBenchmark times both strategies on n elements and presents the outcome.
func (a *Application) runBenchmark(ctx context.Context, n int, logger *logging.ZerologAdapter, out io.Writer) int {
	cfg := a.Config

	kernel, err := summation.KernelByName(cfg.Kernel)
	if err != nil {
		return apperrors.HandleError(apperrors.NewConfigError("%v", err), out)
	}

	var genOpts []sequence.Option
	if cfg.FixedSeed {
		genOpts = append(genOpts, sequence.WithSeed(cfg.Seed))
	}
	gen, err := sequence.NewGenerator(genOpts...)
	if err != nil {
		logger.Error("creating generator", err)
		return apperrors.HandleError(err, out)
	}

	exec := newExecutor(cfg)
	par := summation.NewParallel(exec, summation.WithKernel(kernel), summation.WithChunks(cfg.Chunks))
	summers := []summation.Summer{
		summation.NewSequential(summation.WithKernel(kernel)),
		par,
	}

	logger.Info("starting benchmark",
		logging.Int("elements", n),
		logging.Int("chunks", par.Chunks()),
		logging.Int("workers", exec.Workers()),
		logging.String("executor", exec.Name()),
		logging.String("kernel", cfg.Kernel),
		logging.String("gc", cfg.GCMode),
		logging.Uint64("seed", gen.Seed()),
		logging.Int("runs", cfg.Runs))

	if cfg.Verbose {
		cli.DisplayExecutionConfig(cli.ExecutionConfig{
			Elements: n,
			Chunks:   par.Chunks(),
			Workers:  exec.Workers(),
			Executor: exec.Name(),
			Kernel:   cfg.Kernel,
			GCMode:   cfg.GCMode,
			Runs:     cfg.Runs,
			Seed:     gen.Seed(),
		}, out)
	}

	var reporter orchestration.PhaseReporter = orchestration.NullPhaseReporter{}
	if !cfg.Quiet {
		reporter = cli.NewSpinnerReporter(a.ErrWriter)
	}

	recorder := metrics.NewRecorder()
	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	bench := orchestration.Benchmark{
		Source:   gen,
		Summers:  summers,
		Runs:     cfg.Runs,
		Chunks:   par.Chunks(),
		Workers:  exec.Workers(),
		RunID:    a.RunID,
		Reporter: reporter,
		Recorder: recorder,
		GC:       metrics.NewGCController(cfg.GCMode, n, logger),
		Logger:   logger,
	}
	report, err := bench.Run(ctx, n)
	if err != nil {
		logger.Error("benchmark aborted", err)
		return apperrors.HandleError(err, out)
	}

	presenter := cli.CLIResultPresenter{SampleSize: cfg.SampleSize, Quiet: cfg.Quiet, Verbose: cfg.Verbose}
	code := orchestration.AnalyzeResults(report, presenter, out)

	if cfg.Verbose {
		cli.DisplayMemoryStats(collector.Snapshot().Since(before), out)
		cli.DisplayHost(sysmon.Describe(), sysmon.Sample(), out)
	}

	if cfg.MetricsFile != "" {
		recorder.Registry().MustRegister(collectors.NewGoCollector())
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("writing metrics", err, logging.String("path", cfg.MetricsFile))
			if code == apperrors.ExitSuccess {
				code = apperrors.HandleError(apperrors.WrapError(err, "writing metrics"), out)
			}
		} else {
			logger.Info("metrics written", logging.String("path", cfg.MetricsFile))
		}
	}

	fields := []logging.Field{logging.Int("exit_code", code), logging.Bool("consistent", report.Consistent)}
	if ratio, ok := report.Speedup(); ok {
		fields = append(fields, logging.Float64("speedup", ratio))
	}
	logger.Info("benchmark finished", fields...)
	return code
}
