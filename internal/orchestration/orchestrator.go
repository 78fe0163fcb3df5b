package orchestration

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gonum.org/v1/gonum/floats"

	apperrors "github.com/agbru/arraysum/internal/errors"
	"github.com/agbru/arraysum/internal/format"
	"github.com/agbru/arraysum/internal/logging"
	"github.com/agbru/arraysum/internal/metrics"
	"github.com/agbru/arraysum/internal/summation"
)

var tracer = otel.Tracer("github.com/agbru/arraysum/internal/orchestration")

// Source produces input sequences of a requested length.
type Source interface {
	Generate(n int) ([]float64, error)
}

// Benchmark wires the pieces of a run together. Source and Summers are
// required; the remaining fields are optional.
type Benchmark struct {
	Source  Source
	Summers []summation.Summer
	// Runs is the number of timed repetitions per strategy; values below 1 mean 1.
	Runs int
	// Chunks and Workers are copied into the report for display.
	Chunks   int
	Workers  int
	RunID    string
	Reporter PhaseReporter
	Recorder *metrics.Recorder
	// GC, when set, pauses the garbage collector while a strategy is timed.
	GC     *metrics.GCController
	Logger logging.Logger
}

// Run generates two sequences of n elements and times every summer on them.
// Strategy failures are recorded in the report; only input generation errors
// and context cancellation are returned as errors.
func (b *Benchmark) Run(ctx context.Context, n int) (Report, error) {
	reporter := b.Reporter
	if reporter == nil {
		reporter = NullPhaseReporter{}
	}
	runs := max(b.Runs, 1)

	ctx, span := tracer.Start(ctx, "benchmark")
	span.SetAttributes(attribute.Int("elements", n), attribute.Int("runs", runs))
	defer span.End()

	report := Report{RunID: b.RunID, N: n, Chunks: b.Chunks, Workers: b.Workers}

	reporter.Begin(PhaseGenerating, fmt.Sprintf("%s elements", format.Integer(n)))
	first, second, err := b.generate(ctx, n)
	reporter.End(PhaseGenerating)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return report, err
	}
	report.First, report.Second = first, second

	for _, s := range b.Summers {
		reporter.Begin(PhaseSumming, s.Name())
		res := b.time(ctx, s, runs, first, second)
		reporter.End(PhaseSumming)
		if apperrors.IsContextError(res.Err) {
			span.SetStatus(codes.Error, res.Err.Error())
			return report, res.Err
		}
		report.Results = append(report.Results, res)
	}

	report.Consistent = consistent(report.Results)
	b.record(report)
	return report, nil
}

func (b *Benchmark) generate(ctx context.Context, n int) ([]float64, []float64, error) {
	_, span := tracer.Start(ctx, "generate")
	defer span.End()

	first, err := b.Source.Generate(n)
	if err != nil {
		return nil, nil, apperrors.WrapError(err, "generating first sequence")
	}
	second, err := b.Source.Generate(n)
	if err != nil {
		return nil, nil, apperrors.WrapError(err, "generating second sequence")
	}
	return first, second, nil
}

func (b *Benchmark) time(ctx context.Context, s summation.Summer, runs int, first, second []float64) StrategyResult {
	ctx, span := tracer.Start(ctx, "sum."+s.Name())
	defer span.End()

	b.GC.Begin()
	defer b.GC.End()

	res := StrategyResult{Name: s.Name()}
	for i := 0; i < runs; i++ {
		out, err := s.Sum(ctx, first, second)
		if err != nil {
			res.Err = err
			span.SetStatus(codes.Error, err.Error())
			if b.Logger != nil {
				b.Logger.Error("summation failed", err, logging.String("strategy", s.Name()), logging.Int("run", i))
			}
			return res
		}
		res.Sum = out.Sum
		res.Durations = append(res.Durations, out.Duration)
		if b.Recorder != nil {
			b.Recorder.ObserveDuration(s.Name(), out.Duration)
		}
		if b.Logger != nil {
			b.Logger.Debug("summation complete",
				logging.String("strategy", s.Name()),
				logging.Int("run", i),
				logging.Duration("elapsed", out.Duration))
		}
	}
	span.SetAttributes(attribute.Int64("best_ns", res.Best().Nanoseconds()))
	return res
}

func (b *Benchmark) record(report Report) {
	if b.Recorder == nil {
		return
	}
	b.Recorder.SetShape(report.N, report.Chunks, report.Workers)
	b.Recorder.SetMismatch(!report.Consistent)
	if ratio, ok := report.Speedup(); ok {
		b.Recorder.SetSpeedup(ratio)
	}
}

// Speedup returns the best sequential duration divided by the best parallel
// one. ok is false unless both strategies ran.
func (r Report) Speedup() (ratio float64, ok bool) {
	seq, okSeq := r.Lookup("sequential")
	par, okPar := r.Lookup("parallel")
	if !okSeq || !okPar || seq.Err != nil || par.Err != nil {
		return 0, false
	}
	return format.Speedup(seq.Best(), par.Best()), true
}

// consistent reports whether every successful strategy produced the same sums.
func consistent(results []StrategyResult) bool {
	var reference []float64
	found := false
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if !found {
			reference, found = r.Sum, true
			continue
		}
		if len(r.Sum) != len(reference) || !floats.Equal(r.Sum, reference) {
			return false
		}
	}
	return true
}

// AnalyzeResults presents the report and returns the exit code for the run.
// A failed strategy yields ExitErrorGeneric and a disagreement between
// strategies yields ExitErrorMismatch.
func AnalyzeResults(report Report, presenter ResultPresenter, out io.Writer) int {
	var firstErr error
	for _, r := range report.Results {
		if r.Err != nil && firstErr == nil {
			firstErr = r.Err
		}
	}

	presenter.PresentReport(report, out)

	if firstErr != nil {
		return apperrors.HandleError(firstErr, out)
	}
	if !report.Consistent {
		presenter.PresentMismatch(report, out)
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}
