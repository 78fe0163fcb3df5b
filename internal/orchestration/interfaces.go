package orchestration

import (
	"io"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names announced to a PhaseReporter.
const (
	PhaseGenerating = "Generating"
	PhaseSumming    = "Summing"
	PhaseReporting  = "Reporting"
)

// StrategyResult gathers every timed run of one summation strategy.
type StrategyResult struct {
	// Name is the strategy identifier (e.g. "sequential").
	Name string
	// Sum is the result sequence of the last successful run.
	Sum []float64
	// Durations holds one measurement per run, in run order.
	Durations []time.Duration
	// Err is set when the strategy failed; Sum is then unreliable.
	Err error
}

// Mean returns the average duration across runs, or 0 without runs.
func (r StrategyResult) Mean() time.Duration {
	if len(r.Durations) == 0 {
		return 0
	}
	xs := make([]float64, len(r.Durations))
	for i, d := range r.Durations {
		xs[i] = float64(d)
	}
	return time.Duration(stat.Mean(xs, nil))
}

// Best returns the shortest duration across runs, or 0 without runs.
func (r StrategyResult) Best() time.Duration {
	if len(r.Durations) == 0 {
		return 0
	}
	best := r.Durations[0]
	for _, d := range r.Durations[1:] {
		best = min(best, d)
	}
	return best
}

// Report is the complete outcome of a benchmark run.
type Report struct {
	RunID   string
	N       int
	Chunks  int
	Workers int
	First   []float64
	Second  []float64
	Results []StrategyResult
	// Consistent is true when every successful strategy produced the same sums.
	Consistent bool
}

// Lookup returns the result for the named strategy.
func (r Report) Lookup(name string) (StrategyResult, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return StrategyResult{}, false
}

// PhaseReporter is told when each phase of a run begins and ends, so that the
// presentation layer can show activity (e.g. a spinner) without the
// orchestration depending on it.
type PhaseReporter interface {
	Begin(phase, detail string)
	End(phase string)
}

// NullPhaseReporter ignores all phase notifications. Useful for quiet mode or testing.
type NullPhaseReporter struct{}

// Begin does nothing.
func (NullPhaseReporter) Begin(string, string) {}

// End does nothing.
func (NullPhaseReporter) End(string) {}

// ResultPresenter defines the interface for presenting a finished run.
// This interface decouples the orchestration layer from presentation concerns.
type ResultPresenter interface {
	// PresentReport writes the durations and the sample of results.
	PresentReport(report Report, out io.Writer)
	// PresentMismatch explains that the strategies disagreed.
	PresentMismatch(report Report, out io.Writer)
}
