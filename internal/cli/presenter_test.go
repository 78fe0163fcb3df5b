package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/agbru/arraysum/internal/metrics"
	"github.com/agbru/arraysum/internal/orchestration"
	"github.com/agbru/arraysum/internal/sysmon"
	"github.com/agbru/arraysum/internal/ui"
)

func useNoColor(t *testing.T) {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(prev) })
}

func sampleReport() orchestration.Report {
	first := []float64{1.5, 100, 999.99}
	second := []float64{2.25, 200.5, 0.004}
	sums := []float64{3.75, 300.5, 999.994}
	return orchestration.Report{
		RunID:   "run-1",
		N:       3,
		Chunks:  1,
		Workers: 2,
		First:   first,
		Second:  second,
		Results: []orchestration.StrategyResult{
			{Name: "sequential", Sum: sums, Durations: []time.Duration{1234}},
			{Name: "parallel", Sum: sums, Durations: []time.Duration{567}},
		},
		Consistent: true,
	}
}

func TestPresentReport_Golden(t *testing.T) {
	useNoColor(t)
	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))

	tests := []struct {
		name      string
		presenter CLIResultPresenter
	}{
		{name: "report", presenter: CLIResultPresenter{SampleSize: 25}},
		{name: "report_verbose", presenter: CLIResultPresenter{SampleSize: 25, Verbose: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.presenter.PresentReport(sampleReport(), &buf)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestPresentReport_SampleSize(t *testing.T) {
	useNoColor(t)

	var buf bytes.Buffer
	CLIResultPresenter{SampleSize: 2}.PresentReport(sampleReport(), &buf)
	assert.Equal(t, 2, strings.Count(buf.String(), "First value:"))

	buf.Reset()
	CLIResultPresenter{SampleSize: 0}.PresentReport(sampleReport(), &buf)
	assert.NotContains(t, buf.String(), "First value:")
	assert.Contains(t, buf.String(), "Serial execution duration")
}

func TestPresentReport_Quiet(t *testing.T) {
	useNoColor(t)

	var buf bytes.Buffer
	CLIResultPresenter{SampleSize: 25, Quiet: true}.PresentReport(sampleReport(), &buf)
	assert.Equal(t,
		"Serial execution duration: 1,234 nanoseconds.\nParallel execution duration: 567 nanoseconds.\n",
		buf.String())
}

func TestPresentReport_FailedStrategy(t *testing.T) {
	useNoColor(t)

	report := sampleReport()
	report.Results[1] = orchestration.StrategyResult{Name: "parallel", Err: errors.New("boom")}

	var buf bytes.Buffer
	CLIResultPresenter{SampleSize: 1, Verbose: true}.PresentReport(report, &buf)
	out := buf.String()
	assert.Contains(t, out, "Parallel execution failed: boom")
	assert.Contains(t, out, "Serial result: 3.75 | Parallel result: n/a")
	assert.NotContains(t, out, "Speedup")
}

func TestPresentReport_RunSparkline(t *testing.T) {
	useNoColor(t)

	report := sampleReport()
	report.Results[0].Durations = []time.Duration{1000, 3000, 2000}

	var buf bytes.Buffer
	CLIResultPresenter{SampleSize: 1, Verbose: true}.PresentReport(report, &buf)
	assert.Contains(t, buf.String(), "Serial   : runs 3, mean 2µs, best 1µs ▁█▄")
}

func TestPresentMismatch(t *testing.T) {
	useNoColor(t)

	report := sampleReport()
	report.Results[1].Sum = []float64{3.75, 300.25, 999.994}
	report.Consistent = false

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentMismatch(report, &buf)
	assert.Contains(t, buf.String(), "CRITICAL ERROR")
	assert.Contains(t, buf.String(), "First difference at index 1: 300.50 != 300.25")
}

func TestStrategyLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Serial", strategyLabel("sequential"))
	assert.Equal(t, "Parallel", strategyLabel("parallel"))
	assert.Equal(t, "Vector", strategyLabel("vector"))
}

func TestDisplayMemoryStatsAndHost(t *testing.T) {
	useNoColor(t)

	var buf bytes.Buffer
	DisplayMemoryStats(metrics.MemorySnapshot{TotalAlloc: 16_000, HeapAlloc: 2048, NumGC: 3, PauseTotalNs: 1500}, &buf)
	DisplayHost(sysmon.Host{Arch: "amd64", LogicalCPU: 8, SIMD: []string{"SSE2", "AVX2"}}, sysmon.Stats{CPUPercent: 12.5, MemPercent: 40}, &buf)

	out := buf.String()
	assert.Contains(t, out, "Allocated : 16,000 bytes")
	assert.Contains(t, out, "GC cycles : 3 (pause 1µs)")
	assert.Contains(t, out, "CPU   : unknown (amd64, 8 logical)")
	assert.Contains(t, out, "SIMD  : SSE2, AVX2")
	assert.Contains(t, out, "Usage : CPU 12.5%, memory 40.0%")
}

func TestDisplayExecutionConfig(t *testing.T) {
	useNoColor(t)

	var buf bytes.Buffer
	DisplayExecutionConfig(ExecutionConfig{
		Elements: 1_000_000, Chunks: 10, Workers: 4,
		Executor: "pool", Kernel: "scalar", GCMode: "auto", Runs: 3, Seed: 42,
	}, &buf)

	out := buf.String()
	assert.Contains(t, out, "Summing 1,000,000 elements in 10 chunks, 3 run(s) per strategy.")
	assert.Contains(t, out, "Executor pool with 4 worker(s), scalar kernel.")
	assert.Contains(t, out, "Garbage collector during timing: auto.")
	assert.Contains(t, out, "Seed: 42")
}
