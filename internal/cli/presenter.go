package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agbru/arraysum/internal/format"
	"github.com/agbru/arraysum/internal/metrics"
	"github.com/agbru/arraysum/internal/orchestration"
	"github.com/agbru/arraysum/internal/sysmon"
	"github.com/agbru/arraysum/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output.
type CLIResultPresenter struct {
	// SampleSize caps the number of result rows; the report length caps it too.
	SampleSize int
	// Quiet prints the duration lines only.
	Quiet bool
	// Verbose adds run statistics after the sample rows.
	Verbose bool
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

var titleCaser = cases.Title(language.English)

// strategyLabel maps a strategy name to the word used in the output.
func strategyLabel(name string) string {
	switch name {
	case "sequential":
		return "Serial"
	case "parallel":
		return "Parallel"
	default:
		return titleCaser.String(name)
	}
}

// PresentReport writes the duration of every strategy followed by the first
// rows of inputs and results.
func (p CLIResultPresenter) PresentReport(report orchestration.Report, out io.Writer) {
	if !p.Quiet {
		fmt.Fprintf(out, "\n%s\n\n", ui.Paint(ui.GetCurrentTheme().Bold, "Execution results:"))
	}
	for _, res := range report.Results {
		label := strategyLabel(res.Name)
		if res.Err != nil {
			fmt.Fprintf(out, "%s execution failed: %s\n", label, ui.Paint(ui.GetCurrentTheme().Error, res.Err.Error()))
			continue
		}
		fmt.Fprintf(out, "%s execution duration: %s nanoseconds.\n",
			label, ui.Paint(ui.GetCurrentTheme().Primary, format.Nanoseconds(res.Mean())))
	}
	if p.Quiet {
		return
	}
	fmt.Fprintln(out)
	p.presentSample(report, out)
	if p.Verbose {
		p.presentStatistics(report, out)
	}
}

func (p CLIResultPresenter) presentSample(report orchestration.Report, out io.Writer) {
	rows := min(p.SampleSize, report.N, len(report.First), len(report.Second))
	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.Reset()
		fmt.Fprintf(&b, "First value: %s | Second value: %s", format.Fixed2(report.First[i]), format.Fixed2(report.Second[i]))
		for _, res := range report.Results {
			fmt.Fprintf(&b, " | %s result: %s", strategyLabel(res.Name), sampleValue(res, i))
		}
		fmt.Fprintln(out, b.String())
	}
}

// sampleValue renders the i-th sum of res, or "n/a" when it is unavailable.
func sampleValue(res orchestration.StrategyResult, i int) string {
	if res.Err != nil || i >= len(res.Sum) {
		return "n/a"
	}
	return format.Fixed2(res.Sum[i])
}

func (p CLIResultPresenter) presentStatistics(report orchestration.Report, out io.Writer) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n%s\n", ui.Paint(t.Bold, "Run statistics:"))
	fmt.Fprintf(out, "  Run ID   : %s\n", report.RunID)
	fmt.Fprintf(out, "  Elements : %s\n", format.Integer(report.N))
	fmt.Fprintf(out, "  Chunks   : %d\n", report.Chunks)
	fmt.Fprintf(out, "  Workers  : %d\n", report.Workers)
	for _, res := range report.Results {
		if res.Err != nil {
			continue
		}
		line := fmt.Sprintf("  %-9s: runs %d, mean %s, best %s",
			strategyLabel(res.Name), len(res.Durations),
			format.FormatExecutionDuration(res.Mean()), format.FormatExecutionDuration(res.Best()))
		if len(res.Durations) > 1 {
			line += " " + ui.Paint(t.Secondary, format.Sparkline(res.Durations))
		}
		fmt.Fprintln(out, line)
	}
	seq, okSeq := report.Lookup("sequential")
	par, okPar := report.Lookup("parallel")
	if okSeq && okPar && seq.Err == nil && par.Err == nil {
		if ratio := format.Speedup(seq.Best(), par.Best()); ratio > 0 {
			fmt.Fprintf(out, "  Speedup  : %s\n", ui.Paint(t.Success, fmt.Sprintf("%.2fx", ratio)))
		}
	}
}

// PresentMismatch reports the first index where the strategies disagree.
func (CLIResultPresenter) PresentMismatch(report orchestration.Report, out io.Writer) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n%s\n", ui.Paint(t.Error, "Global Status: CRITICAL ERROR! The strategies produced different results."))
	idx, a, b, ok := firstDifference(report.Results)
	if ok {
		fmt.Fprintf(out, "First difference at index %d: %s != %s\n", idx, format.Fixed2(a), format.Fixed2(b))
	}
}

// firstDifference compares the sums of every successful strategy against the
// first successful one.
func firstDifference(results []orchestration.StrategyResult) (int, float64, float64, bool) {
	var ref []float64
	found := false
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if !found {
			ref, found = r.Sum, true
			continue
		}
		for i := range min(len(ref), len(r.Sum)) {
			if ref[i] != r.Sum[i] {
				return i, ref[i], r.Sum[i], true
			}
		}
	}
	return 0, 0, 0, false
}

// DisplayMemoryStats prints what the run allocated.
func DisplayMemoryStats(mem metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.Paint(ui.GetCurrentTheme().Bold, "Memory:"))
	fmt.Fprintf(out, "  Allocated : %s bytes\n", format.Integer(int(mem.TotalAlloc)))
	fmt.Fprintf(out, "  Heap      : %s bytes\n", format.Integer(int(mem.HeapAlloc)))
	fmt.Fprintf(out, "  GC cycles : %d (pause %s)\n", mem.NumGC, format.FormatExecutionDuration(time.Duration(mem.PauseTotalNs)))
}

// DisplayHost prints the machine description and a resource usage sample.
func DisplayHost(host sysmon.Host, stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.Paint(ui.GetCurrentTheme().Bold, "Host:"))
	model := host.ModelName
	if model == "" {
		model = "unknown"
	}
	fmt.Fprintf(out, "  CPU   : %s (%s, %d logical)\n", model, host.Arch, host.LogicalCPU)
	simd := "none"
	if len(host.SIMD) > 0 {
		simd = strings.Join(host.SIMD, ", ")
	}
	fmt.Fprintf(out, "  SIMD  : %s\n", simd)
	fmt.Fprintf(out, "  Usage : CPU %.1f%%, memory %.1f%%\n", stats.CPUPercent, stats.MemPercent)
}
