package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/arraysum/internal/format"
	"github.com/agbru/arraysum/internal/ui"
)

// ExecutionConfig is what DisplayExecutionConfig prints before a run.
type ExecutionConfig struct {
	Elements int
	Chunks   int
	Workers  int
	Executor string
	Kernel   string
	GCMode   string
	Runs     int
	Seed     uint64
}

// DisplayExecutionConfig prints the parameters of the upcoming run.
func DisplayExecutionConfig(cfg ExecutionConfig, out io.Writer) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Summing %s elements in %d chunks, %d run(s) per strategy.\n",
		ui.Paint(t.Primary, format.Integer(cfg.Elements)), cfg.Chunks, cfg.Runs)
	fmt.Fprintf(out, "Executor %s with %d worker(s), %s kernel.\n",
		ui.Paint(t.Success, cfg.Executor), cfg.Workers, ui.Paint(t.Success, cfg.Kernel))
	fmt.Fprintf(out, "Environment: %d logical processors, Go %s.\n", runtime.NumCPU(), runtime.Version())
	fmt.Fprintf(out, "Garbage collector during timing: %s.\n", cfg.GCMode)
	fmt.Fprintf(out, "Seed: %d\n\n", cfg.Seed)
}
