//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/arraysum/internal/orchestration"
)

// SpinnerRefreshRate is the animation interval of the phase spinner.
const SpinnerRefreshRate = 100 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the phase reporter from a specific
// spinner implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerReporter implements orchestration.PhaseReporter with a terminal
// spinner whose suffix names the running phase.
type SpinnerReporter struct {
	mu      sync.Mutex
	out     io.Writer
	spinner Spinner
}

var _ orchestration.PhaseReporter = (*SpinnerReporter)(nil)

// NewSpinnerReporter creates a reporter drawing on out.
func NewSpinnerReporter(out io.Writer) *SpinnerReporter {
	return &SpinnerReporter{out: out}
}

// Begin starts the spinner for phase. A spinner still running from an
// earlier phase is stopped first.
func (r *SpinnerReporter) Begin(phase, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spinner != nil {
		r.spinner.Stop()
	}
	r.spinner = newSpinner(spinner.WithWriter(r.out), spinner.WithHiddenCursor(true))
	suffix := " " + phase
	if detail != "" {
		suffix += " " + detail
	}
	r.spinner.UpdateSuffix(suffix + "...")
	r.spinner.Start()
}

// End stops the spinner.
func (r *SpinnerReporter) End(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spinner != nil {
		r.spinner.Stop()
		r.spinner = nil
	}
}
