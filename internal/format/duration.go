// Package format renders durations and numbers for the reports.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration picks the coarsest unit that still shows the
// duration as a whole number: ns below a microsecond, µs below a
// millisecond, ms below a second, and time.Duration's own form above.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
