package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer formats numbers with English digit grouping ("1,234,567.89"),
// which is how durations and values are shown to the user.
var Printer = message.NewPrinter(language.English)

// Nanoseconds renders d as a grouped integer count of nanoseconds.
func Nanoseconds(d time.Duration) string {
	return Printer.Sprintf("%d", d.Nanoseconds())
}

// Fixed2 renders v with two decimal places and digit grouping.
func Fixed2(v float64) string {
	return Printer.Sprintf("%.2f", v)
}

// Integer renders n with digit grouping.
func Integer(n int) string {
	return Printer.Sprintf("%d", n)
}

// Speedup returns sequential/parallel, or 0 when parallel is zero.
func Speedup(sequential, parallel time.Duration) float64 {
	if parallel <= 0 {
		return 0
	}
	return float64(sequential) / float64(parallel)
}
