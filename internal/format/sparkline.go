package format

import "time"

// sparklineChars maps levels 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders one block per duration, scaled between the shortest
// (▁) and the longest (█) of ds. Equal durations all render as ▄.
func Sparkline(ds []time.Duration) string {
	if len(ds) == 0 {
		return ""
	}
	lo, hi := ds[0], ds[0]
	for _, d := range ds[1:] {
		lo = min(lo, d)
		hi = max(hi, d)
	}
	runes := make([]rune, len(ds))
	for i, d := range ds {
		if hi == lo {
			runes[i] = sparklineChars[3]
			continue
		}
		idx := int(float64(d-lo) * 7 / float64(hi-lo))
		runes[i] = sparklineChars[min(max(idx, 0), 7)]
	}
	return string(runes)
}
