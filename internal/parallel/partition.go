package parallel

// Range is a half-open interval [Start, End) of indices.
type Range struct {
	Start, End int
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.End - r.Start }

// Partition splits [0, n) into chunks contiguous ranges in ascending order.
// When n is a multiple of chunks every range has exactly n/chunks elements;
// otherwise boundaries fall at i*n/chunks so that sizes differ by at most one.
// If chunks exceeds n, only n single-element ranges are returned.
func Partition(n, chunks int) []Range {
	if n <= 0 || chunks <= 0 {
		return nil
	}
	chunks = min(chunks, n)
	ranges := make([]Range, chunks)
	for i := range ranges {
		ranges[i] = Range{Start: i * n / chunks, End: (i + 1) * n / chunks}
	}
	return ranges
}
