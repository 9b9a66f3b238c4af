// Package stats provides the statistical verification helpers shared by the
// test suites and the headless acceptance tools: fixed-bin histograms,
// chi-square goodness-of-fit, and descriptive summaries.
package stats

// Histogram counts observations over equal-width bins spanning [Lo, Hi).
// Values outside the span are counted separately instead of clamped.
type Histogram struct {
	Lo, Hi  float64
	counts  []int
	outside int
}

// NewHistogram allocates a histogram with the given span and bin count.
func NewHistogram(lo, hi float64, bins int) *Histogram {
	if bins <= 0 {
		bins = 1
	}
	if hi <= lo {
		hi = lo + 1
	}
	return &Histogram{Lo: lo, Hi: hi, counts: make([]int, bins)}
}

// Observe records one value.
func (h *Histogram) Observe(v float64) {
	if v < h.Lo || v >= h.Hi {
		h.outside++
		return
	}
	i := int((v - h.Lo) / (h.Hi - h.Lo) * float64(len(h.counts)))
	if i >= len(h.counts) {
		// Rounding at the upper edge can land one past the final bin.
		i = len(h.counts) - 1
	}
	h.counts[i]++
}

// Counts exposes the per-bin tallies.
func (h *Histogram) Counts() []int { return h.counts }

// Outside reports how many observed values fell outside [Lo, Hi).
func (h *Histogram) Outside() int { return h.outside }

// Total reports how many observations landed inside the span.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.counts {
		total += c
	}
	return total
}
