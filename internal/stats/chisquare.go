package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// GOFResult is the outcome of a chi-square goodness-of-fit test.
type GOFResult struct {
	Stat float64
	DF   int
	P    float64
}

// ChiSquare computes Pearson's goodness-of-fit statistic for observed bin
// counts against expected counts, with len-1 degrees of freedom, and the
// p-value under the chi-squared distribution.
func ChiSquare(observed []int, expected []float64) (GOFResult, error) {
	if len(observed) != len(expected) {
		return GOFResult{}, fmt.Errorf("chi-square: %d observed bins vs %d expected", len(observed), len(expected))
	}
	if len(observed) < 2 {
		return GOFResult{}, fmt.Errorf("chi-square: need at least 2 bins, got %d", len(observed))
	}

	stat := 0.0
	for i, o := range observed {
		e := expected[i]
		if e <= 0 {
			return GOFResult{}, fmt.Errorf("chi-square: expected count in bin %d must be positive, got %g", i, e)
		}
		d := float64(o) - e
		stat += d * d / e
	}

	df := len(observed) - 1
	dist := distuv.ChiSquared{K: float64(df)}
	return GOFResult{Stat: stat, DF: df, P: dist.Survival(stat)}, nil
}

// ChiSquareUniform tests observed bin counts against a flat expectation.
func ChiSquareUniform(observed []int) (GOFResult, error) {
	total := 0
	for _, o := range observed {
		total += o
	}
	if total == 0 {
		return GOFResult{}, fmt.Errorf("chi-square: no observations")
	}
	expected := make([]float64, len(observed))
	for i := range expected {
		expected[i] = float64(total) / float64(len(observed))
	}
	return ChiSquare(observed, expected)
}
