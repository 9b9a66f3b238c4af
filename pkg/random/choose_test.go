package random

import (
	"errors"
	"sort"
	"testing"

	"randkit/internal/stats"
)

func TestOneEmptyInput(t *testing.T) {
	rng := New(1)
	if _, err := One(rng, []string{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("empty slice: want ErrEmptyInput, got %v", err)
	}
	if _, err := One(rng, []string(nil)); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("nil slice: want ErrEmptyInput, got %v", err)
	}
}

func TestOneUniformFrequency(t *testing.T) {
	rng := New(42)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	const trials = 40000
	counts := make([]int, len(items))
	for i := 0; i < trials; i++ {
		v, err := One(rng, items)
		if err != nil {
			t.Fatalf("One failed: %v", err)
		}
		counts[v]++
	}

	expected := trials / len(items)
	for i, c := range counts {
		if c < expected*9/10 || c > expected*11/10 {
			t.Fatalf("item %d count %d strays past 10%% of expected %d", i, c, expected)
		}
	}
	gof, err := stats.ChiSquareUniform(counts)
	if err != nil {
		t.Fatal(err)
	}
	if gof.P < 1e-6 {
		t.Fatalf("uniform choice fails goodness-of-fit: chi2=%.2f p=%g", gof.Stat, gof.P)
	}
}

func TestWeightedEmptyInput(t *testing.T) {
	rng := New(1)
	if _, err := Weighted(rng, []int{}, func(int) float64 { return 1 }); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("want ErrEmptyInput, got %v", err)
	}
}

func TestWeightedAllZero(t *testing.T) {
	rng := New(1)
	_, err := Weighted(rng, []int{1, 2, 3}, func(int) float64 { return 0 })
	if !errors.Is(err, ErrNonPositiveWeight) {
		t.Fatalf("want ErrNonPositiveWeight, got %v", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatal("ErrNonPositiveWeight must wrap ErrInvalidArgument")
	}
}

func TestWeightedZeroWeightNeverChosen(t *testing.T) {
	rng := New(3)
	weights := []float64{0, 0, 5}
	for i := 0; i < 10000; i++ {
		v, err := Weighted(rng, []int{0, 1, 2}, func(i int) float64 { return weights[i] })
		if err != nil {
			t.Fatalf("Weighted failed: %v", err)
		}
		if v != 2 {
			t.Fatalf("zero-weight element %d chosen on trial %d", v, i)
		}
	}
}

func TestWeightedFlatMatchesUniform(t *testing.T) {
	rng := New(7)
	items := []int{0, 1, 2, 3}
	const trials = 40000
	counts := make([]int, len(items))
	for i := 0; i < trials; i++ {
		v, err := Weighted(rng, items, func(int) float64 { return 1 })
		if err != nil {
			t.Fatalf("Weighted failed: %v", err)
		}
		counts[v]++
	}
	gof, err := stats.ChiSquareUniform(counts)
	if err != nil {
		t.Fatal(err)
	}
	if gof.P < 1e-6 {
		t.Fatalf("flat weights diverge from uniform: chi2=%.2f p=%g", gof.Stat, gof.P)
	}
}

func TestWeightedProportions(t *testing.T) {
	rng := New(11)
	weights := []float64{1, 3}
	const trials = 40000
	counts := make([]int, 2)
	for i := 0; i < trials; i++ {
		v, err := Weighted(rng, []int{0, 1}, func(i int) float64 { return weights[i] })
		if err != nil {
			t.Fatalf("Weighted failed: %v", err)
		}
		counts[v]++
	}
	// Expect roughly 25% / 75%.
	if counts[0] < trials/4*8/10 || counts[0] > trials/4*12/10 {
		t.Fatalf("weight-1 element count %d strays past 20%% of expected %d", counts[0], trials/4)
	}
}

// TestWeightedBoundaryDraw pins the scalar source at 0.5 and checks the
// strict-exceed scan rule: with weights [1,1] the threshold lands exactly on
// the first element's running total, which must not satisfy the scan.
func TestWeightedBoundaryDraw(t *testing.T) {
	rng := NewFromSource(fixedSource{u: 1 << 52})
	v, err := Weighted(rng, []string{"a", "b"}, func(string) float64 { return 1 })
	if err != nil {
		t.Fatalf("Weighted failed: %v", err)
	}
	if v != "b" {
		t.Fatalf("boundary draw: want %q, got %q", "b", v)
	}
}

// TestWeightedScanExhaustionFallback forces the scan to run off the end by
// having the weight function shrink between the total pass and the scan pass
// (weights are recomputed, never cached). The defined fallback is the last
// element, not an error.
func TestWeightedScanExhaustionFallback(t *testing.T) {
	rng := NewFromSource(fixedSource{u: 1 << 52})
	calls := 0
	shrinking := func(int) float64 {
		calls++
		if calls <= 3 {
			return 1 // totalling pass: W = 3
		}
		return 0 // scan pass: accumulation never crosses 1.5
	}
	v, err := Weighted(rng, []int{10, 20, 30}, shrinking)
	if err != nil {
		t.Fatalf("Weighted failed: %v", err)
	}
	if v != 30 {
		t.Fatalf("exhausted scan: want last element 30, got %d", v)
	}
}

func TestFilteredNoMatch(t *testing.T) {
	rng := New(1)
	_, err := Filtered(rng, []int{1, 3, 5}, func(v int) bool { return v%2 == 0 })
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("want ErrNoMatch, got %v", err)
	}
	// An empty input also reports ErrNoMatch, not ErrEmptyInput.
	_, err = Filtered(rng, []int(nil), func(int) bool { return true })
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("empty input: want ErrNoMatch, got %v", err)
	}
	if errors.Is(err, ErrEmptyInput) {
		t.Fatal("filtered selection must not report ErrEmptyInput")
	}
}

func TestFilteredOnlyMatchingChosen(t *testing.T) {
	rng := New(5)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for i := 0; i < 2000; i++ {
		v, err := Filtered(rng, items, func(v int) bool { return v%2 == 0 })
		if err != nil {
			t.Fatalf("Filtered failed: %v", err)
		}
		if v%2 != 0 {
			t.Fatalf("predicate-rejected element %d chosen", v)
		}
	}
}

func TestFilteredWeightedSkipsRejectedWeights(t *testing.T) {
	rng := New(5)
	var weighed []int
	_, err := FilteredWeighted(rng, []int{1, 2, 3, 4},
		func(v int) bool { return v%2 == 0 },
		func(v int) float64 {
			weighed = append(weighed, v)
			return float64(v)
		})
	if err != nil {
		t.Fatalf("FilteredWeighted failed: %v", err)
	}
	for _, v := range weighed {
		if v%2 != 0 {
			t.Fatalf("weight evaluated for rejected element %d", v)
		}
	}
}

func TestFilteredWeightedNoMatch(t *testing.T) {
	rng := New(1)
	_, err := FilteredWeighted(rng, []int{1, 3},
		func(v int) bool { return v > 10 },
		func(int) float64 { return 1 })
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("want ErrNoMatch, got %v", err)
	}
}

func TestFilteredOK(t *testing.T) {
	rng := New(1)
	if _, ok := FilteredOK(rng, []int{1, 3}, func(v int) bool { return v%2 == 0 }); ok {
		t.Fatal("no match must report ok=false")
	}
	// A matched zero value stays distinguishable from "no match".
	v, ok := FilteredOK(rng, []int{0}, func(v int) bool { return v == 0 })
	if !ok || v != 0 {
		t.Fatalf("matched zero value: want (0,true), got (%d,%v)", v, ok)
	}
}

func TestSubsetNegativeCount(t *testing.T) {
	rng := New(1)
	if _, err := Subset(rng, []int{1, 2, 3}, -1); !errors.Is(err, ErrNegativeCount) {
		t.Fatal("negative count must fail with ErrNegativeCount")
	}
}

func TestSubsetFullPermutation(t *testing.T) {
	rng := New(9)
	items := []int{4, 8, 15, 16, 23, 42}
	for _, count := range []int{len(items), len(items) + 5} {
		subset, err := Subset(rng, items, count)
		if err != nil {
			t.Fatalf("Subset failed: %v", err)
		}
		if len(subset) != len(items) {
			t.Fatalf("count %d: want all %d items, got %d", count, len(items), len(subset))
		}
		got := append([]int(nil), subset...)
		want := append([]int(nil), items...)
		sort.Ints(got)
		sort.Ints(want)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("count %d: result is not a permutation of the input", count)
			}
		}
	}
}

func TestSubsetDistinctPositions(t *testing.T) {
	rng := New(13)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	for trial := 0; trial < 1000; trial++ {
		subset, err := Subset(rng, items, 4)
		if err != nil {
			t.Fatalf("Subset failed: %v", err)
		}
		if len(subset) != 4 {
			t.Fatalf("want 4 elements, got %d", len(subset))
		}
		seen := map[int]bool{}
		for _, v := range subset {
			if seen[v] {
				t.Fatalf("trial %d: element %d repeated", trial, v)
			}
			seen[v] = true
		}
	}
}

func TestSubsetDoesNotMutateInput(t *testing.T) {
	rng := New(2)
	items := []int{1, 2, 3, 4, 5}
	orig := append([]int(nil), items...)
	if _, err := Subset(rng, items, 3); err != nil {
		t.Fatalf("Subset failed: %v", err)
	}
	for i := range orig {
		if items[i] != orig[i] {
			t.Fatal("Subset mutated its input")
		}
	}
}

func TestSubsetInclusionFrequency(t *testing.T) {
	rng := New(21)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	const trials = 10000
	hits := 0
	for i := 0; i < trials; i++ {
		subset, err := Subset(rng, items, 3)
		if err != nil {
			t.Fatalf("Subset failed: %v", err)
		}
		for _, v := range subset {
			if v == 0 {
				hits++
				break
			}
		}
	}
	// Element 0 belongs to a 3-of-10 subset 30% of the time.
	expected := trials * 3 / 10
	if hits < expected*85/100 || hits > expected*115/100 {
		t.Fatalf("inclusion count %d strays past 15%% of expected %d", hits, expected)
	}
}
