package random

import (
	"sort"
	"testing"

	"randkit/internal/stats"
)

func TestShuffleShortSequences(t *testing.T) {
	rng := New(1)

	var empty []int
	Shuffle(rng, empty) // must not panic

	single := []int{42}
	Shuffle(rng, single)
	if single[0] != 42 {
		t.Fatal("length-1 shuffle must be a no-op")
	}
}

func TestShufflePreservesMultiset(t *testing.T) {
	rng := New(3)
	s := []int{5, 5, 1, 9, 2, 2, 2, 8}
	want := append([]int(nil), s...)
	sort.Ints(want)

	Shuffle(rng, s)
	got := append([]int(nil), s...)
	sort.Ints(got)

	for i := range want {
		if got[i] != want[i] {
			t.Fatal("shuffle changed the multiset of elements")
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8}
	b := append([]int(nil), a...)
	Shuffle(New(77), a)
	Shuffle(New(77), b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed must produce the same permutation")
		}
	}
}

func TestShufflePermutationFrequencies(t *testing.T) {
	rng := New(23)
	slots := map[[3]int]int{
		{0, 1, 2}: 0, {0, 2, 1}: 1, {1, 0, 2}: 2,
		{1, 2, 0}: 3, {2, 0, 1}: 4, {2, 1, 0}: 5,
	}
	const trials = 60000
	counts := make([]int, 6)
	for i := 0; i < trials; i++ {
		s := [3]int{0, 1, 2}
		Shuffle(rng, s[:])
		slot, ok := slots[s]
		if !ok {
			t.Fatalf("shuffle produced non-permutation %v", s)
		}
		counts[slot]++
	}

	expected := trials / 6
	for perm, slot := range slots {
		c := counts[slot]
		if c < expected*9/10 || c > expected*11/10 {
			t.Fatalf("permutation %v count %d strays past 10%% of expected %d", perm, c, expected)
		}
	}
	gof, err := stats.ChiSquareUniform(counts)
	if err != nil {
		t.Fatal(err)
	}
	if gof.P < 1e-6 {
		t.Fatalf("permutations diverge from uniform: chi2=%.2f p=%g", gof.Stat, gof.P)
	}
}

func TestPerm(t *testing.T) {
	rng := New(4)
	p := Perm(rng, 10)
	if len(p) != 10 {
		t.Fatalf("want 10 entries, got %d", len(p))
	}
	seen := make([]bool, 10)
	for _, v := range p {
		if v < 0 || v >= 10 || seen[v] {
			t.Fatalf("not a permutation of [0,10): %v", p)
		}
		seen[v] = true
	}
	if Perm(rng, 0) != nil || Perm(rng, -1) != nil {
		t.Fatal("non-positive n must yield an empty permutation")
	}
}
