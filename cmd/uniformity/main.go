// Command uniformity runs the toolkit's statistical acceptance sweep: every
// distributional claim the library makes is re-checked empirically across
// many independent seeds, and the per-seed chi-square p-values are reported.
// A healthy generator produces p-values spread over (0, 1); a p-value below
// the alpha threshold on any seed fails the sweep.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"randkit/internal/stats"
	"randkit/pkg/random"
)

type check struct {
	name string
	// run performs one seeded pass and reports a p-value in (0, 1]; hard
	// violations (wrong support, missing error) are returned as errors.
	run func(rng *random.RNG, trials int) (float64, error)
}

func main() {
	seeds := flag.Int("seeds", 20, "independent seeds per check")
	trials := flag.Int("trials", 20000, "trials per seed")
	alpha := flag.Float64("alpha", 0.0005, "per-seed p-value failure threshold")
	workers := flag.Int("workers", runtime.NumCPU(), "worker goroutines")
	base := flag.Int64("seed", 1, "base seed")
	flag.Parse()

	checks := buildChecks()
	failed := false

	for ci, c := range checks {
		pvalues := make([]float64, *seeds)
		var g errgroup.Group
		g.SetLimit(*workers)
		for si := 0; si < *seeds; si++ {
			g.Go(func() error {
				rng := random.New(*base + int64(ci)*1_000_003 + int64(si))
				p, err := c.run(rng, *trials)
				if err != nil {
					return fmt.Errorf("%s seed %d: %w", c.name, si, err)
				}
				pvalues[si] = p
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.Printf("FAIL %-22s %v", c.name, err)
			failed = true
			continue
		}

		minP := 1.0
		for _, p := range pvalues {
			if p < minP {
				minP = p
			}
		}
		summary, err := stats.Summarize(pvalues)
		if err != nil {
			log.Fatalf("summarize %s: %v", c.name, err)
		}

		verdict := "ok"
		if minP < *alpha {
			verdict = "FAIL"
			failed = true
		}
		fmt.Printf("%-4s %-22s min_p=%.5f %s\n", verdict, c.name, minP, summary)
	}

	if failed {
		os.Exit(1)
	}
}

func buildChecks() []check {
	return []check{
		{name: "uniform-choice", run: checkUniformChoice},
		{name: "weighted-flat", run: checkWeightedFlat},
		{name: "weighted-proportional", run: checkWeightedProportional},
		{name: "weighted-zero-excluded", run: checkWeightedZeroExcluded},
		{name: "weighted-all-zero", run: checkWeightedAllZero},
		{name: "chance-rate", run: checkChanceRate},
		{name: "shuffle-permutations", run: checkShufflePermutations},
		{name: "subset-frequency", run: checkSubsetFrequency},
		{name: "circle-magnitude", run: checkCircleMagnitude},
		{name: "disk-radius", run: checkDiskRadius},
		{name: "sphere-z", run: checkSphereZ},
		{name: "ball-radius", run: checkBallRadius},
	}
}

func checkUniformChoice(rng *random.RNG, trials int) (float64, error) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	counts := make([]int, len(items))
	for i := 0; i < trials; i++ {
		v, err := random.One(rng, items)
		if err != nil {
			return 0, err
		}
		counts[v]++
	}
	gof, err := stats.ChiSquareUniform(counts)
	return gof.P, err
}

func checkWeightedFlat(rng *random.RNG, trials int) (float64, error) {
	items := []int{0, 1, 2, 3, 4, 5}
	flat := func(int) float64 { return 1 }
	counts := make([]int, len(items))
	for i := 0; i < trials; i++ {
		v, err := random.Weighted(rng, items, flat)
		if err != nil {
			return 0, err
		}
		counts[v]++
	}
	gof, err := stats.ChiSquareUniform(counts)
	return gof.P, err
}

func checkWeightedProportional(rng *random.RNG, trials int) (float64, error) {
	weights := []float64{1, 3}
	counts := make([]int, len(weights))
	for i := 0; i < trials; i++ {
		v, err := random.Weighted(rng, []int{0, 1}, func(i int) float64 { return weights[i] })
		if err != nil {
			return 0, err
		}
		counts[v]++
	}
	expected := []float64{float64(trials) * 0.25, float64(trials) * 0.75}
	gof, err := stats.ChiSquare(counts, expected)
	return gof.P, err
}

func checkWeightedZeroExcluded(rng *random.RNG, trials int) (float64, error) {
	weights := []float64{0, 0, 5}
	for i := 0; i < trials; i++ {
		v, err := random.Weighted(rng, []int{0, 1, 2}, func(i int) float64 { return weights[i] })
		if err != nil {
			return 0, err
		}
		if v != 2 {
			return 0, fmt.Errorf("zero-weight element %d selected", v)
		}
	}
	return 1, nil
}

func checkWeightedAllZero(rng *random.RNG, _ int) (float64, error) {
	_, err := random.Weighted(rng, []int{0, 1, 2}, func(int) float64 { return 0 })
	if !errors.Is(err, random.ErrInvalidArgument) {
		return 0, fmt.Errorf("all-zero weights: want invalid-argument, got %v", err)
	}
	return 1, nil
}

func checkChanceRate(rng *random.RNG, trials int) (float64, error) {
	counts := make([]int, 2)
	for i := 0; i < trials; i++ {
		if rng.Chance(0.5) {
			counts[1]++
		} else {
			counts[0]++
		}
	}
	gof, err := stats.ChiSquareUniform(counts)
	return gof.P, err
}

func checkShufflePermutations(rng *random.RNG, trials int) (float64, error) {
	slots := map[[3]int]int{
		{0, 1, 2}: 0, {0, 2, 1}: 1, {1, 0, 2}: 2,
		{1, 2, 0}: 3, {2, 0, 1}: 4, {2, 1, 0}: 5,
	}
	counts := make([]int, len(slots))
	for i := 0; i < trials; i++ {
		s := [3]int{0, 1, 2}
		seq := s[:]
		random.Shuffle(rng, seq)
		slot, ok := slots[s]
		if !ok {
			return 0, fmt.Errorf("shuffle produced non-permutation %v", s)
		}
		counts[slot]++
	}
	gof, err := stats.ChiSquareUniform(counts)
	return gof.P, err
}

func checkSubsetFrequency(rng *random.RNG, trials int) (float64, error) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	const take = 4
	hits := 0
	for i := 0; i < trials; i++ {
		subset, err := random.Subset(rng, items, take)
		if err != nil {
			return 0, err
		}
		seen := map[int]bool{}
		for _, v := range subset {
			if seen[v] {
				return 0, fmt.Errorf("subset repeated element %d", v)
			}
			seen[v] = true
		}
		if seen[0] {
			hits++
		}
	}
	// Element 0 belongs to the subset with probability take/N.
	want := float64(trials) * take / float64(len(items))
	gof, err := stats.ChiSquare([]int{hits, trials - hits}, []float64{want, float64(trials) - want})
	return gof.P, err
}

func checkCircleMagnitude(rng *random.RNG, trials int) (float64, error) {
	for i := 0; i < trials; i++ {
		if m := rng.OnUnitCircle().Len(); math.Abs(m-1) > 1e-9 {
			return 0, fmt.Errorf("circle point magnitude %g", m)
		}
	}
	return 1, nil
}

func checkDiskRadius(rng *random.RNG, trials int) (float64, error) {
	// Uniform areal density makes r² uniform on [0, 1).
	hist := stats.NewHistogram(0, 1, 10)
	for i := 0; i < trials; i++ {
		p := rng.InUnitDisk()
		if p.Len() > 1+1e-9 {
			return 0, fmt.Errorf("disk point outside disk: %v", p)
		}
		hist.Observe(p.Len2())
	}
	gof, err := stats.ChiSquareUniform(hist.Counts())
	return gof.P, err
}

func checkSphereZ(rng *random.RNG, trials int) (float64, error) {
	hist := stats.NewHistogram(-1, 1, 16)
	for i := 0; i < trials; i++ {
		p := rng.OnUnitSphere()
		if m := p.Len(); math.Abs(m-1) > 1e-9 {
			return 0, fmt.Errorf("sphere point magnitude %g", m)
		}
		hist.Observe(p.Z)
	}
	gof, err := stats.ChiSquareUniform(hist.Counts())
	return gof.P, err
}

func checkBallRadius(rng *random.RNG, trials int) (float64, error) {
	// Uniform volumetric density makes r³ uniform on [0, 1).
	hist := stats.NewHistogram(0, 1, 10)
	for i := 0; i < trials; i++ {
		p := rng.InUnitBall()
		if p.Len() > 1+1e-9 {
			return 0, fmt.Errorf("ball point outside ball: %v", p)
		}
		r := p.Len()
		hist.Observe(r * r * r)
	}
	gof, err := stats.ChiSquareUniform(hist.Counts())
	return gof.P, err
}
