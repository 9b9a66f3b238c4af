// Command randkit is the command-line face of the toolkit: uniform and
// weighted picks over input lines, shuffles, Bernoulli trials, and point
// sampling on the unit manifolds.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"randkit/pkg/random"
)

func main() {
	root := &cli.Command{
		Name:  "randkit",
		Usage: "randomization toolkit",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "seed",
				Usage: "generator seed (0 seeds from the clock)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "pick",
				Usage:     "Pick lines from stdin uniformly at random",
				ArgsUsage: "< lines",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "number of distinct lines to pick",
						Value:   1,
					},
					&cli.BoolFlag{
						Name:    "weighted",
						Aliases: []string{"w"},
						Usage:   "treat the first field of each line as its weight",
					},
				},
				Action: pickAction,
			},
			{
				Name:      "shuffle",
				Usage:     "Print the lines of stdin in uniformly random order",
				ArgsUsage: "< lines",
				Action:    shuffleAction,
			},
			{
				Name:      "chance",
				Usage:     "Run a Bernoulli trial with the given probability",
				ArgsUsage: "<probability>",
				Action:    chanceAction,
			},
			{
				Name:      "point",
				Usage:     "Sample points on or in a unit manifold",
				ArgsUsage: "circle|disk|sphere|ball",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "number of points to sample",
						Value:   1,
					},
				},
				Action: pointAction,
			},
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func rngFor(cmd *cli.Command) *random.RNG {
	seed := int64(cmd.Int("seed"))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return random.New(seed)
}

func readLines(r *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func pickAction(ctx context.Context, cmd *cli.Command) error {
	lines, err := readLines(os.Stdin)
	if err != nil {
		return err
	}
	rng := rngFor(cmd)

	if cmd.Bool("weighted") {
		return pickWeighted(rng, lines)
	}

	count := cmd.Int("count")
	if count == 1 {
		line, err := random.One(rng, lines)
		if err != nil {
			return err
		}
		fmt.Println(line)
		return nil
	}
	picked, err := random.Subset(rng, lines, count)
	if err != nil {
		return err
	}
	for _, line := range picked {
		fmt.Println(line)
	}
	return nil
}

func pickWeighted(rng *random.RNG, lines []string) error {
	type entry struct {
		weight float64
		value  string
	}
	entries := make([]entry, 0, len(lines))
	for i, line := range lines {
		field, rest, ok := strings.Cut(strings.TrimSpace(line), "\t")
		if !ok {
			field, rest, ok = strings.Cut(strings.TrimSpace(line), " ")
		}
		if !ok {
			return fmt.Errorf("line %d: want \"<weight> <value>\"", i+1)
		}
		w, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("line %d: bad weight %q: %w", i+1, field, err)
		}
		entries = append(entries, entry{weight: w, value: rest})
	}
	chosen, err := random.Weighted(rng, entries, func(e entry) float64 { return e.weight })
	if err != nil {
		return err
	}
	fmt.Println(chosen.value)
	return nil
}

func shuffleAction(ctx context.Context, cmd *cli.Command) error {
	lines, err := readLines(os.Stdin)
	if err != nil {
		return err
	}
	random.Shuffle(rngFor(cmd), lines)
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

func chanceAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("chance needs exactly one probability argument")
	}
	p, err := strconv.ParseFloat(cmd.Args().First(), 64)
	if err != nil {
		return fmt.Errorf("bad probability %q: %w", cmd.Args().First(), err)
	}
	fmt.Println(rngFor(cmd).Chance(p))
	return nil
}

func pointAction(ctx context.Context, cmd *cli.Command) error {
	shape := cmd.Args().First()
	rng := rngFor(cmd)
	count := cmd.Int("count")
	for i := 0; i < count; i++ {
		switch shape {
		case "circle":
			p := rng.OnUnitCircle()
			fmt.Printf("%g %g\n", p.X, p.Y)
		case "disk":
			p := rng.InUnitDisk()
			fmt.Printf("%g %g\n", p.X, p.Y)
		case "sphere":
			p := rng.OnUnitSphere()
			fmt.Printf("%g %g %g\n", p.X, p.Y, p.Z)
		case "ball":
			p := rng.InUnitBall()
			fmt.Printf("%g %g %g\n", p.X, p.Y, p.Z)
		default:
			return fmt.Errorf("unknown shape %q (want circle, disk, sphere or ball)", shape)
		}
	}
	return nil
}
