// Package walk runs a handful of biased random walkers over a toroidal
// canvas, leaving density trails. It exercises the discrete-selection side of
// the toolkit: weighted direction choice, Bernoulli turn decisions, and a
// shuffle of the update order every tick.
package walk

import (
	"fmt"
	"strconv"

	"randkit/internal/core"
	"randkit/pkg/random"
)

// Config holds the tunables for the walk demo.
type Config struct {
	Width    int
	Height   int
	Walkers  int
	TurnProb float64
	Inertia  float64
	Seed     int64
}

// DefaultConfig returns the canvas and walker defaults.
func DefaultConfig() Config {
	return Config{Width: 240, Height: 240, Walkers: 24, TurnProb: 0.35, Inertia: 3, Seed: 1}
}

// FromMap overlays string-keyed settings onto the default configuration.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if v, ok := cfg["width"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Width = n
		}
	}
	if v, ok := cfg["height"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Height = n
		}
	}
	if v, ok := cfg["walkers"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Walkers = n
		}
	}
	if v, ok := cfg["turn"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.TurnProb = f
		}
	}
	if v, ok := cfg["inertia"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			c.Inertia = f
		}
	}
	if v, ok := cfg["seed"]; ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	return c
}

type direction struct {
	dx, dy int
}

var directions = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

type walker struct {
	x, y int
	dir  direction
}

// Demo advances the walkers and deposits their trails.
type Demo struct {
	cfg     Config
	grid    *core.DensityGrid
	rng     *random.RNG
	walkers []*walker
	ticks   int
}

// New constructs a walk demo from the provided configuration.
func New(cfg Config) *Demo {
	d := &Demo{cfg: cfg, grid: core.NewDensityGrid(cfg.Width, cfg.Height)}
	d.Reset(cfg.Seed)
	return d
}

// Name returns the demo identifier.
func (d *Demo) Name() string { return "walk" }

// Size returns the canvas dimensions.
func (d *Demo) Size() core.Size { return core.Size{W: d.grid.W, H: d.grid.H} }

// Cells exposes the trail canvas.
func (d *Demo) Cells() []uint8 { return d.grid.Cells() }

// Reset clears trails and respawns walkers at uniform positions.
func (d *Demo) Reset(seed int64) {
	d.rng = random.New(seed)
	d.grid.Clear()
	d.ticks = 0
	d.walkers = make([]*walker, d.cfg.Walkers)
	for i := range d.walkers {
		x, _ := d.rng.IntN(d.grid.W)
		y, _ := d.rng.IntN(d.grid.H)
		dir, _ := random.One(d.rng, directions)
		d.walkers[i] = &walker{x: x, y: y, dir: dir}
	}
}

// Step advances every walker by one cell in a shuffled order.
func (d *Demo) Step() {
	random.Shuffle(d.rng, d.walkers)
	for _, w := range d.walkers {
		if d.rng.Chance(d.cfg.TurnProb) {
			// Inertia-weighted turn: the current heading outweighs the
			// alternatives, so trails form runs instead of static noise.
			dir, err := random.Weighted(d.rng, directions, func(c direction) float64 {
				if c == w.dir {
					return d.cfg.Inertia
				}
				return 1
			})
			if err == nil {
				w.dir = dir
			}
		}
		w.x = wrap(w.x+w.dir.dx, d.grid.W)
		w.y = wrap(w.y+w.dir.dy, d.grid.H)
		d.grid.Deposit(w.x, w.y)
	}
	d.ticks++
}

// Status reports the tick count for the viewer's overlay line.
func (d *Demo) Status() string {
	return fmt.Sprintf("walkers=%d ticks=%d", len(d.walkers), d.ticks)
}

func wrap(v, n int) int {
	return (v%n + n) % n
}

func init() {
	core.Register("walk", func(cfg map[string]string) core.Demo {
		return New(FromMap(cfg))
	})
}
