// Package sphere visualizes the z-coordinates of unit-sphere surface samples
// as a live histogram. Equal-area sampling makes z uniform on [-1, 1], so the
// bars settle toward a flat profile; pole clustering would show as tall edge
// bars.
package sphere

import (
	"fmt"
	"strconv"

	"randkit/internal/core"
	"randkit/internal/stats"
	"randkit/pkg/random"
)

// Config holds the tunables for the sphere demo.
type Config struct {
	Width  int
	Height int
	Batch  int
	Seed   int64
}

// DefaultConfig returns the canvas and batch defaults.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 120, Batch: 512, Seed: 1}
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
	if v, ok := cfg["batch"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Batch = n
		}
	}
	if v, ok := cfg["seed"]; ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	return c
}

// Demo accumulates z-coordinate counts and renders them as histogram bars.
type Demo struct {
	cfg    Config
	grid   *core.DensityGrid
	rng    *random.RNG
	counts []int
	total  int
}

// New constructs a sphere demo from the provided configuration.
func New(cfg Config) *Demo {
	d := &Demo{
		cfg:    cfg,
		grid:   core.NewDensityGrid(cfg.Width, cfg.Height),
		counts: make([]int, cfg.Width),
	}
	d.Reset(cfg.Seed)
	return d
}

// Name returns the demo identifier.
func (d *Demo) Name() string { return "sphere" }

// Size returns the canvas dimensions.
func (d *Demo) Size() core.Size { return core.Size{W: d.grid.W, H: d.grid.H} }

// Cells exposes the rendered histogram canvas.
func (d *Demo) Cells() []uint8 { return d.grid.Cells() }

// Reset clears the histogram and reseeds the generator.
func (d *Demo) Reset(seed int64) {
	d.rng = random.New(seed)
	d.grid.Clear()
	for i := range d.counts {
		d.counts[i] = 0
	}
	d.total = 0
}

// Step draws one batch of surface points and rebuilds the bar display.
func (d *Demo) Step() {
	for i := 0; i < d.cfg.Batch; i++ {
		z := d.rng.OnUnitSphere().Z
		col := int((z + 1) / 2 * float64(len(d.counts)))
		if col >= len(d.counts) {
			col = len(d.counts) - 1
		}
		d.counts[col]++
	}
	d.total += d.cfg.Batch
	d.rebuildDisplay()
}

// Status reports the sample count and the flatness p-value of the bars.
func (d *Demo) Status() string {
	if d.total < 10*len(d.counts) {
		return fmt.Sprintf("samples=%d", d.total)
	}
	gof, err := stats.ChiSquareUniform(d.counts)
	if err != nil {
		return fmt.Sprintf("samples=%d", d.total)
	}
	return fmt.Sprintf("samples=%d flatness p=%.3f", d.total, gof.P)
}

// ZCounts exposes the per-column tallies for headless inspection.
func (d *Demo) ZCounts() []int { return d.counts }

func (d *Demo) rebuildDisplay() {
	peak := 0
	for _, c := range d.counts {
		if c > peak {
			peak = c
		}
	}
	d.grid.Clear()
	if peak == 0 {
		return
	}
	for x, c := range d.counts {
		bar := c * d.grid.H / peak
		for y := 0; y < bar; y++ {
			// Bars grow from the bottom edge; hotter toward the base.
			v := uint8(255 - y*200/d.grid.H)
			d.grid.Set(x, d.grid.H-1-y, v)
		}
	}
}

func init() {
	core.Register("sphere", func(cfg map[string]string) core.Demo {
		return New(FromMap(cfg))
	})
}
