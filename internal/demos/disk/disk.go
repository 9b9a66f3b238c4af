// Package disk visualizes the spatial density of unit-disk sampling. The
// default mode scales the radius by sqrt(u), which is what yields uniform
// areal density; the "naive" mode scales the radius linearly to make the
// resulting center bias visible.
package disk

import (
	"fmt"
	"strconv"

	"randkit/internal/core"
	"randkit/pkg/geom"
	"randkit/pkg/random"
)

// span maps the unit disk onto the canvas with a small margin.
const span = 1.05

// Config holds the tunables for the disk demo.
type Config struct {
	Width  int
	Height int
	Batch  int
	Naive  bool
	Seed   int64
}

// DefaultConfig returns the canvas and batch defaults.
func DefaultConfig() Config {
	return Config{Width: 240, Height: 240, Batch: 512, Seed: 1}
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
	if v, ok := cfg["mode"]; ok {
		c.Naive = v == "naive"
	}
	if v, ok := cfg["seed"]; ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	return c
}

// Demo scatters unit-disk samples onto a density canvas.
type Demo struct {
	cfg   Config
	grid  *core.DensityGrid
	rng   *random.RNG
	total int
}

// New constructs a disk demo from the provided configuration.
func New(cfg Config) *Demo {
	d := &Demo{cfg: cfg, grid: core.NewDensityGrid(cfg.Width, cfg.Height)}
	d.Reset(cfg.Seed)
	return d
}

// Name returns the demo identifier.
func (d *Demo) Name() string {
	if d.cfg.Naive {
		return "disk (naive radius)"
	}
	return "disk"
}

// Size returns the canvas dimensions.
func (d *Demo) Size() core.Size { return core.Size{W: d.grid.W, H: d.grid.H} }

// Cells exposes the density canvas.
func (d *Demo) Cells() []uint8 { return d.grid.Cells() }

// Reset clears the canvas and reseeds the generator.
func (d *Demo) Reset(seed int64) {
	d.rng = random.New(seed)
	d.grid.Clear()
	d.total = 0
}

// Step deposits one batch of samples.
func (d *Demo) Step() {
	for i := 0; i < d.cfg.Batch; i++ {
		var p geom.Vec2
		if d.cfg.Naive {
			p = d.rng.OnUnitCircle().Scale(d.rng.Float64())
		} else {
			p = d.rng.InUnitDisk()
		}
		d.deposit(p)
	}
	d.total += d.cfg.Batch
}

// Status reports the running sample count for the viewer's overlay line.
func (d *Demo) Status() string {
	mode := "sqrt"
	if d.cfg.Naive {
		mode = "naive"
	}
	return fmt.Sprintf("samples=%d mode=%s", d.total, mode)
}

func (d *Demo) deposit(p geom.Vec2) {
	x := int((p.X + span) / (2 * span) * float64(d.grid.W))
	y := int((p.Y + span) / (2 * span) * float64(d.grid.H))
	d.grid.Deposit(x, y)
}

func init() {
	core.Register("disk", func(cfg map[string]string) core.Demo {
		return New(FromMap(cfg))
	})
}
