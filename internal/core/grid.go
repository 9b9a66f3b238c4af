package core

// DensityGrid accumulates sample hits on a 2D canvas of byte counters stored
// in row-major order.
type DensityGrid struct {
	W, H int
	data []uint8
}

// NewDensityGrid allocates a grid with the given dimensions.
func NewDensityGrid(w, h int) *DensityGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &DensityGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *DensityGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *DensityGrid) Index(x, y int) int { return y*g.W + x }

// Deposit increments the counter at (x, y), saturating at 255. Out-of-range
// coordinates are ignored so samplers can deposit unclamped points.
func (g *DensityGrid) Deposit(x, y int) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	i := y*g.W + x
	if g.data[i] < 0xff {
		g.data[i]++
	}
}

// Set overwrites the counter at (x, y). Out-of-range coordinates are ignored.
func (g *DensityGrid) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.data[g.Index(x, y)] = v
}

// Clear fills the grid with zeros.
func (g *DensityGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
