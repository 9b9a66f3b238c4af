package sphere

import (
	"testing"

	"randkit/internal/stats"
)

func TestZCountsTotal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 32
	d := New(cfg)
	for i := 0; i < 4; i++ {
		d.Step()
	}
	total := 0
	for _, c := range d.ZCounts() {
		total += c
	}
	if want := 4 * cfg.Batch; total != want {
		t.Fatalf("expected %d counted samples, got %d", want, total)
	}
}

func TestZHistogramFlat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Batch = 4096
	d := New(cfg)
	for i := 0; i < 20; i++ {
		d.Step()
	}
	gof, err := stats.ChiSquareUniform(d.ZCounts())
	if err != nil {
		t.Fatalf("chi-square: %v", err)
	}
	if gof.P < 1e-6 {
		t.Fatalf("z histogram far from flat: stat=%.2f p=%g counts=%v", gof.Stat, gof.P, d.ZCounts())
	}
}

func TestResetClearsState(t *testing.T) {
	d := New(DefaultConfig())
	d.Step()
	d.Reset(2)
	for i, c := range d.ZCounts() {
		if c != 0 {
			t.Fatalf("column %d not cleared after reset", i)
		}
	}
	for i, v := range d.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared after reset", i)
		}
	}
}
