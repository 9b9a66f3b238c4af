package render

import (
	"image/color"
	"testing"
)

func TestHeatPalette(t *testing.T) {
	p := HeatPalette(256)
	if len(p) != 256 {
		t.Fatalf("expected 256 entries, got %d", len(p))
	}
	if p[0] != (color.RGBA{A: 255}) {
		t.Fatalf("entry 0 should be opaque black, got %v", p[0])
	}
	if p[255] != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("last entry should be white, got %v", p[255])
	}
	for i, c := range p {
		if c.A != 255 {
			t.Fatalf("entry %d not opaque", i)
		}
	}
	if got := HeatPalette(0); len(got) != 256 {
		t.Fatalf("non-positive size should default to 256, got %d", len(got))
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{A: 255},
		{R: 10, G: 20, B: 30, A: 255},
	}
	cells := []uint8{0, 1, 200}
	buf := make([]byte, len(cells)*4)
	fillPaletteRGBA(buf, cells, palette)

	if buf[3] != 255 || buf[0] != 0 {
		t.Fatalf("cell 0 not rendered as black: % x", buf[:4])
	}
	if buf[4] != 10 || buf[5] != 20 || buf[6] != 30 {
		t.Fatalf("cell 1 not rendered from palette: % x", buf[4:8])
	}
	// Values past the palette clamp to the last entry.
	if buf[8] != 10 || buf[9] != 20 || buf[10] != 30 {
		t.Fatalf("cell 2 did not clamp to last entry: % x", buf[8:12])
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	cells := []uint8{7, 7}
	buf := []byte{1, 1, 1, 1, 1, 1, 1, 1}
	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared", i)
		}
	}
}
