package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette clamp to its last entry. When the
// palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// HeatPalette builds an n-entry black→blue→red→yellow→white ramp for density
// canvases. Entry 0 is pure black so untouched cells read as background.
func HeatPalette(n int) []color.RGBA {
	if n <= 0 {
		n = 256
	}
	palette := make([]color.RGBA, n)
	anchors := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 32, G: 48, B: 160, A: 255},
		{R: 200, G: 48, B: 32, A: 255},
		{R: 255, G: 200, B: 48, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	spans := len(anchors) - 1
	for i := range palette {
		t := float64(i) / float64(n-1) * float64(spans)
		seg := int(t)
		if seg >= spans {
			seg = spans - 1
		}
		frac := t - float64(seg)
		palette[i] = lerpRGBA(anchors[seg], anchors[seg+1], frac)
	}
	return palette
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	inv := 1 - t
	return color.RGBA{
		R: uint8(float64(a.R)*inv + float64(b.R)*t + 0.5),
		G: uint8(float64(a.G)*inv + float64(b.G)*t + 0.5),
		B: uint8(float64(a.B)*inv + float64(b.B)*t + 0.5),
		A: uint8(float64(a.A)*inv + float64(b.A)*t + 0.5),
	}
}
