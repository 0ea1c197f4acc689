package fire

// Color is one RGB triple on the strip.
type Color struct {
	R, G, B uint8
}

// Frame is the rendered strip for a single tick. It has no identity
// beyond that tick; every render allocates a fresh one.
type Frame []Color

// Solid returns a frame with every cell set to c.
func Solid(cells int, c Color) Frame {
	f := make(Frame, cells)
	for i := range f {
		f[i] = c
	}
	return f
}

// Blank returns an all-black frame.
func Blank(cells int) Frame {
	return make(Frame, cells)
}

// Luma returns the mean channel value across the frame, a cheap
// stand-in for perceived intensity.
func (f Frame) Luma() float64 {
	if len(f) == 0 {
		return 0
	}
	sum := 0
	for _, c := range f {
		sum += int(c.R) + int(c.G) + int(c.B)
	}
	return float64(sum) / float64(3*len(f))
}

// HeatColor maps a heat value onto a black-body style ramp:
// black -> red -> orange -> yellow -> white across four equal bands,
// linear within each band. Monotonic in h.
func HeatColor(h uint8) Color {
	t := h & 63
	switch h >> 6 {
	case 0: // black -> red
		return Color{R: t * 4}
	case 1: // red -> orange
		return Color{R: 255, G: t * 2}
	case 2: // orange -> yellow
		return Color{R: 255, G: 128 + t*2}
	default: // yellow -> white
		return Color{R: 255, G: 255, B: t * 4}
	}
}
