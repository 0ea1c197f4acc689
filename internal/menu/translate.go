package menu

import "github.com/san-kum/emberstrip/internal/fire"

// Mode indicator colors, used both for the live edit preview and the
// full-strip flash on mode change.
var (
	brightnessColor = fire.Color{R: 255, G: 200}
	sparkingColor   = fire.Color{R: 255}
	coolingColor    = fire.Color{B: 255, G: 64}
)

// ModeColor returns the indicator color bound to m. Stopped has no
// indicator and maps to black.
func ModeColor(m Mode) fire.Color {
	switch m {
	case Brightness:
		return brightnessColor
	case Sparking:
		return sparkingColor
	case Cooling:
		return coolingColor
	}
	return fire.Color{}
}

// Preview renders the edit bar shown while a parameter is being tuned:
// a solid block of the mode color filling fraction of the strip from
// the origin, remaining cells blank.
func Preview(cells int, fraction float64, c fire.Color) fire.Frame {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	lit := int(fraction*float64(cells) + 0.5)
	f := fire.Blank(cells)
	for i := 0; i < lit; i++ {
		f[i] = c
	}
	return f
}
