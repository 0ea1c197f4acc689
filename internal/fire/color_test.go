package fire

import "testing"

func TestHeatColorEndpoints(t *testing.T) {
	if c := HeatColor(0); c != (Color{}) {
		t.Errorf("HeatColor(0) = %+v, want black", c)
	}
	c := HeatColor(255)
	if c.R != 255 || c.G != 255 || c.B < 250 {
		t.Errorf("HeatColor(255) = %+v, want near-white", c)
	}
}

func TestHeatColorMonotonic(t *testing.T) {
	prev := 0
	for h := 0; h <= 255; h++ {
		c := HeatColor(uint8(h))
		total := int(c.R) + int(c.G) + int(c.B)
		if total < prev {
			t.Fatalf("ramp not monotonic at h=%d: %d < %d", h, total, prev)
		}
		prev = total
	}
}

func TestHeatColorBandCharacter(t *testing.T) {
	// Low band is pure red-channel, mid bands saturate red, top band
	// brings in blue.
	if c := HeatColor(32); c.G != 0 || c.B != 0 || c.R == 0 {
		t.Errorf("low band should be red only, got %+v", c)
	}
	if c := HeatColor(100); c.R != 255 || c.B != 0 {
		t.Errorf("second band should hold red at full, got %+v", c)
	}
	if c := HeatColor(220); c.B == 0 {
		t.Errorf("top band should have blue, got %+v", c)
	}
}

func TestSolidAndBlank(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30}
	f := Solid(5, c)
	for i := range f {
		if f[i] != c {
			t.Errorf("cell %d: got %+v, want %+v", i, f[i], c)
		}
	}
	for i, cell := range Blank(5) {
		if cell != (Color{}) {
			t.Errorf("cell %d: blank frame has %+v", i, cell)
		}
	}
}

func TestLuma(t *testing.T) {
	if l := (Frame{}).Luma(); l != 0 {
		t.Errorf("empty frame luma = %f, want 0", l)
	}
	f := Solid(10, Color{R: 30, G: 60, B: 90})
	if l := f.Luma(); l != 60 {
		t.Errorf("luma = %f, want 60", l)
	}
}
