package metrics

import (
	"testing"

	"github.com/san-kum/emberstrip/internal/fire"
)

func TestMeanLuma(t *testing.T) {
	m := NewMeanLuma()

	m.Observe(fire.Solid(10, fire.Color{R: 30, G: 60, B: 90}), 1) // luma 60
	m.Observe(fire.Blank(10), 2)                                  // luma 0

	if got := m.Value(); got != 30 {
		t.Errorf("mean luma = %f, want 30", got)
	}

	m.Reset()
	if got := m.Value(); got != 0 {
		t.Errorf("after reset = %f, want 0", got)
	}
}

func TestLitFraction(t *testing.T) {
	l := NewLitFraction()

	f := fire.Blank(10)
	for i := 0; i < 5; i++ {
		f[i] = fire.Color{R: 1}
	}
	l.Observe(f, 1)

	if got := l.Value(); got != 0.5 {
		t.Errorf("lit fraction = %f, want 0.5", got)
	}

	l.Observe(fire.Blank(10), 2)
	if got := l.Value(); got != 0.25 {
		t.Errorf("lit fraction after blank frame = %f, want 0.25", got)
	}
}

func TestPeakLuma(t *testing.T) {
	p := NewPeakLuma()

	p.Observe(fire.Solid(10, fire.Color{R: 30, G: 30, B: 30}), 1) // luma 30
	p.Observe(fire.Solid(10, fire.Color{R: 90, G: 90, B: 90}), 2) // luma 90
	p.Observe(fire.Blank(10), 3)

	if got := p.Value(); got != 90 {
		t.Errorf("peak luma = %f, want 90", got)
	}
}

func TestRecorderKeepsSeries(t *testing.T) {
	r := NewRecorder(NewMeanLuma(), NewLitFraction())

	r.Observe(fire.Solid(10, fire.Color{R: 30, G: 60, B: 90}), 1)
	r.Observe(fire.Blank(10), 2)

	series := r.Series()
	if len(series) != 2 {
		t.Fatalf("series rows = %d, want 2", len(series))
	}
	if len(series[0]) != 2 {
		t.Fatalf("series columns = %d, want 2", len(series[0]))
	}
	if series[0][0] != 60 {
		t.Errorf("first tick mean luma = %f, want 60", series[0][0])
	}

	summary := r.Summary()
	if summary["mean_luma"] != 30 {
		t.Errorf("summary mean_luma = %f, want 30", summary["mean_luma"])
	}
	if summary["lit_fraction"] != 0.5 {
		t.Errorf("summary lit_fraction = %f, want 0.5", summary["lit_fraction"])
	}
}
