package menu

import (
	"math/rand"
	"testing"
	"time"

	"github.com/san-kum/emberstrip/internal/encoder"
	"github.com/san-kum/emberstrip/internal/fire"
	"github.com/san-kum/emberstrip/internal/params"
)

func newTestMachine() *Machine {
	store := params.NewStore(60)
	sim := fire.NewSimulator(60, false, rand.New(rand.NewSource(1)))
	return New(store, sim, nil)
}

func allBlank(f fire.Frame) bool {
	for _, c := range f {
		if c != (fire.Color{}) {
			return false
		}
	}
	return true
}

func allColor(f fire.Frame, want fire.Color) bool {
	for _, c := range f {
		if c != want {
			return false
		}
	}
	return true
}

func TestBootsInBrightnessMode(t *testing.T) {
	m := newTestMachine()
	if m.Mode() != Brightness {
		t.Errorf("boot mode = %s, want brightness", m.Mode())
	}
}

func TestClickCyclesModes(t *testing.T) {
	m := newTestMachine()
	now := time.Unix(0, 0)

	want := []Mode{Sparking, Cooling, Brightness, Sparking, Cooling, Brightness}
	for i, expected := range want {
		m.Tick(now, 0, encoder.Clicked)
		if m.Mode() != expected {
			t.Fatalf("click %d: mode = %s, want %s", i+1, m.Mode(), expected)
		}
	}
}

func TestClickFlashesModeColor(t *testing.T) {
	m := newTestMachine()
	now := time.Unix(0, 0)

	frame := m.Tick(now, 0, encoder.Clicked)
	if !allColor(frame, ModeColor(Sparking)) {
		t.Error("click should flash the new mode's color across the strip")
	}
}

func TestRotationAdjustsActiveParameter(t *testing.T) {
	m := newTestMachine()
	now := time.Unix(0, 0)

	before := m.Store().Get(params.Brightness)
	frame := m.Tick(now, 3, encoder.None)
	after := m.Store().Get(params.Brightness)

	if after <= before {
		t.Errorf("positive rotation should raise brightness: %d -> %d", before, after)
	}
	if !m.HighlightActive() {
		t.Error("rotation should start a highlight")
	}
	if allBlank(frame) {
		t.Error("highlight frame should show the preview bar")
	}
}

func TestHighlightAutoClears(t *testing.T) {
	m := newTestMachine()
	t0 := time.Unix(10, 0)

	m.Tick(t0, 2, encoder.None)
	if !m.HighlightActive() {
		t.Fatal("expected highlight after parameter change")
	}

	m.Tick(t0.Add(699*time.Millisecond), 0, encoder.None)
	if !m.HighlightActive() {
		t.Error("highlight must still be active at 699ms")
	}

	m.Tick(t0.Add(701*time.Millisecond), 0, encoder.None)
	if m.HighlightActive() {
		t.Error("highlight must clear after 700ms")
	}
}

func TestHighlightHoldsPreviewFrame(t *testing.T) {
	m := newTestMachine()
	t0 := time.Unix(10, 0)

	first := m.Tick(t0, 2, encoder.None)
	second := m.Tick(t0.Add(100*time.Millisecond), 0, encoder.None)

	for i := range first {
		if first[i] != second[i] {
			t.Fatal("frame must stay frozen on the preview while highlighted")
		}
	}
}

func TestDoubleClickRestoresDefaults(t *testing.T) {
	m := newTestMachine()
	now := time.Unix(0, 0)

	m.Tick(now, 0, encoder.Clicked) // -> sparking
	m.Tick(now, 10000, encoder.None)
	m.Tick(now, 0, encoder.Clicked) // -> cooling
	m.Tick(now, -10000, encoder.None)

	frame := m.Tick(now, 0, encoder.DoubleClicked)

	if m.Mode() != Brightness {
		t.Errorf("mode after reset = %s, want brightness", m.Mode())
	}
	s := m.Store()
	if s.Get(params.Brightness) != 16 || s.Get(params.Sparking) != 120 || s.Get(params.Cooling) != 55 {
		t.Errorf("reset left %d/%d/%d, want 16/120/55",
			s.Get(params.Brightness), s.Get(params.Sparking), s.Get(params.Cooling))
	}
	if !allBlank(frame) {
		t.Error("double-click should blank the strip")
	}
}

func TestHeldStopsAndBlanks(t *testing.T) {
	m := newTestMachine()
	now := time.Unix(0, 0)

	frame := m.Tick(now, 0, encoder.Held)
	if m.Mode() != Stopped {
		t.Fatalf("mode after hold = %s, want stopped", m.Mode())
	}
	if !allBlank(frame) || len(frame) != 60 {
		t.Error("entering stopped must blank all 60 cells")
	}

	// Rotation is ignored while the button is still down and after,
	// until a new hold toggles back.
	before := m.Store().Get(params.Brightness)
	frame = m.Tick(now, 5, encoder.None)
	if !allBlank(frame) {
		t.Error("strip must be held blank until release")
	}
	if m.Store().Get(params.Brightness) != before {
		t.Error("rotation must not adjust parameters while stopped")
	}

	frame = m.Tick(now, 0, encoder.Released)
	if !allBlank(frame) {
		t.Error("strip stays blank after release while stopped")
	}

	frame = m.Tick(now, 7, encoder.None)
	if !allBlank(frame) || m.Store().Get(params.Brightness) != before {
		t.Error("rotation after release must still be ignored in stopped mode")
	}
}

func TestHeldResumesWithWhiteFlash(t *testing.T) {
	m := newTestMachine()
	now := time.Unix(0, 0)

	m.Tick(now, 0, encoder.Held)
	m.Tick(now, 0, encoder.Released)

	frame := m.Tick(now, 0, encoder.Held)
	if m.Mode() != Brightness {
		t.Errorf("mode after resume = %s, want brightness", m.Mode())
	}
	if !allColor(frame, fire.Color{R: 255, G: 255, B: 255}) {
		t.Error("resume should flash full white")
	}
}

func TestClickIgnoredWhileStopped(t *testing.T) {
	m := newTestMachine()
	now := time.Unix(0, 0)

	m.Tick(now, 0, encoder.Held)
	m.Tick(now, 0, encoder.Released)

	m.Tick(now, 0, encoder.Clicked)
	if m.Mode() != Stopped {
		t.Errorf("click while stopped changed mode to %s", m.Mode())
	}
	m.Tick(now, 0, encoder.DoubleClicked)
	if m.Mode() != Stopped {
		t.Errorf("double-click while stopped changed mode to %s", m.Mode())
	}
}

func TestFireResumesAfterHighlight(t *testing.T) {
	m := newTestMachine()
	t0 := time.Unix(0, 0)

	m.Tick(t0, 1, encoder.None)
	frame := m.Tick(t0.Add(time.Second), 0, encoder.None)

	if m.HighlightActive() {
		t.Fatal("highlight should have expired")
	}
	// A running fire frame comes from the simulator, not the preview;
	// after enough steps it is extremely unlikely to equal the frozen bar.
	if len(frame) != 60 {
		t.Errorf("fire frame length = %d, want 60", len(frame))
	}
}

func TestPreviewFillsProportionally(t *testing.T) {
	c := fire.Color{R: 255}

	f := Preview(60, 0.5, c)
	lit := 0
	for _, cell := range f {
		if cell == c {
			lit++
		}
	}
	if lit != 30 {
		t.Errorf("half fraction lit %d cells, want 30", lit)
	}

	if f := Preview(60, 0, c); !allBlank(f) {
		t.Error("zero fraction should blank the preview")
	}
	f = Preview(60, 1, c)
	if !allColor(f, c) {
		t.Error("full fraction should fill the preview")
	}
}

func TestPreviewFillsFromOrigin(t *testing.T) {
	c := fire.Color{B: 255}
	f := Preview(10, 0.3, c)
	for i := 0; i < 3; i++ {
		if f[i] != c {
			t.Errorf("cell %d should be lit", i)
		}
	}
	for i := 3; i < 10; i++ {
		if f[i] != (fire.Color{}) {
			t.Errorf("cell %d should be blank", i)
		}
	}
}
