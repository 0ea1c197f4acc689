// Package menu is the top-level controller: it owns the current mode
// and highlight state, routes encoder events into the parameter store,
// and decides each tick whether the fire simulation runs or a preview
// frame is held on the strip.
package menu

import (
	"time"

	"github.com/san-kum/emberstrip/internal/encoder"
	"github.com/san-kum/emberstrip/internal/fire"
	"github.com/san-kum/emberstrip/internal/params"
)

// HighlightDuration is how long a preview or mode flash stays on the
// strip before the fire animation resumes.
const HighlightDuration = 700 * time.Millisecond

// Mode is the currently selected editable parameter, or Stopped.
type Mode int

const (
	Stopped Mode = iota
	Brightness
	Sparking
	Cooling
)

func (m Mode) String() string {
	switch m {
	case Stopped:
		return "stopped"
	case Brightness:
		return "brightness"
	case Sparking:
		return "sparking"
	case Cooling:
		return "cooling"
	}
	return "unknown"
}

// param maps an editable mode to the store field it adjusts.
func (m Mode) param() params.Param {
	switch m {
	case Sparking:
		return params.Sparking
	case Cooling:
		return params.Cooling
	default:
		return params.Brightness
	}
}

// next cycles Brightness -> Sparking -> Cooling -> Brightness.
func (m Mode) next() Mode {
	switch m {
	case Brightness:
		return Sparking
	case Sparking:
		return Cooling
	default:
		return Brightness
	}
}

// Machine serializes all mode and parameter mutation. It is driven from
// the frame loop only; the sampling goroutine never touches it.
type Machine struct {
	mode  Mode
	store *params.Store
	sim   *fire.Simulator
	cells int

	highlightActive bool
	highlightSince  time.Time
	held            fire.Frame

	// awaitingRelease holds the strip blank between the Held gesture
	// that entered Stopped and the physical button release, so the off
	// gesture cannot double as a new click.
	awaitingRelease bool

	logf func(format string, args ...any)
}

// New creates a machine booted into Brightness mode with the simulator
// running. logf may be nil.
func New(store *params.Store, sim *fire.Simulator, logf func(string, ...any)) *Machine {
	return &Machine{
		mode:  Brightness,
		store: store,
		sim:   sim,
		cells: sim.Cells(),
		logf:  logf,
	}
}

func (m *Machine) Mode() Mode { return m.mode }

// Brightness is the scalar handed to the LED sink alongside each frame.
func (m *Machine) Brightness() uint8 { return m.store.Get(params.Brightness) }

// Store exposes the parameter store for read-side collaborators.
func (m *Machine) Store() *params.Store { return m.store }

// HighlightActive reports whether a preview/flash is currently held.
func (m *Machine) HighlightActive() bool { return m.highlightActive }

// Tick consumes at most one rotation delta and one gesture, then
// returns the frame to show. Called exactly once per frame period.
func (m *Machine) Tick(now time.Time, delta int, g encoder.Gesture) fire.Frame {
	if m.awaitingRelease {
		if g == encoder.Released {
			m.awaitingRelease = false
		}
		// Re-blank every tick until the button is let go.
		m.held = fire.Blank(m.cells)
		return m.held
	}

	if g != encoder.None {
		m.gesture(now, g)
	}
	if delta != 0 && m.mode != Stopped {
		m.rotate(now, delta)
	}

	if m.highlightActive && now.Sub(m.highlightSince) >= HighlightDuration {
		m.highlightActive = false
	}

	switch {
	case m.highlightActive:
		return m.held
	case m.mode != Stopped:
		return m.sim.Step(m.store.Get(params.Sparking), m.store.Get(params.Cooling))
	default:
		return fire.Blank(m.cells)
	}
}

func (m *Machine) gesture(now time.Time, g encoder.Gesture) {
	if m.mode == Stopped && g != encoder.Held {
		return
	}
	switch g {
	case encoder.Clicked:
		m.mode = m.mode.next()
		m.startHighlight(now, fire.Solid(m.cells, ModeColor(m.mode)))
		m.report("mode -> %s", m.mode)
	case encoder.DoubleClicked:
		m.store.ResetAll()
		m.mode = Brightness
		m.startHighlight(now, fire.Blank(m.cells))
		m.report("reset to defaults, mode -> %s", m.mode)
	case encoder.Held:
		if m.mode == Stopped {
			m.mode = Brightness
			m.startHighlight(now, fire.Solid(m.cells, fire.Color{R: 255, G: 255, B: 255}))
			m.report("resume, mode -> %s", m.mode)
		} else {
			m.mode = Stopped
			m.awaitingRelease = true
			m.highlightActive = false
			m.held = fire.Blank(m.cells)
			m.report("mode -> %s", m.mode)
		}
	}
}

func (m *Machine) rotate(now time.Time, delta int) {
	p := m.mode.param()
	v := m.store.Adjust(p, delta)
	m.startHighlight(now, Preview(m.cells, m.store.Fraction(p), ModeColor(m.mode)))
	m.report("%s = %d", p, v)
}

func (m *Machine) startHighlight(now time.Time, frame fire.Frame) {
	m.highlightActive = true
	m.highlightSince = now
	m.held = frame
}

func (m *Machine) report(format string, args ...any) {
	if m.logf != nil {
		m.logf(format, args...)
	}
}
