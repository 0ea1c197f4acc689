// Package strip is the boundary to the physical LED strip. The driver
// itself is an external collaborator; everything here treats it as an
// opaque sink with a bounded-duration Show call.
package strip

import (
	"sync"

	"github.com/san-kum/emberstrip/internal/fire"
)

// Sink receives one rendered frame per tick plus the global brightness
// scalar the driver applies on the wire.
type Sink interface {
	Show(frame fire.Frame, brightness uint8) error
}

// Memory is a sink that records the most recent frame. It backs the TUI
// view and the tests.
type Memory struct {
	mu         sync.Mutex
	frame      fire.Frame
	brightness uint8
	shows      int
}

func (m *Memory) Show(frame fire.Frame, brightness uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frame = append(m.frame[:0], frame...)
	m.brightness = brightness
	m.shows++
	return nil
}

// Last returns a copy of the most recently shown frame and brightness.
func (m *Memory) Last() (fire.Frame, uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := make(fire.Frame, len(m.frame))
	copy(f, m.frame)
	return f, m.brightness
}

// Shows reports how many frames have been pushed.
func (m *Memory) Shows() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shows
}

// Discard drops every frame. Used by headless runs that only care
// about metrics.
type Discard struct{}

func (Discard) Show(fire.Frame, uint8) error { return nil }
