// Package loop drives the fixed-rate frame cadence: drain input, tick
// the menu machine, hand the frame to the LED sink.
package loop

import (
	"context"
	"time"

	"github.com/san-kum/emberstrip/internal/encoder"
	"github.com/san-kum/emberstrip/internal/fire"
	"github.com/san-kum/emberstrip/internal/menu"
	"github.com/san-kum/emberstrip/internal/strip"
)

// fpsInterval is how many ticks pass between frame-rate measurements.
const fpsInterval = 500

// Observer is notified after every tick with the frame that was shown.
type Observer interface {
	Observe(frame fire.Frame, tick int)
}

// Scheduler runs the main loop at a fixed target period. Jitter is
// tolerated, not corrected.
type Scheduler struct {
	machine   *menu.Machine
	events    *encoder.Accumulator
	sink      strip.Sink
	period    time.Duration
	observers []Observer
	logf      func(format string, args ...any)

	tick     int
	prevTick time.Time
}

// New creates a scheduler. fps must be positive; logf may be nil.
func New(machine *menu.Machine, events *encoder.Accumulator, sink strip.Sink, fps int, logf func(string, ...any)) *Scheduler {
	if fps <= 0 {
		fps = 60
	}
	return &Scheduler{
		machine: machine,
		events:  events,
		sink:    sink,
		period:  time.Second / time.Duration(fps),
		logf:    logf,
	}
}

// Period returns the target frame period.
func (s *Scheduler) Period() time.Duration { return s.period }

// AddObserver registers an observer for every subsequent tick.
func (s *Scheduler) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Run loops until the context is cancelled. The sink call dominates
// per-tick latency and is treated as a black box.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := s.RunTick(now); err != nil {
				return err
			}
		}
	}
}

// RunTick executes a single frame: one atomic drain of the input
// accumulator, one machine tick, one sink push.
func (s *Scheduler) RunTick(now time.Time) error {
	delta := s.events.DrainRotation()
	gesture := s.events.DrainGesture()

	frame := s.machine.Tick(now, delta, gesture)
	if err := s.sink.Show(frame, s.machine.Brightness()); err != nil {
		return err
	}

	s.tick++
	for _, o := range s.observers {
		o.Observe(frame, s.tick)
	}

	if s.tick%fpsInterval == 0 {
		if !s.prevTick.IsZero() && s.logf != nil {
			elapsed := now.Sub(s.prevTick).Milliseconds()
			if elapsed > 0 {
				s.logf("fps: %.1f", 1000.0/float64(elapsed)*float64(fpsInterval))
			}
		}
		s.prevTick = now
	}
	return nil
}
